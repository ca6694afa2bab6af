package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/dealscout/dealscout/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the DealScout MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start DealScout MCP server (stdio)",
		Long:  "Start the DealScout MCP server using stdio transport. This lets AI assistants evaluate listings, query comp statistics and the MSRP tables, and estimate payments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := projectDir(cmd)
			if err != nil {
				return err
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			s := mcpadapter.NewDealScoutMCPServer(dir, mcpadapter.Deps{
				ConfigLoader: a.loader,
				CompStore:    a.store,
				Fetcher:      a.fetcher(),
				Log:          a.log.Logger,
			})
			a.log.Info("mcp_server_starting", "dir", dir)
			return server.ServeStdio(s)
		},
	}

	return cmd
}
