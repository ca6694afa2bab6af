package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dealscout/dealscout/internal/application"
)

func newMSRPCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "msrp <make> <model...>",
		Short: "Look up the MSRP range and reliability tier for a model",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := application.LookupReference(args[0], strings.Join(args[1:], " "))

			if jsonOutput {
				return renderJSON(cmd, ref)
			}

			out := cmd.OutOrStdout()
			name := ref.Make + " " + ref.Model
			if ref.Found {
				fmt.Fprintf(out, "%s: MSRP $%s – $%s (mid $%s)\n",
					name, humanize.Comma(int64(ref.MSRPBase)), humanize.Comma(int64(ref.MSRPHigh)), humanize.Comma(int64(ref.MSRPMid)))
			} else {
				fmt.Fprintf(out, "%s: no MSRP entry; valuation falls back to a synthesized MSRP\n", name)
			}
			fmt.Fprintf(out, "Reliability: %d/100\n", ref.Reliability)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
