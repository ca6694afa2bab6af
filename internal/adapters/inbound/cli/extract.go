package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dealscout/dealscout/internal/adapters/outbound/extractor"
	"github.com/dealscout/dealscout/internal/adapters/outbound/tui"
	"github.com/dealscout/dealscout/internal/domain"
)

func newExtractCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "extract <url|file|-> [url...]",
		Short: "Pull listing details from a listing page",
		Long: `Best-effort extraction of year, make, model, price, mileage, VIN and history
hints from a listing page. Pass one or more http(s) URLs to fetch, or a saved
HTML file ("-" for stdin). Extracted values are unverified.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isURL(args[0]) {
				if len(args) > 1 {
					return fmt.Errorf("only URLs can be extracted in a batch")
				}
				page, err := readInput(cmd, args[0])
				if err != nil {
					return err
				}
				return renderExtraction(cmd, jsonOutput, extractor.Analyze(string(page)))
			}

			for _, arg := range args[1:] {
				if !isURL(arg) {
					return fmt.Errorf("only URLs can be extracted in a batch (got %q)", arg)
				}
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			fetcher := a.fetcher()

			if len(args) == 1 {
				res, err := fetcher.Fetch(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return renderExtraction(cmd, jsonOutput, res)
			}

			results, err := fetcher.FetchAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, results)
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "\n  %s\n", r.URL)
				if r.Err != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", r.Err)
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderExtraction(r.Result))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output extraction results as JSON")

	return cmd
}

func isURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func renderExtraction(cmd *cobra.Command, jsonOutput bool, res *domain.ExtractionResult) error {
	if jsonOutput {
		return renderJSON(cmd, res)
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderExtraction(res))
	return nil
}
