package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dealscout/dealscout/internal/adapters/outbound/tui"
	"github.com/dealscout/dealscout/internal/application"
)

func newEvaluateCmd() *cobra.Command {
	var (
		jsonOutput bool
		savedComps bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate [request.json|-]",
		Short: "Score a listing",
		Long: `Score a listing from an evaluation request document:

  {"vehicle": {...}, "inputs": {...}, "comps": [...]}

The request is read from the given file, or from stdin when the argument is
"-" or omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := "-"
			if len(args) > 0 {
				src = args[0]
			}

			req, err := readRequest(cmd, src)
			if err != nil {
				return err
			}

			dir, err := projectDir(cmd)
			if err != nil {
				return err
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			svc := application.NewEvaluateService(a.loader, a.store, a.log.WithComponent("evaluate").Logger)
			ev, err := svc.Evaluate(req, application.EvaluateOptions{Dir: dir, SavedComps: savedComps})
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, ev)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderEvaluation(req.Vehicle, ev.ScoreResults))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the evaluation as JSON")
	cmd.Flags().BoolVar(&savedComps, "saved-comps", false, "Add the saved comps to the request's comps")

	return cmd
}

func readRequest(cmd *cobra.Command, src string) (application.EvaluationRequest, error) {
	var req application.EvaluationRequest

	data, err := readInput(cmd, src)
	if err != nil {
		return req, err
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parsing request: %w", err)
	}
	return req, nil
}

// readInput reads a file, or stdin for "-".
func readInput(cmd *cobra.Command, src string) ([]byte, error) {
	if src == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}
	return data, nil
}
