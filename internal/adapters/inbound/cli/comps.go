package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dealscout/dealscout/internal/adapters/outbound/tui"
	"github.com/dealscout/dealscout/internal/application"
	"github.com/dealscout/dealscout/internal/domain"
)

func newCompsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comps",
		Short: "Manage saved comparable listings",
		Long:  "Saved comps live in .dealscout/comps.json and can be merged into any evaluation with --saved-comps.",
	}
	cmd.AddCommand(newCompsAddCmd())
	cmd.AddCommand(newCompsListCmd())
	cmd.AddCommand(newCompsRemoveCmd())
	cmd.AddCommand(newCompsClearCmd())
	cmd.AddCommand(newCompsStatsCmd())
	return cmd
}

// compService wires a CompService for cmd and returns the project dir.
func compService(cmd *cobra.Command) (*application.CompService, string, error) {
	dir, err := projectDir(cmd)
	if err != nil {
		return nil, "", err
	}
	a, err := newApp(cmd)
	if err != nil {
		return nil, "", err
	}
	return application.NewCompService(a.loader, a.store, a.log.WithComponent("comps").Logger), dir, nil
}

func newCompsAddCmd() *cobra.Command {
	var (
		price   int
		mileage int
		year    int
		source  string
		url     string
	)

	cmd := &cobra.Command{
		Use:   "add [comps.json|-]",
		Short: "Save comparable listings",
		Long: `Save one comp from flags (--price and --mileage), or a JSON comp or array
of comps from a file or stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var comps []domain.ComparableListing
			if cmd.Flags().Changed("price") {
				c := domain.ComparableListing{Price: domain.IntPtr(price), Source: source, URL: url}
				if cmd.Flags().Changed("mileage") {
					c.Mileage = domain.IntPtr(mileage)
				}
				if cmd.Flags().Changed("year") {
					c.Year = domain.IntPtr(year)
				}
				comps = append(comps, c)
			} else {
				src := "-"
				if len(args) > 0 {
					src = args[0]
				}
				data, err := readInput(cmd, src)
				if err != nil {
					return err
				}
				if comps, err = parseComps(data); err != nil {
					return err
				}
			}

			svc, dir, err := compService(cmd)
			if err != nil {
				return err
			}
			added, err := svc.Add(dir, comps...)
			if err != nil {
				return err
			}

			for _, c := range added {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved comp %s\n", c.ID)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&price, "price", 0, "Asking price in dollars")
	cmd.Flags().IntVar(&mileage, "mileage", 0, "Odometer reading in miles")
	cmd.Flags().IntVar(&year, "year", 0, "Model year")
	cmd.Flags().StringVar(&source, "source", "", "Where the comp was found")
	cmd.Flags().StringVar(&url, "url", "", "Listing URL")

	return cmd
}

// parseComps accepts a single comp object or an array of them.
func parseComps(data []byte) ([]domain.ComparableListing, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var c domain.ComparableListing
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing comp: %w", err)
		}
		return []domain.ComparableListing{c}, nil
	}

	var comps []domain.ComparableListing
	if err := json.Unmarshal(data, &comps); err != nil {
		return nil, fmt.Errorf("parsing comps: %w", err)
	}
	return comps, nil
}

func newCompsListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved comps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, dir, err := compService(cmd)
			if err != nil {
				return err
			}
			comps, err := svc.List(dir)
			if err != nil {
				return err
			}

			if jsonOutput {
				if comps == nil {
					comps = []domain.ComparableListing{}
				}
				return renderJSON(cmd, comps)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderComps(comps))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output comps as JSON")

	return cmd
}

func newCompsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a saved comp by id or unique id prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, dir, err := compService(cmd)
			if err != nil {
				return err
			}
			removed, err := svc.Remove(dir, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed comp %s\n", removed.ID)
			return nil
		},
	}
}

func newCompsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved comps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, dir, err := compService(cmd)
			if err != nil {
				return err
			}
			if err := svc.Clear(dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared saved comps")
			return nil
		},
	}
}

func newCompsStatsCmd() *cobra.Command {
	var (
		jsonOutput  bool
		mileage     int
		vehicleMake string
		body        string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for the saved comps",
		Long:  "Median, p25/p75 and mileage-adjusted value of the saved comps for a subject vehicle.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var style domain.BodyStyle
			_ = style.UnmarshalText([]byte(body))
			if !style.OneOf(domain.ValidBodyStyles...) {
				return fmt.Errorf("unknown body style %q", body)
			}
			subject := domain.VehicleListing{Make: vehicleMake}
			if cmd.Flags().Changed("mileage") {
				subject.Mileage = domain.IntPtr(mileage)
			}

			svc, dir, err := compService(cmd)
			if err != nil {
				return err
			}
			summary, err := svc.Stats(dir, subject, style)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, summary)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCompStats(summary.Stats, summary.Valid))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output stats as JSON")
	cmd.Flags().IntVar(&mileage, "mileage", 0, "Subject vehicle mileage (default 60000)")
	cmd.Flags().StringVar(&vehicleMake, "make", "", "Subject vehicle make")
	cmd.Flags().StringVar(&body, "body", "unknown", "Body style: sedan, suv, truck, van, coupe, hatchback, wagon or unknown")

	return cmd
}
