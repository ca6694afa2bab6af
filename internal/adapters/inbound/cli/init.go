package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dealscout/dealscout/internal/adapters/outbound/config"
	"github.com/dealscout/dealscout/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		referenceYear int
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .dealscout.yaml configuration file",
		Long:  "Create a .dealscout.yaml with the default finance settings in the project directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := projectDir(cmd)
			if err != nil {
				return err
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.ReferenceYear = referenceYear
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().IntVar(&referenceYear, "reference-year", 0, "Pin the year vehicle age is computed against (0 = current year)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .dealscout.yaml")

	return cmd
}

func generateConfig(cfg domain.EvaluatorConfig) string {
	f := cfg.Finance
	return fmt.Sprintf(`# DealScout configuration
# Year vehicle age is computed against. 0 means the current year.
reference_year: %d

# Directory saved comps are stored under (relative to this file).
# comps_dir: .

# Payment estimate defaults. Rates are percentages.
finance:
  down_payment: %g
  tax_rate: %g
  doc_fee: %g
  non_doc_fee: %g
  interest_rate: %g
  term_months: %d
`, cfg.ReferenceYear, f.DownPayment, f.TaxRate, f.DocFee, f.NonDocFee, f.InterestRate, f.TermMonths)
}
