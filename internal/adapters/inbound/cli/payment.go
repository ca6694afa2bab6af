package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dealscout/dealscout/internal/adapters/outbound/tui"
	"github.com/dealscout/dealscout/internal/application"
)

func newPaymentCmd() *cobra.Command {
	var (
		jsonOutput bool
		req        application.PaymentRequest
		down       float64
		trade      float64
		payoff     float64
		tax        float64
		docFee     float64
		fees       float64
		apr        float64
		term       int
	)

	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Estimate the monthly payment for a purchase",
		Long:  "Estimate sales tax, amount financed and monthly payment. Flags that are not set use the finance defaults from .dealscout.yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			for _, o := range []struct {
				flag string
				val  *float64
				dst  **float64
			}{
				{"down", &down, &req.DownPayment},
				{"trade", &trade, &req.TradeValue},
				{"payoff", &payoff, &req.TradePayoff},
				{"tax", &tax, &req.TaxRate},
				{"doc-fee", &docFee, &req.DocFee},
				{"fees", &fees, &req.NonDocFee},
				{"apr", &apr, &req.InterestRate},
			} {
				if flags.Changed(o.flag) {
					*o.dst = o.val
				}
			}
			if flags.Changed("term") {
				req.TermMonths = &term
			}

			dir, err := projectDir(cmd)
			if err != nil {
				return err
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			est, err := application.NewPaymentService(a.loader).Estimate(dir, req)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, est)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPayment(est))
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&jsonOutput, "json", false, "Output the estimate as JSON")
	f.Float64Var(&req.Price, "price", 0, "Purchase price in dollars")
	f.Float64Var(&down, "down", 0, "Cash down payment")
	f.Float64Var(&trade, "trade", 0, "Trade-in value")
	f.Float64Var(&payoff, "payoff", 0, "Loan payoff owed on the trade-in")
	f.Float64Var(&tax, "tax", 0, "Sales tax percent")
	f.Float64Var(&docFee, "doc-fee", 0, "Taxable dealer doc fee")
	f.Float64Var(&fees, "fees", 0, "Untaxed title and registration fees")
	f.Float64Var(&apr, "apr", 0, "APR percent")
	f.IntVar(&term, "term", 0, "Loan term in months")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}
