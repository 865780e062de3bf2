package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/spf13/cobra"
)

type summaryOptions struct {
	*RootOptions
	Date string
	From string
	To   string
}

// NewSummaryCommand prints the income, expense and order totals for a day or range.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &summaryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals for a day or a date range",
		Long: `Show income, expenses, balance and order counts.

Examples:
  laundryctl summary --date 2025-03-02
  laundryctl summary --from 2025-03-01 --to 2025-03-31 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := opts.From, opts.To
			if opts.Date != "" {
				from, to = opts.Date, opts.Date
			}
			if from == "" && to == "" {
				today := time.Now().Format(time.DateOnly)
				from, to = today, today
			}
			if from == "" || to == "" {
				return fmt.Errorf("--from and --to must be given together")
			}

			return withStore(cmd, opts.RootOptions, func(ctx context.Context, st *store.Store) error {
				summary, err := st.RangeSummary(ctx, from, to)
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return outputJSON(cmd, summary)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s .. %s\n", summary.From, summary.To)
				fmt.Fprintf(out, "income:  %s\n", summary.Income)
				fmt.Fprintf(out, "expense: %s\n", summary.Expense)
				fmt.Fprintf(out, "balance: %s\n", summary.Balance)
				fmt.Fprintf(out, "orders:  %d (%d pending)\n", summary.OrderCount, summary.PendingOrders)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.Date, "date", "", "single day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.From, "from", "", "first day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.To, "to", "", "last day of the range (YYYY-MM-DD)")

	return cmd
}
