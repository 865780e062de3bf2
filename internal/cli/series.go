package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/spf13/cobra"
)

type seriesOptions struct {
	*RootOptions
	Year  int
	Month int
}

// NewSeriesCommand prints the day-by-day balance of one month.
func NewSeriesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &seriesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Show the daily balance series of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, month := opts.Year, time.Month(opts.Month)
			if year == 0 {
				year = now.Year()
			}
			if month == 0 {
				month = now.Month()
			}

			return withStore(cmd, opts.RootOptions, func(ctx context.Context, st *store.Store) error {
				points, err := st.MonthlySeries(ctx, year, month)
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return outputJSON(cmd, points)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
				fmt.Fprintln(w, "date\tincome\texpense\tbalance\tcumulative\t")
				for _, p := range points {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", p.Date, p.Income, p.Expense, p.Balance, p.Cumulative)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&opts.Year, "year", 0, "year (defaults to the current one)")
	cmd.Flags().IntVar(&opts.Month, "month", 0, "month 1-12 (defaults to the current one)")

	return cmd
}
