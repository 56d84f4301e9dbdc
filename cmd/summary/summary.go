// Package summary implements the summary command
package summary

import (
	"fmt"
	"io"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/aggregation"
	"fjacquet/fintrack/internal/container"

	"github.com/spf13/cobra"
)

var (
	timeframe string
	recent    int
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show balance, category totals and trends",
	Long: `Show the all-time balance, followed by income, expenses, category breakdowns,
the expense trend and the latest transactions of the selected timeframe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		tf := app.GetConfig().DefaultTimeframe()
		if cmd.Flags().Changed("timeframe") {
			if tf, err = aggregation.ParseTimeframe(timeframe); err != nil {
				return err
			}
		}
		limit := app.GetConfig().View.RecentLimit
		if cmd.Flags().Changed("recent") {
			limit = recent
		}
		return Run(app, tf, limit, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVarP(&timeframe, "timeframe", "f", "", "Window: today, week, month or all (default from config)")
	Cmd.Flags().IntVarP(&recent, "recent", "r", 0, "Number of recent transactions per type (default from config)")
}

// Run prints the dashboard of tf.
func Run(app *container.Container, tf aggregation.Timeframe, recentLimit int, out io.Writer) error {
	d := app.GetAggregator().Dashboard(app.GetRepository().All(), tf, app.GetClock().Now(), recentLimit)
	fmt.Fprintln(out, app.GetRenderer().Dashboard(d))
	return nil
}
