package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alebellina412/calcetto-app/internal/report"
	"github.com/alebellina412/calcetto-app/internal/stats"
)

var trendMetric string

var trendCmd = &cobra.Command{
	Use:   "trend <name> [name...]",
	Short: "Cumulative per-match trends for one or more players",
	Long: `Track how career metrics evolve match by match. With several names
the tables share one date axis; a dash marks matches a player sat out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrend,
}

func init() {
	trendCmd.Flags().StringVar(&trendMetric, "metric", "", "show a single metric (rating, wins, draws, losses, goals_scored, goals_per_match, assists, goals_conceded, win_rate)")
}

func runTrend(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, _, err := loadLog(db)
	if err != nil {
		return err
	}

	labels, series := stats.MultiCumulativeSeries(matches, args)
	if len(labels) == 0 {
		fmt.Fprintln(os.Stdout, "no matches found")
		return nil
	}

	for _, metric := range stats.SeriesMetrics {
		if trendMetric != "" && metric.Key != trendMetric {
			continue
		}
		report.PrintSeriesTable(os.Stdout, metric, labels, series[metric.Key], args)
	}
	return nil
}
