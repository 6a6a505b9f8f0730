package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alebellina412/calcetto-app/internal/model"
	"github.com/alebellina412/calcetto-app/internal/report"
	"github.com/alebellina412/calcetto-app/internal/stats"
)

var playerShowMatches bool

var playerCmd = &cobra.Command{
	Use:   "player <name> [name...]",
	Short: "Career stats for one or more players",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlayer,
}

func init() {
	playerCmd.Flags().BoolVar(&playerShowMatches, "matches", false, "also list each player's matches")
}

func runPlayer(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, _, err := loadLog(db)
	if err != nil {
		return err
	}

	byName := stats.ComputePlayerStats(matches, args)
	list := make([]model.PlayerStats, 0, len(args))
	for _, name := range args {
		list = append(list, *byName[name])
	}
	report.PrintPlayerStatsTable(os.Stdout, list)

	if len(args) == 1 {
		timeline := stats.RatingTimeline(matches, args[0])
		if len(timeline) > 0 {
			report.PrintRatingTimeline(os.Stdout, args[0], timeline)
		}
	}

	if playerShowMatches {
		for _, name := range args {
			views := stats.PlayerMatchViews(matches, name)
			fmt.Fprintf(os.Stdout, "\n--- Matches: %s (%d) ---\n\n", name, len(views))
			for _, v := range views {
				fmt.Fprintf(os.Stdout, "  %-10s  %d-%d  %-6s  %s\n",
					v.Date, v.GoalsA, v.GoalsB, v.Winner, v.MatchID)
			}
		}
	}
	return nil
}
