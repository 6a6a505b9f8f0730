package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alebellina412/calcetto-app/internal/report"
	"github.com/alebellina412/calcetto-app/internal/stats"
)

var togetherCmd = &cobra.Command{
	Use:   "together <name> <name> [name...]",
	Short: "Combined record when a group plays on the same team",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTogether,
}

var onoffCmd = &cobra.Command{
	Use:   "onoff <primary> <partner> [partner...]",
	Short: "Split a player's record by partner presence",
	Long: `Compare how a player performs with all of the named partners on
their team versus every other match they played.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runOnOff,
}

var sharedCmd = &cobra.Command{
	Use:   "shared <primary> <name> [name...]",
	Short: "Classify a player's matches against a comparison set",
	Long: `Split the log three ways: matches where the primary and every
named player took part (any team), matches only the primary played,
and per-player matches played without the primary.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runShared,
}

func runTogether(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, _, err := loadLog(db)
	if err != nil {
		return err
	}

	gs := stats.CombinedGroupStats(matches, args)
	report.PrintGroupStats(os.Stdout, args, gs)
	return nil
}

func runOnOff(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, _, err := loadLog(db)
	if err != nil {
		return err
	}

	split := stats.OnOffSplit(matches, args[0], args[1:])
	if split.With.Matches+split.Without.Matches == 0 {
		fmt.Fprintf(os.Stdout, "No matches found for %s.\n", args[0])
		return nil
	}
	report.PrintOnOff(os.Stdout, split)
	return nil
}

func runShared(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, _, err := loadLog(db)
	if err != nil {
		return err
	}

	shared := stats.ClassifySharedMatches(matches, args[0], args[1:])
	report.PrintSharedMatches(os.Stdout, args[0], shared)
	return nil
}
