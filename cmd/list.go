package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alebellina412/calcetto-app/internal/stats"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored matches, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := db.LoadMatches()
	if err != nil {
		return fmt.Errorf("load matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet. Run 'calcetto import <sheet.json>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-10s  %7s  %-6s  %s\n",
		"MATCH", "DATE", "SCORE", "WINNER", "NOTE")
	fmt.Fprintf(os.Stdout, "%-30s  %-10s  %7s  %-6s  %s\n",
		"──────────────────────────────", "──────────", "───────", "──────", "────")
	for i := range matches {
		v := stats.MatchToView(&matches[i])
		id := v.MatchID
		if len(id) > 30 {
			id = id[:30]
		}
		fmt.Fprintf(os.Stdout, "%-30s  %-10s  %7s  %-6s  %s\n",
			id, v.Date, fmt.Sprintf("%d-%d", v.GoalsA, v.GoalsB), v.Winner, v.Note)
	}
	return nil
}
