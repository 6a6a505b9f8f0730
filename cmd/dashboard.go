package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alebellina412/calcetto-app/internal/report"
	"github.com/alebellina412/calcetto-app/internal/stats"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show rankings and the latest matches",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, names, err := loadLog(db)
	if err != nil {
		return err
	}
	if len(matches) == 0 && len(names) == 0 {
		fmt.Fprintln(os.Stdout, "Nothing to rank yet. Run 'calcetto import <sheet.json>' first.")
		return nil
	}

	dash := stats.BuildDashboard(matches, names)
	report.PrintDashboard(os.Stdout, dash)
	return nil
}
