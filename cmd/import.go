package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alebellina412/calcetto-app/internal/loader"
	"github.com/alebellina412/calcetto-app/internal/model"
	"github.com/alebellina412/calcetto-app/internal/report"
	"github.com/alebellina412/calcetto-app/internal/stats"
)

var importCmd = &cobra.Command{
	Use:   "import <sheet.json | directory>",
	Short: "Import one match sheet or a directory of sheets",
	Long: `Validate JSON match sheets and store them in the database.
Players appearing on a sheet are registered automatically. Re-importing
a sheet with the same id replaces the stored match.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	var matches []model.Match
	var invalid []loader.InvalidFile
	if info.IsDir() {
		matches, invalid, err = loader.ParseDir(path)
		if err != nil {
			return fmt.Errorf("scan directory: %w", err)
		}
	} else {
		m, err := loader.ParseMatchFile(path)
		if err != nil {
			return fmt.Errorf("parse sheet: %w", err)
		}
		matches = append(matches, m)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stored, replaced := 0, 0
	for _, m := range matches {
		exists, err := db.MatchExists(m.ID)
		if err != nil {
			return fmt.Errorf("check match %s: %w", m.ID, err)
		}
		names := make([]string, 0, len(m.Rows))
		for _, r := range m.Rows {
			names = append(names, r.Player)
		}
		if err := db.EnsurePlayers(names); err != nil {
			return fmt.Errorf("register players: %w", err)
		}
		if err := db.InsertMatch(m); err != nil {
			return fmt.Errorf("insert match %s: %w", m.ID, err)
		}
		if exists {
			replaced++
		} else {
			stored++
		}
	}

	fmt.Fprintf(os.Stdout, "Imported %d match(es), replaced %d.\n", stored, replaced)
	for _, f := range invalid {
		fmt.Fprintf(os.Stderr, "skipped %s: %v\n", f.FileName, f.Err)
	}

	if len(matches) == 1 {
		report.PrintMatchSummary(os.Stdout, stats.MatchToView(&matches[0]))
	}
	return nil
}
