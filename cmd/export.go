package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alebellina412/calcetto-app/internal/model"
	"github.com/alebellina412/calcetto-app/internal/stats"
)

var (
	exportOut     string
	exportPlayers string
)

// exportDoc is the top-level JSON schema produced by the export command.
type exportDoc struct {
	GeneratedAt string              `json:"generated_at"`
	Matches     int                 `json:"matches"`
	Players     []model.PlayerStats `json:"players"`
	Dashboard   model.Dashboard     `json:"dashboard"`
	Log         []model.MatchView   `json:"log"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full log and stats as JSON",
	Long: `Dump the match log, per-player career stats and the dashboard
rankings as one JSON document, for spreadsheets or external tooling.

Example:
  calcetto export --out season.json
  calcetto export --players "Luca,Marco"`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to file instead of stdout")
	exportCmd.Flags().StringVar(&exportPlayers, "players", "", "comma-separated names to restrict the players block")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, names, err := loadLog(db)
	if err != nil {
		return err
	}

	byName := stats.ComputePlayerStats(matches, names)
	keep := map[string]bool{}
	if exportPlayers != "" {
		for _, name := range strings.Split(exportPlayers, ",") {
			keep[strings.TrimSpace(name)] = true
		}
	}
	players := make([]model.PlayerStats, 0, len(byName))
	for name, s := range byName {
		if len(keep) > 0 && !keep[name] {
			continue
		}
		players = append(players, *s)
	}
	sort.Slice(players, func(i, j int) bool {
		return strings.ToLower(players[i].Name) < strings.ToLower(players[j].Name)
	})

	log := make([]model.MatchView, 0, len(matches))
	for i := range matches {
		log = append(log, stats.MatchToView(&matches[i]))
	}

	doc := exportDoc{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Matches:     len(matches),
		Players:     players,
		Dashboard:   stats.BuildDashboard(matches, names),
		Log:         log,
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	b = append(b, '\n')

	if exportOut == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	if err := os.WriteFile(exportOut, b, 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s (%d matches, %d players)\n", exportOut, len(matches), len(players))
	return nil
}
