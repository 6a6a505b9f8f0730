// Package report renders analytics output as console tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/alebellina412/calcetto-app/internal/model"
	"github.com/alebellina412/calcetto-app/internal/stats"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintMatchSummary prints a one-line header for a match.
func PrintMatchSummary(w io.Writer, v model.MatchView) {
	fmt.Fprintf(w, "\nMatch: %s  |  Date: %s  |  Score: A %d – B %d  |  Winner: %s\n\n",
		v.MatchID, v.Date, v.GoalsA, v.GoalsB, v.Winner)
}

// PrintMatchLineups prints both rosters with per-player goals and assists,
// followed by any parsed note fields.
func PrintMatchLineups(w io.Writer, v model.MatchView, noteInfo map[string]string) {
	table := newTable(w)
	table.Header("TEAM A", "TEAM B")
	rows := len(v.TeamAPlayers)
	if len(v.TeamBPlayers) > rows {
		rows = len(v.TeamBPlayers)
	}
	for i := 0; i < rows; i++ {
		a, b := "", ""
		if i < len(v.TeamAPlayers) {
			a = v.TeamAPlayers[i]
		}
		if i < len(v.TeamBPlayers) {
			b = v.TeamBPlayers[i]
		}
		table.Append(a, b)
	}
	table.Render()

	if len(noteInfo) > 0 {
		keys := make([]string, 0, len(noteInfo))
		for k := range noteInfo {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(w)
		for _, k := range keys {
			fmt.Fprintf(w, "  %-8s: %s\n", k, noteInfo[k])
		}
	}
}

// PrintPlayerStatsTable prints career counters and derived rates for a set
// of players.
func PrintPlayerStatsTable(w io.Writer, list []model.PlayerStats) {
	table := newTable(w)
	table.Header("NAME", "M", "W", "D", "L", "GOALS", "ASSISTS", "CONCEDED", "G/M", "WIN%", "RATING")
	for i := range list {
		s := &list[i]
		table.Append(
			s.Name,
			strconv.Itoa(s.Matches),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.GoalsScored),
			strconv.Itoa(s.Assists),
			strconv.Itoa(s.GoalsConceded),
			fmt.Sprintf("%.2f", s.GoalsPerMatch()),
			fmt.Sprintf("%.0f%%", s.WinRate()*100),
			fmt.Sprintf("%.1f", s.Rating),
		)
	}
	table.Render()
}

// ranking prints one dashboard ranking with a value column.
func ranking(w io.Writer, title, valueHeader string, list []model.PlayerStats, value func(*model.PlayerStats) string) {
	fmt.Fprintf(w, "\n--- %s ---\n\n", title)
	table := newTable(w)
	table.Header("#", "NAME", valueHeader, "MATCHES")
	for i := range list {
		s := &list[i]
		table.Append(strconv.Itoa(i+1), s.Name, value(s), strconv.Itoa(s.Matches))
	}
	table.Render()
}

// PrintDashboard prints the five rankings and the latest matches.
func PrintDashboard(w io.Writer, dash model.Dashboard) {
	ranking(w, "Top Scorers", "GOALS", dash.TopScorers, func(s *model.PlayerStats) string {
		return strconv.Itoa(s.GoalsScored)
	})
	ranking(w, "Top Assists", "ASSISTS", dash.TopAssists, func(s *model.PlayerStats) string {
		return strconv.Itoa(s.Assists)
	})
	ranking(w, "Goals per Match", "G/M", dash.GoalsPerMatch, func(s *model.PlayerStats) string {
		return fmt.Sprintf("%.2f", s.GoalsPerMatch())
	})
	ranking(w, "Win Rate", "WIN%", dash.WinRate, func(s *model.PlayerStats) string {
		return fmt.Sprintf("%.0f%%", s.WinRate()*100)
	})
	ranking(w, "Rating", "RATING", dash.RatingRanking, func(s *model.PlayerStats) string {
		return fmt.Sprintf("%.1f", s.Rating)
	})

	fmt.Fprintf(w, "\n--- Latest Matches ---\n\n")
	table := newTable(w)
	table.Header("MATCH", "DATE", "SCORE", "WINNER")
	for _, v := range dash.LatestMatches {
		table.Append(v.MatchID, v.Date, fmt.Sprintf("%d-%d", v.GoalsA, v.GoalsB), v.Winner)
	}
	table.Render()
}

// PrintRatingTimeline prints a player's (date, rating) history.
func PrintRatingTimeline(w io.Writer, player string, timeline []model.TimelinePoint) {
	fmt.Fprintf(w, "\n--- Rating Timeline: %s ---\n\n", player)
	table := newTable(w)
	table.Header("DATE", "RATING")
	for _, p := range timeline {
		table.Append(p.Date, fmt.Sprintf("%.2f", p.Rating))
	}
	table.Render()
}

// PrintSeriesTable prints one cumulative metric for several subjects over
// the shared date axis. Absent subjects show an em dash.
func PrintSeriesTable(w io.Writer, metric stats.Metric, labels []string, series model.MultiSeries, subjects []string) {
	fmt.Fprintf(w, "\n--- %s ---\n\n", series.Label)
	table := newTable(w)
	header := make([]any, 0, len(subjects)+1)
	header = append(header, "DATE")
	for _, subject := range subjects {
		header = append(header, subject)
	}
	table.Header(header...)
	for i, label := range labels {
		row := make([]any, 0, len(subjects)+1)
		row = append(row, label)
		for _, subject := range subjects {
			values := series.ValuesByPlayer[subject]
			if i >= len(values) || values[i] == nil {
				row = append(row, "—")
				continue
			}
			row = append(row, formatMetric(metric.Key, *values[i]))
		}
		table.Append(row...)
	}
	table.Render()
}

func formatMetric(key string, v float64) string {
	switch key {
	case "rating", "win_rate":
		return fmt.Sprintf("%.2f", v)
	case "goals_per_match":
		return fmt.Sprintf("%.3f", v)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// PrintGroupStats prints the combined record of a group of teammates.
func PrintGroupStats(w io.Writer, names []string, gs model.GroupStats) {
	fmt.Fprintf(w, "\n--- Together: %v ---\n\n", names)
	if gs.Matches == 0 {
		fmt.Fprintln(w, "No matches with the whole group on the same team.")
		return
	}
	table := newTable(w)
	table.Header("M", "W", "D", "L", "WIN%", "GOALS", "ASSISTS", "FOR", "AGAINST", "AVG DIFF")
	table.Append(
		strconv.Itoa(gs.Matches),
		strconv.Itoa(gs.Wins),
		strconv.Itoa(gs.Draws),
		strconv.Itoa(gs.Losses),
		fmt.Sprintf("%.1f%%", gs.WinRatePct),
		strconv.Itoa(gs.GoalsScored),
		strconv.Itoa(gs.Assists),
		strconv.Itoa(gs.GoalsFor),
		strconv.Itoa(gs.GoalsAgainst),
		fmt.Sprintf("%+.2f", gs.AvgGoalDiff),
	)
	table.Render()
}

// PrintOnOff prints the with/without split from the primary's perspective.
func PrintOnOff(w io.Writer, split model.OnOffStats) {
	fmt.Fprintf(w, "\n--- %s with vs without %v ---\n\n", split.Primary, split.Partners)
	table := newTable(w)
	table.Header("BUCKET", "M", "W", "D", "L", "WIN%", "FOR", "AGAINST", "OWN G", "OWN A")
	appendBucket := func(label string, b model.OnOffBucket) {
		table.Append(
			label,
			strconv.Itoa(b.Matches),
			strconv.Itoa(b.Wins),
			strconv.Itoa(b.Draws),
			strconv.Itoa(b.Losses),
			fmt.Sprintf("%.1f%%", b.WinRatePct),
			strconv.Itoa(b.GoalsFor),
			strconv.Itoa(b.GoalsAgainst),
			strconv.Itoa(b.Goals),
			strconv.Itoa(b.Assists),
		)
	}
	appendBucket("with", split.With)
	appendBucket("without", split.Without)
	table.Render()
}

// PrintSharedMatches prints the three-way classification of a primary
// player's log against a comparison set.
func PrintSharedMatches(w io.Writer, primary string, shared model.SharedMatches) {
	printMatchViews(w, "All together", shared.AllTogether)
	printMatchViews(w, fmt.Sprintf("%s only", primary), shared.PrimaryOnly)

	names := make([]string, 0, len(shared.WithoutPrimary))
	for name := range shared.WithoutPrimary {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		printMatchViews(w, fmt.Sprintf("%s without %s", name, primary), shared.WithoutPrimary[name])
	}
}

func printMatchViews(w io.Writer, title string, views []model.MatchView) {
	fmt.Fprintf(w, "\n--- %s (%d) ---\n\n", title, len(views))
	if len(views) == 0 {
		fmt.Fprintln(w, "none")
		return
	}
	table := newTable(w)
	table.Header("MATCH", "DATE", "SCORE", "WINNER")
	for _, v := range views {
		table.Append(v.MatchID, v.Date, fmt.Sprintf("%d-%d", v.GoalsA, v.GoalsB), v.Winner)
	}
	table.Render()
}
