package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alebellina412/calcetto-app/internal/model"
)

const rankingSize = 10

// BuildDashboard assembles the top-10 rankings and the most recent matches.
// The log is expected newest-first (the loader's order); the rankings
// themselves do not depend on it.
func BuildDashboard(matches []model.Match, names []string) model.Dashboard {
	byName := ComputePlayerStats(matches, names)
	all := make([]model.PlayerStats, 0, len(byName))
	withMatches := make([]model.PlayerStats, 0, len(byName))
	for _, s := range byName {
		all = append(all, *s)
		if s.Matches >= 1 {
			withMatches = append(withMatches, *s)
		}
	}

	dash := model.Dashboard{
		TopScorers:    rank(all, func(s *model.PlayerStats) float64 { return float64(s.GoalsScored) }, false),
		TopAssists:    rank(all, func(s *model.PlayerStats) float64 { return float64(s.Assists) }, false),
		GoalsPerMatch: rank(withMatches, func(s *model.PlayerStats) float64 { return s.GoalsPerMatch() }, true),
		WinRate:       rank(withMatches, func(s *model.PlayerStats) float64 { return s.WinRate() }, true),
		RatingRanking: rank(all, func(s *model.PlayerStats) float64 { return s.Rating }, true),
	}

	for i := range matches {
		if i == rankingSize {
			break
		}
		dash.LatestMatches = append(dash.LatestMatches, MatchToView(&matches[i]))
	}
	return dash
}

// rank sorts a copy descending by metric and truncates to the top ten.
// Ties fall back to match count — more matches first for per-match rates and
// rating, fewer first for raw totals — then to case-insensitive name.
func rank(stats []model.PlayerStats, metric func(*model.PlayerStats) float64, moreMatchesFirst bool) []model.PlayerStats {
	out := make([]model.PlayerStats, len(stats))
	copy(out, stats)
	sort.SliceStable(out, func(i, j int) bool {
		mi, mj := metric(&out[i]), metric(&out[j])
		if mi != mj {
			return mi > mj
		}
		if out[i].Matches != out[j].Matches {
			if moreMatchesFirst {
				return out[i].Matches > out[j].Matches
			}
			return out[i].Matches < out[j].Matches
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	if len(out) > rankingSize {
		out = out[:rankingSize]
	}
	return out
}

// PlayerMatchViews returns display views of every match the player appeared
// in, preserving the log's order.
func PlayerMatchViews(matches []model.Match, player string) []model.MatchView {
	var out []model.MatchView
	for i := range matches {
		if matches[i].HasPlayer(player) {
			out = append(out, MatchToView(&matches[i]))
		}
	}
	return out
}

// MatchToView renders a match for lists and JSON export. Player lines carry
// the recorded individual goals/assists even when the official score was
// overridden.
func MatchToView(m *model.Match) model.MatchView {
	v := model.MatchView{
		MatchID: m.ID,
		Date:    m.Date,
		Note:    m.Note,
		GoalsA:  m.GoalsA(),
		GoalsB:  m.GoalsB(),
		Winner:  m.Winner(),
	}
	for _, r := range m.TeamA() {
		v.TeamAPlayers = append(v.TeamAPlayers, fmt.Sprintf("%s (G:%d, A:%d)", r.Player, r.Goals, r.Assists))
	}
	for _, r := range m.TeamB() {
		v.TeamBPlayers = append(v.TeamBPlayers, fmt.Sprintf("%s (G:%d, A:%d)", r.Player, r.Goals, r.Assists))
	}
	return v
}
