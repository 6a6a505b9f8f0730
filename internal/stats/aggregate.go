package stats

import (
	"github.com/alebellina412/calcetto-app/internal/model"
)

// ComputePlayerStats folds the match log into per-player career counters.
// The result is pre-seeded with a zero entry for every known name, and any
// player discovered in the log but missing from the list is added on the
// fly — the output never drops a player who appears in at least one match.
// Iteration order does not matter: counters are order-independent.
//
// Ratings are filled from a separate full replay so the returned bundles
// are complete; a player with zero matches keeps the baseline.
func ComputePlayerStats(matches []model.Match, names []string) map[string]*model.PlayerStats {
	byName := make(map[string]*model.PlayerStats, len(names))
	for _, name := range names {
		byName[name] = &model.PlayerStats{Name: name, Rating: BaselineRating}
	}
	get := func(name string) *model.PlayerStats {
		s, ok := byName[name]
		if !ok {
			s = &model.PlayerStats{Name: name, Rating: BaselineRating}
			byName[name] = s
		}
		return s
	}

	for i := range matches {
		m := &matches[i]
		goalsA, goalsB := m.GoalsA(), m.GoalsB()
		for _, row := range m.Rows {
			s := get(row.Player)
			s.Matches++
			s.GoalsScored += row.Goals
			s.Assists += row.Assists

			conceded, won, lost := goalsB, goalsA > goalsB, goalsA < goalsB
			if row.Team == model.TeamB {
				conceded, won, lost = goalsA, goalsB > goalsA, goalsB < goalsA
			}
			s.GoalsConceded += conceded
			switch {
			case won:
				s.Wins++
			case lost:
				s.Losses++
			default:
				s.Draws++
			}
		}
	}

	for name, rating := range ComputeRatings(matches, names) {
		get(name).Rating = rating
	}
	return byName
}
