// Package stats is the analytics core: it replays an immutable snapshot of
// the match log to produce skill ratings, career counters, cumulative series
// and group analytics. Every function allocates its own state and returns
// fresh values; nothing in here does I/O or keeps state between calls.
package stats

import (
	"math"
	"sort"

	"github.com/alebellina412/calcetto-app/internal/model"
)

const (
	// BaselineRating is assigned to a player the first time they appear.
	BaselineRating = 1000.0
	// KFactor scales the per-match rating delta.
	KFactor = 24.0
)

// Chronological returns a copy of the log sorted ascending by (date, id).
// The id tie-break makes replay order deterministic for same-day matches.
func Chronological(matches []model.Match) []model.Match {
	out := make([]model.Match, len(matches))
	copy(out, matches)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ratable reports whether a match contributes a rating update: both rosters
// must be non-empty. Matches failing this are skipped by the rating and
// timeline paths only — aggregate counters still see them.
func ratable(m *model.Match) bool {
	return len(m.TeamA()) > 0 && len(m.TeamB()) > 0
}

// replayRatings walks the log in chronological order maintaining the rating
// map, calling visit after each ratable match has been applied. Ratings are
// created lazily at the baseline on a player's first appearance.
func replayRatings(matches []model.Match, visit func(m *model.Match, ratings map[string]float64)) map[string]float64 {
	ratings := make(map[string]float64)
	for _, m := range Chronological(matches) {
		if !ratable(&m) {
			continue
		}
		teamA, teamB := m.TeamA(), m.TeamB()
		for _, r := range m.Rows {
			if _, ok := ratings[r.Player]; !ok {
				ratings[r.Player] = BaselineRating
			}
		}

		avgA := teamMean(ratings, teamA)
		avgB := teamMean(ratings, teamB)
		expectedA := 1.0 / (1.0 + math.Pow(10, (avgB-avgA)/400.0))
		expectedB := 1.0 - expectedA

		var actualA, actualB float64
		switch m.Winner() {
		case model.WinnerA:
			actualA, actualB = 1.0, 0.0
		case model.WinnerB:
			actualA, actualB = 0.0, 1.0
		default:
			actualA, actualB = 0.5, 0.5
		}

		deltaA := KFactor * (actualA - expectedA)
		deltaB := KFactor * (actualB - expectedB)
		for _, r := range teamA {
			ratings[r.Player] += deltaA
		}
		for _, r := range teamB {
			ratings[r.Player] += deltaB
		}

		if visit != nil {
			visit(&m, ratings)
		}
	}
	return ratings
}

func teamMean(ratings map[string]float64, rows []model.PlayerRow) float64 {
	sum := 0.0
	for _, r := range rows {
		sum += ratings[r.Player]
	}
	return sum / float64(len(rows))
}

// ComputeRatings replays the full log and returns the final rating per
// player. Players present in the names list but absent from every match are
// reported at the baseline.
func ComputeRatings(matches []model.Match, names []string) map[string]float64 {
	ratings := replayRatings(matches, nil)
	for _, name := range names {
		if _, ok := ratings[name]; !ok {
			ratings[name] = BaselineRating
		}
	}
	return ratings
}

// RatingTimeline replays the full log and records a (date, rating) snapshot
// after every ratable match the player appeared in. Values are rounded to
// two decimals for display; the replay itself keeps full precision.
func RatingTimeline(matches []model.Match, player string) []model.TimelinePoint {
	var timeline []model.TimelinePoint
	replayRatings(matches, func(m *model.Match, ratings map[string]float64) {
		if !m.HasPlayer(player) {
			return
		}
		timeline = append(timeline, model.TimelinePoint{
			Date:   m.Date,
			Rating: round2(ratings[player]),
		})
	})
	return timeline
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
