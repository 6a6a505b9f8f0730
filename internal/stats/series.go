package stats

import (
	"github.com/alebellina412/calcetto-app/internal/model"
)

// Metric identifies one of the fixed cumulative series tracked by the
// timeline builder.
type Metric struct {
	Key   string
	Label string
}

// SeriesMetrics is the fixed metric set, in display order.
var SeriesMetrics = []Metric{
	{"rating", "Rating"},
	{"wins", "Wins"},
	{"draws", "Draws"},
	{"losses", "Losses"},
	{"goals_scored", "Goals Scored"},
	{"goals_per_match", "Goals per Match"},
	{"assists", "Assists"},
	{"goals_conceded", "Goals Conceded"},
	{"win_rate", "Win Rate %"},
}

// subjectAccum carries one subject's running totals through the replay.
type subjectAccum struct {
	wins, draws, losses      int
	goals, assists, conceded int
}

func (a *subjectAccum) played() int { return a.wins + a.draws + a.losses }

// MultiCumulativeSeries replays the full log and produces, for every metric,
// one value sequence per subject over a shared date axis. A match is
// included on the axis when at least one subject played it; subjects absent
// from an included match get a nil marker so a plotted curve never implies a
// match they did not play. Matches with an empty roster on either side are
// skipped outright, matching the rating path.
//
// Goals-per-match and win-rate are recomputed per row from the subject's own
// matches-to-date, not the global match count.
func MultiCumulativeSeries(matches []model.Match, subjects []string) ([]string, map[string]model.MultiSeries) {
	accums := make(map[string]*subjectAccum, len(subjects))
	for _, s := range subjects {
		accums[s] = &subjectAccum{}
	}

	var labels []string
	series := make(map[string]model.MultiSeries, len(SeriesMetrics))
	for _, metric := range SeriesMetrics {
		byPlayer := make(map[string][]*float64, len(subjects))
		for _, s := range subjects {
			byPlayer[s] = []*float64{}
		}
		series[metric.Key] = model.MultiSeries{Label: metric.Label, ValuesByPlayer: byPlayer}
	}

	appendValue := func(key, subject string, v *float64) {
		ms := series[key]
		ms.ValuesByPlayer[subject] = append(ms.ValuesByPlayer[subject], v)
		series[key] = ms
	}

	replayRatings(matches, func(m *model.Match, ratings map[string]float64) {
		relevant := false
		for _, s := range subjects {
			if m.HasPlayer(s) {
				relevant = true
				break
			}
		}
		if !relevant {
			return
		}
		labels = append(labels, m.Date)

		goalsA, goalsB := m.GoalsA(), m.GoalsB()
		for _, subject := range subjects {
			team, playing := m.PlayerTeam(subject)
			if !playing {
				for _, metric := range SeriesMetrics {
					appendValue(metric.Key, subject, nil)
				}
				continue
			}

			acc := accums[subject]
			own, against := goalsA, goalsB
			if team == model.TeamB {
				own, against = goalsB, goalsA
			}
			switch {
			case own > against:
				acc.wins++
			case own < against:
				acc.losses++
			default:
				acc.draws++
			}
			for _, r := range m.Rows {
				if r.Player == subject {
					acc.goals += r.Goals
					acc.assists += r.Assists
				}
			}
			acc.conceded += against

			played := acc.played()
			appendValue("rating", subject, ptr(round2(ratings[subject])))
			appendValue("wins", subject, ptr(float64(acc.wins)))
			appendValue("draws", subject, ptr(float64(acc.draws)))
			appendValue("losses", subject, ptr(float64(acc.losses)))
			appendValue("goals_scored", subject, ptr(float64(acc.goals)))
			appendValue("goals_per_match", subject, ptr(round3(float64(acc.goals)/float64(played))))
			appendValue("assists", subject, ptr(float64(acc.assists)))
			appendValue("goals_conceded", subject, ptr(float64(acc.conceded)))
			appendValue("win_rate", subject, ptr(round2(float64(acc.wins)/float64(played)*100)))
		}
	})

	return labels, series
}

// CumulativeSeries is the single-subject variant. Every included match was
// played by the subject, so the value sequences carry no nil markers.
func CumulativeSeries(matches []model.Match, subject string) ([]string, map[string]model.Series) {
	labels, multi := MultiCumulativeSeries(matches, []string{subject})
	out := make(map[string]model.Series, len(multi))
	for key, ms := range multi {
		out[key] = model.Series{Label: ms.Label, Values: ms.ValuesByPlayer[subject]}
	}
	return labels, out
}

func ptr(v float64) *float64 { return &v }
