package stats

import (
	"github.com/alebellina412/calcetto-app/internal/model"
)

// CombinedGroupStats aggregates a fixed group of players over the matches
// where every member was on the same team. A match where the group is split
// across teams, or where any member is absent, is skipped. An empty group
// yields the all-zero record, not an error.
func CombinedGroupStats(matches []model.Match, names []string) model.GroupStats {
	var gs model.GroupStats
	if len(names) == 0 {
		return gs
	}

	goalDiff := 0
	for i := range matches {
		m := &matches[i]
		team, ok := sameTeam(m, names)
		if !ok {
			continue
		}

		goalsA, goalsB := m.GoalsA(), m.GoalsB()
		own, against := goalsA, goalsB
		if team == model.TeamB {
			own, against = goalsB, goalsA
		}

		gs.Matches++
		switch {
		case own > against:
			gs.Wins++
		case own < against:
			gs.Losses++
		default:
			gs.Draws++
		}
		gs.GoalsFor += own
		gs.GoalsAgainst += against
		goalDiff += own - against

		for _, r := range m.Rows {
			if r.Team == team && contains(names, r.Player) {
				gs.GoalsScored += r.Goals
				gs.Assists += r.Assists
			}
		}
	}

	if gs.Matches > 0 {
		gs.WinRatePct = round2(float64(gs.Wins) / float64(gs.Matches) * 100)
		gs.AvgGoalDiff = round2(float64(goalDiff) / float64(gs.Matches))
	}
	return gs
}

// sameTeam returns the team every named player shares in this match, or
// false when any of them is absent or the group straddles both teams.
func sameTeam(m *model.Match, names []string) (model.Team, bool) {
	var team model.Team
	for i, name := range names {
		t, playing := m.PlayerTeam(name)
		if !playing {
			return "", false
		}
		if i == 0 {
			team = t
		} else if t != team {
			return "", false
		}
	}
	return team, true
}

// OnOffSplit partitions every match the primary player appeared in by
// whether all partners shared the primary's team. Partial overlap counts as
// "without". The two buckets are independent accumulators and every primary
// match lands in exactly one of them.
func OnOffSplit(matches []model.Match, primary string, partners []string) model.OnOffStats {
	out := model.OnOffStats{Primary: primary, Partners: partners}

	for i := range matches {
		m := &matches[i]
		team, playing := m.PlayerTeam(primary)
		if !playing {
			continue
		}

		withGroup := true
		for _, p := range partners {
			if t, ok := m.PlayerTeam(p); !ok || t != team {
				withGroup = false
				break
			}
		}

		bucket := &out.Without
		if withGroup {
			bucket = &out.With
		}

		goalsA, goalsB := m.GoalsA(), m.GoalsB()
		own, against := goalsA, goalsB
		if team == model.TeamB {
			own, against = goalsB, goalsA
		}

		bucket.Matches++
		switch {
		case own > against:
			bucket.Wins++
		case own < against:
			bucket.Losses++
		default:
			bucket.Draws++
		}
		bucket.GoalsFor += own
		bucket.GoalsAgainst += against
		for _, r := range m.Rows {
			if r.Player == primary {
				bucket.Goals += r.Goals
				bucket.Assists += r.Assists
			}
		}
	}

	deriveBucketRate(&out.With)
	deriveBucketRate(&out.Without)
	return out
}

func deriveBucketRate(b *model.OnOffBucket) {
	if b.Matches > 0 {
		b.WinRatePct = round2(float64(b.Wins) / float64(b.Matches) * 100)
	}
}

// ClassifySharedMatches splits the log three ways against a comparison set:
// matches where the primary and every comparison player appear (on any
// team), matches only the primary appears in, and, per comparison player,
// the matches that player played without the primary. The per-player buckets
// are each computed against the primary's presence independently.
func ClassifySharedMatches(matches []model.Match, primary string, others []string) model.SharedMatches {
	out := model.SharedMatches{
		WithoutPrimary: make(map[string][]model.MatchView, len(others)),
	}
	for _, name := range others {
		out.WithoutPrimary[name] = []model.MatchView{}
	}

	for i := range matches {
		m := &matches[i]
		primaryIn := m.HasPlayer(primary)

		if primaryIn {
			all, none := true, true
			for _, name := range others {
				if m.HasPlayer(name) {
					none = false
				} else {
					all = false
				}
			}
			if all && len(others) > 0 {
				out.AllTogether = append(out.AllTogether, MatchToView(m))
			}
			if none {
				out.PrimaryOnly = append(out.PrimaryOnly, MatchToView(m))
			}
			continue
		}

		for _, name := range others {
			if m.HasPlayer(name) {
				out.WithoutPrimary[name] = append(out.WithoutPrimary[name], MatchToView(m))
			}
		}
	}
	return out
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
