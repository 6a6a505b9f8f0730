package stats

import (
	"testing"

	"github.com/alebellina412/calcetto-app/internal/model"
)

// groupLog: P1+P2 teammates in m1 (win), opponents in m2, P2 absent in m3.
func groupLog() []model.Match {
	return []model.Match{
		makeMatch("m1", "2024-01-01", []line{{"P1", 2, 1}, {"P2", 1, 0}}, []line{{"P3", 1, 0}, {"P4", 0, 0}}),
		makeMatch("m2", "2024-01-08", []line{{"P1", 0, 0}, {"P3", 1, 0}}, []line{{"P2", 2, 0}, {"P4", 0, 0}}),
		makeMatch("m3", "2024-01-15", []line{{"P1", 1, 0}, {"P4", 1, 0}}, []line{{"P3", 0, 0}}),
	}
}

// TestCombinedGroup_OnlySharedTeamMatches: split or incomplete appearances
// are skipped.
func TestCombinedGroup_OnlySharedTeamMatches(t *testing.T) {
	gs := CombinedGroupStats(groupLog(), []string{"P1", "P2"})
	if gs.Matches != 1 {
		t.Fatalf("only m1 qualifies, got %d matches", gs.Matches)
	}
	if gs.Wins != 1 || gs.WinRatePct != 100.0 {
		t.Errorf("m1 is a 3-1 win: %+v", gs)
	}
	if gs.GoalsScored != 3 || gs.Assists != 1 {
		t.Errorf("group contributions: want goals=3 assists=1, got goals=%d assists=%d", gs.GoalsScored, gs.Assists)
	}
	if gs.GoalsFor != 3 || gs.GoalsAgainst != 1 {
		t.Errorf("team view: want 3-1, got %d-%d", gs.GoalsFor, gs.GoalsAgainst)
	}
	if gs.AvgGoalDiff != 2.0 {
		t.Errorf("avg goal diff: want 2.0, got %f", gs.AvgGoalDiff)
	}
}

// TestCombinedGroup_EmptyList: all-zero structure, not an error.
func TestCombinedGroup_EmptyList(t *testing.T) {
	gs := CombinedGroupStats(groupLog(), nil)
	if gs != (model.GroupStats{}) {
		t.Errorf("empty group must be all-zero, got %+v", gs)
	}
}

// TestCombinedGroup_NoQualifyingMatches: zero counts and 0.0 rates.
func TestCombinedGroup_NoQualifyingMatches(t *testing.T) {
	gs := CombinedGroupStats(groupLog(), []string{"P1", "Ghost"})
	if gs.Matches != 0 || gs.WinRatePct != 0.0 || gs.AvgGoalDiff != 0.0 {
		t.Errorf("no shared matches: want zeros, got %+v", gs)
	}
}

// TestOnOff_PartitionsEveryPrimaryMatch: with+without match counts equal the
// primary's total.
func TestOnOff_PartitionsEveryPrimaryMatch(t *testing.T) {
	log := groupLog()
	split := OnOffSplit(log, "P1", []string{"P2"})

	byName := ComputePlayerStats(log, nil)
	total := byName["P1"].Matches
	if split.With.Matches+split.Without.Matches != total {
		t.Errorf("buckets must partition the primary's log: %d + %d != %d",
			split.With.Matches, split.Without.Matches, total)
	}
	// m1 with, m2 (opponents) and m3 (P2 absent) without.
	if split.With.Matches != 1 || split.Without.Matches != 2 {
		t.Errorf("want with=1 without=2, got with=%d without=%d", split.With.Matches, split.Without.Matches)
	}
}

// TestOnOff_PrimaryPerspective: wins and own goals/assists belong to the
// primary, goals-for/against to the primary's team.
func TestOnOff_PrimaryPerspective(t *testing.T) {
	split := OnOffSplit(groupLog(), "P1", []string{"P2"})

	if split.With.Wins != 1 || split.With.GoalsFor != 3 || split.With.GoalsAgainst != 1 {
		t.Errorf("with bucket (m1): %+v", split.With)
	}
	if split.With.Goals != 2 || split.With.Assists != 1 {
		t.Errorf("with bucket should carry only P1's own line: %+v", split.With)
	}

	// m2: P1's team lost 1-2. m3: P1's team won 2-0.
	if split.Without.Wins != 1 || split.Without.Losses != 1 {
		t.Errorf("without bucket W/L: %+v", split.Without)
	}
	if split.Without.WinRatePct != 50.0 {
		t.Errorf("without win rate: want 50.0, got %f", split.Without.WinRatePct)
	}
}

// TestOnOff_PartialOverlapIsWithout: only a full partner set on the
// primary's team counts as "with".
func TestOnOff_PartialOverlapIsWithout(t *testing.T) {
	m := makeMatch("m1", "2024-01-01",
		[]line{{"P1", 1, 0}, {"P2", 0, 0}},
		[]line{{"P3", 0, 0}, {"P4", 0, 0}},
	)
	split := OnOffSplit([]model.Match{m}, "P1", []string{"P2", "P3"})
	if split.With.Matches != 0 || split.Without.Matches != 1 {
		t.Errorf("P3 on the other team: match belongs to without, got %+v", split)
	}
}

// TestSharedMatches_Classification covers the three buckets.
func TestSharedMatches_Classification(t *testing.T) {
	log := []model.Match{
		makeMatch("m1", "2024-01-01", []line{{"P1", 1, 0}, {"P2", 0, 0}}, []line{{"P3", 0, 0}}),
		makeMatch("m2", "2024-01-08", []line{{"P1", 1, 0}}, []line{{"P4", 0, 0}}),
		makeMatch("m3", "2024-01-15", []line{{"P2", 1, 0}}, []line{{"P3", 0, 0}}),
	}
	shared := ClassifySharedMatches(log, "P1", []string{"P2", "P3"})

	if len(shared.AllTogether) != 1 || shared.AllTogether[0].MatchID != "m1" {
		t.Errorf("all-together: want [m1], got %+v", shared.AllTogether)
	}
	if len(shared.PrimaryOnly) != 1 || shared.PrimaryOnly[0].MatchID != "m2" {
		t.Errorf("primary-only: want [m2], got %+v", shared.PrimaryOnly)
	}
	if got := shared.WithoutPrimary["P2"]; len(got) != 1 || got[0].MatchID != "m3" {
		t.Errorf("P2 without primary: want [m3], got %+v", got)
	}
	if got := shared.WithoutPrimary["P3"]; len(got) != 1 || got[0].MatchID != "m3" {
		t.Errorf("P3 without primary: want [m3], got %+v", got)
	}
}
