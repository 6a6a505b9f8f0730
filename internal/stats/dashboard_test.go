package stats

import (
	"fmt"
	"testing"

	"github.com/alebellina412/calcetto-app/internal/model"
)

// TestDashboard_GoalsTieBreakFewerMatches: on equal goals the player with
// fewer matches ranks higher.
func TestDashboard_GoalsTieBreakFewerMatches(t *testing.T) {
	log := []model.Match{
		// Efficient: 3 goals in one match. Grinder: 3 goals over two.
		makeMatch("m1", "2024-01-01", []line{{"Efficient", 3, 0}}, []line{{"X1", 0, 0}}),
		makeMatch("m2", "2024-01-08", []line{{"Grinder", 2, 0}}, []line{{"X2", 0, 0}}),
		makeMatch("m3", "2024-01-15", []line{{"Grinder", 1, 0}}, []line{{"X3", 0, 0}}),
	}
	dash := BuildDashboard(log, nil)
	if dash.TopScorers[0].Name != "Efficient" {
		t.Errorf("goals tie: fewer matches ranks higher, got %s first", dash.TopScorers[0].Name)
	}
}

// TestDashboard_WinRateTieBreakMoreMatches: on equal win rate the player
// with more matches ranks higher.
func TestDashboard_WinRateTieBreakMoreMatches(t *testing.T) {
	log := []model.Match{
		makeMatch("m1", "2024-01-01", []line{{"Veteran", 1, 0}}, []line{{"X1", 0, 0}}),
		makeMatch("m2", "2024-01-08", []line{{"Veteran", 1, 0}}, []line{{"X2", 0, 0}}),
		makeMatch("m3", "2024-01-15", []line{{"Rookie", 1, 0}}, []line{{"X3", 0, 0}}),
	}
	dash := BuildDashboard(log, nil)
	if dash.WinRate[0].Name != "Veteran" {
		t.Errorf("win-rate tie: more matches ranks higher, got %s first", dash.WinRate[0].Name)
	}
}

// TestDashboard_NameTieBreakCaseInsensitive: the final tie-break is the
// lowercased name ascending.
func TestDashboard_NameTieBreakCaseInsensitive(t *testing.T) {
	log := []model.Match{
		makeMatch("m1", "2024-01-01", []line{{"bravo", 1, 0}, {"Alpha", 1, 0}}, []line{{"X1", 0, 0}, {"X2", 0, 0}}),
	}
	dash := BuildDashboard(log, nil)
	if dash.TopScorers[0].Name != "Alpha" || dash.TopScorers[1].Name != "bravo" {
		t.Errorf("name tie-break: want Alpha then bravo, got %s then %s",
			dash.TopScorers[0].Name, dash.TopScorers[1].Name)
	}
}

// TestDashboard_RateRankingsRequireAMatch: zero-match players appear in the
// rating ranking but never in the per-match-rate rankings.
func TestDashboard_RateRankingsRequireAMatch(t *testing.T) {
	log := []model.Match{
		makeMatch("m1", "2024-01-01", []line{{"P1", 1, 0}}, []line{{"P2", 0, 0}}),
	}
	dash := BuildDashboard(log, []string{"P1", "P2", "Bench"})

	for _, s := range dash.GoalsPerMatch {
		if s.Name == "Bench" {
			t.Error("Bench has no matches and must not rank in goals/match")
		}
	}
	for _, s := range dash.WinRate {
		if s.Name == "Bench" {
			t.Error("Bench has no matches and must not rank in win rate")
		}
	}
	found := false
	for _, s := range dash.RatingRanking {
		if s.Name == "Bench" {
			found = true
			if s.Rating != 1000.0 {
				t.Errorf("Bench rating: want baseline, got %f", s.Rating)
			}
		}
	}
	if !found {
		t.Error("Bench belongs in the rating ranking at the baseline")
	}
}

// TestDashboard_TopTenTruncation: rankings stop at ten entries and latest
// matches at ten views.
func TestDashboard_TopTenTruncation(t *testing.T) {
	var log []model.Match
	for i := 0; i < 14; i++ {
		a := fmt.Sprintf("A%02d", i)
		b := fmt.Sprintf("B%02d", i)
		log = append(log, makeMatch(
			fmt.Sprintf("m%02d", i),
			fmt.Sprintf("2024-01-%02d", i+1),
			[]line{{a, i, 0}},
			[]line{{b, 0, 0}},
		))
	}
	dash := BuildDashboard(log, nil)
	if len(dash.TopScorers) != 10 {
		t.Errorf("top scorers: want 10, got %d", len(dash.TopScorers))
	}
	if len(dash.LatestMatches) != 10 {
		t.Errorf("latest matches: want 10, got %d", len(dash.LatestMatches))
	}
	// The log is taken as-is for recency: the first ten entries survive.
	if dash.LatestMatches[0].MatchID != "m00" {
		t.Errorf("latest matches must preserve loader order, got %s first", dash.LatestMatches[0].MatchID)
	}
}

// TestDashboard_RatingRankingUsesEngine: the rating column comes from the
// full replay, not the win-rate placeholder.
func TestDashboard_RatingRankingUsesEngine(t *testing.T) {
	log := []model.Match{
		makeMatch("m1", "2024-01-01", []line{{"P1", 2, 0}}, []line{{"P2", 1, 0}}),
	}
	dash := BuildDashboard(log, nil)
	if dash.RatingRanking[0].Name != "P1" || dash.RatingRanking[0].Rating != 1012.0 {
		t.Errorf("want P1 at 1012.0, got %s at %f",
			dash.RatingRanking[0].Name, dash.RatingRanking[0].Rating)
	}
}

// TestMatchToView_FormatsLineups: lineup strings carry goals and assists.
func TestMatchToView_FormatsLineups(t *testing.T) {
	m := makeMatch("m1", "2024-01-01", []line{{"P1", 2, 1}}, []line{{"P2", 0, 0}})
	v := MatchToView(&m)
	if v.TeamAPlayers[0] != "P1 (G:2, A:1)" {
		t.Errorf("lineup format: got %q", v.TeamAPlayers[0])
	}
	if v.Winner != "A" || v.GoalsA != 2 || v.GoalsB != 0 {
		t.Errorf("view summary wrong: %+v", v)
	}
}
