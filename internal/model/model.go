package model

// Team identifies which side of a match a player row belongs to.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// Winner labels for a finished match.
const (
	WinnerA    = "A"
	WinnerB    = "B"
	WinnerDraw = "Draw"
)

// PlayerRow is one player's line in a match sheet.
type PlayerRow struct {
	Team    Team
	Player  string
	Goals   int
	Assists int
}

// Match is one played fixture between two rosters. It is produced wholesale
// by the loader and never mutated afterwards; every derived value (team
// scores, winner) is computed on read.
//
// Date is an ISO "YYYY-MM-DD" string, so lexicographic order on (Date, ID)
// is chronological replay order.
type Match struct {
	ID   string
	Date string
	Note string
	Rows []PlayerRow

	// Official score overrides. When set, they take precedence over the
	// summed player goals — a recorded final score may diverge from the
	// individual tallies. Per-player stats still use the row goals.
	GoalsAOverride *int
	GoalsBOverride *int
}

// TeamA returns the rows with team tag A, in sheet order.
func (m *Match) TeamA() []PlayerRow { return m.teamRows(TeamA) }

// TeamB returns the rows with team tag B, in sheet order.
func (m *Match) TeamB() []PlayerRow { return m.teamRows(TeamB) }

func (m *Match) teamRows(t Team) []PlayerRow {
	var out []PlayerRow
	for _, r := range m.Rows {
		if r.Team == t {
			out = append(out, r)
		}
	}
	return out
}

// GoalsA is team A's final score: the override when present, otherwise the
// sum of team A's row goals.
func (m *Match) GoalsA() int {
	if m.GoalsAOverride != nil {
		return *m.GoalsAOverride
	}
	return sumGoals(m.Rows, TeamA)
}

// GoalsB is team B's final score.
func (m *Match) GoalsB() int {
	if m.GoalsBOverride != nil {
		return *m.GoalsBOverride
	}
	return sumGoals(m.Rows, TeamB)
}

func sumGoals(rows []PlayerRow, t Team) int {
	total := 0
	for _, r := range rows {
		if r.Team == t {
			total += r.Goals
		}
	}
	return total
}

// Winner returns "A", "B" or "Draw" by score comparison.
func (m *Match) Winner() string {
	a, b := m.GoalsA(), m.GoalsB()
	switch {
	case a > b:
		return WinnerA
	case b > a:
		return WinnerB
	default:
		return WinnerDraw
	}
}

// HasPlayer reports whether the named player appears in this match.
func (m *Match) HasPlayer(name string) bool {
	for _, r := range m.Rows {
		if r.Player == name {
			return true
		}
	}
	return false
}

// PlayerTeam returns the team the named player was on, and whether they
// played at all.
func (m *Match) PlayerTeam(name string) (Team, bool) {
	for _, r := range m.Rows {
		if r.Player == name {
			return r.Team, true
		}
	}
	return "", false
}

// PlayerStats holds the cumulative career counters for one player.
// Rating is filled in separately by the rating engine; it stays at the
// baseline for players with no matches.
type PlayerStats struct {
	Name          string  `json:"name"`
	Matches       int     `json:"matches"`
	Wins          int     `json:"wins"`
	Draws         int     `json:"draws"`
	Losses        int     `json:"losses"`
	GoalsScored   int     `json:"goals_scored"`
	Assists       int     `json:"assists"`
	GoalsConceded int     `json:"goals_conceded"`
	Rating        float64 `json:"rating"`
}

// WinRate is wins over matches, 0.0 for a player with no matches.
func (s *PlayerStats) WinRate() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Matches)
}

// GoalsPerMatch is goals over matches, 0.0 for a player with no matches.
func (s *PlayerStats) GoalsPerMatch() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.GoalsScored) / float64(s.Matches)
}

// TimelinePoint is one (date, rating-after-match) sample of a player's
// rating history.
type TimelinePoint struct {
	Date   string  `json:"date"`
	Rating float64 `json:"rating"`
}

// Series is one cumulative metric over a player's included matches.
// A nil value marks a match the subject did not play (multi-player series
// only emit real values for subjects who were on the pitch).
type Series struct {
	Label  string     `json:"label"`
	Values []*float64 `json:"values"`
}

// MultiSeries is one metric tracked for several players at once over a
// shared date axis.
type MultiSeries struct {
	Label          string                `json:"label"`
	ValuesByPlayer map[string][]*float64 `json:"values_by_player"`
}

// GroupStats is the combined record of a fixed set of players over the
// matches where all of them were on the same team.
type GroupStats struct {
	Matches      int     `json:"matches"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	WinRatePct   float64 `json:"win_rate_pct"`
	GoalsScored  int     `json:"goals_scored"`
	Assists      int     `json:"assists"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	AvgGoalDiff  float64 `json:"avg_goal_diff"`
}

// OnOffBucket accumulates a primary player's results for one side of the
// with/without-partners split.
type OnOffBucket struct {
	Matches      int     `json:"matches"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	WinRatePct   float64 `json:"win_rate_pct"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	Goals        int     `json:"goals"`
	Assists      int     `json:"assists"`
}

// OnOffStats is the full on/off split for a primary player against a set of
// partners. Every match the primary played lands in exactly one bucket.
type OnOffStats struct {
	Primary  string      `json:"primary"`
	Partners []string    `json:"partners"`
	With     OnOffBucket `json:"with_group"`
	Without  OnOffBucket `json:"without_group"`
}

// SharedMatches classifies a primary player's log against a comparison set:
// matches where everyone played (any team), matches only the primary played,
// and per-comparison-player matches played without the primary.
type SharedMatches struct {
	AllTogether    []MatchView            `json:"all_together"`
	PrimaryOnly    []MatchView            `json:"primary_only"`
	WithoutPrimary map[string][]MatchView `json:"without_primary"`
}

// MatchView is a display-ready rendering of a match for lists, dashboards
// and JSON export.
type MatchView struct {
	MatchID       string   `json:"match_id"`
	Date          string   `json:"date"`
	Note          string   `json:"note"`
	GoalsA        int      `json:"goals_a"`
	GoalsB        int      `json:"goals_b"`
	Winner        string   `json:"winner"`
	TeamAPlayers  []string `json:"team_a_players"`
	TeamBPlayers  []string `json:"team_b_players"`
}

// Dashboard bundles the top-10 rankings and the most recent matches.
type Dashboard struct {
	TopScorers       []PlayerStats `json:"top_scorers"`
	TopAssists       []PlayerStats `json:"top_assists"`
	GoalsPerMatch    []PlayerStats `json:"goals_per_match_ranking"`
	WinRate          []PlayerStats `json:"win_rate_ranking"`
	RatingRanking    []PlayerStats `json:"rating_ranking"`
	LatestMatches    []MatchView   `json:"latest_matches"`
}

// Player is a registered roster identity.
type Player struct {
	ID   int64
	Name string
}
