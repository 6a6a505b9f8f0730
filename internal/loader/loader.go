// Package loader parses match sheet files (JSON) into model.Match values.
// All structural validation lives here: the stats core downstream assumes
// well-formed matches and never re-checks them.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/tidwall/gjson"

	"github.com/alebellina412/calcetto-app/internal/model"
)

// InvalidFile records a match file that failed to parse, so a bad sheet
// never aborts a batch import.
type InvalidFile struct {
	FileName string
	Err      error
}

// ParseMatchBytes parses one match sheet. Older sheets may omit assists
// (default 0) and the official goals_a/goals_b override pair; when the
// override is present both keys are required.
func ParseMatchBytes(data []byte) (model.Match, error) {
	var m model.Match
	if !gjson.ValidBytes(data) {
		return m, fmt.Errorf("not valid JSON")
	}
	root := gjson.ParseBytes(data)

	dateRaw := root.Get("date")
	if !dateRaw.Exists() {
		return m, fmt.Errorf("missing required key %q", "date")
	}
	date, err := time.Parse("2006-01-02", dateRaw.String())
	if err != nil {
		return m, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	m.Date = date.Format("2006-01-02")
	m.Note = root.Get("note").String()

	goalsA, goalsB := root.Get("goals_a"), root.Get("goals_b")
	if goalsA.Exists() != goalsB.Exists() {
		return m, fmt.Errorf("goals_a and goals_b overrides must be set together")
	}
	if goalsA.Exists() {
		a, b := int(goalsA.Int()), int(goalsB.Int())
		if a < 0 || b < 0 {
			return m, fmt.Errorf("score overrides must be >= 0")
		}
		m.GoalsAOverride, m.GoalsBOverride = &a, &b
	}

	players := root.Get("players")
	if !players.IsArray() {
		return m, fmt.Errorf("players must be an array")
	}
	seen := make(map[string]struct{})
	counts := map[model.Team]int{}
	var rowErr error
	players.ForEach(func(_, row gjson.Result) bool {
		i := len(m.Rows)
		team := model.Team(row.Get("team").String())
		if team != model.TeamA && team != model.TeamB {
			rowErr = fmt.Errorf("row %d: team must be A or B", i)
			return false
		}
		name := strings.TrimSpace(row.Get("player").String())
		if name == "" {
			rowErr = fmt.Errorf("row %d: player name cannot be empty", i)
			return false
		}
		if _, dup := seen[name]; dup {
			rowErr = fmt.Errorf("row %d: duplicate player %q", i, name)
			return false
		}
		goals := row.Get("goals")
		if !goals.Exists() {
			rowErr = fmt.Errorf("row %d: goals cannot be empty", i)
			return false
		}
		if goals.Int() < 0 || row.Get("assists").Int() < 0 {
			rowErr = fmt.Errorf("row %d: goals and assists must be >= 0", i)
			return false
		}
		seen[name] = struct{}{}
		counts[team]++
		m.Rows = append(m.Rows, model.PlayerRow{
			Team:    team,
			Player:  name,
			Goals:   int(goals.Int()),
			Assists: int(row.Get("assists").Int()), // 0 when absent (legacy sheets)
		})
		return true
	})
	if rowErr != nil {
		return model.Match{}, rowErr
	}
	if len(m.Rows) < 2 {
		return model.Match{}, fmt.Errorf("a match needs at least 2 player rows")
	}
	if counts[model.TeamA] == 0 || counts[model.TeamB] == 0 {
		return model.Match{}, fmt.Errorf("each team needs at least one player")
	}

	m.ID = strings.TrimSpace(root.Get("id").String())
	if m.ID == "" {
		m.ID = NewMatchID(m.Date)
	}
	return m, nil
}

// NewMatchID builds a unique, sortable match identifier. The date prefix
// keeps same-day matches adjacent; the ULID suffix breaks ties in creation
// order.
func NewMatchID(date string) string {
	return fmt.Sprintf("%s__%s", date, ulid.Make())
}

// ParseMatchFile reads and parses a single match sheet from disk.
func ParseMatchFile(path string) (model.Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Match{}, fmt.Errorf("read match file: %w", err)
	}
	return ParseMatchBytes(data)
}

// ParseDir parses every *.json file in a directory, collecting failures
// instead of stopping at the first bad sheet.
func ParseDir(dir string) ([]model.Match, []InvalidFile, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(paths)

	var matches []model.Match
	var invalid []InvalidFile
	for _, p := range paths {
		m, err := ParseMatchFile(p)
		if err != nil {
			invalid = append(invalid, InvalidFile{FileName: filepath.Base(p), Err: err})
			continue
		}
		matches = append(matches, m)
	}
	return matches, invalid, nil
}

// ParseNote splits a free-form "key=value;key=value" match note into a map
// for display. Parts without '=' are ignored.
func ParseNote(note string) map[string]string {
	info := make(map[string]string)
	for _, part := range strings.Split(note, ";") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			info[key] = value
		}
	}
	return info
}
