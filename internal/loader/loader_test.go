package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alebellina412/calcetto-app/internal/model"
)

const validSheet = `{
	"id": "2024-03-10__201500__match",
	"date": "2024-03-10",
	"note": "campo=centro;mvp=Luca",
	"players": [
		{"team": "A", "player": "Luca", "goals": 2, "assists": 1},
		{"team": "A", "player": "Marco", "goals": 0, "assists": 2},
		{"team": "B", "player": "Paolo", "goals": 1, "assists": 0},
		{"team": "B", "player": "Gigi", "goals": 0}
	]
}`

func TestParseMatch_Valid(t *testing.T) {
	m, err := ParseMatchBytes([]byte(validSheet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != "2024-03-10__201500__match" || m.Date != "2024-03-10" {
		t.Errorf("id/date: got %q %q", m.ID, m.Date)
	}
	if len(m.Rows) != 4 {
		t.Fatalf("want 4 rows, got %d", len(m.Rows))
	}
	// Legacy row without assists defaults to 0.
	if m.Rows[3].Player != "Gigi" || m.Rows[3].Assists != 0 {
		t.Errorf("legacy assists default: got %+v", m.Rows[3])
	}
	if m.GoalsA() != 2 || m.GoalsB() != 1 || m.Winner() != model.WinnerA {
		t.Errorf("derived score: %d-%d winner=%s", m.GoalsA(), m.GoalsB(), m.Winner())
	}
}

func TestParseMatch_GeneratedIDIsSortable(t *testing.T) {
	sheet := `{"date": "2024-03-10", "players": [
		{"team": "A", "player": "Luca", "goals": 1},
		{"team": "B", "player": "Paolo", "goals": 0}
	]}`
	m1, err := ParseMatchBytes([]byte(sheet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, _ := ParseMatchBytes([]byte(sheet))
	if m1.ID == "" || m1.ID == m2.ID {
		t.Errorf("generated IDs must be unique: %q vs %q", m1.ID, m2.ID)
	}
	if m1.ID[:10] != "2024-03-10" {
		t.Errorf("generated ID should carry the date prefix: %q", m1.ID)
	}
	if m1.ID >= m2.ID {
		t.Errorf("later ID should sort after earlier one: %q vs %q", m1.ID, m2.ID)
	}
}

func TestParseMatch_ScoreOverride(t *testing.T) {
	sheet := `{"date": "2024-03-10", "goals_a": 4, "goals_b": 4, "players": [
		{"team": "A", "player": "Luca", "goals": 2},
		{"team": "B", "player": "Paolo", "goals": 1}
	]}`
	m, err := ParseMatchBytes([]byte(sheet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.GoalsA() != 4 || m.GoalsB() != 4 || m.Winner() != model.WinnerDraw {
		t.Errorf("override must decide the score: %d-%d %s", m.GoalsA(), m.GoalsB(), m.Winner())
	}
}

func TestParseMatch_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		sheet string
	}{
		{"not json", `{{`},
		{"missing date", `{"players": [{"team":"A","player":"L","goals":1},{"team":"B","player":"P","goals":0}]}`},
		{"bad date", `{"date":"10/03/2024","players":[{"team":"A","player":"L","goals":1},{"team":"B","player":"P","goals":0}]}`},
		{"bad team", `{"date":"2024-03-10","players":[{"team":"C","player":"L","goals":1},{"team":"B","player":"P","goals":0}]}`},
		{"duplicate player", `{"date":"2024-03-10","players":[{"team":"A","player":"L","goals":1},{"team":"B","player":"L","goals":0}]}`},
		{"negative goals", `{"date":"2024-03-10","players":[{"team":"A","player":"L","goals":-1},{"team":"B","player":"P","goals":0}]}`},
		{"missing goals", `{"date":"2024-03-10","players":[{"team":"A","player":"L"},{"team":"B","player":"P","goals":0}]}`},
		{"one-sided", `{"date":"2024-03-10","players":[{"team":"A","player":"L","goals":1},{"team":"A","player":"P","goals":0}]}`},
		{"too few rows", `{"date":"2024-03-10","players":[{"team":"A","player":"L","goals":1}]}`},
		{"half override", `{"date":"2024-03-10","goals_a":2,"players":[{"team":"A","player":"L","goals":1},{"team":"B","player":"P","goals":0}]}`},
	}
	for _, tc := range cases {
		if _, err := ParseMatchBytes([]byte(tc.sheet)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestParseDir_CollectsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.json"), validSheet)
	writeFile(t, filepath.Join(dir, "broken.json"), `{"date": "nope"}`)

	matches, invalid, err := ParseDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("want 1 parsed match, got %d", len(matches))
	}
	if len(invalid) != 1 || invalid[0].FileName != "broken.json" {
		t.Errorf("want broken.json flagged, got %+v", invalid)
	}
}

func TestParseNote(t *testing.T) {
	info := ParseNote("campo=centro; MVP = Luca ;junk;empty=")
	if info["campo"] != "centro" {
		t.Errorf("campo: got %q", info["campo"])
	}
	if info["mvp"] != "Luca" {
		t.Errorf("mvp key should be lowercased and trimmed: got %q", info["mvp"])
	}
	if _, ok := info["junk"]; ok {
		t.Error("parts without '=' must be ignored")
	}
	if _, ok := info["empty"]; ok {
		t.Error("empty values must be ignored")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
