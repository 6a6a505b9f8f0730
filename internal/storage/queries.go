package storage

import (
	"database/sql"
	"fmt"

	"github.com/alebellina412/calcetto-app/internal/model"
)

// MatchExists returns true if a match with the given id is already stored,
// deleted or not.
func (db *DB) MatchExists(id string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertMatch stores a match and its player rows in one transaction. Uses
// INSERT OR REPLACE for idempotent re-imports.
func (db *DB) InsertMatch(m model.Match) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO matches(id, match_date, note, goals_a_override, goals_b_override, deleted)
		VALUES (?, ?, ?, ?, ?, 0)`,
		m.ID, m.Date, m.Note, nullableInt(m.GoalsAOverride), nullableInt(m.GoalsBOverride),
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", m.ID, err)
	}

	if _, err := tx.Exec("DELETE FROM match_players WHERE match_id = ?", m.ID); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO match_players(match_id, position, team, player, goals, assists)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, r := range m.Rows {
		if _, err := stmt.Exec(m.ID, i, string(r.Team), r.Player, r.Goals, r.Assists); err != nil {
			return fmt.Errorf("insert row for %s: %w", r.Player, err)
		}
	}
	return tx.Commit()
}

// LoadMatches returns the full undeleted match log, newest first
// (date desc, id desc). Rows come back in their original sheet order.
func (db *DB) LoadMatches() ([]model.Match, error) {
	rows, err := db.conn.Query(`
		SELECT id, match_date, note, goals_a_override, goals_b_override
		FROM matches WHERE deleted = 0
		ORDER BY match_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []model.Match
	index := make(map[string]int)
	for rows.Next() {
		var m model.Match
		var overA, overB sql.NullInt64
		if err := rows.Scan(&m.ID, &m.Date, &m.Note, &overA, &overB); err != nil {
			return nil, err
		}
		if overA.Valid {
			v := int(overA.Int64)
			m.GoalsAOverride = &v
		}
		if overB.Valid {
			v := int(overB.Int64)
			m.GoalsBOverride = &v
		}
		index[m.ID] = len(matches)
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	prows, err := db.conn.Query(`
		SELECT mp.match_id, mp.team, mp.player, mp.goals, mp.assists
		FROM match_players mp
		JOIN matches m ON m.id = mp.match_id AND m.deleted = 0
		ORDER BY mp.match_id, mp.position`)
	if err != nil {
		return nil, err
	}
	defer prows.Close()
	for prows.Next() {
		var matchID, team string
		var r model.PlayerRow
		if err := prows.Scan(&matchID, &team, &r.Player, &r.Goals, &r.Assists); err != nil {
			return nil, err
		}
		r.Team = model.Team(team)
		if i, ok := index[matchID]; ok {
			matches[i].Rows = append(matches[i].Rows, r)
		}
	}
	return matches, prows.Err()
}

// GetMatchByPrefix finds the first undeleted match whose id starts with the
// given prefix. Returns nil when nothing matches.
func (db *DB) GetMatchByPrefix(prefix string) (*model.Match, error) {
	var m model.Match
	var overA, overB sql.NullInt64
	err := db.conn.QueryRow(`
		SELECT id, match_date, note, goals_a_override, goals_b_override
		FROM matches WHERE deleted = 0 AND id LIKE ? LIMIT 1`, prefix+"%").
		Scan(&m.ID, &m.Date, &m.Note, &overA, &overB)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if overA.Valid {
		v := int(overA.Int64)
		m.GoalsAOverride = &v
	}
	if overB.Valid {
		v := int(overB.Int64)
		m.GoalsBOverride = &v
	}

	rows, err := db.conn.Query(`
		SELECT team, player, goals, assists
		FROM match_players WHERE match_id = ? ORDER BY position`, m.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var team string
		var r model.PlayerRow
		if err := rows.Scan(&team, &r.Player, &r.Goals, &r.Assists); err != nil {
			return nil, err
		}
		r.Team = model.Team(team)
		m.Rows = append(m.Rows, r)
	}
	return &m, rows.Err()
}

// SoftDeleteMatch flags a match as deleted without dropping its rows, so an
// import of the same sheet can resurrect it later. Returns false when the
// id is unknown.
func (db *DB) SoftDeleteMatch(id string) (bool, error) {
	res, err := db.conn.Exec("UPDATE matches SET deleted = 1 WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ListPlayers returns the registered roster in registration order.
func (db *DB) ListPlayers() ([]model.Player, error) {
	rows, err := db.conn.Query("SELECT id, name FROM players ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Player
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PlayerNames returns just the registered names, in registration order.
func (db *DB) PlayerNames() ([]string, error) {
	players, err := db.ListPlayers()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	return names, nil
}

// EnsurePlayers registers any names not yet on the roster.
func (db *DB) EnsurePlayers(names []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO players(name) VALUES (?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, name := range names {
		if _, err := stmt.Exec(name); err != nil {
			return fmt.Errorf("register player %s: %w", name, err)
		}
	}
	return tx.Commit()
}

// Overview holds the headline numbers for the dashboard header.
type Overview struct {
	TotalMatches  int
	TotalPlayers  int
	EarliestMatch string
	LatestMatch   string
}

// GetOverview returns headline counts over the undeleted log.
func (db *DB) GetOverview() (Overview, error) {
	var ov Overview
	err := db.conn.QueryRow(`
		SELECT COUNT(1),
		       COALESCE(MIN(match_date), ''),
		       COALESCE(MAX(match_date), '')
		FROM matches WHERE deleted = 0`).
		Scan(&ov.TotalMatches, &ov.EarliestMatch, &ov.LatestMatch)
	if err != nil {
		return ov, err
	}
	err = db.conn.QueryRow("SELECT COUNT(1) FROM players").Scan(&ov.TotalPlayers)
	return ov, err
}

// QueryRaw runs an arbitrary query and returns column names plus stringified
// rows for tabular display.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			switch x := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(x)
			default:
				row[i] = fmt.Sprintf("%v", x)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
