package storage

import (
	"database/sql"
	"time"
)

// GetMatch returns the cached raw body for a match id, with ok=false on
// a miss.
func (db *DB) GetMatch(matchID string) ([]byte, bool, error) {
	var body []byte
	err := db.conn.QueryRow(
		`SELECT body FROM match_cache WHERE match_id = ?`, matchID,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

// PutMatch stores a raw match body. Re-inserting the same id is a no-op
// replace, so redundant fetches are harmless.
func (db *DB) PutMatch(matchID string, body []byte) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO match_cache (match_id, body, fetched_at) VALUES (?, ?, ?)`,
		matchID, body, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Purge drops every cached match and returns the number removed.
func (db *DB) Purge() (int64, error) {
	res, err := db.conn.Exec(`DELETE FROM match_cache`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Count returns the number of cached matches.
func (db *DB) Count() (int64, error) {
	var n int64
	err := db.conn.QueryRow(`SELECT COUNT(*) FROM match_cache`).Scan(&n)
	return n, err
}
