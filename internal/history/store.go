// internal/history/store.go
//
// SQL-backed record of finished assisted sessions. One row per finished
// session: who (user or anonymous), when, which strategy, how many turns,
// and whether the puzzle was solved. Feeds the fewest-turns leaderboard
// and per-user history endpoints.

package history

import (
	"context"
	"database/sql"
)

// Result is one finished session as persisted.
type Result struct {
	OwnerID   string `json:"ownerId"`   // user ID or anonymous ID
	Date      string `json:"date"`      // "YYYY-MM-DD" (UTC)
	Criterion string `json:"criterion"` // ranking strategy used
	Turns     int    `json:"turns"`
	Solved    bool   `json:"solved"`
	ElapsedMs int    `json:"elapsedMs"` // first suggestion to finish
}

// LBRow is one leaderboard entry: a solved session, fewest turns first.
type LBRow struct {
	OwnerID   string `json:"ownerId"`
	Turns     int    `json:"turns"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Store wraps the database handle for session-result queries.
type Store struct{ db *sql.DB }

// NewStore constructs a history store over an open database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// InsertResult records a finished session.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	solved := 0
	if r.Solved {
		solved = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_results(owner_id, date, criterion, turns, solved, elapsed_ms)
		 VALUES(?,?,?,?,?,?)`,
		r.OwnerID, r.Date, r.Criterion, r.Turns, solved, r.ElapsedMs,
	)
	return err
}

// Leaderboard fetches the top solved sessions for a date, ordered by
// fewest turns, then elapsed time, then insertion order.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT owner_id, turns, elapsed_ms
		 FROM session_results
		 WHERE date=? AND solved=1
		 ORDER BY turns ASC, elapsed_ms ASC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LBRow
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.OwnerID, &r.Turns, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RecentForOwner returns the owner's latest results, newest first.
func (s *Store) RecentForOwner(ctx context.Context, ownerID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT owner_id, date, criterion, turns, solved, elapsed_ms
		 FROM session_results
		 WHERE owner_id=?
		 ORDER BY created_at DESC
		 LIMIT ?`, ownerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Result
	for rows.Next() {
		var r Result
		var solved int
		if err := rows.Scan(&r.OwnerID, &r.Date, &r.Criterion, &r.Turns, &solved, &r.ElapsedMs); err != nil {
			return nil, err
		}
		r.Solved = solved == 1
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimAnonResults transfers anonymous results to a user account after auth.
func (s *Store) ClaimAnonResults(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE session_results SET owner_id=? WHERE owner_id=?`, userID, anonID)
	return err
}
