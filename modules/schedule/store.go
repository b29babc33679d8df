package schedule

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pitchside/pitchside/db"
)

const migration = `
CREATE TABLE IF NOT EXISTS uploads (
    id TEXT PRIMARY KEY,
    created INTEGER NOT NULL DEFAULT (strftime('%s', 'now')),
    filename TEXT NOT NULL,
    content BLOB NOT NULL
) STRICT;

CREATE INDEX IF NOT EXISTS uploads_created_idx ON uploads(created);
`

// Store keeps uploaded schedule files and memoizes their normalized form.
// Normalization is a pure function of the stored bytes, so the memo never
// needs invalidation beyond upload deletion.
type Store struct {
	db *sql.DB

	mut  sync.Mutex
	memo map[string]Result
}

func NewStore(d *sql.DB) *Store {
	db.MustMigrate(d, migration)
	return &Store{db: d, memo: map[string]Result{}}
}

// Put stores an upload and returns its ID.
func (s *Store) Put(ctx context.Context, filename string, content []byte) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, "INSERT INTO uploads (id, filename, content) VALUES (?, ?, ?)", id, filename, content)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Filename returns the original filename of an upload.
// sql.ErrNoRows is returned for unknown IDs.
func (s *Store) Filename(ctx context.Context, id string) (string, error) {
	var filename string
	err := s.db.QueryRowContext(ctx, "SELECT filename FROM uploads WHERE id = ?", id).Scan(&filename)
	return filename, err
}

// Events returns the normalized schedule for an upload, re-reading and
// re-normalizing the stored bytes on first access and serving the memoized
// table afterwards. sql.ErrNoRows is returned for unknown IDs.
func (s *Store) Events(ctx context.Context, id string) (Result, error) {
	s.mut.Lock()
	res, ok := s.memo[id]
	s.mut.Unlock()
	if ok {
		return res, nil
	}

	var filename string
	var content []byte
	err := s.db.QueryRowContext(ctx, "SELECT filename, content FROM uploads WHERE id = ?", id).Scan(&filename, &content)
	if err != nil {
		return Result{}, err
	}

	rows, err := ReadRows(filename, content)
	if err != nil {
		return Result{}, err
	}
	res = Normalize(rows)

	s.mut.Lock()
	s.memo[id] = res
	s.mut.Unlock()
	return res, nil
}

// Prune deletes uploads older than the given TTL along with their memoized
// tables, returning how many were removed.
func (s *Store) Prune(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl).Unix()
	rows, err := s.db.QueryContext(ctx, "DELETE FROM uploads WHERE created < ? RETURNING id", cutoff)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var pruned int64
	s.mut.Lock()
	defer s.mut.Unlock()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return pruned, err
		}
		delete(s.memo, id)
		pruned++
	}
	return pruned, rows.Err()
}
