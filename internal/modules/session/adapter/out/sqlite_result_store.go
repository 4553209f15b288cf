package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	questiondomain "sciquiz/internal/modules/question/domain"
	"sciquiz/internal/modules/session/domain"

	_ "modernc.org/sqlite"
)

// Fixed width so ended_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteResultStore struct {
	db *sql.DB
}

func NewSQLiteResultStore(dbPath string) (*SQLiteResultStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteResultStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteResultStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS results (
  session_id TEXT PRIMARY KEY,
  subject TEXT NOT NULL,
  difficulty TEXT NOT NULL,
  score INTEGER NOT NULL,
  total INTEGER NOT NULL,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS results_ended_at ON results(ended_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create results table: %w", err)
	}
	return nil
}

func (s *SQLiteResultStore) Save(ctx context.Context, result domain.Result) error {
	const stmt = `
INSERT INTO results (session_id, subject, difficulty, score, total, started_at, ended_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(session_id) DO UPDATE SET
  score=excluded.score,
  total=excluded.total,
  ended_at=excluded.ended_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		result.SessionID,
		string(result.Subject),
		string(result.Difficulty),
		result.Score,
		result.Total,
		result.StartedAt.UTC().Format(timeLayout),
		result.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// List returns up to limit results, newest first. A zero limit means all.
func (s *SQLiteResultStore) List(ctx context.Context, limit int) ([]domain.Result, error) {
	query := `SELECT session_id, subject, difficulty, score, total, started_at, ended_at FROM results ORDER BY ended_at DESC, session_id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	out := []domain.Result{}
	for rows.Next() {
		var (
			id, subject, difficulty string
			score, total            int
			startedRaw, endedRaw    string
		)
		if err := rows.Scan(&id, &subject, &difficulty, &score, &total, &startedRaw, &endedRaw); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		startedAt, err := time.Parse(timeLayout, startedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse started_at for %s: %w", id, err)
		}
		endedAt, err := time.Parse(timeLayout, endedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse ended_at for %s: %w", id, err)
		}
		out = append(out, domain.NewResult(id, questiondomain.Subject(subject), questiondomain.Difficulty(difficulty), score, total, startedAt, endedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}

func (s *SQLiteResultStore) Close() error {
	return s.db.Close()
}
