// Package journal keeps an optional SQLite history of what was played.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/san-kum/saverium/internal/playback"
)

const schema = `
CREATE TABLE IF NOT EXISTS plays (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    effect     TEXT NOT NULL,
    reason     TEXT NOT NULL,
    mode       TEXT NOT NULL,
    started_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_plays_effect ON plays(effect);
CREATE INDEX IF NOT EXISTS idx_plays_started ON plays(started_at);
`

type Play struct {
	ID        int64
	Effect    string
	Reason    string
	Mode      string
	StartedAt time.Time
}

type Count struct {
	Effect string
	Plays  int
}

type Journal struct {
	db *sql.DB
}

// Open creates the database and its directory if needed.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("journal dir: %w", err)
		}
	}
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect journal: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal schema: %w", err)
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error { return j.db.Close() }

func (j *Journal) Record(ctx context.Context, p Play) error {
	_, err := j.db.ExecContext(ctx,
		"INSERT INTO plays (effect, reason, mode, started_at) VALUES (?, ?, ?, ?)",
		p.Effect, p.Reason, p.Mode, p.StartedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("record %q: %w", p.Effect, err)
	}
	return nil
}

// Recent returns up to n plays, newest first.
func (j *Journal) Recent(ctx context.Context, n int) ([]Play, error) {
	rows, err := j.db.QueryContext(ctx,
		"SELECT id, effect, reason, mode, started_at FROM plays ORDER BY started_at DESC, id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("recent plays: %w", err)
	}
	defer rows.Close()

	var out []Play
	for rows.Next() {
		var p Play
		var ns int64
		if err := rows.Scan(&p.ID, &p.Effect, &p.Reason, &p.Mode, &ns); err != nil {
			return nil, err
		}
		p.StartedAt = time.Unix(0, ns)
		out = append(out, p)
	}
	return out, rows.Err()
}

// Counts returns plays per effect, most played first.
func (j *Journal) Counts(ctx context.Context) ([]Count, error) {
	rows, err := j.db.QueryContext(ctx,
		"SELECT effect, COUNT(*) AS n FROM plays GROUP BY effect ORDER BY n DESC, effect ASC")
	if err != nil {
		return nil, fmt.Errorf("play counts: %w", err)
	}
	defer rows.Close()

	var out []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Effect, &c.Plays); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Observer records every switch. Write failures are logged and dropped.
func (j *Journal) Observer() playback.Observer {
	return playback.ObserverFunc(func(s playback.Switch) {
		err := j.Record(context.Background(), Play{
			Effect:    s.Entry.Name,
			Reason:    string(s.Reason),
			Mode:      string(s.Mode),
			StartedAt: s.At,
		})
		if err != nil {
			log.Printf("journal: %v", err)
		}
	})
}
