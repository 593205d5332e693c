// Package store provides the SQLite-backed note store with a live
// full-snapshot feed.
package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ross/mindnotes/internal/apperr"
	"github.com/ross/mindnotes/internal/live"
	"github.com/ross/mindnotes/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS notes (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	title     TEXT NOT NULL,
	content   TEXT NOT NULL,
	timestamp INTEGER NOT NULL,
	category  TEXT NOT NULL DEFAULT 'OTHER',
	mood      INTEGER NOT NULL DEFAULT 3,
	images    TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_notes_timestamp ON notes(timestamp);
`

// DB wraps a sql.DB with note store operations and owns the live feed.
type DB struct {
	conn *sql.DB
	feed *live.Feed
}

// Open opens (or creates) the SQLite database, applies the schema, and
// publishes the initial snapshot so early subscribers start from the
// current state.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, apperr.Storage("open db", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, apperr.Storage("ping", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, apperr.Storage("apply schema", err)
	}

	db := &DB{conn: conn, feed: live.NewFeed()}
	db.publishSnapshot(context.Background())
	return db, nil
}

// Close stops the feed and closes the underlying database connection.
func (db *DB) Close() error {
	db.feed.Close()
	return db.conn.Close()
}

// Feed exposes the live feed so other components (image watcher, SSE
// endpoint) can publish and subscribe to events.
func (db *DB) Feed() *live.Feed {
	return db.feed
}

// Observe subscribes to the live feed.
func (db *DB) Observe() chan live.Event {
	return db.feed.Subscribe()
}

// Unobserve cancels a subscription made with Observe.
func (db *DB) Unobserve(ch chan live.Event) {
	db.feed.Unsubscribe(ch)
}

// All returns every persisted note in insertion order.
func (db *DB) All(ctx context.Context) ([]models.Note, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, content, timestamp, category, mood, images FROM notes ORDER BY id`)
	if err != nil {
		return nil, apperr.Storage("list notes", err)
	}
	defer rows.Close()

	var out []models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, apperr.Storage("scan note", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list notes", err)
	}
	return out, nil
}

// Get returns the note with the given id, or nil when absent.
func (db *DB) Get(ctx context.Context, id int64) (*models.Note, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, title, content, timestamp, category, mood, images FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("get note", err)
	}
	return &n, nil
}

// Upsert inserts n when n.ID is zero and replaces the stored record in
// place otherwise. Each variant is a single statement, so concurrent
// observers never see a partially written record.
func (db *DB) Upsert(ctx context.Context, n *models.Note) error {
	images := encodeImages(n.Images)

	if n.ID == 0 {
		res, err := db.conn.ExecContext(ctx, `
			INSERT INTO notes (title, content, timestamp, category, mood, images)
			VALUES (?, ?, ?, ?, ?, ?)
		`, n.Title, n.Content, n.Timestamp, string(n.Category), n.Mood, images)
		if err != nil {
			return apperr.Storage("insert note", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return apperr.Storage("insert note id", err)
		}
		n.ID = id
	} else {
		_, err := db.conn.ExecContext(ctx, `
			INSERT INTO notes (id, title, content, timestamp, category, mood, images)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title     = excluded.title,
				content   = excluded.content,
				timestamp = excluded.timestamp,
				category  = excluded.category,
				mood      = excluded.mood,
				images    = excluded.images
		`, n.ID, n.Title, n.Content, n.Timestamp, string(n.Category), n.Mood, images)
		if err != nil {
			return apperr.Storage("upsert note", err)
		}
	}

	db.publishSnapshot(ctx)
	return nil
}

// Delete removes the note with the given id. Deleting a missing id is a
// no-op and publishes nothing.
func (db *DB) Delete(ctx context.Context, id int64) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return apperr.Storage("delete note", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil
	}
	db.publishSnapshot(ctx)
	return nil
}

// publishSnapshot re-reads the full set and pushes it to the feed. Mutations
// are already committed when this runs, so subscribers observe the write
// once the snapshot arrives.
func (db *DB) publishSnapshot(ctx context.Context) {
	notes, err := db.All(ctx)
	if err != nil {
		slog.Warn("store: snapshot read failed", slog.String("error", err.Error()))
		return
	}
	db.feed.Publish(live.Event{Type: live.EventNotesSnapshot, Data: notes})
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (models.Note, error) {
	var (
		n      models.Note
		rawCat string
		rawImg string
	)
	if err := s.Scan(&n.ID, &n.Title, &n.Content, &n.Timestamp, &rawCat, &n.Mood, &rawImg); err != nil {
		return models.Note{}, err
	}
	cat, ok := models.ParseCategory(rawCat)
	if !ok {
		// Legacy or hand-edited rows fold into the catch-all category.
		cat = models.CategoryOther
	}
	n.Category = cat
	n.Images = decodeImages(rawImg)
	return n, nil
}
