// Package journal persists a local record of the commands sent to a robot
// and how they turned out, so an operator can reconstruct a session after
// the fact.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/stridelabs/strider/internal/journal/migrations"
	"github.com/stridelabs/strider/internal/platform/storage/sqlitemigrate"
)

// Event classifies a journal entry.
type Event string

const (
	EventSubmitted Event = "submitted"
	EventSucceeded Event = "succeeded"
	EventFailed    Event = "failed"
)

// Entry is one journal row.
type Entry struct {
	ID        int64
	CreatedAt time.Time
	Event     Event
	Command   string
	CommandID uint32
	Detail    string
}

// Store persists journal entries in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the journal database and applies embedded migrations. The
// special path ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping journal db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the journal database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Append records an entry. CreatedAt defaults to now when unset.
func (s *Store) Append(ctx context.Context, entry Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO command_journal (created_at, event, command, command_id, detail)
		 VALUES (?, ?, ?, ?, ?)`,
		createdAt.UTC().UnixMilli(), string(entry.Event), entry.Command, entry.CommandID, entry.Detail,
	)
	if err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, created_at, event, command, command_id, detail
		 FROM command_journal ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry  Entry
			millis int64
			event  string
		)
		if err := rows.Scan(&entry.ID, &millis, &event, &entry.Command, &entry.CommandID, &entry.Detail); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entry.CreatedAt = time.UnixMilli(millis).UTC()
		entry.Event = Event(event)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	return entries, nil
}
