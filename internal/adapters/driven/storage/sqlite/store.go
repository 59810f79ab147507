// Package sqlite provides the SQLite-backed crawl archive. Aggregated
// bucket text and chat transcripts are persisted here so a retrieval
// session can be resumed without re-crawling.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/scrawl-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
	"github.com/custodia-labs/scrawl-cli/internal/core/ports/driven"
)

// Store is a SQLite-backed archive store.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.ArchiveStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.scrawl/data/archive.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".scrawl", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "archive.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveBucket stores one domain's aggregated crawl text. Repeated
// saves for the same domain accumulate; GetBucket reads the latest.
func (s *Store) SaveBucket(ctx context.Context, bucket *domain.DomainBucket) error {
	if bucket == nil || bucket.Domain == "" {
		return domain.ErrInvalidInput
	}

	crawledAt := bucket.CrawledAt
	if crawledAt.IsZero() {
		crawledAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO buckets (domain, text, size, crawled_at)
		VALUES (?, ?, ?, ?)
	`, bucket.Domain, bucket.Text, len(bucket.Text), crawledAt)

	if err != nil {
		return fmt.Errorf("saving bucket: %w", err)
	}
	return nil
}

// GetBucket loads the most recent aggregate for a domain.
func (s *Store) GetBucket(ctx context.Context, host string) (*domain.DomainBucket, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT domain, text, crawled_at
		FROM buckets WHERE domain = ?
		ORDER BY crawled_at DESC, id DESC
		LIMIT 1
	`, host)

	var bucket domain.DomainBucket
	var crawledAt sql.NullTime
	if err := row.Scan(&bucket.Domain, &bucket.Text, &crawledAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning bucket: %w", err)
	}

	if crawledAt.Valid {
		bucket.CrawledAt = crawledAt.Time
	}

	return &bucket, nil
}

// ListBuckets returns the archived domains, most recent first. Only
// the latest save per domain is listed.
func (s *Store) ListBuckets(ctx context.Context) ([]driven.ArchivedBucket, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT domain, size, MAX(crawled_at) AS crawled_at
		FROM buckets
		GROUP BY domain
		ORDER BY crawled_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying buckets: %w", err)
	}
	defer rows.Close()

	var buckets []driven.ArchivedBucket //nolint:prealloc // size unknown from query
	for rows.Next() {
		var b driven.ArchivedBucket
		var crawledAt sql.NullTime
		if err := rows.Scan(&b.Domain, &b.Size, &crawledAt); err != nil {
			return nil, fmt.Errorf("scanning bucket: %w", err)
		}
		if crawledAt.Valid {
			b.CrawledAt = crawledAt.Time
		}
		buckets = append(buckets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating buckets: %w", err)
	}

	return buckets, nil
}

// SaveConversation stores a chat transcript, replacing any previous
// save under the same ID.
func (s *Store) SaveConversation(ctx context.Context, conv *domain.Conversation) error {
	if conv == nil || conv.ID == "" {
		return domain.ErrInvalidInput
	}

	turnsJSON, err := json.Marshal(conv.Turns)
	if err != nil {
		return fmt.Errorf("marshalling turns: %w", err)
	}

	startedAt := conv.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO conversations (id, turns, started_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			turns = excluded.turns
	`, conv.ID, string(turnsJSON), startedAt)

	if err != nil {
		return fmt.Errorf("saving conversation: %w", err)
	}
	return nil
}

// GetConversation loads a transcript by ID.
func (s *Store) GetConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, turns, started_at
		FROM conversations WHERE id = ?
	`, id)

	var conv domain.Conversation
	var turnsJSON string
	var startedAt sql.NullTime
	if err := row.Scan(&conv.ID, &turnsJSON, &startedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning conversation: %w", err)
	}

	if err := json.Unmarshal([]byte(turnsJSON), &conv.Turns); err != nil {
		return nil, fmt.Errorf("unmarshaling turns: %w", err)
	}

	if startedAt.Valid {
		conv.StartedAt = startedAt.Time
	}

	return &conv, nil
}
