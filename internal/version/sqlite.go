package version

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
)

// SQLiteStore is a Store backed by a local SQLite database. Snapshots are
// stored as JSON in an append-only versions table; the schema has no update
// or delete path.
type SQLiteStore struct {
	db     *sql.DB
	clock  func() time.Time
	logger *slog.Logger
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS outline_versions (
	id         TEXT PRIMARY KEY,
	outline_id TEXT NOT NULL,
	version    INTEGER NOT NULL,
	message    TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	snapshot   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_outline_versions_outline
	ON outline_versions(outline_id, version);
`

// OpenSQLite opens (creating if necessary) the version database at path.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening version database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("verifying version database connection: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing version schema: %w", err)
	}

	logger.Info("version database opened", "path", filepath.Base(path))
	return &SQLiteStore{db: db, clock: time.Now, logger: logger}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save appends a new version record for o's outline id.
func (s *SQLiteStore) Save(ctx context.Context, o outline.Outline, message string) (outline.Version, error) {
	var storedMax sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(version) FROM outline_versions WHERE outline_id = ?", o.ID,
	).Scan(&storedMax)
	if err != nil {
		return outline.Version{}, fmt.Errorf("reading latest version for %q: %w", o.ID, err)
	}

	snapshot := outline.Clone(o)
	snapshot.Version = nextVersion(int(storedMax.Int64), o)

	v := outline.Version{
		ID:        uuid.Must(uuid.NewV7()).String(),
		OutlineID: o.ID,
		Version:   snapshot.Version,
		Message:   message,
		CreatedAt: nowUTC(s.clock),
		Snapshot:  snapshot,
	}
	blob, err := json.Marshal(v.Snapshot)
	if err != nil {
		return outline.Version{}, fmt.Errorf("encoding snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO outline_versions (id, outline_id, version, message, created_at, snapshot) VALUES (?, ?, ?, ?, ?, ?)",
		v.ID, v.OutlineID, v.Version, v.Message, v.CreatedAt, string(blob),
	)
	if err != nil {
		return outline.Version{}, fmt.Errorf("saving version %d of %q: %w", v.Version, o.ID, err)
	}
	s.logger.Info("outline version saved", "outline_id", o.ID, "version", v.Version)
	return v, nil
}

// List returns the outline's versions most recent first.
func (s *SQLiteStore) List(ctx context.Context, outlineID string) ([]outline.Version, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, outline_id, version, message, created_at, snapshot FROM outline_versions WHERE outline_id = ? ORDER BY version DESC",
		outlineID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing versions of %q: %w", outlineID, err)
	}
	defer rows.Close()

	var out []outline.Version
	for rows.Next() {
		v, err := scanVersion(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Get returns the version with the given id.
func (s *SQLiteStore) Get(ctx context.Context, versionID string) (outline.Version, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, outline_id, version, message, created_at, snapshot FROM outline_versions WHERE id = ?",
		versionID,
	)
	v, err := scanVersion(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return outline.Version{}, fmt.Errorf("get version %q: %w", versionID, ErrVersionNotFound)
	}
	return v, err
}

// Compare returns the coarse node-count diff between two stored snapshots.
func (s *SQLiteStore) Compare(ctx context.Context, versionIDA, versionIDB string) (Diff, error) {
	a, err := s.Get(ctx, versionIDA)
	if err != nil {
		return Diff{}, err
	}
	b, err := s.Get(ctx, versionIDB)
	if err != nil {
		return Diff{}, err
	}
	return compareSnapshots(a.Snapshot, b.Snapshot), nil
}

// scanVersion decodes one row into a Version, unmarshalling the snapshot JSON.
func scanVersion(scan func(dest ...any) error) (outline.Version, error) {
	var v outline.Version
	var blob string
	if err := scan(&v.ID, &v.OutlineID, &v.Version, &v.Message, &v.CreatedAt, &blob); err != nil {
		return outline.Version{}, err
	}
	if err := json.Unmarshal([]byte(blob), &v.Snapshot); err != nil {
		return outline.Version{}, fmt.Errorf("decoding snapshot of version %q: %w", v.ID, err)
	}
	return v, nil
}
