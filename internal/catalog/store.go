package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current catalog schema version. Bump this when the
// schema changes; old databases must be rebuilt with 'moodpick build'.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ErrNotFound indicates the requested episode does not exist.
var ErrNotFound = errors.New("episode not found")

// BuildInfo describes the catalog build recorded alongside the episodes.
type BuildInfo struct {
	BuildID      string
	BuiltAt      time.Time
	EpisodeCount int
}

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (rebuild with 'moodpick build')",
			ErrSchemaMismatch, version, schemaVersion)
	}

	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// ReplaceAll swaps the stored catalog for the given episodes in one
// transaction and records the build metadata.
func (s *Store) ReplaceAll(ctx context.Context, episodes []Episode, buildID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM episodes"); err != nil {
		return fmt.Errorf("clear episodes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO episodes (
            id, season, episode, title, about, rating, votes, duration, date,
            cringe, moods_json, mood_sources_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ep := range episodes {
		moodsJSON, err := json.Marshal(ep.Moods)
		if err != nil {
			return fmt.Errorf("encode moods for episode %d: %w", ep.ID, err)
		}
		sourcesJSON, err := json.Marshal(ep.MoodSources)
		if err != nil {
			return fmt.Errorf("encode mood sources for episode %d: %w", ep.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			ep.ID, ep.Season, ep.Number, ep.Title, ep.About, ep.Rating,
			ep.Votes, ep.Duration, ep.Date, ep.Cringe,
			string(moodsJSON), string(sourcesJSON),
		); err != nil {
			return fmt.Errorf("insert episode %d: %w", ep.ID, err)
		}
	}

	builtAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO catalog_meta (id, build_id, built_at, episode_count)
         VALUES (1, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
             build_id = excluded.build_id,
             built_at = excluded.built_at,
             episode_count = excluded.episode_count`,
		buildID, builtAt, len(episodes),
	); err != nil {
		return fmt.Errorf("record build metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

const episodeColumns = "id, season, episode, title, about, rating, votes, duration, date, cringe, moods_json, mood_sources_json"

// LoadAll returns every stored episode ordered by id.
func (s *Store) LoadAll(ctx context.Context) ([]Episode, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+episodeColumns+" FROM episodes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		ep, err := scanEpisode(rows)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate episodes: %w", err)
	}
	return episodes, nil
}

// GetByID returns one episode or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id int) (*Episode, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+episodeColumns+" FROM episodes WHERE id = ?", id)
	ep, err := scanEpisode(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &ep, nil
}

// BuildInfo returns the metadata recorded by the last ReplaceAll, or
// ErrNotFound for a never-built catalog.
func (s *Store) BuildInfo(ctx context.Context) (*BuildInfo, error) {
	var (
		info    BuildInfo
		builtAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT build_id, built_at, episode_count FROM catalog_meta WHERE id = 1",
	).Scan(&info.BuildID, &builtAt, &info.EpisodeCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: catalog has not been built", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query build metadata: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, builtAt); parseErr == nil {
		info.BuiltAt = ts
	}
	return &info, nil
}

func scanEpisode(scanner interface{ Scan(dest ...any) error }) (Episode, error) {
	var (
		ep          Episode
		moodsJSON   string
		sourcesJSON string
	)
	if err := scanner.Scan(
		&ep.ID, &ep.Season, &ep.Number, &ep.Title, &ep.About, &ep.Rating,
		&ep.Votes, &ep.Duration, &ep.Date, &ep.Cringe,
		&moodsJSON, &sourcesJSON,
	); err != nil {
		return Episode{}, err
	}
	if err := json.Unmarshal([]byte(moodsJSON), &ep.Moods); err != nil {
		return Episode{}, fmt.Errorf("decode moods for episode %d: %w", ep.ID, err)
	}
	if err := json.Unmarshal([]byte(sourcesJSON), &ep.MoodSources); err != nil {
		return Episode{}, fmt.Errorf("decode mood sources for episode %d: %w", ep.ID, err)
	}
	return ep, nil
}
