package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	apperrors "github.com/alexisbeaulieu97/atlas/pkg/errors"
)

// SectionKey is the fixed key under which the active section index is kept.
const SectionKey = "atlas.currentSection"

//go:embed migrations/*.sql
var migrationFS embed.FS

// Store is a small key/value store backed by sqlite, playing the role browser
// local storage plays for the web dashboard.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the store at path and applies pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperrors.NewStorageError("open", "", errors.New("path is empty"))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewStorageError("open", "", fmt.Errorf("create directory: %w", err))
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, apperrors.NewStorageError("open", "", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, apperrors.NewStorageError("open", "", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, apperrors.NewStorageError("migrate", "", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return err
	}
	defer src.Close()

	driver, err := sqlite3.WithInstance(s.db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	// m.Close would also close s.db through the driver, so it is not called.
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.NewStorageError("get", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Truncate(time.Second))
	if err != nil {
		return apperrors.NewStorageError("set", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM local_store WHERE key = ?`, key); err != nil {
		return apperrors.NewStorageError("delete", key, err)
	}
	return nil
}

// SaveSectionIndex records the active section position.
func (s *Store) SaveSectionIndex(ctx context.Context, index int) error {
	return s.Set(ctx, SectionKey, strconv.Itoa(index))
}

// LoadSectionIndex returns the recorded section position. A missing or
// malformed value reports ok=false.
func (s *Store) LoadSectionIndex(ctx context.Context) (int, bool, error) {
	raw, ok, err := s.Get(ctx, SectionKey)
	if err != nil || !ok {
		return 0, false, err
	}
	idx, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil || idx < 0 {
		return 0, false, nil
	}
	return idx, true, nil
}
