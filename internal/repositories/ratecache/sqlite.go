// Package ratecache provides a SQLite-backed key/value slot for the exchange
// rate table. It is the only persisted state in the application: the rate
// provider writes the table after each successful fetch and reads it back on
// startup and on every cache-miss check.
package ratecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/harutok/warikan/internal/apperrors"
	"github.com/harutok/warikan/internal/core/domain"
	portsrepo "github.com/harutok/warikan/internal/core/ports/repositories"
)

// slotName is the fixed key the serialized rate table is stored under.
const slotName = "exchange_rates"

// Ensure Store implements the RateCache port.
var _ portsrepo.RateCache = (*Store)(nil)

// Store implements ports.RateCache on an embedded SQLite database.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the cache database at dbPath and prepares the
// key/value table.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS rate_cache (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetRateTable reads the cached table. Absent or unparseable entries are
// reported as apperrors.ErrNotFound; the provider treats both as a cache miss.
func (s *Store) GetRateTable(ctx context.Context) (*domain.RateTable, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM rate_cache WHERE name = ?", slotName,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rate cache slot %q: %w", slotName, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rate cache: %w", err)
	}

	var table domain.RateTable
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		// A corrupted slot behaves like an empty one.
		return nil, fmt.Errorf("rate cache slot %q corrupted: %w", slotName, apperrors.ErrNotFound)
	}
	return &table, nil
}

// PutRateTable overwrites the cached table wholesale.
func (s *Store) PutRateTable(ctx context.Context, table domain.RateTable) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to serialize rate table: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO rate_cache (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		slotName, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to write rate cache: %w", err)
	}
	return nil
}
