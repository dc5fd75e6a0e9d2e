// Package store is the Postgres persistence layer for players and their
// dependent stat records. All SQL lives here; derived ratios do not, they are
// computed on read by the logic package.
package store

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// PgPool defines the interface for the PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Store struct {
	db     PgPool
	logger *zap.SugaredLogger
}

func New(pool *pgxpool.Pool, logger *zap.Logger) *Store {
	return &Store{db: pool, logger: logger.Sugar()}
}

// NewWithPool builds a Store over any PgPool implementation. Used by tests.
func NewWithPool(db PgPool, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger.Sugar()}
}

// Migrate applies the embedded migrations in lexical order. Statements are
// idempotent (CREATE ... IF NOT EXISTS) so re-running on boot is safe.
func (s *Store) Migrate(ctx context.Context) error {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations dir: %w", err)
	}

	for _, entry := range entries {
		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}
		if _, err := s.db.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", entry.Name(), err)
		}
		s.logger.Infow("Applied migration", "file", entry.Name())
	}
	return nil
}

func notFoundIfNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
