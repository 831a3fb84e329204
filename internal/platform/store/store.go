// Package store is the read seam over the platform's Postgres database
//
// The shim owns no tables. Lookups that are too costly through GraphQL
// (grouped counters, interaction state for a page) read the platform
// schema directly through the small surface here.
package store

import (
	"context"
	"errors"
	"fmt"

	"mastoshim/internal/platform/logger"
)

// Store holds the optional Postgres seam; the zero value is a disabled store
type Store struct {
	Log logger.Logger

	// PG is nil when the database is disabled
	PG TxRunner
}

// Row is one scanned row
type Row interface {
	Scan(dest ...any) error
}

// Rows iterates a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// CommandTag reports what a statement did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier runs statements
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner runs fn inside one transaction
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Option mutates Store during Open
type Option func(*Store)

// WithLogger sets the logger used for slow queries and connect retries
func WithLogger(log logger.Logger) Option {
	return func(s *Store) { s.Log = log }
}

// Open connects when cfg.PG.Enabled and waits until the database answers
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		o(s)
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	if !cfg.PG.Enabled {
		return s, nil
	}
	p, err := openPool(ctx, cfg, s.Log)
	if err != nil {
		return nil, err
	}
	s.PG = p
	return s, nil
}

// Enabled reports whether a database is attached
func (s *Store) Enabled() bool { return s != nil && s.PG != nil }

// Guard pings the database when one is attached
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	p, ok := s.PG.(interface{ Ping(context.Context) error })
	if !ok {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("pg: %w", err)
	}
	return nil
}

// Close releases the pool; a disabled store is a no op
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
