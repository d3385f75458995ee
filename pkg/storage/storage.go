package storage

import "context"

// Provider encapsulates the operations the generator routes its artifacts
// through. Keeping the contract command-shaped (operation name plus args)
// lets filesystem, in-memory, and database-backed implementations coexist
// behind one interface.
type Provider interface {
	Query(ctx context.Context, op string, args ...any) (Rows, error)
	Exec(ctx context.Context, op string, args ...any) (Result, error)
	Transaction(ctx context.Context, fn func(tx Transaction) error) error
}

// Config captures the runtime configuration for a storage provider.
type Config struct {
	Name     string
	Driver   string
	DSN      string
	ReadOnly bool
	Options  map[string]any
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

type Result interface {
	RowsAffected() (int64, error)
	LastInsertId() (int64, error)
}

type Transaction interface {
	Provider
	Commit() error
	Rollback() error
}
