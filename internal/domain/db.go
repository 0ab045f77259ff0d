package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Migrate is idempotent: it creates the schema if absent and is safe to
// run on every startup.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
