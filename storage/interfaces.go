package storage

import (
	"context"

	"github.com/scholarch/expertmatch/core"
)

// ExpertRepository provides operations for managing expert records.
// Implementations must be thread-safe and support concurrent access.
type ExpertRepository interface {
	// AddExpertRecords adds one or more expert records to storage.
	// Record IDs are content-based (IDFromContent of the expert name), so
	// re-adding a record with the same name overwrites the previous one.
	// Returns the stored records.
	AddExpertRecords(ctx context.Context, records ...*core.ExpertRecord) ([]*core.ExpertRecord, error)

	// GetExpertRecord retrieves a single expert record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetExpertRecord(ctx context.Context, id core.ID) (*core.ExpertRecord, error)

	// GetExpertRecordByName retrieves an expert record by expert name.
	// Returns ErrNotFound if the record doesn't exist.
	GetExpertRecordByName(ctx context.Context, name string) (*core.ExpertRecord, error)

	// AllExpertRecords retrieves every stored expert record, ordered by ID.
	AllExpertRecords(ctx context.Context) ([]*core.ExpertRecord, error)

	// DeleteExpertRecords removes expert records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteExpertRecords(ctx context.Context, ids ...core.ID) error

	// CountExpertRecords returns the number of stored expert records.
	CountExpertRecords(ctx context.Context) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
