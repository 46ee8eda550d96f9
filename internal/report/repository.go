package report

import (
	"context"
	"time"
)

// Repository is the storage interface for the synced availability index.
// Implementations keep the last imported index so the calendar works without
// re-reading the report directory on every start.
type Repository interface {
	// SaveIndex replaces the stored index with idx and records the sync time.
	SaveIndex(ctx context.Context, idx *Index) error

	// LoadIndex returns the stored index. An empty index is returned when
	// nothing has been synced yet.
	LoadIndex(ctx context.Context) (*Index, error)

	// SyncedAt returns when the index was last saved, zero if never.
	SyncedAt(ctx context.Context) (time.Time, error)

	// Close releases any resources held by the repository.
	Close() error
}
