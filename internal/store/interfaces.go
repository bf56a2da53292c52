package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobStorage keeps opaque encrypted blobs addressed by namespace and id.
// Implementations never inspect the payload.
type BlobStorage interface {
	// Read returns the blob and refreshes its access time.
	// It returns [ErrBlobNotFound] when nothing is stored under ns/id.
	Read(ctx context.Context, ns models.Namespace, id string) ([]byte, error)

	// Write atomically replaces (or creates) the blob at ns/id. A concurrent
	// reader observes either the old or the new blob, never a partial one.
	Write(ctx context.Context, ns models.Namespace, id string, blob []byte) error

	// Create stores the blob only if ns/id is free and returns
	// [ErrBlobExists] otherwise.
	Create(ctx context.Context, ns models.Namespace, id string, blob []byte) error

	// DeleteIfIdle removes the blob only while its access time is still
	// before cutoff, so a blob written or read after it was listed survives.
	// It reports whether the blob was removed; a missing blob is not an error.
	DeleteIfIdle(ctx context.Context, ns models.Namespace, id string, cutoff time.Time) (bool, error)

	// List describes every stored blob in every namespace.
	List(ctx context.Context) ([]models.BlobInfo, error)
}

// CounterStorage keeps named per-day counters used for quotas and usage
// statistics. Day is formatted as "2006-01-02".
type CounterStorage interface {
	// Increment adds one to the counter and returns the new value.
	Increment(ctx context.Context, day, name string) (int64, error)

	// IncrementBelow adds one only when the current value is below ceiling.
	// It returns the resulting value and whether the increment happened.
	// Check and increment are atomic with respect to other callers.
	IncrementBelow(ctx context.Context, day, name string, ceiling int64) (int64, bool, error)

	// Count returns the current value, zero for an unknown counter.
	Count(ctx context.Context, day, name string) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
