package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
	"github.com/sethvargo/go-retry"
)

// retryDelays are the pauses between attempts of an operation whose error the
// classificator considers retryable.
var retryDelays = []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, time.Second}

// DB wraps a database/sql handle with the dialect it speaks and the error
// classificator used for retries.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op and repeats it after each of retryDelays while it fails
// with a retryable error. Without a classificator op runs exactly once. When
// ctx ends between attempts the last error of op is joined with ctx.Err().
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	attempt := 0
	backoff := retry.BackoffFunc(func() (time.Duration, bool) {
		if attempt >= len(retryDelays) {
			return 0, true
		}
		delay := retryDelays[attempt]
		attempt++
		return delay, false
	})

	var lastErr error
	err := retry.Do(ctx, backoff, func(context.Context) error {
		lastErr = op()
		if lastErr == nil || db.errorClassificator == nil || db.errorClassificator.Classify(lastErr) != Retryable {
			return lastErr
		}
		db.logger.Warn().Err(lastErr).Int("attempt", attempt+1).Msg("retryable database error")
		return retry.RetryableError(lastErr)
	})

	if lastErr != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return errors.Join(lastErr, err)
	}
	return err
}
