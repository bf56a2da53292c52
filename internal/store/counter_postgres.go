package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// postgresCounterStorage keeps counters in the "daily_counters" table.
// Conditional increments rely on the upsert's WHERE clause, so concurrent
// servers sharing the database enforce one ceiling.
type postgresCounterStorage struct {
	*DB
}

// NewPostgresCounterStorage constructs a [CounterStorage] backed by db.
func NewPostgresCounterStorage(db *DB) CounterStorage {
	return &postgresCounterStorage{DB: db}
}

func (p *postgresCounterStorage) Increment(ctx context.Context, day, name string) (int64, error) {
	query, args, err := buildIncrementCounterQuery(day, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = p.withRetry(ctx, func() error {
		return p.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postgresCounterStorage.Increment").
			Str("name", name).
			Msg("failed to increment counter")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return count, nil
}

func (p *postgresCounterStorage) IncrementBelow(ctx context.Context, day, name string, ceiling int64) (int64, bool, error) {
	query, args, err := buildIncrementCounterBelowQuery(day, name, ceiling)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = p.withRetry(ctx, func() error {
		return p.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if errors.Is(err, sql.ErrNoRows) {
		// the conflicting row was not updated: ceiling reached
		current, countErr := p.Count(ctx, day, name)
		if countErr != nil {
			return 0, false, countErr
		}
		return current, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postgresCounterStorage.IncrementBelow").
			Str("name", name).
			Msg("failed to increment counter")
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return count, true, nil
}

func (p *postgresCounterStorage) Count(ctx context.Context, day, name string) (int64, error) {
	query, args, err := buildCountQuery(day, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = p.withRetry(ctx, func() error {
		return p.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
