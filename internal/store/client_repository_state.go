package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type localStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalStateRepository(db *DB, logger *logger.Logger) LocalStateRepository {
	return &localStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localStateRepository) SaveEntities(ctx context.Context, notes models.EntityMap) (err error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localStateRepository.SaveEntities").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := buildDeleteEntitiesQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localStateRepository.SaveEntities").Msg("failed to clear entities")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, id := range notes.IDs() {
		data, marshalErr := json.Marshal(notes[id])
		if marshalErr != nil {
			err = fmt.Errorf("failed to encode entity %s: %w", id, marshalErr)
			return err
		}

		query, args, err = buildInsertEntityQuery(id, data)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localStateRepository.SaveEntities").
				Str("id", id).
				Msg("failed to insert entity")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localStateRepository.SaveEntities").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localStateRepository) LoadEntities(ctx context.Context) (models.EntityMap, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntitiesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localStateRepository.LoadEntities").Msg("failed to query entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make(models.EntityMap)
	for rows.Next() {
		var id, data string
		if scanErr := rows.Scan(&id, &data); scanErr != nil {
			log.Err(scanErr).Str("func", "localStateRepository.LoadEntities").Msg("failed to scan entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		var entity models.Entity
		if err := json.Unmarshal([]byte(data), &entity); err != nil {
			// a damaged row loses one entity, not the whole tree
			log.Warn().Err(err).Str("id", id).Msg("skipping undecodable entity")
			continue
		}
		notes[id] = entity
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

func (l *localStateRepository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildGetSettingQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.withRetry(ctx, func() error {
		return l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localStateRepository.GetSetting").
			Str("key", key).
			Msg("failed to read setting")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (l *localStateRepository) SetSetting(ctx context.Context, key, value string) error {
	query, args, err := buildSetSettingQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = l.withRetry(ctx, func() error {
		_, execErr := l.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localStateRepository.SetSetting").
			Str("key", key).
			Msg("failed to store setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
