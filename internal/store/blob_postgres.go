package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// postgresBlobStorage keeps blobs in the "blobs" table. Reads refresh
// accessed_at in the same statement that returns the payload.
type postgresBlobStorage struct {
	*DB
	now func() time.Time
}

// NewPostgresBlobStorage constructs a [BlobStorage] backed by db. The schema
// must already be migrated.
func NewPostgresBlobStorage(db *DB) BlobStorage {
	return &postgresBlobStorage{DB: db, now: time.Now}
}

func (p *postgresBlobStorage) Read(ctx context.Context, ns models.Namespace, id string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if err := checkKey(ns, id); err != nil {
		return nil, err
	}

	query, args, err := buildReadBlobQuery(ns, id, p.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob []byte
	err = p.withRetry(ctx, func() error {
		return p.DB.QueryRowContext(ctx, query, args...).Scan(&blob)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "postgresBlobStorage.Read").
			Str("namespace", string(ns)).
			Msg("failed to read blob")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return blob, nil
}

func (p *postgresBlobStorage) Write(ctx context.Context, ns models.Namespace, id string, blob []byte) error {
	log := logger.FromContext(ctx)

	if err := checkKey(ns, id); err != nil {
		return err
	}

	query, args, err := buildWriteBlobQuery(ns, id, blob, p.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = p.withRetry(ctx, func() error {
		_, execErr := p.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "postgresBlobStorage.Write").
			Str("namespace", string(ns)).
			Msg("failed to upsert blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (p *postgresBlobStorage) Create(ctx context.Context, ns models.Namespace, id string, blob []byte) error {
	log := logger.FromContext(ctx)

	if err := checkKey(ns, id); err != nil {
		return err
	}

	query, args, err := buildCreateBlobQuery(ns, id, blob, p.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = p.withRetry(ctx, func() error {
		_, execErr := p.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if isUniqueViolation(err) {
		return ErrBlobExists
	}
	if err != nil {
		log.Err(err).
			Str("func", "postgresBlobStorage.Create").
			Str("namespace", string(ns)).
			Msg("failed to insert blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (p *postgresBlobStorage) DeleteIfIdle(ctx context.Context, ns models.Namespace, id string, cutoff time.Time) (bool, error) {
	if err := checkKey(ns, id); err != nil {
		return false, err
	}

	query, args, err := buildDeleteIdleBlobQuery(ns, id, cutoff.UTC())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = p.withRetry(ctx, func() error {
		res, execErr := p.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "postgresBlobStorage.DeleteIfIdle").
			Str("namespace", string(ns)).
			Msg("failed to delete idle blob")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (p *postgresBlobStorage) List(ctx context.Context) ([]models.BlobInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlobsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postgresBlobStorage.List").Msg("failed to list blobs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	infos := make([]models.BlobInfo, 0, 64)
	for rows.Next() {
		var (
			info models.BlobInfo
			ns   string
		)
		if scanErr := rows.Scan(&ns, &info.ID, &info.AccessedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "postgresBlobStorage.List").Msg("failed to scan blob row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		info.Namespace = models.Namespace(ns)
		infos = append(infos, info)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return infos, nil
}
