package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-note-keeper/internal/quota"
	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService keeps one encrypted note tree per account and merges uploads
// into it.
type SyncService interface {
	// Read decrypts and returns the stored tree.
	// Returns ErrNotFound or ErrInvalidKey.
	Read(ctx context.Context, id, key string) (models.EntityMap, error)

	// UploadAndMerge merges body into the stored tree (creating it when
	// absent) and returns the entities the caller has to apply locally.
	UploadAndMerge(ctx context.Context, id, key string, body models.EntityMap) (models.EntityMap, error)
}

// ShareService stores write-once shared note snapshots.
type ShareService interface {
	// CreateShare stores content under id. Returns ErrExists when id is taken
	// and ErrLimit when the daily quota is exhausted.
	CreateShare(ctx context.Context, id, key string, content json.RawMessage) error

	// ResolveShare returns the decrypted content stored under id.
	ResolveShare(ctx context.Context, id, key string) (json.RawMessage, error)
}

// AppInfoService reports the build the server runs.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// QuotaGuard enforces daily ceilings and counts events.
type QuotaGuard interface {
	Allow(ctx context.Context, action quota.Action) error
	Record(ctx context.Context, event quota.Event)
}
