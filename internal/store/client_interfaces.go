package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Setting keys of the client's local key-value table.
const (
	SettingSyncID  = "sync_id"
	SettingSyncKey = "sync_key"
)

// LocalStateRepository persists the client's note tree and its settings in
// the local SQLite database.
type LocalStateRepository interface {
	// SaveEntities replaces every stored entity with notes in one
	// transaction.
	SaveEntities(ctx context.Context, notes models.EntityMap) error

	// LoadEntities returns the stored note tree, empty when nothing was saved.
	LoadEntities(ctx context.Context) (models.EntityMap, error)

	// GetSetting returns the value of key and whether it was set.
	GetSetting(ctx context.Context, key string) (string, bool, error)

	// SetSetting stores value under key, overwriting any previous value.
	SetSetting(ctx context.Context, key, value string) error
}
