package service

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type Services struct {
	SyncService    SyncService
	ShareService   ShareService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cipher crypto.BlobCipher, guard QuotaGuard, info models.AppBuildInfo,
	logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		SyncService:    NewSyncService(storages.Blobs, cipher, guard, logger),
		ShareService:   NewShareService(storages.Blobs, cipher, guard, logger),
		AppInfoService: appInfo,
	}, nil
}
