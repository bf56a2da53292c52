package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/entity"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type ClientServices struct {
	SyncService  ClientSyncService
	ShareService ClientShareService
	SyncJob      ClientSyncJob
}

func NewClientServices(notes *entity.Store, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter,
	cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(notes, serverAdapter, storages.StateRepository, cfg.Adapter.RequestTimeout, logger)

	return &ClientServices{
		SyncService:  syncSvc,
		ShareService: NewClientShareService(notes, serverAdapter, cfg.Adapter.RequestTimeout, logger),
		SyncJob:      NewClientSyncJob(syncSvc, cfg.Workers.SaveInterval, logger),
	}
}
