package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/entity"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

type App struct {
	notes    *entity.Store
	services *service.ClientServices
	view     View
	closer   io.Closer

	syncInterval time.Duration
	logger       *logger.Logger
}

// NewApp opens the local database, restores the note tree and credentials
// and builds the UI. A configured import file replaces the restored tree.
func NewApp(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(ctx, storages, cfg, info, logger)
	if err != nil {
		storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, storages *store.ClientStorages, cfg *config.ClientConfig, info models.AppBuildInfo,
	logger *logger.Logger) (*App, error) {
	saved, err := storages.StateRepository.LoadEntities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	notes := entity.NewStore(saved)
	logger.Info().Int("entities", notes.Len()).Msg("notes restored")

	if cfg.ImportFile != "" {
		if err = importFile(notes, cfg.ImportFile); err != nil {
			return nil, err
		}
		logger.Info().Str("file", cfg.ImportFile).Msg("notes imported")
	}
	if notes.Prune("") {
		logger.Info().Int("entities", notes.Len()).Msg("notes pruned")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(notes, storages, serverAdapter, cfg, logger)
	if _, err = services.SyncService.LoadCredentials(ctx, cfg.App.SyncCode); err != nil {
		return nil, fmt.Errorf("load sync credentials: %w", err)
	}

	ui, err := tui.New(notes, services, info, logger)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}
	services.SyncService.SetPresenter(ui)

	return &App{
		notes:        notes,
		services:     services,
		view:         ui,
		closer:       storages,
		syncInterval: cfg.Workers.SyncInterval,
		logger:       logger,
	}, nil
}

func importFile(notes *entity.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	if err = notes.Import(f); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	return nil
}

// Run starts the sync loops, blocks in the UI and saves the tree once more
// after the UI exits.
func (a *App) Run(ctx context.Context) error {
	a.services.SyncJob.Start(ctx, a.syncInterval)
	runErr := a.view.Run(ctx)
	a.services.SyncJob.Stop()

	if err := a.services.SyncService.Save(context.WithoutCancel(ctx)); err != nil {
		a.logger.Err(err).Msg("final save failed")
		if runErr == nil {
			runErr = err
		}
	}
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Err(err).Msg("closing local storage failed")
		}
	}

	return runErr
}
