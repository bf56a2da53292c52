package http

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

// Sweeper is offered a chance to collect abandoned blobs after each data
// request.
type Sweeper interface {
	MaybeSweep(ctx context.Context) bool
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	sweeper   Sweeper
	limiter   *rateLimiter
	cfg       config.Server
	hashKey   string

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. sweeper may be nil.
func NewHandler(services *service.Services, sweeper Sweeper, cfg config.Server, hashKey string, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewActionRequestValidator(),
		sweeper:   sweeper,
		limiter:   newRateLimiter(cfg.RateLimit, cfg.RateBurst),
		cfg:       cfg,
		hashKey:   hashKey,
		logger:    logger,
	}
}
