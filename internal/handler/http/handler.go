package http

import (
	"github.com/estoque-digital/estoque-server/internal/logger"
	"github.com/estoque-digital/estoque-server/internal/service"
)

// Handler carries the service layer into the route handlers declared across
// this package. A single instance serves every route.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler wires the route handlers to the given services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
