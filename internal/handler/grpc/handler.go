package grpc

import (
	"github.com/MKhiriev/go-passkey-vault/internal/logger"
	"github.com/MKhiriev/go-passkey-vault/internal/service"
)

// Handler is the root gRPC transport handler. It holds the service layer
// and logger shared by the gRPC server; one instance is created at startup.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
