package handler

import (
	"github.com/MKhiriev/go-face-keeper/internal/config"
	"github.com/MKhiriev/go-face-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-face-keeper/internal/handler/http"
	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/service"
)

// Handlers holds one handler per configured transport. A transport whose
// address is empty stays nil.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, metrics http.MetricsRecorder, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
