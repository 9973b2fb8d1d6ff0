package grpc

import (
	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/service"
	"github.com/MKhiriev/go-face-keeper/internal/validators"
	"google.golang.org/grpc"
)

// Handler is the gRPC transport of the face identity service. It implements
// [FaceIdentityServer] and provides the interceptors the server chains in
// front of it.
type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:  services,
		validator: validators.NewFaceValidator(),
		logger:    logger,
	}
}

// Register attaches the face identity service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	RegisterFaceIdentityServer(s, h)
}

// ServerOptions returns the codec and interceptor chain the handler expects.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ForceServerCodec(Codec{}),
		grpc.ChainUnaryInterceptor(h.LoggingInterceptor(), h.AuthInterceptor()),
	}
}
