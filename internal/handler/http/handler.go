package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-face-keeper/internal/config"
	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/service"
	"github.com/MKhiriev/go-face-keeper/internal/validators"
)

// maxFaceRequestBytes bounds the JSON body of enroll and verify. A frame of
// validators.MaxFrameBytes grows by a third once base64 encoded.
const maxFaceRequestBytes = validators.MaxFrameBytes*4/3 + 4<<10

// MetricsRecorder counts served requests and exposes the scrape endpoint.
type MetricsRecorder interface {
	ObserveHTTPRequest(method string, code int)
	Handler() http.Handler
}

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   MetricsRecorder

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. metrics may be nil, in which case
// requests are not counted and /metrics is not served.
func NewHandler(services *service.Services, metrics MetricsRecorder, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewFaceValidator(),
		metrics:        metrics,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
