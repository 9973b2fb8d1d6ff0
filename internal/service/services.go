package service

import (
	"github.com/MKhiriev/go-face-keeper/internal/adapter"
	"github.com/MKhiriev/go-face-keeper/internal/config"
	"github.com/MKhiriev/go-face-keeper/internal/crypto"
	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/store"
	"github.com/MKhiriev/go-face-keeper/models"
)

type Services struct {
	FaceIdentityService FaceIdentityService
	AuthService         AuthService
	AppInfoService      AppInfoService
}

// Dependencies groups the collaborators NewServices wires together.
type Dependencies struct {
	FaceStore store.FaceStore
	Oracle    adapter.EmbeddingOracle
	Cipher    crypto.EmbeddingCipher
	Recorder  OutcomeRecorder
	BuildInfo models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(deps.BuildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		FaceIdentityService: NewFaceIdentityService(deps.FaceStore, deps.Oracle, deps.Cipher, deps.Recorder, cfg.App, logger),
		AuthService:         NewAuthService(cfg.App, logger),
		AppInfoService:      appInfoService,
	}, nil
}
