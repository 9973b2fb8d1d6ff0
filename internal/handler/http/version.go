package http

import (
	"net/http"

	"github.com/MKhiriev/go-face-keeper/internal/logger"
	"github.com/MKhiriev/go-face-keeper/internal/utils"
	"github.com/MKhiriev/go-face-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	buildInfo := h.services.AppInfoService.GetBuildInfo(ctx)

	response := models.VersionResponse{
		Version: h.services.AppInfoService.GetAppVersion(ctx),
		Date:    buildInfo.BuildDate(),
		Commit:  buildInfo.BuildCommit(),
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health")
	}
}
