package http

import (
	"net/http"

	"github.com/MKhiriev/go-policy-desk/internal/utils"
	"github.com/MKhiriev/go-policy-desk/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	h.writeJSON(w, r, models.VersionResponse{Version: serverVersion}, http.StatusOK)
}

// writeJSON answers with data; a marshal failure is only logged because
// utils.WriteJSON has already written a 500.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		h.logger.Err(err).Str("func", "*Handler.writeJSON").Str("uri", r.RequestURI).Msg("error writing response")
	}
}
