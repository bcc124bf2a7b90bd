package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-policy-desk/internal/app"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "*Handler.getProfile")
		return
	}

	h.writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateProfile").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(r.Context(), identity, update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateProfile")
		return
	}

	h.writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	profiles, err := h.services.ProfileService.ListProfiles(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "*Handler.listProfiles")
		return
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	h.writeJSON(w, r, profiles, http.StatusOK)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var update models.RoleUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateRole").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.UpdateRole(r.Context(), identity, chi.URLParam(r, "userID"), update.Role)
	if err != nil {
		writeError(w, r, err, "*Handler.updateRole")
		return
	}

	h.writeJSON(w, r, profile, http.StatusOK)
}
