package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-policy-desk/internal/app"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listGrants(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	ledger, err := h.services.SharingService.ListGrants(r.Context(), identity, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.listGrants")
		return
	}

	h.writeJSON(w, r, ledger, http.StatusOK)
}

func (h *Handler) grantAccess(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.grantAccess").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	ledger, err := h.services.SharingService.Grant(r.Context(), identity, chi.URLParam(r, "id"), req.Email)
	if err != nil {
		writeError(w, r, err, "*Handler.grantAccess")
		return
	}

	h.writeJSON(w, r, ledger, http.StatusCreated)
}

func (h *Handler) revokeAccess(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.revokeAccess").Msg("invalid email in path")
		http.Error(w, app.MsgInvalidEmail, http.StatusBadRequest)
		return
	}

	ledger, err := h.services.SharingService.Revoke(r.Context(), identity, chi.URLParam(r, "id"), email)
	if err != nil {
		writeError(w, r, err, "*Handler.revokeAccess")
		return
	}

	h.writeJSON(w, r, ledger, http.StatusOK)
}
