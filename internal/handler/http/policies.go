package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-policy-desk/internal/app"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPolicies(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := models.PolicyFilter{
		Status: models.PolicyStatus(query.Get("status")),
		Scope:  models.ListScope(query.Get("scope")),
	}

	policies, err := h.services.PolicyService.List(r.Context(), identity, filter)
	if err != nil {
		writeError(w, r, err, "*Handler.listPolicies")
		return
	}
	if policies == nil {
		policies = []models.PolicyRecord{}
	}

	h.writeJSON(w, r, models.PolicyListResponse{Policies: policies, Length: len(policies)}, http.StatusOK)
}

func (h *Handler) countPolicies(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	counts, err := h.services.PolicyService.Counts(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, "*Handler.countPolicies")
		return
	}

	h.writeJSON(w, r, counts, http.StatusOK)
}

func (h *Handler) getPolicy(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	record, err := h.services.PolicyService.Get(r.Context(), identity, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.getPolicy")
		return
	}

	h.writeJSON(w, r, record, http.StatusOK)
}

// createPolicy stores a new application. Any ref in the body is ignored.
func (h *Handler) createPolicy(w http.ResponseWriter, r *http.Request) {
	h.savePolicy(w, r, models.NotPersisted(), http.StatusCreated, "*Handler.createPolicy")
}

// updatePolicy upserts the application named by the path.
func (h *Handler) updatePolicy(w http.ResponseWriter, r *http.Request) {
	h.savePolicy(w, r, models.Persisted(chi.URLParam(r, "id")), http.StatusOK, "*Handler.updatePolicy")
}

func (h *Handler) savePolicy(w http.ResponseWriter, r *http.Request, ref models.PolicyRef, status int, funcName string) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var write models.PolicyWrite
	if err := json.NewDecoder(r.Body).Decode(&write); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	write.Ref = ref

	record, err := h.services.PolicyService.Save(r.Context(), identity, write)
	if err != nil {
		writeError(w, r, err, funcName)
		return
	}

	h.writeJSON(w, r, record, status)
}

func (h *Handler) deletePolicy(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.PolicyService.Delete(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deletePolicy")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
