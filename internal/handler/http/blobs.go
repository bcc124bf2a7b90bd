package http

import (
	"net/http"

	"github.com/MKhiriev/go-policy-desk/models"
)

// uploadBlob stores the raw request body under the path query parameter.
// Keys are scoped to the caller, so re-uploading a path replaces only the
// caller's own object.
func (h *Handler) uploadBlob(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if r.ContentLength > h.settings.MaxUploadSize {
		writeError(w, r, &http.MaxBytesError{Limit: h.settings.MaxUploadSize}, "*Handler.uploadBlob")
		return
	}
	body := http.MaxBytesReader(w, r.Body, h.settings.MaxUploadSize)

	url, err := h.services.BlobService.Upload(r.Context(), identity, r.URL.Query().Get("path"), body, r.ContentLength, r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, r, err, "*Handler.uploadBlob")
		return
	}

	h.writeJSON(w, r, models.BlobUploadResponse{URL: url}, http.StatusCreated)
}
