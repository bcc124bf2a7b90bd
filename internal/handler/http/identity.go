package http

import (
	"net/http"

	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/internal/utils"
	"github.com/MKhiriev/go-policy-desk/models"
)

// identityFromRequest returns the identity stored by the auth middleware.
// On failure it has already answered the request.
func identityFromRequest(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok || identity.IsZero() {
		writeError(w, r, service.ErrNoIdentity, "identityFromRequest")
		return models.Identity{}, false
	}
	return identity, true
}
