package http

import (
	"net/http"

	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	viewer, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	notifications, err := h.services.NotificationService.List(ctx, viewer)
	if err != nil {
		writeError(w, r, err, "*Handler.listNotifications")
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	h.writeJSON(w, r, models.NotificationListResponse{Notifications: notifications, Unread: unread}, http.StatusOK)
}

func (h *Handler) unreadNotifications(w http.ResponseWriter, r *http.Request) {
	viewer, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	unread, err := h.services.NotificationService.UnreadCount(r.Context(), viewer)
	if err != nil {
		writeError(w, r, err, "*Handler.unreadNotifications")
		return
	}

	h.writeJSON(w, r, models.UnreadCount{Unread: unread}, http.StatusOK)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	viewer, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	notification, err := h.services.NotificationService.MarkRead(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.markNotificationRead")
		return
	}

	h.writeJSON(w, r, notification, http.StatusOK)
}
