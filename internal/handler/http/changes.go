package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/app"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

// keepAliveInterval is how often an idle change stream sends a comment line.
var keepAliveInterval = 15 * time.Second

// streamChanges serves the change feed as Server-Sent Events. Each event is
// one "data:" line with a JSON ChangeEvent. The stream ends when the client
// goes away or the server stops streams for shutdown.
func (h *Handler) streamChanges(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFromRequest(w, r); !ok {
		return
	}
	log := logger.FromRequest(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Str("func", "*Handler.streamChanges").Msg("response writer can't flush")
		http.Error(w, app.MsgStreamingUnsupported, http.StatusInternalServerError)
		return
	}

	var tables []models.Table
	for _, t := range r.URL.Query()["table"] {
		tables = append(tables, models.Table(t))
	}

	ctx := r.Context()
	events, err := h.services.ChangeService.Subscribe(ctx, tables...)
	if err != nil {
		writeError(w, r, err, "*Handler.streamChanges")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.streamsDone:
			return
		case <-keepAlive.C:
			if _, err = fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}

			data, err := json.Marshal(event)
			if err != nil {
				log.Err(err).Str("func", "*Handler.streamChanges").Msg("error encoding change event")
				continue
			}
			if _, err = fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				log.Debug().Err(err).Msg("change stream closed by client")
				return
			}
			flusher.Flush()
		}
	}
}
