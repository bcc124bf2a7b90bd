package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access line per request once the handler returns.
// Server errors log at error level and client errors at warn. Change
// streams are marked so their long durations read as expected.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		log := logger.FromRequest(r)
		var event *zerolog.Event
		switch status := rec.statusOrOK(); {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rec.statusOrOK()).
			Int("size", rec.size).
			Dur("duration", time.Since(start)).
			Bool("stream", strings.HasPrefix(rec.Header().Get("Content-Type"), "text/event-stream")).
			Send()
	})
}

// statusRecorder remembers the status and body size a handler wrote.
type statusRecorder struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Flush keeps Server-Sent Events working behind the recorder.
func (w *statusRecorder) Flush() {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the underlying writer to [http.ResponseController].
func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// statusOrOK reports 200 for a handler that wrote nothing.
func (w *statusRecorder) statusOrOK() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
