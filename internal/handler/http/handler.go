package http

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/service"
)

// defaultMaxUploadSize caps a single attachment upload.
const defaultMaxUploadSize int64 = 10 << 20

// Settings configures the HTTP handler.
type Settings struct {
	// RequestTimeout bounds every non-streaming request. Zero disables it.
	RequestTimeout time.Duration

	// BlobDir is served under /blobs/ when set. Only the file blob driver
	// needs it.
	BlobDir string

	// MaxUploadSize caps the body of PUT /api/blobs. Zero means 10 MiB.
	MaxUploadSize int64
}

type Handler struct {
	services *service.Services
	settings Settings

	// streamsDone is closed by StopStreams to end every open change stream.
	streamsDone chan struct{}
	stopOnce    sync.Once

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	if settings.MaxUploadSize <= 0 {
		settings.MaxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		settings:    settings,
		streamsDone: make(chan struct{}),
		logger:      logger,
	}
}

// StopStreams ends the open change streams. Graceful HTTP shutdown waits
// for handlers to return and a stream never returns on its own.
func (h *Handler) StopStreams() {
	if h.streamsDone == nil {
		return
	}
	h.stopOnce.Do(func() {
		h.logger.Info().Msg("closing change streams")
		close(h.streamsDone)
	})
}
