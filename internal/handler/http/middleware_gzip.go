package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-policy-desk/internal/app"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip decodes gzip request bodies and compresses responses for clients
// that accept gzip. Policy listings carry whole form data and shrink well.
// Responses without a body (204, 304) are passed through untouched.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzipWriterPool.Get().(*gzip.Writer)
		gz.Reset(w)
		gw := &gzipResponseWriter{ResponseWriter: w, gz: gz}
		defer func() {
			gw.finish() //nolint:errcheck
			gzipWriterPool.Put(gz)
		}()

		w.Header().Add("Vary", "Accept-Encoding")
		next.ServeHTTP(gw, r)
	})
}

// gzipBody returns its reader to the pool on the first Close.
type gzipBody struct {
	*gzip.Reader
	src    io.ReadCloser
	closed bool
}

func newGzipBody(src io.ReadCloser) (*gzipBody, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr, src: src}, nil
}

func (b *gzipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.Reader.Close() //nolint:errcheck
	gzipReaderPool.Put(b.Reader)
	return b.src.Close()
}

// gzipResponseWriter decides on compression when the status is written.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz *gzip.Writer

	wroteHeader bool
	compress    bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	w.compress = bodyAllowed(statusCode) && w.Header().Get("Content-Encoding") == ""
	if w.compress {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !w.compress {
		return w.ResponseWriter.Write(data)
	}
	return w.gz.Write(data)
}

// Flush pushes buffered compressed bytes to the client.
func (w *gzipResponseWriter) Flush() {
	if w.compress {
		w.gz.Flush() //nolint:errcheck
	}
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// finish writes the gzip trailer. A response that was never compressed must
// not get one.
func (w *gzipResponseWriter) finish() error {
	if !w.compress {
		return nil
	}
	return w.gz.Close()
}

func bodyAllowed(status int) bool {
	return status >= http.StatusOK && status != http.StatusNoContent && status != http.StatusNotModified
}
