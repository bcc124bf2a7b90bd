package http

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-policy-desk/internal/app"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func serveUpload(t *testing.T, h *Handler, escapedPath string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPut, "/api/blobs?path="+escapedPath, body)
	req.Header.Set("Authorization", "Bearer "+stubToken)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestUploadBlob(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	mocks.blobs.EXPECT().
		Upload(gomock.Any(), meera, "Meera Iyer/1700000000000_id_card.pdf", gomock.Any(), int64(8), "application/pdf").
		DoAndReturn(func(_ any, _ models.Identity, path string, body io.Reader, _ int64, _ string) (string, error) {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-1.7", string(data))
			return "/blobs/" + path, nil
		})

	rec := serveUpload(t, h, "Meera%20Iyer/1700000000000_id_card.pdf", strings.NewReader("%PDF-1.7"), "application/pdf")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"url":"/blobs/Meera Iyer/1700000000000_id_card.pdf"}`, rec.Body.String())
}

func TestUploadBlob_TooLarge(t *testing.T) {
	h, _ := newTestHandler(t, Settings{MaxUploadSize: 4})

	rec := serveUpload(t, h, "a.pdf", strings.NewReader("0123456789"), "application/pdf")

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, app.MsgPayloadTooLarge+"\n", rec.Body.String())
}

func TestUploadBlob_TooLargeWhileStreaming(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{MaxUploadSize: 4})
	mocks.blobs.EXPECT().Upload(gomock.Any(), meera, "a.pdf", gomock.Any(), int64(-1), gomock.Any()).
		DoAndReturn(func(_ any, _ models.Identity, _ string, body io.Reader, _ int64, _ string) (string, error) {
			_, err := io.ReadAll(body)
			return "", fmt.Errorf("error uploading blob: %w: %w", store.ErrUploadingBlob, err)
		})

	// no Content-Length: the limit is only hit while reading
	body := io.MultiReader(strings.NewReader("0123"), strings.NewReader("456789"))
	rec := serveUpload(t, h, "a.pdf", body, "application/pdf")

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadBlob_InvalidPath(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	mocks.blobs.EXPECT().Upload(gomock.Any(), meera, "../etc/passwd", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", store.ErrInvalidBlobPath)

	rec := serveUpload(t, h, "../etc/passwd", strings.NewReader("x"), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidBlobPath+"\n", rec.Body.String())
}
