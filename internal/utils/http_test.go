package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_PolicyList(t *testing.T) {
	w := httptest.NewRecorder()
	body := models.PolicyListResponse{
		Policies: []models.PolicyRecord{{ID: "p-1", Status: models.StatusDraft}},
		Length:   1,
	}

	n, err := WriteJSON(w, body, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, w.Body.Len(), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), `"id":"p-1"`)
	assert.Contains(t, w.Body.String(), `"length":1`)
}

func TestWriteJSON_Created(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.BlobUploadResponse{URL: "http://desk.local/blobs/Ravi Kumar/1_pan.pdf"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"url":"http://desk.local/blobs/Ravi Kumar/1_pan.pdf"}`, w.Body.String())
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Cache-Control"))
}
