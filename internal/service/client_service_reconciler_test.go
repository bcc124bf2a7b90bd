package service

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/mock"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var reconcileClock = func() time.Time { return time.UnixMilli(1700000000000) }

func newReconciler(t *testing.T) (*mock.MockServerAdapter, AttachmentReconciler) {
	uploader := mock.NewMockServerAdapter(gomock.NewController(t))
	return uploader, NewAttachmentReconciler(uploader, 2, reconcileClock, logger.Nop())
}

// ── UploadFolder / SafeFileName ──

func TestUploadFolder(t *testing.T) {
	tests := []struct {
		name     string
		customer models.Personal
		want     string
	}{
		{name: "trimmed full name", customer: models.Personal{FirstName: " Meera", LastName: "Iyer "}, want: "Meera Iyer"},
		{name: "first name only", customer: models.Personal{FirstName: "Meera"}, want: "Meera"},
		{name: "blank", customer: models.Personal{}, want: UnnamedCustomerFolder},
		{name: "slash", customer: models.Personal{FirstName: "A/B", LastName: "C"}, want: "A_B C"},
		{name: "backslash", customer: models.Personal{FirstName: `Asha\Rao`}, want: "Asha_Rao"},
		{name: "dot dot", customer: models.Personal{FirstName: ".."}, want: UnnamedCustomerFolder},
		{name: "only unsafe runes", customer: models.Personal{FirstName: "रवि", LastName: "कुमार"}, want: UnnamedCustomerFolder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UploadFolder(tt.customer))
		})
	}
}

func TestSafeFileName(t *testing.T) {
	tests := map[string]string{
		"id card.pdf":        "id_card.pdf",
		"scan-01.JPG":        "scan-01.JPG",
		"résumé (final).png": "r_sum___final_.png",
		"a/b\\c.txt":         "a_b_c.txt",
	}
	for in, want := range tests {
		assert.Equal(t, want, SafeFileName(in), in)
	}
}

// ── Reconcile ──

func TestReconcile_UploadsOnlyLocalDocuments(t *testing.T) {
	uploader, r := newReconciler(t)
	ctx := context.Background()

	capture := models.EncodeDataURL("image/jpeg", []byte("jpeg-bytes"))
	docs := models.Documents{
		{Name: "old.pdf", MimeType: "application/pdf", RemoteRef: "https://blobs/old.pdf"},
		models.NewFileDocument("id card.pdf", "application/pdf", []byte("pdf-bytes")),
		models.NewCapturedDocument(capture, time.UnixMilli(1699999999000)),
	}

	var (
		mu    sync.Mutex
		paths []string
	)
	uploader.EXPECT().
		UploadBlob(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path string, data []byte, contentType string) (string, error) {
			mu.Lock()
			paths = append(paths, path)
			mu.Unlock()

			switch path {
			case "Meera Iyer/1700000000000_id_card.pdf":
				assert.Equal(t, []byte("pdf-bytes"), data)
				assert.Equal(t, "application/pdf", contentType)
			case "Meera Iyer/1700000000000_scanned_1699999999000.jpg":
				assert.Equal(t, []byte("jpeg-bytes"), data)
				assert.Equal(t, "image/jpeg", contentType)
			default:
				t.Errorf("unexpected upload path %q", path)
			}
			return "https://blobs/" + path, nil
		}).
		Times(2)

	out, err := r.Reconcile(ctx, docs, models.Personal{FirstName: "Meera", LastName: "Iyer"})

	require.NoError(t, err)
	require.Len(t, out, 3)
	sort.Strings(paths)
	assert.Len(t, paths, 2)

	assert.Equal(t, docs[0], out[0])
	for i, d := range out {
		assert.Equal(t, models.DocumentRemote, d.State(), "document %d", i)
		assert.Nil(t, d.Local)
		assert.Equal(t, docs[i].Name, d.Name)
		assert.Equal(t, docs[i].DeclaredSize, d.DeclaredSize)
	}
	assert.Equal(t, "https://blobs/Meera Iyer/1700000000000_id_card.pdf", out[1].RemoteRef)
	assert.Zero(t, out.Pending())
}

func TestReconcile_Idempotent(t *testing.T) {
	uploader, r := newReconciler(t)
	ctx := context.Background()

	uploader.EXPECT().UploadBlob(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("https://blobs/a", nil).Times(1)

	docs := models.Documents{models.NewFileDocument("a.pdf", "application/pdf", []byte("a"))}
	first, err := r.Reconcile(ctx, docs, models.Personal{})
	require.NoError(t, err)

	second, err := r.Reconcile(ctx, first, models.Personal{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReconcile_InputNotMutated(t *testing.T) {
	uploader, r := newReconciler(t)
	ctx := context.Background()

	uploader.EXPECT().UploadBlob(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("https://blobs/a", nil)

	docs := models.Documents{models.NewFileDocument("a.pdf", "application/pdf", []byte("a"))}
	before := docs.Clone()

	_, err := r.Reconcile(ctx, docs, models.Personal{})

	require.NoError(t, err)
	assert.Equal(t, before, docs)
	assert.Equal(t, models.DocumentLocal, docs[0].State())
}

func TestReconcile_UnnamedCustomerFolder(t *testing.T) {
	uploader, r := newReconciler(t)
	ctx := context.Background()

	uploader.EXPECT().
		UploadBlob(ctx, UnnamedCustomerFolder+"/1700000000000_a.pdf", []byte("a"), "application/pdf").
		Return("https://blobs/a", nil)

	_, err := r.Reconcile(ctx, models.Documents{models.NewFileDocument("a.pdf", "application/pdf", []byte("a"))}, models.Personal{})

	require.NoError(t, err)
}

func TestReconcile_UnsafeCustomerNameStaysOneSegment(t *testing.T) {
	uploader, r := newReconciler(t)
	ctx := context.Background()

	uploader.EXPECT().
		UploadBlob(ctx, "Asha_Rao/1700000000000_a.pdf", []byte("a"), "application/pdf").
		Return("https://blobs/a", nil)

	docs := models.Documents{models.NewFileDocument("a.pdf", "application/pdf", []byte("a"))}
	_, err := r.Reconcile(ctx, docs, models.Personal{FirstName: `Asha\Rao`})

	require.NoError(t, err)
}

func TestReconcile_RepeatedNamesGetDistinctKeys(t *testing.T) {
	uploader, r := newReconciler(t)
	ctx := context.Background()

	var (
		mu    sync.Mutex
		paths []string
	)
	uploader.EXPECT().
		UploadBlob(ctx, gomock.Any(), gomock.Any(), "application/pdf").
		DoAndReturn(func(_ context.Context, path string, _ []byte, _ string) (string, error) {
			mu.Lock()
			paths = append(paths, path)
			mu.Unlock()
			return "https://blobs/" + path, nil
		}).
		Times(2)

	docs := models.Documents{
		models.NewFileDocument("id.pdf", "application/pdf", []byte("front")),
		models.NewFileDocument("id.pdf", "application/pdf", []byte("back")),
	}
	out, err := r.Reconcile(ctx, docs, models.Personal{FirstName: "Meera"})
	require.NoError(t, err)

	sort.Strings(paths)
	assert.Equal(t, []string{"Meera/1700000000000_1_id.pdf", "Meera/1700000000000_id.pdf"}, paths)
	assert.NotEqual(t, out[0].RemoteRef, out[1].RemoteRef)
}

func TestReconcile_FailureNamesDocument(t *testing.T) {
	uploader, r := newReconciler(t)
	ctx := context.Background()

	uploader.EXPECT().
		UploadBlob(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path string, _ []byte, _ string) (string, error) {
			if path == UnnamedCustomerFolder+"/1700000000000_broken.pdf" {
				return "", adapter.NewResponseError(http.StatusRequestEntityTooLarge, "payload too large")
			}
			return "https://blobs/" + path, nil
		}).
		Times(2)

	docs := models.Documents{
		models.NewFileDocument("fine.pdf", "application/pdf", []byte("ok")),
		models.NewFileDocument("broken.pdf", "application/pdf", []byte("too big")),
	}

	out, err := r.Reconcile(ctx, docs, models.Personal{})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrReconciliation)
	assert.ErrorIs(t, err, adapter.ErrPayloadTooLarge)

	var rerr *ReconciliationError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "broken.pdf", rerr.Document)
	assert.Contains(t, err.Error(), `"broken.pdf"`)
}

func TestReconcile_InvalidCapture(t *testing.T) {
	_, r := newReconciler(t)

	docs := models.Documents{{Name: "scan.jpg", Local: &models.LocalPayload{DataURL: "data:image/jpeg,plain"}}}

	_, err := r.Reconcile(context.Background(), docs, models.Personal{})

	assert.ErrorIs(t, err, models.ErrInvalidDataURL)
	assert.ErrorIs(t, err, ErrReconciliation)
}

func TestReconcile_NothingPending(t *testing.T) {
	_, r := newReconciler(t)

	out, err := r.Reconcile(context.Background(), models.Documents{}, models.Personal{})

	require.NoError(t, err)
	assert.Empty(t, out)
}
