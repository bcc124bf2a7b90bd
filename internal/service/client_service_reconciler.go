package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/workers"
	"github.com/MKhiriev/go-policy-desk/models"
)

// UnnamedCustomerFolder is used when the applicant has no name yet.
const UnnamedCustomerFolder = "Unnamed_Customer"

type attachmentReconciler struct {
	uploader BlobUploader
	limit    int
	now      func() time.Time

	logger *logger.Logger
}

// NewAttachmentReconciler returns a reconciler uploading through uploader
// with at most limit uploads in flight; zero means no limit.
func NewAttachmentReconciler(uploader BlobUploader, limit int, now func() time.Time, logger *logger.Logger) AttachmentReconciler {
	if now == nil {
		now = time.Now
	}
	return &attachmentReconciler{uploader: uploader, limit: limit, now: now, logger: logger}
}

// Reconcile uploads every local document concurrently. Uploads are not
// cancelled when a sibling fails; the run waits for all of them and reports
// the first failure. Objects uploaded by a failed run stay in the store.
func (r *attachmentReconciler) Reconcile(ctx context.Context, docs models.Documents, customer models.Personal) (models.Documents, error) {
	out := docs.Clone()
	if out.Pending() == 0 {
		return out, nil
	}

	folder := UploadFolder(customer)
	stamp := strconv.FormatInt(r.now().UnixMilli(), 10)

	var (
		mu       sync.Mutex
		uploaded []string
	)

	seen := make(map[string]bool, len(out))
	group := workers.New(r.limit)
	for i, doc := range out {
		if doc.State() != models.DocumentLocal {
			continue
		}

		// a repeated name in one run gets its row index so keys never collide
		name := SafeFileName(doc.Name)
		if seen[name] {
			name = strconv.Itoa(i) + "_" + name
		}
		seen[name] = true
		path := folder + "/" + stamp + "_" + name

		group.Add(workers.WorkerFunc(func() error {
			data, contentType, err := doc.Content()
			if err != nil {
				return &ReconciliationError{Document: doc.Name, Err: err}
			}

			url, err := r.uploader.UploadBlob(ctx, path, data, contentType)
			if err != nil {
				return &ReconciliationError{Document: doc.Name, Err: mapAdapterError(err)}
			}

			mu.Lock()
			uploaded = append(uploaded, path)
			mu.Unlock()

			out[i] = doc.WithRemoteRef(url)
			return nil
		}))
	}

	if err := group.Run(); err != nil {
		r.logger.Err(err).
			Str("func", "attachmentReconciler.Reconcile").
			Strs("orphaned_keys", uploaded).
			Msg("attachment reconciliation failed")
		return nil, err
	}

	r.logger.Debug().Int("uploaded", len(uploaded)).Str("folder", folder).Msg("attachments reconciled")
	return out, nil
}

// UploadFolder is the applicant's trimmed full name with every character
// outside [a-zA-Z0-9 .-] replaced by "_". A name left with nothing but dots,
// spaces and underscores falls back to [UnnamedCustomerFolder], so the folder
// is always a single safe path segment.
func UploadFolder(customer models.Personal) string {
	folder := strings.Map(func(c rune) rune {
		if c == ' ' || safeRune(c) {
			return c
		}
		return '_'
	}, customer.FullName())
	if strings.Trim(folder, "._ ") == "" {
		return UnnamedCustomerFolder
	}
	return folder
}

// SafeFileName replaces every character outside [a-zA-Z0-9.-] with "_".
func SafeFileName(name string) string {
	return strings.Map(func(c rune) rune {
		if safeRune(c) {
			return c
		}
		return '_'
	}, name)
}

func safeRune(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '.' || c == '-'
}
