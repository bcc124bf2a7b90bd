package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidDataURL is returned when a captured payload is not a base64 data URL.
	ErrInvalidDataURL = errors.New("invalid data url")
	// ErrEmptyPayload is returned for a local payload with no content.
	ErrEmptyPayload = errors.New("empty local payload")
)

// DocumentState tells where a document's content currently lives.
type DocumentState int

const (
	// DocumentEmpty has neither a local payload nor a remote reference.
	DocumentEmpty DocumentState = iota
	// DocumentLocal holds a payload that still has to be uploaded.
	DocumentLocal
	// DocumentRemote holds a durable reference only.
	DocumentRemote
)

func (s DocumentState) String() string {
	switch s {
	case DocumentLocal:
		return "local"
	case DocumentRemote:
		return "remote"
	}
	return "empty"
}

// LocalPayload is attachment content staged on the agent's machine.
// File-backed payloads carry Bytes; camera captures carry only the encoded
// image as a data URL.
type LocalPayload struct {
	Bytes   []byte `json:"bytes,omitempty"`
	DataURL string `json:"dataUrl,omitempty"`
}

// Captured reports whether the payload came from a camera capture rather
// than a selected file.
func (p LocalPayload) Captured() bool {
	return len(p.Bytes) == 0 && p.DataURL != ""
}

// Document is one attachment of an application.
type Document struct {
	Name         string        `json:"name"`
	DeclaredSize string        `json:"size"`
	MimeType     string        `json:"type"`
	Local        *LocalPayload `json:"localPayload,omitempty"`
	RemoteRef    string        `json:"remoteRef,omitempty"`
}

// NewFileDocument stages a selected file.
func NewFileDocument(name, mimeType string, data []byte) Document {
	return Document{
		Name:         name,
		DeclaredSize: FormatKilobytes(len(data)),
		MimeType:     mimeType,
		Local:        &LocalPayload{Bytes: append([]byte(nil), data...)},
	}
}

// NewCapturedDocument stages a camera capture encoded as a JPEG data URL.
func NewCapturedDocument(dataURL string, at time.Time) Document {
	return Document{
		Name:         "scanned_" + strconv.FormatInt(at.UnixMilli(), 10) + ".jpg",
		DeclaredSize: "Scanned",
		MimeType:     "image/jpeg",
		Local:        &LocalPayload{DataURL: dataURL},
	}
}

// FormatKilobytes renders a byte count the way the size column shows it.
func FormatKilobytes(n int) string {
	return strconv.FormatFloat(float64(n)/1024, 'f', 1, 64) + " KB"
}

// State reports whether the document is local, remote or empty.
func (d Document) State() DocumentState {
	switch {
	case d.RemoteRef != "":
		return DocumentRemote
	case d.Local != nil && (len(d.Local.Bytes) > 0 || d.Local.DataURL != ""):
		return DocumentLocal
	}
	return DocumentEmpty
}

// Content returns the bytes to upload and their mime type. Captured payloads
// are decoded from their data URL; the data URL's media type wins over the
// declared one when present.
func (d Document) Content() ([]byte, string, error) {
	if d.Local == nil {
		return nil, "", ErrEmptyPayload
	}
	if len(d.Local.Bytes) > 0 {
		return d.Local.Bytes, d.MimeType, nil
	}
	if d.Local.DataURL == "" {
		return nil, "", ErrEmptyPayload
	}

	data, mediaType, err := DecodeDataURL(d.Local.DataURL)
	if err != nil {
		return nil, "", err
	}
	if mediaType == "" {
		mediaType = d.MimeType
	}
	return data, mediaType, nil
}

// WithRemoteRef returns a copy holding only the durable reference.
func (d Document) WithRemoteRef(ref string) Document {
	d.RemoteRef = ref
	d.Local = nil
	return d
}

// Documents is wizard step 9.
type Documents []Document

// Clone copies the list and every local payload.
func (ds Documents) Clone() Documents {
	out := make(Documents, len(ds))
	for i, d := range ds {
		if d.Local != nil {
			local := LocalPayload{
				Bytes:   append([]byte(nil), d.Local.Bytes...),
				DataURL: d.Local.DataURL,
			}
			d.Local = &local
		}
		out[i] = d
	}
	return out
}

// Pending counts documents that still hold a local payload.
func (ds Documents) Pending() int {
	n := 0
	for _, d := range ds {
		if d.State() == DocumentLocal {
			n++
		}
	}
	return n
}

// DecodeDataURL parses "data:<mediatype>;base64,<payload>".
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, "", ErrInvalidDataURL
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", ErrInvalidDataURL
	}

	mediaType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, "", fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURL)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	return data, mediaType, nil
}

// EncodeDataURL is the inverse of DecodeDataURL.
func EncodeDataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
