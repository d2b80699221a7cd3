package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Category identifies what kind of file is being ingested. Each
// category has its own size limit and MIME allow-list.
type Category string

const (
	CategoryCV   Category = "cv"
	CategoryLogo Category = "logo"
)

const (
	maxCVSize   = 5 << 20 // 5MB
	maxLogoSize = 2 << 20 // 2MB
)

var cvMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var logoMIMETypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// IngestError is a classified rejection of an upload. Handlers map it
// onto a 400 response.
type IngestError struct {
	Reason  string // "too_large" or "unsupported_type"
	Message string
}

const (
	ReasonTooLarge        = "too_large"
	ReasonUnsupportedType = "unsupported_type"
)

func (e *IngestError) Error() string {
	return e.Message
}

// IngestResult is the public reference to an accepted upload
type IngestResult struct {
	URL      string
	PublicID string
}

// Uploader is the media-host surface the ingestor needs. Satisfied by
// *MediaClient.
type Uploader interface {
	Upload(ctx context.Context, objectName, contentType string, content []byte) (string, error)
}

// Ingestor validates uploads and forwards accepted files to the media
// host.
type Ingestor struct {
	uploader Uploader
}

// NewIngestor creates an ingestor backed by the given media host
func NewIngestor(uploader Uploader) *Ingestor {
	return &Ingestor{uploader: uploader}
}

// Ingest validates the file and, on acceptance, uploads it under a
// namespaced object name. No retry: a single upload failure surfaces
// to the caller.
func (i *Ingestor) Ingest(ctx context.Context, category Category, filename, mimeType string, content []byte) (*IngestResult, error) {
	if err := ValidateUpload(category, mimeType, int64(len(content))); err != nil {
		return nil, err
	}

	objectName := ObjectName(category, filename)
	url, err := i.uploader.Upload(ctx, objectName, mimeType, content)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	return &IngestResult{URL: url, PublicID: objectName}, nil
}

// ValidateUpload checks the declared MIME type and size against the
// category's limits. Returns a classified *IngestError on rejection.
func ValidateUpload(category Category, mimeType string, size int64) error {
	switch category {
	case CategoryCV:
		if size > maxCVSize {
			return &IngestError{Reason: ReasonTooLarge, Message: "File is too large. Max 5MB."}
		}
		if !cvMIMETypes[mimeType] {
			return &IngestError{Reason: ReasonUnsupportedType, Message: "Invalid file type. Only PDF, DOC, and DOCX files are allowed."}
		}
	case CategoryLogo:
		if size > maxLogoSize {
			return &IngestError{Reason: ReasonTooLarge, Message: "File is too large. Max 2MB."}
		}
		if !logoMIMETypes[mimeType] {
			return &IngestError{Reason: ReasonUnsupportedType, Message: "Invalid file type. Only JPEG, PNG, WEBP, and SVG files are allowed."}
		}
	default:
		return fmt.Errorf("unknown upload category %q", category)
	}
	return nil
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// ObjectName builds the namespaced object name for an upload: the
// sanitized original filename with a timestamp suffix for uniqueness.
func ObjectName(category Category, filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	name = unsafeNameChars.ReplaceAllString(name, "_")
	if name == "" {
		name = "upload"
	}

	return fmt.Sprintf("%ss/%s_%d%s", category, name, time.Now().Unix(), ext)
}
