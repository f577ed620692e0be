// Package document stores uploaded files under a local storage directory
// and hands out download URLs for them.
package document

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// MaxSize is the upload size cap.
const MaxSize = 10 << 20

var (
	ErrTooLarge        = errors.New("file exceeds the 10 MB limit")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrEmptyPath       = errors.New("path must not be empty")
)

// allowedTypes are the MIME types accepted for upload: images, PDFs and
// Word documents.
var allowedTypes = map[string]struct{}{
	"image/jpeg":         {},
	"image/png":          {},
	"image/gif":          {},
	"image/svg+xml":      {},
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// Service writes uploads to dir and serves them under baseURL.
type Service struct {
	dir     string
	baseURL string
}

// NewService creates a document service rooted at dir.
func NewService(dir, baseURL string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	return &Service{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload validates and stores data under the given relative path and
// returns the download URL. contentType is the declared MIME type; when
// empty it is sniffed from the data. Path separators namespace uploads
// per tenant.
func (s *Service) Upload(data []byte, relPath, contentType string) (string, error) {
	relPath = sanitize(relPath)
	if relPath == "" {
		return "", ErrEmptyPath
	}

	if len(data) > MaxSize {
		return "", ErrTooLarge
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	if _, ok := allowedTypes[normalizeType(contentType)]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	full := filepath.Join(s.dir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}

	return s.URL(relPath), nil
}

// URL returns the download URL for a stored path.
func (s *Service) URL(relPath string) string {
	return s.baseURL + "/" + sanitize(relPath)
}

// Delete removes a stored file. Deleting a missing file is not an error.
func (s *Service) Delete(relPath string) error {
	relPath = sanitize(relPath)
	if relPath == "" {
		return ErrEmptyPath
	}

	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(relPath)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing upload: %w", err)
	}

	return nil
}

// Dir returns the storage root, for mounting a file server over it.
func (s *Service) Dir() string {
	return s.dir
}

// sanitize collapses the path and strips any traversal outside the root.
func sanitize(relPath string) string {
	relPath = path.Clean("/" + strings.ReplaceAll(relPath, "\\", "/"))

	return strings.TrimPrefix(relPath, "/")
}

// normalizeType strips parameters such as charset from a MIME type.
func normalizeType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")

	return strings.TrimSpace(strings.ToLower(mediaType))
}

// FileType maps a MIME type to the coarse label stored on tenant documents.
func FileType(contentType string) string {
	switch normalizeType(contentType) {
	case "application/pdf":
		return "pdf"
	case "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "document"
	default:
		return "image"
	}
}
