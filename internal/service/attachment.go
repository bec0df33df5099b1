package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/storage"
)

// MaxAttachmentSize is the largest upload accepted for a comment attachment.
const MaxAttachmentSize = 10 << 20

// renderableTypes are the sniffed types served with their own Content-Type.
// Anything else, HTML and SVG included, is stored as application/octet-stream.
var renderableTypes = map[string]bool{
	"image/png":                 true,
	"image/jpeg":                true,
	"image/gif":                 true,
	"image/webp":                true,
	"application/pdf":           true,
	"text/plain; charset=utf-8": true,
}

var (
	ErrStorageDisabled    = errors.New("attachment storage is not configured")
	ErrAttachmentTooLarge = errors.New("attachment exceeds 10 MiB")
)

type AttachmentService interface {
	Upload(ctx context.Context, caller *model.User, filename, contentType string, size int64, r io.Reader) (string, error)
}

type attachmentService struct {
	objects storage.ObjectStore
	newKey  func() string
}

// NewAttachmentService accepts a nil store, in which case every upload fails with ErrStorageDisabled.
func NewAttachmentService(objects storage.ObjectStore) AttachmentService {
	return &attachmentService{
		objects: objects,
		newKey:  func() string { return uuid.New().String() },
	}
}

// AttachmentKey places an upload under the uploader's prefix, keeping only the extension of the original name.
func AttachmentKey(userID int64, name, filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	return fmt.Sprintf("comments/%d/%s%s", userID, name, ext)
}

// sniffContentType derives the stored type from the first bytes of the upload and
// returns a reader that still yields the whole body.
func sniffContentType(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !renderableTypes[contentType] {
		contentType = "application/octet-stream"
	}
	return contentType, io.MultiReader(bytes.NewReader(head), r), nil
}

// Upload ignores the client's declared type; the stored type comes from sniffing the body.
func (s *attachmentService) Upload(ctx context.Context, caller *model.User, filename, declaredType string, size int64, r io.Reader) (string, error) {
	if s.objects == nil {
		return "", ErrStorageDisabled
	}
	if size <= 0 {
		return "", invalid("File is empty")
	}
	if size > MaxAttachmentSize {
		return "", ErrAttachmentTooLarge
	}
	contentType, body, err := sniffContentType(r)
	if err != nil {
		return "", fmt.Errorf("reading attachment: %w", err)
	}

	key := AttachmentKey(caller.ID, s.newKey(), filename)
	url, err := s.objects.Put(ctx, key, body, size, contentType)
	if err != nil {
		slog.ErrorContext(ctx, "failed to store attachment", "error", err, "key", key)
		return "", fmt.Errorf("storing attachment: %w", err)
	}

	slog.InfoContext(ctx, "attachment stored",
		"key", key,
		"size", size,
		"content_type", contentType,
		"declared_type", declaredType,
	)
	return url, nil
}
