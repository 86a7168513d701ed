package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/skybox-app/skybox/pkg/util"
)

// UploadRequest describes a single object upload. Content comes either
// from Source or, when SourceURL is set, is fetched by the provider (or
// driver) from that URL.
type UploadRequest struct {
	Source    io.Reader
	Size      uint64
	SourceURL string

	// Folder destination storage folder path
	Folder string
	// FileName desired object name
	FileName string
	// UniqueName requests a collision-safe generated name
	UniqueName bool
	MIMEType   string
}

// UploadResult authoritative attributes of the stored object, as reported
// by the provider
type UploadResult struct {
	ObjectID     string
	Name         string
	Path         string
	URL          string
	ThumbnailURL string
	Size         uint64
	MIMEType     string
}

// Handler object-storage provider adapter. Implementations must keep
// DeleteFolder idempotent: a missing folder is not an error.
type Handler interface {
	// Upload stores one object and returns its authoritative attributes
	Upload(ctx context.Context, req *UploadRequest) (*UploadResult, error)

	// Delete removes a single object
	Delete(ctx context.Context, objectID string) error

	// BulkDelete removes a set of objects in as few calls as possible,
	// returning the IDs the provider failed to remove
	BulkDelete(ctx context.Context, objectIDs []string) ([]string, error)

	// DeleteFolder removes a storage-side folder grouping
	DeleteFolder(ctx context.Context, folderPath string) error
}

// UniqueName derives a collision-safe object name by injecting a random
// tag before the extension
func UniqueName(name string) string {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%s%s", base, util.RandStringRunes(8), ext)
}

// Key joins a folder path and object name into a provider key without a
// leading slash
func Key(folder, name string) string {
	return strings.TrimPrefix(path.Join(folder, name), "/")
}
