package qiniu

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/skybox-app/skybox/pkg/storage"

	qiniuclient "github.com/qiniu/go-sdk/v7/client"
	"github.com/qiniu/go-sdk/v7/auth/qbox"
	qiniustorage "github.com/qiniu/go-sdk/v7/storage"
	"github.com/samber/lo"
)

// statusNotFound qiniu's "no such file or directory" code
const statusNotFound = 612

// batchLimit qiniu caps batch operations at 1000 entries
const batchLimit = 1000

// Driver qiniu kodo adapter. Objects are addressed by bucket key; the
// key doubles as the object ID.
type Driver struct {
	Bucket string
	Domain string

	mac           *qbox.Mac
	bucketManager *qiniustorage.BucketManager
}

// NewDriver builds a qiniu adapter
func NewDriver(accessKey, secretKey, bucket, domain string) *Driver {
	mac := qbox.NewMac(accessKey, secretKey)
	cfg := qiniustorage.Config{
		UseHTTPS: true,
	}
	return &Driver{
		Bucket:        bucket,
		Domain:        domain,
		mac:           mac,
		bucketManager: qiniustorage.NewBucketManager(mac, &cfg),
	}
}

// Upload stores one object, fetching from the source URL when given
func (handler *Driver) Upload(ctx context.Context, req *storage.UploadRequest) (*storage.UploadResult, error) {
	name := req.FileName
	if req.UniqueName {
		name = storage.UniqueName(name)
	}
	key := storage.Key(req.Folder, name)

	if req.SourceURL != "" {
		// the provider fetches the content itself
		ret, err := handler.bucketManager.Fetch(req.SourceURL, handler.Bucket, key)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch object into %q: %w", key, err)
		}
		return handler.buildResult(ret.Key, uint64(ret.Fsize), ret.MimeType), nil
	}

	// direct form upload with an overwrite-scoped policy
	putPolicy := qiniustorage.PutPolicy{
		Scope:        fmt.Sprintf("%s:%s", handler.Bucket, key),
		SaveKey:      key,
		ForceSaveKey: true,
	}
	token := putPolicy.UploadToken(handler.mac)

	cfg := qiniustorage.Config{}
	formUploader := qiniustorage.NewFormUploader(&cfg)
	ret := qiniustorage.PutRet{}
	putExtra := qiniustorage.PutExtra{
		Params: map[string]string{},
	}

	err := formUploader.Put(ctx, &ret, token, key, req.Source, int64(req.Size), &putExtra)
	if err != nil {
		return nil, fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	return handler.buildResult(ret.Key, req.Size, req.MIMEType), nil
}

// Delete removes a single object
func (handler *Driver) Delete(ctx context.Context, objectID string) error {
	if err := handler.bucketManager.Delete(handler.Bucket, objectID); err != nil {
		return fmt.Errorf("failed to delete object %q: %w", objectID, err)
	}
	return nil
}

// BulkDelete removes objects in batches of up to 1000
func (handler *Driver) BulkDelete(ctx context.Context, objectIDs []string) ([]string, error) {
	failed := make([]string, 0)

	for _, chunk := range lo.Chunk(objectIDs, batchLimit) {
		deleteOps := make([]string, 0, len(chunk))
		for _, key := range chunk {
			deleteOps = append(deleteOps, qiniustorage.URIDelete(handler.Bucket, key))
		}

		rets, err := handler.bucketManager.Batch(deleteOps)
		if err != nil && len(rets) == 0 {
			return chunk, fmt.Errorf("batch delete failed: %w", err)
		}

		for k, ret := range rets {
			if ret.Code != 200 && ret.Code != statusNotFound {
				failed = append(failed, chunk[k])
			}
		}
	}

	if len(failed) > 0 {
		return failed, fmt.Errorf("failed to delete %d objects", len(failed))
	}
	return failed, nil
}

// DeleteFolder removes the folder placeholder object. Kodo has no real
// folders, so a missing placeholder means there is nothing to do.
func (handler *Driver) DeleteFolder(ctx context.Context, folderPath string) error {
	key := strings.TrimPrefix(strings.TrimSuffix(folderPath, "/"), "/") + "/"
	err := handler.bucketManager.Delete(handler.Bucket, key)
	if err != nil {
		if info, ok := err.(*qiniuclient.ErrorInfo); ok && info.Code == statusNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete folder %q: %w", folderPath, err)
	}
	return nil
}

// buildResult assembles the provider-authoritative upload attributes
func (handler *Driver) buildResult(key string, size uint64, mimeType string) *storage.UploadResult {
	url := qiniustorage.MakePublicURL(handler.Domain, key)
	return &storage.UploadResult{
		ObjectID:     key,
		Name:         path.Base(key),
		Path:         "/" + key,
		URL:          url,
		ThumbnailURL: url + "?imageView2/1/w/400/h/300",
		Size:         size,
		MIMEType:     mimeType,
	}
}
