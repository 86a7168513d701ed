package s3

import (
	"context"
	"fmt"
	"strings"

	"github.com/skybox-app/skybox/pkg/request"
	"github.com/skybox-app/skybox/pkg/storage"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/samber/lo"
)

// batchLimit DeleteObjects caps at 1000 keys per call
const batchLimit = 1000

// Driver S3-compatible adapter. Keys double as object IDs; the driver
// fetches source-URL uploads itself since S3 has no server-side fetch.
type Driver struct {
	Bucket    string
	CDNDomain string

	sess   *session.Session
	svc    *s3.S3
	client request.Client
}

// NewDriver builds an S3 adapter
func NewDriver(accessKey, secretKey, bucket, endpoint, region, cdnDomain string) (*Driver, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         &endpoint,
		Region:           &region,
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	return &Driver{
		Bucket:    bucket,
		CDNDomain: cdnDomain,
		sess:      sess,
		svc:       s3.New(sess),
		client:    request.GeneralClient,
	}, nil
}

// Upload stores one object
func (handler *Driver) Upload(ctx context.Context, req *storage.UploadRequest) (*storage.UploadResult, error) {
	name := req.FileName
	if req.UniqueName {
		name = storage.UniqueName(name)
	}
	key := storage.Key(req.Folder, name)

	body := req.Source
	size := req.Size
	if req.SourceURL != "" {
		// S3 cannot fetch remote content itself, stream it through
		resp := handler.client.Request("GET", req.SourceURL, nil, request.WithContext(ctx)).
			CheckHTTPResponse(200)
		stream, err := resp.GetBody()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch source object: %w", err)
		}
		defer stream.Close()
		body = stream
		if resp.Response.ContentLength > 0 {
			size = uint64(resp.Response.ContentLength)
		}
	}

	uploader := s3manager.NewUploader(handler.sess)
	input := &s3manager.UploadInput{
		Bucket: &handler.Bucket,
		Key:    &key,
		Body:   body,
	}
	if req.MIMEType != "" {
		input.ContentType = &req.MIMEType
	}

	if _, err := uploader.UploadWithContext(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	return handler.buildResult(key, size, req.MIMEType), nil
}

// Delete removes a single object
func (handler *Driver) Delete(ctx context.Context, objectID string) error {
	_, err := handler.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: &handler.Bucket,
		Key:    &objectID,
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil
		}
		return fmt.Errorf("failed to delete object %q: %w", objectID, err)
	}
	return nil
}

// BulkDelete removes objects in batches of up to 1000
func (handler *Driver) BulkDelete(ctx context.Context, objectIDs []string) ([]string, error) {
	failed := make([]string, 0)

	for _, chunk := range lo.Chunk(objectIDs, batchLimit) {
		keys := make([]*s3.ObjectIdentifier, 0, len(chunk))
		for _, id := range chunk {
			objectID := id
			keys = append(keys, &s3.ObjectIdentifier{Key: &objectID})
		}

		res, err := handler.svc.DeleteObjectsWithContext(ctx, &s3.DeleteObjectsInput{
			Bucket: &handler.Bucket,
			Delete: &s3.Delete{
				Objects: keys,
			},
		})
		if err != nil {
			return chunk, fmt.Errorf("batch delete failed: %w", err)
		}

		deleted := make([]string, 0, len(res.Deleted))
		for _, deleteRes := range res.Deleted {
			deleted = append(deleted, *deleteRes.Key)
		}
		for _, id := range chunk {
			if !lo.Contains(deleted, id) {
				failed = append(failed, id)
			}
		}
	}

	if len(failed) > 0 {
		return failed, fmt.Errorf("failed to delete %d objects", len(failed))
	}
	return failed, nil
}

// DeleteFolder removes the folder marker object. Deleting a missing key
// is a no-op on S3, so this is naturally idempotent.
func (handler *Driver) DeleteFolder(ctx context.Context, folderPath string) error {
	key := strings.TrimPrefix(strings.TrimSuffix(folderPath, "/"), "/") + "/"
	return handler.Delete(ctx, key)
}

// buildResult assembles the provider-authoritative upload attributes
func (handler *Driver) buildResult(key string, size uint64, mimeType string) *storage.UploadResult {
	url := fmt.Sprintf("%s/%s", strings.TrimSuffix(handler.CDNDomain, "/"), key)
	return &storage.UploadResult{
		ObjectID: key,
		Name:     key[strings.LastIndex(key, "/")+1:],
		Path:     "/" + key,
		URL:      url,
		// thumbnails are produced by the CDN layer in front of the bucket
		ThumbnailURL: url,
		Size:         size,
		MIMEType:     mimeType,
	}
}
