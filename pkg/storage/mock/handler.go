package mock

import (
	"context"
	"fmt"
	"io/ioutil"
	"sync"

	"github.com/skybox-app/skybox/pkg/request"
	"github.com/skybox-app/skybox/pkg/storage"
)

// Driver keeps objects in process memory. Meant for local development
// and tests, not durable storage.
type Driver struct {
	Domain string

	mu      sync.RWMutex
	objects map[string][]byte
	client  request.Client
}

func NewDriver(domain string) *Driver {
	return &Driver{
		Domain:  domain,
		objects: make(map[string][]byte),
		client:  request.GeneralClient,
	}
}

func (handler *Driver) Upload(ctx context.Context, req *storage.UploadRequest) (*storage.UploadResult, error) {
	name := req.FileName
	if req.UniqueName {
		name = storage.UniqueName(name)
	}
	key := storage.Key(req.Folder, name)

	var (
		content []byte
		err     error
	)
	if req.SourceURL != "" {
		content, err = handler.fetch(ctx, req.SourceURL)
	} else {
		content, err = ioutil.ReadAll(req.Source)
	}
	if err != nil {
		return nil, err
	}

	handler.mu.Lock()
	handler.objects[key] = content
	handler.mu.Unlock()

	return &storage.UploadResult{
		ObjectID:     key,
		Name:         name,
		Path:         key,
		URL:          handler.Domain + "/" + key,
		ThumbnailURL: handler.Domain + "/" + key,
		Size:         uint64(len(content)),
		MIMEType:     req.MIMEType,
	}, nil
}

func (handler *Driver) Delete(ctx context.Context, objectID string) error {
	handler.mu.Lock()
	defer handler.mu.Unlock()

	if _, ok := handler.objects[objectID]; !ok {
		return fmt.Errorf("object %q not found", objectID)
	}
	delete(handler.objects, objectID)
	return nil
}

func (handler *Driver) BulkDelete(ctx context.Context, objectIDs []string) ([]string, error) {
	handler.mu.Lock()
	defer handler.mu.Unlock()

	for _, id := range objectIDs {
		delete(handler.objects, id)
	}
	return nil, nil
}

// DeleteFolder is a no-op, memory objects carry no folder placeholders
func (handler *Driver) DeleteFolder(ctx context.Context, folderPath string) error {
	return nil
}

func (handler *Driver) fetch(ctx context.Context, url string) ([]byte, error) {
	body, err := handler.client.Request("GET", url, nil, request.WithContext(ctx)).
		CheckHTTPResponse(200).GetBody()
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ioutil.ReadAll(body)
}
