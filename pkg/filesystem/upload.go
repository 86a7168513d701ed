package filesystem

import (
	"context"
	"io"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/storage"
)

// UploadTask an incoming file to store
type UploadTask struct {
	ParentID *uint
	Name     string
	Size     uint64
	MIMEType string
	Source   io.Reader
}

// Upload stores the incoming content with the provider and records the
// resulting leaf node. The provider may rename the object to avoid a
// collision, so the stored attributes win over the requested ones.
func (fs *FileSystem) Upload(ctx context.Context, task *UploadTask) (*model.Node, error) {
	if !fs.ValidateLegalName(task.Name) {
		return nil, ErrIllegalObjectName
	}

	parent, err := fs.resolveFolder(task.ParentID)
	if err != nil {
		return nil, err
	}

	res, err := fs.Handler.Upload(ctx, &storage.UploadRequest{
		Source:     task.Source,
		Size:       task.Size,
		Folder:     fs.FolderStoragePath(parent),
		FileName:   task.Name,
		UniqueName: true,
		MIMEType:   task.MIMEType,
	})
	if err != nil {
		return nil, ErrStorageOperation.WithError(err)
	}

	node := model.Node{
		UID:          newUID(),
		Name:         res.Name,
		Path:         res.Path,
		Size:         res.Size,
		Type:         res.MIMEType,
		OwnerID:      fs.User.ID,
		ParentID:     task.ParentID,
		ObjectID:     res.ObjectID,
		ObjectURL:    res.URL,
		ThumbnailURL: res.ThumbnailURL,
	}
	if _, err := node.Create(); err != nil {
		return nil, ErrInsertNodeRecord.WithError(err)
	}

	fs.User.IncreaseStorage(res.Size)
	return &node, nil
}
