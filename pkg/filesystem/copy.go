package filesystem

import (
	"context"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/storage"
)

// Copy duplicates a leaf into the destination folder, nil meaning the
// root level. The store materializes the new object from the source
// object's URL and is authoritative for the copy's attributes. The
// source node is never touched.
func (fs *FileSystem) Copy(ctx context.Context, srcID uint, dstID *uint) (*model.Node, error) {
	src, err := model.GetNodeByID(srcID, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist.WithError(err)
	}
	if src.IsFolder {
		return nil, ErrFolderCopyUnsupported
	}
	if src.ObjectURL == "" {
		return nil, ErrNoBackingObject
	}

	dstFolder, err := fs.resolveFolder(dstID)
	if err != nil {
		return nil, err
	}

	res, err := fs.Handler.Upload(ctx, &storage.UploadRequest{
		SourceURL:  src.ObjectURL,
		Folder:     fs.FolderStoragePath(dstFolder),
		FileName:   src.Name,
		UniqueName: true,
		MIMEType:   src.Type,
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
		ParentID:     dstID,
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

// resolveFolder loads the destination folder, nil meaning the root
// level
func (fs *FileSystem) resolveFolder(id *uint) (*model.Node, error) {
	if id == nil {
		return nil, nil
	}

	folder, err := model.GetNodeByID(*id, fs.User.ID)
	if err != nil || !folder.IsFolder {
		return nil, ErrParentNotExist
	}
	return &folder, nil
}
