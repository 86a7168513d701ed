package filesystem

import (
	"context"

	"github.com/samber/lo"

	model "github.com/skybox-app/skybox/models"
)

// CreateFolder creates an empty folder under the given parent, nil
// meaning the root level
func (fs *FileSystem) CreateFolder(ctx context.Context, parentID *uint, name string) (*model.Node, error) {
	if !fs.ValidateLegalName(name) {
		return nil, ErrIllegalObjectName
	}

	parent, err := fs.resolveFolder(parentID)
	if err != nil {
		return nil, err
	}

	if _, err := model.GetChildNodeByName(parentID, fs.User.ID, name); err == nil {
		return nil, ErrFolderExisted
	}

	uid := newUID()
	folder := model.Node{
		UID:      uid,
		Name:     name,
		Path:     NodePath(parent, uid),
		OwnerID:  fs.User.ID,
		ParentID: parentID,
		IsFolder: true,
	}
	if _, err := folder.Create(); err != nil {
		return nil, ErrFolderExisted.WithError(err)
	}

	return &folder, nil
}

// List returns the direct children of the given folder, trashed nodes
// excluded
func (fs *FileSystem) List(ctx context.Context, parentID *uint) ([]model.Node, error) {
	if parentID != nil {
		if _, err := fs.resolveFolder(parentID); err != nil {
			return nil, err
		}
	}

	nodes, err := model.GetChildNodes(parentID, fs.User.ID)
	if err != nil {
		return nil, ErrDBListObjects.WithError(err)
	}

	return lo.Filter(nodes, func(node model.Node, _ int) bool {
		return !node.IsTrash
	}), nil
}

// ListTrash returns the user's trashed nodes
func (fs *FileSystem) ListTrash(ctx context.Context) ([]model.Node, error) {
	nodes, err := model.GetTrashNodes(fs.User.ID)
	if err != nil {
		return nil, ErrDBListObjects.WithError(err)
	}
	return nodes, nil
}

// ListStarred returns the user's starred nodes
func (fs *FileSystem) ListStarred(ctx context.Context) ([]model.Node, error) {
	nodes, err := model.GetStarredNodes(fs.User.ID)
	if err != nil {
		return nil, ErrDBListObjects.WithError(err)
	}
	return nodes, nil
}

// Rename gives the node a new name. A leaf keeps its storage object,
// only the recorded location tail changes.
func (fs *FileSystem) Rename(ctx context.Context, id uint, newName string) (*model.Node, error) {
	if !fs.ValidateLegalName(newName) {
		return nil, ErrIllegalObjectName
	}

	node, err := model.GetNodeByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist.WithError(err)
	}

	if err := node.Rename(newName); err != nil {
		return nil, ErrFileExisted.WithError(err)
	}
	return &node, nil
}

// SetStarred flips the node's starred flag
func (fs *FileSystem) SetStarred(ctx context.Context, id uint, starred bool) error {
	node, err := model.GetNodeByID(id, fs.User.ID)
	if err != nil {
		return ErrObjectNotExist.WithError(err)
	}
	if err := node.SetStarred(starred); err != nil {
		return ErrDBListObjects.WithError(err)
	}
	return nil
}

// Trash marks the node as trashed. The record and its storage object
// survive until the trash is emptied with Delete.
func (fs *FileSystem) Trash(ctx context.Context, id uint) error {
	return fs.setTrash(id, true)
}

// Restore brings a trashed node back
func (fs *FileSystem) Restore(ctx context.Context, id uint) error {
	return fs.setTrash(id, false)
}

func (fs *FileSystem) setTrash(id uint, trash bool) error {
	node, err := model.GetNodeByID(id, fs.User.ID)
	if err != nil {
		return ErrObjectNotExist.WithError(err)
	}
	if err := node.SetTrash(trash); err != nil {
		return ErrDBListObjects.WithError(err)
	}
	return nil
}

// Touch records an access to the node and returns it, used when the
// content is viewed
func (fs *FileSystem) Touch(ctx context.Context, id uint) (*model.Node, error) {
	node, err := model.GetNodeByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist.WithError(err)
	}
	if err := node.Touch(); err != nil {
		return nil, ErrDBListObjects.WithError(err)
	}
	return &node, nil
}
