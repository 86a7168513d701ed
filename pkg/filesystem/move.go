package filesystem

import (
	"context"

	"github.com/jinzhu/gorm"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/storage"
)

// Move re-homes a node under the destination folder, nil meaning the
// root level. A leaf's backing object is copied to the new storage
// location and the old one removed before any record changes; a
// folder move touches no storage objects. The record updates for the
// node and, for folders, the path rewrite of its whole subtree commit
// in one transaction.
func (fs *FileSystem) Move(ctx context.Context, srcID uint, dstID *uint) (*model.Node, error) {
	src, err := model.GetNodeByID(srcID, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist.WithError(err)
	}

	if dstID != nil && *dstID == src.ID {
		return nil, ErrCyclicMove
	}
	if sameParent(src.ParentID, dstID) {
		return &src, nil
	}

	dstFolder, err := fs.resolveFolder(dstID)
	if err != nil {
		return nil, err
	}
	if src.IsFolder && dstFolder != nil && IsSelfOrDescendant(&src, dstFolder) {
		return nil, ErrCyclicMove
	}
	if existing, err := model.GetChildNodeByName(dstID, fs.User.ID, src.Name); err == nil && existing.ID != src.ID {
		if src.IsFolder {
			return nil, ErrFolderExisted
		}
		return nil, ErrFileExisted
	}

	updates := map[string]interface{}{"parent_id": nil}
	if dstID != nil {
		updates["parent_id"] = *dstID
	}

	if src.IsFolder {
		updates["path"] = NodePath(dstFolder, src.UID)
	} else if src.ObjectID != "" {
		// relocate the object first, the records only change once the
		// store holds the content at its new home
		res, err := fs.Handler.Upload(ctx, &storage.UploadRequest{
			SourceURL: src.ObjectURL,
			Folder:    fs.FolderStoragePath(dstFolder),
			FileName:  src.Name,
			MIMEType:  src.Type,
		})
		if err != nil {
			return nil, ErrStorageOperation.WithError(err)
		}
		if err := fs.Handler.Delete(ctx, src.ObjectID); err != nil {
			return nil, ErrStorageOperation.WithError(err)
		}

		updates["path"] = res.Path
		updates["object_id"] = res.ObjectID
		updates["object_url"] = res.URL
		updates["thumbnail_url"] = res.ThumbnailURL
		src.ObjectID = res.ObjectID
		src.ObjectURL = res.URL
		src.ThumbnailURL = res.ThumbnailURL
	} else {
		updates["path"] = fs.LeafStoragePath(dstFolder, src.Name)
	}

	tx := model.DB.Begin()
	if tx.Error != nil {
		return nil, ErrTransaction.WithError(tx.Error)
	}
	if err := tx.Model(&model.Node{}).Where("id = ?", src.ID).
		Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, ErrTransaction.WithError(err)
	}
	if src.IsFolder {
		if err := fs.cascadePaths(tx, src.ID, updates["path"].(string)); err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, ErrTransaction.WithError(err)
	}

	src.ParentID = dstID
	src.Path = updates["path"].(string)
	return &src, nil
}

// cascadePaths rewrites the materialized path of every descendant after
// a folder took a new path. Must run inside the caller's transaction.
func (fs *FileSystem) cascadePaths(tx *gorm.DB, rootID uint, rootPath string) error {
	parents := map[uint]string{rootID: rootPath}
	visited := map[uint]bool{rootID: true}

	// bounded in case of corrupted parent links
	for i := 0; i < 65535 && len(parents) > 0; i++ {
		ids := make([]uint, 0, len(parents))
		for id := range parents {
			ids = append(ids, id)
		}

		var children []model.Node
		if err := tx.Where("parent_id in (?) AND owner_id = ?", ids, fs.User.ID).
			Find(&children).Error; err != nil {
			return ErrDBListObjects.WithError(err)
		}

		next := make(map[uint]string)
		for i := range children {
			child := &children[i]
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true

			parentPath := parents[*child.ParentID]
			var childPath string
			if child.IsFolder {
				childPath = parentPath + "/" + child.UID
				next[child.ID] = childPath
			} else {
				// objects stay put, only the recorded location follows
				// the folder
				childPath = fs.StorageRoot() + "/" + parentPath + "/" + child.Name
			}

			if err := tx.Model(&model.Node{}).Where("id = ?", child.ID).
				Update("path", childPath).Error; err != nil {
				return ErrTransaction.WithError(err)
			}
		}
		parents = next
	}

	return nil
}

func sameParent(current *uint, target *uint) bool {
	if current == nil || target == nil {
		return current == nil && target == nil
	}
	return *current == *target
}
