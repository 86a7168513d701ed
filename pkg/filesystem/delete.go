package filesystem

import (
	"context"

	"github.com/samber/lo"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/util"
)

// DeleteResult outcome of a bulk delete. NotFound lists requested IDs
// that failed the owner-scoped lookup and were skipped. FreedSize is
// the storage returned to the owner's counter.
type DeleteResult struct {
	DeletedIDs       []uint
	DeletedObjectIDs []string
	NotFound         []uint
	FreedSize        uint64
}

// Delete removes the given nodes and, for folders, their whole
// subtrees. Backing objects are removed from the store first, then
// storage-side folders deepest first, and the database records last so
// a failed provider call never leaves orphaned objects behind
// untracked records.
func (fs *FileSystem) Delete(ctx context.Context, ids []uint) (*DeleteResult, error) {
	roots, err := model.GetNodesByIDs(ids, fs.User.ID)
	if err != nil {
		return nil, ErrDBListObjects.WithError(err)
	}

	found := make(map[uint]bool, len(roots))
	for i := range roots {
		found[roots[i].ID] = true
	}

	result := &DeleteResult{}
	for _, id := range ids {
		if !found[id] {
			result.NotFound = append(result.NotFound, id)
		}
	}
	if len(roots) == 0 {
		return result, ErrObjectNotExist
	}

	var (
		recordIDs   []uint
		objectIDs   []string
		folderPaths []string
	)
	sizes := make(map[uint]uint64)
	for i := range roots {
		root := &roots[i]
		recordIDs = append(recordIDs, root.ID)
		if !root.IsFolder {
			sizes[root.ID] = root.Size
			if root.ObjectID != "" {
				objectIDs = append(objectIDs, root.ObjectID)
			}
			continue
		}

		folderPaths = append(folderPaths, fs.FolderStoragePath(root))
		subtree, err := fs.ResolveSubtree(ctx, root.ID)
		if err != nil {
			return nil, err
		}
		recordIDs = append(recordIDs, subtree.RecordIDs...)
		objectIDs = append(objectIDs, subtree.ObjectIDs...)
		folderPaths = append(folderPaths, subtree.FolderPaths...)
		for id, size := range subtree.Sizes {
			sizes[id] = size
		}
	}

	// requested roots may be nested in each other, collapse overlaps.
	// Leaf sizes are keyed by record so an overlap never frees twice.
	recordIDs = lo.Uniq(recordIDs)
	objectIDs = lo.Uniq(objectIDs)
	folderPaths = lo.Uniq(folderPaths)

	var freed uint64
	for _, size := range sizes {
		freed += size
	}

	if len(objectIDs) > 0 {
		if _, err := fs.Handler.BulkDelete(ctx, objectIDs); err != nil {
			return nil, ErrStorageOperation.WithError(err)
		}
	}

	// deepest first, so a folder is never removed before its children
	for i := len(folderPaths) - 1; i >= 0; i-- {
		if err := fs.Handler.DeleteFolder(ctx, folderPaths[i]); err != nil {
			util.Log().Warning("Failed to delete storage folder %q: %s", folderPaths[i], err)
		}
	}

	if err := model.DeleteNodesByIDs(recordIDs); err != nil {
		return nil, ErrDBDeleteObjects.WithError(err)
	}

	fs.User.DeductionStorage(freed)
	result.DeletedIDs = recordIDs
	result.DeletedObjectIDs = objectIDs
	result.FreedSize = freed
	return result, nil
}
