package filesystem

import (
	"context"

	model "github.com/skybox-app/skybox/models"
)

// Subtree everything reachable from a folder, as discovered level by
// level with parents before children
type Subtree struct {
	// RecordIDs database IDs of every descendant node
	RecordIDs []uint
	// ObjectIDs storage object IDs backing descendant leaves
	ObjectIDs []string
	// FolderPaths storage-side paths of descendant folders, in
	// discovery order
	FolderPaths []string
	// Sizes bytes held by each descendant leaf, keyed by record ID
	Sizes map[uint]uint64
	// TotalSize bytes held by descendant leaves
	TotalSize uint64
}

// ResolveSubtree collects the descendants of a folder owned by the
// filesystem's user. The folder itself is not included.
func (fs *FileSystem) ResolveSubtree(ctx context.Context, folderID uint) (*Subtree, error) {
	nodes, err := model.GetRecursiveChildNodes([]uint{folderID}, fs.User.ID, false)
	if err != nil {
		return nil, ErrDBListObjects.WithError(err)
	}

	subtree := &Subtree{Sizes: make(map[uint]uint64)}
	for i := range nodes {
		node := &nodes[i]
		subtree.RecordIDs = append(subtree.RecordIDs, node.ID)
		if node.IsFolder {
			subtree.FolderPaths = append(subtree.FolderPaths, fs.FolderStoragePath(node))
			continue
		}

		subtree.Sizes[node.ID] = node.Size
		subtree.TotalSize += node.Size
		if node.ObjectID != "" {
			subtree.ObjectIDs = append(subtree.ObjectIDs, node.ObjectID)
		}
	}

	return subtree, nil
}
