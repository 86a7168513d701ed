package filesystem

import (
	"strings"

	model "github.com/skybox-app/skybox/models"
)

// NodePath derives a folder's materialized path: the parent's path with
// the folder's own UID appended, or just the UID at the root level
func NodePath(parent *model.Node, uid string) string {
	if parent == nil {
		return uid
	}
	return parent.Path + "/" + uid
}

// StorageRoot the user's private prefix on the object store
func (fs *FileSystem) StorageRoot() string {
	return "/" + fs.User.ExternalID
}

// FolderStoragePath maps a folder to its storage-side path. A nil
// folder means the user's root level.
func (fs *FileSystem) FolderStoragePath(folder *model.Node) string {
	if folder == nil {
		return fs.StorageRoot()
	}
	return fs.StorageRoot() + "/" + folder.Path
}

// LeafStoragePath the notional storage location of a leaf under the
// given folder. Objects are not physically moved with their folder, so
// this is a recorded location, not necessarily the provider key.
func (fs *FileSystem) LeafStoragePath(parent *model.Node, name string) string {
	return fs.FolderStoragePath(parent) + "/" + name
}

// IsSelfOrDescendant reports whether target is ancestor itself or sits
// anywhere inside ancestor's subtree, judged by materialized paths
func IsSelfOrDescendant(ancestor, target *model.Node) bool {
	if ancestor.Path == target.Path {
		return true
	}
	return strings.HasPrefix(target.Path, ancestor.Path+"/")
}
