package model

import (
	"path"
	"time"

	"github.com/skybox-app/skybox/pkg/util"

	"github.com/jinzhu/gorm"
)

// Node a single file or folder record of the hierarchy. Folders carry a
// materialized path of ancestor UIDs; files carry the storage path reported
// by the object-storage provider.
type Node struct {
	gorm.Model
	UID      string `gorm:"type:varchar(64);unique_index:uid"`
	Name     string `gorm:"unique_index:idx_only_one_name"`
	Path     string `gorm:"size:65535"`
	Size     uint64
	Type     string
	OwnerID  uint  `gorm:"index:owner_id;unique_index:idx_only_one_name"`
	ParentID *uint `gorm:"index:parent_id;unique_index:idx_only_one_name"`
	IsFolder bool

	IsStarred bool
	IsTrash   bool

	// object-storage references, empty for folders
	ObjectID     string
	ObjectURL    string
	ThumbnailURL string

	LastAccessedAt *time.Time
}

// Create inserts the node record
func (node *Node) Create() (uint, error) {
	if err := DB.Create(node).Error; err != nil {
		util.Log().Warning("Failed to insert node record: %s", err)
		return 0, err
	}
	return node.ID, nil
}

// GetNodeByID finds a node by ID, scoped to the owner
func GetNodeByID(id uint, uid uint) (Node, error) {
	var node Node
	result := DB.Where("id = ? AND owner_id = ?", id, uid).First(&node)
	return node, result.Error
}

// GetNodesByIDs finds nodes by ID set, scoped to the owner
func GetNodesByIDs(ids []uint, uid uint) ([]Node, error) {
	var nodes []Node
	result := DB.Where("id in (?) AND owner_id = ?", ids, uid).Find(&nodes)
	return nodes, result.Error
}

// GetChildNodes lists direct children of a folder; a nil parent lists the
// owner's root level
func GetChildNodes(parentID *uint, uid uint) ([]Node, error) {
	var nodes []Node
	var result *gorm.DB
	if parentID == nil {
		result = DB.Where("parent_id is NULL AND owner_id = ?", uid).Find(&nodes)
	} else {
		result = DB.Where("parent_id = ? AND owner_id = ?", *parentID, uid).Find(&nodes)
	}
	return nodes, result.Error
}

// GetChildNodeByName finds the direct child with the given name, used for
// duplicate-name pre-checks
func GetChildNodeByName(parentID *uint, uid uint, name string) (Node, error) {
	var node Node
	var result *gorm.DB
	if parentID == nil {
		result = DB.Where("parent_id is NULL AND owner_id = ? AND name = ?", uid, name).First(&node)
	} else {
		result = DB.Where("parent_id = ? AND owner_id = ? AND name = ?", *parentID, uid, name).First(&node)
	}
	return node, result.Error
}

// GetTrashNodes lists the owner's trashed nodes
func GetTrashNodes(uid uint) ([]Node, error) {
	var nodes []Node
	result := DB.Where("owner_id = ? AND is_trash = ?", uid, true).Find(&nodes)
	return nodes, result.Error
}

// GetStarredNodes lists the owner's starred nodes, trash excluded
func GetStarredNodes(uid uint) ([]Node, error) {
	var nodes []Node
	result := DB.Where("owner_id = ? AND is_starred = ? AND is_trash = ?", uid, true, false).Find(&nodes)
	return nodes, result.Error
}

// GetRecursiveChildNodes lists every descendant of the given folders,
// level by level over parent_id edges. Results come parents before
// children. The visited set guards against a corrupted tree with an
// accidental cycle, which the schema forbids but a bug could produce.
func GetRecursiveChildNodes(dirs []uint, uid uint, includeSelf bool) ([]Node, error) {
	nodes := make([]Node, 0, len(dirs))

	var parents []Node
	result := DB.Where("owner_id = ? and is_folder = ? and id in (?)", uid, true, dirs).Find(&parents)
	if result.Error != nil {
		return nodes, result.Error
	}

	if includeSelf {
		nodes = append(nodes, parents...)
	}

	visited := make(map[uint]bool, len(parents))
	parentIDs := make([]uint, 0, len(parents))
	for _, node := range parents {
		visited[node.ID] = true
		parentIDs = append(parentIDs, node.ID)
	}

	for i := 0; i < 65535; i++ {
		if len(parentIDs) == 0 {
			break
		}

		var children []Node
		result = DB.Where("owner_id = ? and parent_id in (?)", uid, parentIDs).Find(&children)
		if result.Error != nil {
			return nodes, result.Error
		}
		if len(children) == 0 {
			break
		}

		parentIDs = make([]uint, 0, len(children))
		for _, child := range children {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			nodes = append(nodes, child)
			if child.IsFolder {
				parentIDs = append(parentIDs, child.ID)
			}
		}
	}

	return nodes, nil
}

// DeleteNodesByIDs removes node records by ID set in one statement
func DeleteNodesByIDs(ids []uint) error {
	result := DB.Where("id in (?)", ids).Unscoped().Delete(&Node{})
	return result.Error
}

// Rename updates the display name. For files the path tail follows the
// name; folder paths are UID chains and stay untouched.
func (node *Node) Rename(newName string) error {
	updates := map[string]interface{}{"name": newName}
	if !node.IsFolder && node.Path != "" {
		updates["path"] = path.Join(path.Dir(node.Path), newName)
	}
	if err := DB.Model(node).Updates(updates).Error; err != nil {
		return err
	}
	return nil
}

// SetStarred flips the starred flag
func (node *Node) SetStarred(starred bool) error {
	return DB.Model(node).Update("is_starred", starred).Error
}

// SetTrash flips the trash flag; trash is a soft-delete marker, the
// record and its backing object stay alive
func (node *Node) SetTrash(trash bool) error {
	return DB.Model(node).Update("is_trash", trash).Error
}

// Touch records a preview-open event
func (node *Node) Touch() error {
	now := time.Now()
	node.LastAccessedAt = &now
	return DB.Model(node).Update("last_accessed_at", now).Error
}
