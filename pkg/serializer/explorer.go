package serializer

import (
	"time"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/hashid"
)

// Object API view of a node
type Object struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Size         uint64     `json:"size"`
	Type         string     `json:"type"`
	IsFolder     bool       `json:"is_folder"`
	IsStarred    bool       `json:"is_starred"`
	IsTrash      bool       `json:"is_trash"`
	URL          string     `json:"url,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	AccessedAt   *time.Time `json:"accessed_at,omitempty"`
}

// BuildObject maps a node into its API view, the numeric ID obfuscated
func BuildObject(node *model.Node) Object {
	return Object{
		ID:           hashid.HashID(node.ID, hashid.NodeID),
		Name:         node.Name,
		Size:         node.Size,
		Type:         node.Type,
		IsFolder:     node.IsFolder,
		IsStarred:    node.IsStarred,
		IsTrash:      node.IsTrash,
		URL:          node.ObjectURL,
		ThumbnailURL: node.ThumbnailURL,
		CreatedAt:    node.CreatedAt,
		UpdatedAt:    node.UpdatedAt,
		AccessedAt:   node.LastAccessedAt,
	}
}

// BuildObjectList maps a slice of nodes into their API views
func BuildObjectList(nodes []model.Node) []Object {
	objects := make([]Object, 0, len(nodes))
	for i := range nodes {
		objects = append(objects, BuildObject(&nodes[i]))
	}
	return objects
}

// BuildObjectResponse wraps a single object
func BuildObjectResponse(node *model.Node) Response {
	return Response{Data: BuildObject(node)}
}

// BuildObjectListResponse wraps an object listing
func BuildObjectListResponse(nodes []model.Node) Response {
	return Response{Data: map[string]interface{}{
		"objects": BuildObjectList(nodes),
	}}
}
