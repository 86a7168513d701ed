package explorer

import (
	"context"

	"github.com/gin-gonic/gin"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/filesystem"
	"github.com/skybox-app/skybox/pkg/hashid"
	"github.com/skybox-app/skybox/pkg/serializer"
)

// ItemIDsService a batch of objects addressed by their public IDs
type ItemIDsService struct {
	Items []string `json:"items" binding:"required,min=1"`
}

// ItemMoveService moving one object to a destination folder. An empty
// destination means the root level.
type ItemMoveService struct {
	Src string `json:"src" binding:"required"`
	Dst string `json:"dst"`
}

// ItemCopyService copying one object into a destination folder
type ItemCopyService struct {
	Src string `json:"src" binding:"required"`
	Dst string `json:"dst"`
}

// Delete removes the requested objects, folders recursively
func (service *ItemIDsService) Delete(c *gin.Context, user *model.User) serializer.Response {
	ids, err := decodeNodeIDs(service.Items)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "Unknown object", err)
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	result, err := fs.Delete(context.Background(), ids)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to delete objects", err)
	}

	if len(result.NotFound) > 0 {
		return serializer.Response{
			Code: serializer.CodeNotFullySuccess,
			Data: map[string]interface{}{
				"deleted":   len(result.DeletedIDs),
				"not_found": len(result.NotFound),
				"freed":     result.FreedSize,
			},
			Msg: "Some objects were not found",
		}
	}

	return serializer.Response{
		Data: map[string]interface{}{
			"deleted": len(result.DeletedIDs),
			"freed":   result.FreedSize,
		},
	}
}

// Move re-homes the source object under the destination folder
func (service *ItemMoveService) Move(c *gin.Context, user *model.User) serializer.Response {
	srcID, err := hashid.DecodeHashID(service.Src, hashid.NodeID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "Unknown object", err)
	}

	dstID, err := decodeOptionalFolder(service.Dst)
	if err != nil {
		return serializer.Err(serializer.CodeParentNotExist, "Unknown destination folder", err)
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	node, err := fs.Move(context.Background(), srcID, dstID)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to move object", err)
	}

	return serializer.BuildObjectResponse(node)
}

// Copy duplicates the source object into the destination folder
func (service *ItemCopyService) Copy(c *gin.Context, user *model.User) serializer.Response {
	srcID, err := hashid.DecodeHashID(service.Src, hashid.NodeID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "Unknown object", err)
	}

	dstID, err := decodeOptionalFolder(service.Dst)
	if err != nil {
		return serializer.Err(serializer.CodeParentNotExist, "Unknown destination folder", err)
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	node, err := fs.Copy(context.Background(), srcID, dstID)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to copy object", err)
	}

	return serializer.BuildObjectResponse(node)
}

func decodeNodeIDs(items []string) ([]uint, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		id, err := hashid.DecodeHashID(item, hashid.NodeID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func decodeOptionalFolder(raw string) (*uint, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := hashid.DecodeHashID(raw, hashid.NodeID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
