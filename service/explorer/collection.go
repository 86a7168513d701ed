package explorer

import (
	"context"

	"github.com/gin-gonic/gin"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/filesystem"
	"github.com/skybox-app/skybox/pkg/serializer"
)

// ListTrash returns the user's trashed objects
func ListTrash(c *gin.Context, user *model.User) serializer.Response {
	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	nodes, err := fs.ListTrash(context.Background())
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to list trash", err)
	}

	return serializer.BuildObjectListResponse(nodes)
}

// ListStarred returns the user's starred objects
func ListStarred(c *gin.Context, user *model.User) serializer.Response {
	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	nodes, err := fs.ListStarred(context.Background())
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to list starred objects", err)
	}

	return serializer.BuildObjectListResponse(nodes)
}
