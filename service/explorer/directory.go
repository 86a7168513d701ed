package explorer

import (
	"context"

	"github.com/gin-gonic/gin"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/filesystem"
	"github.com/skybox-app/skybox/pkg/serializer"
)

// DirectoryService listing a folder, empty ID meaning the root level
type DirectoryService struct {
	ID string `form:"id"`
}

// DirectoryCreateService creating a folder under a parent
type DirectoryCreateService struct {
	Name   string `json:"name" binding:"required"`
	Parent string `json:"parent"`
}

// List returns the folder's direct children
func (service *DirectoryService) List(c *gin.Context, user *model.User) serializer.Response {
	parentID, err := decodeOptionalFolder(service.ID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "Unknown folder", err)
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	nodes, err := fs.List(context.Background(), parentID)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to list folder", err)
	}

	return serializer.BuildObjectListResponse(nodes)
}

// Create makes a new empty folder
func (service *DirectoryCreateService) Create(c *gin.Context, user *model.User) serializer.Response {
	parentID, err := decodeOptionalFolder(service.Parent)
	if err != nil {
		return serializer.Err(serializer.CodeParentNotExist, "Unknown parent folder", err)
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	folder, err := fs.CreateFolder(context.Background(), parentID, service.Name)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to create folder", err)
	}

	return serializer.BuildObjectResponse(folder)
}
