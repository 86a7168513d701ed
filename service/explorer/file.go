package explorer

import (
	"context"

	"github.com/gin-gonic/gin"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/filesystem"
	"github.com/skybox-app/skybox/pkg/hashid"
	"github.com/skybox-app/skybox/pkg/serializer"
)

// ItemService a single object addressed by its public ID
type ItemService struct {
	ID string `uri:"id" binding:"required"`
}

// ItemRenameService renaming one object
type ItemRenameService struct {
	ID      string `json:"id" binding:"required"`
	NewName string `json:"new_name" binding:"required"`
}

// ItemStarService flipping one object's starred flag
type ItemStarService struct {
	ID      string `json:"id" binding:"required"`
	Starred bool   `json:"starred"`
}

// UploadService an incoming file upload
type UploadService struct {
	Name   string `form:"name" binding:"required"`
	Parent string `form:"parent"`
}

// Rename gives the object a new name
func (service *ItemRenameService) Rename(c *gin.Context, user *model.User) serializer.Response {
	id, err := hashid.DecodeHashID(service.ID, hashid.NodeID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "Unknown object", err)
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	node, err := fs.Rename(context.Background(), id, service.NewName)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to rename object", err)
	}

	return serializer.BuildObjectResponse(node)
}

// Star flips the object's starred flag
func (service *ItemStarService) Star(c *gin.Context, user *model.User) serializer.Response {
	id, err := hashid.DecodeHashID(service.ID, hashid.NodeID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "Unknown object", err)
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	if err := fs.SetStarred(context.Background(), id, service.Starred); err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to update object", err)
	}

	return serializer.Response{}
}

// Trash marks the object as trashed
func (service *ItemService) Trash(c *gin.Context, user *model.User) serializer.Response {
	return service.setTrash(user, true)
}

// Restore brings a trashed object back
func (service *ItemService) Restore(c *gin.Context, user *model.User) serializer.Response {
	return service.setTrash(user, false)
}

func (service *ItemService) setTrash(user *model.User, trash bool) serializer.Response {
	id, err := hashid.DecodeHashID(service.ID, hashid.NodeID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "Unknown object", err)
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	var opErr error
	if trash {
		opErr = fs.Trash(context.Background(), id)
	} else {
		opErr = fs.Restore(context.Background(), id)
	}
	if opErr != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to update object", opErr)
	}

	return serializer.Response{}
}

// Preview records an access and hands out the object's content URLs
func (service *ItemService) Preview(c *gin.Context, user *model.User) serializer.Response {
	id, err := hashid.DecodeHashID(service.ID, hashid.NodeID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "Unknown object", err)
	}

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	node, err := fs.Touch(context.Background(), id)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to access object", err)
	}

	return serializer.BuildObjectResponse(node)
}

// Upload stores the request's file part as a new object
func (service *UploadService) Upload(c *gin.Context, user *model.User) serializer.Response {
	parentID, err := decodeOptionalFolder(service.Parent)
	if err != nil {
		return serializer.Err(serializer.CodeParentNotExist, "Unknown parent folder", err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return serializer.ParamErr("Missing file part", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return serializer.ParamErr("Failed to read file part", err)
	}
	defer src.Close()

	fs, err := filesystem.NewFileSystem(user)
	if err != nil {
		return serializer.Err(serializer.CodeInternalSetting, "Failed to initialize filesystem", err)
	}

	node, err := fs.Upload(context.Background(), &filesystem.UploadTask{
		ParentID: parentID,
		Name:     service.Name,
		Size:     uint64(fileHeader.Size),
		MIMEType: fileHeader.Header.Get("Content-Type"),
		Source:   src,
	})
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to upload file", err)
	}

	return serializer.BuildObjectResponse(node)
}
