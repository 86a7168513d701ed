package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/skybox-app/skybox/service/explorer"
)

// RenameObject gives one object a new name
func RenameObject(c *gin.Context) {
	var service explorer.ItemRenameService
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Rename(c, CurrentUser(c)))
}

// StarObject flips one object's starred flag
func StarObject(c *gin.Context) {
	var service explorer.ItemStarService
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Star(c, CurrentUser(c)))
}

// TrashObject marks one object as trashed
func TrashObject(c *gin.Context) {
	var service explorer.ItemService
	if err := c.ShouldBindUri(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Trash(c, CurrentUser(c)))
}

// RestoreObject brings one trashed object back
func RestoreObject(c *gin.Context) {
	var service explorer.ItemService
	if err := c.ShouldBindUri(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Restore(c, CurrentUser(c)))
}

// PreviewObject records an access and returns the content URLs
func PreviewObject(c *gin.Context) {
	var service explorer.ItemService
	if err := c.ShouldBindUri(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Preview(c, CurrentUser(c)))
}

// UploadFile stores the request's file part as a new object
func UploadFile(c *gin.Context) {
	var service explorer.UploadService
	if err := c.ShouldBind(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Upload(c, CurrentUser(c)))
}

// ListTrash lists the user's trashed objects
func ListTrash(c *gin.Context) {
	c.JSON(200, explorer.ListTrash(c, CurrentUser(c)))
}

// ListStarred lists the user's starred objects
func ListStarred(c *gin.Context) {
	c.JSON(200, explorer.ListStarred(c, CurrentUser(c)))
}
