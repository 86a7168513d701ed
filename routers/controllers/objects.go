package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/skybox-app/skybox/service/explorer"
)

// DeleteObjects removes a batch of objects, folders recursively
func DeleteObjects(c *gin.Context) {
	var service explorer.ItemIDsService
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Delete(c, CurrentUser(c)))
}

// MoveObject re-homes one object under another folder
func MoveObject(c *gin.Context) {
	var service explorer.ItemMoveService
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Move(c, CurrentUser(c)))
}

// CopyObject duplicates one object into another folder
func CopyObject(c *gin.Context) {
	var service explorer.ItemCopyService
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Copy(c, CurrentUser(c)))
}
