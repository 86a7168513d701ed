package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/skybox-app/skybox/service/explorer"
)

// ListDirectory lists the direct children of a folder
func ListDirectory(c *gin.Context) {
	var service explorer.DirectoryService
	if err := c.ShouldBindQuery(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.List(c, CurrentUser(c)))
}

// CreateDirectory creates an empty folder
func CreateDirectory(c *gin.Context) {
	var service explorer.DirectoryCreateService
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Create(c, CurrentUser(c)))
}
