package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/skybox-app/skybox/pkg/serializer"
	"github.com/skybox-app/skybox/service/user"
)

// UserLogin signs in with an identity-provider assertion
func UserLogin(c *gin.Context) {
	var service user.LoginService
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(200, ErrorResponse(err))
		return
	}
	c.JSON(200, service.Login(c))
}

// UserLogout drops the session
func UserLogout(c *gin.Context) {
	c.JSON(200, user.Logout(c))
}

// UserMe returns the signed-in account
func UserMe(c *gin.Context) {
	c.JSON(200, serializer.BuildUserResponse(CurrentUser(c)))
}
