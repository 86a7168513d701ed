package controllers

import (
	"github.com/gin-gonic/gin"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/serializer"
)

// CurrentUser fetches the signed-in account attached by the middleware
func CurrentUser(c *gin.Context) *model.User {
	if user, ok := c.Get("user"); ok {
		if u, ok := user.(*model.User); ok {
			return u
		}
	}
	return nil
}

// ErrorResponse wraps a request binding failure
func ErrorResponse(err error) serializer.Response {
	return serializer.ParamErr("Malformed request parameters", err)
}
