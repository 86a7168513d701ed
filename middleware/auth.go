package middleware

import (
	"github.com/gin-gonic/gin"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/serializer"
	"github.com/skybox-app/skybox/pkg/util"
)

// CurrentUser resolves the session owner and attaches the account to
// the request context
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := util.GetSession(c, "user_id")
		if uid != nil {
			user, err := model.GetUserByID(uid)
			if err == nil {
				c.Set("user", &user)
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests without a signed-in account
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, _ := c.Get("user"); user != nil {
			if _, ok := user.(*model.User); ok {
				c.Next()
				return
			}
		}

		c.JSON(200, serializer.CheckLogin())
		c.Abort()
	}
}
