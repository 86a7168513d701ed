package user

import (
	"github.com/gin-gonic/gin"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/auth"
	"github.com/skybox-app/skybox/pkg/serializer"
	"github.com/skybox-app/skybox/pkg/util"
)

// LoginService signing in with an identity-provider assertion
type LoginService struct {
	Assertion string `json:"assertion" binding:"required"`
}

// Login verifies the assertion, provisions the account on first sight
// and establishes the session
func (service *LoginService) Login(c *gin.Context) serializer.Response {
	subject, email, err := auth.CheckAssertion(auth.General, service.Assertion)
	if err != nil {
		return serializer.Err(serializer.CodeNoPermissionErr, "Invalid identity assertion", err)
	}

	account, err := model.GetUserByExternalID(subject)
	if err != nil {
		account = model.User{
			Email:      email,
			Nick:       email,
			ExternalID: subject,
		}
		if _, err := account.Create(); err != nil {
			return serializer.DBErr("Failed to create account", err)
		}
	}

	// discard whatever session the client carried before signing in
	util.ClearSession(c)
	util.SetSession(c, map[string]interface{}{
		"user_id": account.ID,
	})

	return serializer.BuildUserResponse(&account)
}

// Logout drops the session
func Logout(c *gin.Context) serializer.Response {
	util.DeleteSession(c, "user_id")
	return serializer.Response{}
}
