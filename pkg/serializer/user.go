package serializer

import (
	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/hashid"
)

// User API view of an account
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Nick    string `json:"nick"`
	Storage uint64 `json:"storage"`
}

// BuildUser maps an account into its API view
func BuildUser(user *model.User) User {
	return User{
		ID:      hashid.HashID(user.ID, hashid.UserID),
		Email:   user.Email,
		Nick:    user.Nick,
		Storage: user.Storage,
	}
}

// BuildUserResponse wraps the account view
func BuildUserResponse(user *model.User) Response {
	return Response{Data: BuildUser(user)}
}
