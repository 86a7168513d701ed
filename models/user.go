package model

import (
	"encoding/gob"
	"strconv"

	"github.com/jinzhu/gorm"

	"github.com/skybox-app/skybox/pkg/cache"
)

func init() {
	gob.Register(User{})
}

// User an account mirrored from the external identity provider. The
// provider subject doubles as the user's storage namespace.
type User struct {
	gorm.Model
	Email      string `gorm:"type:varchar(100);unique_index"`
	Nick       string `gorm:"size:50"`
	ExternalID string `gorm:"type:varchar(100);unique_index"`
	Storage    uint64
}

// GetUserByID finds a user by primary key, served from the cache when
// the entry is warm. Only uint IDs, as carried in sessions, are cached.
func GetUserByID(ID interface{}) (User, error) {
	var cacheKey string
	if uid, ok := ID.(uint); ok {
		cacheKey = "user_" + strconv.FormatUint(uint64(uid), 10)
		if user, ok := cache.Get(cacheKey); ok {
			return user.(User), nil
		}
	}

	var user User
	result := DB.First(&user, ID)
	if result.Error == nil && cacheKey != "" {
		_ = cache.Set(cacheKey, user, 600)
	}
	return user, result.Error
}

// GetUserByExternalID finds a user by identity-provider subject
func GetUserByExternalID(externalID string) (User, error) {
	var user User
	result := DB.Where("external_id = ?", externalID).First(&user)
	return user, result.Error
}

// Create inserts the user record
func (user *User) Create() (uint, error) {
	if err := DB.Create(user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

// IncreaseStorage adds newly used storage to the user's counter
func (user *User) IncreaseStorage(size uint64) {
	if size == 0 {
		return
	}
	user.Storage += size
	DB.Model(user).Update("storage", user.Storage)
	user.ClearCache()
}

// DeductionStorage returns storage to the user's counter
func (user *User) DeductionStorage(size uint64) {
	if size == 0 {
		return
	}
	if size > user.Storage {
		size = user.Storage
	}
	user.Storage -= size
	DB.Model(user).Update("storage", user.Storage)
	user.ClearCache()
}

// ClearCache drops the user's cache entry after a counter change
func (user *User) ClearCache() {
	_ = cache.Deletes([]string{strconv.FormatUint(uint64(user.ID), 10)}, "user_")
}
