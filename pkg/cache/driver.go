package cache

import (
	"encoding/gob"

	"github.com/skybox-app/skybox/pkg/conf"
)

func init() {
	gob.Register(map[string]itemWithTTL{})
}

// Store the configured key-value store
var Store Driver = NewMemoStore()

// Driver key-value storage container
type Driver interface {
	// Set stores a value, ttl is the expiry in seconds, 0 means no expiry
	Set(key string, value interface{}, ttl int) error

	// Get fetches a value and reports whether it was found
	Get(key string) (interface{}, bool)

	// Gets fetches values in batch, returning found values and missed keys
	Gets(keys []string, prefix string) (map[string]interface{}, []string)

	// Sets stores values in batch, every key prefixed with prefix
	Sets(values map[string]interface{}, prefix string) error

	// Delete removes values by prefix + key
	Delete(prefix string, keys ...string) error
}

// Init builds the configured store
func Init() {
	if conf.RedisConfig.Server != "" {
		Store = NewRedisStore(
			10,
			conf.RedisConfig.Network,
			conf.RedisConfig.Server,
			conf.RedisConfig.User,
			conf.RedisConfig.Password,
			conf.RedisConfig.DB,
		)
	}
}

// Set stores a value in the shared store
func Set(key string, value interface{}, ttl int) error {
	return Store.Set(key, value, ttl)
}

// Get fetches a value from the shared store
func Get(key string) (interface{}, bool) {
	return Store.Get(key)
}

// Deletes removes values from the shared store
func Deletes(keys []string, prefix string) error {
	return Store.Delete(prefix, keys...)
}
