package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/skybox-app/skybox/pkg/conf"
	"github.com/skybox-app/skybox/pkg/util"
)

// Store the session backend shared by the routers
var Store sessions.Store

// Session initializes session storage, server side in Redis when one
// is configured and in a client-side cookie otherwise
func Session(secret string) gin.HandlerFunc {
	if conf.RedisConfig.Server != "" && gin.Mode() != gin.TestMode {
		var err error
		Store, err = redis.NewStoreWithDB(10, conf.RedisConfig.Network, conf.RedisConfig.Server,
			conf.RedisConfig.Password, conf.RedisConfig.DB, []byte(secret))
		if err != nil {
			util.Log().Panic("Failed to connect to Redis: %s", err)
		}

		util.Log().Info("Connected to Redis server %q", conf.RedisConfig.Server)
	} else {
		Store = cookie.NewStore([]byte(secret))
	}

	Store.Options(sessions.Options{
		HttpOnly: true,
		MaxAge:   7 * 86400,
		Path:     "/",
	})
	return sessions.Sessions("skybox-session", Store)
}
