package bootstrap

import (
	"github.com/gin-gonic/gin"

	model "github.com/skybox-app/skybox/models"
	"github.com/skybox-app/skybox/pkg/auth"
	"github.com/skybox-app/skybox/pkg/cache"
	"github.com/skybox-app/skybox/pkg/conf"
)

// Init loads the configuration and brings the shared subsystems up in
// dependency order
func Init(configPath string) {
	conf.Init(configPath)

	if !conf.SystemConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	cache.Init()
	model.Init()
	auth.Init()
}
