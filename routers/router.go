package routers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skybox-app/skybox/middleware"
	"github.com/skybox-app/skybox/pkg/conf"
	"github.com/skybox-app/skybox/routers/controllers"
)

// InitRouter wires the API routes
func InitRouter() *gin.Engine {
	r := gin.Default()

	r.Use(middleware.Session(conf.SystemConfig.SessionSecret))

	if len(conf.CORSConfig.AllowOrigins) > 0 && conf.CORSConfig.AllowOrigins[0] != "UNSET" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     conf.CORSConfig.AllowOrigins,
			AllowMethods:     conf.CORSConfig.AllowMethods,
			AllowHeaders:     conf.CORSConfig.AllowHeaders,
			AllowCredentials: conf.CORSConfig.AllowCredentials,
			ExposeHeaders:    conf.CORSConfig.ExposeHeaders,
		}))
	}

	r.Use(middleware.CurrentUser())

	v1 := r.Group("/api/v1")
	{
		v1.GET("ping", func(c *gin.Context) {
			c.JSON(200, gin.H{"code": 0, "data": "pong"})
		})

		user := v1.Group("user")
		{
			user.POST("session", controllers.UserLogin)
		}

		auth := v1.Group("")
		auth.Use(middleware.AuthRequired())
		{
			auth.GET("user/me", controllers.UserMe)
			auth.DELETE("user/session", controllers.UserLogout)

			directory := auth.Group("directory")
			{
				directory.GET("", controllers.ListDirectory)
				directory.PUT("", controllers.CreateDirectory)
			}

			object := auth.Group("object")
			{
				object.DELETE("", controllers.DeleteObjects)
				object.PATCH("move", controllers.MoveObject)
				object.POST("copy", controllers.CopyObject)
				object.POST("rename", controllers.RenameObject)
				object.POST("star", controllers.StarObject)
				object.POST("upload", controllers.UploadFile)
				object.GET("preview/:id", controllers.PreviewObject)
				object.POST("trash/:id", controllers.TrashObject)
				object.DELETE("trash/:id", controllers.RestoreObject)
			}

			auth.GET("trash", controllers.ListTrash)
			auth.GET("starred", controllers.ListStarred)
		}
	}

	return r
}
