package main

import (
	"flag"

	"github.com/skybox-app/skybox/bootstrap"
	"github.com/skybox-app/skybox/pkg/conf"
	"github.com/skybox-app/skybox/pkg/util"
	"github.com/skybox-app/skybox/routers"
)

var confPath string

func init() {
	flag.StringVar(&confPath, "c", util.RelativePath("conf.ini"), "Path to the config file")
	flag.Parse()

	bootstrap.Init(confPath)
}

func main() {
	api := routers.InitRouter()

	util.Log().Info("Listening on %q", conf.SystemConfig.Listen)
	if err := api.Run(conf.SystemConfig.Listen); err != nil {
		util.Log().Panic("Failed to start the server: %s", err)
	}
}
