package model

import (
	"github.com/skybox-app/skybox/pkg/conf"
	"github.com/skybox-app/skybox/pkg/util"
)

// migration keeps the schema in sync with the models
func migration() {
	util.Log().Info("Start initializing database schema...")

	if conf.DatabaseConfig.Type == "mysql" || conf.DatabaseConfig.Type == "UNSET" {
		DB = DB.Set("gorm:table_options", "ENGINE=InnoDB")
	}

	DB.AutoMigrate(&Node{}, &User{})

	util.Log().Info("Finished initializing database schema.")
}
