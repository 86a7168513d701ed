package model

import (
	"fmt"
	"time"

	"github.com/skybox-app/skybox/pkg/conf"
	"github.com/skybox-app/skybox/pkg/util"

	"github.com/jinzhu/gorm"

	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/postgres"
)

// DB shared database handle
var DB *gorm.DB

// Init opens the database connection and runs migrations
func Init() {
	util.Log().Info("Initializing database connection...")

	var (
		db  *gorm.DB
		err error
	)

	switch conf.DatabaseConfig.Type {
	case "UNSET", "mysql":
		var host string
		if conf.DatabaseConfig.UnixSocket {
			host = fmt.Sprintf("unix(%s)", conf.DatabaseConfig.Host)
		} else {
			host = fmt.Sprintf("(%s:%d)", conf.DatabaseConfig.Host, conf.DatabaseConfig.Port)
		}
		db, err = gorm.Open("mysql", fmt.Sprintf("%s:%s@%s/%s?charset=%s&parseTime=True&loc=Local",
			conf.DatabaseConfig.User,
			conf.DatabaseConfig.Password,
			host,
			conf.DatabaseConfig.Name,
			conf.DatabaseConfig.Charset))
	case "postgres":
		db, err = gorm.Open(conf.DatabaseConfig.Type, fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			conf.DatabaseConfig.Host,
			conf.DatabaseConfig.User,
			conf.DatabaseConfig.Password,
			conf.DatabaseConfig.Name,
			conf.DatabaseConfig.Port))
	default:
		util.Log().Panic("Unsupported database type %q.", conf.DatabaseConfig.Type)
	}

	if err != nil {
		util.Log().Panic("Failed to connect to database: %s", err)
	}

	// debug mode prints every statement
	if conf.SystemConfig.Debug {
		db.LogMode(true)
	} else {
		db.LogMode(false)
	}

	db.DB().SetMaxIdleConns(50)
	db.DB().SetMaxOpenConns(100)
	db.DB().SetConnMaxLifetime(time.Second * 30)

	DB = db

	migration()
}
