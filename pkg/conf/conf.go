package conf

import (
	"github.com/skybox-app/skybox/pkg/util"

	"github.com/go-ini/ini"
	"github.com/go-playground/validator/v10"
)

var cfg *ini.File

const defaultConf = `[System]
Debug = false
Mode = master
Listen = :5312
SessionSecret = {SessionSecret}
HashIDSalt = {HashIDSalt}
`

// Init loads the config file at path, creating a default one if absent
func Init(path string) {
	var err error

	if path == "" || !util.Exists(path) {
		// create an initial config file
		confContent := util.Replace(map[string]string{
			"{SessionSecret}": util.RandStringRunes(64),
			"{HashIDSalt}":    util.RandStringRunes(64),
		}, defaultConf)
		f, err := util.CreatNestedFile(path)
		if err != nil {
			util.Log().Panic("Failed to create config file: %s", err)
		}

		_, err = f.WriteString(confContent)
		if err != nil {
			util.Log().Panic("Failed to write config file: %s", err)
		}

		f.Close()
	}

	cfg, err = ini.Load(path)
	if err != nil {
		util.Log().Panic("Failed to parse config file %q: %s", path, err)
	}

	sections := map[string]interface{}{
		"Database": DatabaseConfig,
		"System":   SystemConfig,
		"Storage":  StorageConfig,
		"Identity": IdentityConfig,
		"Redis":    RedisConfig,
		"CORS":     CORSConfig,
	}
	for sectionName, sectionStruct := range sections {
		err = mapSection(sectionName, sectionStruct)
		if err != nil {
			util.Log().Panic("Failed to parse config section %q: %s", sectionName, err)
		}
	}

	// refresh logger level once config is known
	if SystemConfig.Debug {
		util.BuildLogger("debug")
	} else {
		util.BuildLogger(SystemConfig.LogLevel)
	}
}

// mapSection maps an ini section onto the given struct and validates it
func mapSection(section string, confStruct interface{}) error {
	err := cfg.Section(section).MapTo(confStruct)
	if err != nil {
		return err
	}

	validate := validator.New()
	err = validate.Struct(confStruct)
	if err != nil {
		return err
	}

	return nil
}
