package conf

// DatabaseConfig database settings
var DatabaseConfig = &database{
	Type:    "UNSET",
	Charset: "utf8",
	Port:    3306,
}

// SystemConfig system settings
var SystemConfig = &system{
	Debug:    false,
	Mode:     "master",
	Listen:   ":5312",
	LogLevel: "info",
}

// StorageConfig object-storage provider settings
var StorageConfig = &storage{
	Provider: "qiniu",
}

// IdentityConfig external identity provider settings
var IdentityConfig = &identity{
	AssertionTTL: 60,
}

// RedisConfig redis settings
var RedisConfig = &redis{
	Network: "tcp",
	Server:  "",
	DB:      "0",
}

// CORSConfig cross-origin settings
var CORSConfig = &cors{
	AllowOrigins:     []string{"UNSET"},
	AllowMethods:     []string{"PUT", "POST", "GET", "OPTIONS"},
	AllowHeaders:     []string{"Cookie", "Content-Length", "Content-Type", "X-Path", "X-FileName"},
	AllowCredentials: false,
	ExposeHeaders:    nil,
}
