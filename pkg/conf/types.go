package conf

// database section of the config file
type database struct {
	Type        string
	User        string
	Password    string
	Host        string
	Name        string
	TablePrefix string
	Port        int
	Charset     string
	UnixSocket  bool
}

// system section of the config file
type system struct {
	Mode          string `validate:"eq=master|eq=slave"`
	Listen        string `validate:"required"`
	Debug         bool
	SessionSecret string
	HashIDSalt    string
	LogLevel      string `validate:"eq=error|eq=warning|eq=info|eq=debug"`
}

// storage section of the config file, selects and configures the
// object-storage provider backing file contents
type storage struct {
	Provider  string `validate:"eq=qiniu|eq=s3|eq=mock"`
	AccessKey string
	SecretKey string
	Bucket    string
	Endpoint  string
	Region    string
	CDNDomain string
}

// identity section. Assertions from the external identity provider are
// HMAC-signed with this shared secret.
type identity struct {
	ProviderSecret string
	AssertionTTL   int
}

type redis struct {
	Network  string
	Server   string
	User     string
	Password string
	DB       string
}

type cors struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
	ExposeHeaders    []string
}
