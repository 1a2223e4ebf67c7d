package cfg

type Cfg struct {
	// Storage configuration
	DBPath    string
	RedisAddr string

	// Application configuration
	TilesDir     string
	Port         string
	APIAccessKey string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
