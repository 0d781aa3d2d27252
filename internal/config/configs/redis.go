package configs

// Redis configures the Redis connection used when STORE_BACKEND=redis.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// KeyPrefix namespaces every key written by the ad store.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"viralclip:"`
}
