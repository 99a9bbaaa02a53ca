package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`

	OpenAPI openAPIConfig `koanf:"openapi"`
}

type openAPIConfig struct {
	Enabled    bool   `koanf:"enabled"`
	PublicHost string `koanf:"public_host"`
	PublicPath string `koanf:"public_path"`
}

type redisConfig struct {
	URL      string `koanf:"url"`
	Address  string `koanf:"address"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type badgerConfig struct {
	Dir      string `koanf:"dir"`
	InMemory bool   `koanf:"in_memory"`
}

type storageConfig struct {
	// Driver is either "redis" or "badger".
	Driver string       `koanf:"driver"`
	Redis  redisConfig  `koanf:"redis"`
	Badger badgerConfig `koanf:"badger"`
}

type authConfig struct {
	Username     string        `koanf:"username"`
	Password     string        `koanf:"password"`
	PasswordHash string        `koanf:"password_hash"`
	Secret       string        `koanf:"secret"`
	Issuer       string        `koanf:"issuer"`
	SessionTTL   time.Duration `koanf:"session_ttl"`
	CookieSecure bool          `koanf:"cookie_secure"`
}

type assetsConfig struct {
	MaxSize    int64  `koanf:"max_size"`
	PublicPath string `koanf:"public_path"`
}

type catalogConfig struct {
	Seed bool `koanf:"seed"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Storage storageConfig `koanf:"storage"`
	Auth    authConfig    `koanf:"auth"`
	Assets  assetsConfig  `koanf:"assets"`
	Catalog catalogConfig `koanf:"catalog"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
		},

		Storage: storageConfig{
			Driver: "badger",
			Redis: redisConfig{
				Address: "127.0.0.1:6379",
			},
			Badger: badgerConfig{
				Dir: "./data",
			},
		},

		Auth: authConfig{
			Issuer:       "agrostore",
			SessionTTL:   24 * time.Hour,
			CookieSecure: true,
		},

		Assets: assetsConfig{
			MaxSize:    1 << 20,
			PublicPath: "/api/v1/images/",
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
