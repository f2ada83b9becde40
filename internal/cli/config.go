package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/errors"
)

// Config holds the CLI configuration, loaded from a TOML file.
// Every field has a usable default; a missing config file is not an error.
type Config struct {
	API   APIConfig   `toml:"api"`
	Cache CacheConfig `toml:"cache"`
}

// APIConfig configures the upstream registry connection.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`        // Registry root URL
	TimeoutSeconds int    `toml:"timeout_seconds"` // Per-request timeout
}

// CacheConfig selects and configures the response cache backend.
type CacheConfig struct {
	Backend  string      `toml:"backend"`   // file | memory | redis | mongo | none
	TTLHours int         `toml:"ttl_hours"` // Response cache TTL (0 = no expiry)
	Redis    RedisConfig `toml:"redis"`
	Mongo    MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr string `toml:"addr"`
	DB   int    `toml:"db"`
}

// MongoConfig configures the mongo cache backend.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        "https://api.nhtsa.gov/recalls",
			TimeoutSeconds: 10,
		},
		Cache: CacheConfig{
			Backend:  "file",
			TTLHours: 24,
			Redis:    RedisConfig{Addr: "localhost:6379"},
			Mongo:    MongoConfig{URI: "mongodb://localhost:27017", Database: appName},
		},
	}
}

// LoadConfig reads a TOML config file, layering it over the defaults.
// A missing file yields the defaults; a file that cannot be parsed or that
// names an unknown cache backend yields an INVALID_CONFIG error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing config %s", path)
	}

	switch cfg.Cache.Backend {
	case "file", "memory", "redis", "mongo", "none":
	default:
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", cfg.Cache.Backend)
	}
	if cfg.API.TimeoutSeconds <= 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "timeout_seconds must be positive")
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config file location
// (~/.config/recalls/config.toml).
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
