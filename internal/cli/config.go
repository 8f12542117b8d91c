package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the serve command's configuration, loaded from a TOML file.
//
//	[server]
//	addr = ":8080"
//	cache_ttl = "1h"
//
//	[cache]
//	dir = "~/.cache/composite"      # file cache, used when redis_addr is empty
//	redis_addr = "localhost:6379"
//
//	[store]
//	mongo_uri = "mongodb://localhost:27017"
//	database = "composite"
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr     string   `toml:"addr"`
	CacheTTL duration `toml:"cache_ttl"`
}

// CacheConfig selects and configures the cache backend. When RedisAddr is
// set the Redis backend is used; otherwise a file cache in Dir; with both
// empty, caching is disabled.
type CacheConfig struct {
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// StoreConfig selects the persistence backend. When MongoURI is set graphs
// are stored in MongoDB; otherwise an in-memory store is used and graphs
// do not survive a restart.
type StoreConfig struct {
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// duration wraps time.Duration with TOML text decoding ("1h30m").
type duration struct {
	time.Duration
}

// UnmarshalText implements toml text unmarshalling for durations.
func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:     ":8080",
			CacheTTL: duration{time.Hour},
		},
		Store: StoreConfig{
			Database: "composite",
		},
	}
}

// loadConfig reads a TOML configuration file, layering it over the
// defaults. An empty path returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
