// Package config loads wireview configuration from a TOML file.
//
// The config file is optional: a missing file yields the defaults. The
// default location is ~/.config/wireview/config.toml, overridable with the
// --config flag.
//
// Example:
//
//	[cache]
//	backend = "file"          # file | redis | none
//	dir = "~/.cache/wireview" # file backend only
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[render]
//	width = 800
//	height = 600
//	stroke = 1.0
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/meshtools/wireview/pkg/errors"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the top-level configuration.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Render RenderConfig `toml:"render"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig holds redis backend settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RenderConfig holds default artifact dimensions.
type RenderConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Stroke float64 `toml:"stroke"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Render: RenderConfig{
			Width:  800,
			Height: 600,
			Stroke: 1.0,
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wireview", "config.toml")
}

// DefaultCacheDir returns the standard cache directory.
func DefaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cache", "wireview")
}

// Load reads a config file and applies defaults to unset fields.
// A missing file is not an error; it yields [Default].
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Cache.Backend == "" {
		c.Cache.Backend = def.Cache.Backend
	}
	if c.Cache.Redis.Addr == "" {
		c.Cache.Redis.Addr = def.Cache.Redis.Addr
	}
	if c.Render.Width == 0 {
		c.Render.Width = def.Render.Width
	}
	if c.Render.Height == 0 {
		c.Render.Height = def.Render.Height
	}
	if c.Render.Stroke == 0 {
		c.Render.Stroke = def.Render.Stroke
	}
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %q (must be file, redis, or none)", c.Cache.Backend)
}

// CacheDir returns the configured cache directory or the default.
func (c *Config) CacheDir() string {
	if c.Cache.Dir != "" {
		return c.Cache.Dir
	}
	return DefaultCacheDir()
}
