package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/meshtools/wireview/pkg/cache"
	"github.com/meshtools/wireview/pkg/config"
)

func TestOpenCacheNone(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = config.BackendNone

	c := openCache(context.Background(), cfg, charmlog.Default())
	defer c.Close()

	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("backend none should yield a NullCache, got %T", c)
	}
}

func TestOpenCacheFile(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = config.BackendFile
	cfg.Cache.Dir = t.TempDir()

	c := openCache(context.Background(), cfg, charmlog.Default())
	defer c.Close()

	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("backend file should yield a FileCache, got %T", c)
	}
}

func TestOpenCacheRedisUnavailable(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Backend = config.BackendRedis
	cfg.Cache.Redis.Addr = "127.0.0.1:1" // nothing listens here

	c := openCache(context.Background(), cfg, charmlog.New(io.Discard))
	defer c.Close()

	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("unreachable redis should fall back to NullCache, got %T", c)
	}
}

func TestLoadConfigDefaultsWhenFlagUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, err := loadConfig(&path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Render.Width != 800 {
		t.Errorf("Width = %v, want 800", cfg.Render.Width)
	}
}
