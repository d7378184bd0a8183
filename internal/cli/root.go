package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/meshtools/wireview/pkg/buildinfo"
	"github.com/meshtools/wireview/pkg/cache"
	"github.com/meshtools/wireview/pkg/config"
)

// Execute runs the wireview CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (info, render,
// transform, view, cache), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "wireview",
		Short:        "Wireview loads, transforms, and renders OBJ wireframe models",
		Long:         `Wireview is a CLI tool for working with Wavefront OBJ wireframe models: parse vertices and faces, normalize oversized geometry, apply affine transformations, and render SVG or JSON artifacts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/wireview/config.toml)")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newRenderCmd(&configPath))
	root.AddCommand(newTransformCmd(&configPath))
	root.AddCommand(newViewCmd())
	root.AddCommand(newCacheCmd(&configPath))

	return root.ExecuteContext(ctx)
}

// loadConfig reads the config file named by the --config flag, falling back
// to the default location.
func loadConfig(configPath *string) (config.Config, error) {
	path := ""
	if configPath != nil {
		path = *configPath
	}
	return config.Load(path)
}

// openCache builds the cache backend selected by the config. The none
// backend disables caching entirely.
func openCache(ctx context.Context, cfg config.Config, logger *charmlog.Logger) cache.Cache {
	switch cfg.Cache.Backend {
	case config.BackendRedis:
		c, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		if err != nil {
			logger.Warn("redis cache unavailable, caching disabled", "addr", cfg.Cache.Redis.Addr, "error", err)
			return cache.NewNullCache()
		}
		return c
	case config.BackendNone:
		return cache.NewNullCache()
	}

	c, err := cache.NewFileCache(cfg.CacheDir())
	if err != nil {
		logger.Warn("file cache unavailable, caching disabled", "dir", cfg.CacheDir(), "error", err)
		return cache.NewNullCache()
	}
	return c
}
