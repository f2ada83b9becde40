// Package cli implements the recalls command-line interface.
//
// This package provides commands for looking up NHTSA safety recalls per
// vehicle or campaign number, summarizing them per model year, browsing them
// interactively, serving them over HTTP, and managing the response cache.
// The CLI is built using cobra with verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - vehicle: Look up recalls for a make/model (optionally one model year)
//   - campaign: Look up a single recall by NHTSA campaign number
//   - years: Show recall counts per model year as a bar chart
//   - browse: Browse recalls interactively in the terminal
//   - serve: Expose the lookups as a small JSON HTTP API
//   - cache: Manage the response cache
package cli

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/buildinfo"
	"github.com/Wal33D/nhtsa-recall-lookup/pkg/cache"
	"github.com/Wal33D/nhtsa-recall-lookup/pkg/recall"
)

// appName is the application name used for directories and display.
const appName = "recalls"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	config     Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Look up NHTSA vehicle safety recalls",
		Long:         `Recalls looks up vehicle safety recall campaigns from the free NHTSA recall registry, per vehicle or per campaign number, with filtering, per-year summaries and response caching.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				path = defaultConfigPath()
			}
			cfg, err := LoadConfig(path)
			if err != nil {
				return err
			}
			c.config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config file")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the response cache")

	root.AddCommand(c.vehicleCommand())
	root.AddCommand(c.campaignCommand())
	root.AddCommand(c.yearsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// =============================================================================
// Client Factory
// =============================================================================

// newRecallClient builds a lookup client from the loaded configuration.
// The returned cleanup func closes the cache backend.
func (c *CLI) newRecallClient(ctx context.Context) (*recall.Client, func()) {
	backend := c.newCacheBackend(ctx)
	client := recall.NewWithOptions(recall.Options{
		BaseURL:    c.config.API.BaseURL,
		HTTPClient: &http.Client{Timeout: time.Duration(c.config.API.TimeoutSeconds) * time.Second},
		Logger:     c.Logger,
		Cache:      backend,
		CacheTTL:   time.Duration(c.config.Cache.TTLHours) * time.Hour,
	})
	return client, func() { _ = backend.Close() }
}

// newCacheBackend creates the configured cache backend. An unreachable
// redis/mongo backend degrades to no caching rather than failing the command.
func (c *CLI) newCacheBackend(ctx context.Context) cache.Cache {
	if c.noCache || c.config.Cache.Backend == "none" {
		return cache.NewNullCache()
	}

	switch c.config.Cache.Backend {
	case "memory":
		return cache.NewMemoryCache(0)
	case "redis":
		backend, err := cache.NewRedisCache(ctx, c.config.Cache.Redis.Addr, c.config.Cache.Redis.DB, appName+":")
		if err != nil {
			c.Logger.Warn("redis cache unavailable, continuing without cache", "addr", c.config.Cache.Redis.Addr, "err", err)
			return cache.NewNullCache()
		}
		return backend
	case "mongo":
		backend, err := cache.NewMongoCache(ctx, c.config.Cache.Mongo.URI, c.config.Cache.Mongo.Database)
		if err != nil {
			c.Logger.Warn("mongo cache unavailable, continuing without cache", "uri", c.config.Cache.Mongo.URI, "err", err)
			return cache.NewNullCache()
		}
		return backend
	default: // "file"
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		backend, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable, continuing without cache", "dir", dir, "err", err)
			return cache.NewNullCache()
		}
		return backend
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/recalls/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
