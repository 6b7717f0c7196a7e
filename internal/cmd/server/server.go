// Package server wires configuration for the portfolio site process.
package server

import (
	"context"
	"flag"
	"fmt"

	"github.com/sukrucan/portfolio/internal/platform/config"
	"github.com/sukrucan/portfolio/internal/site"
)

const (
	defaultHTTPAddr    = "localhost:8080"
	defaultAdminSecret = "admin123"
	defaultDriver      = site.DriverFile
	defaultContentPath = "content.json"
	defaultDBPath      = "content.db"
)

// Config holds the server command configuration. Environment variables seed
// the defaults; flags override.
type Config struct {
	HTTPAddr      string `env:"PORTFOLIO_HTTP_ADDR"`
	AdminSecret   string `env:"PORTFOLIO_ADMIN_SECRET"`
	StorageDriver string `env:"PORTFOLIO_STORAGE_DRIVER"`
	ContentPath   string `env:"PORTFOLIO_CONTENT_PATH"`
	DatabasePath  string `env:"PORTFOLIO_DATABASE_PATH"`
}

// ParseConfig parses environment variables and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		HTTPAddr:      defaultHTTPAddr,
		AdminSecret:   defaultAdminSecret,
		StorageDriver: defaultDriver,
		ContentPath:   defaultContentPath,
		DatabasePath:  defaultDBPath,
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AdminSecret, "admin-secret", cfg.AdminSecret, "shared admin secret")
	fs.StringVar(&cfg.StorageDriver, "storage-driver", cfg.StorageDriver, "content storage driver (file or sqlite)")
	fs.StringVar(&cfg.ContentPath, "content-path", cfg.ContentPath, "content JSON file path (file driver)")
	fs.StringVar(&cfg.DatabasePath, "database-path", cfg.DatabasePath, "content database path (sqlite driver)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the portfolio site server.
func Run(ctx context.Context, cfg Config) error {
	server, err := site.NewServer(ctx, site.Config{
		HTTPAddr:      cfg.HTTPAddr,
		AdminSecret:   cfg.AdminSecret,
		StorageDriver: cfg.StorageDriver,
		ContentPath:   cfg.ContentPath,
		DatabasePath:  cfg.DatabasePath,
	})
	if err != nil {
		return fmt.Errorf("init site server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve site: %w", err)
	}
	return nil
}
