package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/esportlab/elab/internal/logger"
	"github.com/esportlab/elab/pkg/api"
	"github.com/esportlab/elab/pkg/backend"
	_ "github.com/esportlab/elab/pkg/cache/lru"  // cache driver
	_ "github.com/esportlab/elab/pkg/cache/noop" // cache driver
	"github.com/esportlab/elab/pkg/config"
	"github.com/esportlab/elab/pkg/credential"
	"github.com/esportlab/elab/pkg/db"
	"github.com/esportlab/elab/pkg/db/migrate"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	ctx := context.Background()

	cfg := config.DefaultConfig()
	if configPath != "" {
		if err := config.ParseConfig(cfg, configPath); err != nil {
			log.Fatal(err)
		}
	} else if !cfg.Exist() {
		// Write the default config to disk.
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
		if err := cfg.WriteConfig(); err != nil {
			log.Fatalf("write default config: %v", err)
		}
	} else {
		if err := cfg.Parse(); err != nil {
			log.Fatalf("read config: %v", err)
		}
	}

	ctx = config.WithContext(ctx, cfg)

	lg, f, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	if f != nil {
		defer f.Close() // nolint: errcheck
	}

	// Set global logger
	log.SetDefault(lg)
	ctx = log.WithContext(ctx, lg)

	// Useful when running in a container.
	if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
		log.Warn("couldn't set automaxprocs", "error", err)
	}

	// Set up the local state database.
	sdb, err := db.Open(ctx, cfg.DB.Driver, cfg.DB.DataSource)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer sdb.Close() // nolint: errcheck

	if err := migrate.Migrate(ctx, sdb); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	ctx = db.WithContext(ctx, sdb)

	// Set up the data-access layer.
	creds := credential.NewFileStore(cfg.DataPath)
	client := api.NewClient(cfg, creds, lg.WithPrefix("api"))
	be, err := backend.New(ctx, cfg, client, creds, sdb)
	if err != nil {
		log.Fatalf("create backend: %v", err)
	}

	ctx = backend.WithContext(ctx, be)

	if rootCmd.ExecuteContext(ctx) != nil {
		os.Exit(1)
	}
}
