package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/quaverlabs/quaver/internal/admin"
	"github.com/quaverlabs/quaver/internal/api"
	"github.com/quaverlabs/quaver/internal/session"
	"github.com/quaverlabs/quaver/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var store *session.Store
	opts := RunnerOpts{Config: config, Logger: logger}

	if db, err := shared.NewDatabase(config.Database.Path); err != nil {
		logger.Warn("failed to open database, sessions disabled", "error", err)
	} else {
		shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if err := shared.RunMigrations(db); err != nil {
			logger.Warn("failed to run migrations", "error", err)
		}
		store = session.NewStore(db)
		opts.DB = db
		opts.Store = store
	}

	client := api.NewClient(config.API.BaseURL, nil, config.API.RateLimit)
	adminAPI := api.NewClient(config.Admin.BaseURL, nil, config.API.RateLimit)

	if store != nil {
		if user := store.Current(session.SlotUser); user != nil && user.AccessToken != "" {
			client.SetToken(user.AccessToken)
		}
		if user := store.Current(session.SlotAdmin); user != nil && user.AccessToken != "" {
			adminAPI.SetToken(user.AccessToken)
		}
	}

	opts.Client = client
	opts.Admin = admin.New(adminAPI, store, logger)

	runner := NewRunner(opts)

	app := &cli.Command{
		Name:     "quaver",
		Usage:    "Browse, play, and manage a streaming music catalog",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
