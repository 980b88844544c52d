package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/studygroups/internal/buildinfo"
	"github.com/dmitrijs2005/studygroups/internal/client/api"
	"github.com/dmitrijs2005/studygroups/internal/client/cli"
	"github.com/dmitrijs2005/studygroups/internal/client/config"
	"github.com/dmitrijs2005/studygroups/internal/client/credentials"
	"github.com/dmitrijs2005/studygroups/internal/client/storage"
	"github.com/dmitrijs2005/studygroups/internal/filex"
	"github.com/dmitrijs2005/studygroups/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, app, err := newApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	app.Run(ctx)

}

func newApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*sql.DB, *cli.App, error) {
	dbPath, err := filex.EnsureParentDir(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("prepare database dir: %w", err)
	}

	db, err := storage.InitDatabase(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}

	var passphrase []byte
	if cfg.StorePassphrase != "" {
		passphrase = []byte(cfg.StorePassphrase)
	}
	store, err := credentials.Open(ctx, db, passphrase, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	client, err := api.NewHTTPClient(api.Config{
		BaseURL:           cfg.APIBaseURL,
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}, store, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, cli.NewApp(cfg, store, client, logger), nil
}
