// Command seeder loads vending machines and their books from a YAML catalog.
// It runs offline, not as part of the server.
//
// Flags:
//
//	--file           path to the catalog YAML (overrides seeder config)
//	--dry-run        validate and count without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/booklocker-backend/internal/adapter/postgres"
	bookrepo "github.com/heartmarshall/booklocker-backend/internal/adapter/postgres/book"
	machinerepo "github.com/heartmarshall/booklocker-backend/internal/adapter/postgres/machine"
	"github.com/heartmarshall/booklocker-backend/internal/app"
	"github.com/heartmarshall/booklocker-backend/internal/app/seeder"
	"github.com/heartmarshall/booklocker-backend/internal/config"
	"github.com/heartmarshall/booklocker-backend/migrations"
)

var (
	_ seeder.MachineWriter = (*machinerepo.Repo)(nil)
	_ seeder.BookWriter    = (*bookrepo.Repo)(nil)
	_ seeder.TxRunner      = (*postgres.TxManager)(nil)
)

func main() {
	fileFlag := flag.String("file", "", "path to catalog YAML")
	dryRunFlag := flag.Bool("dry-run", false, "validate the catalog without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}
	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		fail(logger, "load seeder config", err)
	}
	if *fileFlag != "" {
		seederCfg.CatalogPath = *fileFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	catalog, err := seeder.ReadCatalogFile(seederCfg.CatalogPath)
	if err != nil {
		fail(logger, "read catalog", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if seederCfg.DryRun {
		if _, err := seeder.NewPipeline(logger, nil, nil, nil, *seederCfg).Run(ctx, catalog); err != nil {
			fail(logger, "validate catalog", err)
		}
		return
	}

	if !appCfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, appCfg.Database.DSN, migrations.FS, logger); err != nil {
			fail(logger, "migrate", err)
		}
	}

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		fail(logger, "connect to database", err)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(
		logger,
		machinerepo.New(pool),
		bookrepo.New(pool),
		postgres.NewTxManager(pool),
		*seederCfg,
	)
	if _, err := pipeline.Run(ctx, catalog); err != nil {
		pool.Close()
		fail(logger, "seed catalog", err)
	}
}

func fail(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.String("error", err.Error()))
	os.Exit(1)
}
