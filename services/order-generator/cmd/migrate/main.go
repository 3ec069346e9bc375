package main

import (
	"context"
	"flag"

	"github.com/muhammadchandra19/orderflow/pkg/logger"
	migration "github.com/muhammadchandra19/orderflow/pkg/migration-pg"
	"github.com/muhammadchandra19/orderflow/pkg/postgresql"
	"github.com/muhammadchandra19/orderflow/services/order-generator/pkg/config"
)

// Config is the subset of the service configuration the migrator needs.
type Config struct {
	Postgres  postgresql.Config `envPrefix:"POSTGRES_"`
	Migration migration.Config  `envPrefix:"MIGRATION_"`
}

func main() {
	var (
		direction = flag.String("direction", "up", "Migration direction: up or down")
		steps     = flag.Int("steps", 0, "Number of steps to migrate (0 = all)")
		dir       = flag.String("dir", "internal/infrastructure/postgresql/migrations", "Migration directory")
	)
	flag.Parse()

	ctx := context.Background()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := &Config{}
	config.MustLoad(cfg)
	cfg.Migration.MigrationDir = *dir

	pgClient, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "connect_postgres"})
		return
	}
	defer pgClient.Close()

	runner := migration.NewRunner(pgClient, log, cfg.Migration)

	if err := runner.EnsureMigrationTable(ctx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "ensure_migration_table"})
		return
	}

	switch *direction {
	case "up":
		err = runner.MigrateUp(ctx, *steps)
	case "down":
		err = runner.MigrateDown(ctx, *steps)
	default:
		log.Warn("Invalid direction, use 'up' or 'down'", logger.Field{Key: "direction", Value: *direction})
		return
	}
	if err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "migrate_" + *direction})
		return
	}

	log.Info("Migration completed successfully", logger.Field{Key: "direction", Value: *direction})
}
