package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadchandra19/orderflow/pkg/logger"
	"github.com/muhammadchandra19/orderflow/pkg/postgresql"
	"github.com/muhammadchandra19/orderflow/pkg/random"
	"github.com/muhammadchandra19/orderflow/pkg/redis"
	app "github.com/muhammadchandra19/orderflow/services/order-generator/internal/app/engine"
	registryv1 "github.com/muhammadchandra19/orderflow/services/order-generator/internal/domain/registry/v1"
	"github.com/muhammadchandra19/orderflow/services/order-generator/internal/infrastructure/kafka/publisher"
	pgconfig "github.com/muhammadchandra19/orderflow/services/order-generator/internal/infrastructure/postgresql/config"
	"github.com/muhammadchandra19/orderflow/services/order-generator/internal/infrastructure/redis/marketdata"
	redisregistry "github.com/muhammadchandra19/orderflow/services/order-generator/internal/infrastructure/redis/registry"
	"github.com/muhammadchandra19/orderflow/services/order-generator/internal/usecase/generator"
	"github.com/muhammadchandra19/orderflow/services/order-generator/internal/usecase/registry"
	"github.com/muhammadchandra19/orderflow/services/order-generator/internal/usecase/tracer"
	"github.com/muhammadchandra19/orderflow/services/order-generator/pkg/config"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	if err := config.Load(cfg); err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.ParseLevel(cfg.App.LogLevel)))
	if err != nil {
		panic(err)
	}

	log = l
}

func main() {
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	pgClient, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "connect_postgres"})
		return
	}
	defer pgClient.Close()

	if health := pgClient.CheckHealth(ctx); health.Status != "healthy" {
		log.Warn("PostgreSQL health check failed",
			logger.Field{Key: "database", Value: health.DatabaseName},
			logger.Field{Key: "error", Value: health.Error},
		)
	}

	rclient := redis.NewClient(log, &cfg.Redis)
	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "connect_redis"})
		return
	}
	defer func() {
		if err := rclient.Disconnect(context.Background()); err != nil {
			log.Error(err, logger.Field{Key: "action", Value: "disconnect_redis"})
		}
	}()

	kafkaPublisher := publisher.NewPublisher(cfg.Kafka, log)
	defer func() {
		if err := kafkaPublisher.Close(); err != nil {
			log.Error(err, logger.Field{Key: "action", Value: "close_publisher"})
		}
	}()

	gen := generator.NewGenerator(
		random.NewSource(cfg.App.Seed),
		generator.WithTracer(tracer.NewLogTracer(log)),
	)

	engine := app.NewEngineWithOptions(
		cfg.App.VenueID,
		pgconfig.NewRepository(pgClient, log),
		marketdata.NewProvider(rclient, cfg.MarketData.KeyPrefix, log),
		kafkaPublisher,
		gen,
		registryFactory(rclient),
		log,
		&app.Options{
			TickInterval: cfg.App.TickInterval,
			Instruments:  cfg.App.Instruments,
		},
	)

	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "start_engine"})
		return
	}

	log.Info("Order generator started successfully",
		logger.Field{Key: "venueID", Value: cfg.App.VenueID},
		logger.Field{Key: "registry", Value: string(cfg.App.RegistryBackend)},
	)

	sig := <-sigChan
	log.Info("Received shutdown signal", logger.Field{Key: "signal", Value: sig.String()})

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "stop_engine"})
	}

	log.Info("Order generator shutdown complete")
}

func registryFactory(rclient redis.Client) app.RegistryFactory {
	if cfg.App.RegistryBackend == config.RegistryRedis {
		return func(venueID, symbol string) registryv1.Registry {
			return redisregistry.NewRegistry(rclient, redisregistry.Key(&cfg.Redis, venueID, symbol), log)
		}
	}

	return func(string, string) registryv1.Registry {
		return registry.NewMemory()
	}
}
