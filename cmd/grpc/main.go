package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-stand-service/config"
	"github.com/fekuna/omnipos-stand-service/internal/server"
	"github.com/fekuna/omnipos-stand-service/internal/storage"
	"github.com/fekuna/omnipos-stand-service/internal/storage/memory"
	"github.com/fekuna/omnipos-stand-service/internal/storage/postgres"
	"github.com/fekuna/omnipos-stand-service/internal/storage/redis"
	"github.com/fekuna/omnipos-stand-service/pkg/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Open the key/value store
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	kv, closeStore := openStore(ctx, cfg, appLogger)
	cancel()
	defer closeStore()

	// 4. Initialize UseCases
	useCases := server.NewUseCases(storage.NewGateway(kv), appLogger)

	// 5. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := server.New(useCases, appLogger)

	appLogger.Info("Starting gRPC server", zap.String("port", port), zap.String("store", cfg.Store.Driver))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func openStore(ctx context.Context, cfg *config.Config, appLogger logger.ZapLogger) (storage.KV, func()) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := postgres.NewDB(ctx, &postgres.Config{
			DSN:             cfg.Postgres.DSN(),
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		version, err := postgres.Migrate(db)
		if err != nil {
			appLogger.Fatal("Could not migrate database", zap.Error(err))
		}
		appLogger.Info("Connected to PostgreSQL database",
			zap.String("db_name", cfg.Postgres.DBName),
			zap.Uint("schema_version", version))
		return postgres.NewStore(db), func() { db.Close() }

	case config.StoreRedis:
		client, err := redis.NewClient(ctx, &redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		return redis.NewStore(client, cfg.Redis.KeyPrefix), func() { client.Close() }

	default:
		appLogger.Warn("Using in-memory store, data is lost on exit")
		return memory.NewStore(), func() {}
	}
}
