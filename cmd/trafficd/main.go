package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/aevon-lab/traffic-dashboard/internal/auth"
	corecfg "github.com/aevon-lab/traffic-dashboard/internal/core/config"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage/memory"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage/postgres"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage/sqlite"
	"github.com/aevon-lab/traffic-dashboard/internal/logging"
	"github.com/aevon-lab/traffic-dashboard/internal/migrations"
	"github.com/aevon-lab/traffic-dashboard/internal/projection"
	"github.com/aevon-lab/traffic-dashboard/internal/server"
	"github.com/aevon-lab/traffic-dashboard/internal/traffic"
)

func main() {
	configPath := flag.String("config", "traffic.yaml", "Path to configuration file")
	envFile := flag.String("env-file", ".env", "Path to a .env file loaded before the environment is read")
	flag.Parse()

	if err := run(*configPath, *envFile); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(configPath, envFile string) error {
	// 0. Load .env and configuration
	if err := corecfg.LoadDotEnv(envFile); err != nil {
		return err
	}
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		configPath = ""
	}
	cfg, err := corecfg.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 1. Initialize Logger
	logger, closer := logging.New(logging.Config{
		Format:     cfg.Log.Format,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer closer.Close()
	slog.SetDefault(logger)

	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"port", cfg.Server.Port,
		"reset_enabled", cfg.Seed.AllowReset)

	// 2. Initialize Storage
	store, err := openStore(cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	// 3. Initialize API services
	trafficSvc := traffic.NewService(store, traffic.ResetConfig{
		Enabled:  cfg.Seed.AllowReset,
		SeedPath: cfg.Seed.Path,
	}, cfg.Server.MaxBodySizeKB)
	projectionSvc := projection.NewService(store)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	// 4. Initialize Server
	srv := server.New(server.Options{
		Addr:            fmtAddr(cfg.Server.Host, cfg.Server.Port),
		Mode:            cfg.Server.Mode,
		AllowOrigin:     cfg.Server.AllowOrigin,
		ShutdownTimeout: cfg.Server.ShutdownTimeoutDuration(),
		Logger:          logger,
	}, store, verifier.Middleware(), trafficSvc, projectionSvc)

	// 5. Serve until a signal arrives
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Signal received, shutting down...")
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Shutdown complete")
	return nil
}

// openStore builds the configured backend. Postgres is migrated before its
// statements are prepared.
func openStore(cfg corecfg.DatabaseConfig) (storage.TrafficStore, error) {
	switch cfg.Type {
	case corecfg.DatabasePostgres:
		adapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := migrations.RunMigrations(adapter.DB(), cfg.AutoMigrate); err != nil {
			adapter.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		if err := adapter.Prepare(); err != nil {
			adapter.Close()
			return nil, err
		}
		return adapter, nil

	case corecfg.DatabaseSQLite:
		store, err := sqlite.New(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil

	case corecfg.DatabaseMemory:
		slog.Warn("Using in-memory store; records are lost on exit")
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
