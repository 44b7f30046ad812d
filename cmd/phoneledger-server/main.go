package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/maidanad/phoneledger-go/internal/core/service"
	"github.com/maidanad/phoneledger-go/internal/infra/buildinfo"
	"github.com/maidanad/phoneledger-go/internal/infra/confloader"
	"github.com/maidanad/phoneledger-go/internal/infra/shutdown"
	"github.com/maidanad/phoneledger-go/internal/report"
	"github.com/maidanad/phoneledger-go/internal/server/config"
	"github.com/maidanad/phoneledger-go/internal/server/httpserver"
	"github.com/maidanad/phoneledger-go/internal/server/httpserver/handler"
	"github.com/maidanad/phoneledger-go/internal/storage"
	"github.com/maidanad/phoneledger-go/internal/storage/ledgerstore"
	"github.com/maidanad/phoneledger-go/internal/telemetry/logger"
	"github.com/maidanad/phoneledger-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		addr        = flag.String("addr", "", "Listen address (overrides config)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("phoneledger-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *addr != "" {
		cfg.Server.HTTP.Addr = *addr
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	slog.SetDefault(log)

	log.Info("starting phoneledger-server",
		"version", buildinfo.Version,
		"config", *configFile,
		"settings", config.Sanitize(cfg))

	registry := prometheus.NewRegistry()
	metrics := metric.New(registry)

	kv, err := openKV(cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	store := ledgerstore.New(kv, log,
		ledgerstore.WithSeed(cfg.Seed.SampleData),
		ledgerstore.WithDefaultRate(cfg.Seed.ExchangeRate),
		ledgerstore.WithPersistErrorHook(metrics.RecordPersistFailure),
	)
	if err := store.Load(context.Background()); err != nil {
		kv.Close()
		return fmt.Errorf("load ledger: %w", err)
	}

	audit := service.NewAuditService(store, service.DefaultAuditUser, log)
	auth := service.NewAuthService(cfg.Auth.Username, cfg.Auth.Password, log, metrics)

	services := &handler.Services{
		Sales:    service.NewSaleService(store, audit, metrics),
		Clients:  service.NewClientService(store, audit, metrics),
		Currency: service.NewCurrencyService(store, audit, metrics),
		Audit:    audit,
		Snapshot: service.NewSnapshotService(store, store, store, store, audit, metrics),
		Auth:     auth,
		Prefs:    service.NewPreferenceService(store, log),
		Summary:  service.NewSummaryService(store, store),
		Reports:  report.NewService(store, store, store),
		Gatherer: registry,
		KV:       kv,
	}

	routerCfg := httpserver.DefaultRouterConfig()
	routerCfg.Services = services
	routerCfg.AuthService = auth
	routerCfg.Logger = log
	routerCfg.Metrics = metrics
	if cfg.Server.RateLimit.Enabled {
		routerCfg.RateLimitRPS = cfg.Server.RateLimit.RPS
		routerCfg.RateLimitBurst = cfg.Server.RateLimit.Burst
	}

	httpServer := httpserver.New(
		cfg.Server.HTTP.Addr,
		httpserver.NewRouter(routerCfg),
		cfg.Server.HTTP.ReadTimeout,
		cfg.Server.HTTP.WriteTimeout,
	)

	// Shutdown hooks run in reverse order of registration.
	shutdownHandler := shutdown.NewHandler(cfg.Server.HTTP.ShutdownTimeout)
	shutdownHandler.OnShutdown(func(_ context.Context) error {
		log.Info("closing storage engine")
		return kv.Close()
	})
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig merges defaults, the optional config file and the
// PHONELEDGER_ environment variables.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openKV selects the storage engine from configuration.
func openKV(cfg *config.ServerConfig, log *slog.Logger) (storage.KVEngine, error) {
	if cfg.Storage.Engine == "memory" {
		log.Warn("using in-memory storage, data will not survive a restart")
		return storage.NewMemoryEngine(), nil
	}

	kvCfg := storage.DefaultKVConfig()
	kvCfg.Dir = cfg.Storage.DataDir
	kvCfg.Badger.GCInterval = cfg.Storage.GCInterval.String()
	kvCfg.Badger.SyncWrites = cfg.Storage.SyncWrites
	return storage.NewBadgerEngine(kvCfg, log)
}
