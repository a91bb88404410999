package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"nadlan_radar/internal/config"
	"nadlan_radar/internal/domain/service/extract"
	service "nadlan_radar/internal/domain/service/listing"
	"nadlan_radar/internal/domain/service/valuation"
	"nadlan_radar/internal/domain/value"
	"nadlan_radar/internal/infrastructure/fetcher"
	"nadlan_radar/internal/infrastructure/persistence"
	"nadlan_radar/internal/server"
	"nadlan_radar/pkg/application/connectors"
	"nadlan_radar/pkg/application/modules"
	"nadlan_radar/pkg/contextx"
	"nadlan_radar/pkg/logx"
	"nadlan_radar/pkg/middlewarex"
)

func Run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Database
	sqlite := &connectors.SQLite{
		Path: cfg.SQLite.Path,
	}
	db := sqlite.Client(ctx)
	defer sqlite.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	if err := persistence.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// 3. Repositories + reference data
	catalog := value.DefaultCatalog()

	listingRepo := persistence.NewListingRepository(db)
	benchmarkRepo := persistence.NewBenchmarkRepository(db)

	if err := benchmarkRepo.Seed(ctx, catalog.Benchmarks); err != nil {
		return fmt.Errorf("seed benchmarks: %w", err)
	}
	log.Info("benchmark table seeded", "cities", len(catalog.Benchmarks))

	// 4. Services
	pageFetcher := fetcher.New(fetcher.Config{
		ProxyPrefix:    cfg.Fetcher.ProxyPrefix,
		Timeout:        cfg.Fetcher.Timeout,
		CacheTTL:       cfg.Fetcher.CacheTTL,
		LogFieldMaxLen: cfg.Fetcher.LogFieldMaxLen,
	})

	svc := service.NewListingService(
		listingRepo,
		benchmarkRepo,
		pageFetcher,
		extract.New(catalog, cfg.Parser.Bounds()),
		valuation.NewAppraiser(catalog),
		catalog,
	)

	// 5. HTTP server
	router := chi.NewRouter()

	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), cfg.HTTP.LogFieldMaxLen),
	)

	server.NewServer(server.NewListingServer(svc)).RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:    cfg.HTTP.ListenAddress,
		Handler: router,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeAddress,
	}.Run(ctx, g)
	modules.MetricServer{ListenAddress: cfg.App.MetricsAddress}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
