package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	"novelverse/internal/backend"
	"novelverse/internal/catalog"
	"novelverse/internal/catalogrpc"
	"novelverse/internal/feed"
	"novelverse/internal/logger"
	"novelverse/internal/middleware"
	"novelverse/internal/router"
	"novelverse/pkg/database"
	"novelverse/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (default $"+utils.ConfigPathEnv+")")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("logger: %v", err)
	}
	gin.SetMode(gin.ReleaseMode)

	var (
		store catalog.Store = catalog.NewSeedStore()
		db    *sql.DB
	)
	if cfg.DBPath != "" {
		db, err = openCatalog(cfg.DBPath)
		if err != nil {
			slog.Error("catalog db", "path", cfg.DBPath, "err", err)
			os.Exit(1)
		}
		defer db.Close()
		store = catalog.NewSQLiteStore(db)
	}

	var limiter *middleware.Limiter
	if cfg.RedisAddr != "" {
		limiter, err = middleware.NewLimiter(cfg.RedisAddr, cfg.RedisPassword, "", cfg.SearchRateLimit, cfg.SearchWindow)
		if err != nil {
			slog.Error("rate limiter", "err", err)
			os.Exit(1)
		}
		defer limiter.Close()
	}

	// Start the TCP feed first so binding errors show up early
	hub := feed.NewHub(cfg.FeedHistorySize)
	tcpSrv := feed.NewServer(cfg.FeedAddr, hub)

	r := router.New(router.Deps{
		Store:          store,
		Hub:            hub,
		API:            backend.NewStub(hub),
		DB:             db,
		Limiter:        limiter,
		TrustedProxies: cfg.TrustedProxies,
	})

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// gRPC catalog and health service, off when grpcAddr is empty
	var (
		grpcSrv *grpc.Server
		grpcLn  net.Listener
	)
	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	if cfg.GRPCAddr != "" {
		grpcLn, err = net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			slog.Error("grpc listen", "addr", cfg.GRPCAddr, "err", err)
			os.Exit(1)
		}
		hl := catalogrpc.NewHealth(pinger(db))
		grpcSrv = catalogrpc.NewGRPCServer(store, hl)
		go hl.Run(healthCtx, 15*time.Second)
	}

	errCh := make(chan error, 3)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := tcpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("http server listening", "addr", cfg.Addr, "catalog", storeKind(db))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if grpcSrv != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slog.Info("grpc server listening", "addr", grpcLn.Addr().String())
			if err := grpcSrv.Serve(grpcLn); err != nil {
				errCh <- err
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	slog.Info("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown", "err", err)
	}
	if err := tcpSrv.Close(); err != nil {
		slog.Error("tcp shutdown", "err", err)
	}
	stopHealth()
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}

	wg.Wait()
	slog.Info("servers stopped")
}

// openCatalog opens and migrates the snapshot database, seeding it when it
// holds no novels yet.
func openCatalog(path string) (*sql.DB, error) {
	db, err := database.Open(database.Config{Path: path})
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	existing, err := catalog.NewSQLiteStore(db).List(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	if len(existing) == 0 {
		if err := catalog.SaveSnapshot(ctx, db, catalog.Seed()); err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("seeded empty catalog", "path", path, "novels", len(catalog.Seed()))
	}
	return db, nil
}

// pinger keeps a nil *sql.DB from becoming a non-nil interface.
func pinger(db *sql.DB) catalogrpc.Pinger {
	if db == nil {
		return nil
	}
	return db
}

func storeKind(db *sql.DB) string {
	if db == nil {
		return "memory"
	}
	return "sqlite"
}
