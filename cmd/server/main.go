package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/api"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/backup"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/config"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/database"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/report"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/service"
	"github.com/smaghautsulibaad13-svg/laporan-keuangan/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the configured store backend
	var ledgerStore store.Store
	var storePath string
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		db, err := database.Open(cfg.Store.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		ledgerStore = store.NewSQLiteStore(db)
		storePath = cfg.Store.DBPath
	default:
		ledgerStore = store.NewXLSXStore(cfg.Store.Path, cfg.Store.DefaultPartition)
		storePath = cfg.Store.Path
	}

	log.Printf("Using %s store: %s", cfg.Store.Backend, storePath)

	// Create services
	compiler := report.NewCompiler(cfg.Report.City, cfg.Report.IssuerName, cfg.Report.ReceiverName)
	ledgerService := service.NewLedgerService(ledgerStore, compiler, cfg.Store.DefaultPartition)
	systemService := service.NewSystemService(ledgerStore, cfg.Store.Backend)

	// Optional scheduled store backups
	if cfg.Backup.Schedule != "" {
		snapshotter := backup.NewSnapshotter(storePath, cfg.Backup.Dir)
		if err := snapshotter.Start(cfg.Backup.Schedule); err != nil {
			log.Fatalf("Failed to start backup scheduler: %v", err)
		}
		defer snapshotter.Stop()
	}

	// Create router
	router := api.NewRouter(systemService, ledgerService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
