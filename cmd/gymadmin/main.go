package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gymops/admin-console/internal/api"
	"gymops/admin-console/internal/config"
	"gymops/admin-console/internal/export"
	"gymops/admin-console/internal/logging"
	"gymops/admin-console/internal/session"

	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.FileName,
		LogToStdout:   cfg.Log.ToStdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	log.Debugf("configuration loaded, backend at %s", cfg.API.BaseURL)

	// --- Session ---
	// A token mirrored from a previous run restores the session without
	// asking the operator to log in again.
	store := session.NewStore(cfg.Session.TokenFile)
	store.Restore()

	// --- Backend Client ---
	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	backend := api.NewClient(cfg.API.BaseURL, httpClient, store)

	// --- Report Archive (optional) ---
	var archive export.Archiver
	if cfg.Export.Archive {
		archive, err = export.NewS3Archive(cfg.S3)
		if err != nil {
			log.Fatalf("could not initialize report archive: %v", err)
		}
		log.Debugf("report archive enabled, bucket %s", cfg.S3.BucketName)
	}
	exporter := export.NewPDFExporter(cfg.Export, archive)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := newConsole(cfg, store, backend, exporter, os.Stdin, os.Stdout)
	console.Run(ctx)
}
