package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/shopfwd/shopfwd/internal/config"
	"github.com/shopfwd/shopfwd/internal/database"
	"github.com/shopfwd/shopfwd/internal/evidence"
	evidenceStore "github.com/shopfwd/shopfwd/internal/evidence/store"
	shopfwdHttp "github.com/shopfwd/shopfwd/internal/http"
	evidenceHandler "github.com/shopfwd/shopfwd/internal/http/evidence"
	importHandler "github.com/shopfwd/shopfwd/internal/http/importcsv"
	verificationHandler "github.com/shopfwd/shopfwd/internal/http/verification"
	"github.com/shopfwd/shopfwd/internal/importer"
	"github.com/shopfwd/shopfwd/internal/invalidate"
	"github.com/shopfwd/shopfwd/internal/notify"
	"github.com/shopfwd/shopfwd/internal/verification"
	verificationStore "github.com/shopfwd/shopfwd/internal/verification/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns, cfg.DB.MaxIdleConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	bus := invalidate.NewBus()
	bus.Subscribe(func(sig invalidate.Signal) {
		slog.Info("cache invalidated", "order_id", sig.OrderID, "queue_key", sig.QueueKey)
	})

	evStore := evidenceStore.New(db)

	var (
		evidenceService     = evidence.NewService(evStore)
		notifier            = notify.NewDispatcher(cfg.Notify.BaseURL, cfg.Notify.Token)
		verificationService = verification.NewService(verificationStore.New(db), notifier, bus)
		importService       = importer.NewService(evStore)
	)

	var (
		evidenceH     = evidenceHandler.NewHandler(evidenceService)
		verificationH = verificationHandler.NewHandler(verificationService)
		importH       = importHandler.NewHandler(importService)
	)

	router := shopfwdHttp.New(evidenceH, verificationH, importH, cfg.Server.AllowedOrigins, cfg.Auth.JWTSecret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
