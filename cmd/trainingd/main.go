// Package main provides the training registry server binary: it wires the
// ledger, the admin selector, optional roster seeding, and the HTTP API.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/PranjalBasak/446-Project-1/internal/config"
	"github.com/PranjalBasak/446-Project-1/internal/entropy"
	"github.com/PranjalBasak/446-Project-1/internal/httpapi"
	"github.com/PranjalBasak/446-Project-1/internal/ledger"
	"github.com/PranjalBasak/446-Project-1/internal/observability"
	"github.com/PranjalBasak/446-Project-1/internal/roster"
	"github.com/PranjalBasak/446-Project-1/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "trainingd")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	selector := ledger.NewSelector(entropy.NewCryptoSource())
	store := ledger.New(selector, logger)

	if cfg.Ledger.RosterFile != "" {
		seedStart := time.Now()
		count, err := roster.LoadFile(cfg.Ledger.RosterFile, store)
		if err != nil {
			logger.Fatal("seeding roster", zap.Error(err))
		}
		logger.Info("roster seeded",
			zap.String("file", cfg.Ledger.RosterFile),
			zap.Int("actors", count),
			zap.Duration("elapsed", time.Since(seedStart)),
		)
	}

	handler := httpapi.NewHandler(store, logger)
	router := httpapi.NewRouter(handler, logger)

	httpSrv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("starting training registry",
		zap.String("addr", cfg.Server.Addr()),
	)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("http", &server.HTTPService{
		Server:          httpSrv,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Error("lifecycle terminated with error", zap.Error(err))
		os.Exit(1)
	}
}
