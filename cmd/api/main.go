package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/sungheeyun-bit/tracker/internal/category"
	categoryStore "github.com/sungheeyun-bit/tracker/internal/category/store"
	"github.com/sungheeyun-bit/tracker/internal/config"
	"github.com/sungheeyun-bit/tracker/internal/database"
	"github.com/sungheeyun-bit/tracker/internal/export"
	trackerHttp "github.com/sungheeyun-bit/tracker/internal/http"
	categoryHandler "github.com/sungheeyun-bit/tracker/internal/http/category"
	exportHandler "github.com/sungheeyun-bit/tracker/internal/http/export"
	importHandler "github.com/sungheeyun-bit/tracker/internal/http/importcsv"
	settingsHandler "github.com/sungheeyun-bit/tracker/internal/http/settings"
	statsHandler "github.com/sungheeyun-bit/tracker/internal/http/stats"
	txHandler "github.com/sungheeyun-bit/tracker/internal/http/transaction"
	"github.com/sungheeyun-bit/tracker/internal/importer"
	"github.com/sungheeyun-bit/tracker/internal/money"
	"github.com/sungheeyun-bit/tracker/internal/settings"
	settingsStore "github.com/sungheeyun-bit/tracker/internal/settings/store"
	"github.com/sungheeyun-bit/tracker/internal/stats"
	statsStore "github.com/sungheeyun-bit/tracker/internal/stats/store"
	"github.com/sungheeyun-bit/tracker/internal/transaction"
	txStore "github.com/sungheeyun-bit/tracker/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		currencies         = money.NewCache()
		categoryService    = category.NewService(categoryStore.New(db))
		transactionService = transaction.NewService(txStore.New(db), categoryService)
		settingsService    = settings.NewService(settingsStore.New(db), currencies)
		statsService       = stats.NewService(statsStore.New(db))
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService, settingsService)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		statsH       = statsHandler.NewHandler(statsService)
		settingsH    = settingsHandler.NewHandler(settingsService)
		importH      = importHandler.NewHandler(importService, transactionService)
		exportH      = exportHandler.NewHandler(exportService)
	)

	router := trackerHttp.New(trackerHttp.Config{
		AuthSecret:     cfg.Auth.Secret,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	}, transactionH, categoryH, statsH, settingsH, importH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.Timeout,
		WriteTimeout: cfg.HTTP.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
