package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/tripsplit/docs"
	"github.com/fkhayef/tripsplit/internal/config"
	"github.com/fkhayef/tripsplit/internal/currency"
	"github.com/fkhayef/tripsplit/internal/display"
	"github.com/fkhayef/tripsplit/internal/ledger"
	"github.com/fkhayef/tripsplit/internal/settings"
	"github.com/fkhayef/tripsplit/internal/settlement"
	"github.com/fkhayef/tripsplit/pkg/logging"
	mw "github.com/fkhayef/tripsplit/pkg/middleware"
	"github.com/fkhayef/tripsplit/pkg/response"
)

// @title        TripSplit API
// @version      1.0
// @description  Shared trip expense splitting with currency normalization and greedy minimal settlement transfers.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	pair := currency.Pair{Home: cfg.HomeCurrency, Foreign: cfg.ForeignCurrency}

	formatter, err := display.New(pair)
	if err != nil {
		slog.Error("Invalid currency configuration", "error", err)
		os.Exit(1)
	}

	// Settings feature (mutable exchange rate + display currency)
	settingsStore := settings.NewStore(cfg.DefaultExchangeRate, pair)
	settingsHandler := settings.NewHandler(settingsStore)

	// Ledger feature
	ledgerRepo := ledger.NewRepository()
	ledgerService := ledger.NewService(ledgerRepo, cfg.Members, cfg.Categories, pair, settingsStore)
	ledgerHandler := ledger.NewHandler(ledgerService)

	// Settlement feature (stateless recompute over the ledger)
	settlementService := settlement.NewService(ledgerRepo, cfg.Members)
	settlementHandler := settlement.NewHandler(settlementService, formatter, settingsStore)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/expenses", ledgerHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/settings", settingsHandler.Routes())

		// Closed vocabularies, fixed at startup
		r.Get("/members", func(w http.ResponseWriter, req *http.Request) {
			response.JSON(w, http.StatusOK, ledgerService.Members())
		})
		r.Get("/categories", func(w http.ResponseWriter, req *http.Request) {
			response.JSON(w, http.StatusOK, ledgerService.Categories())
		})
	})

	slog.Info("Server starting", "port", cfg.Port, "members", cfg.Members, "home", cfg.HomeCurrency, "foreign", cfg.ForeignCurrency)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
