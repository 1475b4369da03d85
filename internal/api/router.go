package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avendel/pokerledger/internal/api/handler"
	"github.com/avendel/pokerledger/internal/api/middleware"
	"github.com/avendel/pokerledger/internal/services/ledger"
	"github.com/avendel/pokerledger/internal/services/stats"
	syncservice "github.com/avendel/pokerledger/internal/services/sync"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	LedgerService ledger.ServiceInterface
	SyncService   *syncservice.Service
	StatsService  *stats.Service
	Gate          middleware.GateConfig
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	ledgerHandler := handler.NewLedgerHandler(cfg.LedgerService)
	syncHandler := handler.NewSyncHandler(cfg.SyncService)
	statsHandler := handler.NewStatsHandler(cfg.SyncService, cfg.StatsService)

	// Create middleware
	gateMiddleware := middleware.Gate(cfg.Gate, cfg.Logger)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes
	api.HandleFunc("/session", ledgerHandler.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/session/reset", ledgerHandler.ResetSession).Methods(http.MethodPost)

	// Player routes
	api.HandleFunc("/players", ledgerHandler.AddPlayer).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/name", ledgerHandler.RenamePlayer).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", ledgerHandler.RemovePlayer).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/transactions", ledgerHandler.PerformTransaction).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}/payout", ledgerHandler.AdjustPayout).Methods(http.MethodPost)

	// Remote persistence routes
	api.HandleFunc("/sync/save", syncHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/sync/load", syncHandler.Load).Methods(http.MethodPost)
	api.HandleFunc("/sync/snapshot", syncHandler.SaveSnapshot).Methods(http.MethodPost)
	api.HandleFunc("/snapshots", syncHandler.ListSnapshots).Methods(http.MethodGet)

	// Statistics routes sit behind the credential gate
	statsRoutes := api.PathPrefix("/stats").Subrouter()
	statsRoutes.Use(gateMiddleware)
	statsRoutes.HandleFunc("/lifetime", statsHandler.Lifetime).Methods(http.MethodGet)
	statsRoutes.HandleFunc("/games/{id}", statsHandler.Game).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
