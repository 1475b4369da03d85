package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avendel/pokerledger/internal/api/apierr"
	"github.com/avendel/pokerledger/internal/api/response"
	"github.com/avendel/pokerledger/internal/model"
	"github.com/avendel/pokerledger/internal/services/stats"
	syncservice "github.com/avendel/pokerledger/internal/services/sync"
)

// StatsHandler handles the statistics read endpoints
type StatsHandler struct {
	sync  *syncservice.Service
	stats *stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(syncService *syncservice.Service, statsService *stats.Service) *StatsHandler {
	return &StatsHandler{
		sync:  syncService,
		stats: statsService,
	}
}

// Lifetime handles GET /api/v1/stats/lifetime
func (h *StatsHandler) Lifetime(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.sync.Snapshots(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	results := h.stats.Lifetime(snapshots)

	out := make([]response.LifetimeStat, len(results))
	for i, s := range results {
		out[i] = response.LifetimeStatFromStat(s)
	}

	response.JSON(w, http.StatusOK, out)
}

// Game handles GET /api/v1/stats/games/{id}
func (h *StatsHandler) Game(w http.ResponseWriter, r *http.Request) {
	snapshotID := model.SnapshotID(mux.Vars(r)["id"])

	snapshot, err := h.sync.Snapshot(r.Context(), snapshotID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	results := h.stats.PerGame(snapshot)

	out := make([]response.PlayerNet, len(results))
	for i, n := range results {
		out[i] = response.PlayerNetFromStat(n)
	}

	response.JSON(w, http.StatusOK, out)
}
