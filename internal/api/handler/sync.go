package handler

import (
	"net/http"

	"github.com/avendel/pokerledger/internal/api/apierr"
	"github.com/avendel/pokerledger/internal/api/response"
	syncservice "github.com/avendel/pokerledger/internal/services/sync"
)

// SyncHandler handles remote persistence endpoints
type SyncHandler struct {
	sync *syncservice.Service
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService *syncservice.Service) *SyncHandler {
	return &SyncHandler{
		sync: syncService,
	}
}

// Save handles POST /api/v1/sync/save
func (h *SyncHandler) Save(w http.ResponseWriter, r *http.Request) {
	doc, err := h.sync.Save(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SyncResultFromDocument(doc))
}

// Load handles POST /api/v1/sync/load
func (h *SyncHandler) Load(w http.ResponseWriter, r *http.Request) {
	doc, err := h.sync.Load(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SyncResultFromDocument(doc))
}

// SaveSnapshot handles POST /api/v1/sync/snapshot
func (h *SyncHandler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.sync.SaveSnapshot(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SnapshotSummaryFromModel(snapshot))
}

// ListSnapshots handles GET /api/v1/snapshots
func (h *SyncHandler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.sync.Snapshots(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	summaries := make([]response.SnapshotSummary, len(snapshots))
	for i, s := range snapshots {
		summaries[i] = response.SnapshotSummaryFromModel(s)
	}

	response.JSON(w, http.StatusOK, summaries)
}
