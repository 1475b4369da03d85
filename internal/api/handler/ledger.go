package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avendel/pokerledger/internal/api/apierr"
	"github.com/avendel/pokerledger/internal/api/request"
	"github.com/avendel/pokerledger/internal/api/response"
	"github.com/avendel/pokerledger/internal/model"
	"github.com/avendel/pokerledger/internal/services/ledger"
)

// LedgerHandler handles session and player endpoints
type LedgerHandler struct {
	ledger ledger.ServiceInterface
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerService ledger.ServiceInterface) *LedgerHandler {
	return &LedgerHandler{
		ledger: ledgerService,
	}
}

// GetSession handles GET /api/v1/session
func (h *LedgerHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session := h.ledger.Session()
	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// ResetSession handles POST /api/v1/session/reset
func (h *LedgerHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.ledger.ResetGame(r.Context())
	response.NoContent(w)
}

// AddPlayer handles POST /api/v1/players
func (h *LedgerHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.ledger.AddPlayer(r.Context(), req.Name, req.BuyIn)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// RenamePlayer handles PATCH /api/v1/players/{id}/name
func (h *LedgerHandler) RenamePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["id"])

	var req request.RenamePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.ledger.EditPlayerName(r.Context(), playerID, req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// RemovePlayer handles DELETE /api/v1/players/{id}
func (h *LedgerHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["id"])

	if err := h.ledger.RemovePlayer(r.Context(), playerID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// PerformTransaction handles POST /api/v1/players/{id}/transactions
func (h *LedgerHandler) PerformTransaction(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["id"])

	var req request.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	tx, err := h.ledger.PerformTransaction(r.Context(), playerID, model.TransactionType(req.Type), req.Amount)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TransactionFromModel(tx))
}

// AdjustPayout handles POST /api/v1/players/{id}/payout
func (h *LedgerHandler) AdjustPayout(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["id"])

	var req request.PayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	tx, err := h.ledger.AdjustPayout(r.Context(), playerID, req.Adjustment)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TransactionFromModel(tx))
}
