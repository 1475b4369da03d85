package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avendel/pokerledger/internal/api"
	"github.com/avendel/pokerledger/internal/api/apierr"
	"github.com/avendel/pokerledger/internal/api/middleware"
	"github.com/avendel/pokerledger/internal/api/response"
	"github.com/avendel/pokerledger/internal/dependencies/mocks"
	"github.com/avendel/pokerledger/internal/factory"
	"github.com/avendel/pokerledger/internal/storage/memory"
	"github.com/avendel/pokerledger/internal/testutil"
)

const (
	testUser = "admin"
	testPass = "letmein"
)

type testServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewWithDependencies(
		context.Background(),
		memory.New(),
		memory.New(),
		mocks.NewMockClock(time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)),
		testutil.NopLogger(),
	)

	handler := api.NewRouter(api.RouterConfig{
		Logger:        testutil.NopLogger(),
		LedgerService: app.LedgerService,
		SyncService:   app.SyncService,
		StatsService:  app.StatsService,
		Gate: middleware.GateConfig{
			Username:           testUser,
			Password:           testPass,
			InternalHostSuffix: ".internal",
		},
	})

	return &testServer{t: t, handler: handler, app: app}
}

type requestOpts struct {
	basicAuth bool
	user      string
	pass      string
	host      string
}

func (ts *testServer) do(method, path string, body any, opts requestOpts) *httptest.ResponseRecorder {
	ts.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if opts.basicAuth {
		req.SetBasicAuth(opts.user, opts.pass)
	}
	if opts.host != "" {
		req.Host = opts.host
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	return ts.do(method, path, body, requestOpts{})
}

func decodeInto[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	return decodeInto[apierr.ErrorResponse](t, rec).Error
}

func (ts *testServer) addPlayer(name string, buyIn int) response.Player {
	ts.t.Helper()
	rec := ts.request(http.MethodPost, "/api/v1/players", map[string]any{
		"name": name, "buy_in": buyIn,
	})
	require.Equal(ts.t, http.StatusCreated, rec.Code)
	return decodeInto[response.Player](ts.t, rec)
}

// Health

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// Players

func TestAddPlayer(t *testing.T) {
	ts := newTestServer(t)

	player := ts.addPlayer("Alice", 500)
	assert.NotEmpty(t, player.ID)
	assert.Equal(t, "Alice", player.Name)
	assert.Equal(t, 500, player.Chips)
	assert.Equal(t, 500, player.TotalInvested)
}

func TestAddPlayerDuplicateName(t *testing.T) {
	ts := newTestServer(t)
	ts.addPlayer("Alice", 500)

	rec := ts.request(http.MethodPost, "/api/v1/players", map[string]any{
		"name": "alice", "buy_in": 300,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apierr.CodeDuplicateName, decodeError(t, rec).Code)
}

func TestAddPlayerInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rec).Code)
}

func TestAddPlayerInvalidAmount(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodPost, "/api/v1/players", map[string]any{
		"name": "Alice", "buy_in": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidAmount, decodeError(t, rec).Code)
}

func TestRenamePlayer(t *testing.T) {
	ts := newTestServer(t)
	player := ts.addPlayer("Alice", 500)

	rec := ts.request(http.MethodPatch, "/api/v1/players/"+player.ID+"/name", map[string]any{
		"name": "Alicia",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alicia", decodeInto[response.Player](t, rec).Name)

	// Past transactions carry the new name
	session := decodeInto[response.Session](t, ts.request(http.MethodGet, "/api/v1/session", nil))
	require.Len(t, session.Transactions, 1)
	assert.Equal(t, "Alicia", session.Transactions[0].PlayerName)
}

func TestRemovePlayer(t *testing.T) {
	ts := newTestServer(t)
	player := ts.addPlayer("Alice", 500)
	ts.addPlayer("Bob", 300)

	rec := ts.request(http.MethodDelete, "/api/v1/players/"+player.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	session := decodeInto[response.Session](t, ts.request(http.MethodGet, "/api/v1/session", nil))
	assert.Len(t, session.Players, 1)
	// Departed money stays in the pot
	assert.Equal(t, 800, session.TotalPot)
}

func TestRemovePlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodDelete, "/api/v1/players/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, decodeError(t, rec).Code)
}

// Transactions

func TestRebuyTransaction(t *testing.T) {
	ts := newTestServer(t)
	player := ts.addPlayer("Alice", 500)

	rec := ts.request(http.MethodPost, "/api/v1/players/"+player.ID+"/transactions", map[string]any{
		"type": "rebuy", "amount": 1000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	tx := decodeInto[response.Transaction](t, rec)
	assert.Equal(t, "rebuy", tx.Type)
	assert.Equal(t, 1000, tx.Amount)
	assert.Equal(t, 1500, tx.BalanceAfter)
}

func TestCutTransaction(t *testing.T) {
	ts := newTestServer(t)
	player := ts.addPlayer("Alice", 500)

	rec := ts.request(http.MethodPost, "/api/v1/players/"+player.ID+"/transactions", map[string]any{
		"type": "cut", "amount": 300,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 200, decodeInto[response.Transaction](t, rec).BalanceAfter)
}

func TestCutExceedingChips(t *testing.T) {
	ts := newTestServer(t)
	player := ts.addPlayer("Alice", 500)

	rec := ts.request(http.MethodPost, "/api/v1/players/"+player.ID+"/transactions", map[string]any{
		"type": "cut", "amount": 600,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apierr.CodeCutExceedsChips, decodeError(t, rec).Code)
}

func TestTransactionUnknownType(t *testing.T) {
	ts := newTestServer(t)
	player := ts.addPlayer("Alice", 500)

	rec := ts.request(http.MethodPost, "/api/v1/players/"+player.ID+"/transactions", map[string]any{
		"type": "buy-in", "amount": 100,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierr.CodeInvalidTransaction, decodeError(t, rec).Code)
}

func TestPayoutAdjustment(t *testing.T) {
	ts := newTestServer(t)
	player := ts.addPlayer("Alice", 500)

	rec := ts.request(http.MethodPost, "/api/v1/players/"+player.ID+"/payout", map[string]any{
		"adjustment": -200,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	tx := decodeInto[response.Transaction](t, rec)
	assert.Equal(t, "payout_adjustment", tx.Type)
	assert.Equal(t, 200, tx.Amount)
	assert.Equal(t, 300, tx.BalanceAfter)

	// Pot is unchanged by payout adjustments
	session := decodeInto[response.Session](t, ts.request(http.MethodGet, "/api/v1/session", nil))
	assert.Equal(t, 500, session.TotalPot)
}

// Session

func TestGetSessionEmpty(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	session := decodeInto[response.Session](t, rec)
	assert.Empty(t, session.Players)
	assert.Empty(t, session.Transactions)
	assert.Zero(t, session.TotalPot)
}

func TestResetSession(t *testing.T) {
	ts := newTestServer(t)
	ts.addPlayer("Alice", 500)

	rec := ts.request(http.MethodPost, "/api/v1/session/reset", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	session := decodeInto[response.Session](t, ts.request(http.MethodGet, "/api/v1/session", nil))
	assert.Empty(t, session.Players)
	assert.Zero(t, session.TotalPot)
}

// Sync

func TestSyncSaveAndLoad(t *testing.T) {
	ts := newTestServer(t)
	ts.addPlayer("Alice", 500)

	rec := ts.request(http.MethodPost, "/api/v1/sync/save", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	saved := decodeInto[response.SyncResult](t, rec)
	assert.Len(t, saved.Session.Players, 1)
	assert.False(t, saved.SyncedAt.IsZero())

	// Wipe local state, then restore it from the remote document
	ts.request(http.MethodPost, "/api/v1/session/reset", nil)

	rec = ts.request(http.MethodPost, "/api/v1/sync/load", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	session := decodeInto[response.Session](t, ts.request(http.MethodGet, "/api/v1/session", nil))
	assert.Len(t, session.Players, 1)
	assert.Equal(t, 500, session.TotalPot)
}

func TestSyncLoadNothingSaved(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodPost, "/api/v1/sync/load", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierr.CodeNothingToLoad, decodeError(t, rec).Code)
}

func TestSyncWithoutRemote(t *testing.T) {
	app := factory.NewWithDependencies(
		context.Background(),
		memory.New(),
		nil,
		mocks.NewMockClock(time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)),
		testutil.NopLogger(),
	)
	handler := api.NewRouter(api.RouterConfig{
		Logger:        testutil.NopLogger(),
		LedgerService: app.LedgerService,
		SyncService:   app.SyncService,
		StatsService:  app.StatsService,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/save", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apierr.CodeRemoteUnavailable, decodeError(t, rec).Code)
}

func TestSnapshotsListing(t *testing.T) {
	ts := newTestServer(t)
	ts.addPlayer("Alice", 500)
	ts.addPlayer("Bob", 300)

	rec := ts.request(http.MethodPost, "/api/v1/sync/snapshot", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	summary := decodeInto[response.SnapshotSummary](t, rec)
	assert.NotEmpty(t, summary.ID)
	assert.Equal(t, 2, summary.Players)
	assert.Equal(t, 800, summary.TotalPot)

	rec = ts.request(http.MethodGet, "/api/v1/snapshots", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	listed := decodeInto[[]response.SnapshotSummary](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, summary.ID, listed[0].ID)
}

// Statistics gate

func TestStatsRequireCredentials(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/v1/stats/lifetime", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apierr.CodeUnauthorized, decodeError(t, rec).Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestStatsRejectBadCredentials(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/stats/lifetime", nil, requestOpts{
		basicAuth: true, user: testUser, pass: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStatsWithCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.addPlayer("Alice", 500)

	rec := ts.request(http.MethodPost, "/api/v1/sync/snapshot", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(http.MethodGet, "/api/v1/stats/lifetime", nil, requestOpts{
		basicAuth: true, user: testUser, pass: testPass,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	results := decodeInto[[]response.LifetimeStat](t, rec)
	require.Len(t, results, 1)
	assert.Equal(t, "Alice", results[0].PlayerName)
	assert.Equal(t, 1, results[0].GamesPlayed)
	// Chips still equal investment mid-game, so net is zero
	assert.Zero(t, results[0].TotalNetValueAllGames)
}

func TestStatsPerGame(t *testing.T) {
	ts := newTestServer(t)
	player := ts.addPlayer("Alice", 500)

	// End the game up 200 via a payout adjustment
	rec := ts.request(http.MethodPost, "/api/v1/players/"+player.ID+"/payout", map[string]any{
		"adjustment": 200,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.request(http.MethodPost, "/api/v1/sync/snapshot", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	snapshotID := decodeInto[response.SnapshotSummary](t, rec).ID

	rec = ts.do(http.MethodGet, fmt.Sprintf("/api/v1/stats/games/%s", snapshotID), nil, requestOpts{
		basicAuth: true, user: testUser, pass: testPass,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	results := decodeInto[[]response.PlayerNet](t, rec)
	require.Len(t, results, 1)
	assert.Equal(t, "Alice", results[0].PlayerName)
	assert.Equal(t, 200.0, results[0].NetValue)
}

func TestStatsUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/stats/games/nope", nil, requestOpts{
		basicAuth: true, user: testUser, pass: testPass,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierr.CodeSnapshotNotFound, decodeError(t, rec).Code)
}

func TestStatsInternalHostBypass(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/stats/lifetime", nil, requestOpts{
		host: "ledger.internal:8080",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatsGateNotConfigured(t *testing.T) {
	app := factory.NewWithDependencies(
		context.Background(),
		memory.New(),
		memory.New(),
		mocks.NewMockClock(time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)),
		testutil.NopLogger(),
	)
	handler := api.NewRouter(api.RouterConfig{
		Logger:        testutil.NopLogger(),
		LedgerService: app.LedgerService,
		SyncService:   app.SyncService,
		StatsService:  app.StatsService,
		// Gate left unconfigured
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/lifetime", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, apierr.CodeAuthNotConfigured, resp.Error.Code)
}
