package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/avendel/pokerledger/internal/dependencies/clock"
	"github.com/avendel/pokerledger/internal/services/ledger"
	"github.com/avendel/pokerledger/internal/services/stats"
	syncservice "github.com/avendel/pokerledger/internal/services/sync"
	"github.com/avendel/pokerledger/internal/storage"
	"github.com/avendel/pokerledger/internal/storage/memory"
	redisstorage "github.com/avendel/pokerledger/internal/storage/redis"
	"github.com/avendel/pokerledger/internal/storage/sqlite"
)

// Local storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Local  storage.SessionStore
	Remote storage.SnapshotStore // nil when no remote store is configured

	// External dependencies
	Clock clock.Clock

	// Services
	LedgerService *ledger.Service
	SyncService   *syncservice.Service
	StatsService  *stats.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the local mirror backend ("memory" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// SQLitePath is the database path (required if StorageType is "sqlite")
	SQLitePath string
	// RedisConfig holds remote store settings. If nil, no remote store is
	// configured and remote operations fail with an explicit error.
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Local mirror
	var local storage.SessionStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		local = memory.New()
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		local = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'sqlite'")
	}

	// Remote store is optional; absence is a detectable condition, not an error
	var remote storage.SnapshotStore
	if cfg.RedisConfig != nil {
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		remote = redisStore
	}

	clk := clock.New()

	return NewWithDependencies(ctx, local, remote, clk, logger), nil
}

// NewWithDependencies creates an App with the given dependencies (useful for testing)
func NewWithDependencies(ctx context.Context, local storage.SessionStore, remote storage.SnapshotStore, clk clock.Clock, logger *slog.Logger) *App {
	ledgerService := ledger.New(ctx, local, clk, logger)
	syncService := syncservice.New(ledgerService, remote, clk, logger)
	statsService := stats.New(logger)

	return &App{
		Local:         local,
		Remote:        remote,
		Clock:         clk,
		LedgerService: ledgerService,
		SyncService:   syncService,
		StatsService:  statsService,
	}
}
