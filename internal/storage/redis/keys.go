package redis

import (
	"fmt"

	"github.com/avendel/pokerledger/internal/model"
)

// Key prefix for all ledger data
const keyPrefix = "pokerledger"

// currentSessionKey returns the key of the fixed current-session document
func currentSessionKey() string {
	return fmt.Sprintf("%s:session:current", keyPrefix)
}

// snapshotKey returns the key for a historical snapshot
func snapshotKey(id model.SnapshotID) string {
	return fmt.Sprintf("%s:snapshot:%s", keyPrefix, id)
}

// snapshotIndexKey returns the key of the SET indexing all snapshots
func snapshotIndexKey() string {
	return fmt.Sprintf("%s:idx:snapshots", keyPrefix)
}
