package stats

import (
	"log/slog"
	"sort"

	"github.com/avendel/pokerledger/internal/model"
)

// Service aggregates saved snapshots into per-game and lifetime views.
// It holds no mutable state: given the same snapshots it always produces
// the same output.
type Service struct {
	logger *slog.Logger
}

// New creates a new statistics service
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// PlayerNet is one player's result within a single snapshot
type PlayerNet struct {
	PlayerName string
	NetValue   float64
}

// LifetimeStat is one player's accumulated result across all snapshots,
// grouped by exact display name.
type LifetimeStat struct {
	PlayerName            string
	GamesPlayed           int
	TotalNetValueAllGames float64
}

// PerGame computes each player's net value for one snapshot, sorted
// descending by net value. Malformed player entries are skipped.
func (s *Service) PerGame(snapshot *model.Snapshot) []PlayerNet {
	results := make([]PlayerNet, 0, len(snapshot.Players))
	for _, p := range snapshot.Players {
		name, ok := p.Name.(string)
		if !ok || name == "" {
			s.logger.Warn("skipping malformed player entry in snapshot",
				slog.String("snapshot_id", string(snapshot.ID)),
			)
			continue
		}
		results = append(results, PlayerNet{
			PlayerName: name,
			NetValue:   ResolveNetValue(p),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].NetValue > results[j].NetValue
	})

	return results
}

// Lifetime folds every snapshot into per-player accumulated stats, grouped
// by exact display name and sorted descending by total net value. Malformed
// player entries are skipped with a warning, never fatal. GamesPlayed counts
// snapshots containing the name, so a name duplicated within one snapshot
// still counts a single game.
func (s *Service) Lifetime(snapshots []*model.Snapshot) []LifetimeStat {
	byName := make(map[string]*LifetimeStat)
	order := []string{}

	for _, snapshot := range snapshots {
		seen := make(map[string]bool)
		for _, p := range snapshot.Players {
			name, ok := p.Name.(string)
			if !ok || name == "" {
				s.logger.Warn("skipping malformed player entry in snapshot",
					slog.String("snapshot_id", string(snapshot.ID)),
				)
				continue
			}

			stat, exists := byName[name]
			if !exists {
				stat = &LifetimeStat{PlayerName: name}
				byName[name] = stat
				order = append(order, name)
			}
			if !seen[name] {
				seen[name] = true
				stat.GamesPlayed++
			}
			stat.TotalNetValueAllGames += ResolveNetValue(p)
		}
	}

	results := make([]LifetimeStat, 0, len(byName))
	for _, name := range order {
		results = append(results, *byName[name])
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalNetValueAllGames > results[j].TotalNetValueAllGames
	})

	return results
}
