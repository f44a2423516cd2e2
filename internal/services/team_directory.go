package services

import (
	"context"
	"sync"

	"github.com/courtside-dev/roster-sim/internal/player"
	"github.com/courtside-dev/roster-sim/internal/store"
)

// TeamDirectory is an in-memory team-metadata lookup for the filter engine.
// Team names change rarely, so it loads once and refreshes on demand.
type TeamDirectory struct {
	teams store.TeamStore

	mu    sync.RWMutex
	infos map[int]player.TeamInfo
}

func NewTeamDirectory(teams store.TeamStore) *TeamDirectory {
	return &TeamDirectory{
		teams: teams,
		infos: make(map[int]player.TeamInfo),
	}
}

// Reload pulls fresh team metadata from the store.
func (d *TeamDirectory) Reload(ctx context.Context) error {
	teams, err := d.teams.All(ctx)
	if err != nil {
		return err
	}

	infos := make(map[int]player.TeamInfo, len(teams))
	for _, t := range teams {
		infos[t.ID] = player.TeamInfo{Abbrev: t.Abbrev, Region: t.Region, Name: t.Name}
	}

	d.mu.Lock()
	d.infos = infos
	d.mu.Unlock()
	return nil
}

// TeamInfo implements player.TeamLookup.
func (d *TeamDirectory) TeamInfo(tid int) (player.TeamInfo, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	info, ok := d.infos[tid]
	return info, ok
}
