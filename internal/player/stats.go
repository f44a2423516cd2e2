package player

import (
	"fmt"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
)

// AddStatsRow opens an empty cumulative stats row for the player's current
// team and season. A duplicate (season, team, playoffs) triple is a caller
// bug and surfaces immediately rather than corrupting aggregation later.
func AddStatsRow(lg *league.Context, p *models.Player, playoffs bool) error {
	for _, s := range p.Stats {
		if s.Season == lg.Season && s.Tid == p.Tid && s.Playoffs == playoffs {
			return fmt.Errorf("player %d already has a stats row for season %d, tid %d, playoffs %v",
				p.ID, lg.Season, p.Tid, playoffs)
		}
	}

	p.Stats = append(p.Stats, models.StatsRow{
		Season:   lg.Season,
		Tid:      p.Tid,
		Playoffs: playoffs,
	})
	if !p.HasStatsTid(p.Tid) {
		p.StatsTids = append(p.StatsTids, p.Tid)
	}
	return nil
}
