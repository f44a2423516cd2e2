package player

import (
	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/random"
)

// GenBaseMoods computes the per-team mood inputs to free agency from team
// hype, facilities spending, and market size, plus a noise term. The result
// is one [0, 1] reluctance value per team, before any player scaling.
func GenBaseMoods(lg *league.Context, rnd *random.Source, teams []models.Team) []float64 {
	moods := make([]float64, len(teams))
	span := float64(lg.NumTeams - 1)
	for i, t := range teams {
		// Exciting teams with good facilities in big markets are easier to
		// say yes to.
		mood := 1.0
		mood -= 0.4 * t.Hype
		mood -= 0.2 * (1 - float64(t.FacilitiesRank-1)/span)
		mood -= 0.2 * (t.Pop / 20)
		mood += rnd.Uniform(-0.2, 0.2)

		if mood < 0 {
			mood = 0
		} else if mood > 1 {
			mood = 1
		}
		moods[i] = mood
	}
	return moods
}

// AddToFreeAgents moves the player onto the free-agent list: his unsigned
// demanded contract, a per-team mood vector, and the free-agent sentinel
// team id are persisted together.
//
// Good players scale the base moods by how choosy their talent lets them be;
// below a combined ovr+pot of 80 every mood collapses to zero because
// marginal players take whatever offer comes.
func AddToFreeAgents(lg *league.Context, p *models.Player, contract models.Contract, baseMoods []float64) {
	r := p.CurrentRatings()

	// A deal struck after the trade deadline has to cover next season too.
	if lg.Phase > league.PhaseAfterTradeDeadline {
		contract.Exp++
	}

	mood := make([]float64, len(baseMoods))
	for i, base := range baseMoods {
		if r.Ovr+r.Pot < 80 {
			mood[i] = 0
			continue
		}
		m := base * float64(r.Ovr+r.Pot) / 100
		if m < 0 {
			m = 0
		} else if m > 1 {
			m = 1
		}
		mood[i] = m
	}

	SetContract(lg, p, contract, false)
	p.FreeAgentMood = mood
	p.Tid = league.TidFreeAgent
}
