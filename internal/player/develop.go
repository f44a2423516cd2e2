package player

import (
	"math"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/random"
)

// DevelopOptions tunes a Develop call. The zero value is not useful; use
// DefaultDevelopOptions.
type DevelopOptions struct {
	Years int
	// Generation back-dates the birth year so a freshly generated player
	// ends up exactly Years older than the current season implies.
	Generation   bool
	CoachingRank float64
}

// DefaultDevelopOptions advances one year under league-average coaching.
func DefaultDevelopOptions() DevelopOptions {
	return DevelopOptions{Years: 1, CoachingRank: 15.5}
}

// Develop advances the player's current ratings row through one or more
// simulated years of growth and decline. Only the last ratings row is
// touched; callers append a new row first when starting a season.
func Develop(lg *league.Context, rnd *random.Source, p *models.Player, opts DevelopOptions) {
	r := p.CurrentRatings()
	age := lg.Season - p.BornYear

	for i := 0; i < opts.Years; i++ {
		age++

		// A rare early-career leap: young players occasionally discover a
		// whole new ceiling.
		if rnd.Float64() > 0.985 && age < 22 {
			r.Pot += 10
		}

		// Change variance scales with untapped potential.
		sigma := float64(r.Pot-r.Ovr) / 10

		baseChange := rnd.Gauss(float64(rnd.Int(-1, 2)), sigma)
		if baseChange > 30 {
			baseChange = 30
		} else if baseChange < -5 {
			baseChange = -5
		}
		if baseChange+float64(r.Pot) > 95 {
			baseChange = 95 - float64(r.Pot)
		}

		// Untapped potential amplifies growth but never softens decline.
		if baseChange > 0 {
			baseChange *= 1 + float64(r.Pot-r.Ovr)/8
		}

		if age > 23 {
			baseChange /= 3
		}
		if age > 29 {
			baseChange--
		}
		if age > 31 {
			baseChange--
		}
		if age > 33 {
			baseChange--
		}

		baseChange *= coachingFactor(lg, opts.CoachingRank)

		for _, d := range models.SkillDims {
			r.SetRating(d, limitRating(float64(r.Rating(d))+baseChange*rnd.Gauss(1, 2)))
		}

		r.Ovr = Ovr(r)
		r.Pot += -2 + int(math.Round(rnd.Gauss(0, 2)))
		if r.Pot > 100 {
			r.Pot = 100
		} else if r.Pot < 0 {
			r.Pot = 0
		}
		if r.Ovr > r.Pot || age > 28 {
			r.Pot = r.Ovr
		}

		r.Skills = Skills(r)
	}

	// The last iteration orders pot drift after the ovr update, which can
	// leave pot below ovr for players right at the youth boundary. Check
	// once more outside the loop.
	if r.Ovr > r.Pot || age > 28 {
		r.Pot = r.Ovr
	}

	if opts.Generation {
		age = lg.Season - p.BornYear + opts.Years
		p.BornYear = lg.Season - age
	}
}

// coachingFactor maps a 1..NumTeams coaching rank onto a 1.25x (best) to
// 0.75x (worst) development multiplier.
func coachingFactor(lg *league.Context, rank float64) float64 {
	return 1.25 - 0.5*(rank-1)/float64(lg.NumTeams-1)
}

// Bonus adds a flat delta to every skill dimension and to potential, then
// regenerates and signs a fresh contract from the improved ratings. It is
// only used when seeding a new league, to spread quality across rosters.
func Bonus(lg *league.Context, rnd *random.Source, p *models.Player, amount int, randomizeExp bool) {
	r := p.CurrentRatings()
	age := lg.Season - p.BornYear

	for _, d := range models.SkillDims {
		r.SetRating(d, limitRating(float64(r.Rating(d)+amount)))
	}
	r.Pot += amount
	if r.Pot > 100 {
		r.Pot = 100
	} else if r.Pot < 0 {
		r.Pot = 0
	}

	r.Ovr = Ovr(r)
	if r.Ovr > r.Pot || age > 28 {
		r.Pot = r.Ovr
	}
	r.Skills = Skills(r)

	SetContract(lg, p, GenContract(lg, rnd, r, randomizeExp), true)
}
