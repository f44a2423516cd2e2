package player

import (
	"math"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/random"
)

// Yearly contract limits in $1000s, and the unit amounts are rounded to.
const (
	MinContract  = 500
	MaxContract  = 20000
	ContractUnit = 50
)

// GenContract computes the deal a player demands from his current ratings.
// The raw quality score 2*ovr+pot is halved and mapped linearly from the
// 120..210 range onto the contract band, then jittered. High-potential
// players want short deals so they can renegotiate; low-potential players
// can only ask for short ones.
func GenContract(lg *league.Context, rnd *random.Source, r *models.RatingsRow, randomizeExp bool) models.Contract {
	amount := ((2*float64(r.Ovr)+float64(r.Pot))*0.5-120)/(210-120)*(MaxContract-MinContract) + MinContract
	amount *= rnd.Gauss(1, 0.1)

	years := 5 - int(math.Round(float64(r.Pot-r.Ovr)/4))
	if years < 2 {
		years = 2
	}
	if r.Pot < 40 {
		years = 1
	} else if r.Pot < 50 {
		years = 2
	} else if r.Pot < 60 {
		years = 3
	}

	// Contracts generated when seeding a league get staggered expirations
	// so the whole roster doesn't hit free agency at once.
	if randomizeExp {
		years = rnd.Int(1, years)
	}

	if amount < MinContract {
		amount = MinContract
	} else if amount > MaxContract {
		amount = MaxContract
	}
	amount = ContractUnit * math.Round(amount/ContractUnit)

	return models.Contract{
		Amount: int(amount),
		Exp:    lg.Season + years - 1,
	}
}

// SetContract stores a contract on the player. When signed, it also commits
// one salary-ledger entry per covered season; this is the only path that
// creates ledger entries.
func SetContract(lg *league.Context, p *models.Player, contract models.Contract, signed bool) {
	p.Contract = contract
	if signed {
		for season := lg.Season; season <= contract.Exp; season++ {
			p.Salaries = append(p.Salaries, models.SalaryEntry{Season: season, Amount: contract.Amount})
		}
	}
}
