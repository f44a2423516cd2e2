package player

import (
	"math"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/random"
)

// injuryEntry is one row of the weighted injury table. Weight is relative
// frequency; games is the base recovery time before modifiers.
type injuryEntry struct {
	injType string
	weight  float64
	games   float64
}

// Sprains and strains dominate; the long-recovery injuries sit in the tail.
var injuryTable = []injuryEntry{
	{"Sprained Ankle", 1404, 4},
	{"Strained Hamstring", 826, 5},
	{"Back Spasms", 817, 4},
	{"Bruised Knee", 664, 3},
	{"Sore Knee", 561, 4},
	{"Strained Groin", 473, 6},
	{"Bruised Thigh", 445, 2},
	{"Sprained Knee", 414, 10},
	{"Sprained Finger", 309, 2},
	{"Strained Calf", 269, 5},
	{"Plantar Fasciitis", 212, 12},
	{"Sprained Wrist", 181, 4},
	{"Broken Finger", 121, 14},
	{"Broken Nose", 87, 3},
	{"Broken Foot", 71, 30},
	{"Broken Hand", 64, 25},
	{"Torn Meniscus", 49, 35},
	{"Dislocated Shoulder", 38, 22},
	{"Fractured Leg", 17, 55},
	{"Torn ACL", 12, 82},
}

// injuryCumSum caches the running weight totals for the table draw.
var injuryCumSum = func() []float64 {
	sums := make([]float64, len(injuryTable))
	total := 0.0
	for i, e := range injuryTable {
		total += e.weight
		sums[i] = total
	}
	return sums
}()

// Injury draws an injury type and duration. Teams that spend more on their
// health staff (rank 1) cut expected recovery in half relative to the
// cheapest (rank NumTeams).
func Injury(lg *league.Context, rnd *random.Source, healthRank int) models.Injury {
	draw := rnd.Uniform(0, injuryCumSum[len(injuryCumSum)-1])
	idx := len(injuryTable) - 1
	for i, sum := range injuryCumSum {
		if sum >= draw {
			idx = i
			break
		}
	}

	healthFactor := 0.5 + 0.5*float64(healthRank-1)/float64(lg.NumTeams-1)
	games := injuryTable[idx].games * healthFactor * rnd.Uniform(0.25, 1.75)

	return models.Injury{
		Type:           injuryTable[idx].injType,
		GamesRemaining: int(math.Round(games)),
	}
}
