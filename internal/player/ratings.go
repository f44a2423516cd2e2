// Package player implements the player-modeling core: rating generation and
// development, contract and free-agency economics, injuries, and the
// filter/aggregation engine that shapes raw season records for display.
package player

import (
	"math"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/random"
)

// limitRating clamps a raw score into the [0, 100] rating scale, flooring
// fractional values.
func limitRating(v float64) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

// Ovr is the overall rating: the rounded mean of all 15 dimensions.
func Ovr(r *models.RatingsRow) int {
	sum := 0
	for _, d := range models.AllDims {
		sum += r.Rating(d)
	}
	return int(math.Round(float64(sum) / float64(len(models.AllDims))))
}

// skillDef is one weighted-threshold skill category. A missing weight
// defaults to 1.
type skillDef struct {
	label      string
	components []models.Dim
	weights    []float64
}

// skillDefs are checked in declaration order, which fixes the order of the
// returned tag set. The asymmetric weightings (notably the three-point
// shooter's 0.2 on height) are load-bearing for game balance.
var skillDefs = []skillDef{
	{"3", []models.Dim{models.DimHgt, models.DimTP}, []float64{0.2, 1}},
	{"A", []models.Dim{models.DimStre, models.DimSpd, models.DimJmp, models.DimHgt}, []float64{1, 1, 1, 0.5}},
	{"B", []models.Dim{models.DimDrb, models.DimSpd}, nil},
	{"Di", []models.Dim{models.DimHgt, models.DimStre, models.DimSpd, models.DimJmp, models.DimBlk}, []float64{2, 1, 0.5, 0.5, 1}},
	{"Dp", []models.Dim{models.DimHgt, models.DimStre, models.DimSpd, models.DimJmp, models.DimStl}, []float64{1, 1, 2, 0.5, 1}},
	{"Po", []models.Dim{models.DimHgt, models.DimStre, models.DimSpd, models.DimIns}, []float64{1, 0.6, 0.2, 1}},
	{"Ps", []models.Dim{models.DimDrb, models.DimPss}, []float64{0.4, 1}},
	{"R", []models.Dim{models.DimHgt, models.DimStre, models.DimJmp, models.DimReb}, []float64{1, 0.1, 0.1, 0.7}},
}

// skillThreshold is the fraction of the maximum weighted score a category
// needs before its tag is granted.
const skillThreshold = 0.75

// hasSkill is the shared weighted-threshold primitive behind every skill
// category: a weighted average of component ratings, normalized against a
// perfect 100 in every component.
func hasSkill(r *models.RatingsRow, components []models.Dim, weights []float64) bool {
	numerator := 0.0
	denominator := 0.0
	for i, d := range components {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		numerator += float64(r.Rating(d)) * w
		denominator += 100 * w
	}
	return numerator/denominator > skillThreshold
}

// Skills derives the tag set for a ratings row, in category-declaration
// order.
func Skills(r *models.RatingsRow) []string {
	sk := []string{}
	for _, def := range skillDefs {
		if hasSkill(r, def.components, def.weights) {
			sk = append(sk, def.label)
		}
	}
	return sk
}

// Pos classifies a ratings row into one of the 8 position labels.
//
// A provisional default comes from ball handling alone. Five eligibility
// flags are then evaluated independently; exactly one flag set resolves to
// that position, multiple flags resolve to a combination label, and a
// low-ball-handling forward falls through to power forward.
func Pos(r *models.RatingsRow) string {
	var pg, sg, sf, pf, c bool

	position := "F"
	if r.Drb >= 50 {
		position = "GF"
	}

	// Guard gate: short or fast players can play in the backcourt.
	g := r.Hgt <= 30 || r.Spd >= 85
	if g {
		if r.Pss+r.Drb >= 100 {
			pg = true
		}
		if r.Hgt >= 30 {
			sg = true
		}
	}
	if r.Hgt >= 50 && r.Hgt <= 65 && r.Spd >= 40 {
		sf = true
	}
	if r.Hgt+r.Stre >= 120 && r.Spd >= 30 {
		pf = true
	}
	if r.Hgt+r.Stre >= 140 {
		c = true
	}

	switch {
	case pg && !sg && !sf && !pf && !c:
		position = "PG"
	case !pg && sg && !sf && !pf && !c:
		position = "SG"
	case !pg && !sg && sf && !pf && !c:
		position = "SF"
	case !pg && !sg && !sf && pf && !c:
		position = "PF"
	case !pg && !sg && !sf && !pf && c:
		position = "C"
	}

	// Combination labels take precedence over single positions.
	if (pf || sf) && (pg || sg) {
		position = "GF"
	} else if c && (pf || sf) {
		position = "FC"
	} else if pg && sg {
		position = "G"
	}

	if position == "F" && r.Drb <= 20 {
		position = "PF"
	}

	return position
}

// GenFuzz draws a persistent display-noise term. Better scouting (rank 1)
// tightens both the spread and the cutoff; the worst staff can be off by
// up to ten points.
func GenFuzz(lg *league.Context, rnd *random.Source, scoutingRank int) float64 {
	span := float64(lg.NumTeams - 1)
	cutoff := 2 + 8*float64(scoutingRank-1)/span
	sigma := 1 + 2*float64(scoutingRank-1)/span

	fuzz := rnd.Gauss(0, sigma)
	if fuzz > cutoff {
		fuzz = cutoff
	} else if fuzz < -cutoff {
		fuzz = -cutoff
	}
	return fuzz
}

// AddRatingsRow appends a copy of the current ratings row for a new season.
// Fuzz is averaged with a fresh draw so a player's displayed rating drifts
// toward truth as seasons of scouting accumulate.
func AddRatingsRow(lg *league.Context, rnd *random.Source, p *models.Player, scoutingRank int) {
	cur := *p.CurrentRatings()
	cur.Season = lg.Season
	cur.Fuzz = (cur.Fuzz + GenFuzz(lg, rnd, scoutingRank)) / 2
	cur.Skills = append([]string(nil), cur.Skills...)
	p.Ratings = append(p.Ratings, cur)
}
