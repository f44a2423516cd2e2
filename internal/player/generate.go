package player

import (
	"math"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/random"
)

// Profile selects the body-type offset vector a new player is built around.
type Profile string

const (
	ProfileBase  Profile = "base"
	ProfilePoint Profile = "point"
	ProfileWing  Profile = "wing"
	ProfileBig   Profile = "big"
)

// Profiles lists the selectable body types in draw order, for callers that
// pick one at random.
var Profiles = []Profile{ProfileBase, ProfilePoint, ProfileWing, ProfileBig}

// profileOffsets are per-dimension deltas applied on top of the base rating,
// in models.AllDims order. Each vector sums to roughly 150 so the profiles
// stay balanced against each other.
var profileOffsets = map[Profile][15]float64{
	ProfileBase:  {10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10},
	ProfilePoint: {-30, -10, 40, 20, 15, 0, 0, 10, 15, 25, 0, 30, 20, 20, 0},
	ProfileWing:  {10, 10, 15, 15, 0, 0, 25, 15, 15, 20, 0, 10, 15, 0, 15},
	ProfileBig:   {45, 30, -15, -15, -5, 30, 30, -5, -15, -25, 30, -5, -20, -20, 30},
}

// Identity is what the external name/face service hands back for a new
// player.
type Identity struct {
	Name     string
	BornLoc  string
	College  string
	Face     models.Face
}

// IdentityService is the opaque name/face generation collaborator.
type IdentityService interface {
	NewIdentity() Identity
}

// GenRatings builds the initial ratings row for a new player: a gaussian
// spread around the profile-shifted base rating, clamped per dimension.
// Potential is taken verbatim from the caller.
func GenRatings(lg *league.Context, rnd *random.Source, profile Profile, baseRating, pot, season, scoutingRank int) models.RatingsRow {
	offsets, ok := profileOffsets[profile]
	if !ok {
		offsets = profileOffsets[ProfileBase]
	}

	base := rnd.Gauss(float64(baseRating), 5)

	var r models.RatingsRow
	r.Season = season
	for i, d := range models.AllDims {
		raw := offsets[i] + base
		r.SetRating(d, limitRating(rnd.Gauss(raw, 10)))
	}

	r.Ovr = Ovr(&r)
	r.Pot = pot
	r.Skills = Skills(&r)
	r.Fuzz = GenFuzz(lg, rnd, scoutingRank)
	return r
}

// Generate builds a complete new player record: a draft prospect when tid is
// a negative sentinel, or a roster seed player for a new league.
func Generate(lg *league.Context, rnd *random.Source, ids IdentityService, tid, age int, profile Profile, baseRating, pot, draftYear int, newLeague bool, scoutingRank int) *models.Player {
	season := draftYear
	if newLeague {
		season = lg.Season
	}

	ratings := GenRatings(lg, rnd, profile, baseRating, pot, season, scoutingRank)
	identity := ids.NewIdentity()

	p := &models.Player{
		Name:     identity.Name,
		Tid:      tid,
		BornYear: season - age,
		BornLoc:  identity.BornLoc,
		College:  identity.College,
		Face:     identity.Face,

		Ratings:   []models.RatingsRow{ratings},
		Stats:     []models.StatsRow{},
		StatsTids: []int{},
		Salaries:  []models.SalaryEntry{},
		Awards:    []models.Award{},

		FreeAgentMood: make([]float64, lg.NumTeams),

		Draft: models.DraftInfo{
			Round:       0,
			Pick:        0,
			Tid:         -1,
			OriginalTid: -1,
			Year:        draftYear,
			Pot:         pot,
			Ovr:         ratings.Ovr,
		},
	}

	// Height in inches spans 64-82 over the height rating; weight leans on
	// strength as well. Both get a 2% gaussian jitter and are then frozen.
	p.HgtIn = int(math.Round(rnd.Gauss(1, 0.02) * (float64(ratings.Hgt)*(82-64)/100 + 64)))
	p.WeightLb = int(math.Round(rnd.Gauss(1, 0.02) * ((float64(ratings.Hgt)+0.5*float64(ratings.Stre))*(290-170)/150 + 170)))

	p.Contract = GenContract(lg, rnd, &ratings, false)

	return p
}
