package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/random"
)

// fixedIdentity hands back the same identity every time so generation tests
// stay deterministic.
type fixedIdentity struct{}

func (fixedIdentity) NewIdentity() Identity {
	return Identity{
		Name:    "Test Player",
		BornLoc: "Springfield, IL",
		College: "State",
		Face:    models.Face{ID: "face-1"},
	}
}

func TestGenRatings_ClampedWithVerbatimPotential(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(1)

	for i := 0; i < 100; i++ {
		r := GenRatings(lg, rnd, ProfileBig, 40, 72, lg.Season, 15)
		for _, d := range models.AllDims {
			v := r.Rating(d)
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
		assert.Equal(t, 72, r.Pot)
		assert.Equal(t, Ovr(&r), r.Ovr)
		assert.Equal(t, lg.Season, r.Season)
	}
}

func TestGenRatings_ProfilesShapeTheSpread(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(4)

	// Averaged over many draws, bigs tower over points and points out-handle
	// bigs. The per-draw noise is 10 a dimension, so means separate fast.
	const draws = 200
	var bigHgt, pointHgt, bigDrb, pointDrb float64
	for i := 0; i < draws; i++ {
		b := GenRatings(lg, rnd, ProfileBig, 40, 70, lg.Season, 15)
		p := GenRatings(lg, rnd, ProfilePoint, 40, 70, lg.Season, 15)
		bigHgt += float64(b.Hgt)
		pointHgt += float64(p.Hgt)
		bigDrb += float64(b.Drb)
		pointDrb += float64(p.Drb)
	}
	assert.Greater(t, bigHgt, pointHgt)
	assert.Greater(t, pointDrb, bigDrb)
}

func TestGenerate_NewLeaguePlayer(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(6)

	p := Generate(lg, rnd, fixedIdentity{}, 0, 19, ProfileWing, 40, 70, lg.Season, true, 15)

	assert.Equal(t, "Test Player", p.Name)
	assert.Equal(t, 0, p.Tid)
	assert.Equal(t, lg.Season-19, p.BornYear)
	assert.Equal(t, "Springfield, IL", p.BornLoc)

	require.Len(t, p.Ratings, 1)
	assert.Equal(t, lg.Season, p.Ratings[0].Season)
	assert.Equal(t, 70, p.Ratings[0].Pot)

	// Draft info freezes generation-time ability.
	assert.Equal(t, lg.Season, p.Draft.Year)
	assert.Equal(t, p.Ratings[0].Ovr, p.Draft.Ovr)
	assert.Equal(t, 70, p.Draft.Pot)

	// Physique derives from the height rating: 64-82 inches plus jitter.
	assert.GreaterOrEqual(t, p.HgtIn, 55)
	assert.LessOrEqual(t, p.HgtIn, 92)
	assert.GreaterOrEqual(t, p.WeightLb, 140)
	assert.LessOrEqual(t, p.WeightLb, 320)

	// Demanded contract only; nothing signed yet.
	assert.GreaterOrEqual(t, p.Contract.Amount, MinContract)
	assert.LessOrEqual(t, p.Contract.Amount, MaxContract)
	assert.Empty(t, p.Salaries)

	assert.Len(t, p.FreeAgentMood, lg.NumTeams)
	assert.NotNil(t, p.Stats)
	assert.Empty(t, p.Stats)
}

func TestGenerate_ProspectUsesDraftYear(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(6)

	draftYear := lg.Season + 1
	p := Generate(lg, rnd, fixedIdentity{}, -2, 19, ProfilePoint, 35, 65, draftYear, false, 15)

	assert.Equal(t, draftYear-19, p.BornYear)
	require.Len(t, p.Ratings, 1)
	assert.Equal(t, draftYear, p.Ratings[0].Season)
	assert.Equal(t, draftYear, p.Draft.Year)
}

func TestGenerate_UnknownProfileFallsBackToBase(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(6)

	p := Generate(lg, rnd, fixedIdentity{}, 0, 19, Profile("nonsense"), 40, 70, lg.Season, true, 15)
	require.Len(t, p.Ratings, 1)
	assert.Equal(t, Ovr(&p.Ratings[0]), p.Ratings[0].Ovr)
}
