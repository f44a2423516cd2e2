package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/random"
)

// testContext pins a 30-team, 82-game league at a fixed season.
func testContext() *league.Context {
	return league.NewContext(2026)
}

// flatRow builds a ratings row with every dimension at v.
func flatRow(season, v int) models.RatingsRow {
	r := models.RatingsRow{Season: season}
	for _, d := range models.AllDims {
		r.SetRating(d, v)
	}
	r.Ovr = Ovr(&r)
	r.Pot = r.Ovr
	return r
}

func TestOvr_MeanOfAllDimensions(t *testing.T) {
	r := flatRow(2026, 50)
	assert.Equal(t, 50, Ovr(&r))

	// A single maxed dimension averages to round(100/15) = 7.
	r = flatRow(2026, 0)
	r.Hgt = 100
	assert.Equal(t, 7, Ovr(&r))

	r = flatRow(2026, 100)
	assert.Equal(t, 100, Ovr(&r))
}

func TestSkills_ThreePointShooter(t *testing.T) {
	// The 0.2 height weight means a short player still qualifies on a pure
	// three-point rating.
	r := flatRow(2026, 0)
	r.Hgt = 100
	r.TP = 100
	assert.Equal(t, []string{"3"}, Skills(&r))

	// Dropping the shot drops the tag.
	r.TP = 60
	assert.Empty(t, Skills(&r))
}

func TestSkills_BallHandler(t *testing.T) {
	r := flatRow(2026, 0)
	r.Drb = 100
	r.Spd = 100
	assert.Equal(t, []string{"B"}, Skills(&r))
}

func TestSkills_PerfectPlayerHasEveryTag(t *testing.T) {
	r := flatRow(2026, 100)
	assert.Equal(t, []string{"3", "A", "B", "Di", "Dp", "Po", "Ps", "R"}, Skills(&r))
}

func TestSkills_EmptyNotNil(t *testing.T) {
	r := flatRow(2026, 0)
	assert.NotNil(t, Skills(&r))
	assert.Empty(t, Skills(&r))
}

func TestPos(t *testing.T) {
	tests := []struct {
		name string
		set  func(r *models.RatingsRow)
		want string
	}{
		{
			// Ball handling alone only buys the provisional default.
			name: "ball handler with nothing else stays GF",
			set:  func(r *models.RatingsRow) { r.Drb = 60 },
			want: "GF",
		},
		{
			name: "tall and strong is a center",
			set: func(r *models.RatingsRow) {
				r.Hgt = 90
				r.Stre = 80
			},
			want: "C",
		},
		{
			name: "short quick distributor is a point guard",
			set: func(r *models.RatingsRow) {
				r.Hgt = 20
				r.Spd = 90
				r.Pss = 60
				r.Drb = 60
			},
			want: "PG",
		},
		{
			name: "fast mid-size scorer is a shooting guard",
			set: func(r *models.RatingsRow) {
				r.Hgt = 40
				r.Spd = 90
			},
			want: "SG",
		},
		{
			name: "mid-size mover is a small forward",
			set: func(r *models.RatingsRow) {
				r.Hgt = 55
				r.Spd = 45
			},
			want: "SF",
		},
		{
			name: "point and shooting guard flags combine to G",
			set: func(r *models.RatingsRow) {
				r.Hgt = 30
				r.Spd = 90
				r.Pss = 60
				r.Drb = 60
			},
			want: "G",
		},
		{
			name: "wing with guard speed combines to GF",
			set: func(r *models.RatingsRow) {
				r.Hgt = 55
				r.Spd = 90
			},
			want: "GF",
		},
		{
			name: "big with forward mobility combines to FC",
			set: func(r *models.RatingsRow) {
				r.Hgt = 80
				r.Stre = 70
				r.Spd = 35
			},
			want: "FC",
		},
		{
			name: "flagless forward with no handle falls to PF",
			set: func(r *models.RatingsRow) {
				r.Hgt = 40
				r.Stre = 40
				r.Spd = 20
				r.Drb = 10
			},
			want: "PF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := flatRow(2026, 0)
			tt.set(&r)
			assert.Equal(t, tt.want, Pos(&r))
		})
	}
}

func TestGenFuzz_BestScoutingTightensCutoff(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(1)

	for i := 0; i < 200; i++ {
		f := GenFuzz(lg, rnd, 1)
		assert.LessOrEqual(t, f, 2.0)
		assert.GreaterOrEqual(t, f, -2.0)
	}
	for i := 0; i < 200; i++ {
		f := GenFuzz(lg, rnd, lg.NumTeams)
		assert.LessOrEqual(t, f, 10.0)
		assert.GreaterOrEqual(t, f, -10.0)
	}
}

func TestAddRatingsRow(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(7)

	row := flatRow(2025, 60)
	row.Fuzz = 4
	row.Skills = []string{"3"}
	p := &models.Player{Ratings: []models.RatingsRow{row}}

	AddRatingsRow(lg, rnd, p, 1)
	require.Len(t, p.Ratings, 2)

	cur := p.CurrentRatings()
	assert.Equal(t, 2026, cur.Season)
	assert.Equal(t, 2025, p.Ratings[0].Season)
	assert.Equal(t, 60, cur.Ovr)

	// Averaged with a rank-1 draw, fuzz lands strictly between the old value
	// and the tight new cutoff.
	assert.LessOrEqual(t, cur.Fuzz, (4.0+2.0)/2)
	assert.GreaterOrEqual(t, cur.Fuzz, (4.0-2.0)/2)

	// The skills slice must be a copy, not an alias of the prior row.
	cur.Skills[0] = "R"
	assert.Equal(t, []string{"3"}, p.Ratings[0].Skills)
}
