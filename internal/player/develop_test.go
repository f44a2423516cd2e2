package player

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/random"
)

func developTestPlayer(season, age, ovrEach, pot int) *models.Player {
	r := flatRow(season, ovrEach)
	r.Pot = pot
	return &models.Player{
		BornYear: season - age,
		Ratings:  []models.RatingsRow{r},
	}
}

func TestDevelop_RatingsStayClampedAndPotCoversOvr(t *testing.T) {
	lg := testContext()

	for seed := int64(0); seed < 50; seed++ {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			rnd := random.NewSeeded(seed)
			p := developTestPlayer(lg.Season, 20, 45, 75)

			Develop(lg, rnd, p, DefaultDevelopOptions())

			r := p.CurrentRatings()
			for _, d := range models.AllDims {
				v := r.Rating(d)
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, 100)
			}
			assert.GreaterOrEqual(t, r.Pot, r.Ovr)
			assert.LessOrEqual(t, r.Pot, 100)
		})
	}
}

func TestDevelop_OldPlayerPotentialCollapsesToOverall(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(3)
	p := developTestPlayer(lg.Season, 30, 60, 70)

	Develop(lg, rnd, p, DefaultDevelopOptions())

	r := p.CurrentRatings()
	assert.Equal(t, r.Ovr, r.Pot)
}

func TestDevelop_HeightNeverChanges(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(11)
	p := developTestPlayer(lg.Season, 19, 40, 80)
	p.CurrentRatings().Hgt = 63

	Develop(lg, rnd, p, DevelopOptions{Years: 8, CoachingRank: 1})

	assert.Equal(t, 63, p.CurrentRatings().Hgt)
}

func TestDevelop_GenerationBackdatesBirthYear(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(5)
	p := developTestPlayer(lg.Season, 19, 40, 80)

	Develop(lg, rnd, p, DevelopOptions{Years: 5, Generation: true, CoachingRank: 15.5})

	assert.Equal(t, 24, p.Age(lg.Season))
}

func TestDevelop_SkillsRefreshed(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(2)
	p := developTestPlayer(lg.Season, 20, 45, 90)
	p.CurrentRatings().Skills = []string{"stale"}

	Develop(lg, rnd, p, DefaultDevelopOptions())

	assert.NotContains(t, p.CurrentRatings().Skills, "stale")
}

func TestBonus(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(8)
	p := developTestPlayer(lg.Season, 22, 50, 60)
	p.CurrentRatings().Hgt = 50

	Bonus(lg, rnd, p, 10, false)

	r := p.CurrentRatings()
	// Every skill dimension moves by the flat amount; height stays put.
	assert.Equal(t, 50, r.Hgt)
	for _, d := range models.SkillDims {
		assert.Equal(t, 60, r.Rating(d))
	}
	assert.Equal(t, 70, r.Pot)
	assert.Equal(t, Ovr(r), r.Ovr)

	// Bonus signs the regenerated contract.
	assert.NotEmpty(t, p.Salaries)
	assert.GreaterOrEqual(t, p.Contract.Amount, MinContract)
	assert.LessOrEqual(t, p.Contract.Amount, MaxContract)
}

func TestBonus_PotentialClampsAt100(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(8)
	p := developTestPlayer(lg.Season, 22, 90, 95)

	Bonus(lg, rnd, p, 10, false)

	r := p.CurrentRatings()
	assert.Equal(t, 100, r.Pot)
	assert.LessOrEqual(t, r.Ovr, 100)
}
