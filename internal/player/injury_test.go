package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtside-dev/roster-sim/internal/random"
)

func TestInjury_DrawsFromTable(t *testing.T) {
	lg := testContext()
	rnd := random.NewSeeded(17)

	known := make(map[string]bool, len(injuryTable))
	for _, e := range injuryTable {
		known[e.injType] = true
	}

	for i := 0; i < 500; i++ {
		inj := Injury(lg, rnd, 15)
		assert.True(t, known[inj.Type], "unknown injury type %q", inj.Type)
		assert.GreaterOrEqual(t, inj.GamesRemaining, 0)
		// Worst case: a torn ACL at full health factor and maximum jitter.
		assert.LessOrEqual(t, inj.GamesRemaining, 144)
	}
}

func TestInjury_HealthSpendingShortensRecovery(t *testing.T) {
	lg := testContext()

	sum := func(rank int, seed int64) int {
		rnd := random.NewSeeded(seed)
		total := 0
		for i := 0; i < 2000; i++ {
			total += Injury(lg, rnd, rank).GamesRemaining
		}
		return total
	}

	// Rank 1 halves expected recovery relative to rank NumTeams; over a few
	// thousand draws the totals separate decisively.
	assert.Less(t, sum(1, 99), sum(lg.NumTeams, 99))
}
