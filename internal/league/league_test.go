package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContextDefaults(t *testing.T) {
	lg := NewContext(2026)
	assert.Equal(t, 2026, lg.Season)
	assert.Equal(t, 2026, lg.StartingSeason)
	assert.Equal(t, 30, lg.NumTeams)
	assert.Equal(t, 82, lg.GamesPerSeason)
	assert.Equal(t, PhasePreseason, lg.Phase)
}

func TestPhaseOrdering(t *testing.T) {
	// Free agency relies on phase comparability to extend late-season deals.
	assert.True(t, PhasePlayoffs > PhaseAfterTradeDeadline)
	assert.True(t, PhaseRegularSeason < PhaseAfterTradeDeadline)
}

func TestTeamLabelSentinels(t *testing.T) {
	abbrev, _, name, ok := TeamLabel(TidFreeAgent)
	assert.True(t, ok)
	assert.Equal(t, "FA", abbrev)
	assert.Equal(t, "Free Agent", name)

	abbrev, _, _, ok = TeamLabel(TidRetired)
	assert.True(t, ok)
	assert.Equal(t, "RET", abbrev)

	_, _, _, ok = TeamLabel(0)
	assert.False(t, ok, "real team ids resolve elsewhere")
}
