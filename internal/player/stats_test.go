package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-dev/roster-sim/internal/models"
)

func TestAddStatsRow(t *testing.T) {
	lg := testContext()
	p := &models.Player{Tid: 5}

	require.NoError(t, AddStatsRow(lg, p, false))
	require.Len(t, p.Stats, 1)
	assert.Equal(t, lg.Season, p.Stats[0].Season)
	assert.Equal(t, 5, p.Stats[0].Tid)
	assert.False(t, p.Stats[0].Playoffs)
	assert.Equal(t, []int{5}, []int(p.StatsTids))

	// A playoff row for the same season and team is a distinct triple.
	require.NoError(t, AddStatsRow(lg, p, true))
	assert.Len(t, p.Stats, 2)
	assert.Equal(t, []int{5}, []int(p.StatsTids), "tid recorded once")
}

func TestAddStatsRow_DuplicateTripleFails(t *testing.T) {
	lg := testContext()
	p := &models.Player{ID: 12, Tid: 5}

	require.NoError(t, AddStatsRow(lg, p, false))
	err := AddStatsRow(lg, p, false)
	assert.Error(t, err)
	assert.Len(t, p.Stats, 1)
}

func TestAddStatsRow_MidSeasonTrade(t *testing.T) {
	lg := testContext()
	p := &models.Player{Tid: 5}

	require.NoError(t, AddStatsRow(lg, p, false))
	p.Tid = 9
	require.NoError(t, AddStatsRow(lg, p, false))

	assert.Len(t, p.Stats, 2)
	assert.Equal(t, []int{5, 9}, []int(p.StatsTids))
}
