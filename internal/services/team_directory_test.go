package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside-dev/roster-sim/internal/models"
)

func TestTeamDirectory(t *testing.T) {
	store := &memTeamStore{teams: []models.Team{
		{ID: 0, Abbrev: "ATL", Region: "Atlanta", Name: "Herons"},
		{ID: 1, Abbrev: "BOS", Region: "Boston", Name: "Colonials"},
	}}
	d := NewTeamDirectory(store)

	// Nothing resolves before the first load.
	_, ok := d.TeamInfo(0)
	assert.False(t, ok)

	require.NoError(t, d.Reload(context.Background()))

	info, ok := d.TeamInfo(0)
	require.True(t, ok)
	assert.Equal(t, "ATL", info.Abbrev)
	assert.Equal(t, "Herons", info.Name)

	_, ok = d.TeamInfo(99)
	assert.False(t, ok)

	// A reload picks up renames.
	store.teams[0].Name = "Hawks"
	require.NoError(t, d.Reload(context.Background()))
	info, _ = d.TeamInfo(0)
	assert.Equal(t, "Hawks", info.Name)
}
