// Package store is the persistence boundary: scoped reads and writes of
// player and team records by id and by secondary index.
package store

import (
	"context"

	"github.com/courtside-dev/roster-sim/internal/models"
)

// PlayerStore is the player persistence collaborator.
type PlayerStore interface {
	Get(ctx context.Context, id int) (*models.Player, error)
	ByTeam(ctx context.Context, tid int) ([]*models.Player, error)
	All(ctx context.Context) ([]*models.Player, error)
	Save(ctx context.Context, p *models.Player) error
	SaveAll(ctx context.Context, players []*models.Player) error
}

// TeamStore is the team persistence collaborator.
type TeamStore interface {
	Get(ctx context.Context, tid int) (*models.Team, error)
	All(ctx context.Context) ([]models.Team, error)
	Save(ctx context.Context, t *models.Team) error
}

// FinanceStore records contract obligations that outlive a roster spot.
type FinanceStore interface {
	AddReleasedContract(ctx context.Context, rc *models.ReleasedContract) error
	ReleasedByTeam(ctx context.Context, tid int) ([]models.ReleasedContract, error)
}
