package store

import (
	"context"
	"fmt"

	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/pkg/database"
)

// GormPlayerStore persists players through gorm.
type GormPlayerStore struct {
	db *database.DB
}

// NewGormPlayerStore wraps a database connection.
func NewGormPlayerStore(db *database.DB) *GormPlayerStore {
	return &GormPlayerStore{db: db}
}

func (s *GormPlayerStore) Get(ctx context.Context, id int) (*models.Player, error) {
	var p models.Player
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, fmt.Errorf("failed to load player %d: %w", id, err)
	}
	return &p, nil
}

func (s *GormPlayerStore) ByTeam(ctx context.Context, tid int) ([]*models.Player, error) {
	var players []*models.Player
	if err := s.db.WithContext(ctx).Where("tid = ?", tid).Order("id").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to load players for tid %d: %w", tid, err)
	}
	return players, nil
}

func (s *GormPlayerStore) All(ctx context.Context) ([]*models.Player, error) {
	var players []*models.Player
	if err := s.db.WithContext(ctx).Order("id").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	return players, nil
}

func (s *GormPlayerStore) Save(ctx context.Context, p *models.Player) error {
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("failed to save player %d: %w", p.ID, err)
	}
	return nil
}

func (s *GormPlayerStore) SaveAll(ctx context.Context, players []*models.Player) error {
	tx := s.db.WithContext(ctx).Begin()
	for _, p := range players {
		if err := tx.Save(p).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save player %d: %w", p.ID, err)
		}
	}
	return tx.Commit().Error
}

// GormTeamStore persists teams through gorm.
type GormTeamStore struct {
	db *database.DB
}

// NewGormTeamStore wraps a database connection.
func NewGormTeamStore(db *database.DB) *GormTeamStore {
	return &GormTeamStore{db: db}
}

func (s *GormTeamStore) Get(ctx context.Context, tid int) (*models.Team, error) {
	var t models.Team
	if err := s.db.WithContext(ctx).First(&t, tid).Error; err != nil {
		return nil, fmt.Errorf("failed to load team %d: %w", tid, err)
	}
	return &t, nil
}

func (s *GormTeamStore) All(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.WithContext(ctx).Order("id").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	return teams, nil
}

func (s *GormTeamStore) Save(ctx context.Context, t *models.Team) error {
	if err := s.db.WithContext(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("failed to save team %d: %w", t.ID, err)
	}
	return nil
}

// GormFinanceStore persists released-contract obligations through gorm.
type GormFinanceStore struct {
	db *database.DB
}

// NewGormFinanceStore wraps a database connection.
func NewGormFinanceStore(db *database.DB) *GormFinanceStore {
	return &GormFinanceStore{db: db}
}

func (s *GormFinanceStore) AddReleasedContract(ctx context.Context, rc *models.ReleasedContract) error {
	if err := s.db.WithContext(ctx).Create(rc).Error; err != nil {
		return fmt.Errorf("failed to record released contract for player %d: %w", rc.Pid, err)
	}
	return nil
}

func (s *GormFinanceStore) ReleasedByTeam(ctx context.Context, tid int) ([]models.ReleasedContract, error) {
	var rcs []models.ReleasedContract
	if err := s.db.WithContext(ctx).Where("tid = ?", tid).Find(&rcs).Error; err != nil {
		return nil, fmt.Errorf("failed to load released contracts for tid %d: %w", tid, err)
	}
	return rcs, nil
}
