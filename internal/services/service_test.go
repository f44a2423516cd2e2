package services

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/courtside-dev/roster-sim/internal/models"
)

// In-memory store fakes. The gorm-backed implementations are exercised
// against a real database; service logic tests only need the interfaces.

type memPlayerStore struct {
	players map[int]*models.Player
	nextID  int
}

func newMemPlayerStore() *memPlayerStore {
	return &memPlayerStore{players: make(map[int]*models.Player), nextID: 1}
}

func (m *memPlayerStore) Get(_ context.Context, id int) (*models.Player, error) {
	p, ok := m.players[id]
	if !ok {
		return nil, fmt.Errorf("player %d not found", id)
	}
	return p, nil
}

func (m *memPlayerStore) ByTeam(_ context.Context, tid int) ([]*models.Player, error) {
	var out []*models.Player
	for id := 1; id < m.nextID; id++ {
		if p, ok := m.players[id]; ok && p.Tid == tid {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPlayerStore) All(_ context.Context) ([]*models.Player, error) {
	out := make([]*models.Player, 0, len(m.players))
	for id := 1; id < m.nextID; id++ {
		if p, ok := m.players[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPlayerStore) Save(_ context.Context, p *models.Player) error {
	if p.ID == 0 {
		p.ID = m.nextID
		m.nextID++
	} else if p.ID >= m.nextID {
		m.nextID = p.ID + 1
	}
	m.players[p.ID] = p
	return nil
}

func (m *memPlayerStore) SaveAll(ctx context.Context, players []*models.Player) error {
	for _, p := range players {
		if err := m.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

type memTeamStore struct {
	teams []models.Team
}

func (m *memTeamStore) Get(_ context.Context, tid int) (*models.Team, error) {
	for i := range m.teams {
		if m.teams[i].ID == tid {
			return &m.teams[i], nil
		}
	}
	return nil, fmt.Errorf("team %d not found", tid)
}

func (m *memTeamStore) All(_ context.Context) ([]models.Team, error) {
	return append([]models.Team(nil), m.teams...), nil
}

func (m *memTeamStore) Save(_ context.Context, t *models.Team) error {
	for i := range m.teams {
		if m.teams[i].ID == t.ID {
			m.teams[i] = *t
			return nil
		}
	}
	m.teams = append(m.teams, *t)
	return nil
}

type memFinanceStore struct {
	released []models.ReleasedContract
}

func (m *memFinanceStore) AddReleasedContract(_ context.Context, rc *models.ReleasedContract) error {
	rc.ID = len(m.released) + 1
	m.released = append(m.released, *rc)
	return nil
}

func (m *memFinanceStore) ReleasedByTeam(_ context.Context, tid int) ([]models.ReleasedContract, error) {
	var out []models.ReleasedContract
	for _, rc := range m.released {
		if rc.Tid == tid {
			out = append(out, rc)
		}
	}
	return out, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
