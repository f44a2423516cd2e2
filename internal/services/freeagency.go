package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/player"
	"github.com/courtside-dev/roster-sim/internal/random"
	"github.com/courtside-dev/roster-sim/internal/store"
)

// freeAgentBoardTTL keeps a stale board from outliving two refresh cycles.
const freeAgentBoardTTL = 15 * time.Minute

// FreeAgencyService moves players on and off the open market and keeps a
// cached free-agent board fresh for the API.
type FreeAgencyService struct {
	lg      *league.Context
	rnd     *random.Source
	engine  *player.Engine
	players store.PlayerStore
	teams   store.TeamStore
	finance store.FinanceStore
	cache   *CacheService
	logger  *logrus.Logger

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
	interval  time.Duration
}

func NewFreeAgencyService(
	lg *league.Context,
	rnd *random.Source,
	engine *player.Engine,
	players store.PlayerStore,
	teams store.TeamStore,
	finance store.FinanceStore,
	cache *CacheService,
	logger *logrus.Logger,
	refreshInterval time.Duration,
) *FreeAgencyService {
	return &FreeAgencyService{
		lg:       lg,
		rnd:      rnd,
		engine:   engine,
		players:  players,
		teams:    teams,
		finance:  finance,
		cache:    cache,
		logger:   logger,
		cron:     cron.New(),
		interval: refreshInterval,
	}
}

// Start schedules the periodic free-agent board refresh.
func (s *FreeAgencyService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("free agency service is already running")
	}

	schedule := fmt.Sprintf("@every %s", s.interval.String())
	if _, err := s.cron.AddFunc(schedule, func() {
		if err := s.RefreshBoard(context.Background()); err != nil {
			s.logger.Errorf("Failed to refresh free agent board: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule free agent board refresh: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	go func() {
		if err := s.RefreshBoard(context.Background()); err != nil {
			s.logger.Errorf("Initial free agent board refresh failed: %v", err)
		}
	}()

	s.logger.Info("Free agency service started")
	return nil
}

// Stop halts the scheduled refresh.
func (s *FreeAgencyService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.logger.Info("Free agency service stopped")
}

// Release waives a player: his remaining contract stays on the team's books
// as a released obligation, and he hits the market with freshly computed
// per-team moods.
func (s *FreeAgencyService) Release(ctx context.Context, p *models.Player) error {
	if p.Tid < 0 {
		return fmt.Errorf("player %d is not on a team", p.ID)
	}

	rc := &models.ReleasedContract{
		Tid:    p.Tid,
		Pid:    p.ID,
		Amount: p.Contract.Amount,
		Exp:    p.Contract.Exp,
	}
	if err := s.finance.AddReleasedContract(ctx, rc); err != nil {
		return err
	}

	teams, err := s.teams.All(ctx)
	if err != nil {
		return err
	}
	baseMoods := player.GenBaseMoods(s.lg, s.rnd, teams)

	contract := player.GenContract(s.lg, s.rnd, p.CurrentRatings(), false)
	player.AddToFreeAgents(s.lg, p, contract, baseMoods)

	if err := s.players.Save(ctx, p); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"pid":    p.ID,
		"tid":    rc.Tid,
		"amount": rc.Amount,
		"exp":    rc.Exp,
	}).Info("Player released to free agency")
	return nil
}

// BoardEntry shape: the attributes and stats the free-agent board displays.
var boardOptions = func() player.FilterOptions {
	opts := player.NewFilterOptions()
	opts.Attrs = []player.Attr{
		player.AttrPid, player.AttrName, player.AttrAge, player.AttrPos,
		player.AttrContract, player.AttrInjury, player.AttrFreeAgentMood,
	}
	opts.Ratings = []player.RatingField{
		player.RatingOvr, player.RatingPot, player.RatingSkills,
	}
	opts.Stats = []player.StatField{
		player.StatGP, player.StatMin, player.StatPTS, player.StatTRB,
		player.StatAST, player.StatPER,
	}
	opts.Fuzz = true
	opts.ShowNoStats = true
	opts.UseLastSeasonIfEmpty = true
	return opts
}()

// RefreshBoard recomputes the shaped free-agent listing and caches it.
func (s *FreeAgencyService) RefreshBoard(ctx context.Context) error {
	freeAgents, err := s.players.ByTeam(ctx, league.TidFreeAgent)
	if err != nil {
		return err
	}

	opts := boardOptions
	opts.Season = s.lg.Season

	board, err := s.engine.Filter(freeAgents, opts)
	if err != nil {
		return err
	}

	key := FreeAgentBoardCacheKey(s.lg.Season)
	if err := s.cache.SetWithRetry(ctx, key, board, freeAgentBoardTTL, 3); err != nil {
		return fmt.Errorf("failed to cache free agent board: %w", err)
	}

	s.logger.WithField("free_agents", len(board)).Debug("Free agent board refreshed")
	return nil
}

// Board returns the cached free-agent listing, recomputing on a miss.
func (s *FreeAgencyService) Board(ctx context.Context) ([]player.FilteredPlayer, error) {
	var board []player.FilteredPlayer
	key := FreeAgentBoardCacheKey(s.lg.Season)
	if err := s.cache.Get(ctx, key, &board); err == nil {
		return board, nil
	}

	if err := s.RefreshBoard(ctx); err != nil {
		return nil, err
	}
	if err := s.cache.Get(ctx, key, &board); err != nil {
		return nil, err
	}
	return board, nil
}
