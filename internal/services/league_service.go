package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/player"
	"github.com/courtside-dev/roster-sim/internal/random"
	"github.com/courtside-dev/roster-sim/internal/store"
)

const rosterSize = 14

// seedTeam is one franchise of the default league.
type seedTeam struct {
	abbrev string
	region string
	name   string
	pop    float64
}

var seedTeams = []seedTeam{
	{"ATL", "Atlanta", "Herons", 5.3},
	{"BOS", "Boston", "Colonials", 4.6},
	{"BKN", "Brooklyn", "Barons", 19.1},
	{"CHA", "Charlotte", "Flight", 2.4},
	{"CHI", "Chicago", "Stockyards", 9.2},
	{"CLE", "Cleveland", "Rockers", 2.9},
	{"DAL", "Dallas", "Marshals", 6.8},
	{"DEN", "Denver", "Summit", 2.8},
	{"DET", "Detroit", "Motors", 4.1},
	{"GSW", "Golden State", "Gold Rush", 4.7},
	{"HOU", "Houston", "Comets", 6.4},
	{"IND", "Indiana", "Racers", 2.0},
	{"LAC", "Los Angeles", "Condors", 12.8},
	{"LAL", "Los Angeles", "Stars", 12.8},
	{"MEM", "Memphis", "Riverboats", 1.3},
	{"MIA", "Miami", "Cyclones", 5.9},
	{"MIL", "Milwaukee", "Brewmasters", 1.5},
	{"MIN", "Minnesota", "North", 3.5},
	{"NOL", "New Orleans", "Krewe", 1.2},
	{"NYK", "New York", "Bankers", 19.1},
	{"OKC", "Oklahoma City", "Twisters", 1.3},
	{"ORL", "Orlando", "Tides", 2.3},
	{"PHI", "Philadelphia", "Founders", 5.7},
	{"PHX", "Phoenix", "Scorch", 4.3},
	{"POR", "Portland", "Pioneers", 2.2},
	{"SAC", "Sacramento", "Rivercats", 2.2},
	{"SAS", "San Antonio", "Missions", 2.2},
	{"TOR", "Toronto", "Huskies", 5.9},
	{"UTA", "Utah", "Peaks", 1.1},
	{"WAS", "Washington", "Monuments", 5.6},
}

// LeagueService owns league lifecycle operations: seeding a new league and
// advancing it a season at a time. It serializes its own mutations; the
// player core provides no internal locking.
type LeagueService struct {
	lg      *league.Context
	rnd     *random.Source
	ids     player.IdentityService
	players store.PlayerStore
	teams   store.TeamStore
	logger  *logrus.Logger
}

func NewLeagueService(lg *league.Context, rnd *random.Source, ids player.IdentityService, players store.PlayerStore, teams store.TeamStore, logger *logrus.Logger) *LeagueService {
	return &LeagueService{
		lg:      lg,
		rnd:     rnd,
		ids:     ids,
		players: players,
		teams:   teams,
		logger:  logger,
	}
}

// NewLeague seeds every franchise with a roster of generated, developed
// players on signed contracts with staggered expirations, plus an initial
// undrafted free-agent pool.
func (s *LeagueService) NewLeague(ctx context.Context) error {
	s.logger.WithField("season", s.lg.Season).Info("Seeding new league")

	// Expense ranks are independent shuffles; a team that pays its coaches
	// well may still skimp on trainers.
	coaching := s.rankShuffle()
	health := s.rankShuffle()
	facilities := s.rankShuffle()
	scouting := s.rankShuffle()

	teams := make([]models.Team, len(seedTeams))
	for i, st := range seedTeams {
		teams[i] = models.Team{
			ID:             i,
			Abbrev:         st.abbrev,
			Region:         st.region,
			Name:           st.name,
			Pop:            st.pop,
			Hype:           s.rnd.Float64(),
			CoachingRank:   coaching[i],
			HealthRank:     health[i],
			FacilitiesRank: facilities[i],
			ScoutingRank:   scouting[i],
		}
		if err := s.teams.Save(ctx, &teams[i]); err != nil {
			return err
		}
	}

	var all []*models.Player
	for i := range teams {
		roster, err := s.seedRoster(&teams[i])
		if err != nil {
			return err
		}
		all = append(all, roster...)
	}

	// A thin pool of leftover veterans starts in free agency.
	for i := 0; i < 2*len(teams); i++ {
		p := s.seedPlayer(league.TidFreeAgent, 15)
		all = append(all, p)
	}

	if err := s.players.SaveAll(ctx, all); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"teams":   len(teams),
		"players": len(all),
	}).Info("League seeded")
	return nil
}

func (s *LeagueService) rankShuffle() []int {
	ranks := make([]int, s.lg.NumTeams)
	for i := range ranks {
		ranks[i] = i + 1
	}
	for i := len(ranks) - 1; i > 0; i-- {
		j := s.rnd.Int(0, i)
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return ranks
}

func (s *LeagueService) seedRoster(t *models.Team) ([]*models.Player, error) {
	roster := make([]*models.Player, 0, rosterSize)
	for i := 0; i < rosterSize; i++ {
		p := s.seedPlayer(t.ID, t.ScoutingRank)
		if err := player.AddStatsRow(s.lg, p, false); err != nil {
			return nil, fmt.Errorf("seed roster for tid %d: %w", t.ID, err)
		}
		roster = append(roster, p)
	}
	return roster, nil
}

// seedPlayer generates one new-league player: born a 19-year-old prospect,
// aged forward a random number of seasons, then granted a flat bonus and a
// signed, expiration-randomized contract.
func (s *LeagueService) seedPlayer(tid, scoutingRank int) *models.Player {
	profile := player.Profiles[s.rnd.Int(0, len(player.Profiles)-1)]
	base := s.rnd.Int(20, 45)
	pot := s.rnd.Int(base+20, 90)

	p := player.Generate(s.lg, s.rnd, s.ids, tid, 19, profile, base, pot, s.lg.Season, true, scoutingRank)
	player.Develop(s.lg, s.rnd, p, player.DevelopOptions{
		Years:        s.rnd.Int(0, 13),
		Generation:   true,
		CoachingRank: 15.5,
	})
	player.Bonus(s.lg, s.rnd, p, s.rnd.Int(-2, 10), true)
	return p
}

// GenerateProspect creates one draft-class player for the given draft year.
func (s *LeagueService) GenerateProspect(draftYear, scoutingRank int) *models.Player {
	profile := player.Profiles[s.rnd.Int(0, len(player.Profiles)-1)]
	base := s.rnd.Int(15, 45)
	pot := s.rnd.Int(base+15, 90)
	return player.Generate(s.lg, s.rnd, s.ids, league.TidUndrafted, 19, profile, base, pot, draftYear, false, scoutingRank)
}

// AdvanceSeason rolls the league forward one year: every active player gets
// a fresh ratings row, a year of development under his team's coaching, and
// a new stats row; aged-out players retire to the sentinel team.
func (s *LeagueService) AdvanceSeason(ctx context.Context) error {
	s.lg.Season++
	s.lg.Phase = league.PhasePreseason

	teams, err := s.teams.All(ctx)
	if err != nil {
		return err
	}
	teamByID := make(map[int]*models.Team, len(teams))
	for i := range teams {
		teamByID[teams[i].ID] = &teams[i]
	}

	players, err := s.players.All(ctx)
	if err != nil {
		return err
	}

	developed, retired := 0, 0
	for _, p := range players {
		if p.Tid == league.TidRetired {
			continue
		}

		scoutingRank := 15
		coachingRank := 15.5
		if t, ok := teamByID[p.Tid]; ok {
			scoutingRank = t.ScoutingRank
			coachingRank = float64(t.CoachingRank)
		}

		player.AddRatingsRow(s.lg, s.rnd, p, scoutingRank)
		player.Develop(s.lg, s.rnd, p, player.DevelopOptions{Years: 1, CoachingRank: coachingRank})
		developed++

		if s.shouldRetire(p) {
			p.Tid = league.TidRetired
			p.RetiredYear = s.lg.Season
			retired++
			continue
		}

		if p.Tid >= 0 {
			if err := player.AddStatsRow(s.lg, p, false); err != nil {
				return err
			}
		} else if p.Tid == league.TidFreeAgent {
			p.YearsFreeAgent++
		}
	}

	if err := s.players.SaveAll(ctx, players); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"season":    s.lg.Season,
		"developed": developed,
		"retired":   retired,
	}).Info("Season advanced")
	return nil
}

// shouldRetire keeps washed-out veterans from hanging around forever.
func (s *LeagueService) shouldRetire(p *models.Player) bool {
	age := p.Age(s.lg.Season)
	r := p.CurrentRatings()
	if age > 34 && r.Ovr < 40 {
		return true
	}
	return age > 38
}
