package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/player"
	"github.com/courtside-dev/roster-sim/internal/services"
	"github.com/courtside-dev/roster-sim/internal/store"
	"github.com/courtside-dev/roster-sim/pkg/utils"
)

// defaultAttrs shapes player listings when the caller doesn't pick fields.
var defaultAttrs = []player.Attr{
	player.AttrPid, player.AttrName, player.AttrTid, player.AttrAbbrev,
	player.AttrAge, player.AttrPos, player.AttrInjury, player.AttrContract,
}

var defaultRatings = []player.RatingField{
	player.RatingOvr, player.RatingPot, player.RatingSkills,
}

var defaultStats = []player.StatField{
	player.StatGP, player.StatMin, player.StatPTS, player.StatTRB,
	player.StatAST, player.StatPER,
}

type PlayerHandler struct {
	lg      *league.Context
	engine  *player.Engine
	players store.PlayerStore
	cache   *services.CacheService
}

func NewPlayerHandler(lg *league.Context, engine *player.Engine, players store.PlayerStore, cache *services.CacheService) *PlayerHandler {
	return &PlayerHandler{
		lg:      lg,
		engine:  engine,
		players: players,
		cache:   cache,
	}
}

// filterOptionsFromQuery translates query parameters into engine options.
// Displayed ratings are always fuzzed on this surface; true ratings never
// leave the simulation.
func (h *PlayerHandler) filterOptionsFromQuery(c *gin.Context) player.FilterOptions {
	opts := player.NewFilterOptions()
	opts.Fuzz = true

	if s := c.Query("season"); s != "" {
		if season, err := strconv.Atoi(s); err == nil {
			opts.Season = season
		}
	}
	if t := c.Query("tid"); t != "" {
		if tid, err := strconv.Atoi(t); err == nil {
			opts.Tid = tid
		}
	}
	opts.Totals = c.Query("totals") == "true"
	opts.Playoffs = c.Query("playoffs") == "true"

	opts.Attrs = defaultAttrs
	if a := c.Query("attrs"); a != "" {
		opts.Attrs = nil
		for _, name := range strings.Split(a, ",") {
			opts.Attrs = append(opts.Attrs, player.Attr(name))
		}
	}
	opts.Ratings = defaultRatings
	if r := c.Query("ratings"); r != "" {
		opts.Ratings = nil
		for _, name := range strings.Split(r, ",") {
			opts.Ratings = append(opts.Ratings, player.RatingField(name))
		}
	}
	opts.Stats = defaultStats
	if s := c.Query("stats"); s != "" {
		opts.Stats = nil
		for _, name := range strings.Split(s, ",") {
			opts.Stats = append(opts.Stats, player.StatField(name))
		}
	}

	return opts
}

// GetPlayers returns shaped records for every player, scoped by the query.
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	players, err := h.players.All(c.Request.Context())
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch players")
		return
	}

	opts := h.filterOptionsFromQuery(c)
	shaped, err := h.engine.Filter(players, opts)
	if err != nil {
		utils.SendValidationError(c, "Invalid filter configuration", err.Error())
		return
	}

	utils.SendSuccess(c, shaped)
}

// GetPlayer returns one shaped player record.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid player ID", err.Error())
		return
	}

	p, err := h.players.Get(c.Request.Context(), id)
	if err != nil {
		utils.SendNotFound(c, "Player not found")
		return
	}

	opts := h.filterOptionsFromQuery(c)
	opts.ShowNoStats = true

	shaped, ok, err := h.engine.FilterOne(p, opts)
	if err != nil {
		utils.SendValidationError(c, "Invalid filter configuration", err.Error())
		return
	}
	if !ok {
		utils.SendNotFound(c, "Player has no records in scope")
		return
	}

	utils.SendSuccess(c, shaped)
}

// GetRoster returns the shaped current roster for a team, cached briefly.
func (h *PlayerHandler) GetRoster(c *gin.Context) {
	tid, err := strconv.Atoi(c.Param("id"))
	if err != nil || tid < 0 || tid >= h.lg.NumTeams {
		utils.SendValidationError(c, "Invalid team ID", "")
		return
	}

	cacheKey := services.RosterCacheKey(tid, h.lg.Season)
	var cached []player.FilteredPlayer
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil {
		utils.SendSuccess(c, cached)
		return
	}

	players, err := h.players.ByTeam(c.Request.Context(), tid)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch roster")
		return
	}

	opts := h.filterOptionsFromQuery(c)
	opts.Season = h.lg.Season
	opts.Tid = tid
	opts.ShowNoStats = true
	opts.ShowRookies = true

	shaped, err := h.engine.Filter(players, opts)
	if err != nil {
		utils.SendValidationError(c, "Invalid filter configuration", err.Error())
		return
	}

	h.cache.SetWithRetry(context.Background(), cacheKey, shaped, rosterCacheTTL, 3)
	utils.SendSuccess(c, shaped)
}
