package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/services"
	"github.com/courtside-dev/roster-sim/internal/store"
	"github.com/courtside-dev/roster-sim/pkg/utils"
)

// rosterCacheTTL keeps roster reads cheap without letting development
// results go stale for long.
const rosterCacheTTL = 5 * time.Minute

type LeagueHandler struct {
	lg         *league.Context
	leagueSvc  *services.LeagueService
	freeAgency *services.FreeAgencyService
	players    store.PlayerStore
	cache      *services.CacheService
	directory  *services.TeamDirectory
}

func NewLeagueHandler(
	lg *league.Context,
	leagueSvc *services.LeagueService,
	freeAgency *services.FreeAgencyService,
	players store.PlayerStore,
	cache *services.CacheService,
	directory *services.TeamDirectory,
) *LeagueHandler {
	return &LeagueHandler{
		lg:         lg,
		leagueSvc:  leagueSvc,
		freeAgency: freeAgency,
		players:    players,
		cache:      cache,
		directory:  directory,
	}
}

// NewLeague seeds a fresh league. Destructive on an existing one, so it
// sits behind POST only.
func (h *LeagueHandler) NewLeague(c *gin.Context) {
	if err := h.leagueSvc.NewLeague(c.Request.Context()); err != nil {
		utils.SendInternalError(c, "Failed to seed league")
		return
	}
	if err := h.directory.Reload(c.Request.Context()); err != nil {
		utils.SendInternalError(c, "Failed to load team directory")
		return
	}

	utils.SendSuccess(c, gin.H{
		"season": h.lg.Season,
		"teams":  h.lg.NumTeams,
	})
}

// AdvanceSeason rolls the league forward one year.
func (h *LeagueHandler) AdvanceSeason(c *gin.Context) {
	if err := h.leagueSvc.AdvanceSeason(c.Request.Context()); err != nil {
		utils.SendInternalError(c, "Failed to advance season")
		return
	}

	utils.SendSuccess(c, gin.H{"season": h.lg.Season})
}

// GetFreeAgents serves the cached free-agent board.
func (h *LeagueHandler) GetFreeAgents(c *gin.Context) {
	board, err := h.freeAgency.Board(c.Request.Context())
	if err != nil {
		utils.SendInternalError(c, "Failed to load free agent board")
		return
	}
	utils.SendSuccess(c, board)
}

// ReleasePlayer waives a rostered player into free agency.
func (h *LeagueHandler) ReleasePlayer(c *gin.Context) {
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
	if p.Tid < 0 {
		utils.SendConflict(c, "Player is not on a team")
		return
	}

	tid := p.Tid
	if err := h.freeAgency.Release(c.Request.Context(), p); err != nil {
		utils.SendInternalError(c, "Failed to release player")
		return
	}

	// The roster and free-agent views both just changed.
	h.cache.Delete(c.Request.Context(),
		services.RosterCacheKey(tid, h.lg.Season),
		services.FreeAgentBoardCacheKey(h.lg.Season))

	utils.SendSuccess(c, gin.H{
		"pid": p.ID,
		"tid": p.Tid,
	})
}
