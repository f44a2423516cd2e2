package api

import (
	"github.com/gin-gonic/gin"

	"github.com/courtside-dev/roster-sim/internal/api/handlers"
	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/player"
	"github.com/courtside-dev/roster-sim/internal/services"
	"github.com/courtside-dev/roster-sim/internal/store"
)

// SetupRoutes configures all API routes on the given router group.
func SetupRoutes(
	group *gin.RouterGroup,
	lg *league.Context,
	engine *player.Engine,
	players store.PlayerStore,
	cache *services.CacheService,
	leagueSvc *services.LeagueService,
	freeAgency *services.FreeAgencyService,
	directory *services.TeamDirectory,
) {
	playerHandler := handlers.NewPlayerHandler(lg, engine, players, cache)
	leagueHandler := handlers.NewLeagueHandler(lg, leagueSvc, freeAgency, players, cache, directory)

	// Player endpoints
	group.GET("/players", playerHandler.GetPlayers)
	group.GET("/players/:id", playerHandler.GetPlayer)
	group.POST("/players/:id/release", leagueHandler.ReleasePlayer)

	// Team endpoints
	group.GET("/teams/:id/roster", playerHandler.GetRoster)

	// League endpoints
	group.POST("/league/new", leagueHandler.NewLeague)
	group.POST("/league/advance", leagueHandler.AdvanceSeason)
	group.GET("/free-agents", leagueHandler.GetFreeAgents)
}
