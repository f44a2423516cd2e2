package league

// Sentinel team IDs. Real teams are numbered 0..NumTeams-1, so negative
// values are free for lifecycle states.
const (
	TidFreeAgent = -1
	TidUndrafted = -2
	TidRetired   = -3
)

// Phase identifies where the league is in its annual cycle. Ordering
// matters: free agency after the trade deadline extends new contracts by a
// season, so phases are comparable.
type Phase int

const (
	PhasePreseason Phase = iota
	PhaseRegularSeason
	PhaseAfterTradeDeadline
	PhasePlayoffs
	PhaseBeforeDraft
	PhaseDraft
	PhaseAfterDraft
	PhaseResignPlayers
	PhaseFreeAgency
)

func (p Phase) String() string {
	switch p {
	case PhasePreseason:
		return "preseason"
	case PhaseRegularSeason:
		return "regular season"
	case PhaseAfterTradeDeadline:
		return "after trade deadline"
	case PhasePlayoffs:
		return "playoffs"
	case PhaseBeforeDraft:
		return "before draft"
	case PhaseDraft:
		return "draft"
	case PhaseAfterDraft:
		return "after draft"
	case PhaseResignPlayers:
		return "re-sign players"
	case PhaseFreeAgency:
		return "free agency"
	}
	return "unknown"
}

// Context carries the ambient league state every core function needs.
// It is passed explicitly instead of living in package-level globals so
// multiple league simulations can run side by side and tests can pin any
// season they want.
type Context struct {
	Season         int
	Phase          Phase
	NumTeams       int
	StartingSeason int

	// GamesPerSeason is used when prorating cash owed on a contract.
	GamesPerSeason int
}

// NewContext returns a league context with the standard 30-team,
// 82-game setup.
func NewContext(season int) *Context {
	return &Context{
		Season:         season,
		Phase:          PhasePreseason,
		NumTeams:       30,
		StartingSeason: season,
		GamesPerSeason: 82,
	}
}

// TeamLabel returns display names for sentinel team ids. Real team ids
// resolve through the team store instead.
func TeamLabel(tid int) (abbrev, region, name string, ok bool) {
	switch tid {
	case TidFreeAgent:
		return "FA", "", "Free Agent", true
	case TidUndrafted:
		return "DP", "", "Draft Prospect", true
	case TidRetired:
		return "RET", "", "Retired", true
	}
	return "", "", "", false
}
