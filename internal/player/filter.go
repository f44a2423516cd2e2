package player

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/courtside-dev/roster-sim/internal/league"
	"github.com/courtside-dev/roster-sim/internal/models"
)

// TeamInfo is the metadata the filter engine needs for team-name attributes.
type TeamInfo struct {
	Abbrev string
	Region string
	Name   string
}

// TeamLookup resolves real team ids. Sentinel ids are handled internally.
type TeamLookup interface {
	TeamInfo(tid int) (TeamInfo, bool)
}

// Scope sentinels for FilterOptions.
const (
	// AllSeasons requests one shaped stats record per accumulated season
	// plus a synthesized career record.
	AllSeasons = 0
	// AnyTeam disables team scoping; in single-season mode the first
	// matching row in record order wins when a player split the season
	// across teams.
	AnyTeam = math.MinInt32
)

// Attr names a computed or stored player attribute the engine can project.
type Attr string

const (
	AttrPid            Attr = "pid"
	AttrName           Attr = "name"
	AttrTid            Attr = "tid"
	AttrAbbrev         Attr = "abbrev"
	AttrTeamRegion     Attr = "teamRegion"
	AttrTeamName       Attr = "teamName"
	AttrAge            Attr = "age"
	AttrHgt            Attr = "hgt"
	AttrHgtFt          Attr = "hgtFt"
	AttrHgtIn          Attr = "hgtIn"
	AttrWeight         Attr = "weight"
	AttrBorn           Attr = "born"
	AttrCollege        Attr = "college"
	AttrFace           Attr = "face"
	AttrContract       Attr = "contract"
	AttrCashOwed       Attr = "cashOwed"
	AttrSalaries       Attr = "salaries"
	AttrSalariesTotal  Attr = "salariesTotal"
	AttrAwards         Attr = "awards"
	AttrDraft          Attr = "draft"
	AttrInjury         Attr = "injury"
	AttrPos            Attr = "pos"
	AttrYearsFreeAgent Attr = "yearsFreeAgent"
	AttrRetiredYear    Attr = "retiredYear"
	AttrStatsTids      Attr = "statsTids"
	AttrFreeAgentMood  Attr = "freeAgentMood"
)

// RatingField names a projectable per-row rating value.
type RatingField string

const (
	RatingSeason RatingField = "season"
	RatingOvr    RatingField = "ovr"
	RatingPot    RatingField = "pot"
	RatingFuzz   RatingField = "fuzz"
	RatingSkills RatingField = "skills"
	RatingPos    RatingField = "pos"
)

// StatField names a projectable per-row stat value, raw or derived.
type StatField string

const (
	StatSeason      StatField = "season"
	StatAge         StatField = "age"
	StatTid         StatField = "tid"
	StatAbbrev      StatField = "abbrev"
	StatPlayoffs    StatField = "playoffs"
	StatGP          StatField = "gp"
	StatGS          StatField = "gs"
	StatMin         StatField = "min"
	StatFG          StatField = "fg"
	StatFGA         StatField = "fga"
	StatFGAtRim     StatField = "fgAtRim"
	StatFGAAtRim    StatField = "fgaAtRim"
	StatFGLowPost   StatField = "fgLowPost"
	StatFGALowPost  StatField = "fgaLowPost"
	StatFGMidRange  StatField = "fgMidRange"
	StatFGAMidRange StatField = "fgaMidRange"
	StatTP          StatField = "tp"
	StatTPA         StatField = "tpa"
	StatFT          StatField = "ft"
	StatFTA         StatField = "fta"
	StatORB         StatField = "orb"
	StatDRB         StatField = "drb"
	StatTRB         StatField = "trb"
	StatAST         StatField = "ast"
	StatTOV         StatField = "tov"
	StatSTL         StatField = "stl"
	StatBlk         StatField = "blk"
	StatPF          StatField = "pf"
	StatPTS         StatField = "pts"
	StatPER         StatField = "per"
	StatFGP         StatField = "fgp"
	StatFGPAtRim    StatField = "fgpAtRim"
	StatFGPLowPost  StatField = "fgpLowPost"
	StatFGPMidRange StatField = "fgpMidRange"
	StatTPP         StatField = "tpp"
	StatFTP         StatField = "ftp"
)

// FilterOptions configures one engine invocation. Use NewFilterOptions for
// sane scope defaults.
type FilterOptions struct {
	Season int
	Tid    int

	Attrs   []Attr
	Ratings []RatingField
	Stats   []StatField

	// Totals returns cumulative counting stats instead of per-game values.
	Totals bool
	// Playoffs additionally shapes playoff rows.
	Playoffs bool
	// ShowNoStats force-includes players with no stats entry in scope.
	ShowNoStats bool
	// ShowRookies force-includes players drafted in the current season.
	ShowRookies bool
	// Fuzz adds each row's persisted noise term to displayed ratings.
	Fuzz bool
	// UseLastSeasonIfEmpty falls back to the prior season's stats rows when
	// the requested season has none; free-agent listings rely on it.
	UseLastSeasonIfEmpty bool
	// NumGamesRemaining prorates the current season's slice of cashOwed.
	NumGamesRemaining int
}

// NewFilterOptions returns options scoped to every season and any team.
func NewFilterOptions() FilterOptions {
	return FilterOptions{Season: AllSeasons, Tid: AnyTeam}
}

// FilteredPlayer is one shaped output record, keyed by the requested field
// names. Ratings and stats land under "ratings", "stats", "careerStats" and
// their playoff counterparts.
type FilteredPlayer map[string]interface{}

// Engine is the read-only projection layer over player records. It never
// mutates its inputs and is safe for concurrent use.
type Engine struct {
	lg    *league.Context
	teams TeamLookup
}

// NewEngine builds a filter engine for one league context.
func NewEngine(lg *league.Context, teams TeamLookup) *Engine {
	return &Engine{lg: lg, teams: teams}
}

var validAttrs = map[Attr]bool{
	AttrPid: true, AttrName: true, AttrTid: true, AttrAbbrev: true,
	AttrTeamRegion: true, AttrTeamName: true, AttrAge: true, AttrHgt: true,
	AttrHgtFt: true, AttrHgtIn: true, AttrWeight: true, AttrBorn: true,
	AttrCollege: true, AttrFace: true, AttrContract: true, AttrCashOwed: true,
	AttrSalaries: true, AttrSalariesTotal: true, AttrAwards: true,
	AttrDraft: true, AttrInjury: true, AttrPos: true,
	AttrYearsFreeAgent: true, AttrRetiredYear: true, AttrStatsTids: true,
	AttrFreeAgentMood: true,
}

var validRatingFields = func() map[RatingField]bool {
	m := map[RatingField]bool{
		RatingSeason: true, RatingOvr: true, RatingPot: true,
		RatingFuzz: true, RatingSkills: true, RatingPos: true,
	}
	for _, d := range models.AllDims {
		m[RatingField(d)] = true
	}
	return m
}()

var validStatFields = map[StatField]bool{
	StatSeason: true, StatAge: true, StatTid: true, StatAbbrev: true,
	StatPlayoffs: true, StatGP: true, StatGS: true, StatMin: true,
	StatFG: true, StatFGA: true, StatFGAtRim: true, StatFGAAtRim: true,
	StatFGLowPost: true, StatFGALowPost: true, StatFGMidRange: true,
	StatFGAMidRange: true, StatTP: true, StatTPA: true, StatFT: true,
	StatFTA: true, StatORB: true, StatDRB: true, StatTRB: true,
	StatAST: true, StatTOV: true, StatSTL: true, StatBlk: true,
	StatPF: true, StatPTS: true, StatPER: true, StatFGP: true,
	StatFGPAtRim: true, StatFGPLowPost: true, StatFGPMidRange: true,
	StatTPP: true, StatFTP: true,
}

// contextualStats are identity fields: never divided by games played and
// never summed into career totals.
var contextualStats = map[StatField]bool{
	StatSeason: true, StatAge: true, StatTid: true, StatAbbrev: true,
	StatPlayoffs: true, StatGP: true, StatGS: true,
}

func (opts FilterOptions) validate() error {
	for _, a := range opts.Attrs {
		if !validAttrs[a] {
			return fmt.Errorf("filter: unknown attribute %q", a)
		}
	}
	for _, r := range opts.Ratings {
		if !validRatingFields[r] {
			return fmt.Errorf("filter: unknown rating field %q", r)
		}
	}
	for _, s := range opts.Stats {
		if !validStatFields[s] {
			return fmt.Errorf("filter: unknown stat field %q", s)
		}
	}
	return nil
}

// Filter shapes a list of players, silently dropping entries that fail the
// inclusion criteria. Output order follows input order.
func (e *Engine) Filter(players []*models.Player, opts FilterOptions) ([]FilteredPlayer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	out := make([]FilteredPlayer, 0, len(players))
	for _, p := range players {
		fp, ok := e.filterOne(p, opts)
		if ok {
			out = append(out, fp)
		}
	}
	return out, nil
}

// FilterOne shapes a single player. The second return value is false when
// the player fails the inclusion criteria.
func (e *Engine) FilterOne(p *models.Player, opts FilterOptions) (FilteredPlayer, bool, error) {
	if err := opts.validate(); err != nil {
		return nil, false, err
	}
	fp, ok := e.filterOne(p, opts)
	return fp, ok, nil
}

func (e *Engine) filterOne(p *models.Player, opts FilterOptions) (FilteredPlayer, bool) {
	fp := FilteredPlayer{}

	e.projectAttrs(fp, p, opts)
	e.projectRatings(fp, p, opts)
	ok := e.projectStats(fp, p, opts)

	// With no stat fields requested there is nothing to gate inclusion on.
	if len(opts.Stats) == 0 {
		ok = true
	}
	return fp, ok
}

// --- attributes ---

func (e *Engine) teamInfo(tid int) TeamInfo {
	if abbrev, region, name, ok := league.TeamLabel(tid); ok {
		return TeamInfo{Abbrev: abbrev, Region: region, Name: name}
	}
	if info, ok := e.teams.TeamInfo(tid); ok {
		return info
	}
	return TeamInfo{}
}

func (e *Engine) projectAttrs(fp FilteredPlayer, p *models.Player, opts FilterOptions) {
	season := opts.Season
	if season == AllSeasons {
		season = e.lg.Season
	}

	for _, a := range opts.Attrs {
		switch a {
		case AttrPid:
			fp[string(a)] = p.ID
		case AttrName:
			fp[string(a)] = p.Name
		case AttrTid:
			fp[string(a)] = p.Tid
		case AttrAbbrev:
			fp[string(a)] = e.teamInfo(p.Tid).Abbrev
		case AttrTeamRegion:
			fp[string(a)] = e.teamInfo(p.Tid).Region
		case AttrTeamName:
			fp[string(a)] = e.teamInfo(p.Tid).Name
		case AttrAge:
			fp[string(a)] = season - p.BornYear
		case AttrHgt:
			fp[string(a)] = p.HgtIn
		case AttrHgtFt:
			fp[string(a)] = p.HgtIn / 12
		case AttrHgtIn:
			fp[string(a)] = p.HgtIn % 12
		case AttrWeight:
			fp[string(a)] = p.WeightLb
		case AttrBorn:
			fp[string(a)] = map[string]interface{}{"year": p.BornYear, "loc": p.BornLoc}
		case AttrCollege:
			fp[string(a)] = p.College
		case AttrFace:
			fp[string(a)] = p.Face
		case AttrContract:
			// Amounts display in $M, stored in $1000s.
			fp[string(a)] = map[string]interface{}{
				"amount": float64(p.Contract.Amount) / 1000,
				"exp":    p.Contract.Exp,
			}
		case AttrCashOwed:
			seasonsLeft := float64(p.Contract.Exp - e.lg.Season)
			gamesFrac := float64(opts.NumGamesRemaining) / float64(e.lg.GamesPerSeason)
			owed := (seasonsLeft + gamesFrac) * float64(p.Contract.Amount) / 1000
			if owed < 0 {
				owed = 0
			}
			fp[string(a)] = owed
		case AttrSalaries:
			entries := make([]map[string]interface{}, len(p.Salaries))
			for i, s := range p.Salaries {
				entries[i] = map[string]interface{}{
					"season": s.Season,
					"amount": float64(s.Amount) / 1000,
				}
			}
			fp[string(a)] = entries
		case AttrSalariesTotal:
			total := 0.0
			for _, s := range p.Salaries {
				total += float64(s.Amount) / 1000
			}
			fp[string(a)] = total
		case AttrAwards:
			fp[string(a)] = []models.Award(p.Awards)
		case AttrDraft:
			fp[string(a)] = p.Draft
		case AttrInjury:
			fp[string(a)] = p.Injury
		case AttrPos:
			fp[string(a)] = Pos(p.CurrentRatings())
		case AttrYearsFreeAgent:
			fp[string(a)] = p.YearsFreeAgent
		case AttrRetiredYear:
			fp[string(a)] = p.RetiredYear
		case AttrStatsTids:
			fp[string(a)] = []int(p.StatsTids)
		case AttrFreeAgentMood:
			fp[string(a)] = []float64(p.FreeAgentMood)
		}
	}
}

// --- ratings ---

// fuzzExempt fields display their true value even when noise is on.
var fuzzExempt = map[RatingField]bool{
	RatingFuzz: true, RatingSeason: true, RatingSkills: true, RatingPos: true,
}

func (e *Engine) projectRatings(fp FilteredPlayer, p *models.Player, opts FilterOptions) {
	if len(opts.Ratings) == 0 {
		return
	}

	if opts.Season != AllSeasons {
		for i := range p.Ratings {
			if p.Ratings[i].Season == opts.Season {
				fp["ratings"] = e.shapeRatings(&p.Ratings[i], opts)
				return
			}
		}
		// Missing season yields an omitted sub-record, not an error.
		return
	}

	rows := make([]map[string]interface{}, len(p.Ratings))
	for i := range p.Ratings {
		rows[i] = e.shapeRatings(&p.Ratings[i], opts)
	}
	fp["ratings"] = rows
}

func (e *Engine) shapeRatings(r *models.RatingsRow, opts FilterOptions) map[string]interface{} {
	out := make(map[string]interface{}, len(opts.Ratings))
	for _, f := range opts.Ratings {
		switch f {
		case RatingSeason:
			out[string(f)] = r.Season
		case RatingFuzz:
			out[string(f)] = r.Fuzz
		case RatingSkills:
			out[string(f)] = r.Skills
		case RatingPos:
			out[string(f)] = Pos(r)
		case RatingOvr:
			out[string(f)] = e.displayRating(r.Ovr, r.Fuzz, opts)
		case RatingPot:
			out[string(f)] = e.displayRating(r.Pot, r.Fuzz, opts)
		default:
			out[string(f)] = e.displayRating(r.Rating(models.Dim(f)), r.Fuzz, opts)
		}
	}
	return out
}

func (e *Engine) displayRating(v int, fuzz float64, opts FilterOptions) int {
	if !opts.Fuzz {
		return v
	}
	fuzzed := int(math.Round(float64(v) + fuzz))
	if fuzzed > 100 {
		fuzzed = 100
	} else if fuzzed < 0 {
		fuzzed = 0
	}
	return fuzzed
}

// --- stats ---

func (e *Engine) projectStats(fp FilteredPlayer, p *models.Player, opts FilterOptions) bool {
	if len(opts.Stats) == 0 {
		return true
	}

	if opts.Season != AllSeasons {
		return e.projectSeasonStats(fp, p, opts)
	}
	e.projectCareerStats(fp, p, opts)
	return true
}

func (e *Engine) projectSeasonStats(fp FilteredPlayer, p *models.Player, opts FilterOptions) bool {
	season := opts.Season
	reg := e.findStatsRow(p, season, opts.Tid, false)
	if reg == nil && opts.UseLastSeasonIfEmpty {
		season--
		reg = e.findStatsRow(p, season, opts.Tid, false)
	}

	if reg != nil {
		fp["stats"] = e.shapeStatsRow(p, reg, opts)
	} else {
		forced := opts.ShowNoStats || (opts.ShowRookies && p.Draft.Year == e.lg.Season)
		if !forced {
			return false
		}
		// Forced inclusion still yields a complete, explicitly zeroed row.
		zero := models.StatsRow{Season: opts.Season, Tid: p.Tid}
		fp["stats"] = e.shapeStatsRow(p, &zero, opts)
	}

	if opts.Playoffs {
		if po := e.findStatsRow(p, season, opts.Tid, true); po != nil {
			fp["statsPlayoffs"] = e.shapeStatsRow(p, po, opts)
		}
	}
	return true
}

// findStatsRow returns the first row matching the scope in record order.
// When a player logged stats for several teams in one season and no team is
// specified, first match wins; this mirrors the long-standing storage-order
// behavior rather than merging.
func (e *Engine) findStatsRow(p *models.Player, season, tid int, playoffs bool) *models.StatsRow {
	for i := range p.Stats {
		s := &p.Stats[i]
		if s.Season != season || s.Playoffs != playoffs {
			continue
		}
		if tid != AnyTeam && s.Tid != tid {
			continue
		}
		return s
	}
	return nil
}

func (e *Engine) projectCareerStats(fp FilteredPlayer, p *models.Player, opts FilterOptions) {
	var regular, playoffs []*models.StatsRow
	for i := range p.Stats {
		s := &p.Stats[i]
		if opts.Tid != AnyTeam && s.Tid != opts.Tid {
			continue
		}
		if s.Playoffs {
			playoffs = append(playoffs, s)
		} else {
			regular = append(regular, s)
		}
	}

	shape := func(rows []*models.StatsRow) []map[string]interface{} {
		out := make([]map[string]interface{}, len(rows))
		for i, s := range rows {
			out[i] = e.shapeStatsRow(p, s, opts)
		}
		return out
	}

	fp["stats"] = shape(regular)
	fp["careerStats"] = e.shapeStatsRow(p, e.sumCareer(regular), opts)
	if opts.Playoffs {
		fp["statsPlayoffs"] = shape(playoffs)
		fp["careerStatsPlayoffs"] = e.shapeStatsRow(p, e.sumCareer(playoffs), opts)
	}
}

// sumCareer synthesizes a career totals row: counting fields summed across
// seasons, contextual fields left at their zero values, and the efficiency
// figure recomputed as a minutes-weighted mean.
func (e *Engine) sumCareer(rows []*models.StatsRow) *models.StatsRow {
	career := &models.StatsRow{}

	minutes := make([]float64, 0, len(rows))
	pers := make([]float64, 0, len(rows))
	for _, s := range rows {
		career.GP += s.GP
		career.GS += s.GS
		career.Min += s.Min
		career.FG += s.FG
		career.FGA += s.FGA
		career.FGAtRim += s.FGAtRim
		career.FGAAtRim += s.FGAAtRim
		career.FGLowPost += s.FGLowPost
		career.FGALowPost += s.FGALowPost
		career.FGMidRange += s.FGMidRange
		career.FGAMidRange += s.FGAMidRange
		career.TP += s.TP
		career.TPA += s.TPA
		career.FT += s.FT
		career.FTA += s.FTA
		career.ORB += s.ORB
		career.DRB += s.DRB
		career.TRB += s.TRB
		career.AST += s.AST
		career.TOV += s.TOV
		career.STL += s.STL
		career.Blk += s.Blk
		career.PF += s.PF
		career.PTS += s.PTS

		if s.Min > 0 {
			minutes = append(minutes, s.Min)
			pers = append(pers, s.PER)
		}
	}

	// A career with no recorded minutes or games has an efficiency of
	// exactly 0, never NaN.
	if len(minutes) > 0 && career.Min > 0 && career.GP > 0 {
		career.PER = stat.Mean(pers, minutes)
	}
	return career
}

func (e *Engine) shapeStatsRow(p *models.Player, s *models.StatsRow, opts FilterOptions) map[string]interface{} {
	out := make(map[string]interface{}, len(opts.Stats))
	for _, f := range opts.Stats {
		out[string(f)] = e.statValue(p, s, f, opts)
	}
	return out
}

func (e *Engine) statValue(p *models.Player, s *models.StatsRow, f StatField, opts FilterOptions) interface{} {
	switch f {
	case StatSeason:
		return s.Season
	case StatAge:
		return s.Season - p.BornYear
	case StatTid:
		return s.Tid
	case StatAbbrev:
		return e.teamInfo(s.Tid).Abbrev
	case StatPlayoffs:
		return s.Playoffs
	case StatGP:
		return s.GP
	case StatGS:
		return s.GS
	case StatFGP:
		return pct(s.FG, s.FGA)
	case StatFGPAtRim:
		return pct(s.FGAtRim, s.FGAAtRim)
	case StatFGPLowPost:
		return pct(s.FGLowPost, s.FGALowPost)
	case StatFGPMidRange:
		return pct(s.FGMidRange, s.FGAMidRange)
	case StatTPP:
		return pct(s.TP, s.TPA)
	case StatFTP:
		return pct(s.FT, s.FTA)
	case StatPER:
		return s.PER
	}

	v := rawStat(s, f)
	if opts.Totals || contextualStats[f] {
		return v
	}
	if s.GP == 0 {
		return 0.0
	}
	return v / float64(s.GP)
}

func rawStat(s *models.StatsRow, f StatField) float64 {
	switch f {
	case StatMin:
		return s.Min
	case StatFG:
		return s.FG
	case StatFGA:
		return s.FGA
	case StatFGAtRim:
		return s.FGAtRim
	case StatFGAAtRim:
		return s.FGAAtRim
	case StatFGLowPost:
		return s.FGLowPost
	case StatFGALowPost:
		return s.FGALowPost
	case StatFGMidRange:
		return s.FGMidRange
	case StatFGAMidRange:
		return s.FGAMidRange
	case StatTP:
		return s.TP
	case StatTPA:
		return s.TPA
	case StatFT:
		return s.FT
	case StatFTA:
		return s.FTA
	case StatORB:
		return s.ORB
	case StatDRB:
		return s.DRB
	case StatTRB:
		return s.TRB
	case StatAST:
		return s.AST
	case StatTOV:
		return s.TOV
	case StatSTL:
		return s.STL
	case StatBlk:
		return s.Blk
	case StatPF:
		return s.PF
	case StatPTS:
		return s.PTS
	}
	panic(fmt.Sprintf("filter: no raw accessor for stat %q", f))
}

// pct is makes over attempts as a percentage, defined as exactly 0 when
// there are no attempts.
func pct(made, attempted float64) float64 {
	if attempted == 0 {
		return 0
	}
	return 100 * made / attempted
}
