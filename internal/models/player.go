package models

import (
	"fmt"

	"gorm.io/datatypes"
)

// Dim names one of the 15 rating dimensions. Height participates in overall
// and position derivation but is never touched by development.
type Dim string

const (
	DimHgt  Dim = "hgt"
	DimStre Dim = "stre"
	DimSpd  Dim = "spd"
	DimJmp  Dim = "jmp"
	DimEndu Dim = "endu"
	DimIns  Dim = "ins"
	DimDnk  Dim = "dnk"
	DimFT   Dim = "ft"
	DimFG   Dim = "fg"
	DimTP   Dim = "tp"
	DimBlk  Dim = "blk"
	DimStl  Dim = "stl"
	DimDrb  Dim = "drb"
	DimPss  Dim = "pss"
	DimReb  Dim = "reb"
)

// AllDims lists every dimension in the order overall averages them.
var AllDims = []Dim{
	DimHgt, DimStre, DimSpd, DimJmp, DimEndu, DimIns, DimDnk, DimFT,
	DimFG, DimTP, DimBlk, DimStl, DimDrb, DimPss, DimReb,
}

// SkillDims is AllDims minus height, the set development mutates.
var SkillDims = AllDims[1:]

// RatingsRow is one season's worth of true ratings for a player. Rows are
// append-only; the last row is always current.
type RatingsRow struct {
	Season int `json:"season"`

	Hgt  int `json:"hgt"`
	Stre int `json:"stre"`
	Spd  int `json:"spd"`
	Jmp  int `json:"jmp"`
	Endu int `json:"endu"`
	Ins  int `json:"ins"`
	Dnk  int `json:"dnk"`
	FT   int `json:"ft"`
	FG   int `json:"fg"`
	TP   int `json:"tp"`
	Blk  int `json:"blk"`
	Stl  int `json:"stl"`
	Drb  int `json:"drb"`
	Pss  int `json:"pss"`
	Reb  int `json:"reb"`

	Ovr    int      `json:"ovr"`
	Pot    int      `json:"pot"`
	Skills []string `json:"skills"`

	// Fuzz is the persisted noise added to displayed ratings so the user
	// never sees true ability. Intensity comes from scouting quality.
	Fuzz float64 `json:"fuzz"`
}

// Rating returns the score for a named dimension. Unknown dimensions are a
// programmer error, not a recoverable condition.
func (r *RatingsRow) Rating(d Dim) int {
	switch d {
	case DimHgt:
		return r.Hgt
	case DimStre:
		return r.Stre
	case DimSpd:
		return r.Spd
	case DimJmp:
		return r.Jmp
	case DimEndu:
		return r.Endu
	case DimIns:
		return r.Ins
	case DimDnk:
		return r.Dnk
	case DimFT:
		return r.FT
	case DimFG:
		return r.FG
	case DimTP:
		return r.TP
	case DimBlk:
		return r.Blk
	case DimStl:
		return r.Stl
	case DimDrb:
		return r.Drb
	case DimPss:
		return r.Pss
	case DimReb:
		return r.Reb
	}
	panic(fmt.Sprintf("models: unknown rating dimension %q", d))
}

// SetRating stores a score for a named dimension.
func (r *RatingsRow) SetRating(d Dim, v int) {
	switch d {
	case DimHgt:
		r.Hgt = v
	case DimStre:
		r.Stre = v
	case DimSpd:
		r.Spd = v
	case DimJmp:
		r.Jmp = v
	case DimEndu:
		r.Endu = v
	case DimIns:
		r.Ins = v
	case DimDnk:
		r.Dnk = v
	case DimFT:
		r.FT = v
	case DimFG:
		r.FG = v
	case DimTP:
		r.TP = v
	case DimBlk:
		r.Blk = v
	case DimStl:
		r.Stl = v
	case DimDrb:
		r.Drb = v
	case DimPss:
		r.Pss = v
	case DimReb:
		r.Reb = v
	default:
		panic(fmt.Sprintf("models: unknown rating dimension %q", d))
	}
}

// StatsRow holds season-to-date cumulative totals for one
// (season, team, playoffs) combination. Values stay cumulative until the
// filter engine converts them to per-game form.
type StatsRow struct {
	Season   int  `json:"season"`
	Tid      int  `json:"tid"`
	Playoffs bool `json:"playoffs"`

	GP  int     `json:"gp"`
	GS  int     `json:"gs"`
	Min float64 `json:"min"`

	FG          float64 `json:"fg"`
	FGA         float64 `json:"fga"`
	FGAtRim     float64 `json:"fgAtRim"`
	FGAAtRim    float64 `json:"fgaAtRim"`
	FGLowPost   float64 `json:"fgLowPost"`
	FGALowPost  float64 `json:"fgaLowPost"`
	FGMidRange  float64 `json:"fgMidRange"`
	FGAMidRange float64 `json:"fgaMidRange"`
	TP          float64 `json:"tp"`
	TPA         float64 `json:"tpa"`
	FT          float64 `json:"ft"`
	FTA         float64 `json:"fta"`
	ORB         float64 `json:"orb"`
	DRB         float64 `json:"drb"`
	TRB         float64 `json:"trb"`
	AST         float64 `json:"ast"`
	TOV         float64 `json:"tov"`
	STL         float64 `json:"stl"`
	Blk         float64 `json:"blk"`
	PF          float64 `json:"pf"`
	PTS         float64 `json:"pts"`

	// PER is the efficiency figure precomputed by the game simulator.
	PER float64 `json:"per"`
}

// Contract is a demanded or signed deal. Amount is in $1000s.
type Contract struct {
	Amount int `json:"amount"`
	Exp    int `json:"exp"`
}

// SalaryEntry records one committed season of pay. Entries are appended when
// a contract is signed and never rewritten.
type SalaryEntry struct {
	Season int `json:"season"`
	Amount int `json:"amount"`
}

// DraftInfo freezes a player's draft-day record.
type DraftInfo struct {
	Round       int `json:"round"`
	Pick        int `json:"pick"`
	Tid         int `json:"tid"`
	OriginalTid int `json:"originalTid"`
	Year        int `json:"year"`
	Pot         int `json:"pot"`
	Ovr         int `json:"ovr"`
}

// Injury is the player's current injury state. A zero GamesRemaining with an
// empty type means healthy.
type Injury struct {
	Type           string `json:"type"`
	GamesRemaining int    `json:"gamesRemaining"`
}

// Award is one line of a player's trophy case.
type Award struct {
	Season int    `json:"season"`
	Type   string `json:"type"`
}

// Face is a procedurally generated portrait descriptor.
type Face struct {
	ID    string `json:"id"`
	Skin  int    `json:"skin"`
	Eyes  int    `json:"eyes"`
	Nose  int    `json:"nose"`
	Mouth int    `json:"mouth"`
	Hair  int    `json:"hair"`
}

// Player is the central entity of the simulation.
type Player struct {
	ID   int    `gorm:"primaryKey" json:"pid"`
	Name string `gorm:"not null" json:"name"`
	Tid  int    `gorm:"index" json:"tid"`

	BornYear int    `json:"bornYear"`
	BornLoc  string `json:"bornLoc"`
	College  string `json:"college"`
	Face     Face   `gorm:"embedded;embeddedPrefix:face_" json:"face"`

	// HgtIn and WeightLb are derived once at generation from the height
	// rating and never recomputed.
	HgtIn    int `json:"hgt"`
	WeightLb int `json:"weight"`

	Ratings   datatypes.JSONSlice[RatingsRow] `json:"ratings"`
	Stats     datatypes.JSONSlice[StatsRow]   `json:"stats"`
	StatsTids datatypes.JSONSlice[int]        `json:"statsTids"`

	Contract Contract                          `gorm:"embedded;embeddedPrefix:contract_" json:"contract"`
	Salaries datatypes.JSONSlice[SalaryEntry]  `json:"salaries"`

	FreeAgentMood datatypes.JSONSlice[float64] `json:"freeAgentMood"`

	Draft  DraftInfo `gorm:"embedded;embeddedPrefix:draft_" json:"draft"`
	Injury Injury    `gorm:"embedded;embeddedPrefix:injury_" json:"injury"`

	Awards         datatypes.JSONSlice[Award] `json:"awards"`
	RetiredYear    int                        `json:"retiredYear"`
	YearsFreeAgent int                        `json:"yearsFreeAgent"`
}

// TableName keeps the table name stable regardless of pluralization rules.
func (Player) TableName() string {
	return "players"
}

// CurrentRatings returns the last (current) ratings row. Generation always
// seeds at least one row, so a player without one is malformed.
func (p *Player) CurrentRatings() *RatingsRow {
	if len(p.Ratings) == 0 {
		panic("models: player has no ratings rows")
	}
	return &p.Ratings[len(p.Ratings)-1]
}

// Age is the player's age in the given season.
func (p *Player) Age(season int) int {
	return season - p.BornYear
}

// HasStatsTid reports whether the player ever recorded stats for the team.
func (p *Player) HasStatsTid(tid int) bool {
	for _, t := range p.StatsTids {
		if t == tid {
			return true
		}
	}
	return false
}
