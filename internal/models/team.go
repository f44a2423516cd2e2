package models

// Team carries the metadata and expense ranks the player core reads. Ranks
// are 1..NumTeams ordinals over the prior three years of category spending,
// 1 being the biggest spender.
type Team struct {
	ID     int    `gorm:"primaryKey" json:"tid"`
	Abbrev string `gorm:"not null" json:"abbrev"`
	Region string `gorm:"not null" json:"region"`
	Name   string `gorm:"not null" json:"name"`

	// Hype is fan excitement in [0, 1]; Pop is market size in millions.
	// Both feed free-agency base moods.
	Hype float64 `json:"hype"`
	Pop  float64 `json:"pop"`

	CoachingRank   int `json:"coachingRank"`
	HealthRank     int `json:"healthRank"`
	FacilitiesRank int `json:"facilitiesRank"`
	ScoutingRank   int `json:"scoutingRank"`
}

// TableName keeps the table name stable regardless of pluralization rules.
func (Team) TableName() string {
	return "teams"
}
