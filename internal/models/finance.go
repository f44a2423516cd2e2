package models

// ReleasedContract is a team's leftover obligation to a player it waived.
// The deal stays on the books until its expiration even though the player
// is gone.
type ReleasedContract struct {
	ID     int `gorm:"primaryKey" json:"id"`
	Tid    int `gorm:"index" json:"tid"`
	Pid    int `json:"pid"`
	Amount int `json:"amount"`
	Exp    int `json:"exp"`
}

// TableName keeps the table name stable regardless of pluralization rules.
func (ReleasedContract) TableName() string {
	return "released_contracts"
}
