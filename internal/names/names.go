// Package names is the name/face generation collaborator. The tables here
// are a compact sample; the player core only depends on the interface.
package names

import (
	"github.com/google/uuid"

	"github.com/courtside-dev/roster-sim/internal/models"
	"github.com/courtside-dev/roster-sim/internal/player"
	"github.com/courtside-dev/roster-sim/internal/random"
)

var firstNames = []string{
	"Marcus", "DeAndre", "Tyrese", "Jalen", "Darius", "Malik", "Isaiah",
	"Jordan", "Trey", "Xavier", "Andre", "Devin", "Kendall", "Terrence",
	"Cameron", "Elijah", "Jamal", "Brandon", "Victor", "Luka",
}

var lastNames = []string{
	"Johnson", "Williams", "Carter", "Robinson", "Mitchell", "Harris",
	"Thompson", "Edwards", "Brooks", "Richardson", "Porter", "Bell",
	"Murray", "Green", "Allen", "Young", "Wright", "Hill", "Banks", "Reed",
}

var hometowns = []string{
	"Chicago, IL", "Houston, TX", "Atlanta, GA", "Los Angeles, CA",
	"Memphis, TN", "Baltimore, MD", "Detroit, MI", "Newark, NJ",
	"Oakland, CA", "Philadelphia, PA", "Brooklyn, NY", "Dallas, TX",
}

var colleges = []string{
	"Kentucky", "Duke", "Kansas", "North Carolina", "UCLA", "Gonzaga",
	"Michigan State", "Villanova", "Arizona", "Baylor", "Syracuse", "None",
}

// Service draws identities from the sample tables.
type Service struct {
	rnd *random.Source
}

// NewService builds an identity generator over the given source.
func NewService(rnd *random.Source) *Service {
	return &Service{rnd: rnd}
}

// NewIdentity implements player.IdentityService.
func (s *Service) NewIdentity() player.Identity {
	return player.Identity{
		Name:    firstNames[s.rnd.Int(0, len(firstNames)-1)] + " " + lastNames[s.rnd.Int(0, len(lastNames)-1)],
		BornLoc: hometowns[s.rnd.Int(0, len(hometowns)-1)],
		College: colleges[s.rnd.Int(0, len(colleges)-1)],
		Face: models.Face{
			ID:    uuid.NewString(),
			Skin:  s.rnd.Int(0, 4),
			Eyes:  s.rnd.Int(0, 8),
			Nose:  s.rnd.Int(0, 8),
			Mouth: s.rnd.Int(0, 8),
			Hair:  s.rnd.Int(0, 9),
		},
	}
}
