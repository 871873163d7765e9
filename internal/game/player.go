package game

import (
	"github.com/google/uuid"
)

// Player represents one seat at the table. Role and identity are fixed at
// binding time; only liveness may change afterwards.
type Player struct {
	ID    string
	Name  string
	Role  Role
	Alive bool

	// Reveals records roles other players have deliberately revealed to
	// this player. Reserved for future mechanics; no rule reads it yet.
	Reveals map[string]Role
}

// NewPlayer creates a player bound to the given role
func NewPlayer(name string, role Role) *Player {
	return &Player{
		ID:    uuid.NewString(),
		Name:  name,
		Role:  role,
		Alive: true,
	}
}

// Faction returns the player's team, derived from their role
func (p *Player) Faction() Faction {
	return p.Role.Faction()
}

func (p *Player) clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	if p.Reveals != nil {
		out.Reveals = make(map[string]Role, len(p.Reveals))
		for id, role := range p.Reveals {
			out.Reveals[id] = role
		}
	}
	return &out
}
