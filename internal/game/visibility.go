package game

// KnownPlayer is what one player is permitted to know about another.
// Faction and Role are empty when the viewer has no information.
type KnownPlayer struct {
	ID      string
	Name    string
	Faction Faction
	Role    Role
}

// PlayerView is the information a single player may see about the table
type PlayerView struct {
	OtherPlayers []KnownPlayer
	Teammates    []KnownPlayer
}

// GetPlayerView computes the asymmetric information for one player. Pure
// and deterministic: it never mutates its inputs and always iterates the
// roster in seating order.
//
// Policy, one branch per role:
//   - Merlin sees the true role of every Evil player except Mordred.
//   - Percival sees who holds Merlin.
//   - Minion, Assassin and Mordred see the other Evil players except
//     Oberon, as faction-only teammates.
//   - Oberon sees nothing, and the branch above excludes him from every
//     other Evil player's teammate list. Both exclusions are deliberate.
//   - Plain Good roles see nothing.
func GetPlayerView(player *Player, allPlayers []*Player) PlayerView {
	view := PlayerView{}

	for _, other := range allPlayers {
		if other == nil || other.ID == player.ID {
			continue
		}

		known := KnownPlayer{ID: other.ID, Name: other.Name}

		switch player.Role {
		case RoleMerlin:
			if other.Faction() == FactionEvil && other.Role != RoleMordred {
				known.Faction = FactionEvil
				known.Role = other.Role
			}
		case RolePercival:
			if other.Role == RoleMerlin {
				known.Faction = FactionGood
				known.Role = RoleMerlin
			}
		case RoleMinion, RoleAssassin, RoleMordred:
			if other.Faction() == FactionEvil && other.Role != RoleOberon {
				known.Faction = FactionEvil
				view.Teammates = append(view.Teammates, KnownPlayer{
					ID:      other.ID,
					Name:    other.Name,
					Faction: FactionEvil,
				})
			}
		}

		view.OtherPlayers = append(view.OtherPlayers, known)
	}

	return view
}
