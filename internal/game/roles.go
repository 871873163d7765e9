package game

// Faction represents the team a role belongs to
type Faction string

const (
	FactionGood Faction = "Good"
	FactionEvil Faction = "Evil"
)

// Role represents one of the hidden roles dealt at setup
type Role string

const (
	RoleMerlin   Role = "Merlin"
	RolePercival Role = "Percival"
	RoleServant  Role = "Servant"
	RoleMinion   Role = "Minion"
	RoleAssassin Role = "Assassin"
	RoleMordred  Role = "Mordred"
	RoleOberon   Role = "Oberon"
)

// Faction returns the team a role fights for. The faction is always derived
// from the role, never stored alongside it.
func (r Role) Faction() Faction {
	switch r {
	case RoleMinion, RoleAssassin, RoleMordred, RoleOberon:
		return FactionEvil
	default:
		return FactionGood
	}
}

// DisplayName returns the player-facing name of the role
func (r Role) DisplayName() string {
	switch r {
	case RoleMerlin:
		return "Merlin"
	case RolePercival:
		return "Percival"
	case RoleServant:
		return "Loyal Servant"
	case RoleMinion:
		return "Minion of Mordred"
	case RoleAssassin:
		return "Assassin"
	case RoleMordred:
		return "Mordred"
	case RoleOberon:
		return "Oberon"
	default:
		return string(r)
	}
}

// Description returns the rules text shown on the role reveal screen
func (r Role) Description() string {
	switch r {
	case RoleMerlin:
		return "Knows the agents of Evil, except Mordred. If the Assassin names you, Evil wins."
	case RolePercival:
		return "Knows who Merlin is. Protect him with your doubt."
	case RoleServant:
		return "A loyal servant of Arthur. Knows nothing but their own heart."
	case RoleMinion:
		return "A minion of Mordred. Knows the other agents of Evil, except Oberon."
	case RoleAssassin:
		return "A minion of Mordred. If Good wins three quests, you may name Merlin to steal the victory."
	case RoleMordred:
		return "The Evil commander. Unknown to Merlin."
	case RoleOberon:
		return "An agent of Evil acting alone. Unknown to the other minions, and they to him."
	default:
		return ""
	}
}

// baseDistributions lists the default role set per supported player count.
// Evil headcount follows ceil(n/3): 2 at 5-6, 3 at 7-9, 4 at 10.
var baseDistributions = map[int][]Role{
	5:  {RoleMerlin, RoleServant, RoleServant, RoleAssassin, RoleMinion},
	6:  {RoleMerlin, RoleServant, RoleServant, RoleServant, RoleAssassin, RoleMinion},
	7:  {RoleMerlin, RoleServant, RoleServant, RoleServant, RoleAssassin, RoleMinion, RoleMinion},
	8:  {RoleMerlin, RoleServant, RoleServant, RoleServant, RoleServant, RoleAssassin, RoleMinion, RoleMinion},
	9:  {RoleMerlin, RoleServant, RoleServant, RoleServant, RoleServant, RoleServant, RoleAssassin, RoleMinion, RoleMinion},
	10: {RoleMerlin, RoleServant, RoleServant, RoleServant, RoleServant, RoleServant, RoleAssassin, RoleMinion, RoleMinion, RoleMinion},
}

// optionalRoleMinPlayers gates each optional role behind a minimum table size
var optionalRoleMinPlayers = map[Role]int{
	RolePercival: 5,
	RoleMordred:  7,
	RoleOberon:   10,
}

// optionalRoleOrder keeps OptionalRolesFor deterministic
var optionalRoleOrder = []Role{RolePercival, RoleMordred, RoleOberon}

// BaseDistribution returns the default role set for a player count, or nil
// when the count is unsupported.
func BaseDistribution(playerCount int) []Role {
	dist, ok := baseDistributions[playerCount]
	if !ok {
		return nil
	}
	out := make([]Role, len(dist))
	copy(out, dist)
	return out
}

// EvilCount returns the required Evil headcount for a player count
func EvilCount(playerCount int) int {
	count := 0
	for _, r := range baseDistributions[playerCount] {
		if r.Faction() == FactionEvil {
			count++
		}
	}
	return count
}

// OptionalRolesFor returns the optional roles usable at the given player
// count, excluding any already present in the base distribution.
func OptionalRolesFor(playerCount int) []Role {
	base := baseDistributions[playerCount]
	if base == nil {
		return nil
	}
	var out []Role
	for _, r := range optionalRoleOrder {
		if playerCount < optionalRoleMinPlayers[r] {
			continue
		}
		if containsRole(base, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ValidateRoleSet reports whether a role list is a legal deal for the given
// player count: size matches, Merlin and Assassin each appear exactly once,
// and the Evil headcount matches the count's distribution.
func ValidateRoleSet(playerCount int, roles []Role) bool {
	if _, ok := baseDistributions[playerCount]; !ok {
		return false
	}
	if len(roles) != playerCount {
		return false
	}

	merlins := 0
	assassins := 0
	evil := 0
	for _, r := range roles {
		switch r {
		case RoleMerlin:
			merlins++
		case RoleAssassin:
			assassins++
		}
		if r.Faction() == FactionEvil {
			evil++
		}
	}

	return merlins == 1 && assassins == 1 && evil == EvilCount(playerCount)
}

func containsRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
