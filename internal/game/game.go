package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Phase represents the current phase of a game
type Phase string

const (
	PhaseSetup            Phase = "setup"
	PhaseTeamSelection    Phase = "team_selection"
	PhaseVoting           Phase = "voting"
	PhaseMissionExecution Phase = "mission_execution"
	PhaseGameOver         Phase = "game_over"
)

// GameState holds everything that changes during play
type GameState struct {
	Phase            Phase
	CurrentMission   int
	CurrentLeaderID  string
	Missions         []*MissionState
	FailedVotesInRow int
	GoodMissionWins  int
	EvilMissionWins  int

	// AssassinSucceeded is nil until the assassination has been attempted
	AssassinSucceeded *bool
}

func (s *GameState) clone() GameState {
	out := *s
	out.Missions = make([]*MissionState, len(s.Missions))
	for i, m := range s.Missions {
		out.Missions[i] = m.clone()
	}
	if s.AssassinSucceeded != nil {
		v := *s.AssassinSucceeded
		out.AssassinSucceeded = &v
	}
	return out
}

// Game is the aggregate root. Every transition function takes a Game and
// returns a fresh copy; the input is never mutated, so callers may keep old
// snapshots for rendering or replay.
type Game struct {
	ID        string
	Config    MissionConfig
	Roles     []Role    // shuffled role slots, parallel to Players
	Players   []*Player // nil entries are unbound slots
	State     GameState
	CreatedAt time.Time
}

// CreateGame builds a new game for the given player count, dealing the base
// distribution plus any requested optional roles. Uses the shared
// math/rand source; tests use CreateGameWithRand for determinism.
func CreateGame(playerCount int, optionalRoles []Role) (*Game, error) {
	return CreateGameWithRand(playerCount, optionalRoles, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// CreateGameWithRand is CreateGame with an injected shuffle source
func CreateGameWithRand(playerCount int, optionalRoles []Role, rng *rand.Rand) (*Game, error) {
	config, ok := MissionConfigFor(playerCount)
	if !ok {
		return nil, fmt.Errorf("%w: %d players", ErrInvalidPlayerCount, playerCount)
	}

	roles, err := resolveRoleSet(playerCount, optionalRoles)
	if err != nil {
		return nil, err
	}

	rng.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})

	missions := make([]*MissionState, MissionCount)
	for i := range missions {
		missions[i] = newMissionState(config.TeamSizes[i], config.FailsRequired[i])
	}

	return &Game{
		ID:      uuid.NewString(),
		Config:  config,
		Roles:   roles,
		Players: make([]*Player, playerCount),
		State: GameState{
			Phase:    PhaseSetup,
			Missions: missions,
		},
		CreatedAt: time.Now(),
	}, nil
}

// resolveRoleSet starts from the base distribution and swaps in each legal
// optional role for a filler of the same faction. The result is re-checked
// against ValidateRoleSet so a short filler supply fails loudly instead of
// dealing an unbalanced game.
func resolveRoleSet(playerCount int, optionalRoles []Role) ([]Role, error) {
	roles := BaseDistribution(playerCount)

	for _, opt := range optionalRoles {
		min, isOptional := optionalRoleMinPlayers[opt]
		if !isOptional || playerCount < min {
			continue
		}
		if containsRole(roles, opt) {
			continue
		}

		filler := RoleServant
		if opt.Faction() == FactionEvil {
			filler = RoleMinion
		}
		trimmed, ok := removeLastRole(roles, filler)
		if !ok {
			return nil, fmt.Errorf("%w: no %s left to make room for %s", ErrInvalidRoleSet, filler, opt)
		}
		roles = append(trimmed, opt)
	}

	if !ValidateRoleSet(playerCount, roles) {
		return nil, fmt.Errorf("%w: %v for %d players", ErrInvalidRoleSet, roles, playerCount)
	}
	return roles, nil
}

func removeLastRole(roles []Role, role Role) ([]Role, bool) {
	for i := len(roles) - 1; i >= 0; i-- {
		if roles[i] == role {
			return append(roles[:i], roles[i+1:]...), true
		}
	}
	return roles, false
}

// InitializePlayer binds a named player to a role slot. When the last slot
// is bound, the first player becomes leader and the game advances to team
// selection. Returns the new game snapshot and the bound player.
func InitializePlayer(g *Game, name string, slotIndex int) (*Game, *Player, error) {
	if g.State.Phase != PhaseSetup {
		return nil, nil, fmt.Errorf("%w: players can only join during setup", ErrWrongPhase)
	}
	if slotIndex < 0 || slotIndex >= len(g.Players) {
		return nil, nil, fmt.Errorf("%w: slot %d of %d", ErrInvalidSlot, slotIndex, len(g.Players))
	}
	if g.Players[slotIndex] != nil {
		return nil, nil, fmt.Errorf("%w: slot %d", ErrSlotTaken, slotIndex)
	}

	next := g.clone()
	player := NewPlayer(name, next.Roles[slotIndex])
	next.Players[slotIndex] = player

	if next.boundPlayers() == len(next.Players) {
		next.State.CurrentLeaderID = next.Players[0].ID
		next.State.Phase = PhaseTeamSelection
	}
	return next, player, nil
}

// PlayerByID returns the bound player with the given id, or nil
func (g *Game) PlayerByID(id string) *Player {
	for _, p := range g.Players {
		if p != nil && p.ID == id {
			return p
		}
	}
	return nil
}

// CurrentMission returns the mission being played
func (g *Game) CurrentMission() *MissionState {
	return g.State.Missions[g.State.CurrentMission]
}

// PlayerCount returns the number of seats at the table
func (g *Game) PlayerCount() int {
	return len(g.Players)
}

func (g *Game) boundPlayers() int {
	count := 0
	for _, p := range g.Players {
		if p != nil {
			count++
		}
	}
	return count
}

// advanceLeader moves the leader token one seat in binding order, wrapping
// at the end of the table.
func (g *Game) advanceLeader() {
	for i, p := range g.Players {
		if p != nil && p.ID == g.State.CurrentLeaderID {
			g.State.CurrentLeaderID = g.Players[(i+1)%len(g.Players)].ID
			return
		}
	}
}

// clone deep-copies the aggregate so transitions never alias the caller's
// snapshot.
func (g *Game) clone() *Game {
	out := &Game{
		ID:        g.ID,
		Config:    g.Config,
		CreatedAt: g.CreatedAt,
		State:     g.State.clone(),
	}
	out.Roles = make([]Role, len(g.Roles))
	copy(out.Roles, g.Roles)
	out.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		out.Players[i] = p.clone()
	}
	return out
}
