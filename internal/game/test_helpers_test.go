package game

import (
	"fmt"
	"testing"
)

// newBoundGame builds a game with the given roles dealt in seating order,
// all slots bound, leader at seat 0, ready for team selection.
func newBoundGame(t *testing.T, roles []Role) *Game {
	t.Helper()

	config, ok := MissionConfigFor(len(roles))
	if !ok {
		t.Fatalf("unsupported player count %d", len(roles))
	}

	missions := make([]*MissionState, MissionCount)
	for i := range missions {
		missions[i] = newMissionState(config.TeamSizes[i], config.FailsRequired[i])
	}

	players := make([]*Player, len(roles))
	for i, role := range roles {
		players[i] = &Player{
			ID:    fmt.Sprintf("p%d", i+1),
			Name:  fmt.Sprintf("Player %d", i+1),
			Role:  role,
			Alive: true,
		}
	}

	return &Game{
		ID:      "test-game",
		Config:  config,
		Roles:   append([]Role(nil), roles...),
		Players: players,
		State: GameState{
			Phase:           PhaseTeamSelection,
			CurrentLeaderID: players[0].ID,
			Missions:        missions,
		},
	}
}

// fiveValidRoles is a legal 5-player deal with known seating
func fiveValidRoles() []Role {
	return []Role{RoleMerlin, RoleServant, RoleServant, RoleAssassin, RoleMinion}
}

// voteAll casts the given votes in seating order and returns the new game
func voteAll(t *testing.T, g *Game, approvals map[string]bool) *Game {
	t.Helper()

	for _, p := range g.Players {
		next, err := SubmitVote(g, p.ID, approvals[p.ID])
		if err != nil {
			t.Fatalf("vote by %s failed: %v", p.ID, err)
		}
		g = next
	}
	return g
}

// approveAll approves the current proposal unanimously
func approveAll(t *testing.T, g *Game) *Game {
	t.Helper()

	approvals := make(map[string]bool)
	for _, p := range g.Players {
		approvals[p.ID] = true
	}
	return voteAll(t, g, approvals)
}
