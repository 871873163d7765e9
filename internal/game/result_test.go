package game

import (
	"errors"
	"testing"
)

func TestGetGameResultNilWhileRunning(t *testing.T) {
	g := newBoundGame(t, fiveValidRoles())
	if result := GetGameResult(g); result != nil {
		t.Errorf("expected nil before game over, got %+v", result)
	}
}

func TestGetGameResultEvilByMissions(t *testing.T) {
	g := newBoundGame(t, fiveValidRoles())
	g.State.Phase = PhaseGameOver
	g.State.EvilMissionWins = 3
	g.State.GoodMissionWins = 2

	result := GetGameResult(g)
	if result == nil || result.Winner != FactionEvil || result.Pending {
		t.Fatalf("expected settled Evil win, got %+v", result)
	}
}

func TestVoteExhaustionOutranksMissionScore(t *testing.T) {
	g := newBoundGame(t, fiveValidRoles())
	g.State.Phase = PhaseGameOver
	g.State.FailedVotesInRow = MaxFailedVotes
	g.State.GoodMissionWins = 2

	result := GetGameResult(g)
	if result == nil || result.Winner != FactionEvil {
		t.Fatalf("expected Evil win by vote exhaustion, got %+v", result)
	}
	if result.Reason != "five team proposals were rejected in a row" {
		t.Errorf("unexpected reason: %s", result.Reason)
	}
}

func TestAssassinationFlow(t *testing.T) {
	g := newBoundGame(t, fiveValidRoles())
	g.State.Phase = PhaseGameOver
	g.State.GoodMissionWins = 3

	// pending until the Assassin shoots
	result := GetGameResult(g)
	if result == nil || result.Winner != FactionGood || !result.Pending {
		t.Fatalf("expected pending Good win, got %+v", result)
	}

	// p4 is the Assassin; p2 is a Servant, not Merlin
	g, err := AssassinateMerlin(g, "p4", "p2")
	if err != nil {
		t.Fatal(err)
	}

	result = GetGameResult(g)
	if result == nil || result.Winner != FactionGood || result.Pending {
		t.Fatalf("expected settled Good win after a miss, got %+v", result)
	}
}

func TestAssassinationFindsMerlin(t *testing.T) {
	g := newBoundGame(t, fiveValidRoles())
	g.State.Phase = PhaseGameOver
	g.State.GoodMissionWins = 3

	g, err := AssassinateMerlin(g, "p4", "p1")
	if err != nil {
		t.Fatal(err)
	}

	result := GetGameResult(g)
	if result == nil || result.Winner != FactionEvil {
		t.Fatalf("expected Evil win after finding Merlin, got %+v", result)
	}
}

func TestAssassinateMerlinErrors(t *testing.T) {
	g := newBoundGame(t, fiveValidRoles())
	g.State.Phase = PhaseGameOver
	g.State.GoodMissionWins = 3

	if _, err := AssassinateMerlin(g, "p5", "p1"); !errors.Is(err, ErrNotAssassin) {
		t.Errorf("expected ErrNotAssassin for the Minion, got %v", err)
	}
	if _, err := AssassinateMerlin(g, "ghost", "p1"); !errors.Is(err, ErrNotAssassin) {
		t.Errorf("expected ErrNotAssassin for an unknown actor, got %v", err)
	}
	if _, err := AssassinateMerlin(g, "p4", "ghost"); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget, got %v", err)
	}

	running := newBoundGame(t, fiveValidRoles())
	if _, err := AssassinateMerlin(running, "p4", "p1"); !errors.Is(err, ErrAssassinationNotActive) {
		t.Errorf("expected ErrAssassinationNotActive mid-game, got %v", err)
	}

	evilWin := newBoundGame(t, fiveValidRoles())
	evilWin.State.Phase = PhaseGameOver
	evilWin.State.EvilMissionWins = 3
	if _, err := AssassinateMerlin(evilWin, "p4", "p1"); !errors.Is(err, ErrAssassinationNotActive) {
		t.Errorf("expected ErrAssassinationNotActive after an Evil win, got %v", err)
	}
}

func TestAssassinationCannotBeRepeated(t *testing.T) {
	g := newBoundGame(t, fiveValidRoles())
	g.State.Phase = PhaseGameOver
	g.State.GoodMissionWins = 3

	g, err := AssassinateMerlin(g, "p4", "p2")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := AssassinateMerlin(g, "p4", "p1"); !errors.Is(err, ErrAssassinationResolved) {
		t.Errorf("expected ErrAssassinationResolved on the second attempt, got %v", err)
	}

	// the first outcome stands
	result := GetGameResult(g)
	if result == nil || result.Winner != FactionGood {
		t.Fatalf("expected the original miss to stand, got %+v", result)
	}
}

func TestExactlyOneMerlinAndAssassinInEveryDeal(t *testing.T) {
	for count := 5; count <= 10; count++ {
		optional := OptionalRolesFor(count)
		g, err := CreateGame(count, optional)
		if err != nil {
			t.Fatalf("%d players: %v", count, err)
		}

		merlins := 0
		assassins := 0
		for _, r := range g.Roles {
			if r == RoleMerlin {
				merlins++
			}
			if r == RoleAssassin {
				assassins++
			}
		}
		if merlins != 1 || assassins != 1 {
			t.Errorf("%d players: expected exactly one Merlin and one Assassin, got %d and %d", count, merlins, assassins)
		}
	}
}
