package game

import "fmt"

// SelectTeam records the leader's team proposal for the current mission and
// opens the vote. The team must have exactly the mission's required size
// and contain only bound players.
func SelectTeam(g *Game, playerIDs []string) (*Game, error) {
	if g.State.Phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	if g.State.Phase != PhaseTeamSelection {
		return nil, fmt.Errorf("%w: team selection during %s", ErrWrongPhase, g.State.Phase)
	}

	mission := g.CurrentMission()
	if len(playerIDs) != mission.TeamSize {
		return nil, fmt.Errorf("%w: mission %d needs %d players, got %d",
			ErrInvalidTeamSize, g.State.CurrentMission+1, mission.TeamSize, len(playerIDs))
	}

	seen := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		if g.PlayerByID(id) == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %s proposed twice", ErrInvalidTeamSize, id)
		}
		seen[id] = true
	}

	next := g.clone()
	m := next.CurrentMission()
	m.Team = make([]string, len(playerIDs))
	copy(m.Team, playerIDs)
	m.Votes = make(map[string]bool)
	m.Approved = false
	next.State.Phase = PhaseVoting
	return next, nil
}

// SubmitVote records one player's approve/reject vote on the proposed team.
// Once every player has voted the round is tallied: approval requires
// strictly more than half of all players, so ties reject. A rejection
// increments the consecutive-failure counter; the fifth rejection in a row
// ends the game for Evil without rotating the leader.
func SubmitVote(g *Game, playerID string, approve bool) (*Game, error) {
	if g.State.Phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	if g.State.Phase != PhaseVoting {
		return nil, fmt.Errorf("%w: voting during %s", ErrWrongPhase, g.State.Phase)
	}
	if g.PlayerByID(playerID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	if _, voted := g.CurrentMission().Votes[playerID]; voted {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateVote, playerID)
	}

	next := g.clone()
	mission := next.CurrentMission()
	mission.Votes[playerID] = approve

	if len(mission.Votes) < next.PlayerCount() {
		return next, nil
	}

	approvals := 0
	for _, v := range mission.Votes {
		if v {
			approvals++
		}
	}

	if approvals*2 > next.PlayerCount() {
		mission.Approved = true
		next.State.FailedVotesInRow = 0
		next.State.Phase = PhaseMissionExecution
		return next, nil
	}

	next.State.FailedVotesInRow++
	if next.State.FailedVotesInRow >= MaxFailedVotes {
		next.State.Phase = PhaseGameOver
		return next, nil
	}

	next.advanceLeader()
	mission.reset()
	next.State.Phase = PhaseTeamSelection
	return next, nil
}

// SubmitMissionResult records a team member's Success or Fail card. Good
// players may only play Success; the check lives here, not in the UI. Once
// the whole team has acted the mission resolves: it fails when the Fail
// count reaches the mission's threshold. The third resolved mission for
// either side ends the game; otherwise the leader rotates and the next
// mission opens for team selection.
func SubmitMissionResult(g *Game, playerID string, result MissionResult) (*Game, error) {
	if g.State.Phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	if g.State.Phase != PhaseMissionExecution {
		return nil, fmt.Errorf("%w: mission action during %s", ErrWrongPhase, g.State.Phase)
	}

	player := g.PlayerByID(playerID)
	if player == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	mission := g.CurrentMission()
	if !mission.OnTeam(playerID) {
		return nil, fmt.Errorf("%w: %s", ErrNotOnTeam, playerID)
	}
	if _, acted := mission.Results[playerID]; acted {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAction, playerID)
	}
	if result == ResultFail && player.Faction() == FactionGood {
		return nil, fmt.Errorf("%w: %s", ErrGoodCannotFail, playerID)
	}

	next := g.clone()
	m := next.CurrentMission()
	m.Results[playerID] = result

	if len(m.Results) < len(m.Team) {
		return next, nil
	}

	fails := 0
	for _, r := range m.Results {
		if r == ResultFail {
			fails++
		}
	}

	if fails >= m.FailsRequired {
		m.FinalResult = ResultFail
		next.State.EvilMissionWins++
	} else {
		m.FinalResult = ResultSuccess
		next.State.GoodMissionWins++
	}

	if next.State.GoodMissionWins >= next.Config.MaxFails || next.State.EvilMissionWins >= next.Config.MaxFails {
		next.State.Phase = PhaseGameOver
		return next, nil
	}

	next.advanceLeader()
	next.State.CurrentMission++
	next.State.Phase = PhaseTeamSelection
	return next, nil
}
