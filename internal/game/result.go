package game

import "fmt"

// GameResult is the final outcome of a finished game. Pending is true while
// Good has won on missions but the Assassin has not yet taken their shot.
type GameResult struct {
	Winner  Faction
	Reason  string
	Pending bool
}

// GetGameResult returns the outcome of a finished game, or nil while the
// game is still running. Checks apply in referee priority order: vote
// exhaustion, mission count for Evil, then the assassination.
func GetGameResult(g *Game) *GameResult {
	if g.State.Phase != PhaseGameOver {
		return nil
	}

	switch {
	case g.State.FailedVotesInRow >= MaxFailedVotes:
		return &GameResult{Winner: FactionEvil, Reason: "five team proposals were rejected in a row"}
	case g.State.EvilMissionWins >= g.Config.MaxFails:
		return &GameResult{Winner: FactionEvil, Reason: "three missions failed"}
	case g.State.GoodMissionWins >= g.Config.MaxFails && g.State.AssassinSucceeded != nil:
		if *g.State.AssassinSucceeded {
			return &GameResult{Winner: FactionEvil, Reason: "the Assassin found Merlin"}
		}
		return &GameResult{Winner: FactionGood, Reason: "three missions succeeded and Merlin stayed hidden"}
	case g.State.GoodMissionWins >= g.Config.MaxFails:
		return &GameResult{Winner: FactionGood, Reason: "three missions succeeded; the Assassin may still name Merlin", Pending: true}
	default:
		return nil
	}
}

// AssassinateMerlin resolves the Assassin's one shot at naming Merlin after
// Good wins on missions. A second attempt is rejected rather than
// overwriting the first.
func AssassinateMerlin(g *Game, assassinID, targetID string) (*Game, error) {
	if g.State.Phase != PhaseGameOver || g.State.GoodMissionWins < g.Config.MaxFails {
		return nil, fmt.Errorf("%w: good has not won on missions", ErrAssassinationNotActive)
	}
	if g.State.AssassinSucceeded != nil {
		return nil, ErrAssassinationResolved
	}

	assassin := g.PlayerByID(assassinID)
	if assassin == nil || assassin.Role != RoleAssassin {
		return nil, fmt.Errorf("%w: %s", ErrNotAssassin, assassinID)
	}
	target := g.PlayerByID(targetID)
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, targetID)
	}

	next := g.clone()
	succeeded := target.Role == RoleMerlin
	next.State.AssassinSucceeded = &succeeded
	next.State.Phase = PhaseGameOver
	return next, nil
}
