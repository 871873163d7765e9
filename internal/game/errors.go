package game

import "errors"

var (
	ErrInvalidPlayerCount     = errors.New("no mission configuration exists for that player count")
	ErrInvalidRoleSet         = errors.New("role set does not satisfy the distribution rules")
	ErrInvalidSlot            = errors.New("role slot index is out of range")
	ErrSlotTaken              = errors.New("role slot is already bound to a player")
	ErrWrongPhase             = errors.New("action is not valid in the current phase")
	ErrGameOver               = errors.New("game is already over")
	ErrInvalidTeamSize        = errors.New("proposed team does not match the mission's required size")
	ErrUnknownPlayer          = errors.New("no player with that id is in the game")
	ErrDuplicateVote          = errors.New("player has already voted this round")
	ErrNotOnTeam              = errors.New("player is not on the mission team")
	ErrDuplicateAction        = errors.New("player has already acted on this mission")
	ErrGoodCannotFail         = errors.New("good players cannot fail a mission")
	ErrNotAssassin            = errors.New("only the Assassin may attempt the assassination")
	ErrUnknownTarget          = errors.New("assassination target is not in the game")
	ErrAssassinationResolved  = errors.New("the assassination has already been resolved")
	ErrAssassinationNotActive = errors.New("the assassination is not available")
)
