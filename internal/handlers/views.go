package handlers

import (
	"avalon/internal/game"
)

// The wire shapes below carry everything a screen needs to re-render a
// session. Consumers re-derive all of it from the latest snapshot on every
// call; nothing is pushed incrementally.

type seatView struct {
	Slot  int    `json:"slot"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Bound bool   `json:"bound"`
}

type missionView struct {
	TeamSize      int             `json:"teamSize"`
	FailsRequired int             `json:"failsRequired"`
	Team          []string        `json:"team,omitempty"`
	VotesCast     int             `json:"votesCast"`
	Votes         map[string]bool `json:"votes,omitempty"` // public once the round is tallied
	Approved      bool            `json:"approved"`
	ActionsIn     int             `json:"actionsIn"`
	FailCount     *int            `json:"failCount,omitempty"` // public once the mission resolves
	FinalResult   string          `json:"finalResult,omitempty"`
}

type resultView struct {
	Winner  string `json:"winner"`
	Reason  string `json:"reason"`
	Pending bool   `json:"pending"`
}

type gameSnapshot struct {
	Code             string        `json:"code"`
	Phase            string        `json:"phase"`
	CurrentMission   int           `json:"currentMission"`
	LeaderID         string        `json:"leaderId,omitempty"`
	FailedVotesInRow int           `json:"failedVotesInRow"`
	GoodMissionWins  int           `json:"goodMissionWins"`
	EvilMissionWins  int           `json:"evilMissionWins"`
	Seats            []seatView    `json:"seats"`
	Missions         []missionView `json:"missions"`
	Result           *resultView   `json:"result,omitempty"`
}

type knownPlayerView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Faction string `json:"faction,omitempty"`
	Role    string `json:"role,omitempty"`
}

// playerView is the caller's private screen: their own role plus what the
// visibility rules let them know about everyone else.
type playerView struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Role         string            `json:"role"`
	RoleName     string            `json:"roleName"`
	Description  string            `json:"description"`
	Faction      string            `json:"faction"`
	OtherPlayers []knownPlayerView `json:"otherPlayers"`
	Teammates    []knownPlayerView `json:"teammates,omitempty"`
}

// snapshotOf projects the public state of a game. Hidden information stays
// hidden: individual votes appear only after the round is tallied, and
// mission results only as an anonymous fail count after resolution.
func snapshotOf(code string, g *game.Game) gameSnapshot {
	snap := gameSnapshot{
		Code:             code,
		Phase:            string(g.State.Phase),
		CurrentMission:   g.State.CurrentMission,
		LeaderID:         g.State.CurrentLeaderID,
		FailedVotesInRow: g.State.FailedVotesInRow,
		GoodMissionWins:  g.State.GoodMissionWins,
		EvilMissionWins:  g.State.EvilMissionWins,
	}

	for i, p := range g.Players {
		seat := seatView{Slot: i}
		if p != nil {
			seat.ID = p.ID
			seat.Name = p.Name
			seat.Bound = true
		}
		snap.Seats = append(snap.Seats, seat)
	}

	for i, m := range g.State.Missions {
		mv := missionView{
			TeamSize:      m.TeamSize,
			FailsRequired: m.FailsRequired,
			Team:          m.Team,
			VotesCast:     len(m.Votes),
			Approved:      m.Approved,
			ActionsIn:     len(m.Results),
			FinalResult:   string(m.FinalResult),
		}
		voteRoundOpen := i == g.State.CurrentMission && g.State.Phase == game.PhaseVoting
		if m.Approved && !voteRoundOpen {
			mv.Votes = m.Votes
		}
		if m.Resolved() {
			fails := 0
			for _, r := range m.Results {
				if r == game.ResultFail {
					fails++
				}
			}
			mv.FailCount = &fails
		}
		snap.Missions = append(snap.Missions, mv)
	}

	if result := game.GetGameResult(g); result != nil {
		snap.Result = &resultView{
			Winner:  string(result.Winner),
			Reason:  result.Reason,
			Pending: result.Pending,
		}
	}

	return snap
}

// viewOf projects one player's private information
func viewOf(p *game.Player, g *game.Game) playerView {
	view := game.GetPlayerView(p, g.Players)

	out := playerView{
		ID:          p.ID,
		Name:        p.Name,
		Role:        string(p.Role),
		RoleName:    p.Role.DisplayName(),
		Description: p.Role.Description(),
		Faction:     string(p.Faction()),
	}
	for _, k := range view.OtherPlayers {
		out.OtherPlayers = append(out.OtherPlayers, knownPlayerView{
			ID:      k.ID,
			Name:    k.Name,
			Faction: string(k.Faction),
			Role:    string(k.Role),
		})
	}
	for _, k := range view.Teammates {
		out.Teammates = append(out.Teammates, knownPlayerView{
			ID:      k.ID,
			Name:    k.Name,
			Faction: string(k.Faction),
		})
	}
	return out
}
