package game

// MissionResult is the card a team member plays on a mission
type MissionResult string

const (
	ResultSuccess MissionResult = "Success"
	ResultFail    MissionResult = "Fail"
)

// MissionCount is the number of missions in every game
const MissionCount = 5

// MaxFailedVotes is the number of consecutive rejected team proposals that
// hands the game to Evil.
const MaxFailedVotes = 5

// MissionConfig is the static per-player-count mission table: how many
// players each mission sends, how many Fail cards sink it, and how many
// failed missions lose the game.
type MissionConfig struct {
	TeamSizes     [MissionCount]int
	FailsRequired [MissionCount]int
	MaxFails      int
}

// missionConfigs follows the standard tables. The fourth mission needs two
// Fail cards at 7 players and up.
var missionConfigs = map[int]MissionConfig{
	5:  {TeamSizes: [5]int{2, 3, 2, 3, 3}, FailsRequired: [5]int{1, 1, 1, 1, 1}, MaxFails: 3},
	6:  {TeamSizes: [5]int{2, 3, 4, 3, 4}, FailsRequired: [5]int{1, 1, 1, 1, 1}, MaxFails: 3},
	7:  {TeamSizes: [5]int{2, 3, 3, 4, 4}, FailsRequired: [5]int{1, 1, 1, 2, 1}, MaxFails: 3},
	8:  {TeamSizes: [5]int{3, 4, 4, 5, 5}, FailsRequired: [5]int{1, 1, 1, 2, 1}, MaxFails: 3},
	9:  {TeamSizes: [5]int{3, 4, 4, 5, 5}, FailsRequired: [5]int{1, 1, 1, 2, 1}, MaxFails: 3},
	10: {TeamSizes: [5]int{3, 4, 4, 5, 5}, FailsRequired: [5]int{1, 1, 1, 2, 1}, MaxFails: 3},
}

// MissionConfigFor returns the mission table for a player count
func MissionConfigFor(playerCount int) (MissionConfig, bool) {
	cfg, ok := missionConfigs[playerCount]
	return cfg, ok
}

// MissionState is the mutable record for one mission slot. Team, votes and
// results are cleared whenever a proposal for the same mission is rejected.
type MissionState struct {
	TeamSize      int
	FailsRequired int
	Team          []string
	Votes         map[string]bool
	Approved      bool
	Results       map[string]MissionResult
	FinalResult   MissionResult // empty until every team member has acted
}

func newMissionState(teamSize, failsRequired int) *MissionState {
	return &MissionState{
		TeamSize:      teamSize,
		FailsRequired: failsRequired,
		Votes:         make(map[string]bool),
		Results:       make(map[string]MissionResult),
	}
}

// Resolved reports whether the mission has a final result
func (m *MissionState) Resolved() bool {
	return m.FinalResult != ""
}

// OnTeam reports whether the given player id is on the proposed team
func (m *MissionState) OnTeam(playerID string) bool {
	for _, id := range m.Team {
		if id == playerID {
			return true
		}
	}
	return false
}

// reset clears the proposal state so a new team can be put forward for the
// same mission number.
func (m *MissionState) reset() {
	m.Team = nil
	m.Votes = make(map[string]bool)
	m.Approved = false
	m.Results = make(map[string]MissionResult)
}

func (m *MissionState) clone() *MissionState {
	out := &MissionState{
		TeamSize:      m.TeamSize,
		FailsRequired: m.FailsRequired,
		Approved:      m.Approved,
		FinalResult:   m.FinalResult,
		Votes:         make(map[string]bool, len(m.Votes)),
		Results:       make(map[string]MissionResult, len(m.Results)),
	}
	if m.Team != nil {
		out.Team = make([]string, len(m.Team))
		copy(out.Team, m.Team)
	}
	for id, v := range m.Votes {
		out.Votes[id] = v
	}
	for id, r := range m.Results {
		out.Results[id] = r
	}
	return out
}
