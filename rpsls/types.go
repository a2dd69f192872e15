package rpsls

// DefaultWinScore is the score that ends a game.
const DefaultWinScore = 10

// Phase is the match state.
type Phase byte

const (
	PhaseAwaitingMoves  Phase = 0
	PhaseRoundResolved  Phase = 1
	PhaseContinuePrompt Phase = 2
	PhaseGameOver       Phase = 3
	PhaseReplayPrompt   Phase = 4
	PhaseSessionEnd     Phase = 5
)

var PhaseTypeDictionary = map[Phase]string{
	PhaseAwaitingMoves:  "awaiting_moves",
	PhaseRoundResolved:  "round_resolved",
	PhaseContinuePrompt: "continue_prompt",
	PhaseGameOver:       "game_over",
	PhaseReplayPrompt:   "replay_prompt",
	PhaseSessionEnd:     "session_end",
}

func (p Phase) String() string {
	if s, ok := PhaseTypeDictionary[p]; ok {
		return s
	}
	return "unknown"
}

// Outcome of a single round, from the human's point of view.
type Outcome byte

const (
	OutcomeTie          Outcome = 0
	OutcomeHumanWins    Outcome = 1
	OutcomeComputerWins Outcome = 2
)

var OutcomeDictionary = map[Outcome]string{
	OutcomeTie:          "tie",
	OutcomeHumanWins:    "human_wins",
	OutcomeComputerWins: "computer_wins",
}

func (o Outcome) String() string {
	if s, ok := OutcomeDictionary[o]; ok {
		return s
	}
	return "unknown"
}

// PlayerKind tags the two player variants.
type PlayerKind byte

const (
	PlayerKindHuman    PlayerKind = 1
	PlayerKindComputer PlayerKind = 2
)

var PlayerKindDictionary = map[PlayerKind]string{
	PlayerKindHuman:    "human",
	PlayerKindComputer: "computer",
}

func (k PlayerKind) String() string {
	if s, ok := PlayerKindDictionary[k]; ok {
		return s
	}
	return "unknown"
}
