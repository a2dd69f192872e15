package replay

import (
	"fmt"

	"rpsls-lite/move"
	"rpsls-lite/rpsls"
	"rpsls-lite/rpsls/npc"
)

const defaultGameID = "replay_local"

// GenerateReplayTape replays spec against the built-in personas.
func GenerateReplayTape(spec SessionSpec) (*ReplayTape, error) {
	return GenerateReplayTapeWithRegistry(spec, npc.DefaultRegistry())
}

// GenerateReplayTapeWithRegistry replays one game and returns its tape. The
// same spec always yields the same tape. Rounds after the game is won are
// rejected; running out of rounds before that counts as an early stop.
func GenerateReplayTapeWithRegistry(spec SessionSpec, registry *npc.PersonaRegistry) (*ReplayTape, error) {
	ns, err := normalizeSpec(spec, registry)
	if err != nil {
		return nil, err
	}

	match, err := rpsls.NewMatch(rpsls.Config{
		WinScore:     ns.winScore,
		HumanName:    ns.humanName,
		ComputerName: ns.persona.Name,
	})
	if err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "engine_init_failed", Message: err.Error()}
	}
	brain := npc.NewWeightedBrain(ns.persona, ns.seed)

	builder := NewTapeBuilder(defaultGameID)
	builder.AddGameStart(match.Snapshot(), ns.persona)

	for stepIdx, round := range ns.rounds {
		if match.GameOver() {
			return nil, &ReplayError{
				StepIndex: int32(stepIdx),
				Reason:    "game_over",
				Message:   fmt.Sprintf("game already won by %s; no further rounds are allowed", match.Winner().Name),
			}
		}
		if stepIdx > 0 {
			if err := match.Continue(true); err != nil {
				return nil, &ReplayError{StepIndex: int32(stepIdx), Reason: "continue_failed", Message: err.Error()}
			}
		}

		computer := round.computer
		if computer == move.Invalid {
			computer = brain.Decide(npc.GameView{
				Round:           match.Round() + 1,
				MyScore:         match.Computer().Score(),
				OpponentScore:   match.Human().Score(),
				OpponentHistory: match.Human().History(),
			})
		}

		res, err := match.PlayRound(round.human, computer)
		if err != nil {
			return nil, &ReplayError{StepIndex: int32(stepIdx), Reason: "play_round_failed", Message: err.Error()}
		}
		builder.AddRoundResult(res)
		if _, err := match.EndRound(); err != nil {
			return nil, &ReplayError{StepIndex: int32(stepIdx), Reason: "end_round_failed", Message: err.Error()}
		}
	}

	if match.GameOver() {
		err = match.FinishGame()
	} else {
		err = match.Continue(false)
	}
	if err != nil {
		return nil, &ReplayError{StepIndex: int32(len(ns.rounds)), Reason: "finish_failed", Message: err.Error()}
	}
	builder.AddGameEnd(match.Snapshot())

	return builder.Tape(ns.humanName, ns.persona.Name), nil
}
