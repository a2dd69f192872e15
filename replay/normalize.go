package replay

import (
	"fmt"
	"strings"

	"rpsls-lite/move"
	"rpsls-lite/rpsls"
	"rpsls-lite/rpsls/npc"
)

type normalizedRound struct {
	human    move.Move
	computer move.Move // move.Invalid when the brain decides
}

type normalizedSpec struct {
	humanName string
	persona   *npc.Persona
	winScore  int
	rounds    []normalizedRound
	seed      int64
}

func normalizeSpec(spec SessionSpec, registry *npc.PersonaRegistry) (normalizedSpec, error) {
	var out normalizedSpec

	out.humanName = strings.TrimSpace(spec.HumanName)
	if out.humanName == "" {
		return out, &ReplayError{StepIndex: -1, Reason: "invalid_name", Message: "human_name must not be empty"}
	}

	out.persona = registry.Get(strings.TrimSpace(spec.PersonaID))
	if out.persona == nil {
		return out, &ReplayError{StepIndex: -1, Reason: "unknown_persona", Message: fmt.Sprintf("unknown persona %q", spec.PersonaID)}
	}

	out.winScore = spec.WinScore
	if out.winScore == 0 {
		out.winScore = rpsls.DefaultWinScore
	}
	if out.winScore < 0 {
		return out, &ReplayError{StepIndex: -1, Reason: "invalid_win_score", Message: "win_score must be > 0"}
	}

	if len(spec.Rounds) == 0 {
		return out, &ReplayError{StepIndex: -1, Reason: "invalid_rounds", Message: "at least 1 round is required"}
	}
	out.rounds = make([]normalizedRound, 0, len(spec.Rounds))
	for i, r := range spec.Rounds {
		human, err := move.Parse(r.Human)
		if err != nil {
			return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_move", Message: err.Error()}
		}
		nr := normalizedRound{human: human}
		if strings.TrimSpace(r.Computer) != "" {
			computer, err := move.Parse(r.Computer)
			if err != nil {
				return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_move", Message: err.Error()}
			}
			nr.computer = computer
		}
		out.rounds = append(out.rounds, nr)
	}

	out.seed = seedFromSpec(spec.RNG)
	return out, nil
}

// seedFromSpec keeps replays reproducible: a missing or zero seed is 1, never
// the clock.
func seedFromSpec(rng *RNGSpec) int64 {
	if rng == nil || rng.Seed == 0 {
		return 1
	}
	return rng.Seed
}
