package replay

import (
	"testing"

	"google.golang.org/protobuf/proto"
)

func TestGenerateReplayTape_IsDeterministic(t *testing.T) {
	spec := baseSessionSpec()

	tapeA, err := GenerateReplayTape(spec)
	if err != nil {
		t.Fatalf("GenerateReplayTape A failed: %v", err)
	}
	tapeB, err := GenerateReplayTape(spec)
	if err != nil {
		t.Fatalf("GenerateReplayTape B failed: %v", err)
	}

	if len(tapeA.Events) != len(tapeB.Events) {
		t.Fatalf("event count differs: %d vs %d", len(tapeA.Events), len(tapeB.Events))
	}
	for i := range tapeA.Events {
		a, b := tapeA.Events[i], tapeB.Events[i]
		if a.Type != b.Type || a.Seq != b.Seq || a.EnvelopeB64 != b.EnvelopeB64 {
			t.Fatalf("event %d differs: %+v vs %+v", i, a, b)
		}
		if !proto.Equal(a.Value, b.Value) {
			t.Fatalf("event %d value differs", i)
		}
	}

	// start + 4 rounds + stop
	if len(tapeA.Events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(tapeA.Events))
	}
	if tapeA.Events[0].Type != EventGameStart || tapeA.Events[5].Type != EventGameStopped {
		t.Fatalf("unexpected event order: first=%s last=%s", tapeA.Events[0].Type, tapeA.Events[5].Type)
	}
	if tapeA.ComputerName != "Hal" || tapeA.HumanName != "Ada" {
		t.Fatalf("unexpected names: %s vs %s", tapeA.HumanName, tapeA.ComputerName)
	}
}

func TestGenerateReplayTape_PinnedComputerMoves(t *testing.T) {
	spec := SessionSpec{
		HumanName: "Ada",
		PersonaID: "rockloving",
		Rounds: []RoundSpec{
			{Human: "rock"},
			{Human: "paper"},
			{Human: "scissors", Computer: "spock"},
		},
	}
	tape, err := GenerateReplayTape(spec)
	if err != nil {
		t.Fatalf("GenerateReplayTape failed: %v", err)
	}

	wantOutcomes := []string{"tie", "human_wins", "computer_wins"}
	round := 0
	for _, e := range tape.Events {
		if e.Type != EventRoundResult {
			continue
		}
		env, err := DecodeEnvelope(e.EnvelopeB64)
		if err != nil {
			t.Fatalf("DecodeEnvelope failed: %v", err)
		}
		payload := Payload(env)
		if payload["outcome"] != wantOutcomes[round] {
			t.Fatalf("round %d: outcome %v, want %s", round+1, payload["outcome"], wantOutcomes[round])
		}
		round++
	}
	if round != 3 {
		t.Fatalf("expected 3 round results, got %d", round)
	}

	last, err := DecodeEnvelope(tape.Events[len(tape.Events)-1].EnvelopeB64)
	if err != nil {
		t.Fatalf("DecodeEnvelope failed: %v", err)
	}
	end := Payload(last)
	if end["human_score"] != float64(1) || end["computer_score"] != float64(1) {
		t.Fatalf("unexpected final score: %v-%v", end["human_score"], end["computer_score"])
	}
	if _, ok := end["winner"]; ok {
		t.Fatalf("stopped game must not name a winner")
	}
}

func TestGenerateReplayTape_GameOverAtWinScore(t *testing.T) {
	spec := SessionSpec{
		HumanName: "Ada",
		PersonaID: "rockloving",
		WinScore:  3,
		Rounds:    []RoundSpec{{Human: "paper"}, {Human: "paper"}, {Human: "spock"}},
	}
	tape, err := GenerateReplayTape(spec)
	if err != nil {
		t.Fatalf("GenerateReplayTape failed: %v", err)
	}
	last := tape.Events[len(tape.Events)-1]
	if last.Type != EventGameOver {
		t.Fatalf("expected gameOver, got %s", last.Type)
	}
	env, err := DecodeEnvelope(last.EnvelopeB64)
	if err != nil {
		t.Fatalf("DecodeEnvelope failed: %v", err)
	}
	payload := Payload(env)
	if payload["winner"] != "human" {
		t.Fatalf("expected human winner, got %v", payload["winner"])
	}
	moves, _ := payload["human_moves"].([]any)
	if len(moves) != 3 {
		t.Fatalf("expected 3 history rows, got %d", len(moves))
	}
}

func TestGenerateReplayTape_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SessionSpec)
		reason string
		step   int32
	}{
		{"empty name", func(s *SessionSpec) { s.HumanName = " " }, "invalid_name", -1},
		{"unknown persona", func(s *SessionSpec) { s.PersonaID = "chessloving" }, "unknown_persona", -1},
		{"no rounds", func(s *SessionSpec) { s.Rounds = nil }, "invalid_rounds", -1},
		{"bad move", func(s *SessionSpec) { s.Rounds[2].Human = "banana" }, "invalid_move", 2},
		{"rounds after win", func(s *SessionSpec) {
			s.PersonaID = "rockloving"
			s.WinScore = 1
			s.Rounds = []RoundSpec{{Human: "paper"}, {Human: "paper"}}
		}, "game_over", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := baseSessionSpec()
			tt.mutate(&spec)
			_, err := GenerateReplayTape(spec)
			if err == nil {
				t.Fatalf("expected replay error")
			}
			replayErr, ok := err.(*ReplayError)
			if !ok {
				t.Fatalf("expected ReplayError type, got %T", err)
			}
			if replayErr.Reason != tt.reason || replayErr.StepIndex != tt.step {
				t.Fatalf("unexpected error: %+v", replayErr)
			}
		})
	}
}

func TestToWireReplayTape(t *testing.T) {
	tape, err := GenerateReplayTape(baseSessionSpec())
	if err != nil {
		t.Fatalf("GenerateReplayTape failed: %v", err)
	}
	wire := ToWireReplayTape(tape)
	if wire.GameID != defaultGameID || len(wire.Events) != len(tape.Events) {
		t.Fatalf("unexpected wire tape: %+v", wire)
	}
	if wire.Events[1].EnvelopeB64 != tape.Events[1].EnvelopeB64 {
		t.Fatalf("wire tape must carry encoded envelopes")
	}
	if ToWireReplayTape(nil) != nil {
		t.Fatalf("nil tape must convert to nil")
	}
}

func baseSessionSpec() SessionSpec {
	return SessionSpec{
		HumanName: "Ada",
		PersonaID: "scissorsloving",
		Rounds: []RoundSpec{
			{Human: "rock"},
			{Human: "Spock"},
			{Human: "rock"},
			{Human: "lizard"},
		},
		RNG: &RNGSpec{Seed: 42},
	}
}
