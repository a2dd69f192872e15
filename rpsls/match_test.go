package rpsls

import (
	"errors"
	"testing"

	"rpsls-lite/move"
)

func newTestMatch(t *testing.T, winScore int) *Match {
	t.Helper()
	m, err := NewMatch(Config{WinScore: winScore, HumanName: "Ada", ComputerName: "R2D2"})
	if err != nil {
		t.Fatalf("NewMatch err: %v", err)
	}
	return m
}

func playAndEnd(t *testing.T, m *Match, human, computer move.Move) (RoundResult, bool) {
	t.Helper()
	res, err := m.PlayRound(human, computer)
	if err != nil {
		t.Fatalf("PlayRound(%v, %v) err: %v", human, computer, err)
	}
	over, err := m.EndRound()
	if err != nil {
		t.Fatalf("EndRound err: %v", err)
	}
	return res, over
}

func TestNewMatch_ValidatesConfig(t *testing.T) {
	bad := []Config{
		{WinScore: 0, HumanName: "Ada", ComputerName: "Hal"},
		{WinScore: 10, HumanName: "   ", ComputerName: "Hal"},
		{WinScore: 10, HumanName: "Ada", ComputerName: ""},
	}
	for i, cfg := range bad {
		if _, err := NewMatch(cfg); err == nil {
			t.Fatalf("case %d: expected config error", i)
		}
	}
}

func TestPlayRound_TieKeepsScores(t *testing.T) {
	m := newTestMatch(t, DefaultWinScore)

	res, over := playAndEnd(t, m, move.Rock, move.Rock)
	if res.Outcome != OutcomeTie {
		t.Fatalf("expected tie, got %v", res.Outcome)
	}
	if res.HumanScore != 0 || res.ComputerScore != 0 {
		t.Fatalf("tie must not change scores: %d-%d", res.HumanScore, res.ComputerScore)
	}
	if over || m.Phase() != PhaseContinuePrompt {
		t.Fatalf("expected continue prompt after tie, got over=%v phase=%v", over, m.Phase())
	}
}

func TestPlayRound_WinnerGetsOnePoint(t *testing.T) {
	m := newTestMatch(t, DefaultWinScore)

	res, _ := playAndEnd(t, m, move.Paper, move.Rock)
	if res.Outcome != OutcomeHumanWins || res.HumanScore != 1 || res.ComputerScore != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if err := m.Continue(true); err != nil {
		t.Fatalf("Continue err: %v", err)
	}

	res, _ = playAndEnd(t, m, move.Scissors, move.Spock)
	if res.Outcome != OutcomeComputerWins || res.HumanScore != 1 || res.ComputerScore != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if m.Round() != 2 {
		t.Fatalf("expected round 2, got %d", m.Round())
	}
}

func TestPlayRound_ScoreMonotonic(t *testing.T) {
	m := newTestMatch(t, 1000)
	prevHuman, prevComputer := 0, 0
	for i := 0; i < 200; i++ {
		h := move.All[i%len(move.All)]
		c := move.All[(i*3+1)%len(move.All)]
		res, _ := playAndEnd(t, m, h, c)

		dh, dc := res.HumanScore-prevHuman, res.ComputerScore-prevComputer
		switch res.Outcome {
		case OutcomeHumanWins:
			if dh != 1 || dc != 0 {
				t.Fatalf("round %d: human win changed scores by %d/%d", res.Round, dh, dc)
			}
		case OutcomeComputerWins:
			if dh != 0 || dc != 1 {
				t.Fatalf("round %d: computer win changed scores by %d/%d", res.Round, dh, dc)
			}
		default:
			if dh != 0 || dc != 0 {
				t.Fatalf("round %d: tie changed scores by %d/%d", res.Round, dh, dc)
			}
		}
		prevHuman, prevComputer = res.HumanScore, res.ComputerScore
		if err := m.Continue(true); err != nil {
			t.Fatalf("Continue err: %v", err)
		}
	}
}

func TestGameOver_ExactlyAtWinScore(t *testing.T) {
	m := newTestMatch(t, DefaultWinScore)

	for i := 1; i <= DefaultWinScore; i++ {
		if m.GameOver() {
			t.Fatalf("game over too early before round %d", i)
		}
		res, over := playAndEnd(t, m, move.Paper, move.Rock)
		if i < DefaultWinScore {
			if over || res.GameOver {
				t.Fatalf("game flagged over at score %d", res.HumanScore)
			}
			if err := m.Continue(true); err != nil {
				t.Fatalf("Continue err: %v", err)
			}
			continue
		}
		if !over || !res.GameOver || m.Phase() != PhaseGameOver {
			t.Fatalf("expected game over at score %d, phase=%v", res.HumanScore, m.Phase())
		}
	}

	if m.Winner() != m.Human() {
		t.Fatalf("expected human grand winner")
	}
	if got := len(m.Rounds()); got != DefaultWinScore {
		t.Fatalf("expected %d history rows, got %d", DefaultWinScore, got)
	}

	// No further mutation while over.
	if _, err := m.PlayRound(move.Rock, move.Scissors); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if m.Human().Score() != DefaultWinScore || len(m.Human().History()) != DefaultWinScore {
		t.Fatalf("state changed after game over")
	}

	if err := m.FinishGame(); err != nil {
		t.Fatalf("FinishGame err: %v", err)
	}
	if !m.GameOver() {
		t.Fatalf("game must remain over until replay")
	}
	if err := m.Replay(true, "Hal"); err != nil {
		t.Fatalf("Replay err: %v", err)
	}
	if m.GameOver() || m.Human().Score() != 0 || m.Computer().Score() != 0 || len(m.Rounds()) != 0 {
		t.Fatalf("expected clean game after replay: %+v", m.Snapshot())
	}
}

func TestContinue_NoStopsWithoutWinner(t *testing.T) {
	m := newTestMatch(t, DefaultWinScore)
	playAndEnd(t, m, move.Lizard, move.Spock)

	if err := m.Continue(false); err != nil {
		t.Fatalf("Continue err: %v", err)
	}
	if m.Phase() != PhaseReplayPrompt {
		t.Fatalf("expected replay prompt, got %v", m.Phase())
	}
	if !m.Stopped() || m.Winner() != nil {
		t.Fatalf("expected early stop without winner")
	}
	// Scores survive until replay is confirmed.
	if m.Human().Score() != 1 {
		t.Fatalf("expected score kept after early stop, got %d", m.Human().Score())
	}
}

func TestReplay_ResetsScoresAndRenamesComputer(t *testing.T) {
	m := newTestMatch(t, DefaultWinScore)
	playAndEnd(t, m, move.Rock, move.Paper)
	if err := m.Continue(false); err != nil {
		t.Fatalf("Continue err: %v", err)
	}

	if err := m.Replay(true, "  "); err == nil {
		t.Fatalf("expected error for empty computer name")
	}
	if err := m.Replay(true, "Chappie"); err != nil {
		t.Fatalf("Replay err: %v", err)
	}

	snap := m.Snapshot()
	if snap.Phase != PhaseAwaitingMoves || snap.Game != 2 || snap.Round != 0 {
		t.Fatalf("unexpected snapshot after replay: %+v", snap)
	}
	if snap.Human.Name != "Ada" || snap.Computer.Name != "Chappie" {
		t.Fatalf("unexpected names: %s vs %s", snap.Human.Name, snap.Computer.Name)
	}
	if snap.Computer.Score != 0 || len(snap.Computer.History) != 0 || m.Stopped() {
		t.Fatalf("expected reset computer: %+v", snap.Computer)
	}
}

func TestReplay_NoEndsSession(t *testing.T) {
	m := newTestMatch(t, 1)
	playAndEnd(t, m, move.Spock, move.Rock)
	if err := m.FinishGame(); err != nil {
		t.Fatalf("FinishGame err: %v", err)
	}
	if err := m.Replay(false, ""); err != nil {
		t.Fatalf("Replay err: %v", err)
	}
	if m.Phase() != PhaseSessionEnd {
		t.Fatalf("expected session end, got %v", m.Phase())
	}
	if _, err := m.PlayRound(move.Rock, move.Rock); !errors.Is(err, ErrSessionEnded) {
		t.Fatalf("expected ErrSessionEnded, got %v", err)
	}
}

func TestPhaseGuards(t *testing.T) {
	m := newTestMatch(t, DefaultWinScore)

	if _, err := m.EndRound(); err == nil {
		t.Fatalf("expected EndRound error before any round")
	}
	if err := m.Continue(true); err == nil {
		t.Fatalf("expected Continue error while awaiting moves")
	}
	if err := m.FinishGame(); err == nil {
		t.Fatalf("expected FinishGame error while awaiting moves")
	}
	if err := m.Replay(true, "Hal"); err == nil {
		t.Fatalf("expected Replay error while awaiting moves")
	}

	if _, err := m.PlayRound(move.Rock, move.Invalid); !errors.Is(err, move.ErrUnknownMove) {
		t.Fatalf("expected ErrUnknownMove for invalid move, got %v", err)
	}
	if m.Round() != 0 {
		t.Fatalf("rejected round must not count")
	}

	if _, err := m.PlayRound(move.Rock, move.Paper); err != nil {
		t.Fatalf("PlayRound err: %v", err)
	}
	_, err := m.PlayRound(move.Rock, move.Paper)
	var stateErr InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected InvalidStateError before EndRound, got %v", err)
	}
}
