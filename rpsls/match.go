package rpsls

import (
	"fmt"
	"strings"

	"rpsls-lite/move"
)

// RoundResult describes one resolved round and the score after it.
type RoundResult struct {
	Round         int
	HumanMove     move.Move
	ComputerMove  move.Move
	Outcome       Outcome
	HumanScore    int
	ComputerScore int
	GameOver      bool
}

// RoundRecord is one row of the move history.
type RoundRecord struct {
	Human    move.Move
	Computer move.Move
}

// Match owns both players and every score/history mutation for a session.
// It is not safe for concurrent use; a session runs on a single goroutine.
type Match struct {
	cfg Config

	human    *Player
	computer *Player

	game    int
	round   int
	phase   Phase
	winner  *Player
	stopped bool
}

func NewMatch(cfg Config) (*Match, error) {
	cfg.HumanName = strings.TrimSpace(cfg.HumanName)
	cfg.ComputerName = strings.TrimSpace(cfg.ComputerName)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Match{
		cfg:      cfg,
		human:    newPlayer(cfg.HumanName, PlayerKindHuman),
		computer: newPlayer(cfg.ComputerName, PlayerKindComputer),
		game:     1,
		phase:    PhaseAwaitingMoves,
	}, nil
}

func (m *Match) Human() *Player    { return m.human }
func (m *Match) Computer() *Player { return m.computer }
func (m *Match) Phase() Phase      { return m.phase }
func (m *Match) Round() int        { return m.round }
func (m *Match) Game() int         { return m.game }
func (m *Match) WinScore() int     { return m.cfg.WinScore }

// GameOver reports whether a player has reached the win score. It stays true
// until Replay resets the match.
func (m *Match) GameOver() bool { return m.winner != nil }

// Winner is the grand winner of the current game, or nil.
func (m *Match) Winner() *Player { return m.winner }

// Stopped reports whether the current game was ended early by the player.
func (m *Match) Stopped() bool { return m.stopped }

// PlayRound records both moves, resolves the round and credits the winner
// with exactly one point.
func (m *Match) PlayRound(human, computer move.Move) (RoundResult, error) {
	if m.phase == PhaseSessionEnd {
		return RoundResult{}, ErrSessionEnded
	}
	if m.winner != nil {
		return RoundResult{}, ErrGameOver
	}
	if m.phase != PhaseAwaitingMoves {
		return RoundResult{}, ErrInvalidState(fmt.Sprintf("cannot play a round in phase %s", m.phase))
	}
	if !human.Valid() || !computer.Valid() {
		return RoundResult{}, fmt.Errorf("play round %v vs %v: %w", human, computer, move.ErrUnknownMove)
	}

	m.round++
	m.human.record(human)
	m.computer.record(computer)

	outcome := Resolve(human, computer)
	switch outcome {
	case OutcomeHumanWins:
		m.human.addPoint()
	case OutcomeComputerWins:
		m.computer.addPoint()
	}

	switch {
	case m.human.score >= m.cfg.WinScore:
		m.winner = m.human
	case m.computer.score >= m.cfg.WinScore:
		m.winner = m.computer
	}
	m.phase = PhaseRoundResolved

	return RoundResult{
		Round:         m.round,
		HumanMove:     human,
		ComputerMove:  computer,
		Outcome:       outcome,
		HumanScore:    m.human.score,
		ComputerScore: m.computer.score,
		GameOver:      m.winner != nil,
	}, nil
}

// EndRound leaves RoundResolved for GameOver or ContinuePrompt and reports
// whether the game is over.
func (m *Match) EndRound() (bool, error) {
	if m.phase != PhaseRoundResolved {
		return false, ErrInvalidState(fmt.Sprintf("no resolved round in phase %s", m.phase))
	}
	if m.winner != nil {
		m.phase = PhaseGameOver
		return true, nil
	}
	m.phase = PhaseContinuePrompt
	return false, nil
}

// Continue answers the continue prompt. Declining ends the game without a
// grand winner; scores are kept until a replay is confirmed.
func (m *Match) Continue(yes bool) error {
	if m.phase != PhaseContinuePrompt {
		return ErrInvalidState(fmt.Sprintf("continue in phase %s", m.phase))
	}
	if yes {
		m.phase = PhaseAwaitingMoves
		return nil
	}
	m.stopped = true
	m.phase = PhaseReplayPrompt
	return nil
}

// FinishGame moves a won game on to the replay prompt.
func (m *Match) FinishGame() error {
	if m.phase != PhaseGameOver {
		return ErrInvalidState(fmt.Sprintf("finish game in phase %s", m.phase))
	}
	m.phase = PhaseReplayPrompt
	return nil
}

// Replay answers the replay prompt. On yes both players start from zero and
// the computer takes computerName (a freshly assigned persona); the human
// keeps their name.
func (m *Match) Replay(yes bool, computerName string) error {
	if m.phase != PhaseReplayPrompt {
		return ErrInvalidState(fmt.Sprintf("replay in phase %s", m.phase))
	}
	if !yes {
		m.phase = PhaseSessionEnd
		return nil
	}
	computerName = strings.TrimSpace(computerName)
	if computerName == "" {
		return fmt.Errorf("replay: computer name must not be empty")
	}

	m.human.resetForNewGame()
	m.computer.resetForNewGame()
	m.computer.Name = computerName
	m.round = 0
	m.winner = nil
	m.stopped = false
	m.game++
	m.phase = PhaseAwaitingMoves
	return nil
}

// Rounds pairs both histories into rows, oldest first.
func (m *Match) Rounds() []RoundRecord {
	n := len(m.human.history)
	if len(m.computer.history) < n {
		n = len(m.computer.history)
	}
	out := make([]RoundRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, RoundRecord{Human: m.human.history[i], Computer: m.computer.history[i]})
	}
	return out
}
