// Package session drives one interactive console session: name entry, a
// series of games against randomly assigned personas, and the goodbye.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"rpsls-lite/apps/console/internal/ledger"
	"rpsls-lite/apps/console/internal/terminal"
	"rpsls-lite/move"
	"rpsls-lite/replay"
	"rpsls-lite/rpsls"
	"rpsls-lite/rpsls/npc"

	"github.com/google/uuid"
)

// Options wires a Controller to its collaborators. Ledger and NewGameID are
// optional.
type Options struct {
	Prompter terminal.Prompter
	Printer  terminal.Printer
	Screen   terminal.Screen
	NPCs     *npc.Manager
	Ledger   ledger.Service
	WinScore int

	NewGameID func() string
}

type Controller struct {
	id       string
	prompter terminal.Prompter
	printer  terminal.Printer
	screen   terminal.Screen
	npcs     *npc.Manager
	ledger   ledger.Service
	winScore int
	newID    func() string

	match    *rpsls.Match
	opponent *npc.Opponent
	tape     *replay.TapeBuilder
}

func New(opts Options) (*Controller, error) {
	if opts.Prompter == nil || opts.Printer == nil {
		return nil, fmt.Errorf("session: prompter and printer are required")
	}
	if opts.NPCs == nil {
		return nil, fmt.Errorf("session: npc manager is required")
	}
	if opts.WinScore == 0 {
		opts.WinScore = rpsls.DefaultWinScore
	}
	if opts.WinScore < 0 {
		return nil, fmt.Errorf("session: win score must be > 0")
	}
	if opts.Screen == nil {
		opts.Screen = noopScreen{}
	}
	if opts.NewGameID == nil {
		opts.NewGameID = uuid.NewString
	}
	return &Controller{
		id:       uuid.NewString()[:8],
		prompter: opts.Prompter,
		printer:  opts.Printer,
		screen:   opts.Screen,
		npcs:     opts.NPCs,
		ledger:   opts.Ledger,
		winScore: opts.WinScore,
		newID:    opts.NewGameID,
	}, nil
}

// Run plays the session to the end. It returns nil when the user declines to
// play again or closes the input stream.
func (c *Controller) Run(ctx context.Context) error {
	err := c.run(ctx)
	if errors.Is(err, io.EOF) {
		log.Printf("[Session %s] input closed, ending session", c.id)
		c.printer.Println(goodbyeMessage)
		return nil
	}
	return err
}

func (c *Controller) run(ctx context.Context) error {
	c.screen.Clear()
	name, err := c.askName()
	if err != nil {
		return err
	}

	c.opponent, err = c.npcs.Spawn()
	if err != nil {
		return fmt.Errorf("assign opponent: %w", err)
	}
	c.match, err = rpsls.NewMatch(rpsls.Config{
		WinScore:     c.winScore,
		HumanName:    name,
		ComputerName: c.opponent.Persona.Name,
	})
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	log.Printf("[Session %s] started: human=%s opponent=%s win_score=%d", c.id, name, c.opponent.Persona.ID, c.winScore)

	c.screen.Clear()
	c.displayWelcome(ctx)

	for {
		if err := c.playGame(ctx); err != nil {
			return err
		}
		again, err := c.askYesNo(replayQuestion)
		if err != nil {
			return err
		}
		if !again {
			if err := c.match.Replay(false, ""); err != nil {
				return err
			}
			break
		}
		if err := c.startNextGame(); err != nil {
			return err
		}
	}

	log.Printf("[Session %s] ended after %d game(s)", c.id, c.match.Game())
	c.printer.Println(goodbyeMessage)
	return nil
}

// playGame runs rounds until someone reaches the win score or the user stops,
// then reports and records the game.
func (c *Controller) playGame(ctx context.Context) error {
	c.tape = replay.NewTapeBuilder(c.newID())
	c.tape.AddGameStart(c.match.Snapshot(), c.opponent.Persona)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := c.playRound()
		if err != nil {
			return err
		}
		c.tape.AddRoundResult(res)
		c.displayRound(res)

		over, err := c.match.EndRound()
		if err != nil {
			return err
		}
		if over {
			break
		}
		next, err := c.askYesNo(continueQuestion)
		if err != nil {
			return err
		}
		if err := c.match.Continue(next); err != nil {
			return err
		}
		if !next {
			break
		}
		c.screen.Clear()
	}

	if c.match.GameOver() {
		c.displayMoveHistory()
		c.displayGrandWinner()
		if err := c.match.FinishGame(); err != nil {
			return err
		}
	}
	c.tape.AddGameEnd(c.match.Snapshot())
	c.recordGame(ctx)
	return nil
}

func (c *Controller) playRound() (rpsls.RoundResult, error) {
	human, err := c.chooseMove(c.match.Human())
	if err != nil {
		return rpsls.RoundResult{}, err
	}
	computer, err := c.chooseMove(c.match.Computer())
	if err != nil {
		return rpsls.RoundResult{}, err
	}
	return c.match.PlayRound(human, computer)
}

func (c *Controller) chooseMove(p *rpsls.Player) (move.Move, error) {
	switch p.Kind {
	case rpsls.PlayerKindHuman:
		return c.askMove()
	case rpsls.PlayerKindComputer:
		return c.opponent.Brain.Decide(npc.GameView{
			Round:           c.match.Round() + 1,
			MyScore:         p.Score(),
			OpponentScore:   c.match.Human().Score(),
			OpponentHistory: c.match.Human().History(),
		}), nil
	default:
		return move.Invalid, rpsls.ErrInvalidState(fmt.Sprintf("no move source for player kind %s", p.Kind))
	}
}

func (c *Controller) startNextGame() error {
	opponent, err := c.npcs.Spawn()
	if err != nil {
		return fmt.Errorf("assign opponent: %w", err)
	}
	if err := c.match.Replay(true, opponent.Persona.Name); err != nil {
		return err
	}
	c.opponent = opponent
	log.Printf("[Session %s] game %d: new opponent %s", c.id, c.match.Game(), opponent.Persona.ID)
	c.printer.Println(fmt.Sprintf("Your new opponent is %s.", opponent.Persona.Name))
	return nil
}

// Match exposes the underlying match, mainly for inspection after Run.
func (c *Controller) Match() *rpsls.Match { return c.match }

type noopScreen struct{}

func (noopScreen) Clear() {}
