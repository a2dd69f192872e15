package session

import (
	"context"
	"log"
	"time"

	"rpsls-lite/apps/console/internal/ledger"
	"rpsls-lite/rpsls"
)

const ledgerTimeout = 3 * time.Second

// recordGame stores the finished game. Failures are logged and never end the
// session.
func (c *Controller) recordGame(ctx context.Context) {
	if c.ledger == nil {
		return
	}
	snap := c.match.Snapshot()
	rec := ledger.GameRecord{
		GameID:        c.tape.GameID(),
		HumanName:     snap.Human.Name,
		ComputerName:  snap.Computer.Name,
		PersonaID:     c.opponent.Persona.ID,
		Stopped:       snap.Stopped,
		Rounds:        snap.Round,
		HumanScore:    snap.Human.Score,
		ComputerScore: snap.Computer.Score,
		WinScore:      snap.WinScore,
		PlayedAt:      time.Now().UTC(),
	}
	switch snap.Winner {
	case rpsls.PlayerKindHuman:
		rec.Winner = snap.Human.Name
	case rpsls.PlayerKindComputer:
		rec.Winner = snap.Computer.Name
	}

	ctx, cancel := context.WithTimeout(ctx, ledgerTimeout)
	defer cancel()
	if err := c.ledger.RecordGame(ctx, rec, ledger.EventsFromTape(c.tape.Events())); err != nil {
		log.Printf("[Session %s] record game failed: game=%s err=%v", c.id, rec.GameID, err)
		return
	}
	log.Printf("[Session %s] recorded game %s: %d-%d winner=%q", c.id, rec.GameID, rec.HumanScore, rec.ComputerScore, rec.Winner)
}

func (c *Controller) recordedGames(ctx context.Context, humanName string) int {
	if c.ledger == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(ctx, ledgerTimeout)
	defer cancel()
	n, err := c.ledger.CountGames(ctx, humanName)
	if err != nil {
		log.Printf("[Session %s] count games failed: human=%s err=%v", c.id, humanName, err)
		return 0
	}
	return n
}
