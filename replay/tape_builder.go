package replay

import (
	"log"

	"rpsls-lite/rpsls"
	"rpsls-lite/rpsls/npc"
)

// TapeBuilder accumulates the encoded events of one game. The live console
// session and GenerateReplayTape share it so both produce the same envelopes.
type TapeBuilder struct {
	gameID string
	seq    uint64
	events []ReplayEvent
}

func NewTapeBuilder(gameID string) *TapeBuilder {
	return &TapeBuilder{gameID: gameID}
}

func (b *TapeBuilder) GameID() string { return b.gameID }

func (b *TapeBuilder) AddGameStart(snap rpsls.Snapshot, persona *npc.Persona) {
	b.push(EventGameStart, gameStartPayload(snap, persona))
}

func (b *TapeBuilder) AddRoundResult(res rpsls.RoundResult) {
	b.push(EventRoundResult, roundResultPayload(res))
}

// AddGameEnd appends gameOver when someone reached the win score and
// gameStopped otherwise.
func (b *TapeBuilder) AddGameEnd(snap rpsls.Snapshot) {
	b.push(gameEndType(snap), gameEndPayload(snap))
}

// Events returns a copy of the events recorded so far.
func (b *TapeBuilder) Events() []ReplayEvent {
	return append([]ReplayEvent(nil), b.events...)
}

func (b *TapeBuilder) Tape(humanName, computerName string) *ReplayTape {
	return &ReplayTape{
		TapeVersion:  TapeVersion,
		GameID:       b.gameID,
		HumanName:    humanName,
		ComputerName: computerName,
		Events:       b.Events(),
	}
}

func (b *TapeBuilder) push(eventType string, payload map[string]any) {
	b.seq++
	env, err := newEnvelope(b.gameID, b.seq, eventType, payload)
	if err != nil {
		log.Printf("[Replay] build %s envelope failed: game=%s seq=%d err=%v", eventType, b.gameID, b.seq, err)
		return
	}
	encoded, err := encodeEnvelope(env)
	if err != nil {
		log.Printf("[Replay] marshal %s envelope failed: game=%s seq=%d err=%v", eventType, b.gameID, b.seq, err)
		return
	}
	b.events = append(b.events, ReplayEvent{
		Type:        eventType,
		Seq:         b.seq,
		Value:       env,
		EnvelopeB64: encoded,
	})
}
