package replay

import (
	"encoding/base64"
	"fmt"

	"rpsls-lite/rpsls"
	"rpsls-lite/rpsls/npc"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	EventGameStart   = "gameStart"
	EventRoundResult = "roundResult"
	EventGameOver    = "gameOver"
	EventGameStopped = "gameStopped"
)

var marshalOpts = proto.MarshalOptions{Deterministic: true}

func newEnvelope(gameID string, seq uint64, eventType string, payload map[string]any) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"game_id": gameID,
		"seq":     seq,
		"type":    eventType,
		"payload": payload,
	})
}

func encodeEnvelope(env *structpb.Struct) (string, error) {
	bin, err := marshalOpts.Marshal(env)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bin), nil
}

// DecodeEnvelope reverses the base64 protobuf encoding used by tapes and the
// ledger event stream.
func DecodeEnvelope(envelopeB64 string) (*structpb.Struct, error) {
	bin, err := base64.StdEncoding.DecodeString(envelopeB64)
	if err != nil {
		return nil, fmt.Errorf("decode envelope base64: %w", err)
	}
	env := &structpb.Struct{}
	if err := proto.Unmarshal(bin, env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return env, nil
}

// Payload returns the payload object of a decoded envelope.
func Payload(env *structpb.Struct) map[string]any {
	if env == nil {
		return nil
	}
	v, ok := env.GetFields()["payload"]
	if !ok {
		return nil
	}
	return v.GetStructValue().AsMap()
}

func gameStartPayload(snap rpsls.Snapshot, persona *npc.Persona) map[string]any {
	out := map[string]any{
		"game":          snap.Game,
		"win_score":     snap.WinScore,
		"human_name":    snap.Human.Name,
		"computer_name": snap.Computer.Name,
	}
	if persona != nil {
		out["persona_id"] = persona.ID
		out["persona_weights"] = stringsToAny(persona.Weights.Strings())
	}
	return out
}

func roundResultPayload(res rpsls.RoundResult) map[string]any {
	return map[string]any{
		"round":          res.Round,
		"human_move":     res.HumanMove.String(),
		"computer_move":  res.ComputerMove.String(),
		"outcome":        res.Outcome.String(),
		"human_score":    res.HumanScore,
		"computer_score": res.ComputerScore,
		"game_over":      res.GameOver,
	}
}

func gameEndPayload(snap rpsls.Snapshot) map[string]any {
	out := map[string]any{
		"game":           snap.Game,
		"rounds":         snap.Round,
		"human_score":    snap.Human.Score,
		"computer_score": snap.Computer.Score,
		"human_moves":    stringsToAny(snap.Human.History.Strings()),
		"computer_moves": stringsToAny(snap.Computer.History.Strings()),
	}
	if snap.Winner != 0 {
		out["winner"] = snap.Winner.String()
	}
	return out
}

func gameEndType(snap rpsls.Snapshot) string {
	if snap.Winner != 0 {
		return EventGameOver
	}
	return EventGameStopped
}

func stringsToAny(in []string) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, s)
	}
	return out
}
