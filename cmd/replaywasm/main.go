//go:build js && wasm

// Command replaywasm exposes the replay generator to a browser viewer.
package main

import (
	"encoding/json"
	"errors"
	"syscall/js"

	"rpsls-lite/replay"
	"rpsls-lite/rpsls/npc"
)

type generateRequest struct {
	Spec replay.SessionSpec `json:"spec"`
}

type generateResponse struct {
	OK    bool                   `json:"ok"`
	Tape  *replay.WireReplayTape `json:"tape,omitempty"`
	Error *replay.ReplayError    `json:"error,omitempty"`
}

type personaInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Tagline string   `json:"tagline,omitempty"`
	Weights []string `json:"weights"`
}

func main() {
	js.Global().Set("__rpslsReplay", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return toJSON(failure("invalid_request", "missing request payload"))
		}
		return toJSON(handleGenerate(args[0].String()))
	}))
	js.Global().Set("__rpslsPersonas", js.FuncOf(func(this js.Value, args []js.Value) any {
		return toJSON(listPersonas())
	}))

	select {}
}

func handleGenerate(raw string) generateResponse {
	var req generateRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return failure("invalid_json", err.Error())
	}

	tape, err := replay.GenerateReplayTape(req.Spec)
	if err != nil {
		var replayErr *replay.ReplayError
		if errors.As(err, &replayErr) {
			return generateResponse{Error: replayErr}
		}
		return failure("replay_generation_failed", err.Error())
	}
	return generateResponse{OK: true, Tape: replay.ToWireReplayTape(tape)}
}

func listPersonas() []personaInfo {
	all := npc.DefaultRegistry().All()
	out := make([]personaInfo, 0, len(all))
	for _, p := range all {
		out = append(out, personaInfo{ID: p.ID, Name: p.Name, Tagline: p.Tagline, Weights: p.Weights.Strings()})
	}
	return out
}

func failure(reason, msg string) generateResponse {
	return generateResponse{Error: &replay.ReplayError{StepIndex: -1, Reason: reason, Message: msg}}
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		b, _ = json.Marshal(failure("marshal_failed", err.Error()))
	}
	return string(b)
}
