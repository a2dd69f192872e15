package replay

import "google.golang.org/protobuf/types/known/structpb"

const TapeVersion = 1

// SessionSpec describes one game to be replayed: who plays, which persona the
// computer uses and the human moves in order.
type SessionSpec struct {
	HumanName string      `json:"human_name"`
	PersonaID string      `json:"persona_id"`
	WinScore  int         `json:"win_score,omitempty"`
	Rounds    []RoundSpec `json:"rounds"`
	RNG       *RNGSpec    `json:"rng,omitempty"`
}

// RoundSpec is one round. Computer pins the computer move; when empty the
// move is drawn from the persona with the spec seed.
type RoundSpec struct {
	Human    string `json:"human"`
	Computer string `json:"computer,omitempty"`
}

type RNGSpec struct {
	Seed int64 `json:"seed"`
}

type ReplayTape struct {
	TapeVersion  int           `json:"tape_version"`
	GameID       string        `json:"game_id"`
	HumanName    string        `json:"human_name"`
	ComputerName string        `json:"computer_name"`
	Events       []ReplayEvent `json:"events"`
}

type ReplayEvent struct {
	Type        string           `json:"type"`
	Seq         uint64           `json:"seq"`
	Value       *structpb.Struct `json:"-"`
	EnvelopeB64 string           `json:"envelope_b64,omitempty"`
}
