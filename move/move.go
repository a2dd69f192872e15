package move

import (
	"errors"
	"fmt"
	"strings"
)

// Move is one of the five throws.
//
// The zero value is Invalid so an unset move never compares equal to a real one.
type Move byte

var ErrUnknownMove = errors.New("unknown move")

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return "invalid"
}

// Title returns the display form ("Rock", "Spock", ...).
func (m Move) Title() string {
	if name, ok := moveTitles[m]; ok {
		return name
	}
	return "Invalid"
}

func (m Move) Valid() bool {
	return m >= Rock && m <= Lizard
}

// Parse converts user or config text into a Move. Matching ignores case and
// surrounding whitespace.
func Parse(raw string) (Move, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for m, name := range moveNames {
		if name == key {
			return m, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnknownMove, raw)
}

func (m Move) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("marshal move: %w: %d", ErrUnknownMove, byte(m))
	}
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
