package move

import "strings"

type List []Move

func (l List) Count() int {
	return len(l)
}

// Strings returns the lowercase names in order.
func (l List) Strings() []string {
	out := make([]string, 0, len(l))
	for _, m := range l {
		out = append(out, m.String())
	}
	return out
}

// Join renders the list as "rock, paper, scissors".
func (l List) Join(sep string) string {
	return strings.Join(l.Strings(), sep)
}

func (l *List) Add(moves ...Move) {
	*l = append(*l, moves...)
}

func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

func (l List) Contains(m Move) bool {
	for _, cur := range l {
		if cur == m {
			return true
		}
	}
	return false
}

// ParseList parses every entry of raw, stopping at the first unknown name.
func ParseList(raw []string) (List, error) {
	out := make(List, 0, len(raw))
	for _, s := range raw {
		m, err := Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
