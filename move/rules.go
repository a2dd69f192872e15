package move

// beatsTable holds, for each move, the two moves it defeats.
var beatsTable = map[Move][2]Move{
	Rock:     {Scissors, Lizard},
	Scissors: {Paper, Lizard},
	Paper:    {Rock, Spock},
	Spock:    {Scissors, Rock},
	Lizard:   {Paper, Spock},
}

// Beats reports whether a defeats b. It is false for equal moves and for
// anything involving Invalid.
func Beats(a, b Move) bool {
	victims, ok := beatsTable[a]
	if !ok {
		return false
	}
	return victims[0] == b || victims[1] == b
}

// Victims returns the moves a defeats.
func Victims(a Move) List {
	victims, ok := beatsTable[a]
	if !ok {
		return nil
	}
	return List{victims[0], victims[1]}
}
