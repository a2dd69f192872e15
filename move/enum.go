package move

const Invalid Move = 0

const (
	Rock Move = iota + 1
	Paper
	Scissors
	Spock
	Lizard
)

// All lists the catalog in prompt order.
var All = List{Rock, Paper, Scissors, Spock, Lizard}

var moveNames = map[Move]string{
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
	Spock:    "spock",
	Lizard:   "lizard",
}

var moveTitles = map[Move]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
	Spock:    "Spock",
	Lizard:   "Lizard",
}
