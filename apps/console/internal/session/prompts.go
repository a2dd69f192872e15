package session

import (
	"strings"

	"rpsls-lite/move"
	"rpsls-lite/rpsls"
)

const (
	nameQuestion     = "What's your name?"
	continueQuestion = "Do you want to continue to the next round? (y/n)"
	replayQuestion   = "Do you want to play again? (y/n)"

	emptyNameMessage     = "Sorry, must enter a value."
	invalidMoveMessage   = "Sorry, invalid choice."
	invalidAnswerMessage = "Sorry, must be y or n."
)

var moveQuestion = "Please choose " + move.All.Join(", ") + ":"

func (c *Controller) askName() (string, error) {
	return ask(c, nameQuestion, emptyNameMessage, parseName)
}

func (c *Controller) askMove() (move.Move, error) {
	return ask(c, moveQuestion, invalidMoveMessage, parseMove)
}

func (c *Controller) askYesNo(question string) (bool, error) {
	return ask(c, question, invalidAnswerMessage, parseYesNo)
}

// ask repeats question until parse accepts the answer. Only invalid input is
// retried; prompter errors end the loop.
func ask[T any](c *Controller, question, retry string, parse func(string) (T, error)) (T, error) {
	for {
		raw, err := c.prompter.Prompt(question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(raw)
		if err == nil {
			return v, nil
		}
		if !rpsls.IsInvalidInput(err) {
			var zero T
			return zero, err
		}
		c.printer.Println(retry)
	}
}

func parseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", &rpsls.InvalidInputError{Field: "name", Value: raw}
	}
	return name, nil
}

func parseMove(raw string) (move.Move, error) {
	m, err := move.Parse(raw)
	if err != nil {
		return move.Invalid, &rpsls.InvalidInputError{Field: "move", Value: raw}
	}
	return m, nil
}

func parseYesNo(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, &rpsls.InvalidInputError{Field: "answer", Value: raw}
	}
}
