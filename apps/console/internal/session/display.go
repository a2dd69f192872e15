package session

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"rpsls-lite/rpsls"
)

const goodbyeMessage = "Thanks for playing Rock, Paper, Scissors, Spock and Lizard. Good bye!"

func (c *Controller) displayWelcome(ctx context.Context) {
	human := c.match.Human().Name
	c.printer.Println(fmt.Sprintf("Hello, %s!", human))
	c.printer.Println("Welcome to Rock, Paper, Scissors, Spock, and Lizard!")
	c.printer.Println(fmt.Sprintf("Your opponent is %s.", c.match.Computer().Name))
	c.printer.Println(fmt.Sprintf("The first one to reach a score of %d is the grand winner.", c.match.WinScore()))
	if n := c.recordedGames(ctx, human); n > 0 {
		c.printer.Println(fmt.Sprintf("You have %d recorded games.", n))
	}
}

func (c *Controller) displayRound(res rpsls.RoundResult) {
	human, computer := c.match.Human(), c.match.Computer()
	c.printer.Println(fmt.Sprintf("%s chose %s.", human.Name, res.HumanMove.Title()))
	c.printer.Println(fmt.Sprintf("%s chose %s.", computer.Name, res.ComputerMove.Title()))

	switch res.Outcome {
	case rpsls.OutcomeHumanWins:
		c.printer.Println(fmt.Sprintf("The winner is %s!", human.Name))
	case rpsls.OutcomeComputerWins:
		c.printer.Println(fmt.Sprintf("The winner is %s!", computer.Name))
	default:
		c.printer.Println("It's a tie!")
	}

	msg := fmt.Sprintf("%s %d : %d %s", human.Name, res.HumanScore, res.ComputerScore, computer.Name)
	divider := starDivider(msg)
	c.printer.Println(divider)
	c.printer.Println(center(msg, utf8.RuneCountInString(divider)))
	c.printer.Println(divider)
}

func (c *Controller) displayMoveHistory() {
	rounds := c.match.Rounds()
	msg := fmt.Sprintf("%s played %d rounds against %s:", c.match.Human().Name, len(rounds), c.match.Computer().Name)
	divider := starDivider(msg)
	c.printer.Println(divider)
	c.printer.Println(msg)
	for _, r := range rounds {
		c.printer.Println(fmt.Sprintf("%s vs. %s", r.Human, r.Computer))
	}
	c.printer.Println(divider)
}

func (c *Controller) displayGrandWinner() {
	if w := c.match.Winner(); w != nil {
		c.printer.Println(fmt.Sprintf("The grand victory goes to...%s!!", w.Name))
	}
}

func starDivider(msg string) string {
	return strings.Repeat("*", utf8.RuneCountInString(msg)+2)
}

// center pads s to width with spaces, putting the odd space on the right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
