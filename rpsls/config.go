package rpsls

import "fmt"

type Config struct {
	// First player to reach WinScore wins the game.
	WinScore int

	HumanName    string
	ComputerName string
}

func (c Config) validate() error {
	if c.WinScore <= 0 {
		return fmt.Errorf("WinScore must be > 0")
	}
	if c.HumanName == "" {
		return fmt.Errorf("HumanName must not be empty")
	}
	if c.ComputerName == "" {
		return fmt.Errorf("ComputerName must not be empty")
	}
	return nil
}
