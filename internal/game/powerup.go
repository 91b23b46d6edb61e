package game

import (
	"fmt"

	"github.com/trainchase/api/internal/board"
)

// Powerup is a coin-priced information or turn advantage chasers can buy.
type Powerup string

const (
	PowerupLearnRunnerCountry     Powerup = "learn_runner_country"
	PowerupLearnRunnerLocation    Powerup = "learn_runner_location"
	PowerupChaserGetsTwoTurns     Powerup = "chaser_gets_two_turns"
	PowerupLearnRunnerDestination Powerup = "learn_runner_destination"
)

// ParsePowerup validates a wire token.
func ParsePowerup(token string) (Powerup, error) {
	switch p := Powerup(token); p {
	case PowerupLearnRunnerCountry, PowerupLearnRunnerLocation,
		PowerupChaserGetsTwoTurns, PowerupLearnRunnerDestination:
		return p, nil
	default:
		return "", fmt.Errorf("unknown powerup %q", token)
	}
}

func (p Powerup) String() string { return string(p) }

// Price returns the coin cost. With exactly two chasers everything is half
// price; with three it costs the full amount.
func (p Powerup) Price(chaserCount int) int {
	full := map[Powerup]int{
		PowerupLearnRunnerCountry:     10,
		PowerupLearnRunnerLocation:    20,
		PowerupChaserGetsTwoTurns:     30,
		PowerupLearnRunnerDestination: 40,
	}[p]
	if chaserCount == 2 {
		return full / 2
	}
	return full
}

// PowerupReveals is the session-wide cache of information bought through
// powerups. Once revealed, a fact stays visible to all future state reads.
type PowerupReveals struct {
	RunnerCountry     *board.Country  `json:"runner_country,omitempty"`
	RunnerLocation    *board.Location `json:"runner_location,omitempty"`
	RunnerDestination *board.Location `json:"runner_destination,omitempty"`
}

func (r PowerupReveals) clone() PowerupReveals {
	c := PowerupReveals{}
	if r.RunnerCountry != nil {
		v := *r.RunnerCountry
		c.RunnerCountry = &v
	}
	if r.RunnerLocation != nil {
		v := *r.RunnerLocation
		c.RunnerLocation = &v
	}
	if r.RunnerDestination != nil {
		v := *r.RunnerDestination
		c.RunnerDestination = &v
	}
	return c
}
