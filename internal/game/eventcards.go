package game

import (
	"math/rand/v2"

	"github.com/trainchase/api/internal/deck"
)

// applyEventCard resolves a freshly drawn (or stolen) event card. Instant
// effects hit the drawing player on the spot; held cards go to the hand and
// wait for an explicit use.
func (d *InProgress) applyEventCard(p *Player, card deck.EventCard, res *MoveResult, rng *rand.Rand) {
	switch card {
	case deck.HuntedByMenForSport:
		p.Modifiers.ForcedFastestRounds = 2
	case deck.RatMode:
		p.Modifiers.ForcedSlowestRounds = 2
	case deck.LuxembourgIsGermanyFrance:
		p.Modifiers.LuxembourgExit = true
	case deck.LetsGoToTheBeach:
		p.Modifiers.BeachHop = true
	case deck.ImagineTrains:
		p.Modifiers.TrainInterchange = true
	case deck.CardinalDirectionsAndVibes:
		p.Modifiers.MustGoNorth = true
	case deck.LeaveCountryImmediately:
		p.Modifiers.LeaveCountry = true
	case deck.ZugFaelltAus:
		p.Modifiers.TrainCancelled = true
	case deck.SloveniaAsATreat:
		p.Modifiers.SloveniaTeleport = true
	case deck.StealthOutfit:
		p.Modifiers.Stealth = true
		d.Scratch.StealthArmed = true
	case deck.ItsAllInTheTrees:
		d.ExtraTurns++
	case deck.Pizzazz:
		runnerRoll := rng.IntN(6) + 1
		d.CoinsRunner += runnerRoll
		chaserSum := 0
		for range len(d.Players) - 1 {
			chaserSum += rng.IntN(6) + 1
		}
		d.CoinsChasers += chaserSum
		if p.ID == d.RunnerID {
			res.CoinsReceived = runnerRoll
		} else {
			res.CoinsReceived = chaserSum
		}
	case deck.ConsiderVelocity, deck.ItsPopsicle:
		// Held until used.
		p.EventCards = append(p.EventCards, card)
	case deck.HydrateOrDiedrate, deck.BingBong, deck.SnackZone,
		deck.BonjourToEveryone, deck.NoTalk:
		// Flavour cards. No mechanical effect.
	}
}
