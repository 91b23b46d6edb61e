package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainchase/api/internal/board"
	"github.com/trainchase/api/internal/deck"
)

// gameAtGhent parks the runner one low-speed hop from the Ghent event field
// and stacks the event deck so the given card is drawn next.
func gameAtGhent(topCard deck.EventCard) *InProgress {
	g := testGame(3)
	g.Players[0].Location = board.Brussels
	g.CoinsRunner = 3
	g.EventDeck = []deck.EventCard{topCard}
	return g
}

func buyAtGhent(t *testing.T, g *InProgress) (*MoveResult, *InProgress) {
	t.Helper()
	intent := moveIntent(g.Players[0].ID, "ghent", "low_speed")
	intent.BuyEventCard = true
	return mustMove(t, g, intent)
}

func TestEventPurchaseChecks(t *testing.T) {
	t.Run("requires movement first", func(t *testing.T) {
		g := gameAtGhent(deck.SnackZone)
		_, _, err := g.MakeMove(MoveIntent{PlayerID: g.Players[0].ID, BuyEventCard: true})
		assert.ErrorIs(t, err, ErrEventCardNoLocation)
	})

	t.Run("requires an event field", func(t *testing.T) {
		g := testGame(3)
		intent := moveIntent(g.Players[0].ID, "paris", "low_speed")
		intent.BuyEventCard = true
		_, _, err := g.MakeMove(intent)
		assert.ErrorIs(t, err, ErrNotAnEventField)
	})

	t.Run("costs a coin", func(t *testing.T) {
		g := gameAtGhent(deck.SnackZone)
		g.CoinsRunner = 0
		intent := moveIntent(g.Players[0].ID, "ghent", "low_speed")
		intent.BuyEventCard = true
		_, _, err := g.MakeMove(intent)
		assert.ErrorIs(t, err, ErrNotEnoughCoins)
	})

	t.Run("empty deck", func(t *testing.T) {
		g := gameAtGhent(deck.SnackZone)
		g.EventDeck = nil
		intent := moveIntent(g.Players[0].ID, "ghent", "low_speed")
		intent.BuyEventCard = true
		_, _, err := g.MakeMove(intent)
		assert.ErrorIs(t, err, ErrEventCardStackEmpty)
	})

	t.Run("once per turn", func(t *testing.T) {
		g := gameAtGhent(deck.SnackZone)
		g.EventDeck = []deck.EventCard{deck.BingBong, deck.SnackZone}
		_, next := buyAtGhent(t, g)

		_, _, err := next.MakeMove(MoveIntent{PlayerID: g.Players[0].ID, BuyEventCard: true})
		assert.ErrorIs(t, err, ErrEventCardAlreadyBought)
	})
}

func TestEventPurchase(t *testing.T) {
	g := gameAtGhent(deck.SnackZone)

	res, next := buyAtGhent(t, g)

	assert.True(t, res.EventCardBought)
	require.NotNil(t, res.EventCardReceived)
	assert.Equal(t, deck.SnackZone, *res.EventCardReceived)
	assert.Equal(t, 2, next.CoinsRunner)
	assert.Empty(t, next.EventDeck)
	// Flavour card: nothing else changes.
	assert.Empty(t, next.Players[0].EventCards)
}

func TestInstantEffects(t *testing.T) {
	cases := []struct {
		card  deck.EventCard
		check func(t *testing.T, p *Player, g *InProgress)
	}{
		{deck.HuntedByMenForSport, func(t *testing.T, p *Player, g *InProgress) {
			assert.Equal(t, 2, p.Modifiers.ForcedFastestRounds)
		}},
		{deck.RatMode, func(t *testing.T, p *Player, g *InProgress) {
			assert.Equal(t, 2, p.Modifiers.ForcedSlowestRounds)
		}},
		{deck.LuxembourgIsGermanyFrance, func(t *testing.T, p *Player, g *InProgress) {
			assert.True(t, p.Modifiers.LuxembourgExit)
		}},
		{deck.LetsGoToTheBeach, func(t *testing.T, p *Player, g *InProgress) {
			assert.True(t, p.Modifiers.BeachHop)
		}},
		{deck.ImagineTrains, func(t *testing.T, p *Player, g *InProgress) {
			assert.True(t, p.Modifiers.TrainInterchange)
		}},
		{deck.CardinalDirectionsAndVibes, func(t *testing.T, p *Player, g *InProgress) {
			assert.True(t, p.Modifiers.MustGoNorth)
		}},
		{deck.LeaveCountryImmediately, func(t *testing.T, p *Player, g *InProgress) {
			assert.True(t, p.Modifiers.LeaveCountry)
		}},
		{deck.ZugFaelltAus, func(t *testing.T, p *Player, g *InProgress) {
			assert.True(t, p.Modifiers.TrainCancelled)
		}},
		{deck.SloveniaAsATreat, func(t *testing.T, p *Player, g *InProgress) {
			assert.True(t, p.Modifiers.SloveniaTeleport)
		}},
		{deck.ItsAllInTheTrees, func(t *testing.T, p *Player, g *InProgress) {
			assert.Equal(t, 1, g.ExtraTurns)
		}},
	}

	for _, tc := range cases {
		t.Run(string(tc.card), func(t *testing.T) {
			g := gameAtGhent(tc.card)
			res, next := buyAtGhent(t, g)

			require.NotNil(t, res.EventCardReceived)
			assert.Equal(t, tc.card, *res.EventCardReceived)
			// Instant cards never enter the hand.
			assert.Empty(t, next.Players[0].EventCards)
			tc.check(t, next.Players[0], next)
		})
	}
}

func TestStealthOutfit(t *testing.T) {
	g := gameAtGhent(deck.StealthOutfit)

	_, next := buyAtGhent(t, g)
	assert.True(t, next.Players[0].Modifiers.Stealth)
	assert.True(t, next.Scratch.StealthArmed)

	// Stealth survives the arming turn's finish.
	_, next = mustMove(t, next, MoveIntent{PlayerID: g.Players[0].ID, FinishMove: true})
	assert.True(t, next.Players[0].Modifiers.Stealth)

	// It lapses when the player's next turn finishes without re-arming.
	for _, loc := range []string{"dijon", "luxembourg"} {
		intent := moveIntent(next.CurrentTurn, loc, "low_speed")
		intent.FinishMove = true
		_, next = mustMove(t, next, intent)
	}
	assert.True(t, next.Players[0].Modifiers.Stealth)

	intent := moveIntent(g.Players[0].ID, "antwerp", "low_speed")
	intent.FinishMove = true
	_, next = mustMove(t, next, intent)
	assert.False(t, next.Players[0].Modifiers.Stealth)
}

func TestPizzazz(t *testing.T) {
	g := gameAtGhent(deck.Pizzazz)

	res, next := buyAtGhent(t, g)

	// One die for the runner, one per chaser.
	runnerGain := next.CoinsRunner - 2 // 3 starting coins minus the purchase
	assert.GreaterOrEqual(t, runnerGain, 1)
	assert.LessOrEqual(t, runnerGain, 6)
	assert.GreaterOrEqual(t, next.CoinsChasers, 2)
	assert.LessOrEqual(t, next.CoinsChasers, 12)
	// The acting player is the runner, so their roll is reported.
	assert.Equal(t, runnerGain, res.CoinsReceived)
}

func TestHeldCards(t *testing.T) {
	g := gameAtGhent(deck.ConsiderVelocity)

	_, next := buyAtGhent(t, g)
	assert.Equal(t, []deck.EventCard{deck.ConsiderVelocity}, next.Players[0].EventCards)
	assert.Zero(t, next.ExtraTurns)

	// Using it later grants the extra turn.
	use := "consider_velocity"
	_, next = mustMove(t, next, MoveIntent{
		PlayerID:     g.Players[0].ID,
		UseEventCard: &use,
		FinishMove:   true,
	})
	assert.Empty(t, next.Players[0].EventCards)
	assert.Equal(t, g.Players[0].ID, next.CurrentTurn)
}

func TestUseEventCardNotHeld(t *testing.T) {
	g := testGame(3)
	use := "its_popsicle"
	_, next := mustMove(t, g, moveIntent(g.Players[0].ID, "paris", "low_speed"))

	_, _, err := next.MakeMove(MoveIntent{PlayerID: g.Players[0].ID, UseEventCard: &use})
	assert.ErrorIs(t, err, ErrEventCardNotOnHand)
}

func TestGiveMeYourCards(t *testing.T) {
	t.Run("steals from a holder", func(t *testing.T) {
		g := gameAtGhent(deck.GiveMeYourCards)
		g.Players[1].EventCards = []deck.EventCard{deck.ItsPopsicle}

		res, next := buyAtGhent(t, g)

		require.NotNil(t, res.EventCardReceived)
		assert.Equal(t, deck.ItsPopsicle, *res.EventCardReceived)
		assert.Equal(t, []deck.EventCard{deck.ItsPopsicle}, next.Players[0].EventCards)
		assert.Empty(t, next.Players[1].EventCards)
	})

	t.Run("redraws when nobody holds a card", func(t *testing.T) {
		g := gameAtGhent(deck.GiveMeYourCards)
		g.EventDeck = []deck.EventCard{deck.SnackZone, deck.GiveMeYourCards}

		res, next := buyAtGhent(t, g)

		require.NotNil(t, res.EventCardReceived)
		assert.Equal(t, deck.SnackZone, *res.EventCardReceived)
		assert.Empty(t, next.EventDeck)
	})

	t.Run("fizzles on an exhausted deck", func(t *testing.T) {
		g := gameAtGhent(deck.GiveMeYourCards)

		res, next := buyAtGhent(t, g)

		require.NotNil(t, res.EventCardReceived)
		assert.Equal(t, deck.GiveMeYourCards, *res.EventCardReceived)
		assert.Empty(t, next.Players[0].EventCards)
	})
}
