package game

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/trainchase/api/internal/board"
	"github.com/trainchase/api/internal/deck"
)

// runnerWinCoins is how many coins the runner must hold when reaching the
// secret destination.
const runnerWinCoins = 10

// InProgress is the running game and the owner of all player records.
// MakeMove never mutates the receiver: it works on a deep copy and returns
// the next session, so a failed call leaves the stored session untouched.
type InProgress struct {
	ID                    uuid.UUID
	HostID                uuid.UUID
	RunnerID              uuid.UUID
	Players               []*Player
	Destination           board.Location
	CurrentTurn           uuid.UUID
	CoinsRunner           int
	CoinsChasers          int
	LastUsedTimetableCard *deck.TimetableCard
	RunnerPath            []board.Location
	Scratch               *TurnScratch
	TimetableDeck         []deck.TimetableCard
	EventDeck             []deck.EventCard
	Reveals               PowerupReveals
	ExtraTurns            int
}

func (g *InProgress) SessionID() uuid.UUID { return g.ID }
func (g *InProgress) Phase() Phase         { return PhaseInProgress }

// Runner returns the runner's player record.
func (g *InProgress) Runner() *Player { return g.playerByID(g.RunnerID) }

func (g *InProgress) playerByID(id uuid.UUID) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *InProgress) clone() *InProgress {
	c := *g
	c.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		c.Players[i] = p.clone()
	}
	c.RunnerPath = append([]board.Location(nil), g.RunnerPath...)
	c.TimetableDeck = append([]deck.TimetableCard(nil), g.TimetableDeck...)
	c.EventDeck = append([]deck.EventCard(nil), g.EventDeck...)
	if g.Scratch != nil {
		s := *g.Scratch
		c.Scratch = &s
	}
	if g.LastUsedTimetableCard != nil {
		v := *g.LastUsedTimetableCard
		c.LastUsedTimetableCard = &v
	}
	c.Reveals = g.Reveals.clone()
	return &c
}

// MakeMove resolves one submitted intent. On success it returns the result
// and the next session: the updated *InProgress, or a *Finished once a win
// condition fired. On error both returns are nil and the receiver is
// guaranteed unchanged.
func (g *InProgress) MakeMove(intent MoveIntent) (*MoveResult, Session, error) {
	if intent.PlayerID != g.CurrentTurn {
		return nil, nil, ErrNotYourTurn
	}

	in, err := intent.parse()
	if err != nil {
		return nil, nil, err
	}

	d := g.clone()
	if d.Scratch == nil {
		d.Scratch = &TurnScratch{}
	}
	p := d.playerByID(intent.PlayerID)
	res := &MoveResult{}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	if len(in.discards) > 0 {
		if err := d.resolveDiscards(p, in.discards, res); err != nil {
			return nil, nil, err
		}
	}

	fin, err := d.resolveMovement(p, in, res, rng)
	if err != nil {
		return nil, nil, err
	}
	if fin != nil {
		res.FinishedGame = fin
		return res, fin, nil
	}

	// Powerups are chaser-only; a runner's purchase field is ignored.
	if in.buyPowerup != nil && p.ID != d.RunnerID {
		if err := d.resolvePowerup(*in.buyPowerup, res); err != nil {
			return nil, nil, err
		}
	}

	if in.BuyEventCard {
		if err := d.resolveEventPurchase(p, res, rng); err != nil {
			return nil, nil, err
		}
	}

	if in.useEventCard != nil {
		if err := d.resolveEventUse(p, *in.useEventCard); err != nil {
			return nil, nil, err
		}
	}

	if in.FinishMove {
		if !d.Scratch.Moved {
			return nil, nil, ErrActionNotAllowed
		}
		d.finishTurn(p)
	}

	return res, d, nil
}

// resolveDiscards handles the throw-away step: only legal when the hand
// allows no move at all, capped at two cards, each replaced from the deck
// while it lasts.
func (d *InProgress) resolveDiscards(p *Player, cards []deck.TimetableCard, res *MoveResult) error {
	if p.hasLegalMove() {
		return ErrValidMovePossible
	}
	if len(cards) > 2 {
		return ErrThrewTooManyCards
	}
	for _, card := range cards {
		if !p.removeTimetableCard(card) {
			return ErrMissingTimetableCard
		}
		if len(d.TimetableDeck) > 0 {
			drawn := d.popTimetableCard()
			p.TimetableCards = append(p.TimetableCards, drawn)
			res.TimetableCardsReceived = append(res.TimetableCardsReceived, drawn)
		}
	}
	return nil
}

// resolveMovement runs the passive overrides and the ordinary movement
// step. It returns a non-nil Finished when a win condition fired.
func (d *InProgress) resolveMovement(p *Player, in parsedIntent, res *MoveResult, rng *rand.Rand) (*Finished, error) {
	// Cancelled trains strand the player for one turn while in Germany.
	if p.Modifiers.TrainCancelled && !d.Scratch.Moved && p.Location.Country() == board.CountryGermany {
		p.Modifiers.TrainCancelled = false
		d.Scratch.Moved = true
		return nil, nil
	}

	if in.nextLocation == nil {
		return nil, nil
	}
	dest := *in.nextLocation

	if d.Scratch.Moved {
		return nil, ErrAlreadyMoved
	}

	// Beach hop: coast-to-coast, no card needed.
	if p.Modifiers.BeachHop {
		if !p.Location.IsCoastal() || !dest.IsCoastal() {
			return nil, ErrInvalidNextLocation
		}
		p.Modifiers.BeachHop = false
		return d.completeMove(p, dest, res, rng, false)
	}

	// A cornered north-bound player may go anywhere.
	if p.Modifiers.MustGoNorth && len(p.Location.NorthConnections()) == 0 {
		p.Modifiers.MustGoNorth = false
		return d.completeMove(p, dest, res, rng, false)
	}

	// The Slovenia treat clears on any movement attempt but only teleports
	// to Ljubljana itself.
	if p.Modifiers.SloveniaTeleport {
		p.Modifiers.SloveniaTeleport = false
		if dest == board.Ljubljana {
			return d.completeMove(p, dest, res, rng, false)
		}
	}

	if in.useCard == nil {
		return nil, nil
	}
	card := *in.useCard

	if !p.holdsTimetableCard(card) {
		return nil, ErrMissingTimetableCard
	}

	if p.Modifiers.LeaveCountry {
		if p.canLeaveCountry() && dest.Country() == p.Location.Country() {
			return nil, ErrMustLeaveCountry
		}
		p.Modifiers.LeaveCountry = false
	}

	clearNorth := false
	if p.Modifiers.MustGoNorth {
		if !containsLocation(p.Location.NorthConnections(), dest) {
			return nil, ErrMustGoNorth
		}
		clearNorth = true
	}

	decFastest := false
	if p.Modifiers.ForcedFastestRounds > 0 {
		fastest := d.fastestAvailableMode(p)
		if card != deck.Joker && card != fastest {
			return nil, ErrHuntedByMenForSport
		}
		decFastest = true
	}

	decSlowest := false
	if p.Modifiers.ForcedSlowestRounds > 0 {
		slowest := slowestHeldMode(p)
		if card != deck.Joker && card != slowest {
			return nil, ErrRatMode
		}
		decSlowest = true
	}

	if !d.reachable(p, card, dest) {
		return nil, ErrInvalidNextLocation
	}

	// No two chasers share a tile; landing on the runner is the capture
	// handled below.
	for _, other := range d.Players {
		if other.ID != d.RunnerID && other.ID != p.ID && other.Location == dest {
			return nil, ErrInvalidNextLocation
		}
	}

	grantExtraTurn := false
	clearLuxembourg := false
	if p.Modifiers.LuxembourgExit && p.Location == board.Luxembourg {
		if dest == board.Brussels {
			return nil, ErrMustGoToGermanyFrance
		}
		clearLuxembourg = true
		grantExtraTurn = true
	}

	// All checks passed; apply the movement to the draft.
	p.removeTimetableCard(card)
	if clearNorth {
		p.Modifiers.MustGoNorth = false
	}
	if decFastest {
		p.Modifiers.ForcedFastestRounds--
	}
	if decSlowest {
		p.Modifiers.ForcedSlowestRounds--
	}
	if clearLuxembourg {
		p.Modifiers.LuxembourgExit = false
	}
	if grantExtraTurn {
		d.ExtraTurns++
	}

	if len(p.TimetableCards) == 0 {
		return d.finish(TeamChaser, WinTimetableCardsRanOut), nil
	}

	used := card
	d.LastUsedTimetableCard = &used

	return d.completeMove(p, dest, res, rng, true)
}

// completeMove applies the shared tail of every movement: runner path and
// destination win, capture, coin payout, replacement draw and the location
// change itself. draw is false for card-less override moves.
func (d *InProgress) completeMove(p *Player, dest board.Location, res *MoveResult, rng *rand.Rand, draw bool) (*Finished, error) {
	if p.ID == d.RunnerID {
		d.RunnerPath = append(d.RunnerPath, dest)
		if dest == d.Destination && d.CoinsRunner >= runnerWinCoins {
			return d.finish(TeamRunner, WinGotToDestination), nil
		}
	}

	if p.ID != d.RunnerID && dest == d.Runner().Location {
		res.RunnerCaught = true
		return d.finish(TeamChaser, WinRunnerCaught), nil
	}

	if dest.IsCoinField() {
		coins := rng.IntN(6) + 1
		res.CoinsReceived = coins
		if p.ID == d.RunnerID {
			d.CoinsRunner += coins
		} else {
			d.CoinsChasers += coins
		}
	}

	if draw && len(d.TimetableDeck) > 0 {
		drawn := d.popTimetableCard()
		p.TimetableCards = append(p.TimetableCards, drawn)
		res.TimetableCardsReceived = append(res.TimetableCardsReceived, drawn)
	}

	p.Location = dest
	d.Scratch.Moved = true
	return nil, nil
}

func (d *InProgress) resolvePowerup(pu Powerup, res *MoveResult) error {
	price := pu.Price(len(d.Players) - 1)
	if d.CoinsChasers < price {
		return ErrNotEnoughCoins
	}
	d.CoinsChasers -= price

	switch pu {
	case PowerupLearnRunnerCountry:
		c := d.Runner().Location.Country()
		d.Reveals.RunnerCountry = &c
	case PowerupLearnRunnerLocation:
		l := d.Runner().Location
		d.Reveals.RunnerLocation = &l
	case PowerupChaserGetsTwoTurns:
		d.ExtraTurns++
	case PowerupLearnRunnerDestination:
		dst := d.Destination
		d.Reveals.RunnerDestination = &dst
	}

	reveals := d.Reveals.clone()
	res.PowerupReveals = &reveals
	return nil
}

func (d *InProgress) resolveEventPurchase(p *Player, res *MoveResult, rng *rand.Rand) error {
	if !d.Scratch.Moved {
		return ErrEventCardNoLocation
	}
	if d.Scratch.EventCardBought {
		return ErrEventCardAlreadyBought
	}
	if !p.Location.IsEventField() {
		return ErrNotAnEventField
	}

	if p.ID == d.RunnerID {
		if d.CoinsRunner < 1 {
			return ErrNotEnoughCoins
		}
		d.CoinsRunner--
	} else {
		if d.CoinsChasers < 1 {
			return ErrNotEnoughCoins
		}
		d.CoinsChasers--
	}

	if len(d.EventDeck) == 0 {
		return ErrEventCardStackEmpty
	}
	card := d.popEventCard()
	d.Scratch.EventCardBought = true
	res.EventCardBought = true

	if card == deck.GiveMeYourCards {
		stolen, ok := d.resolveCardTheft(p, rng)
		if !ok {
			// Nobody to steal from and the deck ran dry; the card fizzles.
			fizzled := deck.GiveMeYourCards
			res.EventCardReceived = &fizzled
			return nil
		}
		card = stolen
	}

	res.EventCardReceived = &card
	d.applyEventCard(p, card, res, rng)
	return nil
}

// resolveCardTheft implements GiveMeYourCards: steal a uniformly random
// event card from a uniformly random other holder, or redraw when nobody
// holds one.
func (d *InProgress) resolveCardTheft(thief *Player, rng *rand.Rand) (deck.EventCard, bool) {
	var holders []*Player
	for _, other := range d.Players {
		if other.ID != thief.ID && len(other.EventCards) > 0 {
			holders = append(holders, other)
		}
	}
	if len(holders) > 0 {
		victim := holders[rng.IntN(len(holders))]
		i := rng.IntN(len(victim.EventCards))
		card := victim.EventCards[i]
		victim.EventCards = append(victim.EventCards[:i], victim.EventCards[i+1:]...)
		return card, true
	}
	if len(d.EventDeck) > 0 {
		return d.popEventCard(), true
	}
	return "", false
}

func (d *InProgress) resolveEventUse(p *Player, card deck.EventCard) error {
	if !p.removeEventCard(card) {
		return ErrEventCardNotOnHand
	}
	switch card {
	case deck.ConsiderVelocity, deck.ItsPopsicle:
		d.ExtraTurns++
	}
	return nil
}

// finishTurn closes the open turn: stealth lapses unless re-armed this
// turn, the scratch is cleared and the turn advances in join order unless
// an extra-turn credit is pending.
func (d *InProgress) finishTurn(p *Player) {
	if !d.Scratch.StealthArmed {
		p.Modifiers.Stealth = false
	}
	d.Scratch = nil

	if d.ExtraTurns > 0 {
		d.ExtraTurns--
		return
	}
	for i, other := range d.Players {
		if other.ID == p.ID {
			d.CurrentTurn = d.Players[(i+1)%len(d.Players)].ID
			return
		}
	}
}

func (d *InProgress) finish(team Team, cond WinCondition) *Finished {
	return &Finished{
		ID:           d.ID,
		HostID:       d.HostID,
		RunnerID:     d.RunnerID,
		Players:      d.Players,
		Destination:  d.Destination,
		CoinsRunner:  d.CoinsRunner,
		CoinsChasers: d.CoinsChasers,
		WinningTeam:  team,
		WinCondition: cond,
		RunnerPath:   d.RunnerPath,
	}
}

// fastestAvailableMode returns the fastest transport mode the player can
// physically use right now: the location must have an edge of that mode and
// the hand must hold a matching card or a joker.
func (d *InProgress) fastestAvailableMode(p *Player) deck.TimetableCard {
	holdsJoker := p.holdsTimetableCard(deck.Joker)
	for _, mode := range []deck.TimetableCard{deck.Plane, deck.HighSpeed, deck.LowSpeed} {
		if len(cardConnections(p.Location, mode)) == 0 {
			continue
		}
		if holdsJoker || p.holdsTimetableCard(mode) {
			return mode
		}
	}
	return ""
}

// slowestHeldMode returns the slowest concrete mode in the hand; jokers are
// wildcards and don't count.
func slowestHeldMode(p *Player) deck.TimetableCard {
	var slowest deck.TimetableCard
	for _, c := range p.TimetableCards {
		if c == deck.Joker {
			continue
		}
		if slowest == "" || c.SpeedRank() < slowest.SpeedRank() {
			slowest = c
		}
	}
	return slowest
}

// reachable checks connectivity for the chosen card, honouring the
// low/high-speed interchangeability modifier.
func (d *InProgress) reachable(p *Player, card deck.TimetableCard, dest board.Location) bool {
	if containsLocation(cardConnections(p.Location, card), dest) {
		return true
	}
	if p.Modifiers.TrainInterchange {
		switch card {
		case deck.LowSpeed:
			return containsLocation(p.Location.HighSpeedConnections(), dest)
		case deck.HighSpeed:
			return containsLocation(p.Location.LowSpeedConnections(), dest)
		}
	}
	return false
}

func (d *InProgress) popTimetableCard() deck.TimetableCard {
	card := d.TimetableDeck[len(d.TimetableDeck)-1]
	d.TimetableDeck = d.TimetableDeck[:len(d.TimetableDeck)-1]
	return card
}

func (d *InProgress) popEventCard() deck.EventCard {
	card := d.EventDeck[len(d.EventDeck)-1]
	d.EventDeck = d.EventDeck[:len(d.EventDeck)-1]
	return card
}

func containsLocation(haystack []board.Location, needle board.Location) bool {
	for _, l := range haystack {
		if l == needle {
			return true
		}
	}
	return false
}
