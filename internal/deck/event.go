package deck

import (
	"fmt"
	"math/rand/v2"
)

// EventCard is one of the 20 unique one-shot cards. Its value is the wire
// token. What each card does is the turn engine's business; the deck only
// knows the kinds.
type EventCard string

const (
	GiveMeYourCards            EventCard = "give_me_your_cards"
	HuntedByMenForSport        EventCard = "hunted_by_men_for_sport"
	LuxembourgIsGermanyFrance  EventCard = "luxembourg_is_germany_france"
	LetsGoToTheBeach           EventCard = "lets_go_to_the_beach"
	ImagineTrains              EventCard = "imagine_if_trains"
	ConsiderVelocity           EventCard = "consider_velocity"
	ItsPopsicle                EventCard = "its_popsicle"
	HydrateOrDiedrate          EventCard = "hydrate_or_diedrate"
	StealthOutfit              EventCard = "stealth_outfit"
	CardinalDirectionsAndVibes EventCard = "cardinal_directions_and_vibes"
	Pizzazz                    EventCard = "pizzazz"
	RatMode                    EventCard = "rat_mode"
	BingBong                   EventCard = "bing_bong"
	LeaveCountryImmediately    EventCard = "leave_country_immediately"
	ZugFaelltAus               EventCard = "zug_faellt_aus"
	SnackZone                  EventCard = "snack_zone"
	ItsAllInTheTrees           EventCard = "its_all_in_the_trees"
	BonjourToEveryone          EventCard = "bonjour_to_everyone"
	NoTalk                     EventCard = "no_talk"
	SloveniaAsATreat           EventCard = "slovenia_as_a_treat"
)

var eventCards = []EventCard{
	GiveMeYourCards,
	HuntedByMenForSport,
	LuxembourgIsGermanyFrance,
	LetsGoToTheBeach,
	ImagineTrains,
	ConsiderVelocity,
	ItsPopsicle,
	HydrateOrDiedrate,
	StealthOutfit,
	CardinalDirectionsAndVibes,
	Pizzazz,
	RatMode,
	BingBong,
	LeaveCountryImmediately,
	ZugFaelltAus,
	SnackZone,
	ItsAllInTheTrees,
	BonjourToEveryone,
	NoTalk,
	SloveniaAsATreat,
}

// ParseEventCard validates a wire token.
func ParseEventCard(token string) (EventCard, error) {
	c := EventCard(token)
	for _, known := range eventCards {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown event card %q", token)
}

func (c EventCard) String() string { return string(c) }

// BuildEventDeck returns the shuffled 20-card event deck, one copy of each
// kind. Cards are drawn by popping from the end.
func BuildEventDeck() []EventCard {
	out := make([]EventCard, len(eventCards))
	copy(out, eventCards)

	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
