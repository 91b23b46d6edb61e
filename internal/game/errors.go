package game

// RuleError is a rule violation from the closed taxonomy. The value is the
// wire code returned to the caller. Rule errors are always recovered at the
// engine boundary and never leave the session half-mutated.
type RuleError string

func (e RuleError) Error() string { return string(e) }

const (
	ErrNotYourTurn            RuleError = "not_your_turn"
	ErrLobbyFull              RuleError = "lobby_full"
	ErrLobbyNotFullEnough     RuleError = "lobby_not_full_enough"
	ErrActionNotAllowed       RuleError = "action_not_allowed"
	ErrInvalidNextLocation    RuleError = "invalid_next_location"
	ErrMissingTimetableCard   RuleError = "missing_timetable_card"
	ErrAlreadyMoved           RuleError = "already_moved"
	ErrNotEnoughCoins         RuleError = "not_enough_coins"
	ErrEventCardNoLocation    RuleError = "event_card_no_location_sent"
	ErrEventCardAlreadyBought RuleError = "event_card_already_bought"
	ErrEventCardStackEmpty    RuleError = "event_card_stack_empty"
	ErrEventCardNotOnHand     RuleError = "event_card_not_on_your_hand"
	ErrNotAnEventField        RuleError = "not_an_event_field"
	ErrHuntedByMenForSport    RuleError = "youre_currently_hunted_by_men_for_sport"
	ErrMustGoToGermanyFrance  RuleError = "you_must_go_to_germany_or_france"
	ErrMustGoNorth            RuleError = "you_must_go_north"
	ErrRatMode                RuleError = "you_are_currently_in_rat_mode"
	ErrMustLeaveCountry       RuleError = "you_must_leave_the_country_immediately"
	ErrValidMovePossible      RuleError = "valid_move_possible"
	ErrThrewTooManyCards      RuleError = "threw_too_many_timetable_cards_away"
)
