// Package deck defines the two card types and their deck generators. Both
// generators are pure: every call builds a fresh deck with its own shuffle.
package deck

import (
	"fmt"
	"math/rand/v2"
)

// TimetableCard is a transport ticket. Its value is the wire token.
type TimetableCard string

const (
	LowSpeed  TimetableCard = "low_speed"
	HighSpeed TimetableCard = "high_speed"
	Plane     TimetableCard = "plane"
	Joker     TimetableCard = "joker"
)

// ParseTimetableCard validates a wire token.
func ParseTimetableCard(token string) (TimetableCard, error) {
	switch c := TimetableCard(token); c {
	case LowSpeed, HighSpeed, Plane, Joker:
		return c, nil
	default:
		return "", fmt.Errorf("unknown timetable card %q", token)
	}
}

func (c TimetableCard) String() string { return string(c) }

// SpeedRank orders the concrete transport modes from slowest to fastest.
// Joker has no rank of its own; it can stand in for any mode.
func (c TimetableCard) SpeedRank() int {
	switch c {
	case LowSpeed:
		return 1
	case HighSpeed:
		return 2
	case Plane:
		return 3
	}
	return 0
}

// The physical game ships 100 tickets: 50 low speed, 30 high speed,
// 16 plane and 4 joker.
const (
	lowSpeedCount  = 50
	highSpeedCount = 30
	planeCount     = 16
	jokerCount     = 4
)

// BuildTimetableDeck returns the shuffled 100-card ticket deck. Cards are
// drawn by popping from the end.
func BuildTimetableDeck() []TimetableCard {
	out := make([]TimetableCard, 0, lowSpeedCount+highSpeedCount+planeCount+jokerCount)
	for i := 0; i < lowSpeedCount; i++ {
		out = append(out, LowSpeed)
	}
	for i := 0; i < highSpeedCount; i++ {
		out = append(out, HighSpeed)
	}
	for i := 0; i < planeCount; i++ {
		out = append(out, Plane)
	}
	for i := 0; i < jokerCount; i++ {
		out = append(out, Joker)
	}

	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
