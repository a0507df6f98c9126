package translator

import "fmt"

// Direction selects which side of the lexical mappings is the source.
type Direction int

const (
	// HinglishToKumaoni translates forward through the key side.
	HinglishToKumaoni Direction = iota
	// KumaoniToHinglish translates by reverse value lookup. Suffix
	// rules only apply in the forward direction.
	KumaoniToHinglish
)

// Wire names for directions, as they appear in CLI flags and documents.
const (
	directionForward = "hinglish_to_kumaoni"
	directionReverse = "kumaoni_to_hinglish"
)

// ErrInvalidDirection is returned for an unrecognized direction string.
// The operation is rejected outright; no partial work happens.
var ErrInvalidDirection = fmt.Errorf("direction must be %q or %q", directionForward, directionReverse)

// ParseDirection converts a wire name into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case directionForward:
		return HinglishToKumaoni, nil
	case directionReverse:
		return KumaoniToHinglish, nil
	default:
		return 0, fmt.Errorf("parse direction %q: %w", s, ErrInvalidDirection)
	}
}

// String returns the wire name.
func (d Direction) String() string {
	if d == KumaoniToHinglish {
		return directionReverse
	}
	return directionForward
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == KumaoniToHinglish {
		return HinglishToKumaoni
	}
	return KumaoniToHinglish
}
