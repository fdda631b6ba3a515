package types

import "github.com/cbodonnell/pocketpet/pkg/pet/constants"

// Band is the color a stat bar is drawn in.
type Band uint8

const (
	BandRed Band = iota
	BandBlue
	BandGreen
)

func (b Band) String() string {
	switch b {
	case BandRed:
		return "red"
	case BandBlue:
		return "blue"
	case BandGreen:
		return "green"
	}
	return "unknown"
}

// BandFor returns green above 66, red below 33 and blue in between.
func BandFor(value int) Band {
	switch {
	case value > constants.BandGreenAbove:
		return BandGreen
	case value < constants.BandRedBelow:
		return BandRed
	default:
		return BandBlue
	}
}
