package constants

import "time"

const (
	// MinStat is the lower bound of every stat
	MinStat int = 0
	// MaxStat is the upper bound of every stat
	MaxStat int = 100
	// DefaultStat is the value every stat starts at for a fresh pet
	DefaultStat int = MaxStat
	// StartingAge is the age of a fresh pet
	StartingAge int = 1
	// MaxGrowthAge is the last age reachable through experience
	MaxGrowthAge int = 20
	// MaxAge is the oldest age a pet can reach through the daily cadence
	MaxAge int = 10000
	// MaxXP is the most experience a pet can hold
	MaxXP int = 1_000_000_000
	// MaxTimestamp is the latest unix millisecond accepted in a save (end of year 9999)
	MaxTimestamp int64 = 253402300799999

	// BandGreenAbove is the value a stat must exceed to render green
	BandGreenAbove int = 66
	// BandRedBelow is the value a stat must stay under to render red
	BandRedBelow int = 33

	// DecayInterval is how often stats lose DecayPerInterval points
	DecayInterval time.Duration = 10 * time.Second
	// DecayPerInterval is the amount each stat loses per DecayInterval
	DecayPerInterval int = 1

	// ActionFrameCount is the number of frames in an action animation
	ActionFrameCount int = 2
	// ActionFrameDuration is how long each action frame is shown
	ActionFrameDuration time.Duration = 2200 * time.Millisecond
	// IdleFrameDuration is how long each idle frame is shown
	IdleFrameDuration time.Duration = 2400 * time.Millisecond
	// SecretIdleFrame is the frame index shown to a well fed teen
	SecretIdleFrame int = 2

	// AgeInterval is how often the pet ages on its own
	AgeInterval time.Duration = 24 * time.Hour
	// AutosaveInterval is how often the state is saved without an action
	AutosaveInterval time.Duration = 60 * time.Second
	// LoopInterval is the headless loop period (30 iterations per second)
	LoopInterval time.Duration = 33 * time.Millisecond

	// NoEnergyThreshold is the energy under which the idle pet looks exhausted
	NoEnergyThreshold int = 10

	// XPBase is the experience needed to grow out of age 1
	XPBase int = 100
	// XPPerAge is the additional experience needed per age
	XPPerAge int = 25

	// DialogDuration is how long a dialog line stays on screen
	DialogDuration time.Duration = 4200 * time.Millisecond
	// ShortDialogDuration is used for "no energy" and reset lines
	ShortDialogDuration time.Duration = 2600 * time.Millisecond
	// LongDialogDuration is used for hunger and death lines
	LongDialogDuration time.Duration = 7000 * time.Millisecond
)

// Energy regeneration: minutes to go from 0 to 100 energy while idle
const (
	EnergyFillMinutesStarving float64 = 60.0
	EnergyFillMinutesHungry   float64 = 20.0
	EnergyFillMinutesAllGreen float64 = 7.5
	EnergyFillMinutesOneBlue  float64 = 10.0
	EnergyFillMinutesDefault  float64 = 12.5
)

// SaveFileVersion is written into every save file
const SaveFileVersion int = 1
