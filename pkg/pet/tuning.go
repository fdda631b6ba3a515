package pet

import (
	"time"

	"github.com/cbodonnell/pocketpet/pkg/pet/constants"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
)

// Rule is what an action costs and what it changes.
type Rule struct {
	// Cost is the energy the action consumes
	Cost      int
	Hunger    int
	Happiness int
	Love      int
	XP        int
}

// Rules maps every action to its rule.
type Rules map[types.Action]Rule

// DefaultRules returns the stock action rules.
func DefaultRules() Rules {
	return Rules{
		types.ActionFeed:   {Cost: 2, Hunger: 20, XP: 10},
		types.ActionPlay:   {Cost: 10, Hunger: -2, Happiness: 20, Love: 4, XP: 14},
		types.ActionCuddle: {Cost: 10, Hunger: -2, Happiness: 5, Love: 20, XP: 14},
	}
}

// Tuning holds the engine parameters that can change without a restart.
type Tuning struct {
	DecayInterval       time.Duration
	DecayHunger         int
	DecayHappiness      int
	DecayEnergy         int
	DecayLove           int
	ActionFrameDuration time.Duration
	IdleFrameDuration   time.Duration
	// AgeInterval is the cadence of AdvanceAge. Zero disables aging by time.
	AgeInterval time.Duration
	Rules       Rules
}

// DefaultTuning returns the stock tuning.
func DefaultTuning() Tuning {
	return Tuning{
		DecayInterval:       constants.DecayInterval,
		DecayHunger:         constants.DecayPerInterval,
		DecayHappiness:      constants.DecayPerInterval,
		DecayEnergy:         constants.DecayPerInterval,
		DecayLove:           constants.DecayPerInterval,
		ActionFrameDuration: constants.ActionFrameDuration,
		IdleFrameDuration:   constants.IdleFrameDuration,
		AgeInterval:         constants.AgeInterval,
		Rules:               DefaultRules(),
	}
}

// ActionDuration is how long the input stays locked after an action.
func (t Tuning) ActionDuration() time.Duration {
	return time.Duration(constants.ActionFrameCount) * t.ActionFrameDuration
}
