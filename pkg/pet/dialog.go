package pet

import (
	"math/rand/v2"

	"github.com/cbodonnell/pocketpet/pkg/pet/types"
)

type DialogKey uint8

const (
	DialogFeed DialogKey = iota
	DialogPlay
	DialogCuddle
	DialogNoEnergy
	DialogHungry
	DialogDeadLove
	DialogDeadPlay
	DialogReset
)

func dialogKeyForAction(a types.Action) DialogKey {
	switch a {
	case types.ActionPlay:
		return DialogPlay
	case types.ActionCuddle:
		return DialogCuddle
	default:
		return DialogFeed
	}
}

var dialogLines = map[types.Phase]map[DialogKey][]string{
	types.PhaseBaby: {
		DialogFeed:     {"Nom nom...", "*slurp*", "nyom nyom nyom"},
		DialogPlay:     {"brrbrrbrr", "ba ba ba!", "rattle rattle"},
		DialogCuddle:   {"warm...", "so cozy :D", "more please"},
		DialogNoEnergy: {"waaah", "*sleepy baby noises*", "waaa"},
		DialogHungry:   {"goo goo feed me", "Feed me..", "my tummy..."},
		DialogDeadLove: {"... you don't love me."},
		DialogDeadPlay: {"... you never play with me."},
		DialogReset:    {"A new egg hatched. Take better care this time."},
	},
	types.PhaseKid: {
		DialogFeed:     {"Yummy yummy", "I'm full :D", "Thanks!"},
		DialogPlay:     {"Again! Again!", "This is so cool", "PLAY WITH ME!!!"},
		DialogCuddle:   {"Love you", "Hehe :3", "Best friend!"},
		DialogNoEnergy: {"No energy!", "Later...", "Too tired to play ;("},
		DialogHungry:   {"I'm hungry...", "Feed me...", "I'm starving..."},
		DialogDeadLove: {"... you don't love me."},
		DialogDeadPlay: {"... you never play with me."},
		DialogReset:    {"A new egg hatched. Pay attention this time."},
	},
	types.PhaseTeen: {
		DialogFeed:     {"Snack time", "One more slice", "Fuel for later"},
		DialogPlay:     {"Second home :)", "Gotta water the plants", "Work work.."},
		DialogCuddle:   {"<3 <3 <3", "ok fine, one hug", "ily"},
		DialogNoEnergy: {"not now", "leave me alone", "forget it"},
		DialogHungry:   {"I'm hungry...", "Food. Now.", "Why is there no food"},
		DialogDeadLove: {"... you don't love me."},
		DialogDeadPlay: {"... you never play with me."},
		DialogReset:    {"Don't mess it up again!"},
	},
	types.PhaseAdult: {
		DialogFeed:     {"Meat!", "Stuffing my face", "*mouth too full to talk*"},
		DialogPlay:     {"MY CAR!", "Is that a...", "Let's go!"},
		DialogCuddle:   {"My dear", "You angel", "Stay forever"},
		DialogNoEnergy: {"I'm beat", "no way", "Maybe later"},
		DialogHungry:   {"You never feed me", "I'd cook myself if I could", "HUNGRY"},
		DialogDeadLove: {"... you don't love me."},
		DialogDeadPlay: {"... you never play with me."},
		DialogReset:    {"You can reset forever here. Real pets only live once."},
	},
}

// Dialog picks lines for the current phase.
type Dialog struct {
	rand *rand.Rand
}

func NewDialog(r *rand.Rand) *Dialog {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Dialog{rand: r}
}

// Line returns a line for key, or an empty string when none exists.
func (d *Dialog) Line(phase types.Phase, key DialogKey) string {
	options := dialogLines[phase][key]
	if len(options) == 0 {
		return ""
	}
	return options[d.rand.IntN(len(options))]
}
