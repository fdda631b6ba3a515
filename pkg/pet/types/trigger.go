package types

import "fmt"

// Trigger is an abstract input event. Front-ends map screen regions,
// keys or stdin lines to triggers; the game loop only sees triggers.
type Trigger uint8

const (
	TriggerFeed Trigger = iota
	TriggerPlay
	TriggerCuddle
	TriggerReset
	TriggerPower
	TriggerQuit
)

func (t Trigger) String() string {
	switch t {
	case TriggerFeed:
		return "feed"
	case TriggerPlay:
		return "play"
	case TriggerCuddle:
		return "cuddle"
	case TriggerReset:
		return "reset"
	case TriggerPower:
		return "power"
	case TriggerQuit:
		return "quit"
	}
	return "unknown"
}

// ParseTrigger parses the string form of a trigger.
func ParseTrigger(s string) (Trigger, error) {
	switch s {
	case "feed":
		return TriggerFeed, nil
	case "play":
		return TriggerPlay, nil
	case "cuddle":
		return TriggerCuddle, nil
	case "reset":
		return TriggerReset, nil
	case "power":
		return TriggerPower, nil
	case "quit":
		return TriggerQuit, nil
	}
	return TriggerQuit, fmt.Errorf("unknown trigger: %s", s)
}

// Action returns the pet action a trigger invokes, if any.
func (t Trigger) Action() (Action, bool) {
	switch t {
	case TriggerFeed:
		return ActionFeed, true
	case TriggerPlay:
		return ActionPlay, true
	case TriggerCuddle:
		return ActionCuddle, true
	}
	return 0, false
}

// Action is something the owner does to the pet.
type Action uint8

const (
	ActionFeed Action = iota
	ActionPlay
	ActionCuddle
)

func (a Action) String() string {
	switch a {
	case ActionFeed:
		return "feed"
	case ActionPlay:
		return "play"
	case ActionCuddle:
		return "cuddle"
	}
	return "unknown"
}
