package types

import "fmt"

type Phase uint8

const (
	PhaseBaby Phase = iota
	PhaseKid
	PhaseTeen
	PhaseAdult
)

func (p Phase) String() string {
	switch p {
	case PhaseBaby:
		return "baby"
	case PhaseKid:
		return "kid"
	case PhaseTeen:
		return "teen"
	case PhaseAdult:
		return "adult"
	}
	return "unknown"
}

// ParsePhase parses the string form of a phase.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "baby":
		return PhaseBaby, nil
	case "kid":
		return PhaseKid, nil
	case "teen":
		return PhaseTeen, nil
	case "adult":
		return PhaseAdult, nil
	}
	return PhaseBaby, fmt.Errorf("unknown phase: %s", s)
}

// DerivePhase maps an age to its phase:
// 1-4 baby, 5-9 kid, 10-14 teen, 15 and above adult.
// Ages below 1 are treated as baby.
func DerivePhase(age int) Phase {
	switch {
	case age >= 15:
		return PhaseAdult
	case age >= 10:
		return PhaseTeen
	case age >= 5:
		return PhaseKid
	default:
		return PhaseBaby
	}
}
