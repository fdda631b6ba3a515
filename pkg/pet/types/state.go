package types

import (
	"fmt"
	"time"

	"github.com/cbodonnell/pocketpet/pkg/pet/constants"
	"github.com/google/uuid"
)

// State is the pet. It is the only entity that is persisted.
// Timestamps are unix milliseconds so a saved state round-trips exactly.
type State struct {
	ID           string `json:"id"`
	Hunger       int    `json:"hunger"`
	Happiness    int    `json:"happiness"`
	Energy       int    `json:"energy"`
	Love         int    `json:"love"`
	Age          int    `json:"age"`
	XP           int    `json:"xp"`
	Dead         bool   `json:"dead"`
	BornAt       int64  `json:"bornAt"`
	LastActionAt int64  `json:"lastActionAt"`
	LastSavedAt  int64  `json:"lastSavedAt"`
	LastAgedAt   int64  `json:"lastAgedAt"`

	// InputLocked is true while an action animation plays. Never persisted.
	InputLocked bool `json:"-"`
}

// NewState returns a fresh pet born at now:
// hunger, happiness, energy and love at 100, age 1, no experience, alive.
func NewState(now time.Time) *State {
	ms := now.UnixMilli()
	return &State{
		ID:         uuid.NewString(),
		Hunger:     constants.DefaultStat,
		Happiness:  constants.DefaultStat,
		Energy:     constants.DefaultStat,
		Love:       constants.DefaultStat,
		Age:        constants.StartingAge,
		BornAt:     ms,
		LastAgedAt: ms,
	}
}

// Phase is derived from the age and never stored on its own.
func (s *State) Phase() Phase {
	return DerivePhase(s.Age)
}

// Copy returns a copy of the state
func (s *State) Copy() *State {
	c := *s
	return &c
}

// Equal compares the persisted fields of two states.
func (s *State) Equal(other *State) bool {
	a, b := *s, *other
	a.InputLocked, b.InputLocked = false, false
	return a == b
}

// Validate checks that a state read from storage can be played.
func (s *State) Validate() error {
	if s.ID == "" {
		return &ValidationError{Field: "id", Reason: "missing"}
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		return &ValidationError{Field: "id", Reason: err.Error()}
	}
	stats := []struct {
		name  string
		value int
	}{
		{"hunger", s.Hunger},
		{"happiness", s.Happiness},
		{"energy", s.Energy},
		{"love", s.Love},
	}
	for _, stat := range stats {
		if stat.value < constants.MinStat || stat.value > constants.MaxStat {
			return &ValidationError{Field: stat.name, Reason: fmt.Sprintf("%d is outside [%d,%d]", stat.value, constants.MinStat, constants.MaxStat)}
		}
	}
	if s.Age < constants.StartingAge || s.Age > constants.MaxAge {
		return &ValidationError{Field: "age", Reason: fmt.Sprintf("%d is outside [%d,%d]", s.Age, constants.StartingAge, constants.MaxAge)}
	}
	if s.XP < 0 || s.XP > constants.MaxXP {
		return &ValidationError{Field: "xp", Reason: fmt.Sprintf("%d is outside [0,%d]", s.XP, constants.MaxXP)}
	}
	timestamps := []struct {
		name  string
		value int64
	}{
		{"bornAt", s.BornAt},
		{"lastActionAt", s.LastActionAt},
		{"lastSavedAt", s.LastSavedAt},
		{"lastAgedAt", s.LastAgedAt},
	}
	for _, ts := range timestamps {
		if ts.value < 0 || ts.value > constants.MaxTimestamp {
			return &ValidationError{Field: ts.name, Reason: fmt.Sprintf("%d is outside [0,%d]", ts.value, constants.MaxTimestamp)}
		}
	}
	if s.LastAgedAt != 0 && s.LastAgedAt < s.BornAt {
		return &ValidationError{Field: "lastAgedAt", Reason: "before bornAt"}
	}
	return nil
}

// ValidationError reports a state field that breaks the schema.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Clamp limits a stat value to [MinStat, MaxStat].
func Clamp(value int) int {
	if value < constants.MinStat {
		return constants.MinStat
	}
	if value > constants.MaxStat {
		return constants.MaxStat
	}
	return value
}

// XPNeeded returns the experience needed to grow out of age.
func XPNeeded(age int) int {
	if age < constants.StartingAge {
		age = constants.StartingAge
	}
	return constants.XPBase + (age-1)*constants.XPPerAge
}
