package types

import (
	"math"
	"testing"
	"time"

	"github.com/cbodonnell/pocketpet/pkg/pet/constants"
	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	s := NewState(now)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 100, s.Hunger)
	assert.Equal(t, 100, s.Happiness)
	assert.Equal(t, 100, s.Energy)
	assert.Equal(t, 100, s.Love)
	assert.Equal(t, 1, s.Age)
	assert.Equal(t, 0, s.XP)
	assert.False(t, s.Dead)
	assert.False(t, s.InputLocked)
	assert.Equal(t, PhaseBaby, s.Phase())
	assert.Equal(t, now.UnixMilli(), s.BornAt)
	assert.NoError(t, s.Validate())
}

func TestClamp(t *testing.T) {
	for v := -250; v <= 250; v++ {
		got := Clamp(v)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
		if v >= 0 && v <= 100 {
			assert.Equal(t, v, got)
		}
	}
}

func TestState_Validate(t *testing.T) {
	valid := func() *State { return NewState(time.UnixMilli(0)) }
	tests := []struct {
		name      string
		mutate    func(s *State)
		wantField string
	}{
		{name: "valid", mutate: func(s *State) {}},
		{name: "missing id", mutate: func(s *State) { s.ID = "" }, wantField: "id"},
		{name: "bad id", mutate: func(s *State) { s.ID = "not-a-uuid" }, wantField: "id"},
		{name: "hunger high", mutate: func(s *State) { s.Hunger = 101 }, wantField: "hunger"},
		{name: "happiness low", mutate: func(s *State) { s.Happiness = -1 }, wantField: "happiness"},
		{name: "energy high", mutate: func(s *State) { s.Energy = 500 }, wantField: "energy"},
		{name: "love low", mutate: func(s *State) { s.Love = -20 }, wantField: "love"},
		{name: "age zero", mutate: func(s *State) { s.Age = 0 }, wantField: "age"},
		{name: "negative xp", mutate: func(s *State) { s.XP = -3 }, wantField: "xp"},
		{name: "xp above max", mutate: func(s *State) { s.XP = math.MaxInt }, wantField: "xp"},
		{name: "age at max", mutate: func(s *State) { s.Age = constants.MaxAge }},
		{name: "age above max", mutate: func(s *State) { s.Age = constants.MaxAge + 1 }, wantField: "age"},
		{name: "age near overflow", mutate: func(s *State) { s.Age = math.MaxInt }, wantField: "age"},
		{name: "negative bornAt", mutate: func(s *State) { s.BornAt = -1 }, wantField: "bornAt"},
		{name: "negative lastActionAt", mutate: func(s *State) { s.LastActionAt = -5 }, wantField: "lastActionAt"},
		{name: "negative lastSavedAt", mutate: func(s *State) { s.LastSavedAt = math.MinInt64 }, wantField: "lastSavedAt"},
		{name: "far past lastAgedAt", mutate: func(s *State) { s.LastAgedAt = -8_000_000_000_000_000_000 }, wantField: "lastAgedAt"},
		{name: "timestamp past year 9999", mutate: func(s *State) { s.LastSavedAt = constants.MaxTimestamp + 1 }, wantField: "lastSavedAt"},
		{name: "lastAgedAt before bornAt", mutate: func(s *State) { s.BornAt, s.LastAgedAt = 2000, 1000 }, wantField: "lastAgedAt"},
		{name: "lastAgedAt unset", mutate: func(s *State) { s.BornAt, s.LastAgedAt = 2000, 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			if assert.ErrorAs(t, err, &verr) {
				assert.Equal(t, tt.wantField, verr.Field)
			}
		})
	}
}

func TestState_Equal(t *testing.T) {
	a := NewState(time.UnixMilli(10))
	b := a.Copy()
	b.InputLocked = true
	assert.True(t, a.Equal(b))

	b.Hunger--
	assert.False(t, a.Equal(b))
}

func TestXPNeeded(t *testing.T) {
	assert.Equal(t, 100, XPNeeded(1))
	assert.Equal(t, 125, XPNeeded(2))
	assert.Equal(t, 575, XPNeeded(20))
	assert.Equal(t, 100, XPNeeded(0))
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		value int
		want  Band
	}{
		{0, BandRed},
		{32, BandRed},
		{33, BandBlue},
		{50, BandBlue},
		{66, BandBlue},
		{67, BandGreen},
		{100, BandGreen},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.value), "value %d", tt.value)
	}
}

func TestParseTrigger(t *testing.T) {
	for _, tr := range []Trigger{TriggerFeed, TriggerPlay, TriggerCuddle, TriggerReset, TriggerPower, TriggerQuit} {
		got, err := ParseTrigger(tr.String())
		assert.NoError(t, err)
		assert.Equal(t, tr, got)
	}
	_, err := ParseTrigger("dance")
	assert.Error(t, err)

	a, ok := TriggerCuddle.Action()
	assert.True(t, ok)
	assert.Equal(t, ActionCuddle, a)
	_, ok = TriggerPower.Action()
	assert.False(t, ok)
}
