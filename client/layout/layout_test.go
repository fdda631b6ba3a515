package layout

import (
	"testing"

	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/stretchr/testify/assert"
)

func TestLayout_HitTest(t *testing.T) {
	l := New()

	for _, b := range l.Buttons() {
		t.Run(b.Label, func(t *testing.T) {
			x, y := b.Rect.Center()
			got, ok := l.HitTest(x, y)
			assert.True(t, ok)
			assert.Equal(t, b.Trigger, got)

			// corners are inside, the far edges are not
			got, ok = l.HitTest(b.Rect.X, b.Rect.Y)
			assert.True(t, ok)
			assert.Equal(t, b.Trigger, got)
			_, ok = l.HitTest(b.Rect.X+b.Rect.W, b.Rect.Y+b.Rect.H)
			if ok {
				got, _ = l.HitTest(b.Rect.X+b.Rect.W, b.Rect.Y+b.Rect.H)
				assert.NotEqual(t, b.Trigger, got)
			}
		})
	}

	tests := []struct {
		name string
		x, y float64
	}{
		{name: "sprite", x: 160, y: 200},
		{name: "stat bars", x: 200, y: 20},
		{name: "gap between buttons", x: 108, y: 400},
		{name: "left margin", x: 2, y: 400},
		{name: "outside screen", x: -5, y: 400},
		{name: "below screen", x: 100, y: 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := l.HitTest(tt.x, tt.y)
			assert.False(t, ok)
		})
	}
}

func TestLayout_Buttons(t *testing.T) {
	l := New()
	want := []types.Trigger{types.TriggerFeed, types.TriggerPlay, types.TriggerCuddle, types.TriggerReset, types.TriggerPower}
	var got []types.Trigger
	for _, b := range l.Buttons() {
		got = append(got, b.Trigger)
		assert.LessOrEqual(t, b.Rect.X+b.Rect.W, float64(ScreenWidth))
		assert.LessOrEqual(t, b.Rect.Y+b.Rect.H, float64(ScreenHeight))
	}
	assert.Equal(t, want, got)
}

func TestLayout_KeyBindings(t *testing.T) {
	l := New()
	want := []KeyBinding{
		{Key: "F", Trigger: types.TriggerFeed},
		{Key: "P", Trigger: types.TriggerPlay},
		{Key: "C", Trigger: types.TriggerCuddle},
		{Key: "R", Trigger: types.TriggerReset},
		{Key: "Escape", Trigger: types.TriggerQuit},
	}
	// same order on every call
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, l.KeyBindings())
	}

	seen := make(map[string]bool)
	for _, b := range l.KeyBindings() {
		assert.False(t, seen[b.Key], "key %s bound twice", b.Key)
		seen[b.Key] = true
	}
}

func TestRect_Fill(t *testing.T) {
	r := Rect{X: 10, Y: 0, W: 200, H: 10}
	assert.Equal(t, 0.0, r.Fill(0).W)
	assert.Equal(t, 100.0, r.Fill(50).W)
	assert.Equal(t, 200.0, r.Fill(100).W)
	assert.Equal(t, 200.0, r.Fill(150).W)
	assert.Equal(t, 0.0, r.Fill(-3).W)
	assert.Equal(t, 10.0, r.Fill(50).X)
}
