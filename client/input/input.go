package input

import (
	"github.com/cbodonnell/pocketpet/client/layout"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keys resolves the key names used by layout.KeyBindings.
var keys = map[string]ebiten.Key{
	"F":      ebiten.KeyF,
	"P":      ebiten.KeyP,
	"C":      ebiten.KeyC,
	"R":      ebiten.KeyR,
	"Escape": ebiten.KeyEscape,
}

// JustPressedTriggers returns the triggers pressed since the last frame,
// from touches and mouse clicks on the layout's buttons and then from the
// keyboard in binding order.
func JustPressedTriggers(l *layout.Layout) []types.Trigger {
	var triggers []types.Trigger
	for _, p := range justPressedPositions() {
		if trigger, ok := l.HitTest(float64(p[0]), float64(p[1])); ok {
			triggers = append(triggers, trigger)
		}
	}
	for _, binding := range l.KeyBindings() {
		key, ok := keys[binding.Key]
		if ok && inpututil.IsKeyJustPressed(key) {
			triggers = append(triggers, binding.Trigger)
		}
	}
	return triggers
}

// justPressedPositions returns the screen positions of new clicks and touches.
// Touch and mouse are handled alike since the device only has a touchscreen.
func justPressedPositions() [][2]int {
	var positions [][2]int
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		positions = append(positions, [2]int{x, y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		positions = append(positions, [2]int{x, y})
	}
	return positions
}

// IsQuitRequested reports whether the window is being closed.
func IsQuitRequested() bool {
	return ebiten.IsWindowBeingClosed()
}
