package layout

import (
	"github.com/cbodonnell/pocketpet/pkg/pet/constants"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/solarlune/resolv"
)

// The device is a 320x480 portrait touchscreen.
const (
	ScreenWidth  = 320
	ScreenHeight = 480

	cellSize = 16
	margin   = 8

	TagButton = "button"
)

// Rect is an axis aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Fill returns the part of a bar covered by value out of MaxStat.
func (r Rect) Fill(value int) Rect {
	value = types.Clamp(value)
	return Rect{X: r.X, Y: r.Y, W: r.W * float64(value) / float64(constants.MaxStat), H: r.H}
}

// Stat bars, top of the screen
var (
	HungerBar    = Rect{X: 96, Y: 12, W: 212, H: 18}
	HappinessBar = Rect{X: 96, Y: 38, W: 212, H: 18}
	EnergyBar    = Rect{X: 96, Y: 64, W: 212, H: 18}
	LoveBar      = Rect{X: 96, Y: 90, W: 212, H: 18}

	// StatusLine shows phase, age and experience
	StatusLine = Rect{X: margin, Y: 116, W: ScreenWidth - 2*margin, H: 20}
	// Sprite is where the pet is drawn
	Sprite = Rect{X: 96, Y: 144, W: 128, H: 128}
	// Dialog holds the pet's speech
	Dialog = Rect{X: margin, Y: 284, W: ScreenWidth - 2*margin, H: 80}
)

// Button is a touch region bound to a trigger.
type Button struct {
	Trigger types.Trigger
	Label   string
	Rect    Rect
}

var buttons = []Button{
	{Trigger: types.TriggerFeed, Label: "Feed", Rect: Rect{X: 8, Y: 376, W: 96, H: 52}},
	{Trigger: types.TriggerPlay, Label: "Play", Rect: Rect{X: 112, Y: 376, W: 96, H: 52}},
	{Trigger: types.TriggerCuddle, Label: "Cuddle", Rect: Rect{X: 216, Y: 376, W: 96, H: 52}},
	{Trigger: types.TriggerReset, Label: "Reset", Rect: Rect{X: 8, Y: 436, W: 148, H: 36}},
	{Trigger: types.TriggerPower, Label: "Power", Rect: Rect{X: 164, Y: 436, W: 148, H: 36}},
}

// KeyBinding ties a keyboard key, by name, to a trigger.
type KeyBinding struct {
	Key     string
	Trigger types.Trigger
}

// keyBindings are the keys of a development machine, checked in this order.
var keyBindings = []KeyBinding{
	{Key: "F", Trigger: types.TriggerFeed},
	{Key: "P", Trigger: types.TriggerPlay},
	{Key: "C", Trigger: types.TriggerCuddle},
	{Key: "R", Trigger: types.TriggerReset},
	{Key: "Escape", Trigger: types.TriggerQuit},
}

// Layout resolves touches to triggers. Buttons live in a resolv space;
// a one pixel probe finds the candidates and the button bounds decide.
type Layout struct {
	space   *resolv.Space
	probe   *resolv.Object
	buttons []Button
}

func New() *Layout {
	space := resolv.NewSpace(ScreenWidth, ScreenHeight, cellSize, cellSize)
	for i := range buttons {
		b := buttons[i]
		obj := resolv.NewObject(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, TagButton)
		obj.Data = b
		space.Add(obj)
	}
	probe := resolv.NewObject(0, 0, 1, 1)
	space.Add(probe)

	return &Layout{
		space:   space,
		probe:   probe,
		buttons: buttons,
	}
}

// Buttons returns the buttons in drawing order.
func (l *Layout) Buttons() []Button {
	return l.buttons
}

// KeyBindings returns the keyboard bindings in the order they are checked.
func (l *Layout) KeyBindings() []KeyBinding {
	return keyBindings
}

// HitTest returns the trigger of the button under (x, y), if any.
func (l *Layout) HitTest(x, y float64) (types.Trigger, bool) {
	if x < 0 || y < 0 || x >= ScreenWidth || y >= ScreenHeight {
		return 0, false
	}

	l.probe.X, l.probe.Y = x, y
	l.probe.Update()

	collision := l.probe.Check(0, 0, TagButton)
	if collision == nil {
		return 0, false
	}
	for _, obj := range collision.Objects {
		b, ok := obj.Data.(Button)
		if !ok {
			continue
		}
		if b.Rect.Contains(x, y) {
			return b.Trigger, true
		}
	}
	return 0, false
}
