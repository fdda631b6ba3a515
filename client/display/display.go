package display

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/pocketpet/client/fonts"
	"github.com/cbodonnell/pocketpet/client/input"
	"github.com/cbodonnell/pocketpet/client/layout"
	"github.com/cbodonnell/pocketpet/pkg/clock"
	"github.com/cbodonnell/pocketpet/pkg/game"
	"github.com/cbodonnell/pocketpet/pkg/log"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/cbodonnell/pocketpet/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	backgroundColor = color.RGBA{0x1e, 0x1e, 0x24, 0xff}
	panelColor      = color.RGBA{0x2c, 0x2c, 0x34, 0xff}
	buttonColor     = color.RGBA{0x44, 0x44, 0x50, 0xff}
	disabledColor   = color.RGBA{0x33, 0x33, 0x3a, 0xff}
	textColor       = color.RGBA{0xee, 0xee, 0xee, 0xff}

	bandColors = map[types.Band]color.RGBA{
		types.BandGreen: {0x4c, 0xaf, 0x50, 0xff},
		types.BandBlue:  {0x21, 0x96, 0xf3, 0xff},
		types.BandRed:   {0xf4, 0x43, 0x36, 0xff},
	}

	phaseColors = map[types.Phase]color.RGBA{
		types.PhaseBaby:  {0xff, 0xd5, 0x4f, 0xff},
		types.PhaseKid:   {0xff, 0xa7, 0x26, 0xff},
		types.PhaseTeen:  {0xab, 0x47, 0xbc, 0xff},
		types.PhaseAdult: {0x5c, 0x6b, 0xc0, 0xff},
	}
)

// Display implements ebiten.Game. Update feeds input to the game loop and
// runs one Step; Draw renders the latest snapshot.
type Display struct {
	ctx         context.Context
	gameManager *game.GameManager
	inputQueue  queue.Queue
	layout      *layout.Layout
	clock       clock.Clock
}

type NewDisplayOptions struct {
	GameManager *game.GameManager
	InputQueue  queue.Queue
	Clock       clock.Clock
}

// NewDisplay creates the window game. ctx cancellation stops the game at the next frame.
func NewDisplay(ctx context.Context, opts NewDisplayOptions) *Display {
	c := opts.Clock
	if c == nil {
		c = clock.NewReal()
	}
	return &Display{
		ctx:         ctx,
		gameManager: opts.GameManager,
		inputQueue:  opts.InputQueue,
		layout:      layout.New(),
		clock:       c,
	}
}

// Run opens the window and blocks until the game stops.
func (d *Display) Run() error {
	ebiten.SetWindowSize(layout.ScreenWidth, layout.ScreenHeight)
	ebiten.SetWindowTitle("pocketpet")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(30)
	return ebiten.RunGame(d)
}

func (d *Display) Update() error {
	for _, trigger := range input.JustPressedTriggers(d.layout) {
		d.enqueue(trigger)
	}
	if input.IsQuitRequested() {
		d.enqueue(types.TriggerQuit)
	}

	if d.gameManager.Step(d.ctx, d.clock.Now()) {
		return ebiten.Termination
	}
	return nil
}

func (d *Display) enqueue(trigger types.Trigger) {
	if err := d.inputQueue.Enqueue(trigger); err != nil {
		log.Warn("Dropped %s: %v", trigger, err)
	}
}

func (d *Display) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s := d.gameManager.Snapshot()

	d.drawBar(screen, "Hunger", layout.HungerBar, s.Hunger)
	d.drawBar(screen, "Happiness", layout.HappinessBar, s.Happiness)
	d.drawBar(screen, "Energy", layout.EnergyBar, s.Energy)
	d.drawBar(screen, "Love", layout.LoveBar, s.Love)

	status := fmt.Sprintf("%s, age %d", s.Phase, s.Age)
	if s.MaxAge {
		status += ", fully grown"
	} else {
		status += fmt.Sprintf(", xp %d/%d", s.XP, s.XPNeeded)
	}
	drawText(screen, status, fonts.TTFNormalFont, layout.StatusLine.X, layout.StatusLine.Y+layout.StatusLine.H-4)

	d.drawSprite(screen, s)

	drawRect(screen, layout.Dialog, panelColor)
	if s.Message != "" {
		y := layout.Dialog.Y + 22
		for _, line := range wrap(s.Message, fonts.MPlusDialogFont, layout.Dialog.W-16) {
			drawText(screen, line, fonts.MPlusDialogFont, layout.Dialog.X+8, y)
			y += 20
		}
	}

	for _, b := range d.layout.Buttons() {
		clr := buttonColor
		if disabled(b.Trigger, s) {
			clr = disabledColor
		}
		drawRect(screen, b.Rect, clr)
		drawCentered(screen, b.Label, fonts.TTFNormalFont, b.Rect)
	}
}

func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return layout.ScreenWidth, layout.ScreenHeight
}

func (d *Display) drawBar(screen *ebiten.Image, label string, r layout.Rect, v types.StatView) {
	drawText(screen, label, fonts.TTFSmallFont, 8, r.Y+r.H-4)
	drawRect(screen, r, panelColor)
	drawRect(screen, r.Fill(v.Value), bandColors[v.Band])
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, textColor, false)
}

// drawSprite draws a placeholder for the pet: a block colored by phase
// that shrinks on alternate frames, labelled with the current animation.
func (d *Display) drawSprite(screen *ebiten.Image, s types.Snapshot) {
	r := layout.Sprite
	clr := phaseColors[s.Phase]
	if s.Dead {
		clr = disabledColor
	}
	inset := 8.0
	if s.Frame%2 == 1 {
		inset = 14
	}
	drawRect(screen, layout.Rect{X: r.X + inset, Y: r.Y + inset, W: r.W - 2*inset, H: r.H - 2*inset}, clr)
	label := string(s.Sprite)
	if s.Frame > 1 {
		label = fmt.Sprintf("%s %d", label, s.Frame)
	}
	drawCentered(screen, label, fonts.TTFSmallFont, r)
}

// disabled reports whether a button would be ignored right now.
func disabled(trigger types.Trigger, s types.Snapshot) bool {
	switch trigger {
	case types.TriggerReset:
		return !s.Dead
	case types.TriggerPower:
		return false
	default:
		return s.Dead || s.InputLocked
	}
}

func drawRect(screen *ebiten.Image, r layout.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func drawText(screen *ebiten.Image, t string, f font.Face, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.DrawWithOptions(screen, t, f, op)
}

func drawCentered(screen *ebiten.Image, t string, f font.Face, r layout.Rect) {
	bounds, _ := font.BoundString(f, t)
	w := float64((bounds.Max.X - bounds.Min.X) >> 6)
	h := float64((bounds.Max.Y - bounds.Min.Y) >> 6)
	cx, cy := r.Center()
	drawText(screen, t, f, cx-w/2, cy+h/2)
}

// wrap splits s into lines no wider than width.
func wrap(s string, f font.Face, width float64) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && float64(font.MeasureString(f, candidate)>>6) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
