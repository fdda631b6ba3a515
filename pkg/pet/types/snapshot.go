package types

// SpriteAction selects the sprite row the renderer draws.
type SpriteAction string

const (
	SpriteIdle     SpriteAction = "idle"
	SpriteFeed     SpriteAction = "feed"
	SpritePlay     SpriteAction = "play"
	SpriteCuddle   SpriteAction = "cuddle"
	SpriteNoEnergy SpriteAction = "no_energy"
	SpriteDead     SpriteAction = "dead"
)

// SpriteFor returns the sprite row an action animates with.
func SpriteFor(a Action) SpriteAction {
	switch a {
	case ActionFeed:
		return SpriteFeed
	case ActionPlay:
		return SpritePlay
	case ActionCuddle:
		return SpriteCuddle
	}
	return SpriteIdle
}

// StatView is a stat value with the band it is drawn in.
type StatView struct {
	Value int
	Band  Band
}

func NewStatView(value int) StatView {
	return StatView{Value: value, Band: BandFor(value)}
}

// Snapshot is the read-only view of the pet handed to the renderer each frame.
type Snapshot struct {
	Hunger    StatView
	Happiness StatView
	Energy    StatView
	Love      StatView

	Phase    Phase
	Age      int
	XP       int
	XPNeeded int
	MaxAge   bool

	Sprite      SpriteAction
	Frame       int
	InputLocked bool
	Dead        bool

	// Message is the dialog line to show, empty when none.
	Message string
}
