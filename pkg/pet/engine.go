package pet

import (
	"math/rand/v2"
	"time"

	"github.com/cbodonnell/pocketpet/pkg/log"
	"github.com/cbodonnell/pocketpet/pkg/pet/constants"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
)

// Result is the outcome of ApplyAction.
type Result uint8

const (
	ResultApplied Result = iota
	ResultLocked
	ResultNoEnergy
	ResultDead
	ResultUnknownAction
)

func (r Result) String() string {
	switch r {
	case ResultApplied:
		return "applied"
	case ResultLocked:
		return "locked"
	case ResultNoEnergy:
		return "no energy"
	case ResultDead:
		return "dead"
	case ResultUnknownAction:
		return "unknown action"
	}
	return "unknown"
}

// Events reports what happened during Update.
type Events struct {
	// Released is set when an action animation finished and the input lock was released
	Released bool
	// Aged is the number of times the pet aged
	Aged int
	// Died is set when the pet died
	Died bool
}

// Engine is the pet state machine. It is driven from a single goroutine:
// Update once per loop iteration, then ApplyAction for each input.
type Engine struct {
	state  *types.State
	tuning Tuning
	dialog *Dialog

	// now is the time of the last Update
	now        time.Time
	decayAccum time.Duration
	// energyAccum holds fractional energy regenerated while idle
	energyAccum float64

	animation   types.SpriteAction
	frame       int
	nextFrameAt time.Time

	hungerWarned bool
	message      string
	messageUntil time.Time
}

type NewEngineOptions struct {
	State  *types.State
	Tuning Tuning
	// Rand picks dialog lines. Nil uses a randomly seeded source.
	Rand *rand.Rand
	Now  time.Time
}

// NewEngine creates an engine around an existing state.
// The input lock is always released: a loaded pet never starts mid-animation.
func NewEngine(opts NewEngineOptions) *Engine {
	state := opts.State
	if state == nil {
		state = types.NewState(opts.Now)
	}
	state.InputLocked = false
	if state.LastAgedAt == 0 {
		state.LastAgedAt = opts.Now.UnixMilli()
	}

	return &Engine{
		state:       state,
		tuning:      opts.Tuning,
		dialog:      NewDialog(opts.Rand),
		now:         opts.Now,
		animation:   types.SpriteIdle,
		nextFrameAt: opts.Now.Add(opts.Tuning.IdleFrameDuration),
	}
}

// State returns the state owned by the engine.
func (e *Engine) State() *types.State {
	return e.state
}

// Tuning returns the current tuning.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// SetTuning replaces the tuning. Running animations keep their schedule.
func (e *Engine) SetTuning(t Tuning) {
	e.tuning = t
}

// Update advances the engine to now: decay, animation, aging,
// hunger warning, death and energy regeneration, in that order.
func (e *Engine) Update(now time.Time) Events {
	var events Events

	elapsed := now.Sub(e.now)
	if elapsed < 0 {
		elapsed = 0
	}
	e.now = now

	e.Tick(elapsed)
	events.Released = e.updateAnimation(now)
	events.Aged = e.updateAge(now)
	e.checkHunger()
	events.Died = e.checkDeath()
	e.regenerateEnergy(elapsed)

	if !e.messageUntil.IsZero() && !now.Before(e.messageUntil) {
		e.message = ""
		e.messageUntil = time.Time{}
	}

	return events
}

// Tick decays hunger, happiness, energy and love by the configured rate for
// every whole decay interval contained in the accumulated elapsed time.
// Stats are clamped to [0,100]. Dead pets do not decay.
func (e *Engine) Tick(elapsed time.Duration) {
	if elapsed <= 0 || e.state.Dead || e.tuning.DecayInterval <= 0 {
		return
	}

	e.decayAccum += elapsed
	steps := e.decayAccum / e.tuning.DecayInterval
	if steps == 0 {
		return
	}
	e.decayAccum -= steps * e.tuning.DecayInterval

	// neither more steps nor a larger rate than the stat range can change the clamped result
	n := int(min(steps, time.Duration(constants.MaxStat+1)))
	s := e.state
	s.Hunger = types.Clamp(s.Hunger - n*types.Clamp(e.tuning.DecayHunger))
	s.Happiness = types.Clamp(s.Happiness - n*types.Clamp(e.tuning.DecayHappiness))
	s.Energy = types.Clamp(s.Energy - n*types.Clamp(e.tuning.DecayEnergy))
	s.Love = types.Clamp(s.Love - n*types.Clamp(e.tuning.DecayLove))
}

// ApplyAction applies an action and locks input until its animation ends.
// It is a no-op when the pet is dead, the input is locked or energy is short.
func (e *Engine) ApplyAction(kind types.Action) Result {
	s := e.state
	if s.Dead {
		return ResultDead
	}
	if s.InputLocked {
		log.Debug("Ignoring %s: input locked", kind)
		return ResultLocked
	}
	rule, ok := e.tuning.Rules[kind]
	if !ok {
		return ResultUnknownAction
	}
	if s.Energy < rule.Cost {
		e.say(DialogNoEnergy, constants.ShortDialogDuration)
		return ResultNoEnergy
	}

	s.Energy = types.Clamp(s.Energy - rule.Cost)
	e.energyAccum = 0
	s.Hunger = types.Clamp(s.Hunger + rule.Hunger)
	s.Happiness = types.Clamp(s.Happiness + rule.Happiness)
	s.Love = types.Clamp(s.Love + rule.Love)
	s.XP = min(s.XP+rule.XP, constants.MaxXP)
	s.LastActionAt = e.now.UnixMilli()

	s.InputLocked = true
	e.animation = types.SpriteFor(kind)
	e.frame = 0
	e.nextFrameAt = e.now.Add(e.tuning.ActionFrameDuration)

	e.say(dialogKeyForAction(kind), constants.DialogDuration)
	e.grow()

	log.Debug("Applied %s: hunger=%d happiness=%d energy=%d love=%d xp=%d", kind, s.Hunger, s.Happiness, s.Energy, s.Love, s.XP)
	return ResultApplied
}

// ReleaseLock ends the action animation and unlocks input. Idempotent.
func (e *Engine) ReleaseLock() {
	if !e.state.InputLocked && e.animation == types.SpriteIdle {
		return
	}
	e.state.InputLocked = false
	e.animation = types.SpriteIdle
	e.frame = 0
	e.nextFrameAt = e.now.Add(e.tuning.IdleFrameDuration)
}

// DerivePhase returns the phase of the current age.
func (e *Engine) DerivePhase() types.Phase {
	return types.DerivePhase(e.state.Age)
}

// AdvanceAge makes the pet one year older and reports whether the phase changed.
// The age stops at MaxAge.
func (e *Engine) AdvanceAge() bool {
	return e.ageBy(1)
}

func (e *Engine) ageBy(years int) bool {
	years = min(years, constants.MaxAge-e.state.Age)
	if years <= 0 {
		return false
	}
	before := e.DerivePhase()
	e.state.Age += years
	after := e.DerivePhase()
	if before != after {
		log.Info("Pet grew from %s to %s at age %d", before, after, e.state.Age)
		return true
	}
	log.Debug("Pet is now age %d", e.state.Age)
	return false
}

// Reset replaces a dead pet with a fresh one. It does nothing while the pet lives.
func (e *Engine) Reset() bool {
	if !e.state.Dead {
		return false
	}
	*e.state = *types.NewState(e.now)
	e.decayAccum = 0
	e.energyAccum = 0
	e.hungerWarned = false
	e.animation = types.SpriteIdle
	e.frame = 0
	e.nextFrameAt = e.now.Add(e.tuning.IdleFrameDuration)
	e.say(DialogReset, constants.ShortDialogDuration)
	log.Info("Pet reset, new pet %s", e.state.ID)
	return true
}

// Snapshot returns the read-only view for the renderer.
func (e *Engine) Snapshot() types.Snapshot {
	s := e.state
	snapshot := types.Snapshot{
		Hunger:      types.NewStatView(s.Hunger),
		Happiness:   types.NewStatView(s.Happiness),
		Energy:      types.NewStatView(s.Energy),
		Love:        types.NewStatView(s.Love),
		Phase:       s.Phase(),
		Age:         s.Age,
		XP:          s.XP,
		XPNeeded:    types.XPNeeded(s.Age),
		MaxAge:      s.Age >= constants.MaxGrowthAge,
		Sprite:      e.animation,
		Frame:       e.frame,
		InputLocked: s.InputLocked,
		Dead:        s.Dead,
		Message:     e.message,
	}

	switch {
	case s.Dead:
		snapshot.Sprite = types.SpriteDead
		snapshot.Frame = 0
	case e.animation == types.SpriteIdle && s.Energy < constants.NoEnergyThreshold:
		snapshot.Sprite = types.SpriteNoEnergy
	case e.animation == types.SpriteIdle && s.Phase() == types.PhaseTeen && s.Hunger >= constants.MaxStat:
		snapshot.Frame = constants.SecretIdleFrame
	}

	return snapshot
}

func (e *Engine) updateAnimation(now time.Time) bool {
	if now.Before(e.nextFrameAt) {
		return false
	}

	if e.animation == types.SpriteIdle {
		e.frame = 1 - e.frame
		e.nextFrameAt = now.Add(e.tuning.IdleFrameDuration)
		return false
	}

	for !now.Before(e.nextFrameAt) {
		if e.frame >= constants.ActionFrameCount-1 {
			e.ReleaseLock()
			return true
		}
		e.frame++
		e.nextFrameAt = e.nextFrameAt.Add(e.tuning.ActionFrameDuration)
	}
	return false
}

// updateAge catches up on every whole AgeInterval since LastAgedAt in one step.
func (e *Engine) updateAge(now time.Time) int {
	interval := e.tuning.AgeInterval.Milliseconds()
	if interval <= 0 || e.state.Dead {
		return 0
	}

	elapsed := now.UnixMilli() - e.state.LastAgedAt
	if elapsed < interval {
		return 0
	}
	due := elapsed / interval
	e.state.LastAgedAt += due * interval

	before := e.state.Age
	e.ageBy(int(min(due, int64(constants.MaxAge))))
	return e.state.Age - before
}

// grow turns experience into age until the growth cap.
func (e *Engine) grow() {
	s := e.state
	for s.Age < constants.MaxGrowthAge && s.XP >= types.XPNeeded(s.Age) {
		s.XP -= types.XPNeeded(s.Age)
		e.AdvanceAge()
	}
}

func (e *Engine) checkHunger() {
	if e.state.Dead {
		return
	}
	if e.state.Hunger > 0 {
		e.hungerWarned = false
		return
	}
	if !e.hungerWarned {
		e.say(DialogHungry, constants.LongDialogDuration)
		e.hungerWarned = true
	}
}

// checkDeath kills the pet when it is starving and either unloved or bored.
func (e *Engine) checkDeath() bool {
	s := e.state
	if s.Dead || s.Hunger > 0 {
		return false
	}
	loveRed := types.BandFor(s.Love) == types.BandRed
	happyRed := types.BandFor(s.Happiness) == types.BandRed
	if !loveRed && !happyRed {
		return false
	}

	s.Dead = true
	s.InputLocked = false
	e.animation = types.SpriteIdle
	e.frame = 0
	e.nextFrameAt = e.now.Add(e.tuning.IdleFrameDuration)
	if loveRed {
		e.say(DialogDeadLove, constants.LongDialogDuration)
	} else {
		e.say(DialogDeadPlay, constants.LongDialogDuration)
	}
	log.Info("Pet %s died at age %d", s.ID, s.Age)
	return true
}

// regenerateEnergy refills energy while the pet idles.
// A well kept pet refills in 7.5 minutes, a starving one in an hour.
func (e *Engine) regenerateEnergy(elapsed time.Duration) {
	s := e.state
	if s.Dead || s.InputLocked || e.animation != types.SpriteIdle || elapsed <= 0 {
		return
	}
	if s.Energy >= constants.MaxStat {
		e.energyAccum = 0
		return
	}

	ratePerMs := 100.0 / (e.energyFillMinutes() * 60_000.0)
	e.energyAccum += ratePerMs * float64(elapsed.Milliseconds())
	if e.energyAccum < 1 {
		return
	}
	whole := int(e.energyAccum)
	e.energyAccum -= float64(whole)
	s.Energy = types.Clamp(s.Energy + whole)
}

func (e *Engine) energyFillMinutes() float64 {
	s := e.state
	if s.Hunger <= 0 {
		return constants.EnergyFillMinutesStarving
	}
	if types.BandFor(s.Hunger) == types.BandRed {
		return constants.EnergyFillMinutesHungry
	}

	green, blue := 0, 0
	for _, v := range []int{s.Hunger, s.Happiness, s.Love} {
		switch types.BandFor(v) {
		case types.BandGreen:
			green++
		case types.BandBlue:
			blue++
		}
	}
	switch {
	case green == 3:
		return constants.EnergyFillMinutesAllGreen
	case blue == 1:
		return constants.EnergyFillMinutesOneBlue
	default:
		return constants.EnergyFillMinutesDefault
	}
}

func (e *Engine) say(key DialogKey, d time.Duration) {
	line := e.dialog.Line(e.state.Phase(), key)
	if line == "" {
		return
	}
	e.message = line
	e.messageUntil = e.now.Add(d)
}
