package game

import (
	"context"
	"sync"
	"time"

	"github.com/cbodonnell/pocketpet/pkg/clock"
	"github.com/cbodonnell/pocketpet/pkg/config"
	"github.com/cbodonnell/pocketpet/pkg/log"
	"github.com/cbodonnell/pocketpet/pkg/persistence"
	"github.com/cbodonnell/pocketpet/pkg/pet"
	"github.com/cbodonnell/pocketpet/pkg/pet/constants"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/cbodonnell/pocketpet/pkg/queue"
)

// Shutdowner powers the device off. It is only invoked after the final save.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// ConfigSource delivers configuration edits to the loop without blocking.
type ConfigSource interface {
	Poll() (*config.Config, bool)
}

// GameManager owns the pet and runs every mutation on one goroutine:
// input sources only enqueue triggers and the loop drains them.
type GameManager struct {
	engine       *pet.Engine
	persistence  *persistence.Manager
	inputQueue   queue.Queue
	clock        clock.Clock
	shutdowner   Shutdowner
	configSource ConfigSource
	loopInterval time.Duration

	finalizeOnce sync.Once
	finalizeErr  error
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Engine      *pet.Engine
	Persistence *persistence.Manager
	InputQueue  queue.Queue
	Clock       clock.Clock
	// Shutdowner is optional. Without it the power trigger only saves and stops.
	Shutdowner Shutdowner
	// ConfigSource is optional.
	ConfigSource     ConfigSource
	GameLoopInterval time.Duration
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	c := opts.Clock
	if c == nil {
		c = clock.NewReal()
	}
	interval := opts.GameLoopInterval
	if interval <= 0 {
		interval = constants.LoopInterval
	}
	return &GameManager{
		engine:       opts.Engine,
		persistence:  opts.Persistence,
		inputQueue:   opts.InputQueue,
		clock:        c,
		shutdowner:   opts.Shutdowner,
		configSource: opts.ConfigSource,
		loopInterval: interval,
	}
}

// Snapshot returns the render snapshot of the pet.
func (gm *GameManager) Snapshot() types.Snapshot {
	return gm.engine.Snapshot()
}

// Start runs the loop on a ticker until the context is cancelled or a
// quit or power trigger arrives. The final save has happened when it returns.
func (gm *GameManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(gm.loopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return gm.Finalize(ctx)
		case <-ticker.C:
			if gm.Step(ctx, gm.clock.Now()) {
				return gm.finalizeErr
			}
		}
	}
}

// Step runs one loop iteration at now and reports whether the loop should stop.
// Every stop path has finalized before Step returns true.
func (gm *GameManager) Step(ctx context.Context, now time.Time) bool {
	if ctx.Err() != nil {
		gm.Finalize(ctx)
		return true
	}

	events := gm.engine.Update(now)
	if events.Died {
		gm.save(ctx)
	}

	for _, trigger := range gm.inputQueue.ReadAllTriggers() {
		if gm.handleTrigger(ctx, trigger) {
			return true
		}
	}

	if _, err := gm.persistence.MaybeAutosave(ctx, gm.engine.State()); err != nil {
		log.Warn("Autosave failed, retrying in %s", gm.persistence.Interval())
	}

	gm.pollConfig()
	return false
}

// handleTrigger applies one trigger and reports whether the loop should stop.
func (gm *GameManager) handleTrigger(ctx context.Context, trigger types.Trigger) bool {
	log.Trace("Handling trigger %s", trigger)

	if action, ok := trigger.Action(); ok {
		result := gm.engine.ApplyAction(action)
		if result == pet.ResultApplied {
			gm.save(ctx)
		} else {
			log.Debug("Action %s not applied: %s", action, result)
		}
		return false
	}

	switch trigger {
	case types.TriggerReset:
		if gm.engine.Reset() {
			gm.save(ctx)
		}
		return false
	case types.TriggerPower:
		gm.powerOff(ctx)
		return true
	case types.TriggerQuit:
		log.Info("Quit requested")
		gm.Finalize(ctx)
		return true
	default:
		log.Error("Unhandled trigger: %s", trigger)
		return false
	}
}

// powerOff saves the pet and only then hands over to the shutdowner.
func (gm *GameManager) powerOff(ctx context.Context) {
	log.Info("Power off requested")
	if err := gm.Finalize(ctx); err != nil {
		log.Error("Final save failed before power off: %v", err)
	}
	if gm.shutdowner == nil {
		log.Warn("No shutdowner configured, stopping without powering off")
		return
	}
	if err := gm.shutdowner.Shutdown(context.WithoutCancel(ctx)); err != nil {
		log.Error("Failed to power off: %v", err)
	}
}

// Finalize performs the final save. It runs at most once; later calls
// return the result of the first. A cancelled context does not stop the save.
func (gm *GameManager) Finalize(ctx context.Context) error {
	gm.finalizeOnce.Do(func() {
		gm.finalizeErr = gm.persistence.Save(context.WithoutCancel(ctx), gm.engine.State())
		if gm.finalizeErr == nil {
			log.Info("Final save complete for pet %s", gm.engine.State().ID)
		}
	})
	return gm.finalizeErr
}

func (gm *GameManager) save(ctx context.Context) {
	// failures are logged by the persistence manager and retried by autosave
	_ = gm.persistence.Save(ctx, gm.engine.State())
}

func (gm *GameManager) pollConfig() {
	if gm.configSource == nil {
		return
	}
	cfg, ok := gm.configSource.Poll()
	if !ok {
		return
	}
	gm.engine.SetTuning(cfg.Tuning())
	gm.persistence.SetInterval(time.Duration(cfg.Timing.Autosave))
	if level, err := log.ParseLogLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	log.Debug("Applied new tuning")
}
