package persistence

import (
	"context"
	"time"

	"github.com/cbodonnell/pocketpet/pkg/clock"
	"github.com/cbodonnell/pocketpet/pkg/log"
	"github.com/cbodonnell/pocketpet/pkg/pet/constants"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/cbodonnell/pocketpet/pkg/repositories"
)

// Manager decides when the pet is written and turns storage failures
// into logged, typed errors. It is used from the game loop goroutine only.
type Manager struct {
	repository repositories.Repository
	clock      clock.Clock
	interval   time.Duration
	// lastSave is the time of the last save attempt
	lastSave time.Time
}

type NewManagerOptions struct {
	Repository repositories.Repository
	Clock      clock.Clock
	// AutosaveInterval defaults to constants.AutosaveInterval
	AutosaveInterval time.Duration
}

func NewManager(opts NewManagerOptions) *Manager {
	c := opts.Clock
	if c == nil {
		c = clock.NewReal()
	}
	interval := opts.AutosaveInterval
	if interval <= 0 {
		interval = constants.AutosaveInterval
	}
	return &Manager{
		repository: opts.Repository,
		clock:      c,
		interval:   interval,
		lastSave:   c.Now(),
	}
}

// Load returns the stored pet, or a new pet when nothing usable is stored.
// It never fails: a missing save is expected on first boot and a corrupt
// one is logged and replaced by defaults.
func (m *Manager) Load(ctx context.Context) *types.State {
	now := m.clock.Now()
	m.lastSave = now

	state, err := m.repository.Load(ctx)
	if err == nil {
		log.Info("Loaded pet %s at age %d", state.ID, state.Age)
		return state
	}

	switch {
	case repositories.IsNotFound(err):
		log.Info("No saved pet found, hatching a new one")
	case repositories.IsCorrupt(err):
		log.Warn("%v, hatching a new one", &LoadParseError{Err: err})
	default:
		log.Error("Failed to load pet, hatching a new one: %v", err)
	}
	return types.NewState(now)
}

// Save stamps LastSavedAt and writes the state. The state is only stamped
// when the write succeeds.
func (m *Manager) Save(ctx context.Context, state *types.State) error {
	now := m.clock.Now()
	m.lastSave = now

	stamped := state.Copy()
	stamped.LastSavedAt = now.UnixMilli()
	if err := m.repository.Save(ctx, stamped); err != nil {
		saveErr := &SaveIOError{Err: err}
		log.Error("%v", saveErr)
		return saveErr
	}
	state.LastSavedAt = stamped.LastSavedAt
	log.Trace("Saved pet %s", state.ID)
	return nil
}

// AutosaveDue reports whether the autosave interval has passed since the last save.
func (m *Manager) AutosaveDue(now time.Time) bool {
	return now.Sub(m.lastSave) >= m.interval
}

// MaybeAutosave saves the state when the autosave interval has passed.
// A failed autosave is retried at the next interval.
func (m *Manager) MaybeAutosave(ctx context.Context, state *types.State) (bool, error) {
	if !m.AutosaveDue(m.clock.Now()) {
		return false, nil
	}
	log.Debug("Autosaving pet %s", state.ID)
	return true, m.Save(ctx, state)
}

// Interval returns the autosave interval.
func (m *Manager) Interval() time.Duration {
	return m.interval
}

// SetInterval changes the autosave interval. Non-positive values are ignored.
func (m *Manager) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	m.interval = d
}

// Close closes the underlying repository.
func (m *Manager) Close(ctx context.Context) error {
	return m.repository.Close(ctx)
}
