package repositories

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/pocketpet/pkg/pet/constants"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() *types.State {
	s := types.NewState(time.UnixMilli(1_700_000_000_000))
	s.Hunger = 42
	s.Happiness = 17
	s.Energy = 88
	s.Love = 3
	s.Age = 11
	s.XP = 77
	s.LastActionAt = 1_700_000_100_000
	s.LastSavedAt = 1_700_000_200_000
	return s
}

func TestFileRepository_roundTrip(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *types.State)
	}{
		{name: "typical", mutate: func(s *types.State) {}},
		{name: "stats at zero", mutate: func(s *types.State) {
			s.Hunger, s.Happiness, s.Energy, s.Love = 0, 0, 0, 0
		}},
		{name: "stats at max", mutate: func(s *types.State) {
			s.Hunger, s.Happiness, s.Energy, s.Love = 100, 100, 100, 100
		}},
		{name: "dead", mutate: func(s *types.State) {
			s.Hunger, s.Happiness = 0, 0
			s.Dead = true
		}},
		{name: "last growth age", mutate: func(s *types.State) { s.Age = constants.MaxGrowthAge }},
		{name: "aged past growth", mutate: func(s *types.State) { s.Age = constants.MaxGrowthAge + 1 }},
		{name: "max age and xp", mutate: func(s *types.State) { s.Age, s.XP = constants.MaxAge, constants.MaxXP }},
		{name: "zero timestamps", mutate: func(s *types.State) {
			s.BornAt, s.LastActionAt, s.LastSavedAt, s.LastAgedAt = 0, 0, 0, 0
		}},
		{name: "large timestamps", mutate: func(s *types.State) {
			s.BornAt = constants.MaxTimestamp - 1
			s.LastActionAt, s.LastSavedAt, s.LastAgedAt = constants.MaxTimestamp, constants.MaxTimestamp, constants.MaxTimestamp
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := NewFileRepository(filepath.Join(t.TempDir(), "pet", "save.json"))
			state := testState()
			tt.mutate(state)
			require.NoError(t, state.Validate())

			require.NoError(t, repo.Save(ctx, state))
			got, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, state, got)
		})
	}
}

func TestFileRepository_roundTripRandom(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "save.json"))
	r := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 200; i++ {
		state := testState()
		state.Hunger = r.IntN(constants.MaxStat + 1)
		state.Happiness = r.IntN(constants.MaxStat + 1)
		state.Energy = r.IntN(constants.MaxStat + 1)
		state.Love = r.IntN(constants.MaxStat + 1)
		state.Age = constants.StartingAge + r.IntN(constants.MaxAge)
		state.XP = r.IntN(constants.MaxXP + 1)
		state.Dead = r.IntN(2) == 0
		state.BornAt = r.Int64N(constants.MaxTimestamp + 1)
		state.LastAgedAt = state.BornAt + r.Int64N(constants.MaxTimestamp-state.BornAt+1)
		state.LastActionAt = r.Int64N(constants.MaxTimestamp + 1)
		state.LastSavedAt = r.Int64N(constants.MaxTimestamp + 1)
		require.NoError(t, state.Validate(), "state %d", i)

		require.NoError(t, repo.Save(ctx, state), "state %d", i)
		got, err := repo.Load(ctx)
		require.NoError(t, err, "state %d", i)
		assert.Equal(t, state, got, "state %d", i)
	}
}

func TestFileRepository_roundTripDropsInputLock(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "save.json"))
	state := testState()
	state.InputLocked = true

	require.NoError(t, repo.Save(ctx, state))
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, got.InputLocked)
	assert.True(t, state.Equal(got))
}

func TestFileRepository_Load_missing(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "save.json"))
	_, err := repo.Load(context.Background())
	assert.True(t, IsNotFound(err))
}

func TestFileRepository_Load_corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"hunger":`), 0644))

	_, err := NewFileRepository(path).Load(context.Background())
	assert.True(t, IsCorrupt(err))
}

func TestFileRepository_Save_overwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "save.json"))
	first := testState()
	require.NoError(t, repo.Save(ctx, first))

	second := first.Copy()
	second.Hunger = 99
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 99, got.Hunger)

	entries, err := os.ReadDir(filepath.Dir(repo.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileRepository_Save_crashBeforeRename(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepository(filepath.Join(t.TempDir(), "save.json"))
	previous := testState()
	require.NoError(t, repo.Save(ctx, previous))
	before, err := os.ReadFile(repo.Path())
	require.NoError(t, err)

	t.Run("error", func(t *testing.T) {
		testHookBeforeRename = func(string) error { return errors.New("power lost") }
		defer func() { testHookBeforeRename = nil }()

		next := previous.Copy()
		next.Hunger = 1
		assert.Error(t, repo.Save(ctx, next))
	})

	t.Run("panic", func(t *testing.T) {
		var tempPath string
		testHookBeforeRename = func(p string) error {
			tempPath = p
			panic("simulated crash")
		}
		defer func() { testHookBeforeRename = nil }()

		next := previous.Copy()
		next.Hunger = 2
		assert.Panics(t, func() { _ = repo.Save(ctx, next) })
		assert.NotEmpty(t, tempPath)
	})

	after, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, previous, got)
}

func TestFileRepository_Save_renameFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "save.json")
	// a directory in place of the save file makes the rename fail
	require.NoError(t, os.Mkdir(path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0644))

	err := NewFileRepository(path).Save(context.Background(), testState())
	require.Error(t, err)

	var renameErr RenameError
	require.ErrorAs(t, err, &renameErr)
	_, statErr := os.Stat(renameErr.TempPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileRepository_Save_unwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0644))

	err := NewFileRepository(filepath.Join(blocker, "save.json")).Save(context.Background(), testState())
	assert.Error(t, err)
}
