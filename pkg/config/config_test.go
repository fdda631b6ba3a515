package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/pocketpet/pkg/pet"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_matchesEngineDefaults(t *testing.T) {
	assert.Equal(t, pet.DefaultTuning(), Default().Tuning())
	assert.NoError(t, Default().Validate())
}

func TestLoad_missingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_exampleFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "pocketpet.example.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty document keeps defaults",
			data: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "partial timing",
			data: "[timing]\ndecay = \"2s\"\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Duration(2*time.Second), cfg.Timing.Decay)
				assert.Equal(t, Default().Timing.Autosave, cfg.Timing.Autosave)
			},
		},
		{
			name: "one action overridden",
			data: "[actions.feed]\ncost = 0\nhunger = 50\nxp = 1\n",
			check: func(t *testing.T, cfg *Config) {
				rules := cfg.Tuning().Rules
				assert.Equal(t, pet.Rule{Cost: 0, Hunger: 50, XP: 1}, rules[types.ActionFeed])
				assert.Equal(t, pet.DefaultRules()[types.ActionPlay], rules[types.ActionPlay])
			},
		},
		{
			name: "storage and log level",
			data: "logLevel = \"debug\"\nstorage = \"sqlite://pet.db\"\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "sqlite://pet.db", cfg.Storage)
			},
		},
		{name: "not toml", data: "decay = ", wantErr: true},
		{name: "unknown key", data: "speed = 3\n", wantErr: true},
		{name: "bad duration", data: "[timing]\ndecay = \"soon\"\n", wantErr: true},
		{name: "zero duration", data: "[timing]\nautosave = \"0s\"\n", wantErr: true},
		{name: "negative decay", data: "[decay]\nhunger = -1\n", wantErr: true},
		{name: "decay above max stat", data: "[decay]\nhunger = 101\n", wantErr: true},
		{name: "huge decay", data: "[decay]\nlove = 9223372036854775807\n", wantErr: true},
		{name: "decay at max stat", data: "[decay]\nenergy = 100\n", check: func(t *testing.T, cfg *Config) { assert.Equal(t, 100, cfg.Decay.Energy) }},
		{name: "huge action xp", data: "[actions.feed]\nxp = 9223372036854775807\n", wantErr: true},
		{name: "unknown action", data: "[actions.bathe]\ncost = 1\n", wantErr: true},
		{name: "trigger that is not an action", data: "[actions.power]\ncost = 1\n", wantErr: true},
		{name: "bad log level", data: "logLevel = \"loud\"\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestEncode_roundTrip(t *testing.T) {
	cfg := Default()
	cfg.Timing.Decay = Duration(3 * time.Second)
	cfg.Decay.Love = 2

	data, err := cfg.Encode()
	require.NoError(t, err)
	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_unreadable(t *testing.T) {
	dir := t.TempDir()
	// a directory cannot be read as a file
	_, err := Load(dir)
	assert.Error(t, err)
	_, statErr := os.Stat(dir)
	require.NoError(t, statErr)
}
