package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/pocketpet/pkg/pet/constants"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
)

// saveFile is the on-disk shape of the pet. Phase is written for people
// reading the file and checked against the age on load.
type saveFile struct {
	Version      int    `json:"version"`
	ID           string `json:"id"`
	Hunger       int    `json:"hunger"`
	Happiness    int    `json:"happiness"`
	Energy       int    `json:"energy"`
	Love         int    `json:"love"`
	Age          int    `json:"age"`
	Phase        string `json:"phase"`
	XP           int    `json:"xp"`
	Dead         bool   `json:"dead"`
	BornAt       int64  `json:"bornAt"`
	LastActionAt int64  `json:"lastActionAt"`
	LastSavedAt  int64  `json:"lastSavedAt"`
	LastAgedAt   int64  `json:"lastAgedAt"`
}

// EncodeState serializes a state into the save file format.
func EncodeState(state *types.State) ([]byte, error) {
	f := saveFile{
		Version:      constants.SaveFileVersion,
		ID:           state.ID,
		Hunger:       state.Hunger,
		Happiness:    state.Happiness,
		Energy:       state.Energy,
		Love:         state.Love,
		Age:          state.Age,
		Phase:        state.Phase().String(),
		XP:           state.XP,
		Dead:         state.Dead,
		BornAt:       state.BornAt,
		LastActionAt: state.LastActionAt,
		LastSavedAt:  state.LastSavedAt,
		LastAgedAt:   state.LastAgedAt,
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal save file: %w", err)
	}
	return append(b, '\n'), nil
}

// DecodeState parses and validates a save file.
// Every failure is an *ErrCorrupt.
func DecodeState(data []byte) (*types.State, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	f := &saveFile{}
	if err := decoder.Decode(f); err != nil {
		return nil, &ErrCorrupt{Err: fmt.Errorf("failed to unmarshal save file: %w", err)}
	}
	if decoder.More() {
		return nil, &ErrCorrupt{Err: fmt.Errorf("trailing data after save file")}
	}
	if f.Version != constants.SaveFileVersion {
		return nil, &ErrCorrupt{Err: fmt.Errorf("unsupported save file version %d", f.Version)}
	}
	if f.Phase != "" {
		phase, err := types.ParsePhase(f.Phase)
		if err != nil {
			return nil, &ErrCorrupt{Err: err}
		}
		if phase != types.DerivePhase(f.Age) {
			return nil, &ErrCorrupt{Err: fmt.Errorf("phase %s contradicts age %d", phase, f.Age)}
		}
	}

	state := &types.State{
		ID:           f.ID,
		Hunger:       f.Hunger,
		Happiness:    f.Happiness,
		Energy:       f.Energy,
		Love:         f.Love,
		Age:          f.Age,
		XP:           f.XP,
		Dead:         f.Dead,
		BornAt:       f.BornAt,
		LastActionAt: f.LastActionAt,
		LastSavedAt:  f.LastSavedAt,
		LastAgedAt:   f.LastAgedAt,
	}
	if err := state.Validate(); err != nil {
		return nil, &ErrCorrupt{Err: err}
	}
	return state, nil
}
