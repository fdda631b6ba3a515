package pet

import (
	"math/rand/v2"
	"testing"

	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/stretchr/testify/assert"
)

func TestDialog_Line(t *testing.T) {
	d := NewDialog(rand.New(rand.NewPCG(7, 7)))
	for _, phase := range []types.Phase{types.PhaseBaby, types.PhaseKid, types.PhaseTeen, types.PhaseAdult} {
		for key := DialogFeed; key <= DialogReset; key++ {
			line := d.Line(phase, key)
			assert.Contains(t, dialogLines[phase][key], line, "phase %s key %d", phase, key)
		}
	}
	assert.Empty(t, d.Line(types.Phase(99), DialogFeed))
}

func TestDialog_deterministicWithSeed(t *testing.T) {
	a := NewDialog(rand.New(rand.NewPCG(3, 4)))
	b := NewDialog(rand.New(rand.NewPCG(3, 4)))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Line(types.PhaseKid, DialogPlay), b.Line(types.PhaseKid, DialogPlay))
	}
}
