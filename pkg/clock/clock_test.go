package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	c := NewManual(start)
	assert.Equal(t, start, c.Now())

	got := c.Advance(1500 * time.Millisecond)
	assert.Equal(t, start.Add(1500*time.Millisecond), got)
	assert.Equal(t, got, c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestReal(t *testing.T) {
	before := time.Now()
	got := NewReal().Now()
	assert.False(t, got.Before(before))
}
