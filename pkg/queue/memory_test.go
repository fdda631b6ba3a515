package queue

import (
	"sync"
	"testing"

	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryQueue_order(t *testing.T) {
	q := NewInMemoryQueue()
	in := []types.Trigger{types.TriggerFeed, types.TriggerPlay, types.TriggerPower}
	for _, trigger := range in {
		assert.NoError(t, q.Enqueue(trigger))
	}
	assert.Equal(t, 3, q.Size())
	assert.Equal(t, in, q.ReadAllTriggers())
	assert.Equal(t, 0, q.Size())
	assert.Nil(t, q.ReadAllTriggers())
}

func TestInMemoryQueue_Dequeue(t *testing.T) {
	q := NewInMemoryQueue()
	_, ok := q.Dequeue()
	assert.False(t, ok)

	assert.NoError(t, q.Enqueue(types.TriggerCuddle))
	trigger, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, types.TriggerCuddle, trigger)
}

func TestInMemoryQueue_full(t *testing.T) {
	q := NewInMemoryQueueWithSize(2)
	assert.NoError(t, q.Enqueue(types.TriggerFeed))
	assert.NoError(t, q.Enqueue(types.TriggerFeed))
	assert.ErrorIs(t, q.Enqueue(types.TriggerPlay), ErrQueueFull)
	assert.Equal(t, 2, q.Size())

	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
	assert.NoError(t, q.Enqueue(types.TriggerPlay))
}

func TestInMemoryQueue_concurrentProducers(t *testing.T) {
	q := NewInMemoryQueueWithSize(100)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				assert.NoError(t, q.Enqueue(types.TriggerFeed))
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.ReadAllTriggers(), 100)
}
