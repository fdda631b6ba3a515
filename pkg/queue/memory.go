package queue

import (
	"sync"

	"github.com/cbodonnell/pocketpet/pkg/pet/types"
)

const (
	// QueueBufferSize represents the maximum size of a queue
	QueueBufferSize = 64
)

// InMemoryQueue implements an in-memory queue.
// Enqueue never blocks so input sources cannot stall on a busy loop.
type InMemoryQueue struct {
	ch   chan types.Trigger
	lock sync.RWMutex
}

// NewInMemoryQueue creates a new queue.
func NewInMemoryQueue() *InMemoryQueue {
	return NewInMemoryQueueWithSize(QueueBufferSize)
}

// NewInMemoryQueueWithSize creates a queue holding at most size triggers.
func NewInMemoryQueueWithSize(size int) *InMemoryQueue {
	return &InMemoryQueue{
		ch: make(chan types.Trigger, size),
	}
}

// Enqueue adds a trigger to the end of the queue, or returns ErrQueueFull.
func (q *InMemoryQueue) Enqueue(trigger types.Trigger) error {
	q.lock.Lock()
	defer q.lock.Unlock()
	select {
	case q.ch <- trigger:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue removes and returns the trigger at the front of the queue.
func (q *InMemoryQueue) Dequeue() (types.Trigger, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()
	select {
	case trigger := <-q.ch:
		return trigger, true
	default:
		return 0, false
	}
}

// Size returns the current size of the queue.
func (q *InMemoryQueue) Size() int {
	q.lock.RLock()
	defer q.lock.RUnlock()
	return len(q.ch)
}

// ReadAllTriggers reads all pending triggers in arrival order
func (q *InMemoryQueue) ReadAllTriggers() []types.Trigger {
	q.lock.Lock()
	defer q.lock.Unlock()

	var triggers []types.Trigger
	for len(q.ch) > 0 {
		triggers = append(triggers, <-q.ch)
	}

	return triggers
}

// ClearQueue clears all triggers from the queue.
func (q *InMemoryQueue) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}
