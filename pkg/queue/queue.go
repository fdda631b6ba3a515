// queue package

package queue

import (
	"errors"

	"github.com/cbodonnell/pocketpet/pkg/pet/types"
)

// ErrQueueFull is returned by Enqueue when the buffer is full.
var ErrQueueFull = errors.New("queue is full")

// Queue carries input triggers from input sources to the game loop.
type Queue interface {
	Enqueue(trigger types.Trigger) error
	Dequeue() (types.Trigger, bool)
	Size() int
	ReadAllTriggers() []types.Trigger
	ClearQueue()
}
