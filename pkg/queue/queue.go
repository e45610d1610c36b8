package queue

import "github.com/cbodonnell/sokoreplay/pkg/game/actions"

// Queue is a FIFO of actions between a producer and the actor consuming them.
// Implementations must be thread-safe.
type Queue interface {
	// Enqueue adds an action, blocking while the queue is full.
	Enqueue(item actions.Action)
	// Dequeue removes the oldest action, blocking while the queue is empty.
	Dequeue() actions.Action
	Size() int
	// ReadAllMessages removes and returns every pending action without blocking.
	ReadAllMessages() []actions.Action
	ClearQueue()
}
