package queue

import (
	"testing"
	"time"

	"github.com/cbodonnell/sokoreplay/pkg/game/actions"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryQueue(t *testing.T) {
	q := NewInMemoryQueue(4)
	q.Enqueue(actions.Move{PlayerID: 0, Direction: actions.DirectionUp})
	q.Enqueue(actions.Undo{PlayerID: 0})
	q.Enqueue(actions.Exit{PlayerID: 0})

	assert.Equal(t, 3, q.Size())
	assert.Equal(t, actions.Move{PlayerID: 0, Direction: actions.DirectionUp}, q.Dequeue())
	assert.Equal(t, []actions.Action{actions.Undo{PlayerID: 0}, actions.Exit{PlayerID: 0}}, q.ReadAllMessages())
	assert.Empty(t, q.ReadAllMessages())

	q.Enqueue(actions.Exit{PlayerID: 1})
	q.ClearQueue()
	assert.Zero(t, q.Size())
}

func TestInMemoryQueue_DequeueBlocks(t *testing.T) {
	q := NewInMemoryQueue(0)

	got := make(chan actions.Action)
	go func() {
		got <- q.Dequeue()
	}()

	select {
	case <-got:
		t.Fatal("Dequeue returned from an empty queue")
	case <-time.After(20 * time.Millisecond):
	}

	q.Enqueue(actions.Exit{PlayerID: 2})
	select {
	case a := <-got:
		assert.Equal(t, actions.Exit{PlayerID: 2}, a)
	case <-time.After(time.Second):
		t.Fatal("Dequeue was not woken by Enqueue")
	}
}
