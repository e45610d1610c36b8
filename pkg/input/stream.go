package input

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/cbodonnell/sokoreplay/pkg/game/actions"
	"github.com/cbodonnell/sokoreplay/pkg/queue"
)

// QueueSource fetches actions from a queue filled by another goroutine,
// typically ReadLines reading a terminal.
type QueueSource struct {
	queue queue.Queue
}

func NewQueueSource(q queue.Queue) *QueueSource {
	return &QueueSource{queue: q}
}

// FetchAction blocks until an action is queued.
func (s *QueueSource) FetchAction() actions.Action {
	return s.queue.Dequeue()
}

// ReadLines parses actions from r line by line and enqueues them. It stops
// after enqueueing an exit action; if r ends first or ctx is done, an exit
// action is enqueued so the consuming actor terminates.
func ReadLines(ctx context.Context, r io.Reader, q queue.Queue, playerID int) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		if skipLine(scanner.Text()) {
			continue
		}
		action := ParseAction(scanner.Text(), playerID)
		q.Enqueue(action)
		if actions.IsExit(action) {
			return nil
		}
	}
	q.Enqueue(actions.Exit{PlayerID: playerID})
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %v", err)
	}
	return nil
}
