package replay

import (
	"context"
	"sync"
	"sync/atomic"
)

// exitRegistry tracks which actors have consumed their exit action.
// A flag never goes back to false once set.
type exitRegistry struct {
	exited    []atomic.Bool
	remaining atomic.Int32
}

func newExitRegistry(n int) *exitRegistry {
	r := &exitRegistry{
		exited: make([]atomic.Bool, n),
	}
	r.remaining.Store(int32(n))
	return r
}

// markExited sets the flag for index and reports whether it was the first time.
func (r *exitRegistry) markExited(index int) bool {
	if r.exited[index].CompareAndSwap(false, true) {
		r.remaining.Add(-1)
		return true
	}
	return false
}

func (r *exitRegistry) hasExited(index int) bool {
	return r.exited[index].Load()
}

func (r *exitRegistry) allExited() bool {
	return r.remaining.Load() == 0
}

func (r *exitRegistry) size() int {
	return len(r.exited)
}

// turnCursor names the actor allowed to act under round-robin.
type turnCursor struct {
	mu       sync.Mutex
	cond     *sync.Cond
	current  int
	finished bool
}

func newTurnCursor() *turnCursor {
	c := &turnCursor{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// release wakes every waiter when ctx is done so they can observe it.
// The returned function detaches the hook.
func (c *turnCursor) release(ctx context.Context) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.cond.Broadcast()
	})
}

// await blocks until it is index's turn. It returns false if the cursor has
// finished or ctx is done before that happens.
func (c *turnCursor) await(ctx context.Context, index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.current != index && !c.finished && ctx.Err() == nil {
		c.cond.Wait()
	}
	return c.current == index && !c.finished && ctx.Err() == nil
}

// advance hands the turn to the next actor after the current one that has
// not exited, wrapping around to the current actor itself. If every actor
// has exited the cursor is finished. All waiters are woken either way.
func (c *turnCursor) advance(exits *exitRegistry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.cond.Broadcast()

	n := exits.size()
	for step := 1; step <= n; step++ {
		next := (c.current + step) % n
		if !exits.hasExited(next) {
			c.current = next
			return
		}
	}
	c.finished = true
}

func (c *turnCursor) turn() (current int, finished bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.finished
}
