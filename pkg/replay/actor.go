package replay

import (
	"context"

	"github.com/cbodonnell/sokoreplay/pkg/game/actions"
	"github.com/cbodonnell/sokoreplay/pkg/log"
)

// runActor consumes the actions of one source until its exit action has
// been applied or ctx is done.
func (r *run) runActor(ctx context.Context, index int, source ActionSource) {
	switch r.game.mode {
	case ModeRoundRobin:
		r.runRoundRobin(ctx, index, source)
	default:
		r.runFreeRace(ctx, index, source)
	}
	log.Debug("Game %s: actor %d stopped", r.game.id, index)
}

func (r *run) runFreeRace(ctx context.Context, index int, source ActionSource) {
	for ctx.Err() == nil {
		r.lock.Lock()
		if ctx.Err() != nil {
			r.lock.Unlock()
			return
		}
		exited := r.step(index, source)
		r.lock.Unlock()
		if exited {
			return
		}
	}
}

func (r *run) runRoundRobin(ctx context.Context, index int, source ActionSource) {
	for {
		if !r.turn.await(ctx, index) {
			return
		}
		exited := r.step(index, source)
		r.turn.advance(r.exits)
		if exited {
			return
		}
	}
}

// step fetches one action and applies it. The caller must hold the right to
// act (the free-race lock or the turn). It reports whether the action was
// the actor's exit.
func (r *run) step(index int, source ActionSource) bool {
	action := source.FetchAction()
	exited := actions.IsExit(action)
	if exited {
		r.exits.markExited(index)
	}

	err := r.game.state.Apply(action)
	stats := &r.actors[index]
	stats.Applied++
	if err != nil {
		stats.Failed++
		reason := actions.ReasonOf(err)
		log.Debug("Game %s: actor %d failed to apply %v: %s", r.game.id, index, action, reason)
		r.game.renderer.Message(reason)
	} else {
		log.Trace("Game %s: actor %d applied %v", r.game.id, index, action)
	}
	return exited
}
