package replay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/sokoreplay/pkg/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultFrameRate is the rendering frame rate used when none is given.
const DefaultFrameRate = 60

// Game replays the actions of several actors against one game state while
// a render loop periodically displays it. Games do not share any
// coordination state, so independent games can run in parallel.
type Game struct {
	id        string
	mode      Mode
	frameRate int
	state     GameState
	sources   []ActionSource
	renderer  Renderer
}

// NewGameOptions contains options for creating a new Game.
type NewGameOptions struct {
	// Mode selects the scheduling discipline. Defaults to ModeFreeRace.
	Mode Mode
	// FrameRate is the rendering rate in frames per second. Defaults to DefaultFrameRate.
	FrameRate int
	// GameState is mutated by the actors.
	GameState GameState
	// ActionSources holds one source per actor, indexed by actor.
	ActionSources []ActionSource
	// Renderer displays the game.
	Renderer Renderer
}

// NewGame validates the options and creates a Game.
// Every returned error wraps ErrInvalidConfig.
func NewGame(opts NewGameOptions) (*Game, error) {
	if len(opts.ActionSources) == 0 {
		return nil, invalidConfig(ErrNoActionSources)
	}
	for i, source := range opts.ActionSources {
		if source == nil {
			return nil, invalidConfig(fmt.Errorf("action source %d is nil", i))
		}
	}
	if opts.GameState == nil {
		return nil, invalidConfig(errors.New("game state is nil"))
	}
	if opts.Renderer == nil {
		return nil, invalidConfig(errors.New("renderer is nil"))
	}
	if opts.Mode != ModeFreeRace && opts.Mode != ModeRoundRobin {
		return nil, invalidConfig(fmt.Errorf("unknown mode %d", opts.Mode))
	}

	frameRate := opts.FrameRate
	if frameRate < 0 {
		return nil, invalidConfig(fmt.Errorf("frame rate must be positive, got %d", frameRate))
	}
	if frameRate == 0 {
		frameRate = DefaultFrameRate
	}

	sources := make([]ActionSource, len(opts.ActionSources))
	copy(sources, opts.ActionSources)

	return &Game{
		id:        uuid.NewString(),
		mode:      opts.Mode,
		frameRate: frameRate,
		state:     opts.GameState,
		sources:   sources,
		renderer:  opts.Renderer,
	}, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) FrameRate() int {
	return g.frameRate
}

// frameInterval is the time between two periodic renders.
func (g *Game) frameInterval() time.Duration {
	return time.Second / time.Duration(g.frameRate)
}

// run holds the coordination state of a single Run call.
type run struct {
	game  *Game
	exits *exitRegistry
	turn  *turnCursor
	// lock serializes fetch and apply under ModeFreeRace.
	lock   sync.Mutex
	actors []ActorSummary
}

func newRun(g *Game) *run {
	n := len(g.sources)
	actors := make([]ActorSummary, n)
	for i := range actors {
		actors[i].Index = i
	}
	return &run{
		game:   g,
		exits:  newExitRegistry(n),
		turn:   newTurnCursor(),
		actors: actors,
	}
}

// Run starts the render loop and one goroutine per actor, and blocks until
// all of them have terminated. The initial state is rendered before any
// action is applied and the final state after the last one.
//
// Cancelling ctx releases actors waiting for their turn and stops actors
// between two actions; Run still waits for every goroutine before returning.
func (g *Game) Run(ctx context.Context) Summary {
	r := newRun(g)
	startedAt := time.Now()
	log.Info("Starting game %s with %d actors in %s mode at %d FPS", g.id, len(g.sources), g.mode, g.frameRate)

	stopRelease := r.turn.release(ctx)
	defer stopRelease()

	ready := make(chan struct{})
	done := make(chan struct{})

	var tasks errgroup.Group
	tasks.Go(func() error {
		r.renderLoop(ready, done)
		return nil
	})
	// actors may only start mutating once the initial state is visible
	<-ready

	var actors errgroup.Group
	for i, source := range g.sources {
		i, source := i, source
		actors.Go(func() error {
			r.runActor(ctx, i, source)
			return nil
		})
	}
	tasks.Go(func() error {
		defer close(done)
		return actors.Wait()
	})
	if err := tasks.Wait(); err != nil {
		log.Error("Game %s task failed: %v", g.id, err)
	}

	summary := r.summary(startedAt, time.Now())
	summary.Interrupted = ctx.Err() != nil && !r.exits.allExited()
	if summary.Interrupted {
		log.Warn("Game %s interrupted after %d actions: %v", g.id, summary.Applied, ctx.Err())
	} else {
		log.Info("Game %s finished: %d actions applied, %d failed in %s", g.id, summary.Applied, summary.Failed, summary.Duration())
	}
	return summary
}

// RunParallel runs independent games concurrently and returns their
// summaries in the order the games were given.
func RunParallel(ctx context.Context, games ...*Game) []Summary {
	summaries := make([]Summary, len(games))
	var group errgroup.Group
	for i, game := range games {
		i, game := i, game
		group.Go(func() error {
			summaries[i] = game.Run(ctx)
			return nil
		})
	}
	_ = group.Wait()
	return summaries
}
