package replay_test

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cbodonnell/sokoreplay/pkg/game/actions"
	"github.com/cbodonnell/sokoreplay/pkg/replay"
)

type eventKind int

const (
	eventApply eventKind = iota
	eventMessage
	eventRender
)

type event struct {
	kind    eventKind
	action  actions.Action
	message string
}

// timeline is shared by the fake state and renderer so tests can check the
// relative order of applies and renders.
type timeline struct {
	mu     sync.Mutex
	events []event
}

func (tl *timeline) add(e event) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.events = append(tl.events, e)
}

func (tl *timeline) snapshot() []event {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	out := make([]event, len(tl.events))
	copy(out, tl.events)
	return out
}

func (tl *timeline) applied() []actions.Action {
	var out []actions.Action
	for _, e := range tl.snapshot() {
		if e.kind == eventApply {
			out = append(out, e.action)
		}
	}
	return out
}

func (tl *timeline) messages() []string {
	var out []string
	for _, e := range tl.snapshot() {
		if e.kind == eventMessage {
			out = append(out, e.message)
		}
	}
	return out
}

// recordingState records applied actions and detects overlapping applies.
type recordingState struct {
	timeline *timeline
	inFlight atomic.Int32
	overlaps atomic.Int32
	// failures maps an action to the reason it fails with
	failures map[actions.Action]string
}

func newRecordingState(tl *timeline) *recordingState {
	return &recordingState{timeline: tl}
}

func (s *recordingState) Apply(action actions.Action) error {
	if s.inFlight.Add(1) > 1 {
		s.overlaps.Add(1)
	}
	defer s.inFlight.Add(-1)

	// give other goroutines a chance to run while this apply is in flight
	runtime.Gosched()
	s.timeline.add(event{kind: eventApply, action: action})

	if reason, ok := s.failures[action]; ok {
		return actions.Failed(action, reason)
	}
	return nil
}

func (s *recordingState) UndoQuota() (int, bool) {
	return 0, false
}

type recordingRenderer struct {
	timeline *timeline
	renders  atomic.Int32
}

func (r *recordingRenderer) Message(content string) {
	r.timeline.add(event{kind: eventMessage, message: content})
}

func (r *recordingRenderer) Render(_ replay.GameState) {
	r.renders.Add(1)
	r.timeline.add(event{kind: eventRender})
}

// scriptedSource replays a fixed list of actions and counts fetches.
type scriptedSource struct {
	script  []actions.Action
	fetched atomic.Int32
}

func newScriptedSource(script ...actions.Action) *scriptedSource {
	return &scriptedSource{script: script}
}

func (s *scriptedSource) FetchAction() actions.Action {
	i := int(s.fetched.Add(1)) - 1
	if i >= len(s.script) {
		panic("fetched past the end of the script")
	}
	return s.script[i]
}

func right(player int) actions.Action { return actions.Move{PlayerID: player, Direction: actions.DirectionRight} }
func left(player int) actions.Action  { return actions.Move{PlayerID: player, Direction: actions.DirectionLeft} }
func up(player int) actions.Action    { return actions.Move{PlayerID: player, Direction: actions.DirectionUp} }
func exit(player int) actions.Action  { return actions.Exit{PlayerID: player} }

type harness struct {
	timeline *timeline
	state    *recordingState
	renderer *recordingRenderer
	sources  []*scriptedSource
}

func newHarness(scripts ...[]actions.Action) *harness {
	tl := &timeline{}
	h := &harness{
		timeline: tl,
		state:    newRecordingState(tl),
		renderer: &recordingRenderer{timeline: tl},
	}
	for _, script := range scripts {
		h.sources = append(h.sources, newScriptedSource(script...))
	}
	return h
}

func (h *harness) game(mode replay.Mode, frameRate int) (*replay.Game, error) {
	sources := make([]replay.ActionSource, len(h.sources))
	for i, s := range h.sources {
		sources[i] = s
	}
	return replay.NewGame(replay.NewGameOptions{
		Mode:          mode,
		FrameRate:     frameRate,
		GameState:     h.state,
		ActionSources: sources,
		Renderer:      h.renderer,
	})
}
