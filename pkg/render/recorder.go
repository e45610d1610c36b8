package render

import (
	"sync"

	"github.com/cbodonnell/sokoreplay/pkg/replay"
)

// Recorder keeps every message and rendered board in memory.
type Recorder struct {
	lock     sync.Mutex
	messages []string
	frames   []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Message(content string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.messages = append(r.messages, content)
}

// Render records the board of states implementing BoardSource and an empty
// frame for any other state.
func (r *Recorder) Render(state replay.GameState) {
	frame := ""
	if source, ok := state.(BoardSource); ok {
		frame = source.Snapshot().String()
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.frames = append(r.frames, frame)
}

func (r *Recorder) Messages() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.messages...)
}

func (r *Recorder) Frames() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.frames...)
}

// LastFrame returns the most recent frame, or "" if nothing was rendered.
func (r *Recorder) LastFrame() string {
	r.lock.Lock()
	defer r.lock.Unlock()
	if len(r.frames) == 0 {
		return ""
	}
	return r.frames[len(r.frames)-1]
}
