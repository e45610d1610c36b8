package replay

import (
	"fmt"
	"time"
)

const (
	UndoQuotaTemplate  = "Undo Quota: %d"
	UndoQuotaUnlimited = "Undo Quota: unlimited"
)

// StatusMessage returns the status line shown with every frame.
func StatusMessage(state GameState) string {
	quota, limited := state.UndoQuota()
	if !limited {
		return UndoQuotaUnlimited
	}
	return fmt.Sprintf(UndoQuotaTemplate, quota)
}

// renderLoop renders the initial state, closes ready, then renders once per
// frame until done is closed, and finally renders the last state once more.
func (r *run) renderLoop(ready chan<- struct{}, done <-chan struct{}) {
	r.renderFrame()
	close(ready)

	ticker := time.NewTicker(r.game.frameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-done:
			r.renderFrame()
			return
		case <-ticker.C:
			r.renderFrame()
		}
	}
}

func (r *run) renderFrame() {
	r.game.renderer.Message(StatusMessage(r.game.state))
	r.game.renderer.Render(r.game.state)
}
