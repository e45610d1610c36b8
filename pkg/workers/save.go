package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/sokoreplay/pkg/log"
	"github.com/cbodonnell/sokoreplay/pkg/replay"
	"github.com/cbodonnell/sokoreplay/pkg/repositories"
)

// DefaultSaveTimeout bounds a single save when no timeout is configured.
const DefaultSaveTimeout = 10 * time.Second

type SaveSummaryWorker struct {
	repository  repositories.Repository
	summaryChan <-chan replay.Summary
	timeout     time.Duration
}

type NewSaveSummaryWorkerOptions struct {
	Repository  repositories.Repository
	SummaryChan <-chan replay.Summary
	Timeout     time.Duration
}

// NewSaveSummaryWorker creates a new SaveSummaryWorker.
// The worker saves every run summary received on the channel to the
// repository until the channel is closed or the context is done.
func NewSaveSummaryWorker(opts NewSaveSummaryWorkerOptions) *SaveSummaryWorker {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	return &SaveSummaryWorker{
		repository:  opts.Repository,
		summaryChan: opts.SummaryChan,
		timeout:     timeout,
	}
}

func (w *SaveSummaryWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case summary, ok := <-w.summaryChan:
			if !ok {
				return
			}
			w.saveSummary(ctx, summary)
		}
	}
}

func (w *SaveSummaryWorker) saveSummary(ctx context.Context, summary replay.Summary) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.repository.SaveSummary(ctx, summary); err != nil {
		log.Error("Failed to save summary of game %s: %v", summary.GameID, err)
		return
	}
	log.Debug("Saved summary of game %s", summary.GameID)
}
