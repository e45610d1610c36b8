package workers

import (
	"context"
	"testing"
	"time"

	mocks "github.com/cbodonnell/sokoreplay/mocks/github.com/cbodonnell/sokoreplay/pkg/repositories"
	"github.com/cbodonnell/sokoreplay/pkg/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSaveSummaryWorker_savesUntilClosed(t *testing.T) {
	first := replay.Summary{GameID: "first", Applied: 3}
	second := replay.Summary{GameID: "second", Interrupted: true}

	mockRepository := mocks.NewRepository(t)
	mockRepository.EXPECT().SaveSummary(mock.Anything, first).Return(nil).Once()
	// a failed save is logged and the worker keeps going
	mockRepository.EXPECT().SaveSummary(mock.Anything, second).Return(assert.AnError).Once()

	summaryChan := make(chan replay.Summary, 2)
	summaryChan <- first
	summaryChan <- second
	close(summaryChan)

	worker := NewSaveSummaryWorker(NewSaveSummaryWorkerOptions{
		Repository:  mockRepository,
		SummaryChan: summaryChan,
	})

	done := make(chan struct{})
	go func() {
		worker.Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after the channel was closed")
	}
}

func TestSaveSummaryWorker_appliesTimeout(t *testing.T) {
	mockRepository := mocks.NewRepository(t)
	mockRepository.EXPECT().SaveSummary(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ replay.Summary) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
		}).
		Return(nil).Once()

	summaryChan := make(chan replay.Summary, 1)
	summaryChan <- replay.Summary{GameID: "timed"}
	close(summaryChan)

	NewSaveSummaryWorker(NewSaveSummaryWorkerOptions{
		Repository:  mockRepository,
		SummaryChan: summaryChan,
		Timeout:     time.Minute,
	}).Start(context.Background())
}

func TestSaveSummaryWorker_stopsOnCancel(t *testing.T) {
	mockRepository := mocks.NewRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	worker := NewSaveSummaryWorker(NewSaveSummaryWorkerOptions{
		Repository:  mockRepository,
		SummaryChan: make(chan replay.Summary),
	})
	worker.Start(ctx)
	assert.Equal(t, DefaultSaveTimeout, worker.timeout)
}
