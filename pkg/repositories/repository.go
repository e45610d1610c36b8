package repositories

import (
	"context"

	"github.com/cbodonnell/sokoreplay/pkg/replay"
)

// Repository stores the summaries of finished replay runs.
type Repository interface {
	Close(ctx context.Context) error
	SaveSummary(ctx context.Context, summary replay.Summary) error
	LoadSummary(ctx context.Context, gameID string) (*replay.Summary, error)
}
