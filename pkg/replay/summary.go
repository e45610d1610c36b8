package replay

import "time"

// ActorSummary counts the actions applied on behalf of one actor.
type ActorSummary struct {
	Index   int
	Applied int
	Failed  int
}

// Summary describes a finished Run.
type Summary struct {
	GameID      string
	Mode        Mode
	Actors      []ActorSummary
	Applied     int
	Failed      int
	Interrupted bool
	StartedAt   time.Time
	FinishedAt  time.Time
}

func (s Summary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// summary must only be called once every actor has stopped.
func (r *run) summary(startedAt, finishedAt time.Time) Summary {
	actors := make([]ActorSummary, len(r.actors))
	copy(actors, r.actors)

	s := Summary{
		GameID:     r.game.id,
		Mode:       r.game.mode,
		Actors:     actors,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}
	for _, a := range actors {
		s.Applied += a.Applied
		s.Failed += a.Failed
	}
	return s
}
