package replay

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/sokoreplay/pkg/game/actions"
)

// ActionSource produces the actions of a single actor.
// FetchAction blocks until an action is available. Every source must
// eventually return an actions.Exit; a run whose source never does will not
// terminate.
type ActionSource interface {
	FetchAction() actions.Action
}

// GameState is the shared resource mutated by the actors.
// The scheduler guarantees at most one Apply at a time, but Apply may run
// concurrently with a Renderer reading the state.
type GameState interface {
	// Apply applies one action. A non-nil error means the action failed;
	// the run continues and the reason is shown to the user.
	Apply(action actions.Action) error
	// UndoQuota returns the remaining undo quota. limited is false when the
	// quota is unlimited.
	UndoQuota() (quota int, limited bool)
}

// Renderer displays status messages and snapshots of the game state.
// Implementations must be safe for concurrent use.
type Renderer interface {
	Message(content string)
	Render(state GameState)
}

// Mode is the scheduling discipline used to order actions across actors.
type Mode int

const (
	// ModeFreeRace lets actors act in any order. Applications are
	// serialized but their relative order across actors is unspecified.
	ModeFreeRace Mode = iota
	// ModeRoundRobin makes actors take turns in index order, skipping
	// actors that have exited.
	ModeRoundRobin
)

func (m Mode) String() string {
	switch m {
	case ModeFreeRace:
		return "free-race"
	case ModeRoundRobin:
		return "round-robin"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name such as "round-robin" or "FREE_RACE".
func ParseMode(s string) (Mode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "free-race", "freerace":
		return ModeFreeRace, nil
	case "round-robin", "roundrobin":
		return ModeRoundRobin, nil
	default:
		return ModeFreeRace, fmt.Errorf("unknown mode: %s", s)
	}
}

// UnmarshalText allows modes to be read from config files and env vars.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
