package sokoban

import (
	"strings"
	"testing"

	"github.com/cbodonnell/sokoreplay/pkg/game/actions"
	"github.com/cbodonnell/sokoreplay/pkg/game/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMap = `2
#######
#A.a@.#
#.....#
#B.b@.#
#######
`

func parse(t *testing.T, s string) *Map {
	t.Helper()
	m, err := ParseMap(strings.NewReader(s))
	require.NoError(t, err)
	return m
}

func TestParseMap(t *testing.T) {
	m := parse(t, testMap)

	assert.Equal(t, 2, m.UndoLimit)
	assert.Equal(t, 7, m.Width)
	assert.Equal(t, 5, m.Height)
	assert.Equal(t, Position{Row: 1, Col: 1}, m.Players[0])
	assert.Equal(t, Position{Row: 3, Col: 1}, m.Players[1])
	assert.Equal(t, 0, m.Boxes[Position{Row: 1, Col: 3}])
	assert.Equal(t, 1, m.Boxes[Position{Row: 3, Col: 3}])
	assert.Len(t, m.Destinations, 2)
	assert.Equal(t, []int{0, 1}, m.PlayerIDs())
}

func TestParseMap_errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "bad undo limit", in: "x\n#A#\n"},
		{name: "undo limit too small", in: "-2\n#A#\n"},
		{name: "no players", in: "-1\n#.#\n"},
		{name: "orphan box", in: "-1\n#Ab@#\n"},
		{name: "box count mismatch", in: "-1\n#Aa@@#\n"},
		{name: "invalid character", in: "-1\n#A?#\n"},
		{name: "duplicate player", in: "-1\n#AA#\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMap(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}

func move(player int, d actions.Direction) actions.Action {
	return actions.Move{PlayerID: player, Direction: d}
}

func TestGameState_Apply(t *testing.T) {
	tests := []struct {
		name       string
		setup      []actions.Action
		action     actions.Action
		wantReason string
		wantPlayer Position
	}{
		{
			name:       "move into empty cell",
			action:     move(0, actions.DirectionDown),
			wantPlayer: Position{Row: 2, Col: 1},
		},
		{
			name:       "hit wall",
			action:     move(0, actions.DirectionUp),
			wantReason: constants.ReasonHitWall,
			wantPlayer: Position{Row: 1, Col: 1},
		},
		{
			name:       "hit other player",
			setup:      []actions.Action{move(0, actions.DirectionDown)},
			action:     move(1, actions.DirectionUp),
			wantReason: constants.ReasonHitPlayer,
			wantPlayer: Position{Row: 3, Col: 1},
		},
		{
			name:       "push own box",
			setup:      []actions.Action{move(0, actions.DirectionRight)},
			action:     move(0, actions.DirectionRight),
			wantPlayer: Position{Row: 1, Col: 3},
		},
		{
			name: "push other player's box",
			setup: []actions.Action{
				move(1, actions.DirectionUp),
				move(1, actions.DirectionRight),
				move(1, actions.DirectionRight),
			},
			action:     move(1, actions.DirectionUp),
			wantReason: constants.ReasonForeignBox,
			wantPlayer: Position{Row: 2, Col: 3},
		},
		{
			name: "push into wall",
			setup: []actions.Action{
				move(0, actions.DirectionRight),
				move(0, actions.DirectionRight),
				move(0, actions.DirectionRight),
			},
			action:     move(0, actions.DirectionRight),
			wantReason: constants.ReasonBlockedPush,
			wantPlayer: Position{Row: 1, Col: 4},
		},
		{
			name:       "invalid input",
			action:     actions.InvalidInput{PlayerID: 0, Message: "Invalid input."},
			wantReason: "Invalid input.",
			wantPlayer: Position{Row: 1, Col: 1},
		},
		{
			name:       "unknown player",
			action:     move(5, actions.DirectionDown),
			wantReason: constants.ReasonUnknownPlayer,
			wantPlayer: Position{Row: 1, Col: 1},
		},
		{
			name:       "nothing to undo",
			action:     actions.Undo{PlayerID: 0},
			wantReason: constants.ReasonNothingToUndo,
			wantPlayer: Position{Row: 1, Col: 1},
		},
		{
			name:       "undo last move",
			setup:      []actions.Action{move(0, actions.DirectionDown)},
			action:     actions.Undo{PlayerID: 0},
			wantPlayer: Position{Row: 1, Col: 1},
		},
		{
			name:       "move after exit",
			setup:      []actions.Action{actions.Exit{PlayerID: 0}},
			action:     move(0, actions.DirectionDown),
			wantReason: constants.ReasonPlayerHasExited,
			wantPlayer: Position{Row: 1, Col: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGameState(parse(t, testMap))
			for _, a := range tt.setup {
				require.NoError(t, s.Apply(a))
			}

			err := s.Apply(tt.action)

			if tt.wantReason == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, actions.ReasonOf(err))
			}
			player := tt.action.InitiatorID()
			if _, ok := s.PlayerPosition(player); !ok {
				player = 0
			}
			got, _ := s.PlayerPosition(player)
			assert.Equal(t, tt.wantPlayer, got)
		})
	}
}

func TestGameState_undoQuota(t *testing.T) {
	s := NewGameState(parse(t, testMap))

	quota, limited := s.UndoQuota()
	assert.True(t, limited)
	assert.Equal(t, 2, quota)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Apply(move(0, actions.DirectionDown)))
		require.NoError(t, s.Apply(move(0, actions.DirectionUp)))
	}
	require.NoError(t, s.Apply(actions.Undo{PlayerID: 0}))
	require.NoError(t, s.Apply(actions.Undo{PlayerID: 1}))

	err := s.Apply(actions.Undo{PlayerID: 0})
	assert.Equal(t, constants.ReasonUndoQuotaEmpty, actions.ReasonOf(err))
	quota, _ = s.UndoQuota()
	assert.Zero(t, quota)

	unlimited := NewGameState(parse(t, strings.Replace(testMap, "2\n", "-1\n", 1)))
	_, limited = unlimited.UndoQuota()
	assert.False(t, limited)
}

func TestGameState_win(t *testing.T) {
	s := NewGameState(parse(t, testMap))
	assert.False(t, s.IsWin())

	for _, a := range []actions.Action{
		move(0, actions.DirectionRight),
		move(0, actions.DirectionRight),
		move(1, actions.DirectionRight),
		move(1, actions.DirectionRight),
	} {
		require.NoError(t, s.Apply(a))
	}
	assert.True(t, s.IsWin())

	require.NoError(t, s.Apply(actions.Exit{PlayerID: 1}))
	assert.True(t, s.HasExited(1))
	assert.False(t, s.HasExited(0))
}

func TestGameState_Snapshot(t *testing.T) {
	s := NewGameState(parse(t, testMap))
	require.NoError(t, s.Apply(move(0, actions.DirectionRight)))
	require.NoError(t, s.Apply(move(0, actions.DirectionRight)))

	want := strings.Join([]string{
		"#######",
		"#..Aa.#",
		"#.....#",
		"#B.b@.#",
		"#######",
	}, "\n")
	assert.Equal(t, want, s.Snapshot().String())
}
