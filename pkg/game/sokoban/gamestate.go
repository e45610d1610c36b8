package sokoban

import (
	"sync"

	"github.com/cbodonnell/sokoreplay/pkg/game/actions"
	"github.com/cbodonnell/sokoreplay/pkg/game/constants"
)

// checkpoint is the position of every player and box before a move.
type checkpoint struct {
	players map[int]Position
	boxes   map[Position]int
}

// GameState is a Sokoban game shared by several players.
// It is safe for concurrent use.
type GameState struct {
	lock         sync.RWMutex
	width        int
	height       int
	walls        map[Position]struct{}
	destinations map[Position]struct{}
	players      map[int]Position
	boxes        map[Position]int
	undoQuota    int
	history      []checkpoint
	exited       map[int]bool
}

// NewGameState creates the initial state of a map. The map is not modified.
func NewGameState(m *Map) *GameState {
	s := &GameState{
		width:        m.Width,
		height:       m.Height,
		walls:        m.Walls,
		destinations: m.Destinations,
		undoQuota:    m.UndoLimit,
		exited:       make(map[int]bool),
	}
	s.players, s.boxes = copyPositions(m.Players, m.Boxes)
	return s
}

func copyPositions(players map[int]Position, boxes map[Position]int) (map[int]Position, map[Position]int) {
	p := make(map[int]Position, len(players))
	for id, pos := range players {
		p[id] = pos
	}
	b := make(map[Position]int, len(boxes))
	for pos, owner := range boxes {
		b[pos] = owner
	}
	return p, b
}

// Apply applies an action on behalf of its initiator.
func (s *GameState) Apply(action actions.Action) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	switch a := action.(type) {
	case actions.Move:
		return s.move(a)
	case actions.Undo:
		return s.undo(a)
	case actions.Exit:
		if _, ok := s.players[a.PlayerID]; !ok {
			return actions.Failed(a, constants.ReasonUnknownPlayer)
		}
		s.exited[a.PlayerID] = true
		return nil
	case actions.InvalidInput:
		return actions.Failed(a, a.Message)
	default:
		return actions.Failed(action, constants.ReasonUnsupported)
	}
}

func (s *GameState) move(a actions.Move) error {
	from, ok := s.players[a.PlayerID]
	if !ok {
		return actions.Failed(a, constants.ReasonUnknownPlayer)
	}
	if s.exited[a.PlayerID] {
		return actions.Failed(a, constants.ReasonPlayerHasExited)
	}

	dRow, dCol := a.Direction.Delta()
	to := from.Add(dRow, dCol)
	if s.isWall(to) {
		return actions.Failed(a, constants.ReasonHitWall)
	}
	if s.playerAt(to) {
		return actions.Failed(a, constants.ReasonHitPlayer)
	}

	owner, pushing := s.boxes[to]
	if pushing {
		if owner != a.PlayerID {
			return actions.Failed(a, constants.ReasonForeignBox)
		}
		beyond := to.Add(dRow, dCol)
		if s.isWall(beyond) || s.playerAt(beyond) {
			return actions.Failed(a, constants.ReasonBlockedPush)
		}
		if _, ok := s.boxes[beyond]; ok {
			return actions.Failed(a, constants.ReasonBlockedPush)
		}
	}

	s.checkpoint()
	if pushing {
		delete(s.boxes, to)
		s.boxes[to.Add(dRow, dCol)] = owner
	}
	s.players[a.PlayerID] = to
	return nil
}

func (s *GameState) undo(a actions.Undo) error {
	if _, ok := s.players[a.PlayerID]; !ok {
		return actions.Failed(a, constants.ReasonUnknownPlayer)
	}
	if s.undoQuota == 0 {
		return actions.Failed(a, constants.ReasonUndoQuotaEmpty)
	}
	if len(s.history) == 0 {
		return actions.Failed(a, constants.ReasonNothingToUndo)
	}

	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.players, s.boxes = last.players, last.boxes
	if s.undoQuota > 0 {
		s.undoQuota--
	}
	return nil
}

func (s *GameState) checkpoint() {
	players, boxes := copyPositions(s.players, s.boxes)
	s.history = append(s.history, checkpoint{players: players, boxes: boxes})
}

func (s *GameState) isWall(p Position) bool {
	if p.Row < 0 || p.Col < 0 || p.Row >= s.height || p.Col >= s.width {
		return true
	}
	_, ok := s.walls[p]
	return ok
}

func (s *GameState) playerAt(p Position) bool {
	for _, pos := range s.players {
		if pos == p {
			return true
		}
	}
	return false
}

// UndoQuota returns the remaining undo quota. limited is false when undo
// is unlimited.
func (s *GameState) UndoQuota() (int, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.undoQuota == constants.UnlimitedUndo {
		return 0, false
	}
	return s.undoQuota, true
}

// IsWin reports whether every box is on a destination.
func (s *GameState) IsWin() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	for p := range s.boxes {
		if _, ok := s.destinations[p]; !ok {
			return false
		}
	}
	return true
}

// HasExited reports whether the player has applied an exit action.
func (s *GameState) HasExited(playerID int) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.exited[playerID]
}

// PlayerPosition returns the current position of a player.
func (s *GameState) PlayerPosition(playerID int) (Position, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	p, ok := s.players[playerID]
	return p, ok
}

// Snapshot returns a copy of the board.
func (s *GameState) Snapshot() Board {
	s.lock.RLock()
	defer s.lock.RUnlock()

	cells := make([][]rune, s.height)
	for row := range cells {
		cells[row] = make([]rune, s.width)
		for col := range cells[row] {
			p := Position{Row: row, Col: col}
			switch {
			case s.isWall(p):
				cells[row][col] = constants.GlyphWall
			case s.hasDestination(p):
				cells[row][col] = constants.GlyphDestination
			default:
				cells[row][col] = constants.GlyphEmpty
			}
		}
	}
	for p, owner := range s.boxes {
		cells[p.Row][p.Col] = constants.BoxGlyph(owner)
	}
	for id, p := range s.players {
		cells[p.Row][p.Col] = constants.PlayerGlyph(id)
	}
	return Board{Cells: cells}
}

func (s *GameState) hasDestination(p Position) bool {
	_, ok := s.destinations[p]
	return ok
}
