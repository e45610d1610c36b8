package sokoban

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cbodonnell/sokoreplay/pkg/game/constants"
)

type Position struct {
	Row int
	Col int
}

func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Map is a parsed level.
type Map struct {
	// UndoLimit is the number of undos allowed, or constants.UnlimitedUndo
	UndoLimit    int
	Width        int
	Height       int
	Walls        map[Position]struct{}
	Destinations map[Position]struct{}
	// Players maps player ids to their starting positions
	Players map[int]Position
	// Boxes maps box positions to the id of the owning player
	Boxes map[Position]int
}

// LoadMap parses the map file at path.
func LoadMap(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map %s: %v", path, err)
	}
	defer f.Close()

	m, err := ParseMap(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", path, err)
	}
	return m, nil
}

// ParseMap parses a level. The first line is the undo limit (-1 for
// unlimited); the remaining lines are the grid.
func ParseMap(r io.Reader) (*Map, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty map")
	}

	undoLimit, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("invalid undo limit: %v", err)
	}
	if undoLimit < constants.UnlimitedUndo {
		return nil, fmt.Errorf("undo limit must be at least %d, got %d", constants.UnlimitedUndo, undoLimit)
	}

	m := &Map{
		UndoLimit:    undoLimit,
		Walls:        make(map[Position]struct{}),
		Destinations: make(map[Position]struct{}),
		Players:      make(map[int]Position),
		Boxes:        make(map[Position]int),
	}

	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		for col, glyph := range []rune(line) {
			p := Position{Row: row, Col: col}
			switch {
			case glyph == constants.GlyphWall:
				m.Walls[p] = struct{}{}
			case glyph == constants.GlyphDestination:
				m.Destinations[p] = struct{}{}
			case glyph == constants.GlyphEmpty || glyph == ' ':
			default:
				if id, ok := constants.PlayerID(glyph); ok {
					if _, exists := m.Players[id]; exists {
						return nil, fmt.Errorf("duplicate player %c", glyph)
					}
					m.Players[id] = p
				} else if owner, ok := constants.BoxOwner(glyph); ok {
					m.Boxes[p] = owner
				} else {
					return nil, fmt.Errorf("invalid character %q at row %d, column %d", glyph, row, col)
				}
			}
			if col+1 > m.Width {
				m.Width = col + 1
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	m.Height = row

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) validate() error {
	if len(m.Players) == 0 {
		return fmt.Errorf("map has no players")
	}
	for p, owner := range m.Boxes {
		if _, ok := m.Players[owner]; !ok {
			return fmt.Errorf("box %c at %v has no matching player", constants.BoxGlyph(owner), p)
		}
	}
	if len(m.Boxes) != len(m.Destinations) {
		return fmt.Errorf("map has %d boxes but %d destinations", len(m.Boxes), len(m.Destinations))
	}
	return nil
}

// PlayerIDs returns the ids of the players on the map in ascending order.
func (m *Map) PlayerIDs() []int {
	ids := make([]int, 0, len(m.Players))
	for id := 0; id < constants.MaxPlayers; id++ {
		if _, ok := m.Players[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
