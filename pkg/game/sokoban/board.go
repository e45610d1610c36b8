package sokoban

import "strings"

// Board is an immutable snapshot of the cells of a game.
type Board struct {
	Cells [][]rune
}

func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b.Cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
