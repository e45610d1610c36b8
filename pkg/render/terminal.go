package render

import (
	"io"
	"strings"
	"sync"

	"github.com/cbodonnell/sokoreplay/pkg/game/constants"
	"github.com/cbodonnell/sokoreplay/pkg/game/sokoban"
	"github.com/cbodonnell/sokoreplay/pkg/log"
	"github.com/cbodonnell/sokoreplay/pkg/replay"
	"github.com/charmbracelet/lipgloss"
)

// BoardSource is implemented by game states that can be drawn.
type BoardSource interface {
	Snapshot() sokoban.Board
}

// Terminal writes messages and boards to a writer. It is safe for
// concurrent use; every message and frame is written with a single Write.
type Terminal struct {
	lock   sync.Mutex
	out    io.Writer
	label  string
	styles styles
}

type styles struct {
	wall        lipgloss.Style
	destination lipgloss.Style
	player      lipgloss.Style
	box         lipgloss.Style
	label       lipgloss.Style
}

// NewTerminal creates a renderer writing to out. A non-empty label prefixes
// every line, which keeps the output of parallel games apart.
func NewTerminal(out io.Writer, label string) *Terminal {
	r := lipgloss.NewRenderer(out)
	return &Terminal{
		out:   out,
		label: label,
		styles: styles{
			wall:        r.NewStyle().Foreground(lipgloss.Color("240")),
			destination: r.NewStyle().Foreground(lipgloss.Color("220")),
			player:      r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
			box:         r.NewStyle().Foreground(lipgloss.Color("208")),
			label:       r.NewStyle().Faint(true),
		},
	}
}

func (t *Terminal) Message(content string) {
	t.write(t.prefix() + content + "\n")
}

func (t *Terminal) Render(state replay.GameState) {
	source, ok := state.(BoardSource)
	if !ok {
		log.Warn("Cannot render game state of type %T", state)
		return
	}

	var sb strings.Builder
	for _, row := range source.Snapshot().Cells {
		sb.WriteString(t.prefix())
		for _, glyph := range row {
			sb.WriteString(t.glyph(glyph))
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	t.write(sb.String())
}

func (t *Terminal) prefix() string {
	if t.label == "" {
		return ""
	}
	return t.styles.label.Render("["+t.label+"]") + " "
}

func (t *Terminal) glyph(glyph rune) string {
	s := string(glyph)
	switch {
	case glyph == constants.GlyphWall:
		return t.styles.wall.Render(s)
	case glyph == constants.GlyphDestination:
		return t.styles.destination.Render(s)
	}
	if _, ok := constants.PlayerID(glyph); ok {
		return t.styles.player.Render(s)
	}
	if _, ok := constants.BoxOwner(glyph); ok {
		return t.styles.box.Render(s)
	}
	return s
}

func (t *Terminal) write(s string) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if _, err := io.WriteString(t.out, s); err != nil {
		log.Error("Failed to write to terminal: %v", err)
	}
}
