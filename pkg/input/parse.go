package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cbodonnell/sokoreplay/pkg/game/actions"
)

// ReasonInvalidInput is the message of actions parsed from unknown tokens.
const ReasonInvalidInput = "Invalid input."

// ParseAction converts one token into an action of the given player.
// Unknown tokens become actions.InvalidInput.
func ParseAction(token string, playerID int) actions.Action {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "w", "up":
		return actions.Move{PlayerID: playerID, Direction: actions.DirectionUp}
	case "s", "down":
		return actions.Move{PlayerID: playerID, Direction: actions.DirectionDown}
	case "a", "left":
		return actions.Move{PlayerID: playerID, Direction: actions.DirectionLeft}
	case "d", "right":
		return actions.Move{PlayerID: playerID, Direction: actions.DirectionRight}
	case "u", "undo":
		return actions.Undo{PlayerID: playerID}
	case "e", "exit":
		return actions.Exit{PlayerID: playerID}
	default:
		return actions.InvalidInput{PlayerID: playerID, Message: ReasonInvalidInput}
	}
}

// skipLine reports whether a line carries no action.
func skipLine(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "//")
}

// ParseActions reads one action per line. Blank lines and lines starting
// with // are ignored.
func ParseActions(r io.Reader, playerID int) ([]actions.Action, error) {
	var parsed []actions.Action
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if skipLine(scanner.Text()) {
			continue
		}
		parsed = append(parsed, ParseAction(scanner.Text(), playerID))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read actions: %v", err)
	}
	return parsed, nil
}
