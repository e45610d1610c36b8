package actions

import (
	"errors"
	"fmt"
)

// Action is a discrete command issued by a player.
type Action interface {
	// InitiatorID returns the id of the player that issued the action.
	InitiatorID() int
}

type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the row and column offsets of a single step in the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirectionUp:
		return -1, 0
	case DirectionDown:
		return 1, 0
	case DirectionLeft:
		return 0, -1
	case DirectionRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Move moves the player one cell, pushing a box if one is in the way.
type Move struct {
	PlayerID  int
	Direction Direction
}

func (a Move) InitiatorID() int { return a.PlayerID }

func (a Move) String() string { return fmt.Sprintf("Move(%d, %s)", a.PlayerID, a.Direction) }

// Undo reverts the last checkpoint.
type Undo struct {
	PlayerID int
}

func (a Undo) InitiatorID() int { return a.PlayerID }

func (a Undo) String() string { return fmt.Sprintf("Undo(%d)", a.PlayerID) }

// Exit is the terminal action of an action sequence.
type Exit struct {
	PlayerID int
}

func (a Exit) InitiatorID() int { return a.PlayerID }

func (a Exit) String() string { return fmt.Sprintf("Exit(%d)", a.PlayerID) }

// InvalidInput is produced by a source for input it could not parse.
type InvalidInput struct {
	PlayerID int
	Message  string
}

func (a InvalidInput) InitiatorID() int { return a.PlayerID }

func (a InvalidInput) String() string {
	return fmt.Sprintf("InvalidInput(%d, %q)", a.PlayerID, a.Message)
}

// IsExit reports whether the action terminates its sequence.
func IsExit(action Action) bool {
	switch action.(type) {
	case Exit, *Exit:
		return true
	default:
		return false
	}
}

// Failure is returned by a game state when an action could not be applied.
type Failure struct {
	Action Action
	Reason string
}

func (f *Failure) Error() string {
	return f.Reason
}

// Failed creates a Failure for the given action.
func Failed(action Action, reason string) *Failure {
	return &Failure{Action: action, Reason: reason}
}

// ReasonOf returns the human readable reason carried by err.
func ReasonOf(err error) string {
	if err == nil {
		return ""
	}
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Reason
	}
	return err.Error()
}
