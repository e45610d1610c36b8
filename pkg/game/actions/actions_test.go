package actions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExit(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   bool
	}{
		{name: "exit", action: Exit{PlayerID: 0}, want: true},
		{name: "exit pointer", action: &Exit{PlayerID: 1}, want: true},
		{name: "move", action: Move{PlayerID: 0, Direction: DirectionRight}},
		{name: "undo", action: Undo{PlayerID: 0}},
		{name: "invalid", action: InvalidInput{PlayerID: 0, Message: "?"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExit(tt.action))
		})
	}
}

func TestDirection_Delta(t *testing.T) {
	dRow, dCol := DirectionUp.Delta()
	assert.Equal(t, [2]int{-1, 0}, [2]int{dRow, dCol})
	dRow, dCol = DirectionRight.Delta()
	assert.Equal(t, [2]int{0, 1}, [2]int{dRow, dCol})
	assert.Equal(t, "left", DirectionLeft.String())
}

func TestReasonOf(t *testing.T) {
	failure := Failed(Move{PlayerID: 0, Direction: DirectionUp}, "You hit a wall.")

	assert.Equal(t, "", ReasonOf(nil))
	assert.Equal(t, "You hit a wall.", ReasonOf(failure))
	assert.Equal(t, "You hit a wall.", ReasonOf(fmt.Errorf("apply: %w", failure)))
	assert.Equal(t, "boom", ReasonOf(errors.New("boom")))
}
