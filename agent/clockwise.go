package agent

import "tron/game"

type clockwise struct{}

// NewClockwise returns an agent that takes the first safe action clockwise
// from Up.
func NewClockwise() Agent {
	return clockwise{}
}

func (clockwise) SelectAction(board *game.Board, playerID int) game.Action {
	if actions := safeActions(board, playerID); len(actions) > 0 {
		return actions[0]
	}
	return game.Up
}
