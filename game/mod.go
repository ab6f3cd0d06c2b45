package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned when a move cannot be applied to a board
	ErrInvalidMove = errors.New("invalid move")
	// ErrDeadActor is returned when a dead player is asked to act
	ErrDeadActor = fmt.Errorf("%w: player is dead", ErrInvalidMove)
	// ErrUnknownPlayer is returned for player ids outside the board's roster
	ErrUnknownPlayer = fmt.Errorf("%w: unknown player", ErrInvalidMove)
	// ErrInvalidBoard is returned when a board cannot be constructed
	ErrInvalidBoard = errors.New("invalid board")
)

const (
	// Scores awarded per cell by the zone control heuristic
	EMPTY_VALUE        = 1
	DOUBLE_SPEED_VALUE = 3
	ARMOR_VALUE        = 4
	BOMB_VALUE         = 5
	OCCUPIED_VALUE     = 0
)
