package game

import "fmt"

// Position is a coordinate on the grid. Row and Column are never negative.
type Position struct {
	Row    int
	Column int
}

func NewPosition(row, column int) Position {
	return Position{Row: row, Column: column}
}

// Offset returns the position shifted by the given deltas. It only rejects
// negative coordinates; positions past the far edge of a grid are caught by
// the board's cell lookup.
func (p Position) Offset(rowOffset, columnOffset int) (Position, error) {
	row := p.Row + rowOffset
	column := p.Column + columnOffset
	if row < 0 || column < 0 {
		return Position{}, fmt.Errorf("%w: offset (%d, %d) from %s leaves the grid", ErrInvalidMove, rowOffset, columnOffset, p)
	}
	return Position{Row: row, Column: column}, nil
}

// Compare orders positions row first, then column.
func (p Position) Compare(other Position) int {
	if c := compareInts(p.Row, other.Row); c != 0 {
		return c
	}
	return compareInts(p.Column, other.Column)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
