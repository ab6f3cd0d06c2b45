package game

import (
	"fmt"
	"strings"
)

// Board is an immutable snapshot of the grid and the player roster. Every
// transition returns a new Board and leaves the receiver untouched.
type Board struct {
	width   int
	height  int
	cells   [][]Cell // Indexed by row, then column
	players []Player // Indexed by player ID
}

// NewBoard builds a height x width board with player 0 seated in the top-left
// corner and player 1 in the bottom-right corner. Options are applied in
// order after seating.
func NewBoard(height, width int, options ...BoardOption) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidBoard, height, width)
	}
	if height*width < 2 {
		return nil, fmt.Errorf("%w: a %dx%d grid cannot seat two players", ErrInvalidBoard, height, width)
	}

	cells := make([][]Cell, height)
	for row := range cells {
		cells[row] = make([]Cell, width)
		for column := range cells[row] {
			cells[row][column] = Cell{position: NewPosition(row, column), state: EmptyState()}
		}
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  cells,
		players: []Player{
			NewPlayer(0, NewPosition(0, 0)),
			NewPlayer(1, NewPosition(height-1, width-1)),
		},
	}
	for _, player := range b.players {
		b.cells[player.State.Position.Row][player.State.Position.Column].state = OccupiedBy(player.ID)
	}

	for _, option := range options {
		if err := option(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// Players returns a copy of the roster.
func (b *Board) Players() []Player {
	players := make([]Player, len(b.players))
	copy(players, b.players)
	return players
}

func (b *Board) Player(playerID int) (Player, error) {
	if playerID < 0 || playerID >= len(b.players) {
		return Player{}, fmt.Errorf("player %d on a board of %d players: %w", playerID, len(b.players), ErrUnknownPlayer)
	}
	return b.players[playerID], nil
}

// Cell looks up the cell at position, failing when it lies past the grid.
func (b *Board) Cell(position Position) (Cell, error) {
	if !b.contains(position) {
		return Cell{}, fmt.Errorf("%w: %s is outside the %dx%d grid", ErrInvalidMove, position, b.height, b.width)
	}
	return b.cells[position.Row][position.Column], nil
}

func (b *Board) contains(position Position) bool {
	return position.Row >= 0 && position.Row < b.height &&
		position.Column >= 0 && position.Column < b.width
}

func (b *Board) setState(position Position, state CellState) error {
	if !b.contains(position) {
		return fmt.Errorf("%w: %s is outside the %dx%d grid", ErrInvalidMove, position, b.height, b.width)
	}
	b.cells[position.Row][position.Column].state = state
	return nil
}

// ApplyAction moves playerID one step in the action's direction.
func (b *Board) ApplyAction(playerID int, action Action) (*Board, error) {
	player, err := b.Player(playerID)
	if err != nil {
		return nil, err
	}
	if !player.IsAlive() {
		return nil, fmt.Errorf("player %d cannot move %s: %w", playerID, action, ErrDeadActor)
	}
	destination, err := action.Target(player.State.Position)
	if err != nil {
		return nil, err
	}
	return b.MovePlayer(playerID, destination)
}

// MovePlayer moves playerID to destination and resolves the effect of the
// cell it lands on. The origin becomes the player's trail.
func (b *Board) MovePlayer(playerID int, destination Position) (*Board, error) {
	player, err := b.Player(playerID)
	if err != nil {
		return nil, err
	}
	if !player.IsAlive() {
		return nil, fmt.Errorf("player %d cannot move to %s: %w", playerID, destination, ErrDeadActor)
	}

	next := b.clone()
	if err := next.setState(player.State.Position, OwnedBy(playerID)); err != nil {
		return nil, err
	}
	player.State.Position = destination

	target, err := next.Cell(destination)
	if err != nil {
		return nil, err
	}

	// Effects are resolved from the destination's state before this move
	// writes to it.
	switch state := target.State(); state.Kind {
	case Empty:
	case PowerUpCell:
		switch state.PowerUp.Kind {
		case DoubleSpeed:
			err = player.GrantBoost(state.PowerUp.Duration)
		case Armor:
			err = player.GrantArmor()
		case Bomb:
			next.explodeAround(destination)
		}
	case Wall, Owned:
		err = player.TakeDamage()
	case Occupied:
		player.kill()
	}
	if err != nil {
		return nil, err
	}

	if player.IsAlive() {
		if err := next.setState(destination, OccupiedBy(playerID)); err != nil {
			return nil, err
		}
	}
	next.players[playerID] = player
	return next, nil
}

// explodeAround clears power-ups, walls and trails from the eight cells
// surrounding position.
func (b *Board) explodeAround(position Position) {
	for rowOffset := -1; rowOffset <= 1; rowOffset++ {
		for columnOffset := -1; columnOffset <= 1; columnOffset++ {
			if rowOffset == 0 && columnOffset == 0 {
				continue
			}
			neighbor, err := position.Offset(rowOffset, columnOffset)
			if err != nil {
				continue
			}
			cell, err := b.Cell(neighbor)
			if err != nil {
				continue
			}
			if cell.State().Explodable() {
				b.cells[neighbor.Row][neighbor.Column].state = EmptyState()
			}
		}
	}
}

func (b *Board) clone() *Board {
	cells := make([][]Cell, len(b.cells))
	for row := range b.cells {
		cells[row] = make([]Cell, len(b.cells[row]))
		copy(cells[row], b.cells[row])
	}
	players := make([]Player, len(b.players))
	copy(players, b.players)

	return &Board{
		width:   b.width,
		height:  b.height,
		cells:   cells,
		players: players,
	}
}

// Compare gives boards a total order: dimensions, then cells in row-major
// order, then the roster.
func (b *Board) Compare(other *Board) int {
	if c := compareInts(b.width, other.width); c != 0 {
		return c
	}
	if c := compareInts(b.height, other.height); c != 0 {
		return c
	}
	for row := range b.cells {
		for column := range b.cells[row] {
			if c := b.cells[row][column].Compare(other.cells[row][column]); c != 0 {
				return c
			}
		}
	}
	for i := 0; i < len(b.players) && i < len(other.players); i++ {
		if c := b.players[i].Compare(other.players[i]); c != 0 {
			return c
		}
	}
	return compareInts(len(b.players), len(other.players))
}

// String encodes the grid one character per cell, each row terminated by a
// newline: '*' empty, '#' wall or trail, a digit for a player, and
// 'S', 'A', 'B' for power-ups.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))
	for _, row := range b.cells {
		for _, cell := range row {
			sb.WriteByte(cell.state.symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
