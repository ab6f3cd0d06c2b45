package game

import "strconv"

// CellKind tags the variant held by a CellState.
type CellKind int

const (
	Empty CellKind = iota
	PowerUpCell
	Wall
	Owned    // Trail left behind by PlayerID
	Occupied // PlayerID is standing here
)

// CellState is the content of a cell. PowerUp is set only for PowerUpCell and
// PlayerID only for Owned and Occupied.
type CellState struct {
	Kind     CellKind
	PowerUp  PowerUp
	PlayerID int
}

func EmptyState() CellState {
	return CellState{Kind: Empty}
}

func PowerUpState(powerUp PowerUp) CellState {
	return CellState{Kind: PowerUpCell, PowerUp: powerUp}
}

func WallState() CellState {
	return CellState{Kind: Wall}
}

func OwnedBy(playerID int) CellState {
	return CellState{Kind: Owned, PlayerID: playerID}
}

func OccupiedBy(playerID int) CellState {
	return CellState{Kind: Occupied, PlayerID: playerID}
}

// Blocking reports whether moving onto the cell damages the mover.
func (s CellState) Blocking() bool {
	return s.Kind == Wall || s.Kind == Owned
}

// Explodable reports whether a bomb blast clears the cell.
func (s CellState) Explodable() bool {
	return s.Kind == PowerUpCell || s.Kind == Wall || s.Kind == Owned
}

func (s CellState) Compare(other CellState) int {
	if c := compareInts(int(s.Kind), int(other.Kind)); c != 0 {
		return c
	}
	switch s.Kind {
	case PowerUpCell:
		return s.PowerUp.Compare(other.PowerUp)
	case Owned, Occupied:
		return compareInts(s.PlayerID, other.PlayerID)
	default:
		return 0
	}
}

func (s CellState) symbol() byte {
	switch s.Kind {
	case Empty:
		return '*'
	case PowerUpCell:
		return s.PowerUp.symbol()
	case Wall, Owned:
		return '#'
	case Occupied:
		id := strconv.Itoa(s.PlayerID)
		return id[len(id)-1]
	default:
		panic("unexpected cell kind")
	}
}

// Cell is a grid square. Its position never changes; its state is only
// updated by the owning board.
type Cell struct {
	position Position
	state    CellState
}

func (c Cell) Position() Position {
	return c.position
}

func (c Cell) State() CellState {
	return c.state
}

func (c Cell) Compare(other Cell) int {
	if p := c.position.Compare(other.position); p != 0 {
		return p
	}
	return c.state.Compare(other.state)
}
