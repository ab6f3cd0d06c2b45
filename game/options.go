package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// BoardOption customises a board during construction.
type BoardOption func(b *Board) error

// WithCell places state at position. Player cells are managed through
// WithSeat and cannot be placed directly.
func WithCell(position Position, state CellState) BoardOption {
	return func(b *Board) error {
		if state.Kind == Occupied {
			return fmt.Errorf("%w: cannot place a player at %s, use WithSeat", ErrInvalidBoard, position)
		}
		if state.Kind == Owned && (state.PlayerID < 0 || state.PlayerID >= len(b.players)) {
			return fmt.Errorf("%w: trail at %s belongs to unknown player %d", ErrInvalidBoard, position, state.PlayerID)
		}
		cell, err := b.Cell(position)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBoard, err)
		}
		if cell.State().Kind == Occupied {
			return fmt.Errorf("%w: %s is a player's seat", ErrInvalidBoard, position)
		}
		return b.setState(position, state)
	}
}

// WithSeat moves a player's starting position away from its corner.
func WithSeat(playerID int, position Position) BoardOption {
	return func(b *Board) error {
		player, err := b.Player(playerID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBoard, err)
		}
		cell, err := b.Cell(position)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBoard, err)
		}
		if s := cell.State(); s.Kind == Occupied && s.PlayerID != playerID {
			return fmt.Errorf("%w: %s is already taken by player %d", ErrInvalidBoard, position, s.PlayerID)
		}
		if err := b.setState(player.State.Position, EmptyState()); err != nil {
			return err
		}
		b.players[playerID].State.Position = position
		return b.setState(position, OccupiedBy(playerID))
	}
}

// WithScatter drops walls and power-ups on randomly chosen empty cells. The
// same seed always produces the same layout.
func WithScatter(seed uint64, walls, powerUps, boostDuration int) BoardOption {
	return func(b *Board) error {
		if walls < 0 || powerUps < 0 {
			return fmt.Errorf("%w: cannot scatter %d walls and %d power-ups", ErrInvalidBoard, walls, powerUps)
		}

		var free []Position
		for _, row := range b.cells {
			for _, cell := range row {
				if cell.state.Kind == Empty {
					free = append(free, cell.position)
				}
			}
		}
		if walls+powerUps > len(free) {
			return fmt.Errorf("%w: %d walls and %d power-ups do not fit in %d free cells", ErrInvalidBoard, walls, powerUps, len(free))
		}

		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(free), func(i, j int) {
			free[i], free[j] = free[j], free[i]
		})

		for _, position := range free[:walls] {
			b.cells[position.Row][position.Column].state = WallState()
		}
		for _, position := range free[walls : walls+powerUps] {
			var powerUp PowerUp
			switch PowerUpKind(rng.Intn(3)) {
			case DoubleSpeed:
				powerUp = NewDoubleSpeed(boostDuration)
			case Armor:
				powerUp = NewArmor()
			default:
				powerUp = NewBomb()
			}
			b.cells[position.Row][position.Column].state = PowerUpState(powerUp)
		}
		return nil
	}
}
