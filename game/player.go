package game

import "fmt"

// PlayerState is either alive (with a position and counters) or dead. The
// zero value is a dead player.
type PlayerState struct {
	Alive    bool
	Position Position
	Boost    int // Extra action granted per turn while > 0
	Armor    int // Hits absorbed before a wall or trail is fatal
}

func AliveAt(position Position) PlayerState {
	return PlayerState{Alive: true, Position: position}
}

// Player is one entry of the board's roster, indexed by ID.
type Player struct {
	ID    int
	State PlayerState
}

func NewPlayer(id int, position Position) Player {
	return Player{ID: id, State: AliveAt(position)}
}

func (p *Player) IsAlive() bool {
	return p.State.Alive
}

// GrantBoost adds duration to the boost counter. The counter is never consumed.
func (p *Player) GrantBoost(duration int) error {
	if !p.State.Alive {
		return fmt.Errorf("cannot boost player %d: %w", p.ID, ErrDeadActor)
	}
	p.State.Boost += duration
	return nil
}

func (p *Player) GrantArmor() error {
	if !p.State.Alive {
		return fmt.Errorf("cannot armor player %d: %w", p.ID, ErrDeadActor)
	}
	p.State.Armor++
	return nil
}

// TakeDamage consumes one armor, or kills the player when none is left.
func (p *Player) TakeDamage() error {
	if !p.State.Alive {
		return fmt.Errorf("cannot damage player %d: %w", p.ID, ErrDeadActor)
	}
	if p.State.Armor > 0 {
		p.State.Armor--
		return nil
	}
	p.kill()
	return nil
}

func (p *Player) kill() {
	p.State = PlayerState{}
}

// Compare orders players by id, then living before dead, then by position
// and counters.
func (p Player) Compare(other Player) int {
	if c := compareInts(p.ID, other.ID); c != 0 {
		return c
	}
	a, b := p.State, other.State
	if a.Alive != b.Alive {
		if a.Alive {
			return -1
		}
		return 1
	}
	if !a.Alive {
		return 0
	}
	if c := a.Position.Compare(b.Position); c != 0 {
		return c
	}
	if c := compareInts(a.Boost, b.Boost); c != 0 {
		return c
	}
	return compareInts(a.Armor, b.Armor)
}

func (p Player) String() string {
	if !p.State.Alive {
		return fmt.Sprintf("Player(%d: DEAD)", p.ID)
	}
	return fmt.Sprintf("Player(%d: %d-%d @%s)", p.ID, p.State.Boost, p.State.Armor, p.State.Position)
}
