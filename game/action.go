package game

// Action is a single step in one of the four grid directions.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
)

// Actions lists every action in clockwise order, starting from Up.
var Actions = [4]Action{Up, Right, Down, Left}

// Target returns the position one step from position in the action's
// direction.
func (a Action) Target(position Position) (Position, error) {
	switch a {
	case Up:
		return position.Offset(-1, 0)
	case Down:
		return position.Offset(1, 0)
	case Left:
		return position.Offset(0, -1)
	case Right:
		return position.Offset(0, 1)
	default:
		panic("unexpected action")
	}
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
