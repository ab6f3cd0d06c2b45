package game

// PowerUpKind identifies the effect of a power-up.
type PowerUpKind int

const (
	DoubleSpeed PowerUpKind = iota
	Armor
	Bomb
)

// PowerUp is an item lying on a cell. Duration is only meaningful for
// DoubleSpeed.
type PowerUp struct {
	Kind     PowerUpKind
	Duration int
}

func NewDoubleSpeed(duration int) PowerUp {
	return PowerUp{Kind: DoubleSpeed, Duration: duration}
}

func NewArmor() PowerUp {
	return PowerUp{Kind: Armor}
}

func NewBomb() PowerUp {
	return PowerUp{Kind: Bomb}
}

// Value is the territory worth of a cell holding this power-up.
func (p PowerUp) Value() int {
	switch p.Kind {
	case DoubleSpeed:
		return DOUBLE_SPEED_VALUE
	case Armor:
		return ARMOR_VALUE
	case Bomb:
		return BOMB_VALUE
	default:
		panic("unexpected power-up kind")
	}
}

func (p PowerUp) symbol() byte {
	switch p.Kind {
	case DoubleSpeed:
		return 'S'
	case Armor:
		return 'A'
	case Bomb:
		return 'B'
	default:
		panic("unexpected power-up kind")
	}
}

func (p PowerUp) Compare(other PowerUp) int {
	if c := compareInts(int(p.Kind), int(other.Kind)); c != 0 {
		return c
	}
	return compareInts(p.Duration, other.Duration)
}
