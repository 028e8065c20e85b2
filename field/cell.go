package field

// cell packs the three per-cell flags into one byte.
type cell uint8

const (
	mineBit cell = 1 << iota
	sweptBit
	flagBit
)

func (c cell) hasMine() bool {
	return c&mineBit != 0
}

func (c cell) isSwept() bool {
	return c&sweptBit != 0
}

func (c cell) isFlagged() bool {
	return c&flagBit != 0
}

// Point is a zero-based grid coordinate.
type Point struct {
	X, Y int
}

// Reveal is a cell made visible by a sweep, along with the number of mines
// surrounding it.
type Reveal struct {
	X, Y        int
	MinesNearby int
}

// Outcome is the result of a sweep. When Detonated is set, the swept cell
// held a mine and no state was changed for it.
type Outcome struct {
	Detonated bool
	Revealed  []Reveal
}
