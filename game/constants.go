package game

type CellState int
type BoardState int

// CellState is what a player can see of a cell: its flag, or its mine count
// once swept.
const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
)

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "loss"
	case Won:
		return "win"
	default:
		return "other"
	}
}
