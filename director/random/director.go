package random

import (
	"github.com/they4kman/minefield/field"
	"github.com/they4kman/minefield/game"
)

// Director sweeps hidden cells in a random order, one per step.
type Director struct {
	board *game.Board
	order []field.Point
}

func (director *Director) Init(board *game.Board) {
	director.board = board

	size := board.Size()
	director.order = make([]field.Point, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			director.order = append(director.order, field.Point{X: x, Y: y})
		}
	}

	board.Rand().Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() []game.CellAction {
	for len(director.order) > 0 {
		cell := director.order[0]
		director.order = director.order[1:]

		if director.board.CellState(cell.X, cell.Y) == game.Unrevealed {
			return []game.CellAction{game.ClickAt(cell.X, cell.Y)}
		}
	}
	return nil
}
