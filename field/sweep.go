package field

import "github.com/gammazero/deque"

// Sweep reveals (x, y). A mined cell reports a detonation and changes
// nothing. Otherwise the cell is swept and, if no mines surround it, the
// reveal cascades through every connected zero-count cell and its numbered
// border. Revealed cells are listed in depth-first pre-order starting at
// (x, y), each at most once. Cells swept by earlier calls are included when
// the cascade reaches them, but do not expand it.
func (field *Field) Sweep(x, y int) Outcome {
	if field.HasMine(x, y) {
		return Outcome{Detonated: true}
	}

	cascade := field.newCascade()
	cascade.flood(Point{x, y})
	return Outcome{Revealed: cascade.revealed}
}

// Chord sweeps every hidden, unflagged neighbor of a swept cell whose count
// of flagged neighbors equals its count of surrounding mines. The first
// mined neighbor ends the chord with a detonation; cells revealed before it
// stay revealed and are reported.
func (field *Field) Chord(x, y int) Outcome {
	if !field.IsSwept(x, y) {
		return Outcome{}
	}

	var hidden []Point
	numFlagged := 0
	field.eachNeighbor(x, y, func(nx, ny int) {
		c := field.cells[ny*field.size+nx]
		switch {
		case c.isFlagged():
			numFlagged++
		case !c.isSwept():
			hidden = append(hidden, Point{nx, ny})
		}
	})
	if numFlagged != field.MinesNearby(x, y) {
		return Outcome{}
	}

	cascade := field.newCascade()
	cascade.seen[field.index(x, y)] = true
	for _, neighbor := range hidden {
		if field.cells[neighbor.Y*field.size+neighbor.X].hasMine() {
			return Outcome{Detonated: true, Revealed: cascade.revealed}
		}
		cascade.flood(neighbor)
	}
	return Outcome{Revealed: cascade.revealed}
}

type cascade struct {
	field    *Field
	seen     []bool
	pending  *deque.Deque[Point]
	revealed []Reveal
}

func (field *Field) newCascade() *cascade {
	return &cascade{
		field:   field,
		seen:    make([]bool, len(field.cells)),
		pending: deque.New[Point](),
	}
}

// flood walks the reveal tree rooted at origin with an explicit stack.
// Neighbors are pushed in reverse so they pop in enumeration order, which
// keeps the output identical to a recursive pre-order walk.
func (cascade *cascade) flood(origin Point) {
	field := cascade.field
	cascade.pending.PushBack(origin)

	for cascade.pending.Len() > 0 {
		point := cascade.pending.PopBack()
		idx := field.index(point.X, point.Y)
		if cascade.seen[idx] || field.cells[idx].hasMine() {
			continue
		}
		cascade.seen[idx] = true

		wasSwept := field.cells[idx].isSwept()
		minesNearby := field.MinesNearby(point.X, point.Y)
		field.markSwept(idx)
		cascade.revealed = append(cascade.revealed, Reveal{
			X:           point.X,
			Y:           point.Y,
			MinesNearby: minesNearby,
		})

		if wasSwept || minesNearby > 0 {
			continue
		}

		neighbors := field.Neighbors(point.X, point.Y)
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !cascade.seen[neighbors[i].Y*field.size+neighbors[i].X] {
				cascade.pending.PushBack(neighbors[i])
			}
		}
	}
}
