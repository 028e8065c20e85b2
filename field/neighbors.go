package field

// neighborOffsets lists the king-move offsets in the order neighbors are
// visited, both for mine counting and for cascades.
var neighborOffsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (field *Field) eachNeighbor(x, y int, visit func(nx, ny int)) {
	field.index(x, y)

	for _, offset := range neighborOffsets {
		nx, ny := x+offset.X, y+offset.Y
		if field.Contains(nx, ny) {
			visit(nx, ny)
		}
	}
}

// Neighbors returns the in-bounds cells adjacent to (x, y).
func (field *Field) Neighbors(x, y int) []Point {
	neighbors := make([]Point, 0, len(neighborOffsets))
	field.eachNeighbor(x, y, func(nx, ny int) {
		neighbors = append(neighbors, Point{nx, ny})
	})
	return neighbors
}
