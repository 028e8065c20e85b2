package game

type Director interface {
	/**
	 * Initialize the director for a fresh board
	 */
	Init(*Board)

	/**
	 * Decide the next actions to take. An empty result means the director
	 * has nothing left to try.
	 */
	Act() []CellAction
}
