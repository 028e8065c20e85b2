package field

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// DefaultMines is the number of mines placed by New.
const DefaultMines = 32

type Config struct {
	Size  int
	Mines int
	Seed  int64
}

// Field is a square minesweeper grid. It is not safe for concurrent use.
type Field struct {
	size     int
	numMines int
	seed     int64
	cells    []cell

	numSwept uint
	numFlags uint
}

// New creates a size×size field holding DefaultMines randomly placed mines.
func New(size int) (*Field, error) {
	return NewWithConfig(Config{
		Size:  size,
		Mines: DefaultMines,
		Seed:  time.Now().UnixNano(),
	})
}

func NewWithConfig(config Config) (*Field, error) {
	mines := config.Mines
	field, err := newEmpty(config.Size)
	if err != nil {
		return nil, err
	}
	if mines < 0 || mines > len(field.cells) {
		return nil, errors.Wrapf(ErrTooManyMines, "%d mines on a %dx%d field", mines, config.Size, config.Size)
	}

	field.seed = config.Seed
	field.placeMines(mines, rand.New(rand.NewSource(config.Seed)))
	return field, nil
}

func newEmpty(size int) (*Field, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	return &Field{
		size:  size,
		cells: make([]cell, size*size),
	}, nil
}

// placeMines draws linear indexes until the requested number of distinct
// cells hold a mine.
func (field *Field) placeMines(count int, rng *rand.Rand) {
	for placed := 0; placed < count; {
		idx := rng.Intn(len(field.cells))
		if field.cells[idx].hasMine() {
			continue
		}
		field.cells[idx] |= mineBit
		placed++
	}
	field.numMines = count
}

func (field *Field) Size() int {
	return field.size
}

func (field *Field) NumMines() int {
	return field.numMines
}

// Seed returns the seed the mine layout was drawn from.
func (field *Field) Seed() int64 {
	return field.seed
}

func (field *Field) NumSwept() uint {
	return field.numSwept
}

func (field *Field) NumFlags() uint {
	return field.numFlags
}

// Cleared reports whether every cell without a mine has been swept.
func (field *Field) Cleared() bool {
	return int(field.numSwept) == len(field.cells)-field.numMines
}

func (field *Field) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < field.size && y < field.size
}

func (field *Field) index(x, y int) int {
	if !field.Contains(x, y) {
		panic(errors.Wrapf(ErrOutOfBounds, "(%d, %d) on a %dx%d field", x, y, field.size, field.size))
	}
	return y*field.size + x
}

func (field *Field) HasMine(x, y int) bool {
	return field.cells[field.index(x, y)].hasMine()
}

func (field *Field) IsSwept(x, y int) bool {
	return field.cells[field.index(x, y)].isSwept()
}

func (field *Field) IsFlagged(x, y int) bool {
	return field.cells[field.index(x, y)].isFlagged()
}

// ToggleFlag flips the flag on a hidden cell and returns whether it is now
// flagged. Swept cells cannot be flagged and always return false.
func (field *Field) ToggleFlag(x, y int) bool {
	c := &field.cells[field.index(x, y)]
	if c.isSwept() {
		return false
	}

	*c ^= flagBit
	if c.isFlagged() {
		field.numFlags++
	} else {
		field.numFlags--
	}
	return c.isFlagged()
}

// MinesNearby counts the mines among the neighbors of (x, y).
func (field *Field) MinesNearby(x, y int) int {
	numMines := 0
	field.eachNeighbor(x, y, func(nx, ny int) {
		if field.cells[ny*field.size+nx].hasMine() {
			numMines++
		}
	})
	return numMines
}

func (field *Field) markSwept(idx int) {
	c := &field.cells[idx]
	if c.isSwept() {
		return
	}
	if c.isFlagged() {
		field.numFlags--
	}
	*c = *c&^flagBit | sweptBit
	field.numSwept++
}
