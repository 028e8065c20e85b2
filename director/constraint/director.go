package constraint

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/field"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/util/collections"
)

var Log = logrus.New()

// simplifyRounds bounds how many times observations are split per step
const simplifyRounds = 4

// Director plays by deducing mines from the numbers on swept cells, guessing
// only when no safe move is known.
type Director struct {
	board    *game.Board
	fallback random.Director

	observations []*Observation
}

// Observation states that exactly numMines of cells hold a mine.
type Observation struct {
	origin   *field.Point
	numMines int
	cells    collections.Set[field.Point]
}

func (observation Observation) String() string {
	cells := make([]string, 0, len(observation.cells))
	for _, cell := range sortedPoints(observation.cells) {
		cells = append(cells, fmt.Sprintf("(%d, %d)", cell.X, cell.Y))
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = fmt.Sprintf("(%d, %d)", observation.origin.X, observation.origin.Y)
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cells, ", "))
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.cells))
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.fallback.Init(board)
}

func (director *Director) Act() []game.CellAction {
	director.observe()
	for i := 0; i < simplifyRounds; i++ {
		if !director.simplifyObservations() {
			break
		}
	}

	actors := []func() []game.CellAction{
		director.actDeliberate,
		director.actLowestProbability,
		director.fallback.Act,
	}
	for _, actor := range actors {
		if actions := actor(); len(actions) > 0 {
			return actions
		}
	}
	return nil
}

// observe rebuilds one observation per swept numbered cell that still
// borders hidden cells.
func (director *Director) observe() {
	director.observations = nil

	size := director.board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			state := director.board.CellState(x, y)
			if state < game.Number1 || state > game.Number8 {
				continue
			}

			observation := &Observation{
				origin:   &field.Point{X: x, Y: y},
				numMines: int(state),
				cells:    make(collections.Set[field.Point]),
			}
			for _, neighbor := range director.board.Neighbors(x, y) {
				switch director.board.CellState(neighbor.X, neighbor.Y) {
				case game.Flag:
					observation.numMines--
				case game.Unrevealed:
					observation.cells.Add(neighbor)
				}
			}

			director.addObservation(observation)
		}
	}
}

// simplifyObservations derives new observations from intersecting pairs,
// returning whether any were added.
func (director *Director) simplifyObservations() bool {
	added := false

	observations := director.observations
	for _, observation := range observations {
		for _, intersectingObs := range observations {
			if intersectingObs == observation {
				continue
			}

			sharedCells, isSubset := observation.cells.IntersectionEx(intersectingObs.cells)
			if len(sharedCells) == 0 {
				continue
			}

			leftOnlyCells := intersectingObs.cells.Difference(observation.cells)
			occludedMines := intersectingObs.numMines - observation.numMines

			// At most observation.numMines of the shared cells are mines, so
			// when the rest cannot hold fewer they must all be mines.
			if isSubset || (occludedMines > 0 && occludedMines == len(leftOnlyCells)) {
				if director.addObservation(&Observation{
					numMines: occludedMines,
					cells:    leftOnlyCells,
				}) {
					added = true
				}
			}
		}
	}

	return added
}

func (director *Director) addObservation(observation *Observation) bool {
	// Don't add vacuous observations
	if len(observation.cells) == 0 {
		return false
	}

	// Don't add duplicates
	for _, otherObs := range director.observations {
		if observation.cells.Equal(otherObs.cells) {
			return false
		}
	}

	director.observations = append(director.observations, observation)
	return true
}

func (director *Director) actDeliberate() []game.CellAction {
	flags := make(collections.Set[field.Point])
	clicks := make(collections.Set[field.Point])

	for _, observation := range director.observations {
		switch observation.numMines {
		case len(observation.cells):
			for cell := range observation.cells {
				flags.Add(cell)
			}
		case 0:
			for cell := range observation.cells {
				clicks.Add(cell)
			}
		}
	}

	actions := make([]game.CellAction, 0, len(flags)+len(clicks))
	for _, cell := range sortedPoints(flags) {
		actions = append(actions, game.RightClickAt(cell.X, cell.Y))
	}
	for _, cell := range sortedPoints(clicks.Difference(flags)) {
		actions = append(actions, game.ClickAt(cell.X, cell.Y))
	}

	if len(actions) > 0 {
		Log.WithFields(logrus.Fields{
			"flags":  len(flags),
			"clicks": len(clicks),
		}).Debug("acting deliberately")
	}
	return actions
}

func (director *Director) actLowestProbability() []game.CellAction {
	lowestProbability := float32(math.Inf(1))
	cellProbabilities := make(map[field.Point]float32)

	for _, observation := range director.observations {
		probability := observation.MineProbability()

		for cell := range observation.cells {
			pastProbability, hasPastProbability := cellProbabilities[cell]
			if !hasPastProbability || probability < pastProbability {
				cellProbabilities[cell] = probability
			}
			if probability < lowestProbability {
				lowestProbability = probability
			}
		}
	}

	lowestProbabilityCells := make(collections.Set[field.Point])
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells.Add(cell)
		}
	}
	if len(lowestProbabilityCells) == 0 {
		return nil
	}

	candidates := sortedPoints(lowestProbabilityCells)
	director.board.Rand().Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	Log.WithFields(logrus.Fields{
		"probability": lowestProbability,
		"candidates":  len(candidates),
	}).Debug("guessing")
	return []game.CellAction{game.ClickAt(candidates[0].X, candidates[0].Y)}
}

// sortedPoints orders points row by row, so actions are reproducible for a
// given seed.
func sortedPoints(points collections.Set[field.Point]) []field.Point {
	sorted := make([]field.Point, 0, len(points))
	for point := range points {
		sorted = append(sorted, point)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return sorted
}
