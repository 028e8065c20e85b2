package game

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/field"
)

var Log = logrus.New()

var ErrGameOver = errors.New("game is over")

// Board is a single game session played on a field.
type Board struct {
	field *field.Field
	state BoardState
	rand  *rand.Rand

	// mine that ended the game, if it was lost
	losingCell *field.Point

	director  Director
	onGameEnd func(*Board)
}

func newBoard(minefield *field.Field, director Director, onGameEnd func(*Board)) *Board {
	board := &Board{
		field:     minefield,
		state:     Ongoing,
		rand:      rand.New(rand.NewSource(minefield.Seed())),
		director:  director,
		onGameEnd: onGameEnd,
	}
	if minefield.Cleared() {
		board.state = Won
	}
	return board
}

func (board *Board) Size() int {
	return board.field.Size()
}

func (board *Board) NumMines() int {
	return board.field.NumMines()
}

func (board *Board) NumFlags() uint {
	return board.field.NumFlags()
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) Rand() *rand.Rand {
	return board.rand
}

// LosingCell returns the mine that was swept to lose the game.
func (board *Board) LosingCell() (field.Point, bool) {
	if board.losingCell == nil {
		return field.Point{}, false
	}
	return *board.losingCell, true
}

func (board *Board) Neighbors(x, y int) []field.Point {
	return board.field.Neighbors(x, y)
}

// CellState reports what a player sees at (x, y), without exposing mines.
func (board *Board) CellState(x, y int) CellState {
	switch {
	case board.field.IsSwept(x, y):
		return CellState(board.field.MinesNearby(x, y))
	case board.field.IsFlagged(x, y):
		return Flag
	default:
		return Unrevealed
	}
}

func (board *Board) canPlay() bool {
	return board.state == Ongoing
}

// Apply performs action and returns the cells it revealed.
func (board *Board) Apply(action CellAction) ([]field.Reveal, error) {
	if !board.canPlay() {
		return nil, errors.Wrapf(ErrGameOver, "cannot %s", action)
	}
	if !board.field.Contains(action.X, action.Y) {
		return nil, errors.Wrapf(field.ErrOutOfBounds, "cannot %s", action)
	}

	log := Log.WithFields(logrus.Fields{
		"action": action.Action,
		"x":      action.X,
		"y":      action.Y,
	})

	var outcome field.Outcome
	switch action.Action {
	case Click:
		if board.field.IsFlagged(action.X, action.Y) {
			log.Debug("ignoring click on flagged cell")
			return nil, nil
		}
		outcome = board.field.Sweep(action.X, action.Y)
	case MiddleClick:
		outcome = board.field.Chord(action.X, action.Y)
	case RightClick:
		isFlagged := board.field.ToggleFlag(action.X, action.Y)
		log.WithField("flagged", isFlagged).Debug("toggled flag")
		return nil, nil
	default:
		return nil, errors.Errorf("unknown action %d", action.Action)
	}

	log.WithField("revealed", len(outcome.Revealed)).Debug("swept")

	switch {
	case outcome.Detonated:
		board.lose(action)
	case board.field.Cleared():
		board.win()
	}
	return outcome.Revealed, nil
}

func (board *Board) lose(action CellAction) {
	if action.Action == Click {
		board.losingCell = &field.Point{X: action.X, Y: action.Y}
	}
	board.state = Lost
	board.endGame()
}

func (board *Board) win() {
	board.state = Won
	board.endGame()
}

func (board *Board) endGame() {
	Log.WithFields(logrus.Fields{
		"result": board.state,
		"swept":  board.field.NumSwept(),
		"flags":  board.field.NumFlags(),
	}).Info("game ended")

	if board.onGameEnd != nil {
		board.onGameEnd(board)
	}
}

// Step asks the director for its next actions and applies them, stopping
// early once the game ends. It returns false when there was nothing to do.
func (board *Board) Step() (bool, error) {
	if board.director == nil || !board.canPlay() {
		return false, nil
	}

	actions := board.director.Act()
	for _, action := range actions {
		if !board.canPlay() {
			break
		}
		if _, err := board.Apply(action); err != nil {
			return false, errors.Wrap(err, "applying director action")
		}
	}
	return len(actions) > 0, nil
}

// Play lets the director act until the game ends, it runs out of moves, or
// maxSteps steps have been taken. A maxSteps of zero means no limit.
func (board *Board) Play(maxSteps int) (BoardState, error) {
	for step := 0; maxSteps == 0 || step < maxSteps; step++ {
		acted, err := board.Step()
		if err != nil {
			return board.state, err
		}
		if !acted {
			break
		}
	}
	return board.state, nil
}

func (board *Board) Snapshot() *field.Snapshot {
	return board.field.Snapshot()
}
