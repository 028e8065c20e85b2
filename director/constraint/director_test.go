package constraint

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minefield/field"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/util/collections"
)

func TestMain(m *testing.M) {
	Log.SetOutput(io.Discard)
	game.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func directorFor(t *testing.T, rows ...string) *Director {
	t.Helper()

	director := &Director{}
	config := game.NewGameConfig()
	config.Snapshot = &field.Snapshot{SerializedBoard: strings.Join(rows, "\n")}
	config.LoadSnapshotFresh = false
	config.Director = director

	_, err := config.CreateBoard()
	require.NoError(t, err)
	return director
}

func TestActFlagsCertainMines(t *testing.T) {
	director := directorFor(t,
		"O..",
		"...",
		"...",
	)

	assert.Equal(t, []game.CellAction{game.RightClickAt(0, 0)}, director.Act())
}

func TestActClicksCellsFreedBySubsets(t *testing.T) {
	director := directorFor(t,
		"O.#",
		"..#",
		"###",
	)

	assert.Equal(t, []game.CellAction{
		game.RightClickAt(0, 0),
		game.ClickAt(2, 0),
		game.ClickAt(2, 1),
		game.ClickAt(0, 2),
		game.ClickAt(1, 2),
		game.ClickAt(2, 2),
	}, director.Act())
}

func TestActGuessesWithoutObservations(t *testing.T) {
	director := directorFor(t,
		"##",
		"#O",
	)

	actions := director.Act()
	require.Len(t, actions, 1)
	assert.Equal(t, game.Click, actions[0].Action)
}

func TestObservationString(t *testing.T) {
	observation := Observation{
		origin:   &field.Point{X: 1, Y: 2},
		numMines: 1,
		cells:    collections.NewSet(field.Point{X: 2, Y: 2}, field.Point{X: 0, Y: 1}),
	}

	assert.Equal(t, "Obs[  (1, 2), 1 ε (0, 1), (2, 2)]", observation.String())
	assert.Equal(t, float32(0.5), observation.MineProbability())
}

func TestDirectorNeverFlagsSafeCells(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		config := game.NewGameConfig()
		config.Size = 9
		config.NumMines = 10
		config.Seed = seed
		config.Director = &Director{}

		board, err := config.CreateBoard()
		require.NoError(t, err)

		state, err := board.Play(0)
		require.NoError(t, err)
		assert.NotEqual(t, game.Ongoing, state, "seed %d", seed)
		assert.NotContains(t, board.Snapshot().SerializedBoard, "f", "seed %d", seed)
	}
}
