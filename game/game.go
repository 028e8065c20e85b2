package game

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/field"
)

type GameConfig struct {
	Size     int
	NumMines int

	Seed int64

	// Snapshot to load board configuration from
	Snapshot *field.Snapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	Director Director

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Size:              16,
		NumMines:          field.DefaultMines,
		Seed:              time.Now().UnixNano(),
		Director:          nil,
		Snapshot:          nil,
		LoadSnapshotFresh: true,
	}
}

func (config GameConfig) createField() (*field.Field, error) {
	if config.Snapshot == nil {
		return field.NewWithConfig(field.Config{
			Size:  config.Size,
			Mines: config.NumMines,
			Seed:  config.Seed,
		})
	}
	return config.Snapshot.CreateField(config.LoadSnapshotFresh)
}

// CreateBoard starts a new game and hands it to the configured director.
func (config GameConfig) CreateBoard() (*Board, error) {
	minefield, err := config.createField()
	if err != nil {
		return nil, errors.Wrap(err, "creating field")
	}

	board := newBoard(minefield, config.Director, config.onGameEnd)
	if config.Director != nil {
		config.Director.Init(board)
	}

	Log.WithFields(logrus.Fields{
		"size":  minefield.Size(),
		"mines": minefield.NumMines(),
		"seed":  minefield.Seed(),
	}).Debug("created board")
	return board, nil
}

func (config GameConfig) onGameEnd(board *Board) {
	if config.SavedSnapshotsDir == "" {
		return
	}

	path, err := config.saveSnapshot(board, time.Now())
	if err != nil {
		Log.WithError(err).Error("could not save snapshot")
		return
	}
	Log.WithField("path", path).Info("saved snapshot")
}

func (config GameConfig) saveSnapshot(board *Board, t time.Time) (string, error) {
	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", errors.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	serialized, err := board.Snapshot().Serialize()
	if err != nil {
		return "", err
	}

	// TODO: prevent duplicate filenames
	path := filepath.Join(config.SavedSnapshotsDir, config.generateReplayFilename(board, t))
	if err := os.WriteFile(path, []byte(serialized), 0666); err != nil {
		return "", errors.Wrap(err, "writing snapshot")
	}
	return path, nil
}

func (config GameConfig) generateReplayFilename(board *Board, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	filenameBuilder.WriteString(board.state.String())
	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
