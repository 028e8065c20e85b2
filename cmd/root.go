package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"
	"github.com/they4kman/minefield/director/constraint"
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/field"
	"github.com/they4kman/minefield/game"
)

var (
	gameConfig   = game.NewGameConfig()
	directorName = "constraint"
	snapshotPath string
	maxSteps     int
	logLevel     = logLevelValue(logrus.InfoLevel)
	logFile      string
)

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Play computer-driven Minesweeper",
	Long: `minefield plays a game of Minesweeper with one of the built-in
directors and prints the final board as a snapshot.

Play a 16x16 board with 32 mines
	minefield

Replay a saved board from scratch with the random director
	minefield --snapshot saved.yaml --director random
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}

		if !cmd.Flags().Changed("seed") {
			gameConfig.Seed = time.Now().UnixNano()
		}

		director, err := newDirector(directorName)
		if err != nil {
			return err
		}
		gameConfig.Director = director

		if snapshotPath != "" {
			snapshot, err := readSnapshot(snapshotPath)
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
		}

		board, err := gameConfig.CreateBoard()
		if err != nil {
			return err
		}

		state, err := board.Play(maxSteps)
		if err != nil {
			return err
		}

		serialized, err := board.Snapshot().Serialize()
		if err != nil {
			return err
		}
		fmt.Printf("# result: %s\n%s", state, serialized)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newDirector(name string) (game.Director, error) {
	switch name {
	case "random":
		return &random.Director{}, nil
	case "constraint":
		return &constraint.Director{}, nil
	default:
		return nil, errors.Errorf("unknown director %q", name)
	}
}

func readSnapshot(path string) (*field.Snapshot, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	return field.LoadSnapshot(string(contents))
}

var loggers = []*logrus.Logger{game.Log, constraint.Log}

func setupLogging() error {
	for _, logger := range loggers {
		logger.SetLevel(logrus.Level(logLevel))
		logger.SetOutput(os.Stderr)
	}

	if logFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logrus.Level(logLevel),
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return errors.Wrap(err, "opening log file")
	}
	for _, logger := range loggers {
		logger.AddHook(hook)
	}
	return nil
}

type logLevelValue logrus.Level

func (level *logLevelValue) String() string {
	return logrus.Level(*level).String()
}

func (level *logLevelValue) Set(value string) error {
	parsed, err := logrus.ParseLevel(value)
	if err != nil {
		return err
	}
	*level = logLevelValue(parsed)
	return nil
}

func (level *logLevelValue) Type() string {
	return "logrus.Level"
}

func init() {
	rootCmd.Flags().IntVarP(&gameConfig.Size, "size", "s", gameConfig.Size, "Side length of the game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for the mine layout and director (random when unset)")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", directorName, "Director playing the game: random or constraint")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Load the board from a snapshot file")
	rootCmd.Flags().BoolVar(&gameConfig.LoadSnapshotFresh, "fresh", true, "Hide every cell of a loaded snapshot")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "save-snapshots", "", "Directory where final boards are saved")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "Stop after this many director steps (0 for no limit)")
	rootCmd.Flags().Var(&logLevel, "log-level", "Log level: trace, debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this rotated file")
}
