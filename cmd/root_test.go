package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minefield/director/constraint"
	"github.com/they4kman/minefield/director/random"
)

func TestNewDirector(t *testing.T) {
	director, err := newDirector("random")
	require.NoError(t, err)
	assert.IsType(t, &random.Director{}, director)

	director, err = newDirector("constraint")
	require.NoError(t, err)
	assert.IsType(t, &constraint.Director{}, director)

	_, err = newDirector("oracle")
	assert.Error(t, err)
}

func TestLogLevelValue(t *testing.T) {
	level := logLevelValue(logrus.InfoLevel)
	require.NoError(t, level.Set("debug"))
	assert.Equal(t, "debug", level.String())
	assert.Error(t, level.Set("loud"))
}

func TestRootCommandPlaysSnapshot(t *testing.T) {
	dir := t.TempDir()
	snapshotFile := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(snapshotFile, []byte("seed: 3\nboard: |-\n  ###\n  ###\n  ##O\n"), 0666))

	rootCmd.SetArgs([]string{
		"--snapshot", snapshotFile,
		"--director", "constraint",
		"--log-level", "error",
		"--save-snapshots", filepath.Join(dir, "saved"),
	})
	require.NoError(t, rootCmd.Execute())

	entries, err := os.ReadDir(filepath.Join(dir, "saved"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
