package field

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Snapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (c cell) serialize() byte {
	switch {
	case c.hasMine():
		if c.isFlagged() {
			return 'F'
		}
		return 'O'
	case c.isFlagged():
		return 'f'
	case c.isSwept():
		return '.'
	default:
		return '#'
	}
}

func deserializeCell(c byte) (cell, bool) {
	switch c {
	case 'F':
		return mineBit | flagBit, true
	case 'O':
		return mineBit, true
	case 'f':
		return flagBit, true
	case '.':
		return sweptBit, true
	case '#':
		return 0, true
	default:
		return 0, false
	}
}

// Snapshot captures the mine layout and the swept and flagged cells.
func (field *Field) Snapshot() *Snapshot {
	var board strings.Builder
	for y := 0; y < field.size; y++ {
		if y > 0 {
			board.WriteByte('\n')
		}
		for x := 0; x < field.size; x++ {
			board.WriteByte(field.cells[y*field.size+x].serialize())
		}
	}

	return &Snapshot{
		Seed:            field.seed,
		SerializedBoard: board.String(),
	}
}

func (snapshot *Snapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "marshalling snapshot")
	}
	return string(out), nil
}

// CreateField rebuilds the field described by the snapshot. When fresh is
// set, only the mine layout is kept and every cell starts hidden.
func (snapshot *Snapshot) CreateField(fresh bool) (*Field, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")

	field, err := newEmpty(len(rows))
	if err != nil || rows[0] == "" {
		return nil, errors.Wrap(ErrMalformedSnapshot, "empty board")
	}
	field.seed = snapshot.Seed

	for y, row := range rows {
		if len(row) != field.size {
			return nil, errors.Wrapf(ErrMalformedSnapshot, "row %d has %d cells, expected %d", y, len(row), field.size)
		}

		for x := 0; x < len(row); x++ {
			c, ok := deserializeCell(row[x])
			if !ok {
				return nil, errors.Wrapf(ErrMalformedSnapshot, "unknown cell %q at (%d, %d)", row[x], x, y)
			}
			if fresh {
				c &= mineBit
			}

			field.cells[y*field.size+x] = c
			switch {
			case c.hasMine():
				field.numMines++
			case c.isSwept():
				field.numSwept++
			}
			if c.isFlagged() {
				field.numFlags++
			}
		}
	}

	return field, nil
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "unmarshalling snapshot")
	}
	return &snapshot, nil
}
