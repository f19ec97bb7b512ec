package life

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"lifeterm/pkg/core"
)

// Load decodes a sparse coordinate list into an n×n grid. Each line must hold
// exactly two non-negative integers "row col" marking a live cell. Any bad
// line aborts the whole load and no grid is returned.
func Load(r io.Reader, n int) (*core.Grid, error) {
	return load(r, n, "")
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string, n int) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	return load(f, n, path)
}

func load(r io.Reader, n int, path string) (*core.Grid, error) {
	g := core.NewGrid(n)
	br := bufio.NewReader(r)
	line := 0
	for {
		// ReadString has no line length limit.
		text, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, &IOError{Op: "read", Path: path, Err: readErr}
		}
		if text == "" && readErr == io.EOF {
			return g, nil
		}
		line++
		text = strings.TrimRight(text, "\r\n")
		row, col, err := parsePair(text)
		if err != nil {
			return nil, &FormatError{Line: line, Text: text, Err: err}
		}
		if !g.InBounds(row, col) {
			return nil, &RangeError{Line: line, Row: row, Col: col, Size: g.Size()}
		}
		g.Set(row, col, core.Alive)
		if readErr == io.EOF {
			return g, nil
		}
	}
}

var errFieldCount = errors.New("want exactly two fields")

func parsePair(text string) (int, int, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, errFieldCount
	}
	row, err := strconv.ParseUint(fields[0], 10, strconv.IntSize-1)
	if err != nil {
		return 0, 0, err
	}
	col, err := strconv.ParseUint(fields[1], 10, strconv.IntSize-1)
	if err != nil {
		return 0, 0, err
	}
	return int(row), int(col), nil
}

// Save writes the live cells of g in row-major order, one "row col" pair per
// line, without a trailing newline.
func Save(w io.Writer, g *core.Grid) error {
	return save(w, g, "")
}

// SaveFile creates (or truncates) path and writes g to it with Save.
func SaveFile(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	if err := save(f, g, path); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func save(w io.Writer, g *core.Grid, path string) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)
	for i, cell := range g.Live() {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = strconv.AppendInt(buf, int64(cell[0]), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(cell[1]), 10)
		if _, err := bw.Write(buf); err != nil {
			return &IOError{Op: "write", Path: path, Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
