package render

import (
	"bytes"
	"io"
	"strconv"

	"lifeterm/pkg/core"
)

const (
	ansiClear = "\x1b[H\x1b[2J"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"
)

// TerminalOptions controls how frames are drawn.
type TerminalOptions struct {
	Alive string
	Dead  string
	Color bool
	Clear bool
}

// Terminal draws grids as text frames. Each frame is assembled in memory and
// written with a single Write call.
type Terminal struct {
	w    io.Writer
	opts TerminalOptions
	buf  bytes.Buffer
}

// NewTerminal returns a renderer writing to w.
func NewTerminal(w io.Writer, opts TerminalOptions) *Terminal {
	if opts.Alive == "" {
		opts.Alive = "*"
	}
	if opts.Dead == "" {
		opts.Dead = " "
	}
	return &Terminal{w: w, opts: opts}
}

// Frame draws g followed by the population line for the given generation.
func (t *Terminal) Frame(g *core.Grid, generation, population int) error {
	t.buf.Reset()
	if t.opts.Clear {
		t.buf.WriteString(ansiClear)
	}

	n := g.Size()
	cells := g.Cells()
	for row := 0; row < n; row++ {
		inRun := false
		for _, c := range cells[row*n : (row+1)*n] {
			if c != 0 {
				if t.opts.Color && !inRun {
					t.buf.WriteString(ansiRed)
					inRun = true
				}
				t.buf.WriteString(t.opts.Alive)
				continue
			}
			if inRun {
				t.buf.WriteString(ansiReset)
				inRun = false
			}
			t.buf.WriteString(t.opts.Dead)
		}
		if inRun {
			t.buf.WriteString(ansiReset)
		}
		t.buf.WriteByte('\n')
	}

	t.writeStatus(generation, population)
	_, err := t.w.Write(t.buf.Bytes())
	return err
}

func (t *Terminal) writeStatus(generation, population int) {
	if t.opts.Color {
		t.buf.WriteString(ansiBlue)
	}
	t.buf.WriteString(StatusLine(generation, population))
	if t.opts.Color {
		t.buf.WriteString(ansiReset)
	}
	t.buf.WriteByte('\n')
}

// StatusLine formats the census line shown under every frame.
func StatusLine(generation, population int) string {
	return "Population at generation " + strconv.Itoa(generation) + " is " + strconv.Itoa(population)
}
