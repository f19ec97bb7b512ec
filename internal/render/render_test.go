package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"lifeterm/pkg/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.RGBA{R: 255, A: 255}, color.RGBA{B: 10, A: 255})
	want := []byte{255, 0, 0, 255, 0, 0, 10, 255, 255, 0, 0, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("pixels = %v, want %v", buf, want)
	}
}

func TestTerminalFramePlain(t *testing.T) {
	g := core.NewGrid(3)
	g.Set(0, 0, core.Alive)
	g.Set(1, 2, core.Alive)

	var out bytes.Buffer
	term := NewTerminal(&out, TerminalOptions{Alive: "#", Dead: "."})
	if err := term.Frame(g, 4, 2); err != nil {
		t.Fatal(err)
	}
	want := "#..\n..#\n...\nPopulation at generation 4 is 2\n"
	if out.String() != want {
		t.Fatalf("frame = %q, want %q", out.String(), want)
	}
}

func TestTerminalFrameColorAndClear(t *testing.T) {
	g := core.NewGrid(2)
	g.Set(0, 0, core.Alive)
	g.Set(0, 1, core.Alive)

	var out bytes.Buffer
	term := NewTerminal(&out, TerminalOptions{Color: true, Clear: true})
	if err := term.Frame(g, 0, 2); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.HasPrefix(s, ansiClear) {
		t.Fatalf("frame does not start with clear sequence: %q", s)
	}
	if !strings.Contains(s, ansiRed+"**"+ansiReset+"\n") {
		t.Fatalf("live run not coloured as one span: %q", s)
	}
	if !strings.Contains(s, ansiBlue+"Population at generation 0 is 2"+ansiReset) {
		t.Fatalf("status line not coloured: %q", s)
	}
}

func TestStatusLine(t *testing.T) {
	if got := StatusLine(0, 9); got != "Population at generation 0 is 9" {
		t.Fatalf("StatusLine = %q", got)
	}
}
