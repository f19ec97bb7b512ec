package life

import "fmt"

// FormatError reports a line that is not exactly two non-negative integers.
type FormatError struct {
	Line int
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: malformed coordinate pair %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: malformed coordinate pair %q", e.Line, e.Text)
}

func (e *FormatError) Unwrap() error { return e.Err }

// RangeError reports a coordinate that falls outside the grid.
type RangeError struct {
	Line     int
	Row, Col int
	Size     int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("line %d: cell (%d,%d) outside %dx%d grid", e.Line, e.Row, e.Col, e.Size, e.Size)
}

// IOError reports a failure to open, read, create or write a grid file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s grid: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s grid %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
