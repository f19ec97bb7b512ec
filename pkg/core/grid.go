package core

import "fmt"

// Cell is the binary state of a single grid cell.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = 0
	// Alive marks a populated cell.
	Alive Cell = 1
)

// Grid stores an N×N board of cells in row-major order. Everything outside
// [0, N-1]² is treated as permanently dead.
type Grid struct {
	n    int
	data []uint8
}

// NewGrid allocates an all-dead grid of dimension n.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{n: n, data: make([]uint8, n*n)}
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.n }

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.n + col }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// Get returns the state of the cell at (row, col).
func (g *Grid) Get(row, col int) Cell {
	g.mustBeInBounds(row, col)
	return Cell(g.data[g.Index(row, col)])
}

// Set updates the cell at (row, col).
func (g *Grid) Set(row, col int, state Cell) {
	g.mustBeInBounds(row, col)
	g.data[g.Index(row, col)] = uint8(state)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, data: append([]uint8(nil), g.data...)}
}

// Equal reports whether both grids have the same dimension and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for i, c := range g.data {
		if c != other.data[i] {
			return false
		}
	}
	return true
}

// Live lists the coordinates of live cells in row-major order.
func (g *Grid) Live() [][2]int {
	var out [][2]int
	for row := 0; row < g.n; row++ {
		base := row * g.n
		for col := 0; col < g.n; col++ {
			if g.data[base+col] != 0 {
				out = append(out, [2]int{row, col})
			}
		}
	}
	return out
}

func (g *Grid) mustBeInBounds(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.n, g.n))
	}
}
