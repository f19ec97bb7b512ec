package life

import "lifeterm/pkg/core"

// Life implements Conway's Game of Life on an edge-bounded square grid.
type Life struct {
	cur        *core.Grid
	nxt        *core.Grid
	start      *core.Grid
	generation int
}

// New returns a Life simulation with an all-dead n×n grid.
func New(n int) *Life {
	return FromGrid(core.NewGrid(n))
}

// FromGrid wraps an existing grid as generation 0. The simulation takes
// ownership of g.
func FromGrid(g *core.Grid) *Life {
	return &Life{cur: g, nxt: core.NewGrid(g.Size()), start: g.Clone()}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.Size(), H: l.cur.Size()} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid returns the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns how many steps have been taken since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population returns the census of the current generation.
func (l *Life) Population() int { return Census(l.cur) }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, l.cur.Cells())
	l.generation = 0
}

// Rewind restores the grid the simulation was created from.
func (l *Life) Rewind() {
	copy(l.cur.Cells(), l.start.Cells())
	l.generation = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Advance(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// InitRandom returns an n×n grid where every cell is independently alive with
// probability one half.
func InitRandom(n int, seed int64) *core.Grid {
	g := core.NewGrid(n)
	core.FillBinary(core.NewRNG(seed).Source(), g.Cells())
	return g
}

// Census counts the live cells in g.
func Census(g *core.Grid) int {
	count := 0
	for _, c := range g.Cells() {
		if c == uint8(core.Alive) {
			count++
		}
	}
	return count
}

// NextGeneration computes the successor of g into a freshly allocated grid.
// g is only read.
func NextGeneration(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.Size())
	Advance(next, g)
	return next
}

// Advance writes the successor of src into dst. Both grids must share a
// dimension and must not be the same buffer.
func Advance(dst, src *core.Grid) {
	if dst == src {
		panic("life: Advance requires distinct source and destination grids")
	}
	n := src.Size()
	if dst.Size() != n {
		panic("life: Advance requires grids of equal size")
	}
	in := src.Cells()
	out := dst.Cells()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				r := row + dr
				if r < 0 || r >= n {
					continue
				}
				for dc := -1; dc <= 1; dc++ {
					c := col + dc
					if (dr == 0 && dc == 0) || c < 0 || c >= n {
						continue
					}
					neighbors += int(in[r*n+c])
				}
			}
			idx := row*n + col
			out[idx] = 0
			if rule(in[idx] == 1, neighbors) {
				out[idx] = 1
			}
		}
	}
}

// rule is B3/S23.
func rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Diff counts the cells born and the cells that died between two consecutive
// generations of equal size.
func Diff(prev, next *core.Grid) (births, deaths int) {
	a, b := prev.Cells(), next.Cells()
	for i := range a {
		switch {
		case a[i] == 0 && b[i] == 1:
			births++
		case a[i] == 1 && b[i] == 0:
			deaths++
		}
	}
	return births, deaths
}
