//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifeterm/internal/core"
	"lifeterm/internal/render"
	"lifeterm/internal/ui"
	"lifeterm/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	limit    int
	loaded   bool
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game that advances sim once per delay until limit
// generations have been reached. When loaded is set, R rewinds to the
// starting grid instead of refilling it at random.
func New(sim *life.Life, scale, limit int, delay time.Duration, seed int64, loaded bool) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim),
		pacer:    core.NewFixedStep(delay),
		onColor:  color.RGBA{R: 220, G: 40, B: 40, A: 255},
		offColor: color.Black,
		scale:    scale,
		limit:    limit,
		loaded:   loaded,
		seed:     seed,
	}
}

// Sim returns the simulation being displayed.
func (g *Game) Sim() *life.Life { return g.sim }

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if g.loaded {
			g.sim.Rewind()
			g.tickOnce = false
		} else {
			g.Reset(g.seed)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	done := g.sim.Generation() >= g.limit
	g.hud.Update(g.paused, done)

	if done {
		return nil
	}
	if g.tickOnce || (!g.paused && g.pacer.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + ui.PanelHeight
}
