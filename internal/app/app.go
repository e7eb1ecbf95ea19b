//go:build ebiten

package app

import (
	"context"
	"errors"

	"gol-torus/internal/core"
	"gol-torus/internal/render"
	"gol-torus/internal/sims/life"
	"gol-torus/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/sync/errgroup"
)

// Game shows the frames a simulation goroutine publishes to an Exchange.
type Game struct {
	ctx      context.Context
	exchange *render.Exchange
	frame    render.Frame
	painter  *render.GridPainter
	hud      *ui.HUD

	rows, cols int
	scale      int
}

// New constructs a Game for a grid of the given size. It stops when ctx is
// done.
func New(ctx context.Context, ex *render.Exchange, size core.Size, cfg *Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		ctx:      ctx,
		exchange: ex,
		painter:  render.NewGridPainter(size.Rows, size.Cols),
		hud:      ui.NewHUD(cfg.HUDWidth),
		rows:     size.Rows,
		cols:     size.Cols,
		scale:    scale,
	}
}

// Update picks up the newest frame and handles quit keys.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.exchange.Latest(&g.frame) {
		g.painter.Upload(g.frame.Pix)
		g.hud.Update(g.frame.Params)
	}
	return nil
}

// Draw renders the current frame and the stats panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.cols*g.scale, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cols*g.scale + g.hud.Width(), max(g.rows*g.scale, g.hud.MinHeight())
}

// RunWindow plays s on a worker goroutine while ebiten runs the window on the
// calling goroutine. It returns when the window closes. Closing the window
// stops the worker at the next round boundary.
func RunWindow(s *life.State, cfg *Config) error {
	parent, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(parent)

	ex := &render.Exchange{}
	pacer := core.NewPacer(cfg.Delay)
	size := s.Size()
	eg.Go(func() error {
		return Simulate(ctx, s, ex, pacer)
	})

	game := New(ctx, ex, size, cfg)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("gol-torus — " + s.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	runErr := ebiten.RunGame(game)
	cancel()
	simErr := eg.Wait()

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return runErr
	}
	if simErr != nil && !errors.Is(simErr, context.Canceled) {
		return simErr
	}
	return nil
}
