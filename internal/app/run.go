package app

import (
	"context"
	"fmt"
	"strconv"

	"gol-torus/internal/core"
	"gol-torus/internal/render"
	"gol-torus/internal/sims/life"
)

// Mode selects how rounds are displayed.
type Mode int

const (
	// ModeNone runs without output.
	ModeNone Mode = iota
	// ModeText animates rounds as text frames in the terminal.
	ModeText
	// ModeWindow animates rounds in an ebiten window.
	ModeWindow
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeText:
		return "text"
	case ModeWindow:
		return "window"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode parses the numeric mode argument (0, 1 or 2).
func ParseMode(s string) (Mode, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < int(ModeNone) || n > int(ModeWindow) {
		return 0, fmt.Errorf("invalid mode %q: want 0 (none), 1 (text) or 2 (window)", s)
	}
	return Mode(n), nil
}

// RunText plays the remaining rounds, drawing each one with anim and waiting
// on pacer in between.
func RunText(ctx context.Context, s *life.State, anim *render.TextAnimator, pacer *core.Pacer) error {
	for s.RunRound() {
		if err := anim.Frame(s.Grid(), s.Round(), s.Live()); err != nil {
			return fmt.Errorf("round %d: %w", s.Round(), err)
		}
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Simulate is the body of the window mode's simulation goroutine. It
// publishes the initial board and then every completed round to ex. It
// returns ctx's error if ctx ends before the run does.
func Simulate(ctx context.Context, s *life.State, ex *render.Exchange, pacer *core.Pacer) error {
	buf := render.NewColorBuffer(s.Size())
	publish := func() {
		buf.Fill(s.Grid())
		ex.Publish(buf.Pix, s.Parameters())
	}

	publish()
	for s.RunRound() {
		publish()
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}
