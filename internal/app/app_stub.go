//go:build !ebiten

package app

import (
	"errors"

	"gol-torus/internal/sims/life"
)

// ErrNoWindow is returned by RunWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("window mode requires building with the 'ebiten' tag (go build -tags ebiten ./cmd/gol)")

// RunWindow always fails in the headless build.
func RunWindow(*life.State, *Config) error {
	return ErrNoWindow
}
