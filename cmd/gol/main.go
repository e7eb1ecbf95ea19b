// Command gol runs Conway's Game of Life on a toroidal grid.
//
// Usage:
//
//	gol [flags] <config-file> <mode>
//
// mode 0 runs silently, 1 animates in the terminal and 2 opens a window
// (requires the ebiten build tag).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gol-torus/internal/app"
	"gol-torus/internal/config"
	"gol-torus/internal/core"
	"gol-torus/internal/render"
	"gol-torus/internal/sims/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gol: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: gol [flags] <config-file> <0|1|2>")
		fmt.Fprintln(flag.CommandLine.Output(), "(0: no display, 1: text animation, 2: window animation)")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	mode, err := app.ParseMode(flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}
	world, err := config.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("loading %s: %v", flag.Arg(0), err)
	}
	grid, err := world.Grid()
	if err != nil {
		log.Fatalf("allocating grid: %v", err)
	}
	state := life.NewState(grid, world.Iterations)

	start := time.Now()
	switch mode {
	case app.ModeNone:
		state.Run(nil)
	case app.ModeText:
		anim := render.NewTextAnimator(os.Stderr)
		if err := app.RunText(context.Background(), state, anim, core.NewPacer(cfg.Delay)); err != nil {
			log.Fatal(err)
		}
		if err := anim.Frame(state.Grid(), state.Round(), state.Live()); err != nil {
			log.Fatal(err)
		}
	case app.ModeWindow:
		if err := app.RunWindow(state, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}
	elapsed := time.Since(start)

	fmt.Printf("Total time: %0.3f seconds\n", elapsed.Seconds())
	fmt.Printf("Number of live cells after %d rounds: %d\n\n", state.Round(), state.Live())
}
