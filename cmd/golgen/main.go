// Command golgen writes a random initial configuration for gol to stdout.
package main

import (
	"flag"
	"log"
	"os"

	"gol-torus/internal/config"
	"gol-torus/internal/core"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("golgen: ")

	rows := flag.Int("rows", 32, "grid rows")
	cols := flag.Int("cols", 32, "grid columns")
	iters := flag.Int("iters", 100, "rounds to run")
	density := flag.Float64("density", 0.25, "probability that a cell starts alive")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	if *iters < 0 {
		log.Fatalf("iters must be non-negative, got %d", *iters)
	}
	if *density < 0 || *density > 1 {
		log.Fatalf("density must be in [0, 1], got %g", *density)
	}
	g, err := core.NewGrid(*rows, *cols)
	if err != nil {
		log.Fatal(err)
	}
	core.NewRNG(*seed).Fill(g, *density)

	if err := config.Write(os.Stdout, config.FromGrid(g, *iters)); err != nil {
		log.Fatal(err)
	}
}
