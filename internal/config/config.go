// Package config reads and writes initial Game of Life configurations.
//
// The format is a whitespace-delimited stream of integers:
//
//	rows cols iterations liveCount
//	row col
//	...
//
// followed by liveCount zero-based (row, col) pairs. Cells not listed start
// dead.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gol-torus/internal/core"
)

// ErrMalformed reports input that does not follow the configuration format.
var ErrMalformed = errors.New("malformed configuration")

// maxPrealloc caps the live-cell slice capacity reserved from the header.
const maxPrealloc = 1 << 12

// Config is a parsed initial configuration.
type Config struct {
	Rows       int
	Cols       int
	Iterations int
	Live       [][2]int
}

// Load reads the configuration file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads a configuration from r and validates it.
func Parse(r io.Reader) (Config, error) {
	sc := &scanner{s: bufio.NewScanner(r)}
	sc.s.Split(bufio.ScanWords)

	var c Config
	var count int
	for _, field := range []struct {
		name string
		dst  *int
	}{
		{"rows", &c.Rows},
		{"cols", &c.Cols},
		{"iterations", &c.Iterations},
		{"live count", &count},
	} {
		v, err := sc.next(field.name)
		if err != nil {
			return Config{}, err
		}
		*field.dst = v
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return Config{}, fmt.Errorf("%w: grid %dx%d must be positive", ErrMalformed, c.Rows, c.Cols)
	}
	if c.Rows > math.MaxInt/c.Cols {
		return Config{}, fmt.Errorf("%w: grid %dx%d is too large", ErrMalformed, c.Rows, c.Cols)
	}
	if c.Iterations < 0 {
		return Config{}, fmt.Errorf("%w: negative iterations %d", ErrMalformed, c.Iterations)
	}
	if count < 0 {
		return Config{}, fmt.Errorf("%w: negative live count %d", ErrMalformed, count)
	}

	// count is untrusted until the pairs have actually been read.
	c.Live = make([][2]int, 0, min(count, maxPrealloc))
	for i := 0; i < count; i++ {
		row, err := sc.next(fmt.Sprintf("row of live cell %d", i))
		if err != nil {
			return Config{}, err
		}
		col, err := sc.next(fmt.Sprintf("col of live cell %d", i))
		if err != nil {
			return Config{}, err
		}
		if row < 0 || row >= c.Rows || col < 0 || col >= c.Cols {
			return Config{}, fmt.Errorf("%w: live cell %d at (%d,%d) outside %dx%d grid", ErrMalformed, i, row, col, c.Rows, c.Cols)
		}
		c.Live = append(c.Live, [2]int{row, col})
	}
	return c, nil
}

// Grid allocates the initial board described by c.
func (c Config) Grid() (*core.Grid, error) {
	g, err := core.NewGrid(c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}
	for _, rc := range c.Live {
		if err := g.SetAlive(rc[0], rc[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// FromGrid describes the live cells of g as a configuration running iters
// rounds.
func FromGrid(g *core.Grid, iters int) Config {
	c := Config{Rows: g.Rows(), Cols: g.Cols(), Iterations: iters}
	for r := 0; r < g.Rows(); r++ {
		for col := 0; col < g.Cols(); col++ {
			if g.Alive(r, col) {
				c.Live = append(c.Live, [2]int{r, col})
			}
		}
	}
	return c
}

// Write serializes c in the format Parse reads.
func Write(w io.Writer, c Config) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n%d\n%d\n", c.Rows, c.Cols, c.Iterations, len(c.Live))
	for _, rc := range c.Live {
		fmt.Fprintf(bw, "%d %d\n", rc[0], rc[1])
	}
	return bw.Flush()
}

type scanner struct {
	s   *bufio.Scanner
	pos int
}

func (sc *scanner) next(what string) (int, error) {
	if !sc.s.Scan() {
		if err := sc.s.Err(); err != nil {
			return 0, fmt.Errorf("reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: missing %s (token %d)", ErrMalformed, what, sc.pos+1)
	}
	sc.pos++
	v, err := strconv.Atoi(sc.s.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s at token %d: %q is not an integer", ErrMalformed, what, sc.pos, sc.s.Text())
	}
	return v, nil
}
