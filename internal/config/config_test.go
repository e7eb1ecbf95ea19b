package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParseValid(t *testing.T) {
	in := "4 5\n7\n3\n0 0\n1 4\n3 2\n"
	cfg, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Rows != 4 || cfg.Cols != 5 || cfg.Iterations != 7 {
		t.Fatalf("header = %d %d %d", cfg.Rows, cfg.Cols, cfg.Iterations)
	}
	want := [][2]int{{0, 0}, {1, 4}, {3, 2}}
	if !slices.Equal(cfg.Live, want) {
		t.Fatalf("live = %v, want %v", cfg.Live, want)
	}

	g, err := cfg.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if !g.Alive(1, 4) || g.Alive(1, 3) {
		t.Fatal("grid does not reflect live cells")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"truncated pairs": "3 3 1 2\n0 0\n",
		"half pair":       "3 3 1 1\n0",
		"not a number":    "3 x 1 0",
		"zero rows":       "0 3 1 0",
		"negative iters":  "3 3 -1 0",
		"negative count":  "3 3 1 -2",
		"row too large":   "3 3 1 1\n3 0",
		"negative col":    "3 3 1 1\n0 -1",
		"huge live count": "1000000000 1000000000 1 1000000000000000000",
		"area overflow":   "4000000000 4000000000 1 5",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(in)); !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestParseIgnoresTrailingInput(t *testing.T) {
	cfg, err := Parse(strings.NewReader("2 2 1 1 1 1 9 9"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Live) != 1 {
		t.Fatalf("live = %v", cfg.Live)
	}
}

func TestWriteRoundTripsThroughGrid(t *testing.T) {
	src, err := Parse(strings.NewReader("3 4 2 2 0 3 2 1"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, err := src.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, FromGrid(g, src.Iterations)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse written config: %v", err)
	}
	if got.Rows != 3 || got.Cols != 4 || got.Iterations != 2 || !slices.Equal(got.Live, src.Live) {
		t.Fatalf("round trip = %+v, want %+v", got, src)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.txt")
	if err := os.WriteFile(path, []byte("5 5 10 3 1 2 2 2 3 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Live) != 3 {
		t.Fatalf("live = %v", cfg.Live)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}

func TestShippedConfigs(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "configs", "*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no sample configs found")
	}
	for _, path := range paths {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", path, err)
		}
		if _, err := cfg.Grid(); err != nil {
			t.Fatalf("%s: Grid: %v", path, err)
		}
	}
}
