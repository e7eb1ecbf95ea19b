package ui

import (
	"slices"
	"testing"

	"gol-torus/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{core.IntParam("rows", "Rows", 3)}},
		{Name: "Run", Params: []core.Parameter{core.IntParam("round", "Round", 2), core.IntParam("live", "Live cells", 5)}},
	}}
	want := []string{"World", "  Rows: 3", "", "Run", "  Round: 2", "  Live cells: 5"}
	if got := Lines(snap); !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
	if got := Lines(core.ParameterSnapshot{}); len(got) != 0 {
		t.Fatalf("empty snapshot produced %q", got)
	}
}
