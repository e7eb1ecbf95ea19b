package ui

import "gol-torus/internal/core"

// Lines lays out a parameter snapshot as panel text: a header per group
// followed by one indented "Label: value" line per parameter.
func Lines(snap core.ParameterSnapshot) []string {
	var out []string
	for i, group := range snap.Groups {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, group.Name)
		for _, p := range group.Params {
			out = append(out, "  "+p.Label+": "+p.Value)
		}
	}
	return out
}
