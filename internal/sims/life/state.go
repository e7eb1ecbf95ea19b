package life

import "gol-torus/internal/core"

// RoundHook observes the state after each completed round. The grid may be
// read during the call but must not be retained or modified.
type RoundHook func(s *State)

// State is a single Game of Life run: the board, how many rounds to play,
// how many have been played and the live-cell count after the last one.
type State struct {
	grid    *core.Grid
	stepper Stepper
	iters   int
	round   int
	live    int
}

// NewState takes ownership of g and prepares a run of iters rounds.
func NewState(g *core.Grid, iters int) *State {
	if iters < 0 {
		iters = 0
	}
	s := &State{grid: g, iters: iters}
	s.live = CountLive(g)
	return s
}

// Name returns the simulation identifier.
func (s *State) Name() string { return "life" }

// Grid exposes the board for rendering between rounds.
func (s *State) Grid() *core.Grid { return s.grid }

// Size returns the grid dimensions.
func (s *State) Size() core.Size { return s.grid.Size() }

// Iterations returns the configured number of rounds.
func (s *State) Iterations() int { return s.iters }

// Round returns how many rounds have completed.
func (s *State) Round() int { return s.round }

// Live returns the live-cell count as of the last completed round.
func (s *State) Live() int { return s.live }

// Done reports whether every configured round has run.
func (s *State) Done() bool { return s.round >= s.iters }

// RunRound plays one round and refreshes the live count. It returns false
// without doing anything once the run is finished.
func (s *State) RunRound() bool {
	if s.Done() {
		return false
	}
	s.stepper.Step(s.grid)
	s.live = CountLive(s.grid)
	s.round++
	return true
}

// Run plays the remaining rounds, calling hook after each one when it is
// non-nil.
func (s *State) Run(hook RoundHook) {
	for s.RunRound() {
		if hook != nil {
			hook(s)
		}
	}
}

// Parameters reports the run's dimensions and progress.
func (s *State) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", s.grid.Rows()),
				core.IntParam("cols", "Cols", s.grid.Cols()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("round", "Round", s.round),
				core.IntParam("iters", "Rounds", s.iters),
				core.IntParam("live", "Live cells", s.live),
			},
		},
	}}
}
