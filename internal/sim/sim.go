// Package sim implements the cell population simulation: agent genomes and
// per-tick behavior, the environment that orchestrates them, and the named
// rule registries that select pluggable tick behaviors.
package sim

import (
	"errors"
	"fmt"

	"cellsim/internal/config"
	"cellsim/internal/core"
)

// Outcome classifies how a run loop finished.
type Outcome int

const (
	// OutcomeCompleted means all configured iterations ran.
	OutcomeCompleted Outcome = iota
	// OutcomeExtinct means the population died out before the last iteration.
	OutcomeExtinct
	// OutcomeFault means a rule reported an unexpected error.
	OutcomeFault
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeExtinct:
		return "extinct"
	case OutcomeFault:
		return "fault"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// FrameFunc receives the occupancy grid and clock after each iteration.
type FrameFunc func(grid *core.ByteGrid, clock int)

// Simulation is the top-level driver: one environment, one simulation rule,
// and the fixed iteration count from the configuration. Both rules are
// resolved once at construction; there is no lookup at call time.
type Simulation struct {
	cfg  config.Config
	rule SimRule
	env  *Environment
	seed int64
	err  error
}

// New resolves the named rules and builds the environment. An unknown rule
// name in either registry aborts construction with an error that lists the
// valid names for that registry.
func New(cfg config.Config, simRuleName, cellRuleName string, seed int64) (*Simulation, error) {
	rule, err := ResolveSimRule(simRuleName)
	if err != nil {
		return nil, err
	}
	cellRule, err := ResolveCellRule(cellRuleName)
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:  cfg,
		rule: rule,
		seed: seed,
	}
	s.env = NewEnvironment(cfg, cellRule, seed)
	return s, nil
}

// Run executes the configured number of iterations, handing each completed
// frame to the callback. Extinction terminates the loop early and is
// reported through the outcome rather than as an error.
func (s *Simulation) Run(frame FrameFunc) Outcome {
	for i := 0; i < s.cfg.NumSim; i++ {
		if err := s.rule(s.env); err != nil {
			if errors.Is(err, ErrExtinct) {
				return OutcomeExtinct
			}
			s.err = err
			return OutcomeFault
		}
		s.env.RecomputeGrid()
		if frame != nil {
			frame(s.env.Grid(), s.env.Clock())
		}
	}
	return OutcomeCompleted
}

// Err returns the rule error behind an OutcomeFault, if any.
func (s *Simulation) Err() error { return s.err }

// Env exposes the environment, mainly for tests and the HUD.
func (s *Simulation) Env() *Environment { return s.env }

// Clock reports the environment's current tick count.
func (s *Simulation) Clock() int { return s.env.Clock() }

// Population reports the number of live cells.
func (s *Simulation) Population() int { return len(s.env.Cells()) }

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "cellsim" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size {
	return core.Size{W: s.cfg.GridSize, H: s.cfg.GridSize}
}

// Cells exposes the occupancy grid's backing buffer for rendering.
func (s *Simulation) Cells() []uint8 { return s.env.Grid().Cells() }

// Reset rebuilds the population from the provided seed. A zero seed reuses
// the seed the simulation was constructed with.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.seed
	} else {
		s.seed = seed
	}
	s.env = NewEnvironment(s.cfg, s.env.cellRule, seed)
	s.env.RecomputeGrid()
}

// Step advances one rule invocation, for front ends that drive the
// simulation a frame at a time. After extinction it leaves the grid empty
// and becomes a no-op.
func (s *Simulation) Step() {
	_ = s.rule(s.env)
	s.env.RecomputeGrid()
}
