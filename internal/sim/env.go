package sim

import (
	"cellsim/internal/config"
	"cellsim/internal/core"
)

// Result reports what a single environment update accomplished.
type Result int

const (
	// ResultContinue means the tick completed with live cells remaining.
	ResultContinue Result = iota
	// ResultEnded means no live cells remained; nothing was mutated.
	ResultEnded
)

// Environment owns the live cell population, the global clock and the
// derived occupancy grid, and fans per-tick operations out to every cell.
type Environment struct {
	cfg      config.Config
	clock    int
	cells    []*Cell
	grid     *core.ByteGrid
	posMap   [][2]int
	cellRule CellRule
	rng      *core.RNG
}

// NewEnvironment creates the full starting population in one pass. Cells are
// never created afterwards.
func NewEnvironment(cfg config.Config, rule CellRule, seed int64) *Environment {
	e := &Environment{
		cfg:      cfg,
		grid:     core.NewByteGrid(cfg.GridSize, cfg.GridSize),
		cellRule: rule,
		rng:      core.NewRNG(seed),
	}
	e.cells = make([]*Cell, 0, cfg.NCell)
	for i := 0; i < cfg.NCell; i++ {
		e.cells = append(e.cells, NewCell(cfg, e.rng))
	}
	return e
}

// Broadcast invokes op on every live cell. It is the single fan-out
// mechanism used by both rule layers.
func (e *Environment) Broadcast(op func(*Cell)) {
	for _, c := range e.cells {
		op(c)
	}
}

// Update runs one tick: the bound cell rule against every cell with the
// pre-move position snapshot, a clock advance, a decision refresh so actions
// reflect post-move state, and a prune of dead cells. On an empty population
// it returns ResultEnded without touching the clock or broadcasting.
func (e *Environment) Update() Result {
	if len(e.cells) == 0 {
		return ResultEnded
	}

	clock, posMap := e.clock, e.posMap
	e.Broadcast(func(c *Cell) { e.cellRule(c, clock, posMap) })
	e.clock++
	e.Broadcast((*Cell).Think)

	live := e.cells[:0]
	for _, c := range e.cells {
		if c.Alive {
			live = append(live, c)
		}
	}
	e.cells = live
	return ResultContinue
}

// RecomputeGrid rebuilds the occupancy grid and position map from the live
// population. Cells sharing a coordinate collapse to a single marker.
func (e *Environment) RecomputeGrid() {
	e.grid.Clear()
	e.posMap = e.posMap[:0]
	for _, c := range e.cells {
		e.posMap = append(e.posMap, [2]int{c.X, c.Y})
		e.grid.Mark(c.X, c.Y)
	}
}

// Grid exposes the occupancy grid for rendering.
func (e *Environment) Grid() *core.ByteGrid { return e.grid }

// Clock reports the current tick count.
func (e *Environment) Clock() int { return e.clock }

// Cells exposes the live population.
func (e *Environment) Cells() []*Cell { return e.cells }

// PositionMap exposes the last recomputed list of live cell coordinates.
func (e *Environment) PositionMap() [][2]int { return e.posMap }
