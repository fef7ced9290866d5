package sim

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"cellsim/internal/config"
	"cellsim/internal/core"
)

// Cell is one autonomous agent. Its genome is sampled once at creation and
// never changes; position, sensors and actions are reworked every tick.
type Cell struct {
	GridSize int

	Alive bool
	Age   int

	// PhysDNA holds the raw physical genome; the named trait fields below
	// are derived from it at creation.
	PhysDNA  [config.NumTraits]float64
	DeathAge float64
	Sex      int
	Strength float64
	Velocity int

	// BrainDNA maps the sensor vector to the action vector
	// (num_actions x num_sensors).
	BrainDNA *mat.Dense

	X, Y int

	Sensors []float64
	Actions []float64

	rng *core.RNG
}

// NewCell samples a cell genome and starting position from the provided RNG.
func NewCell(cfg config.Config, rng *core.RNG) *Cell {
	c := &Cell{
		GridSize: cfg.GridSize,
		Alive:    true,
		Sensors:  make([]float64, cfg.NumSensors),
		Actions:  make([]float64, cfg.NumActions),
		rng:      rng,
	}

	for i := 0; i < config.NumTraits; i++ {
		c.PhysDNA[i] = rng.Normal(0, 1)*cfg.StdPhysics[i] + cfg.MeanPhysics[i]
	}
	c.DeathAge = c.PhysDNA[config.TraitDeathAge]
	c.Sex = int(math.Round(c.PhysDNA[config.TraitSex]))
	c.Strength = c.PhysDNA[config.TraitStrength]
	c.Velocity = int(math.Round(c.PhysDNA[config.TraitVelocity]))

	weights := make([]float64, cfg.NumActions*cfg.NumSensors)
	for i := range weights {
		weights[i] = rng.Normal(0, 0.01)
	}
	c.BrainDNA = mat.NewDense(cfg.NumActions, cfg.NumSensors, weights)

	c.X = int(math.Round(rng.Uniform(0, float64(cfg.GridSize-1))))
	c.Y = int(math.Round(rng.Uniform(0, float64(cfg.GridSize-1))))

	return c
}

// Move displaces the cell by its velocity along the axes its action channels
// drive: channels 0 and 1 push +x/+y, channels 2 and 3 push -x/-y. The
// result is clamped into [0, GridSize-1] on both axes.
func (c *Cell) Move() {
	dx := int(c.Actions[0]-c.Actions[2]) * c.Velocity
	dy := int(c.Actions[1]-c.Actions[3]) * c.Velocity
	c.X = clamp(c.X+dx, 0, c.GridSize-1)
	c.Y = clamp(c.Y+dy, 0, c.GridSize-1)
}

// UpdateSensors rebuilds the sensor vector: a constant bias, an independent
// random term, a slow global phase shared by every cell at the same clock,
// and the cell's normalized position. posMap is accepted so alternate cell
// rules can sense neighbours; the default sensor set does not use it.
func (c *Cell) UpdateSensors(clock int, posMap [][2]int) {
	c.Sensors[0] = 1
	c.Sensors[1] = c.rng.Float64()
	c.Sensors[2] = math.Sin(math.Pi * float64(clock) / 10)
	c.Sensors[3] = float64(c.X) / float64(c.GridSize)
	c.Sensors[4] = float64(c.Y) / float64(c.GridSize)
}

// Think projects the sensor vector through the genome weight matrix and
// squashes each channel to a binary action. Deterministic given the genome
// and sensors.
func (c *Cell) Think() {
	out := mat.NewVecDense(len(c.Actions), nil)
	out.MulVec(c.BrainDNA, mat.NewVecDense(len(c.Sensors), c.Sensors))
	for i := range c.Actions {
		c.Actions[i] = math.Round(sigmoid(out.AtVec(i)))
	}
}

// Live is the compound per-tick step: move on the previous decision, sense,
// decide, then age. A cell whose age reaches its death age dies; the flag
// never flips back.
func (c *Cell) Live(clock int, posMap [][2]int) {
	c.Move()
	c.UpdateSensors(clock, posMap)
	c.Think()
	c.Age++
	if float64(c.Age) >= c.DeathAge {
		c.Alive = false
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
