package sim

import (
	"testing"

	"cellsim/internal/config"
	"cellsim/internal/core"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.GridSize = 5
	cfg.NCell = 1
	cfg.NumSim = 10
	return cfg
}

func TestMoveStaysInBounds(t *testing.T) {
	cfg := testConfig()
	rng := core.NewRNG(7)
	c := NewCell(cfg, rng)
	c.Velocity = 3

	for i := 0; i < 200; i++ {
		for j := range c.Actions {
			c.Actions[j] = float64(rng.IntN(2))
		}
		c.Move()
		if c.X < 0 || c.X > cfg.GridSize-1 {
			t.Fatalf("step %d: x=%d out of [0,%d]", i, c.X, cfg.GridSize-1)
		}
		if c.Y < 0 || c.Y > cfg.GridSize-1 {
			t.Fatalf("step %d: y=%d out of [0,%d]", i, c.Y, cfg.GridSize-1)
		}
	}
}

func TestMoveClampsEachAxisIndependently(t *testing.T) {
	cfg := testConfig()
	c := NewCell(cfg, core.NewRNG(1))
	c.Velocity = 10
	c.X, c.Y = 0, 4

	// Drive hard toward -x and +y at once.
	c.Actions[0], c.Actions[1], c.Actions[2], c.Actions[3] = 0, 1, 1, 0
	c.Move()
	if c.X != 0 {
		t.Fatalf("x should clamp at 0, got %d", c.X)
	}
	if c.Y != 4 {
		t.Fatalf("y should clamp at 4, got %d", c.Y)
	}
}

func TestThinkOutputIsBinary(t *testing.T) {
	cfg := testConfig()
	c := NewCell(cfg, core.NewRNG(3))

	inputs := [][]float64{
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
		{1e6, -1e6, 3.7, -0.2, 42},
		{-1e9, 1e9, -1e9, 1e9, -1e9},
	}
	for _, sensors := range inputs {
		copy(c.Sensors, sensors)
		c.Think()
		for i, a := range c.Actions {
			if a != 0 && a != 1 {
				t.Fatalf("sensors %v: action %d = %f, want 0 or 1", sensors, i, a)
			}
		}
	}
}

func TestLiveAgesAndKillsExactlyOnce(t *testing.T) {
	cfg := testConfig()
	c := NewCell(cfg, core.NewRNG(5))
	c.DeathAge = 3

	for tick := 0; tick < 6; tick++ {
		prevAge := c.Age
		c.Live(tick, nil)
		if c.Age != prevAge+1 {
			t.Fatalf("tick %d: age went %d -> %d, want +1", tick, prevAge, c.Age)
		}
		wantAlive := float64(c.Age) < c.DeathAge
		if c.Alive != wantAlive {
			t.Fatalf("tick %d: age=%d deathAge=%f alive=%v", tick, c.Age, c.DeathAge, c.Alive)
		}
	}
	if c.Alive {
		t.Fatal("cell should stay dead once its death age is reached")
	}
}

func TestGenomeShapes(t *testing.T) {
	cfg := testConfig()
	c := NewCell(cfg, core.NewRNG(9))

	rows, cols := c.BrainDNA.Dims()
	if rows != cfg.NumActions || cols != cfg.NumSensors {
		t.Fatalf("brain is %dx%d, want %dx%d", rows, cols, cfg.NumActions, cfg.NumSensors)
	}
	if len(c.Sensors) != cfg.NumSensors {
		t.Fatalf("sensor vector has %d entries, want %d", len(c.Sensors), cfg.NumSensors)
	}
	if len(c.Actions) != cfg.NumActions {
		t.Fatalf("action vector has %d entries, want %d", len(c.Actions), cfg.NumActions)
	}
	if c.X < 0 || c.X > cfg.GridSize-1 || c.Y < 0 || c.Y > cfg.GridSize-1 {
		t.Fatalf("start position (%d,%d) outside the grid", c.X, c.Y)
	}
}
