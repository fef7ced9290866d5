package sim

import (
	"testing"

	"cellsim/internal/config"
	"cellsim/internal/core"
)

func TestNewRejectsUnknownRules(t *testing.T) {
	cfg := testConfig()

	if _, err := New(cfg, "bogus", "default", 1); err == nil {
		t.Fatal("expected construction to fail on an unknown simulation rule")
	}
	if _, err := New(cfg, "default", "bogus", 1); err == nil {
		t.Fatal("expected construction to fail on an unknown cell rule")
	}
}

func TestRunCompletesAllIterations(t *testing.T) {
	cfg := testConfig()
	cfg.NCell = 4
	cfg.NumSim = 5
	cfg.MeanPhysics[config.TraitDeathAge] = 1000
	cfg.StdPhysics[config.TraitDeathAge] = 0

	s, err := New(cfg, "default", "default", 1)
	if err != nil {
		t.Fatal(err)
	}

	frames := 0
	outcome := s.Run(func(grid *core.ByteGrid, clock int) {
		frames++
		if clock != frames {
			t.Fatalf("frame %d delivered with clock %d", frames, clock)
		}
	})

	if outcome != OutcomeCompleted {
		t.Fatalf("outcome = %v, want completed", outcome)
	}
	if frames != cfg.NumSim {
		t.Fatalf("renderer saw %d frames, want %d", frames, cfg.NumSim)
	}
	if s.Population() != 4 {
		t.Fatalf("population = %d, want 4", s.Population())
	}
}

func TestRunReportsExtinction(t *testing.T) {
	cfg := testConfig()
	cfg.NCell = 3
	cfg.NumSim = 10
	cfg.MeanPhysics[config.TraitDeathAge] = -5
	cfg.StdPhysics[config.TraitDeathAge] = 0

	s, err := New(cfg, "default", "default", 1)
	if err != nil {
		t.Fatal(err)
	}

	frames := 0
	outcome := s.Run(func(grid *core.ByteGrid, clock int) { frames++ })

	if outcome != OutcomeExtinct {
		t.Fatalf("outcome = %v, want extinct", outcome)
	}
	if frames != 1 {
		t.Fatalf("renderer saw %d frames before extinction, want 1", frames)
	}
	if s.Population() != 0 {
		t.Fatalf("population = %d after extinction", s.Population())
	}
}

func TestDeterministicTrajectory(t *testing.T) {
	run := func() [][2]int {
		cfg := testConfig()
		cfg.GridSize = 5
		cfg.NCell = 1
		cfg.NumSim = 20
		cfg.MeanPhysics[config.TraitDeathAge] = 1000
		cfg.StdPhysics[config.TraitDeathAge] = 0

		s, err := New(cfg, "default", "default", 42)
		if err != nil {
			t.Fatal(err)
		}
		var path [][2]int
		outcome := s.Run(func(grid *core.ByteGrid, clock int) {
			c := s.Env().Cells()[0]
			path = append(path, [2]int{c.X, c.Y})
		})
		if outcome != OutcomeCompleted {
			t.Fatalf("outcome = %v, want completed", outcome)
		}
		return path
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("trajectory lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("tick %d: %v vs %v, same seed should reproduce the trajectory", i, first[i], second[i])
		}
		if x, y := first[i][0], first[i][1]; x < 0 || x > 4 || y < 0 || y > 4 {
			t.Fatalf("tick %d: position %v outside [0,4]", i, first[i])
		}
	}
}

func TestResetRebuildsPopulation(t *testing.T) {
	cfg := testConfig()
	cfg.NCell = 3
	cfg.MeanPhysics[config.TraitDeathAge] = 1000
	cfg.StdPhysics[config.TraitDeathAge] = 0

	s, err := New(cfg, "default", "default", 9)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		s.Step()
	}
	if s.Clock() == 0 {
		t.Fatal("steps should advance the clock")
	}

	s.Reset(9)
	if s.Clock() != 0 {
		t.Fatalf("reset left clock at %d", s.Clock())
	}
	if s.Population() != 3 {
		t.Fatalf("reset rebuilt %d cells, want 3", s.Population())
	}
}
