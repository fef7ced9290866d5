package main

import (
	"flag"
	"log"

	"cellsim/internal/app"
	"cellsim/internal/config"
	"cellsim/internal/core"
	"cellsim/internal/render"
	"cellsim/internal/sim"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg := config.Default()
	if flags.ConfigPath != "" {
		var err error
		cfg, err = config.Load(flags.ConfigPath, flags.Profile)
		if err != nil {
			log.Fatal(err)
		}
	}

	s, err := sim.New(cfg, flags.SimRule, flags.CellRule, flags.Seed)
	if err != nil {
		log.Fatal(err)
	}

	rec, err := render.NewRecorder(flags.Out, s.Size(), flags.Scale, int32(flags.FPS))
	if err != nil {
		log.Fatal(err)
	}

	outcome := s.Run(func(grid *core.ByteGrid, clock int) {
		if err := rec.Frame(grid, clock, s.Population()); err != nil {
			log.Printf("record frame %d: %v", clock, err)
		}
	})
	if err := rec.Close(); err != nil {
		log.Printf("finalize artifacts: %v", err)
	}

	switch outcome {
	case sim.OutcomeExtinct:
		log.Printf("population extinct at tick %d", s.Clock())
	case sim.OutcomeFault:
		log.Printf("run aborted at tick %d: %v", s.Clock(), s.Err())
	default:
		log.Printf("completed %d iterations, %d cells alive", cfg.NumSim, s.Population())
	}
}
