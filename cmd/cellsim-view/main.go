//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cellsim/internal/app"
	"cellsim/internal/config"
	"cellsim/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
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
	s.Reset(flags.Seed)

	game := app.New(s, flags.Scale, flags.Seed)
	size := s.Size()

	ebiten.SetWindowTitle("cellsim — " + s.Name())
	ebiten.SetTPS(flags.TPS)
	ebiten.SetWindowSize(size.W*flags.Scale, size.H*flags.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
