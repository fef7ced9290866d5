package app

import "flag"

// Flags represents the command-line parameters shared by the front ends.
type Flags struct {
	ConfigPath string
	Profile    string
	SimRule    string
	CellRule   string
	Seed       int64
	Scale      int
	TPS        int
	FPS        int
	Out        string
}

// NewFlags returns a Flags populated with sensible defaults.
func NewFlags() *Flags {
	return &Flags{
		Profile:  "one",
		SimRule:  "default",
		CellRule: "default",
		Seed:     42,
		Scale:    8,
		TPS:      10,
		FPS:      10,
		Out:      "out",
	}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "YAML parameter file (defaults used when empty)")
	fs.StringVar(&f.Profile, "profile", f.Profile, "parameter profile to load from the config file")
	fs.StringVar(&f.SimRule, "sim-rule", f.SimRule, "simulation rule to run")
	fs.StringVar(&f.CellRule, "cell-rule", f.CellRule, "cell rule to run")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for genome and position sampling")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "viewer ticks per second")
	fs.IntVar(&f.FPS, "fps", f.FPS, "frames per second of the recorded video")
	fs.StringVar(&f.Out, "out", f.Out, "output directory for run artifacts")
}
