// Package ui draws the viewer's heads-up readout.
package ui

// StatsProvider exposes the per-tick numbers the HUD displays.
type StatsProvider interface {
	Clock() int
	Population() int
}
