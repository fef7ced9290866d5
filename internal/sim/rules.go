package sim

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrExtinct is returned by a simulation rule when no live cells remain.
var ErrExtinct = errors.New("population extinct")

// SimRule advances the whole environment by one invocation of the run loop.
type SimRule func(*Environment) error

// CellRule is the per-tick behavior of a single cell. It receives the clock
// and the position snapshot taken before any cell moved this tick.
type CellRule func(c *Cell, clock int, posMap [][2]int)

var (
	simRules  = map[string]SimRule{}
	cellRules = map[string]CellRule{}
)

// RegisterSimRule adds a simulation rule under the provided name.
func RegisterSimRule(name string, r SimRule) {
	if name == "" || r == nil {
		return
	}
	simRules[name] = r
}

// RegisterCellRule adds a cell rule under the provided name.
func RegisterCellRule(name string, r CellRule) {
	if name == "" || r == nil {
		return
	}
	cellRules[name] = r
}

// ResolveSimRule looks up a simulation rule by exact name. The error for an
// unknown name lists every registered rule.
func ResolveSimRule(name string) (SimRule, error) {
	r, ok := simRules[name]
	if !ok {
		return nil, fmt.Errorf("unknown simulation rule %q (valid: %s)",
			name, strings.Join(SimRuleNames(), ", "))
	}
	return r, nil
}

// ResolveCellRule looks up a cell rule by exact name. The error for an
// unknown name lists every registered rule.
func ResolveCellRule(name string) (CellRule, error) {
	r, ok := cellRules[name]
	if !ok {
		return nil, fmt.Errorf("unknown cell rule %q (valid: %s)",
			name, strings.Join(CellRuleNames(), ", "))
	}
	return r, nil
}

// SimRuleNames returns the registered simulation rule names, sorted.
func SimRuleNames() []string {
	names := make([]string, 0, len(simRules))
	for name := range simRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CellRuleNames returns the registered cell rule names, sorted.
func CellRuleNames() []string {
	names := make([]string, 0, len(cellRules))
	for name := range cellRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func defaultSimRule(e *Environment) error {
	if e.Update() == ResultEnded {
		return ErrExtinct
	}
	return nil
}

// fastForwardRule advances two ticks per rendered frame.
func fastForwardRule(e *Environment) error {
	for i := 0; i < 2; i++ {
		if e.Update() == ResultEnded {
			return ErrExtinct
		}
	}
	return nil
}

// senseFirstRule decides on current-tick sensor data before moving, instead
// of moving on the previous tick's decision. The aging contract is the same
// as the default rule's.
func senseFirstRule(c *Cell, clock int, posMap [][2]int) {
	c.UpdateSensors(clock, posMap)
	c.Think()
	c.Move()
	c.Age++
	if float64(c.Age) >= c.DeathAge {
		c.Alive = false
	}
}

func init() {
	RegisterSimRule("default", defaultSimRule)
	RegisterSimRule("fast_forward", fastForwardRule)
	RegisterCellRule("default", (*Cell).Live)
	RegisterCellRule("sense_first", senseFirstRule)
}
