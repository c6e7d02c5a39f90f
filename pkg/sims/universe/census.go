package universe

// Census counts the populated cells of a universe at one step.
type Census struct {
	Step        int `json:"step" yaml:"step"`
	Side        int `json:"side" yaml:"side"`
	PhaseActive int `json:"phase_active" yaml:"phase_active"`
	Live        int `json:"live" yaml:"live"`
	Expansions  int `json:"expansions" yaml:"expansions"`
}

// Census returns the current population counts.
func (u *Universe) Census() Census {
	c := Census{Step: u.steps, Side: u.size, Expansions: u.expansions}
	for _, v := range u.phaseCurr.Cells() {
		if v != 0 {
			c.PhaseActive++
		}
	}
	for _, v := range u.lifeCurr.Cells() {
		if v != 0 {
			c.Live++
		}
	}
	return c
}
