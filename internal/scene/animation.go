package scene

// PhaseStep is how far the propeller phase moves per idle tick.
const PhaseStep = 0.05

// phaseSteps is the number of ticks in one full revolution.
const phaseSteps = 20

// Animation is a phase cycling through [0, 1) in PhaseStep increments.
// The phase is kept as a step count so a revolution is exactly
// phaseSteps ticks long.
type Animation struct {
	step int
}

// Advance moves the phase forward by one step, wrapping to 0 on reaching 1.
func (a *Animation) Advance() {
	a.step++
	if a.step >= phaseSteps {
		a.step = 0
	}
}

// Phase returns the current phase in [0, 1).
func (a *Animation) Phase() float32 {
	return float32(a.step) / phaseSteps
}

// Degrees returns the rotation angle for the current phase.
func (a *Animation) Degrees() float32 {
	return a.Phase() * 360
}
