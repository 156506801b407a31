package junction

// Phase is one step of a signal sequence: a single direction moving to a
// single color
type Phase struct {
	Direction Direction
	Color     LightColor
}

// Sequence is an ordered list of phases executed as one atomic unit
type Sequence []Phase

// StandardSequence returns the canned four-phase cycle: north-south to
// green, then yellow, then red, then east-west to green.
func StandardSequence() Sequence {
	return Sequence{
		{North, Green}, {South, Green},
		{North, Yellow}, {South, Yellow},
		{North, Red}, {South, Red},
		{East, Green}, {West, Green},
	}
}

// ExecuteSequence runs the standard sequence. See RunSequence for the
// atomicity contract.
func (c *Controller) ExecuteSequence() error {
	return c.RunSequence(StandardSequence())
}

// RunSequence executes the phases of a sequence under a single lock
// acquisition, so no other caller can observe or interleave a mid-sequence
// state. A phase that fails stops the run and returns its error; phases
// already applied stay applied.
func (c *Controller) RunSequence(sequence Sequence) error {
	for _, phase := range sequence {
		if !phase.Direction.IsValid() {
			return NewValidationError("direction", phase.Direction.String(), "unknown direction")
		}
		if !phase.Color.IsValid() {
			return NewValidationError("color", phase.Color.String(), "unknown color")
		}
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, phase := range sequence {
		if err := c.changeLightLocked(phase.Direction, phase.Color); err != nil {
			return err
		}
	}

	return nil
}
