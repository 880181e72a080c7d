package biquad

// DCGain returns H(1), the section's response to a constant input.
// It returns 0 when the denominator vanishes at z = 1.
func (c Coefficients) DCGain() float64 {
	den := 1 + c.A1 + c.A2
	if den == 0 {
		return 0
	}

	return (c.B0 + c.B1 + c.B2) / den
}

// SteadyState returns the delay-line values the section settles to when
// driven by the constant input x. Seeding a section with this state makes
// its output start at DCGain()*x without a transient.
func (c Coefficients) SteadyState(x float64) [2]float64 {
	y := c.DCGain() * x
	d1 := c.B2*x - c.A2*y
	d0 := c.B1*x - c.A1*y + d1

	return [2]float64{d0, d1}
}

// DCGain returns the cascaded response to a constant input.
func (c *Chain) DCGain() float64 {
	g := 1.0
	for i := range c.sections {
		g *= c.sections[i].DCGain()
	}

	return g
}

// SteadyState returns, for every section, the delay-line state reached
// under the constant chain input x. The input of section k is the constant
// output of sections 0..k-1.
func (c *Chain) SteadyState(x float64) [][2]float64 {
	states := make([][2]float64, len(c.sections))

	in := x
	for i := range c.sections {
		states[i] = c.sections[i].SteadyState(in)
		in *= c.sections[i].DCGain()
	}

	return states
}
