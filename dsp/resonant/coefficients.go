package resonant

import "math"

// minResonance keeps alpha's denominator away from zero when a caller
// sets resonance through the unchecked hot-path setters.
const minResonance = 0.01

// Coefficients holds the transfer function coefficients of the resonant
// biquad.
//
// Naming follows the Burk resonant-filter formulation: A0..A2 are the
// feedforward (numerator) taps and B1, B2 the feedback (denominator)
// taps with the leading denominator coefficient normalized to 1. The
// recursion is Direct Form I:
//
//	y[n] = A0*x[n] + A1*x[n-1] + A2*x[n-2] - B1*y[n-1] - B2*y[n-2]
type Coefficients struct {
	A0, A1, A2 float64 // feedforward (numerator)
	B1, B2     float64 // feedback (denominator)
}

// derive computes coefficients for the given type and parameters.
// It reports false for [TypeNone], whose coefficients are unused.
func derive(typ Type, sampleRate, frequency, resonance float64) (Coefficients, bool) {
	if resonance < minResonance {
		resonance = minResonance
	}

	omega := 2 * math.Pi * frequency / sampleRate
	sinOmega := math.Sin(omega)
	cosOmega := math.Cos(omega)
	alpha := sinOmega / (2 * resonance)
	scalar := 1 / (1 + alpha)

	var c Coefficients

	switch typ {
	case TypeNone:
		return c, false

	case TypeLowpass:
		c.A0 = 0.5 * (1 - cosOmega) * scalar
		c.A1 = (1 - cosOmega) * scalar
		c.A2 = c.A0

	case TypeHighpass:
		c.A0 = 0.5 * (1 + cosOmega) * scalar
		c.A1 = -(1 + cosOmega) * scalar
		c.A2 = c.A0

	case TypeBandpass:
		c.A0 = alpha * scalar
		c.A1 = 0
		c.A2 = -c.A0

	default:
		return c, false
	}

	c.B1 = -2 * cosOmega * scalar
	c.B2 = (1 - alpha) * scalar

	return c, true
}
