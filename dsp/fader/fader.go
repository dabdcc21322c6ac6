// Package fader provides time-anchored parameter value sources.
//
// A [Fader] produces a parameter value as a function of stream time. It
// supports a one-shot linear ramp between two values and an indefinite
// sinusoidal oscillation (LFO) between two values. Filter runtimes poll
// an active fader once per block and feed the result into their own
// parameter state.
package fader

import "math"

type mode int

const (
	modeIdle mode = iota
	modeLinear
	modeLFO
)

// Fader animates a scalar value over stream time.
//
// All times are in seconds on the caller's clock; the fader itself keeps
// no clock and is driven entirely by the time passed to [Fader.Value].
// The zero value is an idle fader.
type Fader struct {
	mode mode

	from, to  float64
	delta     float64
	startTime float64
	endTime   float64
	period    float64

	current float64
}

// New returns an idle fader.
func New() *Fader {
	return &Fader{}
}

// Active reports whether the fader is currently animating.
// A linear ramp deactivates itself once its end time has been reached;
// an LFO stays active until reconfigured or stopped.
func (f *Fader) Active() bool {
	return f.mode != modeIdle
}

// Value returns the animated value at time now.
//
// Linear mode clamps to the anchor window: before startTime the value is
// the ramp origin, after startTime+duration it is the target, and the
// fader goes idle so callers stop polling it. LFO mode never terminates.
// When idle, Value returns the last computed value.
func (f *Fader) Value(now float64) float64 {
	switch f.mode {
	case modeLinear:
		if now <= f.startTime {
			f.current = f.from
			return f.current
		}

		if now >= f.endTime {
			f.current = f.to
			f.mode = modeIdle

			return f.current
		}

		f.current = f.from + f.delta*(now-f.startTime)/(f.endTime-f.startTime)

		return f.current

	case modeLFO:
		// 0.5*(1-cos) maps the cycle to [0, 1] starting at 0, so the
		// oscillation departs from the configured origin value.
		phase := 2 * math.Pi * (now - f.startTime) / f.period
		f.current = f.from + f.delta*0.5*(1-math.Cos(phase))

		return f.current
	}

	return f.current
}

// SetLinear configures a one-shot linear ramp from one value to another,
// anchored at startTime and completing after duration seconds.
func (f *Fader) SetLinear(from, to, duration, startTime float64) {
	f.mode = modeLinear
	f.from = from
	f.to = to
	f.delta = to - from
	f.startTime = startTime
	f.endTime = startTime + duration
	f.period = 0
	f.current = from
}

// SetLFO configures an indefinite sinusoidal oscillation between from
// and to with the given period in seconds, anchored at startTime.
func (f *Fader) SetLFO(from, to, period, startTime float64) {
	f.mode = modeLFO
	f.from = from
	f.to = to
	f.delta = to - from
	f.startTime = startTime
	f.endTime = 0
	f.period = period
	f.current = from
}

// Stop cancels any running animation. The last computed value is
// retained and returned by subsequent Value calls.
func (f *Fader) Stop() {
	f.mode = modeIdle
}

// Current returns the value most recently computed by Value, or the
// configured origin if Value has not been called since configuration.
func (f *Fader) Current() float64 {
	return f.current
}
