package resonant

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-resonant/dsp/fader"
	archregistry "github.com/cwbudde/algo-resonant/dsp/resonant/internal/arch/registry"
)

// denormalBias is injected into the recursive output once per channel
// per block so the feedback path never decays into the denormal range,
// where some FPUs take a large per-operation penalty.
const denormalBias = 1e-26

// ValueSource is the time-driven animation mechanism an [Instance]
// polls for automated parameter values. [fader.Fader] is the default
// implementation; hosts with their own automation clock can substitute
// one via [Instance.SetValueSource].
type ValueSource interface {
	// Active reports whether the source is currently animating.
	Active() bool

	// Value returns the animated value at the given stream time.
	Value(now float64) float64

	// SetLinear configures a one-shot linear ramp.
	SetLinear(from, to, duration, startTime float64)

	// SetLFO configures an indefinite periodic oscillation.
	SetLFO(from, to, period, startTime float64)

	// Stop cancels any running animation.
	Stop()
}

func newDefaultSource() ValueSource {
	return fader.New()
}

// Instance is the per-voice filter runtime. It owns its coefficients,
// per-channel delay history and automation slots exclusively; it must
// not be used from more than one goroutine at a time.
//
// Create instances with [Filter.NewInstance].
type Instance struct {
	typ    Type
	params [numParams]float64

	coef Coefficients

	// Delay history, indexed by channel (0 = left/mono, 1 = right).
	x1, x2 [2]float64
	y1, y2 [2]float64

	dirty  bool
	active bool

	sources [numParams]ValueSource
}

var (
	filterChannelImpl     archregistry.FilterChannelFn
	filterChannelInitOnce sync.Once
)

func initFilterChannelKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("resonant: no filter kernel registered (missing generic fallback?)")
	}

	if entry.FilterChannel == nil {
		panic("resonant: selected kernel missing FilterChannel")
	}

	filterChannelImpl = entry.FilterChannel
}

// ProcessBlock filters sampleCount frames of buf in place at stream
// time now (seconds).
//
// buf is interleaved by channel when stereo is true and must hold at
// least sampleCount*channelCount samples. Any active automation slot is
// polled once, coefficients are recomputed only if a parameter changed,
// and each channel's recursion runs with its own history. When the
// filter type is [TypeNone] the buffer is left untouched.
func (in *Instance) ProcessBlock(buf []float64, sampleCount int, stereo bool, now float64) {
	if !in.active {
		return
	}

	for p := range in.sources {
		src := in.sources[p]
		if src == nil || !src.Active() {
			continue
		}

		in.params[p] = src.Value(now)
		in.dirty = true
	}

	if in.dirty {
		in.recalc()
	}

	filterChannelInitOnce.Do(initFilterChannelKernel)

	stride := 1
	if stereo {
		stride = 2
	}

	coeffs := archregistry.Coefficients{
		A0: in.coef.A0,
		A1: in.coef.A1,
		A2: in.coef.A2,
		B1: in.coef.B1,
		B2: in.coef.B2,
	}

	for ch := range stride {
		st := archregistry.ChannelState{
			X1: in.x1[ch], X2: in.x2[ch],
			Y1: in.y1[ch], Y2: in.y2[ch],
		}

		st = filterChannelImpl(coeffs, st, buf, sampleCount, stride, ch)

		in.x1[ch], in.x2[ch] = st.X1, st.X2
		in.y1[ch], in.y2[ch] = st.Y1, st.Y2

		in.y1[ch] += denormalBias
	}
}

// ProcessSample filters a single sample on the given channel with a
// literal one-step Direct Form I recursion and returns the output.
//
// This is the reference path; ProcessBlock produces bit-identical
// output through its pairwise-permuted kernel, apart from the denormal
// bias it adds to the channel history after each block. The sample is
// returned unchanged when the filter type is [TypeNone].
func (in *Instance) ProcessSample(ch int, x float64) float64 {
	if !in.active {
		return x
	}

	if in.dirty {
		in.recalc()
	}

	y := in.coef.A0*x + in.coef.A1*in.x1[ch] + in.coef.A2*in.x2[ch] -
		in.coef.B1*in.y1[ch] - in.coef.B2*in.y2[ch]

	in.x2[ch] = in.x1[ch]
	in.x1[ch] = x
	in.y2[ch] = in.y1[ch]
	in.y1[ch] = y

	return y
}

// SetParam sets a parameter to a raw value immediately, cancelling any
// running animation on that parameter. Out-of-range identifiers are
// ignored. No bounds checking is applied to the value; resonance is
// clamped away from zero only inside coefficient derivation.
func (in *Instance) SetParam(p Param, value float64) {
	if p < 0 || p >= numParams {
		return
	}

	if src := in.sources[p]; src != nil {
		src.Stop()
	}

	in.params[p] = value
	in.dirty = true
}

// FadeParam starts a one-shot linear fade of a parameter from one value
// to another over duration seconds, anchored at startTime. Degenerate
// requests (equal endpoints, non-positive duration, unknown parameter)
// are silently ignored, matching real-time audio convention.
func (in *Instance) FadeParam(p Param, from, to, duration, startTime float64) {
	if p < 0 || p >= numParams || from == to || duration <= 0 {
		return
	}

	if src := in.sources[p]; src != nil {
		src.SetLinear(from, to, duration, startTime)
	}
}

// OscillateParam starts an indefinite periodic oscillation of a
// parameter between two values with the given period in seconds,
// anchored at startTime. The same degenerate-request guard as
// [Instance.FadeParam] applies.
func (in *Instance) OscillateParam(p Param, from, to, period, startTime float64) {
	if p < 0 || p >= numParams || from == to || period <= 0 {
		return
	}

	if src := in.sources[p]; src != nil {
		src.SetLFO(from, to, period, startTime)
	}
}

// SetValueSource replaces the automation slot for a parameter with a
// host-provided implementation. Passing nil disables automation for
// that parameter.
func (in *Instance) SetValueSource(p Param, src ValueSource) {
	if p < 0 || p >= numParams {
		return
	}

	in.sources[p] = src
}

// recalc derives coefficients from the current parameters and clears
// the dirty flag.
func (in *Instance) recalc() {
	in.dirty = false
	in.coef, in.active = derive(
		in.typ,
		in.params[ParamSampleRate],
		in.params[ParamFrequency],
		in.params[ParamResonance],
	)
}

// Reset clears the per-channel delay history. Parameters, coefficients
// and automation slots are unaffected.
func (in *Instance) Reset() {
	for ch := range in.x1 {
		in.x1[ch] = 0
		in.x2[ch] = 0
		in.y1[ch] = 0
		in.y2[ch] = 0
	}
}

// Active reports whether the instance processes audio. It is false only
// for [TypeNone].
func (in *Instance) Active() bool {
	return in.active
}

// Type returns the instance's filter type.
func (in *Instance) Type() Type {
	return in.typ
}

// Coefficients returns the currently derived coefficients, recomputing
// them first if a parameter changed since the last block.
func (in *Instance) Coefficients() Coefficients {
	if in.dirty {
		in.recalc()
	}

	return in.coef
}

// ParamValue returns the current raw value of a parameter. Out-of-range
// identifiers return 0.
func (in *Instance) ParamValue(p Param) float64 {
	if p < 0 || p >= numParams {
		return 0
	}

	return in.params[p]
}

// State returns a channel's delay history as [x1, x2, y1, y2].
// Channels outside [0, 2) return zeros.
func (in *Instance) State(ch int) [4]float64 {
	if ch < 0 || ch >= len(in.x1) {
		return [4]float64{}
	}

	return [4]float64{in.x1[ch], in.x2[ch], in.y1[ch], in.y2[ch]}
}

// SetState restores a channel's delay history from a previously saved
// state. Channels outside [0, 2) are ignored.
func (in *Instance) SetState(ch int, state [4]float64) {
	if ch < 0 || ch >= len(in.x1) {
		return
	}

	in.x1[ch] = state[0]
	in.x2[ch] = state[1]
	in.y1[ch] = state[2]
	in.y2[ch] = state[3]
}
