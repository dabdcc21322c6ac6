// Package resonant implements a resonant biquad (second-order IIR)
// filter runtime with live-automatable parameters.
//
// A [Filter] is an immutable-until-reconfigured template holding the
// filter type, sample rate, cutoff frequency and resonance. It acts as a
// factory: each audio voice that needs the filter creates its own
// [Instance] via [Filter.NewInstance]. Instances own their coefficients
// and per-channel delay history exclusively and process interleaved
// mono or stereo blocks in place.
//
// Cutoff frequency, sample rate and resonance can be changed instantly
// ([Instance.SetParam]), faded linearly over time ([Instance.FadeParam])
// or oscillated periodically ([Instance.OscillateParam]). Coefficients
// are recomputed lazily, only on blocks where a parameter changed.
//
// Coefficient design follows the Bristow-Johnson/Burk resonant biquad
// formulation with lowpass, highpass and bandpass responses. Higher
// order cascades and other topologies live elsewhere; this package is
// the per-voice runtime only.
package resonant
