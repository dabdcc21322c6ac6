package resonant

import (
	"fmt"
	"math"
)

// Common music-production defaults: 44.1 kHz, 1 kHz cutoff, Q 2.
const (
	defaultSampleRate = 44100.0
	defaultFrequency  = 1000.0
	defaultResonance  = 2.0
)

// Filter is the shared filter definition. It holds the nominal type,
// sample rate, cutoff frequency and resonance from which per-voice
// instances are snapshotted. Mutating the definition never affects
// instances that already exist.
//
// A Filter may be shared read-only across goroutines; Configure must
// not race with NewInstance.
type Filter struct {
	typ        Type
	sampleRate float64
	frequency  float64
	resonance  float64
}

// Option mutates filter construction parameters.
type Option func(*Filter) error

// WithType sets the filter response type.
func WithType(typ Type) Option {
	return func(f *Filter) error {
		if typ < TypeNone || typ >= numTypes {
			return fmt.Errorf("resonant: unknown filter type: %d", int(typ))
		}
		f.typ = typ
		return nil
	}
}

// WithSampleRate sets the nominal sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(f *Filter) error {
		if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
			return fmt.Errorf("resonant: sample rate must be > 0 and finite: %f", sampleRate)
		}
		f.sampleRate = sampleRate
		return nil
	}
}

// WithFrequency sets the cutoff frequency in Hz. Frequencies at or above
// the Nyquist limit are accepted but produce an unusable response.
func WithFrequency(frequency float64) Option {
	return func(f *Filter) error {
		if frequency <= 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
			return fmt.Errorf("resonant: frequency must be > 0 and finite: %f", frequency)
		}
		f.frequency = frequency
		return nil
	}
}

// WithResonance sets the Q factor.
func WithResonance(resonance float64) Option {
	return func(f *Filter) error {
		if resonance <= 0 || math.IsNaN(resonance) || math.IsInf(resonance, 0) {
			return fmt.Errorf("resonant: resonance must be > 0 and finite: %f", resonance)
		}
		f.resonance = resonance
		return nil
	}
}

// New creates a filter definition with practical defaults
// (lowpass, 44100 Hz, 1 kHz cutoff, Q 2) and optional overrides.
func New(opts ...Option) (*Filter, error) {
	f := &Filter{
		typ:        TypeLowpass,
		sampleRate: defaultSampleRate,
		frequency:  defaultFrequency,
		resonance:  defaultResonance,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Configure overwrites all four template fields at once. It does not
// affect existing instances.
func (f *Filter) Configure(typ Type, sampleRate, frequency, resonance float64) error {
	opts := []Option{
		WithType(typ),
		WithSampleRate(sampleRate),
		WithFrequency(frequency),
		WithResonance(resonance),
	}

	next := *f
	for _, opt := range opts {
		if err := opt(&next); err != nil {
			return err
		}
	}

	*f = next

	return nil
}

// NewInstance snapshots the definition into a new per-voice runtime
// with zeroed history and freshly derived coefficients. The caller owns
// the instance exclusively.
func (f *Filter) NewInstance() *Instance {
	in := &Instance{typ: f.typ}
	in.params[ParamFrequency] = f.frequency
	in.params[ParamSampleRate] = f.sampleRate
	in.params[ParamResonance] = f.resonance

	for p := range in.sources {
		in.sources[p] = newDefaultSource()
	}

	in.recalc()

	return in
}

// Type returns the nominal filter type.
func (f *Filter) Type() Type { return f.typ }

// SampleRate returns the nominal sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Frequency returns the nominal cutoff frequency in Hz.
func (f *Filter) Frequency() float64 { return f.frequency }

// Resonance returns the nominal Q factor.
func (f *Filter) Resonance() float64 { return f.resonance }
