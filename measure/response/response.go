// Package response measures the realized frequency response of a
// filter instance by exciting it with a unit impulse and transforming
// the response with an FFT.
//
// The closed-form response of the derived coefficients is available on
// [resonant.Coefficients]; this package answers the complementary
// question of what the running instance actually does to a signal,
// which also covers the inactive (passthrough) case.
package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-resonant/dsp/core"
	"github.com/cwbudde/algo-resonant/dsp/resonant"
)

// Errors returned by response measurement.
var (
	ErrNilInstance       = errors.New("response: instance is nil")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("response: fft size must be positive")
)

// Analyzer measures instance frequency responses at a fixed sample rate.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer creates an analyzer for the given sample rate.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Magnitudes feeds a unit impulse through the instance and returns the
// linear magnitude of the response at fftSize/2+1 uniformly spaced bins
// from DC to Nyquist. fftSize is rounded up to the next power of two.
//
// The instance's delay history is cleared before and after the
// measurement. Automation slots are polled at stream time 0, so an
// instance with running fades is measured with its parameters at that
// time.
func (a *Analyzer) Magnitudes(inst *resonant.Instance, fftSize int) ([]float64, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}

	if a.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if fftSize <= 0 {
		return nil, ErrInvalidFFTSize
	}

	n := nextPowerOf2(fftSize)

	ir := core.EnsureLen(nil, n)
	ir[0] = 1

	inst.Reset()
	inst.ProcessBlock(ir, n, false, 0)
	inst.Reset()

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	irPadded := make([]complex128, n)
	for i, v := range ir {
		irPadded[i] = complex(v, 0)
	}

	irFreq := make([]complex128, n)
	if err := plan.Forward(irFreq, irPadded); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	mags := make([]float64, n/2+1)
	for i := range mags {
		re := real(irFreq[i])
		im := imag(irFreq[i])
		mags[i] = math.Sqrt(re*re + im*im)
	}

	return mags, nil
}

// MagnitudesDB is like Magnitudes but returns bin magnitudes in dB.
func (a *Analyzer) MagnitudesDB(inst *resonant.Instance, fftSize int) ([]float64, error) {
	mags, err := a.Magnitudes(inst, fftSize)
	if err != nil {
		return nil, err
	}

	for i, m := range mags {
		mags[i] = core.LinearToDB(m)
	}

	return mags, nil
}

// BinFrequency returns the center frequency in Hz of a magnitude bin
// for the given FFT size.
func (a *Analyzer) BinFrequency(bin, fftSize int) float64 {
	if fftSize <= 0 {
		return 0
	}

	return float64(bin) * a.SampleRate / float64(nextPowerOf2(fftSize))
}

// Bin returns the magnitude bin nearest to the given frequency for the
// given FFT size, clamped to [0, fftSize/2].
func (a *Analyzer) Bin(freqHz float64, fftSize int) int {
	if fftSize <= 0 || a.SampleRate <= 0 {
		return 0
	}

	n := nextPowerOf2(fftSize)
	bin := int(math.Round(freqHz * float64(n) / a.SampleRate))

	return int(core.Clamp(float64(bin), 0, float64(n/2)))
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
