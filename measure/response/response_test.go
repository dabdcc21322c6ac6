package response

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-resonant/dsp/resonant"
)

const sampleRate = 44100.0

func newInstance(t *testing.T, typ resonant.Type, freq, q float64) *resonant.Instance {
	t.Helper()

	f, err := resonant.New(
		resonant.WithType(typ),
		resonant.WithSampleRate(sampleRate),
		resonant.WithFrequency(freq),
		resonant.WithResonance(q),
	)
	if err != nil {
		t.Fatal(err)
	}

	return f.NewInstance()
}

func TestMagnitudesMatchClosedForm(t *testing.T) {
	cases := []struct {
		name string
		typ  resonant.Type
		freq float64
		q    float64
	}{
		{"lowpass", resonant.TypeLowpass, 1000, 0.707},
		{"highpass", resonant.TypeHighpass, 4000, 1},
		{"bandpass", resonant.TypeBandpass, 2000, 2},
	}

	const fftSize = 8192

	a := NewAnalyzer(sampleRate)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inst := newInstance(t, tc.typ, tc.freq, tc.q)

			mags, err := a.Magnitudes(inst, fftSize)
			if err != nil {
				t.Fatal(err)
			}
			if len(mags) != fftSize/2+1 {
				t.Fatalf("bins: got %d, want %d", len(mags), fftSize/2+1)
			}

			coef := inst.Coefficients()
			for _, freq := range []float64{200, 1000, 2000, 5000, 10000} {
				bin := a.Bin(freq, fftSize)
				want := math.Sqrt(coef.MagnitudeSquared(a.BinFrequency(bin, fftSize), sampleRate))
				got := mags[bin]
				if math.Abs(got-want) > 1e-6 {
					t.Errorf("%.0f Hz (bin %d): measured %v, closed form %v", freq, bin, got, want)
				}
			}
		})
	}
}

func TestInactiveInstanceMeasuresFlat(t *testing.T) {
	inst := newInstance(t, resonant.TypeNone, 1000, 1)

	a := NewAnalyzer(sampleRate)
	mags, err := a.Magnitudes(inst, 256)
	if err != nil {
		t.Fatal(err)
	}

	for i, m := range mags {
		if math.Abs(m-1) > 1e-12 {
			t.Fatalf("bin %d: got %v, want 1", i, m)
		}
	}
}

func TestMagnitudesDB(t *testing.T) {
	inst := newInstance(t, resonant.TypeLowpass, 1000, 0.707)

	a := NewAnalyzer(sampleRate)
	db, err := a.MagnitudesDB(inst, 4096)
	if err != nil {
		t.Fatal(err)
	}

	// Lowpass DC gain is unity.
	if math.Abs(db[0]) > 0.01 {
		t.Fatalf("DC bin: got %v dB, want 0 dB", db[0])
	}

	// Well above cutoff the response must be strongly attenuated.
	high := a.Bin(10000, 4096)
	if db[high] > -20 {
		t.Fatalf("10 kHz bin: got %v dB, want < -20 dB", db[high])
	}
}

func TestMeasurementRestoresHistory(t *testing.T) {
	inst := newInstance(t, resonant.TypeLowpass, 1000, 1)

	a := NewAnalyzer(sampleRate)
	if _, err := a.Magnitudes(inst, 512); err != nil {
		t.Fatal(err)
	}

	for ch := range 2 {
		if st := inst.State(ch); st != [4]float64{} {
			t.Fatalf("channel %d history not cleared: %v", ch, st)
		}
	}
}

func TestErrors(t *testing.T) {
	a := NewAnalyzer(sampleRate)

	if _, err := a.Magnitudes(nil, 64); err != ErrNilInstance {
		t.Fatalf("nil instance: got %v", err)
	}

	inst := newInstance(t, resonant.TypeLowpass, 1000, 1)

	if _, err := NewAnalyzer(0).Magnitudes(inst, 64); err != ErrInvalidSampleRate {
		t.Fatalf("zero sample rate: got %v", err)
	}

	if _, err := a.Magnitudes(inst, 0); err != ErrInvalidFFTSize {
		t.Fatalf("zero fft size: got %v", err)
	}
}

func TestBinHelpers(t *testing.T) {
	a := NewAnalyzer(48000)

	if got := a.BinFrequency(0, 1024); got != 0 {
		t.Fatalf("BinFrequency(0): got %v", got)
	}
	if got := a.BinFrequency(512, 1024); got != 24000 {
		t.Fatalf("Nyquist bin frequency: got %v, want 24000", got)
	}

	if got := a.Bin(24000, 1024); got != 512 {
		t.Fatalf("Bin at Nyquist: got %d, want 512", got)
	}
	if got := a.Bin(1e9, 1024); got != 512 {
		t.Fatalf("Bin clamping: got %d, want 512", got)
	}

	// Non-power-of-2 sizes round up.
	if got := nextPowerOf2(1000); got != 1024 {
		t.Fatalf("nextPowerOf2(1000): got %d, want 1024", got)
	}
	if got := nextPowerOf2(1); got != 1 {
		t.Fatalf("nextPowerOf2(1): got %d, want 1", got)
	}
}
