package resonant

// Type selects the filter response.
type Type int

const (
	// TypeNone disables processing; an instance with this type leaves
	// buffers untouched.
	TypeNone Type = iota

	// TypeLowpass passes frequencies below the cutoff.
	TypeLowpass

	// TypeHighpass passes frequencies above the cutoff.
	TypeHighpass

	// TypeBandpass passes a band around the cutoff.
	TypeBandpass

	numTypes
)

// String returns a human-readable name for the filter type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeLowpass:
		return "lowpass"
	case TypeHighpass:
		return "highpass"
	case TypeBandpass:
		return "bandpass"
	default:
		return "unknown"
	}
}

// Param identifies an automatable filter parameter.
type Param int

const (
	// ParamFrequency is the cutoff frequency in Hz.
	ParamFrequency Param = iota

	// ParamSampleRate is the sample rate in Hz.
	ParamSampleRate

	// ParamResonance is the Q factor.
	ParamResonance

	numParams
)

// String returns a human-readable name for the parameter.
func (p Param) String() string {
	switch p {
	case ParamFrequency:
		return "frequency"
	case ParamSampleRate:
		return "samplerate"
	case ParamResonance:
		return "resonance"
	default:
		return "unknown"
	}
}
