package buffer

import "github.com/cwbudde/algo-resonant/dsp/core"

// Buffer wraps a flat channel-interleaved float64 slice with
// reuse-friendly semantics. Processing functions accept raw []float64;
// use Samples() to bridge.
type Buffer struct {
	samples  []float64
	channels int
}

// New returns a zero-filled Buffer holding frames frames of the given
// channel count. A non-positive channel count is treated as mono.
func New(frames, channels int) *Buffer {
	if frames < 0 {
		frames = 0
	}
	if channels < 1 {
		channels = 1
	}
	return &Buffer{
		samples:  make([]float64, frames*channels),
		channels: channels,
	}
}

// FromSlice wraps an existing interleaved slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float64, channels int) *Buffer {
	if channels < 1 {
		channels = 1
	}
	return &Buffer{samples: s, channels: channels}
}

// Samples returns the underlying interleaved slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the total number of samples across all channels.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Channels returns the interleaved channel count.
func (b *Buffer) Channels() int {
	return b.channels
}

// Stereo reports whether the buffer holds two interleaved channels.
func (b *Buffer) Stereo() bool {
	return b.channels == 2
}

// Frames returns the number of whole frames in the buffer.
func (b *Buffer) Frames() int {
	return core.Frames(len(b.samples), b.channels)
}

// Sample returns the sample at the given frame and channel.
func (b *Buffer) Sample(frame, channel int) float64 {
	return b.samples[core.InterleavedIndex(frame, b.channels, channel)]
}

// SetSample stores a sample at the given frame and channel.
func (b *Buffer) SetSample(frame, channel int, v float64) {
	b.samples[core.InterleavedIndex(frame, b.channels, channel)] = v
}

// Resize sets the length to frames frames, reusing existing capacity
// when possible. Newly exposed samples are zeroed.
func (b *Buffer) Resize(frames int) {
	if frames < 0 {
		frames = 0
	}
	n := frames * b.channels
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		core.Zero(b.samples[oldLen:])
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	core.Zero(b.samples)
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s, channels: b.channels}
}

// Channel extracts one channel into a freshly allocated slice.
func (b *Buffer) Channel(channel int) []float64 {
	frames := b.Frames()
	out := make([]float64, frames)
	for i := range out {
		out[i] = b.Sample(i, channel)
	}
	return out
}
