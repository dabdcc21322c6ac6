package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// InterleavedIndex returns the flat index of a frame's sample on the
// given channel in a channel-interleaved buffer.
func InterleavedIndex(frame, channels, channel int) int {
	return frame*channels + channel
}

// Frames returns the number of whole frames a flat interleaved buffer
// of the given length holds, or 0 when channels is not positive.
func Frames(bufLen, channels int) int {
	if channels <= 0 {
		return 0
	}
	return bufLen / channels
}

// Interleave merges per-channel slices into a single channel-interleaved
// buffer. All channel slices must have the same length.
func Interleave(channels ...[]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}
	frames := len(channels[0])
	out := make([]float64, frames*len(channels))
	for ch, data := range channels {
		for i, v := range data {
			out[InterleavedIndex(i, len(channels), ch)] = v
		}
	}
	return out
}

// Deinterleave splits a channel-interleaved buffer into per-channel
// slices. Trailing samples that do not fill a whole frame are dropped.
func Deinterleave(buf []float64, channels int) [][]float64 {
	if channels <= 0 {
		return nil
	}
	frames := Frames(len(buf), channels)
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
		for i := range out[ch] {
			out[ch][i] = buf[InterleavedIndex(i, channels, ch)]
		}
	}
	return out
}
