// Package generic provides the portable filter-channel kernel.
package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-resonant/dsp/resonant/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:          "generic",
		SIMDLevel:     cpu.SIMDNone,
		Priority:      0,
		FilterChannel: filterChannel,
	})
}

// filterChannel runs the Direct Form I recursion over one interleaved
// channel, two samples per iteration.
//
// The pair form permutes the delay-line variables instead of doing a
// literal three-step shift each sample: the first output lands in y2,
// the second in y1, and only x1/x2 move at the end of the pair. Output
// is bit-identical to the one-step recursion. A trailing odd sample is
// processed with the plain one-step form.
func filterChannel(c registry.Coefficients, st registry.ChannelState, buf []float64, frames, stride, offset int) registry.ChannelState {
	a0, a1, a2 := c.A0, c.A1, c.A2
	b1, b2 := c.B1, c.B2
	x1, x2 := st.X1, st.X2
	y1, y2 := st.Y1, st.Y2

	i := 0
	for ; i+1 < frames; i += 2 {
		x := buf[i*stride+offset]
		y2 = a0*x + a1*x1 + a2*x2 - b1*y1 - b2*y2
		buf[i*stride+offset] = y2

		// x2 is two samples stale here and free to hold the next input.
		x2 = buf[(i+1)*stride+offset]
		y1 = a0*x2 + a1*x + a2*x1 - b1*y2 - b2*y1
		buf[(i+1)*stride+offset] = y1

		x1 = x2
		x2 = x
	}

	if i < frames {
		x := buf[i*stride+offset]
		y := a0*x + a1*x1 + a2*x2 - b1*y1 - b2*y2
		buf[i*stride+offset] = y

		x2 = x1
		x1 = x
		y2 = y1
		y1 = y
	}

	return registry.ChannelState{X1: x1, X2: x2, Y1: y1, Y2: y2}
}
