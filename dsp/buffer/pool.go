package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure
// in real-time processing loops. All buffers from one Pool share a
// channel count.
type Pool struct {
	pool     sync.Pool
	channels int
}

// NewPool returns a Pool handing out buffers with the given channel
// count. A non-positive channel count is treated as mono.
func NewPool(channels int) *Pool {
	if channels < 1 {
		channels = 1
	}
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{channels: channels}
			},
		},
		channels: channels,
	}
}

// Get returns a Buffer with the requested number of frames. The buffer
// is zeroed. Callers must return it via Put when done.
func (p *Pool) Get(frames int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(frames)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil || b.channels != p.channels {
		return
	}
	p.pool.Put(b)
}
