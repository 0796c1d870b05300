package flatbuf

import "sync"

// Pool manages reusable buffers for short-lived encodings.
//
// Usage:
//
//	buf := flatbuf.DefaultPool.Get(64)
//	defer flatbuf.DefaultPool.Put(buf)
type Pool struct {
	pool sync.Pool
}

// NewPool creates a new buffer pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return New(64)
			},
		},
	}
}

// Get retrieves an empty buffer with room for at least hint slots.
func (p *Pool) Get(hint int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Reset()
	b.Ensure(hint)
	return b
}

// Put returns a buffer to the pool. It is reset on the next Get.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// DefaultPool is a process-wide buffer pool.
var DefaultPool = NewPool()
