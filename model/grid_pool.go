package model

import "sync"

// GridPool recycles cell buffers so each generation does not allocate fresh
// next-state and snapshot storage.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]bool)
			},
		},
	}
}

// Get retrieves a cleared buffer of exactly size cells
func (p *GridPool) Get(size int) []bool {
	if p == nil {
		return make([]bool, size)
	}
	bp := p.pool.Get().(*[]bool)
	if cap(*bp) < size {
		*bp = make([]bool, size)
	}
	buf := (*bp)[:size]
	clear(buf)
	return buf
}

// Put returns a buffer to the pool. A nil pool drops it.
func (p *GridPool) Put(buf []bool) {
	if p == nil || buf == nil {
		return
	}
	p.pool.Put(&buf)
}
