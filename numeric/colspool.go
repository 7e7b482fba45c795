package numeric

import (
	"sync"

	"github.com/arai3racoon/taucs/assembly"
)

// colsPool is the lock-guarded free list of map_cols workspace buffers
// spec §4.4/§5 requires: under sequential traversal a single buffer is
// reused directly; under parallel traversal, sibling tasks may need a
// map_cols buffer concurrently (unlike map_rows, whose disjoint-use
// invariant holds by induction on the etree, map_cols has no such
// guarantee — spec §5), so each acquires its own from the pool and
// returns it fully reset to NoMap.
type colsPool struct {
	mu   sync.Mutex
	free [][]int
	n    int
}

func newColsPool(n, capacity int) *colsPool {
	p := &colsPool{n: n}
	for i := 0; i < capacity; i++ {
		p.free = append(p.free, assembly.NewMap(n))
	}

	return p
}

// acquire returns a NoMap-initialized buffer, allocating a fresh one if the
// pool is momentarily exhausted (correctness over strict capacity: more
// concurrent tasks than nproc never corrupts state, it only means this
// call didn't reuse an existing buffer).
func (p *colsPool) acquire() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		return assembly.NewMap(p.n)
	}
	buf := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	return buf
}

// release resets buf's touched slots back to NoMap and returns it to the
// pool.
func (p *colsPool) release(buf []int, touched []int) {
	assembly.ResetMap(buf, touched)
	p.mu.Lock()
	p.free = append(p.free, buf)
	p.mu.Unlock()
}
