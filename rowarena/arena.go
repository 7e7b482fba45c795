package rowarena

import "sort"

// Arena is a packed int workspace holding one variable-length segment per
// slot id. Segments are appended at a watermark; Free only tombstones a
// segment, and GC is what actually reclaims the space by sliding the
// surviving segments left, in start order (spec §4.2).
type Arena struct {
	buf     []int
	start   []int
	size    []int
	stored  []bool // id has a segment, live or tombstoned
	cleared []bool // id's segment is tombstoned, pending GC
	live    int    // number of stored && !cleared slots
	mark    int    // next free offset in buf
}

// NewArena allocates a workspace of n slot ids backed by capacity ints.
// Callers size capacity as roughly nnz(A) + k·n (k≈2) so that, in the
// common case, the arena fills up and is GC'd only a small constant number
// of times over the course of an analysis (spec §4.2).
func NewArena(capacity, n int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	if n < 0 {
		n = 0
	}
	return &Arena{
		buf:     make([]int, capacity),
		start:   make([]int, n),
		size:    make([]int, n),
		stored:  make([]bool, n),
		cleared: make([]bool, n),
	}
}

// N reports the number of addressable slot ids.
func (a *Arena) N() int { return len(a.start) }

func (a *Arena) valid(id int) bool { return id >= 0 && id < len(a.start) }

// Store copies pattern into the arena under id, replacing anything
// previously stored there. It runs a compacting GC first if the tail does
// not have room.
func (a *Arena) Store(id int, pattern []int) error {
	if !a.valid(id) {
		return ErrOutOfRange
	}
	if a.mark+len(pattern) > len(a.buf) {
		a.gc()
	}
	if a.mark+len(pattern) > len(a.buf) {
		return ErrTooLarge
	}
	if a.stored[id] && !a.cleared[id] {
		// overwriting a still-live slot without an explicit Free first
		a.live--
	}
	copy(a.buf[a.mark:], pattern)
	a.start[id] = a.mark
	a.size[id] = len(pattern)
	a.stored[id] = true
	a.cleared[id] = false
	a.mark += len(pattern)
	a.live++

	return nil
}

// Rows returns the live pattern stored under id.
func (a *Arena) Rows(id int) ([]int, error) {
	if !a.valid(id) {
		return nil, ErrOutOfRange
	}
	if !a.stored[id] || a.cleared[id] {
		return nil, ErrNotLive
	}
	return a.buf[a.start[id] : a.start[id]+a.size[id]], nil
}

// Free tombstones id's segment without immediately reclaiming its space;
// the space is recovered on the next GC pass.
func (a *Arena) Free(id int) error {
	if !a.valid(id) {
		return ErrOutOfRange
	}
	if !a.stored[id] || a.cleared[id] {
		return nil
	}
	a.cleared[id] = true
	a.live--

	return nil
}

// gc compacts every live segment to the front of buf, in ascending start
// order, and resets mark to the new tail.
func (a *Arena) gc() {
	ids := make([]int, 0, a.live)
	for id := range a.start {
		if a.stored[id] && !a.cleared[id] {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return a.start[ids[i]] < a.start[ids[j]] })

	dst := 0
	for _, id := range ids {
		s, n := a.start[id], a.size[id]
		if s != dst {
			copy(a.buf[dst:dst+n], a.buf[s:s+n])
		}
		a.start[id] = dst
		dst += n
	}
	a.mark = dst
}
