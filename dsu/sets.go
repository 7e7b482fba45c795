package dsu

// Sets is a disjoint-set forest over the integers 0..n-1.
//
// The zero value is not usable; construct with MakeSets. Find uses
// recursive path compression; Union optionally ranks by tree height when
// the structure was built with WithUnionByRank.
type Sets struct {
	parent []int
	rank   []int
	byRank bool
}

// Option configures a Sets instance at construction time.
type Option func(*Sets)

// WithUnionByRank enables union-by-rank: the shorter tree is always
// attached under the taller one, bounding tree height by log2(n) and
// keeping Find shallow without relying solely on path compression.
func WithUnionByRank() Option {
	return func(s *Sets) { s.byRank = true }
}

// MakeSets returns a group of n singleton sets: {0}, {1}, ..., {n-1}.
//
// Complexity: O(n) time and memory.
func MakeSets(n int, opts ...Option) *Sets {
	s := &Sets{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range s.parent {
		s.parent[i] = i
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Len returns the size of the underlying universe.
func (s *Sets) Len() int { return len(s.parent) }

// Find returns the representative of the set containing x, compressing
// the path from x to the root so future Find(x) calls are O(1).
//
// Complexity: amortized O(α(n)).
func (s *Sets) Find(x int) (int, error) {
	if x < 0 || x >= len(s.parent) {
		return 0, ErrOutOfRange
	}

	return s.find(x), nil
}

// find is the unchecked recursive path-compressed lookup used internally
// once callers have already validated their indices.
func (s *Sets) find(x int) int {
	if s.parent[x] != x {
		s.parent[x] = s.find(s.parent[x])
	}

	return s.parent[x]
}

// Union merges the sets containing x and y and returns the representative
// of the merged set.
//
// Without WithUnionByRank, the merge is unconditional: parent[find(x)] is
// set to find(y), and find(y) is returned — this mirrors the symbolic
// engine's own row-merge step (spec §4.3), which always attaches the
// absorbed superrow's root under the newly created column's root.
//
// With WithUnionByRank, the shorter tree attaches under the taller one,
// and the rank of the surviving root is incremented only when the two
// trees had equal rank.
//
// Complexity: O(α(n)) amortized.
func (s *Sets) Union(x, y int) (int, error) {
	rx, err := s.Find(x)
	if err != nil {
		return 0, err
	}
	ry, err := s.Find(y)
	if err != nil {
		return 0, err
	}
	if rx == ry {
		return rx, nil
	}

	if !s.byRank {
		s.parent[rx] = ry

		return ry, nil
	}

	if s.rank[rx] < s.rank[ry] {
		s.parent[rx] = ry

		return ry, nil
	}
	if s.rank[rx] > s.rank[ry] {
		s.parent[ry] = rx

		return rx, nil
	}
	s.parent[ry] = rx
	s.rank[rx]++

	return rx, nil
}
