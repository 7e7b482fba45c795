package assembly

// NoMap is the sentinel a map_rows/map_cols workspace slot holds when the
// corresponding original row/column index is not part of the current front.
const NoMap = -1

// NewMap allocates a map_rows/map_cols workspace of length n, reset to
// NoMap.
func NewMap(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = NoMap
	}

	return m
}

// ResetMap restores every slot in m that was set to one of the given
// original indices back to NoMap, the cleanup step spec §4.4 requires
// ("reset the slots of map_rows touched by this supercolumn back to the
// sentinel") without having to zero the whole array.
func ResetMap(m []int, touched []int) {
	for _, idx := range touched {
		m[idx] = NoMap
	}
}

// Config holds the compile-time constants spec §6 names for the assembly
// step.
type Config struct {
	AlignAddSmall int
}

// DefaultConfig returns ALIGN_ADD_SMALL = 80, spec §6's default.
func DefaultConfig() Config {
	return Config{AlignAddSmall: 80}
}

// Option configures a Config.
type Option func(*Config)

// WithAlignAddSmall overrides ALIGN_ADD_SMALL.
func WithAlignAddSmall(n int) Option {
	return func(c *Config) { c.AlignAddSmall = n }
}
