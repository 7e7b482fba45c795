package symbolic

// Config holds the tunables governing supercolumn detection and
// relaxation (spec §4.3). Zero values from a bare Config{} are not
// meaningful; always start from DefaultConfig.
type Config struct {
	// MaxSupercolSize caps the number of raw columns a single supercolumn
	// may absorb. -1 (spec's MAX_SUPERCOL_SIZE sentinel) disables the cap;
	// 0 also disables it, for callers that prefer a zero-value Config.
	MaxSupercolSize int
	// MaxOverfillRatio bounds how much denser a merged front may be than
	// the sum of the raw columns it absorbs, once the chain exceeds
	// RelaxRuleSize. A ratio of 2.0 allows the merged front to cost up to
	// twice the combined naive per-column cost.
	MaxOverfillRatio float64
	// RelaxRuleSize is the chain length, in raw columns, below which
	// one-child absorption always proceeds regardless of overfill.
	RelaxRuleSize int
	// UnionByRank selects union-by-rank for the internal union-find used
	// during elimination-tree construction.
	UnionByRank bool
}

// DefaultConfig returns the configuration used when Analyze is called
// without options.
func DefaultConfig() Config {
	return Config{
		MaxSupercolSize:  -1,
		MaxOverfillRatio: 2.0,
		RelaxRuleSize:    20,
		UnionByRank:      true,
	}
}

func (c Config) validate() error {
	if c.MaxSupercolSize < -1 {
		return ErrBadConfig
	}
	if c.MaxOverfillRatio <= 0 {
		return ErrBadConfig
	}
	if c.RelaxRuleSize < 0 {
		return ErrBadConfig
	}

	return nil
}

// Option configures Analyze.
type Option func(*Config)

// WithMaxSupercolSize bounds the number of raw columns any one
// supercolumn may absorb. -1 (spec's sentinel) or 0 disables the cap.
func WithMaxSupercolSize(n int) Option {
	return func(c *Config) { c.MaxSupercolSize = n }
}

// WithMaxOverfillRatio sets the overfill ratio gate applied once a chain
// exceeds RelaxRuleSize.
func WithMaxOverfillRatio(r float64) Option {
	return func(c *Config) { c.MaxOverfillRatio = r }
}

// WithRelaxRuleSize sets the chain length under which one-child
// absorption is always applied.
func WithRelaxRuleSize(n int) Option {
	return func(c *Config) { c.RelaxRuleSize = n }
}

// WithUnionByRank toggles union-by-rank in the internal union-find.
func WithUnionByRank(b bool) Option {
	return func(c *Config) { c.UnionByRank = b }
}
