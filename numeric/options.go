package numeric

import (
	"log/slog"

	"github.com/arai3racoon/taucs/assembly"
)

// Options holds the per-call tunables spec §6's public API names
// (thresh, max_depth, nproc) plus the assembly split threshold, configured
// the same functional-options way symbolic.Config is (spec SPEC_FULL
// ambient stack).
type Options struct {
	// Thresh is the partial-pivoting threshold in (0, 1].
	Thresh float64
	// MaxDepth caps fork-join recursion depth before switching to
	// sequential subtree factorization; 0 means no cutoff.
	MaxDepth int
	// NProc bounds concurrently in-flight factorization tasks. 1 selects
	// the strictly sequential postorder traversal (spec §5).
	NProc int
	// Assembly carries ALIGN_ADD_SMALL and any future assembly tunables.
	Assembly assembly.Config
	// Logger receives coarse Debug-level progress, nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns thresh=1.0 (no secondary pivoting criterion),
// max_depth=0 (no cutoff), nproc=1 (sequential).
func DefaultOptions() Options {
	return Options{
		Thresh:   1.0,
		MaxDepth: 0,
		NProc:    1,
		Assembly: assembly.DefaultConfig(),
	}
}

func (o Options) validate() error {
	if o.Thresh <= 0 || o.Thresh > 1 {
		return ErrBadConfig
	}
	if o.MaxDepth < 0 || o.NProc < 1 {
		return ErrBadConfig
	}

	return nil
}

// Option configures Options.
type Option func(*Options)

// WithThresh sets the partial-pivoting threshold.
func WithThresh(t float64) Option { return func(o *Options) { o.Thresh = t } }

// WithMaxDepth sets the fork-join recursion depth cutoff.
func WithMaxDepth(d int) Option { return func(o *Options) { o.MaxDepth = d } }

// WithNProc sets the worker cap for task-parallel traversal.
func WithNProc(n int) Option { return func(o *Options) { o.NProc = n } }

// WithAssemblyConfig overrides the assembly split configuration.
func WithAssemblyConfig(c assembly.Config) Option { return func(o *Options) { o.Assembly = c } }

// WithLogger attaches a logger for Debug-level progress messages.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }
