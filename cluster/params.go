package cluster

// Params holds the dimensionless constants that govern decay, split, and
// merge behavior. All operate on squared distances and weights; none are
// scaled by the ambient geometry.
type Params struct {
	// DecayFactor is the per-virtual-time-unit multiplicative weight
	// decay: decay(Δt) = DecayFactor^Δt.
	DecayFactor float64

	// SplitThreshold is the ratio of an absorbed point's squared
	// distance to a ball's pre-absorption radius above which the ball
	// splits. A runner-up ball is not required to split; when one
	// exists, it only decides whether the new ball is also wired to it.
	SplitThreshold float64

	// MergeThreshold is the fraction of two adjacent balls' summed radii
	// below which their center-to-center squared distance triggers a
	// merge.
	MergeThreshold float64

	// MinWeight is the floor a ball's pre-absorption weight must meet
	// before it is allowed to split.
	MinWeight float64

	// PruneThreshold, when positive, removes a ball whose decayed weight
	// falls below it after an update touches the ball. Zero (the
	// default) disables pruning.
	PruneThreshold float64
}

// DefaultParams returns the engine's default constants.
func DefaultParams() Params {
	return Params{
		DecayFactor:    0.99,
		SplitThreshold: 4.0,
		MergeThreshold: 1.0,
		MinWeight:      1.0,
		PruneThreshold: 0,
	}
}

// Option configures Params away from their defaults.
type Option func(*Params)

// WithDecayFactor overrides DecayFactor.
func WithDecayFactor(v float64) Option { return func(p *Params) { p.DecayFactor = v } }

// WithSplitThreshold overrides SplitThreshold.
func WithSplitThreshold(v float64) Option { return func(p *Params) { p.SplitThreshold = v } }

// WithMergeThreshold overrides MergeThreshold.
func WithMergeThreshold(v float64) Option { return func(p *Params) { p.MergeThreshold = v } }

// WithMinWeight overrides MinWeight.
func WithMinWeight(v float64) Option { return func(p *Params) { p.MinWeight = v } }

// WithPruneThreshold enables pruning of balls whose decayed weight falls
// below v. Pruning is off by default: a decayed-away ball still carries
// topological meaning (it anchors edges to its neighbors) that the
// default configuration preserves.
func WithPruneThreshold(v float64) Option { return func(p *Params) { p.PruneThreshold = v } }

// NewParams builds Params from DefaultParams with opts applied in order.
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// WithParams overrides every field at once with an already-built Params
// value, for callers (e.g. cmd/fluentd) that assemble Params from flags
// before handing them to New.
func WithParams(v Params) Option { return func(p *Params) { *p = v } }
