// File: algorithm.go
// Role: the functional-option-configured entry point that binds geometry
// hooks once at construction instead of threading them through every call.
package cluster

import (
	"github.com/ydarma/fluent-data/model"
	"github.com/ydarma/fluent-data/space"
)

// Algorithm binds a point type's geometry hooks and Params together so
// repeated calls against one model don't need to repeat sqDist/combine.
// The zero value is not usable; build one with New.
type Algorithm[P any] struct {
	sqDist  space.SqDistFunc[P]
	combine space.CombineFunc[P]
	params  Params
}

// New returns an Algorithm bound to sqDist and combine, with Params built
// from DefaultParams and opts applied in order.
func New[P any](sqDist space.SqDistFunc[P], combine space.CombineFunc[P], opts ...Option) *Algorithm[P] {
	return &Algorithm[P]{
		sqDist:  sqDist,
		combine: combine,
		params:  NewParams(opts...),
	}
}

// Update absorbs point p, observed at virtual time t, into m in place.
// Equivalent to calling the package-level Update with a's bound hooks and
// Params.
func (a *Algorithm[P]) Update(m *model.Model[P], p P, t int64) {
	Update(m, a.sqDist, a.combine, a.params, p, t)
}

// Params returns the Algorithm's current configuration.
func (a *Algorithm[P]) Params() Params { return a.params }
