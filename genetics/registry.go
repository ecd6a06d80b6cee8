package genetics

import (
	"errors"
	"fmt"
)

// ErrValidation reports an attribute operation rejected at the call site:
// a value outside its declared range, a kind mismatch, an inactive or
// unregistered attribute, or an out-of-range breeding bias.
var ErrValidation = errors.New("genetics: validation failed")

// Operator is a pluggable transformation applied to one attribute's value
// during breeding. Candidates outside the attribute's range are discarded.
type Operator struct {
	Name  string
	Apply func(Value) Value
}

// IntIncrement returns an operator adding delta to an integer attribute.
func IntIncrement(delta int) Operator {
	name := fmt.Sprintf("%+d", delta)
	return Operator{
		Name: name,
		Apply: func(v Value) Value {
			return IntValue(v.Int + delta)
		},
	}
}

// FloatIncrement returns an operator adding delta to a real attribute.
func FloatIncrement(delta float64) Operator {
	name := fmt.Sprintf("%+.2f", delta)
	return Operator{
		Name: name,
		Apply: func(v Value) Value {
			return FloatValue(v.Float + delta)
		},
	}
}

// Definition is the static per-attribute metadata: value kind, inclusive
// range, default, mutation probability, and candidate mutation operators.
// Definitions are shared read-only configuration, not per-animal state.
type Definition struct {
	Attr         Attribute
	Kind         Kind
	Min          Value
	Max          Value
	Default      Value
	MutationProb float64
	Operators    []Operator
}

// InRange reports whether v lies within the definition's inclusive bounds.
func (d Definition) InRange(v Value) bool {
	if v.Kind != d.Kind {
		return false
	}
	switch d.Kind {
	case KindInt:
		return v.Int >= d.Min.Int && v.Int <= d.Max.Int
	case KindFloat:
		return v.Float >= d.Min.Float && v.Float <= d.Max.Float
	}
	return false
}

// Registry holds the attribute definitions and activation flags for one
// simulation run. It replaces the original's global attribute manager:
// construct one per Simulator and pass it explicitly.
type Registry struct {
	defs   map[Attribute]Definition
	active map[Attribute]bool
}

// NewRegistry returns an empty registry. Registered attributes start
// inactive until enabled with SetActive.
func NewRegistry() *Registry {
	return &Registry{
		defs:   make(map[Attribute]Definition),
		active: make(map[Attribute]bool),
	}
}

// DefaultRegistry builds the standard six-attribute catalogue, all active.
// mutationProb is the shared per-attribute mutation probability.
func DefaultRegistry(mutationProb float64) *Registry {
	r := NewRegistry()

	r.Register(Definition{
		Attr: BreedingAge, Kind: KindInt,
		Min: IntValue(12), Max: IntValue(90), Default: IntValue(20),
		MutationProb: mutationProb,
		Operators:    []Operator{IntIncrement(1), IntIncrement(-1)},
	})
	r.Register(Definition{
		Attr: MaxAge, Kind: KindInt,
		Min: IntValue(10), Max: IntValue(120), Default: IntValue(60),
		MutationProb: mutationProb,
		Operators:    []Operator{IntIncrement(1), IntIncrement(-1)},
	})
	r.Register(Definition{
		Attr: BreedingProbability, Kind: KindFloat,
		Min: FloatValue(0), Max: FloatValue(1), Default: FloatValue(0.2),
		MutationProb: mutationProb,
		Operators:    []Operator{FloatIncrement(0.01), FloatIncrement(-0.01)},
	})
	r.Register(Definition{
		Attr: MaxLitterSize, Kind: KindInt,
		Min: IntValue(1), Max: IntValue(12), Default: IntValue(4),
		MutationProb: mutationProb,
		Operators:    []Operator{IntIncrement(1), IntIncrement(-1)},
	})
	r.Register(Definition{
		Attr: DiseaseProbability, Kind: KindFloat,
		Min: FloatValue(0), Max: FloatValue(1), Default: FloatValue(0.1),
		MutationProb: mutationProb,
		Operators:    []Operator{FloatIncrement(0.01), FloatIncrement(-0.01)},
	})
	r.Register(Definition{
		Attr: Metabolism, Kind: KindFloat,
		Min: FloatValue(0.25), Max: FloatValue(1), Default: FloatValue(0.5),
		MutationProb: mutationProb,
		Operators:    []Operator{FloatIncrement(0.01), FloatIncrement(-0.01)},
	})

	for _, attr := range AllAttributes() {
		r.active[attr] = true
	}
	return r
}

// Register adds or replaces a definition. Newly registered attributes keep
// their current activation state, defaulting to inactive.
func (r *Registry) Register(d Definition) {
	r.defs[d.Attr] = d
	if _, ok := r.active[d.Attr]; !ok {
		r.active[d.Attr] = false
	}
}

// SetActive enables or disables an attribute for the run.
func (r *Registry) SetActive(attr Attribute, active bool) error {
	if _, ok := r.defs[attr]; !ok {
		return fmt.Errorf("%w: unknown attribute %s", ErrValidation, attr)
	}
	r.active[attr] = active
	return nil
}

// Active reports whether an attribute participates in the simulation.
func (r *Registry) Active(attr Attribute) bool {
	return r.active[attr]
}

// Definition returns the metadata for attr, if registered.
func (r *Registry) Definition(attr Attribute) (Definition, bool) {
	d, ok := r.defs[attr]
	return d, ok
}

// ActiveAttributes returns the active attributes in catalogue order.
func (r *Registry) ActiveAttributes() []Attribute {
	attrs := make([]Attribute, 0, len(r.active))
	for _, attr := range AllAttributes() {
		if r.active[attr] {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}
