package genetics

import (
	"fmt"
	"math/rand"
)

// Genetics is one animal's set of inherited attribute values. Identity is
// immutable per animal: values change only at breeding time, via Mutate on
// the offspring's copy.
type Genetics struct {
	reg    *Registry
	values map[Attribute]Value
}

// NewRandom draws a value uniformly from each active attribute's range.
func NewRandom(reg *Registry, rng *rand.Rand) *Genetics {
	g := &Genetics{reg: reg, values: make(map[Attribute]Value)}
	for _, attr := range reg.ActiveAttributes() {
		def, ok := reg.Definition(attr)
		if !ok {
			continue
		}
		switch def.Kind {
		case KindInt:
			span := def.Max.Int - def.Min.Int
			g.values[attr] = IntValue(def.Min.Int + rng.Intn(span+1))
		case KindFloat:
			span := def.Max.Float - def.Min.Float
			g.values[attr] = FloatValue(def.Min.Float + rng.Float64()*span)
		}
	}
	return g
}

// Has reports whether this instance carries a value for attr.
func (g *Genetics) Has(attr Attribute) bool {
	_, ok := g.values[attr]
	return ok
}

// Value returns the stored value for attr, falling back to the registered
// default when unset.
func (g *Genetics) Value(attr Attribute) (Value, error) {
	if v, ok := g.values[attr]; ok {
		return v, nil
	}
	if def, ok := g.reg.Definition(attr); ok {
		return def.Default, nil
	}
	return Value{}, fmt.Errorf("%w: attribute %s not initialized", ErrValidation, attr)
}

// Set assigns a value after validating that the attribute is active, the
// kind matches, and the value lies within the declared range. Rejected
// values leave the instance unchanged.
func (g *Genetics) Set(attr Attribute, v Value) error {
	if !g.reg.Active(attr) {
		return fmt.Errorf("%w: cannot set inactive attribute %s", ErrValidation, attr)
	}
	def, ok := g.reg.Definition(attr)
	if !ok {
		return fmt.Errorf("%w: no definition for attribute %s", ErrValidation, attr)
	}
	if v.Kind != def.Kind {
		return fmt.Errorf("%w: wrong kind for attribute %s", ErrValidation, attr)
	}
	if !def.InRange(v) {
		switch def.Kind {
		case KindInt:
			return fmt.Errorf("%w: value %d for %s outside range [%d, %d]",
				ErrValidation, v.Int, attr, def.Min.Int, def.Max.Int)
		default:
			return fmt.Errorf("%w: value %g for %s outside range [%g, %g]",
				ErrValidation, v.Float, attr, def.Min.Float, def.Max.Float)
		}
	}
	g.values[attr] = v
	return nil
}

// Copy returns a deep copy carrying only active attributes.
func (g *Genetics) Copy() *Genetics {
	c := &Genetics{reg: g.reg, values: make(map[Attribute]Value, len(g.values))}
	for attr, v := range g.values {
		if g.reg.Active(attr) {
			c.values[attr] = v
		}
	}
	return c
}

// Mutate applies at most one operator per active attribute: with the
// attribute's mutation probability, pick a candidate operator uniformly
// and accept the result only if it stays within range. A rejected mutation
// is discarded for this event, not retried. Returns g for chaining.
func (g *Genetics) Mutate(rng *rand.Rand) *Genetics {
	for _, attr := range g.reg.ActiveAttributes() {
		cur, ok := g.values[attr]
		if !ok {
			continue
		}
		def, ok := g.reg.Definition(attr)
		if !ok || len(def.Operators) == 0 {
			continue
		}
		if rng.Float64() >= def.MutationProb {
			continue
		}
		op := def.Operators[rng.Intn(len(def.Operators))]
		if next := op.Apply(cur); def.InRange(next) {
			g.values[attr] = next
		}
	}
	return g
}

// Breed combines two parents into offspring genetics: each active attribute
// present in both parents is inherited from one of them uniformly at
// random; attributes present in only one parent are inherited unmodified.
func Breed(a, b *Genetics, rng *rand.Rand) *Genetics {
	child := &Genetics{reg: a.reg, values: make(map[Attribute]Value)}
	for _, attr := range a.reg.ActiveAttributes() {
		av, aOK := a.values[attr]
		bv, bOK := b.values[attr]
		switch {
		case aOK && bOK:
			if rng.Intn(2) == 0 {
				child.values[attr] = av
			} else {
				child.values[attr] = bv
			}
		case aOK:
			child.values[attr] = av
		case bOK:
			child.values[attr] = bv
		}
	}
	return child
}

// BreedBlended is the advanced breeding variant. With blendNumerics set,
// numeric attributes become the bias-weighted average of the parents
// (rounded for integers); otherwise inheritance picks parent a with
// probability bias. bias must lie in [0, 1].
func BreedBlended(a, b *Genetics, bias float64, blendNumerics bool, rng *rand.Rand) (*Genetics, error) {
	if bias < 0 || bias > 1 {
		return nil, fmt.Errorf("%w: parent bias %g outside [0, 1]", ErrValidation, bias)
	}
	child := &Genetics{reg: a.reg, values: make(map[Attribute]Value)}
	for _, attr := range a.reg.ActiveAttributes() {
		av, aOK := a.values[attr]
		bv, bOK := b.values[attr]
		if !aOK && !bOK {
			continue
		}
		if !aOK {
			child.values[attr] = bv
			continue
		}
		if !bOK {
			child.values[attr] = av
			continue
		}

		def, ok := a.reg.Definition(attr)
		if !ok {
			continue
		}
		if blendNumerics {
			switch def.Kind {
			case KindInt:
				blended := float64(av.Int)*bias + float64(bv.Int)*(1-bias)
				child.values[attr] = IntValue(int(blended + 0.5))
			case KindFloat:
				child.values[attr] = FloatValue(av.Float*bias + bv.Float*(1-bias))
			}
			continue
		}
		if rng.Float64() < bias {
			child.values[attr] = av
		} else {
			child.values[attr] = bv
		}
	}
	return child, nil
}

// Typed accessors used throughout the lifecycle. Unset attributes resolve
// to the registered default.

func (g *Genetics) intAttr(attr Attribute) int {
	v, err := g.Value(attr)
	if err != nil {
		return 0
	}
	return v.Int
}

func (g *Genetics) floatAttr(attr Attribute) float64 {
	v, err := g.Value(attr)
	if err != nil {
		return 0
	}
	return v.Float
}

// GetBreedingAge returns the minimum age for reproduction.
func (g *Genetics) GetBreedingAge() int { return g.intAttr(BreedingAge) }

// GetMaxAge returns the maximum lifespan in days.
func (g *Genetics) GetMaxAge() int { return g.intAttr(MaxAge) }

// GetBreedingProbability returns the per-day chance of a litter.
func (g *Genetics) GetBreedingProbability() float64 { return g.floatAttr(BreedingProbability) }

// GetMaxLitterSize returns the largest possible litter.
func (g *Genetics) GetMaxLitterSize() int { return g.intAttr(MaxLitterSize) }

// GetDiseaseProbability returns the chance of catching an infection from
// a sick neighbour.
func (g *Genetics) GetDiseaseProbability() float64 { return g.floatAttr(DiseaseProbability) }

// GetMetabolism returns the daily food drain.
func (g *Genetics) GetMetabolism() float64 { return g.floatAttr(Metabolism) }
