// Package genetics implements the heritable attribute system: the attribute
// catalogue, validated mutation, breeding, and the legacy fixed-width gene
// string codec.
package genetics

import "fmt"

// Attribute identifies one heritable life parameter.
type Attribute uint8

const (
	BreedingAge Attribute = iota
	MaxAge
	BreedingProbability
	MaxLitterSize
	DiseaseProbability
	Metabolism

	numAttributes
)

// AllAttributes returns every attribute in catalogue order.
func AllAttributes() []Attribute {
	attrs := make([]Attribute, 0, numAttributes)
	for a := Attribute(0); a < numAttributes; a++ {
		attrs = append(attrs, a)
	}
	return attrs
}

// String returns a human-readable attribute name.
func (a Attribute) String() string {
	switch a {
	case BreedingAge:
		return "BreedingAge"
	case MaxAge:
		return "MaxAge"
	case BreedingProbability:
		return "BreedingProbability"
	case MaxLitterSize:
		return "MaxLitterSize"
	case DiseaseProbability:
		return "DiseaseProbability"
	case Metabolism:
		return "Metabolism"
	default:
		return "Unknown"
	}
}

// ParseAttribute resolves a configuration key ("breeding_age",
// "metabolism", ...) to its attribute.
func ParseAttribute(name string) (Attribute, error) {
	switch name {
	case "breeding_age":
		return BreedingAge, nil
	case "max_age":
		return MaxAge, nil
	case "breeding_probability":
		return BreedingProbability, nil
	case "max_litter_size":
		return MaxLitterSize, nil
	case "disease_probability":
		return DiseaseProbability, nil
	case "metabolism":
		return Metabolism, nil
	}
	return 0, fmt.Errorf("%w: unknown attribute %q", ErrValidation, name)
}

// Kind is the value type of an attribute.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
)

// Value holds one attribute value. Kind selects which field is meaningful.
type Value struct {
	Kind  Kind
	Int   int
	Float float64
}

// IntValue wraps an integer attribute value.
func IntValue(v int) Value {
	return Value{Kind: KindInt, Int: v}
}

// FloatValue wraps a real attribute value.
func FloatValue(v float64) Value {
	return Value{Kind: KindFloat, Float: v}
}
