package genetics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedGene reports a gene string that cannot be decoded: wrong
// length or a non-numeric segment. Fatal for the decode, never retried.
var ErrMalformedGene = errors.New("genetics: malformed gene encoding")

// GeneLength is the fixed width of an encoded gene string.
const GeneLength = 14

// geneSegment describes one attribute's slot in the legacy fixed-width
// encoding. Real-valued attributes are stored scaled by 100.
type geneSegment struct {
	attr   Attribute
	start  int
	width  int
	scaled bool
}

var geneLayout = []geneSegment{
	{BreedingAge, 0, 2, false},
	{MaxAge, 2, 3, false},
	{BreedingProbability, 5, 2, true},
	{MaxLitterSize, 7, 2, false},
	{DiseaseProbability, 9, 2, true},
	{Metabolism, 11, 3, true},
}

// Encode renders the genetics as a fixed-width digit string. Attributes
// without a stored value encode their registered default. Values too wide
// for their slot are clamped, so Encode is lossy for probabilities at the
// very top of their range.
func (g *Genetics) Encode() string {
	var sb strings.Builder
	sb.Grow(GeneLength)
	for _, seg := range geneLayout {
		v, err := g.Value(seg.attr)
		var raw int
		if err == nil {
			if seg.scaled {
				raw = int(math.Round(v.Float * 100))
			} else {
				raw = v.Int
			}
		}
		limit := pow10(seg.width) - 1
		if raw > limit {
			raw = limit
		}
		if raw < 0 {
			raw = 0
		}
		fmt.Fprintf(&sb, "%0*d", seg.width, raw)
	}
	return sb.String()
}

// Decode parses a fixed-width gene string into a Genetics instance bound
// to reg. Only active attributes are populated; each decoded value passes
// the usual range validation.
func Decode(reg *Registry, gene string) (*Genetics, error) {
	if len(gene) != GeneLength {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrMalformedGene, len(gene), GeneLength)
	}
	g := &Genetics{reg: reg, values: make(map[Attribute]Value)}
	for _, seg := range geneLayout {
		if !reg.Active(seg.attr) {
			continue
		}
		raw, err := strconv.Atoi(gene[seg.start : seg.start+seg.width])
		if err != nil {
			return nil, fmt.Errorf("%w: segment %s is not numeric", ErrMalformedGene, seg.attr)
		}
		var v Value
		if seg.scaled {
			v = FloatValue(float64(raw) / 100)
		} else {
			v = IntValue(raw)
		}
		if err := g.Set(seg.attr, v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
