package sim

import (
	"errors"
	"fmt"
)

// ErrUnknownSpecies reports a species key with no entry in the species
// table. It indicates a configuration/weights mismatch and is fatal.
var ErrUnknownSpecies = errors.New("sim: unknown species")

// SpeciesID identifies one species in the table.
type SpeciesID uint8

const (
	Tiger SpeciesID = iota
	Leopard
	Hare
	Deer
	WildBoar
)

// Species is a per-species descriptor: feeding strategy, prey-priority
// tables, and display metadata. Species differ only by this data; the
// Animal lifecycle is shared.
type Species struct {
	ID   SpeciesID
	Name string
	Icon string

	// Feeding configuration. A hunter scans its prey lists in priority
	// order; an opportunist hunts with HuntProbability before falling
	// back to grazing. Grazers eat plants.
	Hunts           bool
	Grazes          bool
	HuntProbability float64 // 1 for dedicated hunters
	YoungPrey       []SpeciesID
	AdultPrey       []SpeciesID
}

// Predator reports whether the species ever hunts.
func (s *Species) Predator() bool { return s.Hunts }

var speciesTable = []*Species{
	{
		ID: Tiger, Name: "Tiger", Icon: "\U0001F42F",
		Hunts: true, HuntProbability: 1,
		YoungPrey: []SpeciesID{Hare, Deer},
		AdultPrey: []SpeciesID{WildBoar, Deer, Hare},
	},
	{
		ID: Leopard, Name: "Leopard", Icon: "\U0001F406",
		Hunts: true, HuntProbability: 1,
		YoungPrey: []SpeciesID{Hare, Deer},
		AdultPrey: []SpeciesID{Deer, WildBoar, Hare},
	},
	{
		ID: Hare, Name: "Hare", Icon: "\U0001F430",
		Grazes: true,
	},
	{
		ID: Deer, Name: "Deer", Icon: "\U0001F98C",
		Grazes: true,
	},
	{
		ID: WildBoar, Name: "WildBoar", Icon: "\U0001F417",
		Hunts: true, Grazes: true, HuntProbability: 0.2,
		YoungPrey: []SpeciesID{Hare},
		AdultPrey: []SpeciesID{Hare},
	},
}

// speciesKeys maps configuration keys to table entries.
var speciesKeys = map[string]*Species{
	"tiger":     speciesTable[Tiger],
	"leopard":   speciesTable[Leopard],
	"hare":      speciesTable[Hare],
	"deer":      speciesTable[Deer],
	"wild_boar": speciesTable[WildBoar],
}

// SpeciesByID returns the descriptor for id.
func SpeciesByID(id SpeciesID) *Species {
	return speciesTable[id]
}

// SpeciesByKey resolves a configuration key ("tiger", "wild_boar", ...)
// to its descriptor.
func SpeciesByKey(key string) (*Species, error) {
	sp, ok := speciesKeys[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, key)
	}
	return sp, nil
}

// AllSpecies returns every species descriptor in table order.
func AllSpecies() []*Species {
	return speciesTable
}
