package sim

import "math/rand"

// Field is a rectangular grid of cells, each holding at most one organism.
// Adjacency queries return the edge-clipped Moore neighbourhood in a fresh
// random order on every call; several algorithms rely on picking the first
// match from that shuffled order, so callers must not assume stability.
type Field struct {
	height int
	width  int
	cells  [][]Organism
	rng    *rand.Rand
}

// NewField constructs an empty height x width grid sharing the run's
// random source for neighbourhood shuffling.
func NewField(height, width int, rng *rand.Rand) *Field {
	cells := make([][]Organism, height)
	for row := range cells {
		cells[row] = make([]Organism, width)
	}
	return &Field{height: height, width: width, cells: cells, rng: rng}
}

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// InBounds reports whether loc lies on the grid.
func (f *Field) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < f.height && loc.Col >= 0 && loc.Col < f.width
}

// Clear empties every cell.
func (f *Field) Clear() {
	for row := range f.cells {
		for col := range f.cells[row] {
			f.cells[row][col] = nil
		}
	}
}

// Place puts an organism at loc, replacing whatever occupied the cell.
// Each cell holds a single reference, so the one-organism-per-cell
// invariant holds by construction.
func (f *Field) Place(o Organism, loc Location) {
	f.cells[loc.Row][loc.Col] = o
}

// Remove vacates the cell at loc.
func (f *Field) Remove(loc Location) {
	f.cells[loc.Row][loc.Col] = nil
}

// OrganismAt returns the occupant of loc, or nil for an empty cell.
func (f *Field) OrganismAt(loc Location) Organism {
	return f.cells[loc.Row][loc.Col]
}

// AnimalAt returns the animal at loc, if the cell holds one.
func (f *Field) AnimalAt(loc Location) (*Animal, bool) {
	a, ok := f.cells[loc.Row][loc.Col].(*Animal)
	return a, ok
}

// PlantAt returns the plant at loc, if the cell holds one.
func (f *Field) PlantAt(loc Location) (*Plant, bool) {
	p, ok := f.cells[loc.Row][loc.Col].(*Plant)
	return p, ok
}

// ReplaceDeadWithPlant fills the cell a dead animal vacated with a new
// plant.
func (f *Field) ReplaceDeadWithPlant(loc Location) {
	f.Remove(loc)
	NewPlant(f, loc)
}

// Adjacent returns the in-bounds Moore neighbours of loc, excluding loc
// itself, shuffled on every call.
func (f *Field) Adjacent(loc Location) []Location {
	locations := make([]Location, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		row := loc.Row + dr
		if row < 0 || row >= f.height {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			col := loc.Col + dc
			if col < 0 || col >= f.width || (dr == 0 && dc == 0) {
				continue
			}
			locations = append(locations, Location{Row: row, Col: col})
		}
	}
	f.rng.Shuffle(len(locations), func(i, j int) {
		locations[i], locations[j] = locations[j], locations[i]
	})
	return locations
}

// FreeAdjacentAll returns the shuffled adjacent locations not occupied by
// an animal. Cells holding plants count as free: newborns and movers
// displace them.
func (f *Field) FreeAdjacentAll(loc Location) []Location {
	var free []Location
	for _, next := range f.Adjacent(loc) {
		if _, occupied := f.AnimalAt(next); !occupied {
			free = append(free, next)
		}
	}
	return free
}

// FreeAdjacent returns one free adjacent location, if any exists.
func (f *Field) FreeAdjacent(loc Location) (Location, bool) {
	free := f.FreeAdjacentAll(loc)
	if len(free) == 0 {
		return Location{}, false
	}
	return free[0], true
}

// LivingNeighbourAnimals returns the live animals adjacent to loc, in
// shuffled order.
func (f *Field) LivingNeighbourAnimals(loc Location) []*Animal {
	var neighbours []*Animal
	for _, next := range f.Adjacent(loc) {
		if a, ok := f.AnimalAt(next); ok && a.Alive() {
			neighbours = append(neighbours, a)
		}
	}
	f.rng.Shuffle(len(neighbours), func(i, j int) {
		neighbours[i], neighbours[j] = neighbours[j], neighbours[i]
	})
	return neighbours
}
