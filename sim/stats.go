package sim

import "log/slog"

// FieldStats is a point-in-time census of the field: live animals and
// infections per species, plus the plant count.
type FieldStats struct {
	Animals  map[SpeciesID]int
	Infected map[SpeciesID]int
	Plants   int
}

// ComputeStats walks every cell once.
func ComputeStats(f *Field) FieldStats {
	stats := FieldStats{
		Animals:  make(map[SpeciesID]int),
		Infected: make(map[SpeciesID]int),
	}
	for row := 0; row < f.Height(); row++ {
		for col := 0; col < f.Width(); col++ {
			switch o := f.OrganismAt(Location{Row: row, Col: col}).(type) {
			case *Animal:
				if !o.Alive() {
					continue
				}
				stats.Animals[o.Species().ID]++
				if o.Disease().Infected() {
					stats.Infected[o.Species().ID]++
				}
			case *Plant:
				if o.Alive() {
					stats.Plants++
				}
			}
		}
	}
	return stats
}

// TotalAnimals returns the live animal count across all species.
func (s FieldStats) TotalAnimals() int {
	var total int
	for _, n := range s.Animals {
		total += n
	}
	return total
}

// TotalInfected returns the infected count across all species.
func (s FieldStats) TotalInfected() int {
	var total int
	for _, n := range s.Infected {
		total += n
	}
	return total
}

// Viable reports whether the run is worth continuing: at least one
// animal species still has live members.
func (s FieldStats) Viable() bool {
	for _, n := range s.Animals {
		if n > 0 {
			return true
		}
	}
	return false
}

// LogValue renders the census as one structured record per species.
func (s FieldStats) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(speciesTable)+1)
	for _, sp := range speciesTable {
		if n := s.Animals[sp.ID]; n > 0 {
			attrs = append(attrs, slog.Int(sp.Name, n))
		}
	}
	attrs = append(attrs, slog.Int("plants", s.Plants))
	if infected := s.TotalInfected(); infected > 0 {
		attrs = append(attrs, slog.Int("infected", infected))
	}
	return slog.GroupValue(attrs...)
}
