package sim

// Organism is any field-occupying entity: a Plant or an Animal. An organism
// is owned by the field while alive and vacates its cell the moment it dies.
type Organism interface {
	Location() Location
	Alive() bool
	SetDead()
}

// Plant is a passive organism: it has no behaviour of its own and is
// consumed atomically when grazed.
type Plant struct {
	field *Field
	loc   Location
	alive bool
}

// PlantIcon is the display glyph for population stats.
const PlantIcon = "\U0001F331"

// NewPlant creates a plant and places it on the field.
func NewPlant(field *Field, loc Location) *Plant {
	p := &Plant{field: field, loc: loc, alive: true}
	field.Place(p, loc)
	return p
}

// Location returns the plant's cell.
func (p *Plant) Location() Location { return p.loc }

// Alive reports whether the plant is still in the field.
func (p *Plant) Alive() bool { return p.alive }

// SetDead consumes the plant, vacating its cell.
func (p *Plant) SetDead() {
	p.alive = false
	p.field.Remove(p.loc)
}
