package sim

import "math/rand"

// Disease is the per-animal infection state machine:
// Healthy -> Infected -> {Recovered | Dead}. Each animal owns exactly one
// instance. daysInfected is zero whenever the animal is healthy.
type Disease struct {
	infected      bool
	immune        bool
	daysInfected  int
	duration      int
	mortalityRate float64
	grantImmunity bool
}

// NewDisease creates a healthy disease state with the run's resolution
// parameters. grantImmunity controls whether surviving an infection
// disables re-infection.
func NewDisease(duration int, mortalityRate float64, grantImmunity bool) *Disease {
	return &Disease{
		duration:      duration,
		mortalityRate: mortalityRate,
		grantImmunity: grantImmunity,
	}
}

// Infected reports whether the animal is currently infected.
func (d *Disease) Infected() bool { return d.infected }

// Immune reports whether the animal can no longer be infected.
func (d *Disease) Immune() bool { return d.immune }

// DaysInfected returns the length of the current infection, 0 if healthy.
func (d *Disease) DaysInfected() int { return d.daysInfected }

// Duration returns the number of days an infection lasts before
// resolution.
func (d *Disease) Duration() int { return d.duration }

// MortalityRate returns the probability of death at resolution.
func (d *Disease) MortalityRate() float64 { return d.mortalityRate }

// SetInfected forces the infection state; used for first-generation
// seeding. Infection always restarts the day counter.
func (d *Disease) SetInfected(infected bool) {
	d.infected = infected
	d.daysInfected = 0
}

// TryInfect draws once against probability and infects on success.
// Immune animals never catch the infection.
func (d *Disease) TryInfect(probability float64, rng *rand.Rand) bool {
	if d.infected || d.immune {
		return false
	}
	if rng.Float64() <= probability {
		d.SetInfected(true)
		return true
	}
	return false
}

// IncrementInfected advances the infection by one day.
func (d *Disease) IncrementInfected() {
	d.daysInfected++
}

// Due reports whether the infection has run its course and must resolve.
func (d *Disease) Due() bool {
	return d.infected && d.daysInfected >= d.duration
}

// Resolve ends the infection without death: the animal returns to
// healthy, optionally permanently immune.
func (d *Disease) Resolve() {
	d.infected = false
	d.daysInfected = 0
	if d.grantImmunity {
		d.immune = true
	}
}
