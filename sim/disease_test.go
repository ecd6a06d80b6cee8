package sim

import (
	"math/rand"
	"testing"
)

func TestTryInfect(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	d := NewDisease(5, 0.3, false)
	if !d.TryInfect(1, rng) {
		t.Fatal("probability 1 infection did not take")
	}
	if !d.Infected() {
		t.Fatal("Infected() false after successful infection")
	}
	if d.DaysInfected() != 0 {
		t.Errorf("fresh infection has daysInfected = %d, want 0", d.DaysInfected())
	}

	// Already infected animals cannot be re-infected.
	if d.TryInfect(1, rng) {
		t.Error("infection took on an already infected animal")
	}
}

func TestTryInfectImmune(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := NewDisease(1, 0, true)
	d.SetInfected(true)
	d.IncrementInfected()
	if !d.Due() {
		t.Fatal("infection not due after duration elapsed")
	}
	d.Resolve()

	if d.Infected() {
		t.Error("Infected() true after resolution")
	}
	if !d.Immune() {
		t.Error("survivor not immune despite immunity being enabled")
	}
	if d.TryInfect(1, rng) {
		t.Error("immune animal was infected")
	}
}

func TestResolveWithoutImmunity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := NewDisease(2, 0, false)
	d.SetInfected(true)
	d.IncrementInfected()
	if d.Due() {
		t.Fatal("infection due after one of two days")
	}
	d.IncrementInfected()
	if !d.Due() {
		t.Fatal("infection not due after two days")
	}
	d.Resolve()

	if d.Immune() {
		t.Error("immunity granted although disabled")
	}
	if d.DaysInfected() != 0 {
		t.Errorf("daysInfected = %d after resolution, want 0", d.DaysInfected())
	}
	if !d.TryInfect(1, rng) {
		t.Error("recovered non-immune animal could not be re-infected")
	}
}
