package rng

import "testing"

func TestRNG_Deterministic(t *testing.T) {
	rng1 := New(42)
	rng2 := New(42)

	for i := 0; i < 20; i++ {
		a := rng1.Intn(6)
		b := rng2.Intn(6)
		if a != b {
			t.Fatalf("draw %d: got %d and %d from same seed", i, a, b)
		}
	}
}

func TestRNG_Intn_Range(t *testing.T) {
	r := New(7)

	for i := 0; i < 1000; i++ {
		v := r.Intn(3)
		if v < 0 || v > 2 {
			t.Fatalf("Intn out of range [0,3): got %d", v)
		}
	}
}

func TestRNG_Chance_Bounds(t *testing.T) {
	r := New(1)

	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) should never happen")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) should always happen")
		}
	}
	if r.Position() != 0 {
		t.Errorf("certain outcomes should not consume draws, position = %d", r.Position())
	}
}

func TestRNG_Chance_Distribution(t *testing.T) {
	r := New(12345)
	hits := 0

	const trials = 10000
	for i := 0; i < trials; i++ {
		if r.Chance(0.3) {
			hits++
		}
	}

	// With 10k trials, expect roughly 30% ± some margin.
	if hits < 2500 || hits > 3500 {
		t.Errorf("expected ~3000 hits for p=0.3, got %d", hits)
	}
}

func TestRNG_Position_Tracks(t *testing.T) {
	r := New(42)

	if r.Position() != 0 {
		t.Fatalf("expected position 0, got %d", r.Position())
	}

	r.Intn(6)
	if r.Position() != 1 {
		t.Fatalf("expected position 1, got %d", r.Position())
	}

	r.Chance(0.5)
	if r.Position() != 2 {
		t.Fatalf("expected position 2, got %d", r.Position())
	}

	r.Intn(20)
	r.Intn(20)
	if r.Position() != 4 {
		t.Fatalf("expected position 4, got %d", r.Position())
	}
}

func TestRNG_Seed(t *testing.T) {
	r := New(42)
	r.Intn(6)
	if r.Seed() != 42 {
		t.Errorf("expected seed 42, got %d", r.Seed())
	}
}

func TestRNG_DifferentSeeds_DifferentResults(t *testing.T) {
	rng1 := New(1)
	rng2 := New(2)

	differs := false
	for i := 0; i < 20; i++ {
		if rng1.Intn(100) != rng2.Intn(100) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("expected different seeds to produce different results")
	}
}
