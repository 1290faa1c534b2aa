package fortune

import (
	"testing"
	"time"

	"github.com/nathoo/multiquest/engine/rng"
)

func TestFortune_TimeBasedStableWithinMinute(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)
	c := &Cookies{Lines: []string{"a", "b", "c"}, Now: func() time.Time { return base }}

	first := c.Fortune(TimeBased)
	c.Now = func() time.Time { return base.Add(59 * time.Second) }
	if got := c.Fortune(TimeBased); got != first {
		t.Errorf("same minute gave %q and %q", first, got)
	}

	c.Now = func() time.Time { return base.Add(time.Minute) }
	if got := c.Fortune(TimeBased); got == first {
		t.Errorf("next minute should advance past %q", first)
	}
}

func TestFortune_TimeBasedIndex(t *testing.T) {
	at := time.Unix(60*4, 0)
	c := &Cookies{Lines: []string{"a", "b", "c"}, Now: func() time.Time { return at }}

	// minute 4 % 3 == 1
	if got := c.Fortune(TimeBased); got != "b" {
		t.Errorf("Fortune = %q, want b", got)
	}
}

func TestFortune_RandomDeterministicBySeed(t *testing.T) {
	a := NewCookies(rng.New(7))
	b := NewCookies(rng.New(7))

	for i := 0; i < 10; i++ {
		if x, y := a.Fortune(Random), b.Fortune(Random); x != y {
			t.Fatalf("draw %d: %q vs %q", i, x, y)
		}
	}
}

func TestFortune_EmptyJar(t *testing.T) {
	c := &Cookies{}
	if got := c.Fortune(Random); got != "" {
		t.Errorf("empty jar gave %q", got)
	}
}
