package parser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/nathoo/multiquest/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		verb     types.Verb
		modifier string
		valid    bool
	}{
		// Empty / whitespace
		{name: "empty string", input: "", verb: types.VerbUnknown},
		{name: "whitespace only", input: "   ", verb: types.VerbUnknown},

		// Basic verbs
		{name: "look", input: "look", verb: types.VerbLook, valid: true},
		{name: "inv", input: "inv", verb: types.VerbInventory, valid: true},
		{name: "help", input: "help", verb: types.VerbHelp, valid: true},

		// Synonyms
		{name: "take → get", input: "take bugle", verb: types.VerbGet, modifier: "bugle", valid: true},
		{name: "i → inv", input: "i", verb: types.VerbInventory, valid: true},
		{name: "inventory → inv", input: "inventory", verb: types.VerbInventory, valid: true},
		{name: "x → look", input: "x lamp", verb: types.VerbLook, modifier: "lamp", valid: true},
		{name: "kill → attack", input: "kill troll", verb: types.VerbAttack, modifier: "troll", valid: true},
		{name: "quaff → drink", input: "quaff potion", verb: types.VerbDrink, modifier: "potion", valid: true},

		// Multi-word phrases
		{name: "look at", input: "look at lamp", verb: types.VerbLook, modifier: "lamp", valid: true},
		{name: "pick up", input: "pick up bugle", verb: types.VerbGet, modifier: "bugle", valid: true},
		{name: "put down", input: "put down bugle", verb: types.VerbDrop, modifier: "bugle", valid: true},
		{name: "turn on", input: "turn on lantern", verb: types.VerbActivate, modifier: "lantern", valid: true},

		// Articles and case
		{name: "article stripped", input: "get the bugle", verb: types.VerbGet, modifier: "bugle", valid: true},
		{name: "upper case", input: "GET Bugle", verb: types.VerbGet, modifier: "bugle", valid: true},
		{name: "multi-word modifier", input: "eat stale bread", verb: types.VerbEat, modifier: "stale bread", valid: true},

		// Unknown
		{name: "unknown verb", input: "dance wildly", verb: types.VerbUnknown, modifier: "wildly"},
		{name: "go nowhere", input: "go sideways", verb: types.VerbMove, modifier: "sideways"},
		{name: "go alone", input: "go", verb: types.VerbMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got.Verb != tt.verb {
				t.Errorf("Parse(%q).Verb = %v, want %v", tt.input, got.Verb, tt.verb)
			}
			if got.Modifier != tt.modifier {
				t.Errorf("Parse(%q).Modifier = %q, want %q", tt.input, got.Modifier, tt.modifier)
			}
			if got.Valid != tt.valid {
				t.Errorf("Parse(%q).Valid = %v, want %v", tt.input, got.Valid, tt.valid)
			}
		})
	}
}

func TestParse_Directions(t *testing.T) {
	tests := []struct {
		input string
		want  types.Direction
	}{
		{"n", types.North},
		{"s", types.South},
		{"e", types.East},
		{"w", types.West},
		{"u", types.Up},
		{"d", types.Down},
		{"north", types.North},
		{"down", types.Down},
		{"go east", types.East},
		{"walk w", types.West},
		{"go UP", types.Up},
	}

	for _, tt := range tests {
		got := Parse(tt.input)
		if got.Verb != types.VerbMove {
			t.Errorf("Parse(%q).Verb = %v, want VerbMove", tt.input, got.Verb)
			continue
		}
		if !got.Valid {
			t.Errorf("Parse(%q) should be valid", tt.input)
		}
		if got.Direction != tt.want {
			t.Errorf("Parse(%q).Direction = %v, want %v", tt.input, got.Direction, tt.want)
		}
		if got.Modifier != types.DirectionNames[tt.want] {
			t.Errorf("Parse(%q).Modifier = %q, want %q", tt.input, got.Modifier, types.DirectionNames[tt.want])
		}
	}
}

func TestParse_LengthCapped(t *testing.T) {
	long := "get " + strings.Repeat("x", 200)
	got := Parse(long)
	if len(got.Raw) != MaxInputLength {
		t.Errorf("Raw length = %d, want %d", len(got.Raw), MaxInputLength)
	}
	if got.Verb != types.VerbGet {
		t.Errorf("Verb = %v, want VerbGet", got.Verb)
	}
}

func TestParse_LengthCapKeepsRunesWhole(t *testing.T) {
	prefix := "get " + strings.Repeat("a", MaxInputLength-5)
	got := Parse(prefix + "é")

	if got.Raw != prefix {
		t.Errorf("Raw = %q, want %q", got.Raw, prefix)
	}
	if !utf8.ValidString(got.Raw) || !utf8.ValidString(got.Modifier) {
		t.Errorf("truncation split a rune: raw %q, modifier %q", got.Raw, got.Modifier)
	}
}

func TestIsUseVerb(t *testing.T) {
	for _, v := range []types.Verb{types.VerbUse, types.VerbEat, types.VerbRead, types.VerbAttack} {
		if !IsUseVerb(v) {
			t.Errorf("IsUseVerb(%v) = false, want true", v)
		}
	}
	for _, v := range []types.Verb{types.VerbGet, types.VerbMove, types.VerbLook, types.VerbUnknown} {
		if IsUseVerb(v) {
			t.Errorf("IsUseVerb(%v) = true, want false", v)
		}
	}
}

func TestLookupVerb(t *testing.T) {
	if v, ok := LookupVerb("Read"); !ok || v != types.VerbRead {
		t.Errorf("LookupVerb(Read) = %v, %v", v, ok)
	}
	if _, ok := LookupVerb("juggle"); ok {
		t.Error("LookupVerb(juggle) should not be found")
	}
}
