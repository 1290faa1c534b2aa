// Package parser converts command strings into Intents.
// Intentionally dumb: a verb, an optional modifier, and a synonym table.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/nathoo/multiquest/types"
)

// MaxInputLength caps how much of a raw command is considered.
const MaxInputLength = 80

var directionExpansions = map[string]types.Direction{
	"n":     types.North,
	"s":     types.South,
	"e":     types.East,
	"w":     types.West,
	"u":     types.Up,
	"d":     types.Down,
	"north": types.North,
	"south": types.South,
	"east":  types.East,
	"west":  types.West,
	"up":    types.Up,
	"down":  types.Down,
}

// verbSynonyms maps every accepted verb spelling to its canonical verb.
var verbSynonyms = map[string]types.Verb{
	// Movement
	"go":   types.VerbMove,
	"walk": types.VerbMove,
	"move": types.VerbMove,
	"run":  types.VerbMove,

	// Get / Drop
	"get":     types.VerbGet,
	"take":    types.VerbGet,
	"grab":    types.VerbGet,
	"carry":   types.VerbGet,
	"drop":    types.VerbDrop,
	"discard": types.VerbDrop,
	"leave":   types.VerbDrop,

	// Pets
	"pet":     types.VerbPet,
	"pat":     types.VerbPet,
	"stroke":  types.VerbPet,
	"tame":    types.VerbPet,
	"shoo":    types.VerbShoo,
	"dismiss": types.VerbShoo,

	// Inventory / Look
	"inv":       types.VerbInventory,
	"i":         types.VerbInventory,
	"inventory": types.VerbInventory,
	"look":      types.VerbLook,
	"l":         types.VerbLook,
	"examine":   types.VerbLook,
	"x":         types.VerbLook,
	"inspect":   types.VerbLook,

	// Use-class
	"use":      types.VerbUse,
	"eat":      types.VerbEat,
	"consume":  types.VerbEat,
	"devour":   types.VerbEat,
	"drink":    types.VerbDrink,
	"quaff":    types.VerbDrink,
	"sip":      types.VerbDrink,
	"wear":     types.VerbWear,
	"don":      types.VerbWear,
	"read":     types.VerbRead,
	"wave":     types.VerbWave,
	"brandish": types.VerbWave,
	"throw":    types.VerbThrow,
	"toss":     types.VerbThrow,
	"hurl":     types.VerbThrow,
	"activate": types.VerbActivate,
	"press":    types.VerbActivate,

	// Combat
	"attack": types.VerbAttack,
	"kill":   types.VerbAttack,
	"hit":    types.VerbAttack,
	"fight":  types.VerbAttack,
	"strike": types.VerbAttack,

	// Miscellaneous
	"help":    types.VerbHelp,
	"h":       types.VerbHelp,
	"?":       types.VerbHelp,
	"score":   types.VerbScore,
	"points":  types.VerbScore,
	"verbose": types.VerbVerbose,
	"quit":    types.VerbQuit,
	"q":       types.VerbQuit,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

// useVerbs are the verbs resolved against an item's action.
var useVerbs = map[types.Verb]bool{
	types.VerbUse:      true,
	types.VerbEat:      true,
	types.VerbDrink:    true,
	types.VerbWear:     true,
	types.VerbRead:     true,
	types.VerbWave:     true,
	types.VerbThrow:    true,
	types.VerbActivate: true,
	types.VerbAttack:   true,
}

// IsUseVerb reports whether v triggers item action resolution.
func IsUseVerb(v types.Verb) bool {
	return useVerbs[v]
}

// LookupVerb returns the canonical verb for a spelling, if known.
func LookupVerb(word string) (types.Verb, bool) {
	v, ok := verbSynonyms[strings.ToLower(word)]
	return v, ok
}

// Parse converts a raw command string into an Intent. Unknown verbs and
// moves without a direction come back with Valid unset.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if len(input) > MaxInputLength {
		n := MaxInputLength
		for n > 0 && !utf8.RuneStart(input[n]) {
			n--
		}
		input = input[:n]
	}
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))
	words = expandMultiWordVerbs(words)

	intent := types.Intent{Raw: input, Valid: true}

	// Direction shortcut: bare "n", "south", etc.
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			intent.Verb = types.VerbMove
			intent.Direction = dir
			intent.Modifier = types.DirectionNames[dir]
			return intent
		}
	}

	verb, ok := verbSynonyms[words[0]]
	if !ok {
		intent.Verb = types.VerbUnknown
		intent.Modifier = strings.Join(words[1:], " ")
		intent.Valid = false
		return intent
	}
	intent.Verb = verb
	intent.Modifier = strings.Join(stripArticles(words[1:]), " ")

	if verb == types.VerbMove {
		dir, ok := directionExpansions[intent.Modifier]
		if !ok {
			intent.Valid = false
			return intent
		}
		intent.Direction = dir
		intent.Modifier = types.DirectionNames[dir]
	}

	return intent
}

// expandMultiWordVerbs handles "look at", "pick up" and "put down".
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "look":
		if words[1] == "at" {
			return append([]string{"look"}, words[2:]...)
		}
	case "pick":
		if words[1] == "up" {
			return append([]string{"get"}, words[2:]...)
		}
	case "put":
		if words[1] == "down" {
			return append([]string{"drop"}, words[2:]...)
		}
	case "turn", "switch":
		if words[1] == "on" {
			return append([]string{"activate"}, words[2:]...)
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}
