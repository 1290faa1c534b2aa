// Package messages selects narrative text from a session's message-variant
// table. Several rows may share a tag; one is picked at random and its '@'
// placeholder is replaced by the argument.
package messages

import (
	"strings"

	"github.com/nathoo/multiquest/engine/rng"
	"github.com/nathoo/multiquest/types"
)

// Placeholder is the interpolation marker inside message text.
const Placeholder = "@"

// Message tags used by the engine.
const (
	Any             = "any"
	Empty           = "empty"
	NoWhere         = "nowhere"
	Blocked         = "blocked"
	DeadMove        = "deadmove"
	GetSuccess      = "getsuccess"
	GetFail         = "getfail"
	GetPet          = "getpet"
	DropSuccess     = "dropsuccess"
	DropFail        = "dropfail"
	PetSuccess      = "petsuccess"
	PetFail         = "petfail"
	ShooSuccess     = "shoosuccess"
	ShooFail        = "shoofail"
	LookNothing     = "looknothing"
	LookFail        = "lookfail"
	UseFail         = "usefail"
	HealthDown      = "healthdown"
	HealthFull      = "healthfull"
	HealthUp        = "healthup"
	Unlock          = "unlock"
	Lock            = "lock"
	Teleport        = "teleport"
	Fortune         = "fortune"
	NoTarget        = "notarget"
	NoWeapon        = "noweapon"
	PetOnly         = "petonly"
	DeadAttack      = "deadattack"
	MonsterAppears  = "monsterappears"
	MonsterHit      = "monsterhit"
	MonsterMiss     = "monstermiss"
	MonsterHurt     = "monsterhurt"
	MonsterDefeated = "monsterdefeated"
	PetAttack       = "petattack"
	PetMiss         = "petmiss"
	PetDefeated     = "petdefeated"
	Points          = "points"
	Score           = "score"
	Verbose         = "verbose"
	Terse           = "terse"
	Dead            = "dead"
	LowHealth       = "lowhealth"
)

// DeadMoveText is the fixed refusal for a dead player trying to move.
const DeadMoveText = "Dead people don't move."

// defaults are used when a title does not supply a tag.
var defaults = map[string]string{
	Any:             "You can't do that.",
	Empty:           "What do you want to do?",
	NoWhere:         "Go where?",
	Blocked:         "You can't go that way.",
	DeadMove:        DeadMoveText,
	GetSuccess:      "You pick up the @.",
	GetFail:         "You don't see a @ here.",
	GetPet:          "The @ won't be carried. Try petting it.",
	DropSuccess:     "You drop the @.",
	DropFail:        "You aren't carrying a @.",
	PetSuccess:      "You pet the @. It decides to follow you.",
	PetFail:         "There is no @ here to pet.",
	ShooSuccess:     "You shoo the @ away.",
	ShooFail:        "The @ isn't following you.",
	LookNothing:     "Look at what?",
	LookFail:        "You don't see a @ here.",
	UseFail:         "You can't use that here.",
	HealthDown:      "That didn't agree with you. You feel worse.",
	HealthFull:      "You felt very full.",
	HealthUp:        "You feel better.",
	Unlock:          "Something opens with a click.",
	Lock:            "Something closes with a click.",
	Teleport:        "The world spins around you.",
	Fortune:         "A voice whispers: @",
	NoTarget:        "There is nothing here to fight.",
	NoWeapon:        "You need the @ to hurt it.",
	PetOnly:         "No weapon can hurt the @. Perhaps a pet could.",
	DeadAttack:      "You are in no condition to fight.",
	MonsterAppears:  "A @ appears!",
	MonsterHit:      "The @ hits you!",
	MonsterMiss:     "The @ misses you.",
	MonsterHurt:     "You wound the @.",
	MonsterDefeated: "You have defeated the @!",
	PetAttack:       "Your pet bites the @.",
	PetMiss:         "Your pet snaps at the @ but misses.",
	PetDefeated:     "Your pet has defeated the @!",
	Points:          "You earned @ points.",
	Score:           "Your score is @.",
	Verbose:         "Verbose mode on.",
	Terse:           "Verbose mode off.",
	Dead:            "You have died.",
	LowHealth:       "You are badly hurt.",
}

// Table picks message variants for one session.
type Table struct {
	rows []types.Message
	rng  rng.Source
}

// NewTable builds a table over the given rows.
func NewTable(rows []types.Message, src rng.Source) Table {
	return Table{rows: rows, rng: src}
}

// Text returns a variant for tag with arg interpolated. Tags missing from
// the session fall back to the built-in text, then to the "any" text.
func (t Table) Text(tag, arg string) string {
	var variants []string
	for _, m := range t.rows {
		if strings.EqualFold(m.Tag, tag) {
			variants = append(variants, m.Text)
		}
	}

	var text string
	switch {
	case len(variants) == 1:
		text = variants[0]
	case len(variants) > 1:
		text = variants[t.rng.Intn(len(variants))]
	default:
		d, ok := defaults[strings.ToLower(tag)]
		if !ok {
			d = defaults[Any]
		}
		text = d
	}
	return strings.ReplaceAll(text, Placeholder, arg)
}

// Has reports whether the session defines at least one row for tag.
func (t Table) Has(tag string) bool {
	for _, m := range t.rows {
		if strings.EqualFold(m.Tag, tag) {
			return true
		}
	}
	return false
}
