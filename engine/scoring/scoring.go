// Package scoring awards one-time milestone points and derives health bands.
package scoring

import (
	"strings"

	"github.com/nathoo/multiquest/engine/state"
	"github.com/nathoo/multiquest/types"
)

// Synthetic milestone key prefixes for monster defeats.
const (
	DefeatedPrefix    = "Defeated"
	PetDefeatedPrefix = "PetDefeated"
)

// Seen reports whether a milestone key is already on the checklist.
func Seen(s *types.Session, key string) bool {
	k := strings.ToLower(key)
	for _, a := range s.Awarded {
		if a == k {
			return true
		}
	}
	return false
}

// Award grants the points for key once per session. Room names resolve to
// the room's points, item names to the item's points, anything else to the
// session's flat generic bonus. It returns the points added, 0 if the key
// was already seen or empty.
func Award(s *types.Session, key string) int {
	if key == "" || Seen(s, key) {
		return 0
	}
	pts := Resolve(s, key)
	s.Awarded = append(s.Awarded, strings.ToLower(key))
	s.Player.Score += pts
	return pts
}

// Resolve returns the point value a key would award. Rooms are checked
// before items.
func Resolve(s *types.Session, key string) int {
	if r := state.FindRoomByName(s, key); r != nil {
		return r.Points
	}
	for _, it := range s.Items {
		if strings.EqualFold(it.Name, key) {
			return ItemPoints(it)
		}
	}
	return s.GenericPoints
}

// ItemPoints is the value of an item milestone: the action's points when the
// item has a scored action, otherwise the item's own points.
func ItemPoints(it types.Item) int {
	if it.Action != nil && it.Action.Points > 0 {
		return it.Action.Points
	}
	return it.Points
}

// Band maps current/max health into one of the five bands.
func Band(health, max int) types.HealthBand {
	if max <= 0 {
		return types.BandDead
	}
	ratio := float64(health) / float64(max)
	switch {
	case ratio >= 0.7:
		return types.BandGreat
	case ratio >= 0.5:
		return types.BandOkay
	case ratio >= 0.3:
		return types.BandBad
	case ratio >= 0.1:
		return types.BandHorrible
	default:
		return types.BandDead
	}
}

// PlayerBand is Band for the session's player.
func PlayerBand(s *types.Session) types.HealthBand {
	return Band(s.Player.Health, s.Player.MaxHealth)
}
