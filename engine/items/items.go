// Package items implements the item-location state machine (get, drop, pet,
// shoo, look, inventory) and use-item action resolution.
package items

import (
	"strconv"
	"strings"

	"github.com/nathoo/multiquest/engine/combat"
	"github.com/nathoo/multiquest/engine/fortune"
	"github.com/nathoo/multiquest/engine/messages"
	"github.com/nathoo/multiquest/engine/movement"
	"github.com/nathoo/multiquest/engine/scoring"
	"github.com/nathoo/multiquest/engine/state"
	"github.com/nathoo/multiquest/engine/turn"
	"github.com/nathoo/multiquest/types"
)

// EmptyInventory is shown when the player carries nothing.
const EmptyInventory = "[Empty]"

// Get picks up an item lying in the player's room.
func Get(t *turn.Turn) {
	s := t.Session
	name := t.Intent.Modifier
	it := state.FindItemAt(s, name, state.At(s.Player.Room))
	if it == nil {
		t.Fail(messages.GetFail, name)
		return
	}
	if it.Pet {
		t.Fail(messages.GetPet, it.Name)
		return
	}
	place(t, it, state.CarriedLocation)
	t.Say(messages.GetSuccess, it.Name)
}

// Drop puts a carried item down in the player's room.
func Drop(t *turn.Turn) {
	s := t.Session
	name := t.Intent.Modifier
	it := state.FindItem(s, name)
	if it == nil || it.Location.Kind != types.Carried {
		t.Fail(messages.DropFail, name)
		return
	}
	place(t, it, state.At(s.Player.Room))
	t.Say(messages.DropSuccess, it.Name)
}

// Pet tames an animal in the room so it follows the player.
func Pet(t *turn.Turn) {
	s := t.Session
	name := t.Intent.Modifier
	it := state.FindItem(s, name)
	if it == nil || !it.Pet {
		t.Fail(messages.PetFail, name)
		return
	}
	if !state.IsAt(it.Location, s.Player.Room) && it.Location.Kind != types.Following {
		t.Fail(messages.PetFail, name)
		return
	}
	place(t, it, state.FollowingLocation)
	t.Say(messages.PetSuccess, it.Name)
	award(t, it.Name)
}

// Shoo sends a following pet back to its return room.
func Shoo(t *turn.Turn) {
	s := t.Session
	name := t.Intent.Modifier
	it := state.FindItem(s, name)
	if it == nil || it.Location.Kind != types.Following {
		t.Fail(messages.ShooFail, name)
		return
	}
	place(t, it, state.At(it.ReturnRoom))
	t.Say(messages.ShooSuccess, it.Name)
}

// Inventory lists carried items.
func Inventory(t *turn.Turn) {
	carried := state.ItemsAt(t.Session, state.CarriedLocation)
	if len(carried) == 0 {
		t.Print("You are carrying: " + EmptyInventory)
		return
	}
	t.Print("You are carrying: " + state.ItemNames(carried) + ".")
}

// Look describes an item the player can reach, or a monster in the room.
func Look(t *turn.Turn) {
	s := t.Session
	name := t.Intent.Modifier
	if name == "" {
		t.Fail(messages.LookNothing, "")
		return
	}

	if it := state.FindItem(s, name); it != nil && reachable(s, it) {
		t.Print(it.Description)
		return
	}
	if m := state.FindMonster(s, name); m != nil {
		t.Print(m.Description)
		return
	}
	t.Fail(messages.LookFail, name)
}

func reachable(s *types.Session, it *types.Item) bool {
	switch it.Location.Kind {
	case types.Carried, types.Following:
		return true
	case types.InRoom:
		return it.Location.Room == s.Player.Room
	default:
		return false
	}
}

// Usable returns the carried item named by the intent when its action
// responds to the intent's verb. "use" matches any action verb.
func Usable(s *types.Session, in *types.Intent) *types.Item {
	it := state.FindItem(s, in.Modifier)
	if it == nil || it.Action == nil || it.Location.Kind != types.Carried {
		return nil
	}
	if in.Verb != types.VerbUse && in.Verb != it.Action.Verb {
		return nil
	}
	return it
}

// Use resolves a use-class command against the named item's action.
func Use(t *turn.Turn) {
	s := t.Session
	it := Usable(s, t.Intent)
	if it == nil || !state.Alive(s.Player) {
		t.Fail(messages.UseFail, t.Intent.Modifier)
		return
	}

	var ok bool
	switch it.Action.Kind {
	case types.ActionHealth:
		ok = useHealth(t, it)
	case types.ActionUnlock:
		ok = useUnlock(t, it)
	case types.ActionTeleport:
		ok = useTeleport(t, it)
	case types.ActionFortune:
		ok = useFortune(t)
	case types.ActionWeapon:
		ok = combat.Strike(t, it.Name)
		if !ok {
			t.Fail(messages.NoTarget, it.Name)
			return
		}
	}
	if !ok {
		if t.Intent.Valid {
			t.Fail(messages.UseFail, t.Intent.Modifier)
		}
		return
	}
	award(t, t.Intent.Modifier)
}

func useHealth(t *turn.Turn, it *types.Item) bool {
	delta, err := strconv.Atoi(strings.TrimSpace(it.Action.Payload))
	if err != nil {
		t.Log.Error("malformed health payload", "item", it.Name, "payload", it.Action.Payload, "error", err)
		return false
	}

	p := &t.Session.Player
	p.Health += delta
	switch {
	case delta < 0:
		t.Say(messages.HealthDown, it.Name)
	case p.Health > p.MaxHealth:
		t.Say(messages.HealthFull, it.Name)
	default:
		t.Say(messages.HealthUp, it.Name)
	}
	return true
}

func useUnlock(t *turn.Turn, it *types.Item) bool {
	u, err := movement.ParseUnlock(it.Action.Payload)
	if err != nil {
		t.Log.Error("malformed unlock payload", "item", it.Name, "error", err)
		return false
	}
	if t.Session.Player.Room != u.Room {
		return false
	}

	open, err := movement.Toggle(t.Session, u)
	if err != nil {
		t.Log.Error("unlock failed", "item", it.Name, "error", err)
		return false
	}
	if open {
		t.Say(messages.Unlock, it.Name)
	} else {
		t.Say(messages.Lock, it.Name)
	}
	return true
}

func useTeleport(t *turn.Turn, it *types.Item) bool {
	dest, err := movement.ParseRoom(it.Action.Payload)
	if err == nil {
		err = movement.Teleport(t.Session, it, dest)
	}
	if err != nil {
		t.Log.Error("teleport failed", "item", it.Name, "error", err)
		return false
	}
	t.Say(messages.Teleport, it.Name)
	return true
}

func useFortune(t *turn.Turn) bool {
	if t.Fortune == nil {
		return false
	}
	t.Say(messages.Fortune, t.Fortune.Fortune(fortune.TimeBased))
	return true
}

// award grants a milestone and reports any points earned.
// place moves an item and records the transition at debug level.
func place(t *turn.Turn, it *types.Item, loc types.Location) {
	t.Log.Debug("item moved", "item", it.Name,
		"from", state.LocationString(it.Location), "to", state.LocationString(loc))
	it.Location = loc
}

func award(t *turn.Turn, key string) {
	if pts := scoring.Award(t.Session, key); pts > 0 {
		t.Say(messages.Points, strconv.Itoa(pts))
	}
}
