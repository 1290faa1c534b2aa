package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/multiquest/engine/movement"
	"github.com/nathoo/multiquest/types"
)

// ValidationError collects all validation errors and warnings for a title.
type ValidationError struct {
	Title    string
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("title %q failed validation with %d error(s):\n  %s",
		e.Title, len(e.Errors), strings.Join(e.Errors, "\n  "))
}

func (e *ValidationError) errorf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// validate checks a compiled title for referential integrity. Warnings are
// returned alongside a nil error when nothing is fatal.
func validate(t *types.Title) (*ValidationError, error) {
	ve := &ValidationError{Title: t.ID}

	if t.ID == "" {
		ve.errorf("Game.id is required")
	}
	if t.Name == "" {
		ve.warnf("Game.title is empty")
	}
	if t.Health <= 0 {
		ve.errorf("Game.health must be positive, got %d", t.Health)
	}
	if t.HealthStep < 0 {
		ve.errorf("Game.health_step must not be negative, got %d", t.HealthStep)
	}

	rooms := map[types.RoomID]bool{}
	for _, r := range t.Rooms {
		if r.ID <= types.NoExit {
			ve.errorf("room id %d must be positive", r.ID)
		}
		if rooms[r.ID] {
			ve.errorf("duplicate room id %d", r.ID)
		}
		rooms[r.ID] = true
		if r.Name == "" {
			ve.errorf("room %d has no name", r.ID)
		}
	}

	if !rooms[t.Start] {
		ve.errorf("start room %d not found in defined rooms", t.Start)
	}

	for _, r := range t.Rooms {
		for dir, target := range r.Exits {
			if target != types.NoExit && !rooms[target] {
				ve.errorf("room %d exit %s points to undefined room %d",
					r.ID, types.DirectionNames[dir], target)
			}
		}
	}

	names := map[string]bool{}
	for _, it := range t.Items {
		key := strings.ToLower(it.Name)
		if names[key] {
			ve.warnf("item name %q is used more than once; they share a milestone", it.Name)
		}
		names[key] = true

		if it.Location.Kind == types.InRoom && !rooms[it.Location.Room] {
			ve.errorf("item %q is in undefined room %d", it.Name, it.Location.Room)
		}
		if it.Pet && !rooms[it.ReturnRoom] {
			ve.errorf("pet %q returns to undefined room %d", it.Name, it.ReturnRoom)
		}
		if it.Action != nil {
			validateAction(it, rooms, ve)
		}
	}

	for _, m := range t.Monsters {
		if !rooms[m.Room] {
			ve.errorf("monster %q lives in undefined room %d", m.Key, m.Room)
		}
		if m.AttacksToKill <= 0 {
			ve.errorf("monster %q needs at least one attack to kill", m.Key)
		}
		chances := []struct {
			name string
			p    float64
		}{{"hit", m.HitChance}, {"appear", m.AppearChance}, {"pet", m.PetChance}}
		for _, c := range chances {
			if c.p < 0 || c.p > 1 {
				ve.errorf("monster %q %s chance %v is outside [0, 1]", m.Key, c.name, c.p)
			}
		}
		if m.Weapon == "" {
			ve.warnf("monster %q has no weapon and can only be fought by pets", m.Key)
		} else if !names[strings.ToLower(m.Weapon)] {
			ve.errorf("monster %q weapon %q is not a defined item", m.Key, m.Weapon)
		}
	}

	for _, msg := range t.Messages {
		if strings.Count(msg.Text, "@") > 1 {
			ve.warnf("message %q has more than one placeholder", msg.Tag)
		}
	}

	if len(ve.Errors) > 0 {
		return ve, ve
	}
	return ve, nil
}

func validateAction(it types.Item, rooms map[types.RoomID]bool, ve *ValidationError) {
	a := it.Action
	switch a.Kind {
	case types.ActionHealth:
		if _, err := strconv.Atoi(strings.TrimSpace(a.Payload)); err != nil {
			ve.errorf("item %q health payload %q is not an integer", it.Name, a.Payload)
		}
	case types.ActionUnlock:
		u, err := movement.ParseUnlock(a.Payload)
		if err != nil {
			ve.errorf("item %q: %v", it.Name, err)
			return
		}
		if !rooms[u.Room] {
			ve.errorf("item %q unlocks undefined room %d", it.Name, u.Room)
		}
		if !rooms[u.Target] {
			ve.errorf("item %q unlocks toward undefined room %d", it.Name, u.Target)
		}
	case types.ActionTeleport:
		dest, err := movement.ParseRoom(a.Payload)
		if err != nil {
			ve.errorf("item %q: teleport %v", it.Name, err)
		} else if !rooms[dest] {
			ve.errorf("item %q teleports to undefined room %d", it.Name, dest)
		}
	}
}
