// Package movement applies directional moves over the room graph and the
// graph side effects items can trigger: lock toggling and teleporting.
package movement

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/multiquest/engine/messages"
	"github.com/nathoo/multiquest/engine/scoring"
	"github.com/nathoo/multiquest/engine/state"
	"github.com/nathoo/multiquest/engine/turn"
	"github.com/nathoo/multiquest/types"
)

// ErrMalformedUnlock is returned for unlock payloads that do not have the
// five pipe-separated fields.
var ErrMalformedUnlock = errors.New("malformed unlock payload")

// Unlock is a parsed unlock action: in Room, the Direction slot toggles
// between NoExit and Target, and the room description between the two texts.
type Unlock struct {
	Room         types.RoomID
	Direction    types.Direction
	Target       types.RoomID
	UnlockedText string
	LockedText   string
}

var directionLetters = map[string]types.Direction{
	"n": types.North,
	"s": types.South,
	"e": types.East,
	"w": types.West,
	"u": types.Up,
	"d": types.Down,
}

// Move walks the player one step in the intent's direction.
func Move(t *turn.Turn) {
	s := t.Session
	if !state.Alive(s.Player) {
		t.Intent.Valid = false
		t.Print(messages.DeadMoveText)
		return
	}

	dir := t.Intent.Direction
	room := state.CurrentRoom(s)
	if room == nil || room.Exits[dir] == types.NoExit || state.FindRoom(s, room.Exits[dir]) == nil {
		t.Fail(blockedTag(t, dir), types.DirectionNames[dir])
		return
	}

	Arrive(s, room.Exits[dir])
}

// Arrive puts the player in a room and awards its first-visit milestone.
func Arrive(s *types.Session, room types.RoomID) int {
	s.Player.Room = room
	if r := state.FindRoom(s, room); r != nil {
		return scoring.Award(s, r.Name)
	}
	return 0
}

// blockedTag prefers a direction-specific message such as "blockednorth".
func blockedTag(t *turn.Turn, dir types.Direction) string {
	tag := messages.Blocked + types.DirectionNames[dir]
	if t.Messages.Has(tag) {
		return tag
	}
	return messages.Blocked
}

// ParseUnlock parses "room|dir|target|unlocked text|locked text".
func ParseUnlock(payload string) (Unlock, error) {
	parts := strings.Split(payload, "|")
	if len(parts) != 5 {
		return Unlock{}, fmt.Errorf("%w: want 5 fields, got %d", ErrMalformedUnlock, len(parts))
	}

	room, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Unlock{}, fmt.Errorf("%w: room %q: %v", ErrMalformedUnlock, parts[0], err)
	}
	dir, ok := directionLetters[strings.ToLower(strings.TrimSpace(parts[1]))]
	if !ok {
		return Unlock{}, fmt.Errorf("%w: direction %q", ErrMalformedUnlock, parts[1])
	}
	target, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Unlock{}, fmt.Errorf("%w: target %q: %v", ErrMalformedUnlock, parts[2], err)
	}

	return Unlock{
		Room:         types.RoomID(room),
		Direction:    dir,
		Target:       types.RoomID(target),
		UnlockedText: parts[3],
		LockedText:   parts[4],
	}, nil
}

// Toggle flips the lock governed by u and reports whether the slot is now
// open. Applying it twice restores the original room exactly.
func Toggle(s *types.Session, u Unlock) (bool, error) {
	room := state.FindRoom(s, u.Room)
	if room == nil {
		return false, fmt.Errorf("unlock references unknown room %d", u.Room)
	}

	if room.Unlocked[u.Direction] {
		room.Exits[u.Direction] = types.NoExit
		room.Description = u.LockedText
		room.Unlocked[u.Direction] = false
		return false, nil
	}

	room.Exits[u.Direction] = u.Target
	room.Description = u.UnlockedText
	room.Unlocked[u.Direction] = true
	return true, nil
}

// Teleport sends the player to dest, bypassing exits. The item used is left
// behind in the room the player departs from.
func Teleport(s *types.Session, item *types.Item, dest types.RoomID) error {
	if state.FindRoom(s, dest) == nil {
		return fmt.Errorf("teleport to unknown room %d", dest)
	}
	if item != nil {
		item.Location = state.At(s.Player.Room)
	}
	Arrive(s, dest)
	return nil
}

// ParseRoom parses a teleport payload.
func ParseRoom(payload string) (types.RoomID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(payload))
	if err != nil {
		return types.NoExit, fmt.Errorf("room id %q: %w", payload, err)
	}
	return types.RoomID(n), nil
}
