// Package state manages session instantiation, copying, and the lookups the
// engine stages share (rooms, items, monsters, locations).
package state

import (
	"fmt"
	"strings"

	"github.com/nathoo/multiquest/types"
)

// Location constructors for the four item location variants.
var (
	CarriedLocation   = types.Location{Kind: types.Carried}
	FollowingLocation = types.Location{Kind: types.Following}
	UnplacedLocation  = types.Location{Kind: types.Unplaced}
)

// At returns the location for an item lying in a room.
func At(room types.RoomID) types.Location {
	return types.Location{Kind: types.InRoom, Room: room}
}

// IsAt reports whether loc is the given room.
func IsAt(loc types.Location, room types.RoomID) bool {
	return loc.Kind == types.InRoom && loc.Room == room
}

// LocationString renders a location for debugging output.
func LocationString(loc types.Location) string {
	switch loc.Kind {
	case types.InRoom:
		return fmt.Sprintf("room %d", loc.Room)
	case types.Carried:
		return "carried"
	case types.Following:
		return "following"
	default:
		return "unplaced"
	}
}

// NewSession creates a fresh session from a title template. The template is
// copied; the session never aliases title data.
func NewSession(t *types.Title, playerName string) *types.Session {
	s := &types.Session{
		Title:         t.ID,
		Rooms:         append([]types.Room(nil), t.Rooms...),
		Items:         append([]types.Item(nil), t.Items...),
		Monsters:      append([]types.Monster(nil), t.Monsters...),
		Messages:      append([]types.Message(nil), t.Messages...),
		Help:          t.Help,
		Thanks:        t.Thanks,
		Welcome:       t.Welcome,
		HealthStep:    t.HealthStep,
		GenericPoints: t.GenericPoints,
		Awarded:       []string{},
		Active:        true,
		Player: types.Player{
			Name:      playerName,
			Health:    t.Health,
			MaxHealth: t.Health,
			Room:      t.Start,
		},
	}
	for i := range s.Monsters {
		s.Monsters[i].Health = s.Monsters[i].AttacksToKill
		s.Monsters[i].Present = false
	}
	return s
}

// Clone returns a deep copy of a session. Item actions are shared because
// they are never mutated after loading.
func Clone(s *types.Session) *types.Session {
	c := *s
	c.Rooms = append([]types.Room(nil), s.Rooms...)
	c.Items = append([]types.Item(nil), s.Items...)
	c.Monsters = append([]types.Monster(nil), s.Monsters...)
	c.Messages = append([]types.Message(nil), s.Messages...)
	c.Awarded = append([]string{}, s.Awarded...)
	return &c
}

// Alive reports whether the player still has health left.
func Alive(p types.Player) bool {
	return p.Health > 0
}

// FindRoom returns the room with the given id, or nil.
func FindRoom(s *types.Session, id types.RoomID) *types.Room {
	for i := range s.Rooms {
		if s.Rooms[i].ID == id {
			return &s.Rooms[i]
		}
	}
	return nil
}

// CurrentRoom returns the room the player is standing in, or nil.
func CurrentRoom(s *types.Session) *types.Room {
	return FindRoom(s, s.Player.Room)
}

// FindRoomByName returns the first room whose name matches, ignoring case.
func FindRoomByName(s *types.Session, name string) *types.Room {
	for i := range s.Rooms {
		if strings.EqualFold(s.Rooms[i].Name, name) {
			return &s.Rooms[i]
		}
	}
	return nil
}

// FindItem looks up an item by case-insensitive exact name. Names may repeat,
// so the copy the player can reach wins: carried, then in the current room,
// then following, then anywhere.
func FindItem(s *types.Session, name string) *types.Item {
	if name == "" {
		return nil
	}
	var inRoom, following, other *types.Item
	for i := range s.Items {
		it := &s.Items[i]
		if !strings.EqualFold(it.Name, name) {
			continue
		}
		switch {
		case it.Location.Kind == types.Carried:
			return it
		case IsAt(it.Location, s.Player.Room):
			if inRoom == nil {
				inRoom = it
			}
		case it.Location.Kind == types.Following:
			if following == nil {
				following = it
			}
		default:
			if other == nil {
				other = it
			}
		}
	}
	switch {
	case inRoom != nil:
		return inRoom
	case following != nil:
		return following
	default:
		return other
	}
}

// FindItemAt returns the first item with the given name whose location is
// loc, ignoring case, or nil.
func FindItemAt(s *types.Session, name string, loc types.Location) *types.Item {
	if name == "" {
		return nil
	}
	for i := range s.Items {
		if s.Items[i].Location == loc && strings.EqualFold(s.Items[i].Name, name) {
			return &s.Items[i]
		}
	}
	return nil
}

// Carries reports whether the player carries an item with the given name.
func Carries(s *types.Session, name string) bool {
	for _, it := range s.Items {
		if it.Location.Kind == types.Carried && strings.EqualFold(it.Name, name) {
			return true
		}
	}
	return false
}

// ItemsAt returns the items whose location equals loc, in content order.
func ItemsAt(s *types.Session, loc types.Location) []*types.Item {
	var result []*types.Item
	for i := range s.Items {
		if s.Items[i].Location == loc {
			result = append(result, &s.Items[i])
		}
	}
	return result
}

// FollowingPet returns the first item following the player, or nil.
func FollowingPet(s *types.Session) *types.Item {
	for i := range s.Items {
		if s.Items[i].Location.Kind == types.Following {
			return &s.Items[i]
		}
	}
	return nil
}

// MonstersHere returns the present monsters in the player's room.
func MonstersHere(s *types.Session) []*types.Monster {
	var result []*types.Monster
	for i := range s.Monsters {
		m := &s.Monsters[i]
		if m.Present && m.Room == s.Player.Room {
			result = append(result, m)
		}
	}
	return result
}

// FindMonster returns a present monster in the player's room whose name or
// key matches, ignoring case. An empty name matches the first one.
func FindMonster(s *types.Session, name string) *types.Monster {
	for _, m := range MonstersHere(s) {
		if name == "" || strings.EqualFold(m.Name, name) || strings.EqualFold(m.Key, name) {
			return m
		}
	}
	return nil
}

// ItemNames joins the names of items into a comma separated list.
func ItemNames(items []*types.Item) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return strings.Join(names, ", ")
}

// RoomItemsText renders the items in the player's room plus any followers.
func RoomItemsText(s *types.Session) string {
	var parts []string
	if here := ItemsAt(s, At(s.Player.Room)); len(here) > 0 {
		parts = append(parts, "You see: "+ItemNames(here)+".")
	}
	for _, pet := range ItemsAt(s, FollowingLocation) {
		parts = append(parts, fmt.Sprintf("The %s is following you.", pet.Name))
	}
	return strings.Join(parts, " ")
}
