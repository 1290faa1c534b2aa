package state

import (
	"testing"

	"github.com/nathoo/multiquest/types"
)

func testTitle() *types.Title {
	return &types.Title{
		ID:            "test",
		Name:          "Test Game",
		Start:         1,
		Health:        10,
		HealthStep:    1,
		GenericPoints: 5,
		Welcome:       "Welcome.",
		Rooms: []types.Room{
			{ID: 1, Name: "Entrance", Description: "The entrance.", Exits: [types.DirectionCount]types.RoomID{types.North: 2}},
			{ID: 2, Name: "Hall", Description: "A grand hall.", Exits: [types.DirectionCount]types.RoomID{types.South: 1}},
		},
		Items: []types.Item{
			{Name: "Key", Description: "An old iron key.", Location: At(2)},
			{Name: "Coin", Description: "A shiny coin.", Location: At(1)},
			{Name: "Coin", Description: "A second coin.", Location: CarriedLocation},
			{Name: "Cat", Description: "A tabby cat.", Location: At(1), Pet: true, ReturnRoom: 1},
		},
		Monsters: []types.Monster{
			{Key: "rat", Name: "Rat", Room: 2, AttacksToKill: 2, Health: 0, Present: true},
		},
	}
}

func TestNewSession_StartsAtStartRoom(t *testing.T) {
	s := NewSession(testTitle(), "Ann")

	if s.Player.Room != 1 {
		t.Errorf("expected player in room 1, got %d", s.Player.Room)
	}
	if s.Player.Health != 10 || s.Player.MaxHealth != 10 {
		t.Errorf("expected health 10/10, got %d/%d", s.Player.Health, s.Player.MaxHealth)
	}
	if s.Player.Name != "Ann" {
		t.Errorf("expected player Ann, got %q", s.Player.Name)
	}
	if !s.Active {
		t.Error("new session should be active")
	}
}

func TestNewSession_MonstersStartDormant(t *testing.T) {
	s := NewSession(testTitle(), "Ann")

	m := s.Monsters[0]
	if m.Present {
		t.Error("monster should start dormant")
	}
	if m.Health != m.AttacksToKill {
		t.Errorf("monster health = %d, want %d", m.Health, m.AttacksToKill)
	}
}

func TestNewSession_DoesNotAliasTitle(t *testing.T) {
	title := testTitle()
	s := NewSession(title, "Ann")

	s.Items[0].Location = CarriedLocation
	s.Rooms[0].Description = "Changed."

	if title.Items[0].Location.Kind != types.InRoom {
		t.Error("mutating session item changed the title template")
	}
	if title.Rooms[0].Description != "The entrance." {
		t.Error("mutating session room changed the title template")
	}
}

func TestClone_Independent(t *testing.T) {
	s := NewSession(testTitle(), "Ann")
	s.Awarded = append(s.Awarded, "hall")

	c := Clone(s)
	c.Items[1].Location = CarriedLocation
	c.Rooms[1].Exits[types.East] = 1
	c.Awarded = append(c.Awarded, "key")
	c.Player.Health = 1

	if s.Items[1].Location.Kind != types.InRoom {
		t.Error("clone item change leaked into original")
	}
	if s.Rooms[1].Exits[types.East] != types.NoExit {
		t.Error("clone exit change leaked into original")
	}
	if len(s.Awarded) != 1 {
		t.Errorf("clone checklist change leaked, original has %v", s.Awarded)
	}
	if s.Player.Health != 10 {
		t.Error("clone player change leaked into original")
	}
}

func TestFindItem_CaseInsensitive(t *testing.T) {
	s := NewSession(testTitle(), "Ann")

	it := FindItem(s, "kEy")
	if it == nil || it.Name != "Key" {
		t.Fatalf("expected to find Key, got %v", it)
	}
	if FindItem(s, "ke") != nil {
		t.Error("partial names should not match")
	}
	if FindItem(s, "") != nil {
		t.Error("empty name should not match")
	}
}

func TestFindItem_PrefersCarriedDuplicate(t *testing.T) {
	s := NewSession(testTitle(), "Ann")

	it := FindItem(s, "coin")
	if it == nil || it.Location.Kind != types.Carried {
		t.Fatalf("expected the carried coin, got %+v", it)
	}

	it.Location = At(2)
	it = FindItem(s, "coin")
	if it == nil || !IsAt(it.Location, 1) {
		t.Fatalf("expected the coin in the current room, got %+v", it)
	}
}

func TestFindItemAt(t *testing.T) {
	s := NewSession(testTitle(), "Ann")

	it := FindItemAt(s, "COIN", At(1))
	if it == nil || !IsAt(it.Location, 1) {
		t.Fatalf("expected the coin lying in room 1, got %+v", it)
	}
	if FindItemAt(s, "coin", At(2)) != nil {
		t.Error("no coin lies in room 2")
	}
	if FindItemAt(s, "", At(1)) != nil {
		t.Error("empty name should not match")
	}
}

func TestCarries(t *testing.T) {
	s := NewSession(testTitle(), "Ann")

	if !Carries(s, "COIN") {
		t.Error("expected to carry a coin")
	}
	if Carries(s, "key") {
		t.Error("should not carry the key")
	}
}

func TestItemsAtAndRoomItemsText(t *testing.T) {
	s := NewSession(testTitle(), "Ann")

	here := ItemsAt(s, At(1))
	if len(here) != 2 {
		t.Fatalf("expected 2 items in room 1, got %d", len(here))
	}
	if got := RoomItemsText(s); got != "You see: Coin, Cat." {
		t.Errorf("RoomItemsText = %q", got)
	}

	FindItem(s, "cat").Location = FollowingLocation
	want := "You see: Coin. The Cat is following you."
	if got := RoomItemsText(s); got != want {
		t.Errorf("RoomItemsText = %q, want %q", got, want)
	}
	if pet := FollowingPet(s); pet == nil || pet.Name != "Cat" {
		t.Errorf("FollowingPet = %v", pet)
	}
}

func TestFindRoom(t *testing.T) {
	s := NewSession(testTitle(), "Ann")

	if r := FindRoom(s, 2); r == nil || r.Name != "Hall" {
		t.Errorf("FindRoom(2) = %v", r)
	}
	if FindRoom(s, 99) != nil {
		t.Error("FindRoom(99) should be nil")
	}
	if r := FindRoomByName(s, "hall"); r == nil || r.ID != 2 {
		t.Errorf("FindRoomByName(hall) = %v", r)
	}
	if r := CurrentRoom(s); r == nil || r.ID != 1 {
		t.Errorf("CurrentRoom = %v", r)
	}
}

func TestFindMonster(t *testing.T) {
	s := NewSession(testTitle(), "Ann")

	if FindMonster(s, "rat") != nil {
		t.Error("dormant monster in another room should not be found")
	}

	s.Player.Room = 2
	s.Monsters[0].Present = true
	if m := FindMonster(s, "RAT"); m == nil {
		t.Error("expected to find rat by name")
	}
	if m := FindMonster(s, ""); m == nil {
		t.Error("empty name should match first present monster")
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  types.Location
		want string
	}{
		{At(4), "room 4"},
		{CarriedLocation, "carried"},
		{FollowingLocation, "following"},
		{UnplacedLocation, "unplaced"},
	}
	for _, tt := range tests {
		if got := LocationString(tt.loc); got != tt.want {
			t.Errorf("LocationString(%+v) = %q, want %q", tt.loc, got, tt.want)
		}
	}
}

func TestAlive(t *testing.T) {
	if Alive(types.Player{Health: 0}) {
		t.Error("health 0 should be dead")
	}
	if !Alive(types.Player{Health: 1}) {
		t.Error("health 1 should be alive")
	}
}
