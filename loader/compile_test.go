package loader

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/multiquest/types"
)

// newTestVM creates a sandboxed Lua VM with the API registered and a fresh collector.
func newTestVM() (*lua.LState, *collector) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	coll := &collector{}
	registerAPI(L, coll)
	return L, coll
}

func TestCompile_Game(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Game {
			id = "fort",
			title = "Fort Quest",
			start = 20,
			health = 12,
			health_step = 1,
			generic_points = 10,
			welcome = "Welcome!",
			help = "Help!",
			thanks = "Bye!",
		}
	`); err != nil {
		t.Fatal(err)
	}

	title, err := compile(coll)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	want := types.Title{
		ID: "fort", Name: "Fort Quest", Start: 20, Health: 12, HealthStep: 1,
		GenericPoints: 10, Welcome: "Welcome!", Help: "Help!", Thanks: "Bye!",
	}
	if title.ID != want.ID || title.Name != want.Name || title.Start != want.Start ||
		title.Health != want.Health || title.HealthStep != want.HealthStep ||
		title.GenericPoints != want.GenericPoints || title.Welcome != want.Welcome ||
		title.Help != want.Help || title.Thanks != want.Thanks {
		t.Errorf("title = %+v, want %+v", *title, want)
	}
}

func TestCompile_NoGame(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`Room(1) { name = "Hall" }`); err != nil {
		t.Fatal(err)
	}
	if _, err := compile(coll); err == nil {
		t.Error("expected error without Game{}")
	}
}

func TestCompile_RoomExits(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Game { id = "t", start = 1, health = 1 }
		Room(1) { name = "Hall", description = "A hall.", n = 2, d = 3, points = 4 }
	`); err != nil {
		t.Fatal(err)
	}

	title, err := compile(coll)
	if err != nil {
		t.Fatal(err)
	}
	r := title.Rooms[0]
	if r.ID != 1 || r.Name != "Hall" || r.Description != "A hall." || r.Points != 4 {
		t.Errorf("room = %+v", r)
	}
	wantExits := [types.DirectionCount]types.RoomID{types.North: 2, types.Down: 3}
	if r.Exits != wantExits {
		t.Errorf("exits = %v, want %v", r.Exits, wantExits)
	}
}

func TestCompile_ItemLocations(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Game { id = "t", start = 1, health = 1 }
		Item "Bugle" { room = 20 }
		Item "Map" { carried = true }
		Item "Dog" { pet = true, room = 5 }
		Item "Ghost" { }
	`); err != nil {
		t.Fatal(err)
	}

	title, err := compile(coll)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		idx  int
		want types.Location
	}{
		{0, types.Location{Kind: types.InRoom, Room: 20}},
		{1, types.Location{Kind: types.Carried}},
		{2, types.Location{Kind: types.InRoom, Room: 5}},
		{3, types.Location{Kind: types.Unplaced}},
	}
	for _, tt := range tests {
		if got := title.Items[tt.idx].Location; got != tt.want {
			t.Errorf("%s location = %+v, want %+v", title.Items[tt.idx].Name, got, tt.want)
		}
	}
	if dog := title.Items[2]; !dog.Pet || dog.ReturnRoom != 5 {
		t.Errorf("dog should be a pet returning to 5, got %+v", dog)
	}
}

func TestCompile_ItemUse(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Game { id = "t", start = 1, health = 1 }
		Item "Apple" { carried = true, use = Use { verb = "consume", kind = "health", payload = 3, points = 2 } }
		Item "Key" { use = { kind = "unlock", payload = "1|e|2|open|shut" } }
	`); err != nil {
		t.Fatal(err)
	}

	title, err := compile(coll)
	if err != nil {
		t.Fatal(err)
	}

	apple := title.Items[0].Action
	if apple == nil {
		t.Fatal("apple has no action")
	}
	if apple.Verb != types.VerbEat || apple.Kind != types.ActionHealth || apple.Payload != "3" || apple.Points != 2 {
		t.Errorf("apple action = %+v", *apple)
	}

	key := title.Items[1].Action
	if key == nil || key.Verb != types.VerbUse || key.Kind != types.ActionUnlock {
		t.Errorf("key action = %+v", key)
	}
}

func TestCompile_BadUse(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown kind", `Item "X" { use = { kind = "explode" } }`},
		{"non-use verb", `Item "X" { use = { verb = "drop", kind = "health", payload = "1" } }`},
		{"unknown verb", `Item "X" { use = { verb = "juggle", kind = "health", payload = "1" } }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L, coll := newTestVM()
			defer L.Close()
			if err := L.DoString(`Game { id = "t" }` + "\n" + tt.src); err != nil {
				t.Fatal(err)
			}
			if _, err := compile(coll); err == nil {
				t.Error("expected compile error")
			}
		})
	}
}

func TestCompile_MonsterDefaults(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Game { id = "t", start = 1, health = 1 }
		Monster "troll" { room = 3, weapon = "Axe", attacks = 3, hit = 0.25, damage = 2, appear = 0.5, pet = 0.1 }
		Monster "bat" { room = 4 }
	`); err != nil {
		t.Fatal(err)
	}

	title, err := compile(coll)
	if err != nil {
		t.Fatal(err)
	}

	troll := title.Monsters[0]
	if troll.Name != "troll" || troll.AttacksToKill != 3 || troll.Health != 3 ||
		troll.HitChance != 0.25 || troll.Damage != 2 || troll.AppearChance != 0.5 || troll.PetChance != 0.1 {
		t.Errorf("troll = %+v", troll)
	}
	if bat := title.Monsters[1]; bat.AttacksToKill != 1 || bat.Health != 1 {
		t.Errorf("bat = %+v", bat)
	}
}

func TestCompile_Messages(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`
		Game { id = "t" }
		Message("GetSuccess", "Got the @.")
		Message("getsuccess", "Grabbed the @.")
	`); err != nil {
		t.Fatal(err)
	}

	title, err := compile(coll)
	if err != nil {
		t.Fatal(err)
	}
	if len(title.Messages) != 2 || title.Messages[0].Tag != "getsuccess" {
		t.Errorf("messages = %+v", title.Messages)
	}
}

func TestSandbox_RemovesDangerousGlobals(t *testing.T) {
	L, _ := newTestVM()
	defer L.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "require"} {
		if L.GetGlobal(name) != lua.LNil {
			t.Errorf("%s should be removed", name)
		}
	}
	if err := L.DoString(`dofile("/etc/passwd")`); err == nil {
		t.Error("calling dofile should fail")
	}
}
