// Package loader compiles Lua title files into types.Title templates.
// The Lua VM is discarded after loading; nothing runs Lua during play.
package loader

import (
	"fmt"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/multiquest/engine/parser"
	"github.com/nathoo/multiquest/engine/state"
	"github.com/nathoo/multiquest/types"
)

type rawRoom struct {
	id    int
	table *lua.LTable
}

type rawItem struct {
	name  string
	table *lua.LTable
}

type rawMonster struct {
	key   string
	table *lua.LTable
}

type rawMessage struct {
	tag  string
	text string
}

// Exit field names in room tables, by direction.
var exitKeys = [types.DirectionCount]string{"n", "s", "e", "w", "u", "d"}

var actionKinds = map[string]types.ActionKind{
	"health":   types.ActionHealth,
	"unlock":   types.ActionUnlock,
	"teleport": types.ActionTeleport,
	"fortune":  types.ActionFortune,
	"weapon":   types.ActionWeapon,
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	switch v := tbl.RawGetString(key).(type) {
	case lua.LString:
		return string(v)
	case lua.LNumber:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	}
	return ""
}

func getBool(tbl *lua.LTable, key string) bool {
	v, ok := tbl.RawGetString(key).(lua.LBool)
	return ok && bool(v)
}

// getNumber returns a numeric field from a Lua table, or def if missing.
func getNumber(tbl *lua.LTable, key string, def float64) float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return def
}

func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key, 0))
}

func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// compile converts the collected Lua tables into a Title.
func compile(coll *collector) (*types.Title, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}

	g := coll.game
	t := &types.Title{
		ID:            getString(g, "id"),
		Name:          getString(g, "title"),
		Start:         types.RoomID(getInt(g, "start")),
		Health:        getInt(g, "health"),
		HealthStep:    getInt(g, "health_step"),
		GenericPoints: getInt(g, "generic_points"),
		Welcome:       getString(g, "welcome"),
		Help:          getString(g, "help"),
		Thanks:        getString(g, "thanks"),
	}

	for _, raw := range coll.rooms {
		t.Rooms = append(t.Rooms, compileRoom(raw))
	}
	for _, raw := range coll.items {
		it, err := compileItem(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling item %s: %w", raw.name, err)
		}
		t.Items = append(t.Items, it)
	}
	for _, raw := range coll.monsters {
		t.Monsters = append(t.Monsters, compileMonster(raw))
	}
	for _, raw := range coll.messages {
		t.Messages = append(t.Messages, types.Message{Tag: strings.ToLower(raw.tag), Text: raw.text})
	}
	return t, nil
}

func compileRoom(raw rawRoom) types.Room {
	r := types.Room{
		ID:          types.RoomID(raw.id),
		Name:        getString(raw.table, "name"),
		Description: getString(raw.table, "description"),
		Points:      getInt(raw.table, "points"),
	}
	for dir, key := range exitKeys {
		r.Exits[dir] = types.RoomID(getInt(raw.table, key))
	}
	return r
}

func compileItem(raw rawItem) (types.Item, error) {
	tbl := raw.table
	it := types.Item{
		Name:        raw.name,
		Description: getString(tbl, "description"),
		Pet:         getBool(tbl, "pet"),
		ReturnRoom:  types.RoomID(getInt(tbl, "returns")),
		Points:      getInt(tbl, "points"),
	}

	switch {
	case getBool(tbl, "carried"):
		it.Location = state.CarriedLocation
	case getBool(tbl, "following"):
		it.Location = state.FollowingLocation
	case getInt(tbl, "room") > 0:
		it.Location = state.At(types.RoomID(getInt(tbl, "room")))
	default:
		it.Location = state.UnplacedLocation
	}
	if it.Pet && it.ReturnRoom == types.NoExit {
		it.ReturnRoom = it.Location.Room
	}

	if use := getTable(tbl, "use"); use != nil {
		a, err := compileAction(use)
		if err != nil {
			return types.Item{}, err
		}
		it.Action = a
	}
	return it, nil
}

func compileAction(tbl *lua.LTable) (*types.Action, error) {
	kindName := strings.ToLower(getString(tbl, "kind"))
	kind, ok := actionKinds[kindName]
	if !ok {
		return nil, fmt.Errorf("unknown use kind %q", kindName)
	}

	verbName := getString(tbl, "verb")
	if verbName == "" {
		verbName = "use"
	}
	verb, ok := parser.LookupVerb(verbName)
	if !ok || !parser.IsUseVerb(verb) {
		return nil, fmt.Errorf("use verb %q is not a use-class verb", verbName)
	}

	return &types.Action{
		Verb:    verb,
		Kind:    kind,
		Payload: getString(tbl, "payload"),
		Points:  getInt(tbl, "points"),
	}, nil
}

func compileMonster(raw rawMonster) types.Monster {
	tbl := raw.table
	m := types.Monster{
		Key:           raw.key,
		Name:          getString(tbl, "name"),
		Description:   getString(tbl, "description"),
		Room:          types.RoomID(getInt(tbl, "room")),
		Weapon:        getString(tbl, "weapon"),
		AttacksToKill: int(getNumber(tbl, "attacks", 1)),
		HitChance:     getNumber(tbl, "hit", 0),
		Damage:        getInt(tbl, "damage"),
		AppearChance:  getNumber(tbl, "appear", 0),
		PetChance:     getNumber(tbl, "pet", 0),
	}
	if m.Name == "" {
		m.Name = raw.key
	}
	m.Health = m.AttacksToKill
	return m
}
