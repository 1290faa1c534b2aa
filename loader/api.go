package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the title constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { id = "...", title = "...", start = 1, ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	// Room(20) { name = "...", n = 21, ... }, curried on the numeric id.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Item "Bugle" { room = 20, ... }, curried on the display name.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.items = append(coll.items, rawItem{name: name, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Monster "troll" { name = "Troll", room = 22, ... }, curried on the key.
	L.SetGlobal("Monster", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			coll.monsters = append(coll.monsters, rawMonster{key: key, table: L.CheckTable(1)})
			return 0
		}))
		return 1
	}))

	// Message("tag", "text with @")
	L.SetGlobal("Message", L.NewFunction(func(L *lua.LState) int {
		coll.messages = append(coll.messages, rawMessage{
			tag:  L.CheckString(1),
			text: L.CheckString(2),
		})
		return 0
	}))

	// Use { verb = "eat", kind = "health", payload = "5", points = 2 }, passed through.
	L.SetGlobal("Use", L.NewFunction(func(L *lua.LState) int {
		L.Push(L.CheckTable(1))
		return 1
	}))
}
