package loader

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/pixil98/go-errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/multiquest/types"
)

// collector accumulates Lua definitions while one title file executes.
type collector struct {
	game     *lua.LTable
	rooms    []rawRoom
	items    []rawItem
	monsters []rawMonster
	messages []rawMessage
}

// Load reads every .lua title file in dir.
func Load(dir string) ([]*types.Title, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS reads every .lua file in dir of fsys. Each file defines one title
// and runs in its own VM. All problems across all files are reported
// together.
func LoadFS(fsys fs.FS, dir string) ([]*types.Title, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading titles directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	sort.Strings(files)

	el := errors.NewErrorList()
	seen := map[string]string{}
	var titles []*types.Title
	for _, f := range files {
		src, err := fs.ReadFile(fsys, path.Join(dir, f))
		if err != nil {
			el.Add(fmt.Errorf("reading %s: %w", f, err))
			continue
		}
		t, err := LoadString(f, string(src))
		if err != nil {
			el.Add(fmt.Errorf("%s: %w", f, err))
			continue
		}
		if prev, ok := seen[t.ID]; ok {
			el.Add(fmt.Errorf("%s: title id %q already defined in %s", f, t.ID, prev))
			continue
		}
		seen[t.ID] = f
		titles = append(titles, t)
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return titles, nil
}

// LoadString compiles and validates a single title from Lua source.
func LoadString(name, src string) (*types.Title, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}

	t, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}

	ve, err := validate(t)
	for _, w := range ve.Warnings {
		slog.Warn("title content", "file", name, "title", t.ID, "warning", w)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the title file.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "require", "module",
	} {
		L.SetGlobal(name, lua.LNil)
	}
}
