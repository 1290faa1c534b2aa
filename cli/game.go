package cli

import (
	"fmt"
	"strings"

	"github.com/nathoo/multiquest/engine"
	"github.com/nathoo/multiquest/engine/session"
	"github.com/nathoo/multiquest/engine/state"
	"github.com/nathoo/multiquest/loader"
	"github.com/nathoo/multiquest/types"
)

// LineKind classifies an output line so front ends can style it.
type LineKind int

const (
	KindNarrative LineKind = iota
	KindRoom
	KindDescription
	KindItems
	KindSystem
	KindTrace
)

// Line is one line of front-end output.
type Line struct {
	Text string
	Kind LineKind
}

// Game tracks the session a single front end is playing and turns
// engine results into output lines. It is shared by the line-mode CLI
// and the TUI.
type Game struct {
	Engine  *engine.Engine
	Library *loader.Library
	Trace   bool

	id        string
	last      types.MoveResult
	lastCmd   string
	lastItems string
}

// NewGame creates a Game with no session in progress.
func NewGame(eng *engine.Engine, lib *loader.Library) *Game {
	return &Game{Engine: eng, Library: lib}
}

// SessionID returns the id of the session in progress, or "".
func (g *Game) SessionID() string {
	return g.id
}

// Last returns the most recent engine result.
func (g *Game) Last() types.MoveResult {
	return g.last
}

// Start begins a new session of a title. An empty id starts the default.
func (g *Game) Start(titleID string) []Line {
	if titleID == "" {
		titleID = g.Library.Default()
	}

	r := g.Engine.NewGame(titleID)
	if r.SessionID == session.NotFoundID {
		g.id = ""
		return []Line{system(fmt.Sprintf("Could not start %q.", titleID))}
	}
	g.id = r.SessionID
	g.last = r
	g.lastCmd = ""

	var out []Line
	if t, err := g.Library.Title(r.Title); err == nil && t.Name != "" {
		out = append(out, Line{Text: t.Name, Kind: KindRoom}, Line{})
	}
	for _, n := range r.Narrative {
		out = append(out, Line{Text: n})
	}
	out = append(out, g.roomLines(r)...)
	g.lastItems = r.Items
	return out
}

// Handle processes one line of player input. quit reports that the front
// end should exit.
func (g *Game) Handle(input string) (out []Line, quit bool) {
	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, "#") {
		return nil, false
	}

	if strings.HasPrefix(input, "/") {
		return g.meta(input)
	}

	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if g.lastCmd == "" {
			return []Line{system("Nothing to repeat.")}, false
		}
		input = g.lastCmd
	} else {
		g.lastCmd = input
	}

	if g.id == "" {
		return []Line{system("No game in progress. Type /new to start one.")}, false
	}

	r := g.Engine.ApplyMove(g.id, input)
	return g.result(r), false
}

func (g *Game) result(r types.MoveResult) []Line {
	prev := g.last
	g.last = r

	var out []Line
	for _, n := range r.Narrative {
		out = append(out, Line{Text: n})
	}

	switch {
	case r.SessionID == session.NotFoundID:
	case r.RoomName != prev.RoomName || r.Verbose:
		out = append(out, g.roomLines(r)...)
	case r.Items != g.lastItems && r.Items != "":
		out = append(out, Line{Text: r.Items, Kind: KindItems})
	}
	g.lastItems = r.Items

	if g.Trace {
		out = append(out, Line{
			Text: fmt.Sprintf("[trace] turn=%d health=%s score=%d session=%s", r.Turn, r.Health, r.Score, r.SessionID),
			Kind: KindTrace,
		})
	}

	if r.Ended || r.SessionID == session.NotFoundID {
		g.id = ""
		out = append(out, system("The game is over. Type /new to play again."))
	}
	return out
}

func (g *Game) roomLines(r types.MoveResult) []Line {
	out := []Line{{Text: r.RoomName, Kind: KindRoom}}
	if r.Description != "" {
		out = append(out, Line{Text: r.Description, Kind: KindDescription})
	}
	if r.Items != "" {
		out = append(out, Line{Text: r.Items, Kind: KindItems})
	}
	return out
}

// Exits lists the open directions out of the current room.
func (g *Game) Exits() []string {
	if g.id == "" {
		return nil
	}
	s := g.Engine.Store.Get(g.id)
	room := state.CurrentRoom(s)
	if room == nil {
		return nil
	}
	var dirs []string
	for d, to := range room.Exits {
		if to != types.NoExit {
			dirs = append(dirs, types.DirectionNames[d][:1])
		}
	}
	return dirs
}

func (g *Game) meta(input string) ([]Line, bool) {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []Line{system("Goodbye.")}, true
	case "/new":
		return g.Start(arg), false
	case "/titles":
		return g.titles(), false
	case "/state":
		return g.state(), false
	case "/help":
		return helpLines(), false
	case "/trace":
		g.Trace = !g.Trace
		if g.Trace {
			return []Line{system("Trace output enabled.")}, false
		}
		return []Line{system("Trace output disabled.")}, false
	default:
		return []Line{system(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))}, false
	}
}

func (g *Game) titles() []Line {
	var out []Line
	for _, t := range g.Library.Titles() {
		text := fmt.Sprintf("%s: %s", t.ID, t.Name)
		if t.ID == g.Library.Default() {
			text += " (default)"
		}
		out = append(out, system(text))
	}
	return out
}

func (g *Game) state() []Line {
	if g.id == "" {
		return []Line{system("No game in progress.")}
	}
	s := g.Engine.Store.Get(g.id)

	room := "?"
	if r := state.CurrentRoom(s); r != nil {
		room = fmt.Sprintf("%s (%d)", r.Name, r.ID)
	}
	carrying := state.ItemNames(state.ItemsAt(s, state.CarriedLocation))
	if carrying == "" {
		carrying = "nothing"
	}

	out := []Line{
		system(fmt.Sprintf("Session: %s", s.ID)),
		system(fmt.Sprintf("Title: %s", s.Title)),
		system(fmt.Sprintf("Turn: %d", s.Turn)),
		system(fmt.Sprintf("Location: %s", room)),
		system(fmt.Sprintf("Health: %d/%d", s.Player.Health, s.Player.MaxHealth)),
		system(fmt.Sprintf("Score: %d", s.Player.Score)),
		system(fmt.Sprintf("Carrying: %s", carrying)),
	}
	if len(s.Awarded) > 0 {
		out = append(out, system(fmt.Sprintf("Milestones: %s", strings.Join(s.Awarded, ", "))))
	}
	return out
}

func helpLines() []Line {
	text := []string{
		"System:",
		"  /new [title]  Start a new game (default title if omitted)",
		"  /titles       List the available titles",
		"  /state        Debug: dump the current session",
		"  /trace        Toggle trace output",
		"  /help         Show this help",
		"  /quit         Exit",
		"",
		"Game commands:",
		"  n, s, e, w, u, d        Move (or go <direction>)",
		"  get/take <item>         Pick something up",
		"  drop <item>             Put something down",
		"  look <thing>            Look at an item or creature",
		"  inv (i)                 Check what you are carrying",
		"  pet / shoo <animal>     Befriend or send away an animal",
		"  use <item>              Also eat, drink, read, wave, throw...",
		"  attack <creature>       Fight",
		"  score, verbose, help    About your game",
		"  quit                    End the game",
		"  again (g)               Repeat your last command",
	}
	out := make([]Line, len(text))
	for i, t := range text {
		out[i] = Line{Text: t}
	}
	return out
}

func system(text string) Line {
	return Line{Text: text, Kind: KindSystem}
}
