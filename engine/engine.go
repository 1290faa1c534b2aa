// Package engine provides the game orchestrator: it loads a session from the
// store, runs one command through parsing, movement, items, combat and
// scoring, and writes the new session back.
package engine

import (
	"log/slog"
	"strconv"

	"github.com/nathoo/multiquest/engine/combat"
	"github.com/nathoo/multiquest/engine/fortune"
	"github.com/nathoo/multiquest/engine/items"
	"github.com/nathoo/multiquest/engine/messages"
	"github.com/nathoo/multiquest/engine/movement"
	"github.com/nathoo/multiquest/engine/parser"
	"github.com/nathoo/multiquest/engine/rng"
	"github.com/nathoo/multiquest/engine/scoring"
	"github.com/nathoo/multiquest/engine/session"
	"github.com/nathoo/multiquest/engine/state"
	"github.com/nathoo/multiquest/engine/turn"
	"github.com/nathoo/multiquest/types"
)

// DefaultHelp is shown by "help" when a title has no help text.
const DefaultHelp = "Directions: n, s, e, w, u, d. Try get, drop, look, inv, pet, shoo, use, eat, drink, read, wave, attack, score, verbose, quit."

// Outcome is what a single command produced besides the new session.
type Outcome struct {
	Narrative []string
	Valid     bool
	Ended     bool
}

// Engine runs moves against stored sessions.
type Engine struct {
	Store   *session.Store
	RNG     rng.Source
	Fortune fortune.Provider
	Log     *slog.Logger
}

// New creates an engine. A nil logger falls back to slog.Default.
func New(store *session.Store, src rng.Source, fp fortune.Provider, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{Store: store, RNG: src, Fortune: fp, Log: log}
}

// NewGame starts a session for a title and renders its first room.
func (e *Engine) NewGame(titleID string) types.MoveResult {
	id, err := e.Store.Create(titleID)
	if err != nil {
		e.Log.Error("new game failed", "title", titleID, "error", err)
		return Render(session.NotFound(), Outcome{Narrative: []string{session.NotFoundText}})
	}

	s := e.Store.Get(id)
	var narrative []string
	if s.Welcome != "" {
		narrative = append(narrative, s.Welcome)
	}
	return Render(s, Outcome{Narrative: narrative, Valid: true})
}

// ApplyMove runs one command against a stored session.
func (e *Engine) ApplyMove(id, command string) types.MoveResult {
	if !e.Store.Exists(id) {
		return Render(session.NotFound(), Outcome{Narrative: []string{session.NotFoundText}})
	}

	s := e.Store.Get(id)
	next, out := e.Apply(s, parser.Parse(command))

	if out.Ended {
		e.Store.Delete(id)
	} else if !e.Store.Replace(id, next) {
		return Render(session.NotFound(), Outcome{Narrative: []string{session.NotFoundText}})
	}

	e.Log.Debug("move applied",
		"session", id,
		"command", command,
		"valid", out.Valid,
		"room", next.Player.Room,
		"health", next.Player.Health,
		"score", next.Player.Score,
	)
	return Render(next, out)
}

// Apply computes the session that results from one intent. The input
// session is not modified.
func (e *Engine) Apply(s *types.Session, in types.Intent) (*types.Session, Outcome) {
	next := state.Clone(s)
	t := turn.New(next, &in, e.RNG, e.Fortune, e.Log)

	// Empty input costs nothing.
	if in.Raw == "" {
		t.Fail(messages.Empty, "")
		return next, outcome(t, false)
	}

	wasAlive := state.Alive(next.Player)
	ended := e.dispatch(t)

	if !freeVerbs[in.Verb] {
		combat.MonsterPhase(t)
		if !combatMove(next, &in) && state.Alive(next.Player) {
			next.Player.Health -= next.HealthStep
		}
	}

	switch scoring.PlayerBand(next) {
	case types.BandDead:
		if wasAlive {
			t.Say(messages.Dead, next.Player.Name)
		}
	case types.BandHorrible:
		t.Say(messages.LowHealth, next.Player.Name)
	}

	next.Active = state.Alive(next.Player) && !ended
	next.Turn++
	return next, outcome(t, ended)
}

// freeVerbs report on the game without advancing the world.
var freeVerbs = map[types.Verb]bool{
	types.VerbHelp:    true,
	types.VerbScore:   true,
	types.VerbVerbose: true,
	types.VerbQuit:    true,
}

// dispatch routes the intent to its stage and reports whether the game ended.
func (e *Engine) dispatch(t *turn.Turn) bool {
	in := t.Intent
	s := t.Session

	if !in.Valid {
		if in.Verb == types.VerbMove {
			t.Fail(messages.NoWhere, "")
		} else {
			t.Fail(messages.Any, in.Raw)
		}
		return false
	}

	switch in.Verb {
	case types.VerbMove:
		movement.Move(t)
	case types.VerbGet:
		items.Get(t)
	case types.VerbDrop:
		items.Drop(t)
	case types.VerbPet:
		items.Pet(t)
	case types.VerbShoo:
		items.Shoo(t)
	case types.VerbInventory:
		items.Inventory(t)
	case types.VerbLook:
		items.Look(t)
	case types.VerbAttack:
		if items.Usable(s, in) != nil {
			items.Use(t)
		} else {
			combat.Attack(t)
		}
	case types.VerbUse, types.VerbEat, types.VerbDrink, types.VerbWear,
		types.VerbRead, types.VerbWave, types.VerbThrow, types.VerbActivate:
		items.Use(t)
	case types.VerbHelp:
		if s.Help != "" {
			t.Print(s.Help)
		} else {
			t.Print(DefaultHelp)
		}
	case types.VerbScore:
		t.Say(messages.Score, strconv.Itoa(s.Player.Score))
	case types.VerbVerbose:
		s.Player.Verbose = !s.Player.Verbose
		if s.Player.Verbose {
			t.Say(messages.Verbose, "")
		} else {
			t.Say(messages.Terse, "")
		}
	case types.VerbQuit:
		t.Print(s.Thanks)
		return true
	default:
		t.Fail(messages.Any, in.Raw)
	}
	return false
}

// combatMove reports whether the intent was a fight: an attack, or using a
// weapon item. Combat moves do not drain the health step.
func combatMove(s *types.Session, in *types.Intent) bool {
	if in.Verb == types.VerbAttack {
		return true
	}
	if !parser.IsUseVerb(in.Verb) {
		return false
	}
	it := state.FindItem(s, in.Modifier)
	return it != nil && it.Action != nil && it.Action.Kind == types.ActionWeapon
}

func outcome(t *turn.Turn, ended bool) Outcome {
	return Outcome{
		Narrative: t.Intent.Output,
		Valid:     t.Intent.Valid,
		Ended:     ended,
	}
}

// Render projects a session and an outcome into a MoveResult.
func Render(s *types.Session, out Outcome) types.MoveResult {
	r := types.MoveResult{
		SessionID:  s.ID,
		Title:      s.Title,
		Narrative:  out.Narrative,
		Items:      state.RoomItemsText(s),
		PlayerName: s.Player.Name,
		Health:     scoring.PlayerBand(s),
		Score:      s.Player.Score,
		Turn:       s.Turn,
		Verbose:    s.Player.Verbose,
		Ended:      out.Ended,
	}
	if room := state.CurrentRoom(s); room != nil {
		r.RoomName = room.Name
		r.Description = room.Description
	}
	return r
}
