// Package turn carries the per-move context shared by the engine stages.
package turn

import (
	"log/slog"

	"github.com/nathoo/multiquest/engine/fortune"
	"github.com/nathoo/multiquest/engine/messages"
	"github.com/nathoo/multiquest/engine/rng"
	"github.com/nathoo/multiquest/types"
)

// Turn is the state of one move as it passes through the stages. Session
// is the working copy the move mutates; Intent accumulates the narrative.
type Turn struct {
	Session  *types.Session
	Intent   *types.Intent
	RNG      rng.Source
	Messages messages.Table
	Fortune  fortune.Provider
	Log      *slog.Logger

	// Defeated holds monster keys beaten this move; they sit out the
	// monster phase so they cannot respawn immediately.
	Defeated map[string]bool
}

// New builds a Turn over a working session copy.
func New(s *types.Session, in *types.Intent, src rng.Source, fp fortune.Provider, log *slog.Logger) *Turn {
	if log == nil {
		log = slog.Default()
	}
	return &Turn{
		Session:  s,
		Intent:   in,
		RNG:      src,
		Messages: messages.NewTable(s.Messages, src),
		Fortune:  fp,
		Log:      log,
		Defeated: map[string]bool{},
	}
}

// Say appends the message for tag to the narrative.
func (t *Turn) Say(tag, arg string) {
	t.Intent.Output = append(t.Intent.Output, t.Messages.Text(tag, arg))
}

// Print appends literal text to the narrative.
func (t *Turn) Print(text string) {
	if text == "" {
		return
	}
	t.Intent.Output = append(t.Intent.Output, text)
}

// Fail marks the intent invalid and explains why.
func (t *Turn) Fail(tag, arg string) {
	t.Intent.Valid = false
	t.Say(tag, arg)
}
