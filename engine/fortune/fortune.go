// Package fortune supplies fortune-cookie lines for items whose action kind
// is "fortune".
package fortune

import (
	"time"

	"github.com/nathoo/multiquest/engine/rng"
)

// Mode selects how a fortune is chosen.
type Mode int

const (
	// Random draws from the injected random source.
	Random Mode = iota
	// TimeBased derives the fortune from the wall clock, so repeated reads
	// within the same minute agree.
	TimeBased
)

// Provider returns one fortune.
type Provider interface {
	Fortune(mode Mode) string
}

// Cookies is a Provider over a fixed list of lines.
type Cookies struct {
	Lines []string
	RNG   rng.Source
	Now   func() time.Time
}

// DefaultLines is the built-in cookie jar.
var DefaultLines = []string{
	"You will find what you seek behind a locked door.",
	"A small creature will prove a loyal friend.",
	"Patience is a lamp in a dark corridor.",
	"The road north is not always the road forward.",
	"An old key opens more than one lock.",
	"Eat well before a long journey.",
	"Fortune favours those who wave at the right moment.",
	"What is dropped may yet be found again.",
}

// NewCookies returns a provider over DefaultLines.
func NewCookies(src rng.Source) *Cookies {
	return &Cookies{Lines: DefaultLines, RNG: src, Now: time.Now}
}

// Fortune returns one line. An empty jar yields an empty string.
func (c *Cookies) Fortune(mode Mode) string {
	if len(c.Lines) == 0 {
		return ""
	}
	switch mode {
	case TimeBased:
		now := time.Now
		if c.Now != nil {
			now = c.Now
		}
		minute := now().Unix() / 60
		return c.Lines[int(minute%int64(len(c.Lines)))]
	default:
		return c.Lines[c.RNG.Intn(len(c.Lines))]
	}
}
