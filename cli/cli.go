// Package cli provides line-mode terminal I/O and meta-command dispatch for
// the multiquest engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nathoo/multiquest/engine"
	"github.com/nathoo/multiquest/loader"
)

// CLI handles plain terminal interaction with the player.
type CLI struct {
	Game      *Game
	Title     string // title started on Run; empty means the default
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)
}

// New creates a CLI wired to the given engine and title library.
func New(eng *engine.Engine, lib *loader.Library) *CLI {
	return &CLI{
		Game: NewGame(eng, lib),
		In:   os.Stdin,
		Out:  os.Stdout,
	}
}

// Run starts a game and loops: prompt, input, dispatch, output.
func (c *CLI) Run() {
	c.printLines(c.Game.Start(c.Title))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()
		if c.EchoInput {
			c.printLine(input)
		}

		out, quit := c.Game.Handle(input)
		c.printLines(out)
		if quit {
			return
		}
	}
}

func (c *CLI) printLines(lines []Line) {
	for _, l := range lines {
		switch l.Kind {
		case KindSystem:
			c.printSystem(l.Text)
		case KindRoom:
			if l.Text != "" {
				c.printLine("== " + l.Text + " ==")
			}
		default:
			c.printLine(l.Text)
		}
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
