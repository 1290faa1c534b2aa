package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/multiquest/cli"
	"github.com/nathoo/multiquest/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleRoomName = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	styleRoomDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleYouSee = lipgloss.NewStyle().
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// bandColors tints the health segment of the status bar.
var bandColors = map[types.HealthBand]lipgloss.Color{
	types.BandGreat:    "34",
	types.BandOkay:     "148",
	types.BandBad:      "214",
	types.BandHorrible: "202",
	types.BandDead:     "196",
}

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindRoomName
	kindYouSee
	kindSystem
	kindError
	kindTrace
)

// classifyLine maps a game line onto a style. Narrative lines that read as
// refusals are shown as errors.
func classifyLine(l cli.Line) lineKind {
	switch l.Kind {
	case cli.KindRoom:
		return kindRoomName
	case cli.KindItems:
		return kindYouSee
	case cli.KindSystem:
		return kindSystem
	case cli.KindTrace:
		return kindTrace
	case cli.KindDescription:
		return kindNarrative
	}

	switch {
	case strings.HasPrefix(l.Text, "You don't see"),
		strings.HasPrefix(l.Text, "You can't"),
		strings.HasPrefix(l.Text, "You don't have"),
		strings.HasPrefix(l.Text, "You need the"):
		return kindError
	default:
		return kindNarrative
	}
}

// styledYouSee renders "You see: item1, item2." with item names bold.
func styledYouSee(line string) string {
	const prefix = "You see: "
	if !strings.HasPrefix(line, prefix) {
		return styleRoomDesc.Render(line)
	}
	return styleRoomDesc.Render(prefix) + styleYouSee.Render(line[len(prefix):])
}

// styledPlayerInput renders the echoed player input in green with "> " prefix.
func styledPlayerInput(input string) string {
	return stylePlayerInput.Render("> " + input)
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
