package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// statusParts returns the left and right halves of the status bar text.
func (m Model) statusParts() (string, string) {
	if m.game.SessionID() == "" {
		return " No game in progress", "/new to start "
	}
	r := m.game.Last()

	left := fmt.Sprintf(" %s", r.RoomName)
	if exits := m.game.Exits(); len(exits) > 0 {
		left += " | Exits: " + strings.Join(exits, ",")
	}
	right := fmt.Sprintf("Health: %s | Score: %d | T:%d ", r.Health, r.Score, r.Turn)
	return left, right
}

// renderStatusBar produces a full-width inverted status line showing the
// current room, its exits, the health band, score and turn count.
func (m Model) renderStatusBar() string {
	left, right := m.statusParts()

	if m.game.SessionID() != "" {
		band := m.game.Last().Health
		if c, ok := bandColors[band]; ok {
			right = strings.Replace(right, string(band), lipgloss.NewStyle().Foreground(c).Render(string(band)), 1)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}

