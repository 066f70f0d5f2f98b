// Package tui provides the Bubble Tea integration for the globe
// renderer: the live terminal preview, the render progress bar, the
// history browser, and the SSH preview server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the preview animation by one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next frame tick
// after the given GIF delay (hundredths of a second).
func tickCmd(delayCS int) tea.Cmd {
	interval := time.Duration(delayCS) * 10 * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
