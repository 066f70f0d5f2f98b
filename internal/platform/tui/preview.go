package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/globegif/internal/config"
	"github.com/vovakirdan/globegif/internal/render"
)

var statusStyle = lipgloss.NewStyle().Faint(true)

// PreviewModel is the Bubble Tea model for the live globe preview. It
// renders one animation frame per tick at terminal resolution, two
// columns per pixel.
type PreviewModel struct {
	cfg      config.Config
	renderer *render.Renderer
	timeline render.Timeline
	buf      []byte
	frame    int
	paused   bool
	quitting bool
}

// NewPreviewModel creates a preview sized to the given terminal
// dimensions (columns and rows).
func NewPreviewModel(cfg config.Config, cols, rows int) (PreviewModel, error) {
	tex, err := cfg.Sampler()
	if err != nil {
		return PreviewModel{}, err
	}

	m := PreviewModel{
		cfg:      cfg,
		renderer: cfg.Renderer(tex),
		timeline: cfg.Timeline(),
	}
	m.resize(cols, rows)
	return m, nil
}

// resize adapts the render target to the terminal size, keeping one
// row for the status line.
func (m *PreviewModel) resize(cols, rows int) {
	w := cols / 2
	h := rows - 1
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	m.renderer.Width = w
	m.renderer.Height = h
	m.buf = make([]byte, w*h)
	m.renderFrame()
}

// renderFrame draws the current frame into the buffer.
func (m *PreviewModel) renderFrame() {
	m.renderer.Frame(m.buf, m.timeline.FrameTime(m.frame), m.timeline.TotalTime())
}

// Init starts the animation loop.
func (m PreviewModel) Init() tea.Cmd {
	return tickCmd(m.timeline.DelayCS)
}

// Update handles messages and updates the model state.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "r":
			m.frame = 0
			m.renderFrame()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if !m.paused {
			m.frame = (m.frame + 1) % m.timeline.Frames
			m.renderFrame()
		}
		return m, tickCmd(m.timeline.DelayCS)
	}

	return m, nil
}

// View renders the current frame plus a status line.
func (m PreviewModel) View() string {
	if m.quitting {
		return ""
	}

	status := fmt.Sprintf("frame %d/%d", m.frame+1, m.timeline.Frames)
	if m.paused {
		status += "  paused"
	}
	status += "  [space] pause  [r] restart  [q] quit"

	return RenderFrame(m.buf, m.renderer.Width, m.renderer.Height) +
		"\n" + statusStyle.Render(status)
}

// RunPreview starts the preview program in the alternate screen.
func RunPreview(cfg config.Config, cols, rows int) error {
	model, err := NewPreviewModel(cfg, cols, rows)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
