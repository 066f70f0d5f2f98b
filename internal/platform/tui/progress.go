package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const maxBarWidth = 60

// frameDoneMsg reports how many frames have been rendered so far.
type frameDoneMsg int

// workDoneMsg reports that the render finished, possibly with an error.
type workDoneMsg struct{ err error }

// ProgressModel is the Bubble Tea model for the render progress bar.
type ProgressModel struct {
	bar         progress.Model
	total       int
	done        int
	err         error
	interrupted bool
}

// NewProgressModel creates a progress model for the given frame count.
func NewProgressModel(total int) ProgressModel {
	return ProgressModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 8
		if m.bar.Width > maxBarWidth {
			m.bar.Width = maxBarWidth
		}
		return m, nil

	case frameDoneMsg:
		m.done = int(msg)
		return m, m.bar.SetPercent(float64(m.done) / float64(m.total))

	case workDoneMsg:
		m.err = msg.err
		return m, tea.Quit

	case progress.FrameMsg:
		barModel, cmd := m.bar.Update(msg)
		m.bar = barModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// View renders the progress bar with a frame counter.
func (m ProgressModel) View() string {
	return fmt.Sprintf("\n  rendering frame %d/%d\n\n  %s\n", m.done, m.total, m.bar.View())
}

// RunProgress runs work in the background while showing a progress
// bar. The work function receives a callback to report completed
// frames and must be safe to call from its own goroutine.
func RunProgress(total int, work func(report func(done int)) error) error {
	p := tea.NewProgram(NewProgressModel(total))

	go func() {
		err := work(func(done int) {
			p.Send(frameDoneMsg(done))
		})
		p.Send(workDoneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}

	model, ok := final.(ProgressModel)
	if !ok {
		return nil
	}
	if model.interrupted {
		return fmt.Errorf("render interrupted")
	}
	return model.err
}
