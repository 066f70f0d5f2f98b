package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/globegif/internal/storage"
)

// History layout constants
const (
	maxHistoryRows = 100 // Max entries to load
	tableHeight    = 15
)

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the render history browser.
type HistoryModel struct {
	stats    *storage.Stats
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	quitting bool
}

// NewHistoryModel creates a history model from stored render entries.
func NewHistoryModel(store *storage.Store) (HistoryModel, error) {
	entries, err := store.RecentRenders(maxHistoryRows)
	if err != nil {
		return HistoryModel{}, err
	}
	stats, err := store.GetStats()
	if err != nil {
		return HistoryModel{}, err
	}

	columns := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Output", Width: 24},
		{Title: "Size", Width: 10},
		{Title: "Frames", Width: 8},
		{Title: "Took", Width: 10},
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Output,
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			fmt.Sprintf("%d", e.Frames),
			(time.Duration(e.DurationMS) * time.Millisecond).String(),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	h := help.New()
	h.ShowAll = false

	return HistoryModel{
		stats: stats,
		table: t,
		help:  h,
		keys:  DefaultHistoryKeyMap(),
	}, nil
}

// Init implements tea.Model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history table with summary stats and help.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	summary := fmt.Sprintf("%d renders, %d frames total", m.stats.Renders, m.stats.TotalFrames)
	if m.stats.Renders > 0 {
		summary += fmt.Sprintf(", avg %s",
			(time.Duration(m.stats.AvgDurationMS) * time.Millisecond).Round(time.Millisecond))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(summary),
		m.table.View(),
		m.help.View(m.keys),
	)
}

// RunHistory starts the history browser program.
func RunHistory(store *storage.Store) error {
	model, err := NewHistoryModel(store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
