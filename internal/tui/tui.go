// Package tui provides a terminal pager for the balance report.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xolan/ponto/internal/tui/ui"
)

// Model is the pager model
type Model struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool

	styles ui.Styles
	keys   ui.KeyMap
}

// New creates a pager showing content under title.
func New(title, content string) Model {
	styles := ui.DefaultStyles()
	return Model{
		title:   title,
		content: styles.HighlightReport(content),
		styles:  styles,
		keys:    ui.DefaultKeyMap(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - m.chromeHeight()
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Carregando..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.title),
		m.viewport.View(),
		m.statusBar(),
	)
}

func (m Model) chromeHeight() int {
	return lipgloss.Height(m.styles.Title.Render(m.title)) + 1
}

func (m Model) statusBar() string {
	var help []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, m.styles.StatusKey.Render(h.Key)+" "+m.styles.StatusHelp.Render(h.Desc))
	}
	pos := m.styles.StatusValue.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	return m.styles.StatusBar.Render(pos + "  " + strings.Join(help, "  "))
}

// Show runs the pager in the alternate screen until the user quits.
func Show(title, content string) error {
	_, err := tea.NewProgram(New(title, content), tea.WithAltScreen()).Run()
	return err
}
