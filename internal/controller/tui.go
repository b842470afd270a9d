package controller

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "webch.dev/pkg/webch/internal/model"
)

var pagerTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// TUI pages the final listing in an interactive viewport.
type TUI struct{}

// NewTUI creates a new TUI.
func NewTUI() *TUI {
	return &TUI{}
}

// Show renders lines with the listing renderer and opens the result in a
// full-screen pager. Returns when the user quits.
func (t *TUI) Show(title string, lines []m.Line) error {
	var content strings.Builder
	if err := NewListingRenderer().Render(&content, lines); err != nil {
		return err
	}

	model := pagerModel{title: title, content: content.String()}
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()

	return err
}

type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(p.headerView())
		if !p.ready {
			p.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = msg.Height - headerHeight
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "loading..."
	}

	return p.headerView() + "\n" + p.viewport.View()
}

func (p pagerModel) headerView() string {
	return pagerTitleStyle.Render(p.title)
}
