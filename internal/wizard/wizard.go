// Package wizard implements the interactive Bubble Tea picker shown when
// detection cannot resolve a dependency manager. The picker presents the
// four supported managers and returns the user's choice; cancelling (esc,
// ctrl+c, or a closed input stream) aborts the run with an error instead
// of re-prompting forever.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dlt-tools/dlt-install/internal/manager"
)

// Run shows the picker and returns the chosen manager.
func Run() (manager.Kind, error) {
	p := tea.NewProgram(newModel())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("manager selection: %w", err)
	}
	result := final.(pickerModel)
	if result.cancelled || !result.chosen {
		return "", fmt.Errorf("no dependency manager selected")
	}
	return result.choices[result.cursor].kind, nil
}

// ── styles ────────────────────────────────────────────────────────────────────

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle     = dimStyle
)

// ── model ─────────────────────────────────────────────────────────────────────

type choice struct {
	kind manager.Kind
	desc string
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c", "q")),
}

type pickerModel struct {
	choices   []choice
	cursor    int
	cancelled bool
	chosen    bool
}

func newModel() pickerModel {
	return pickerModel{
		choices: []choice{
			{kind: manager.UV, desc: "fast, modern (recommended)"},
			{kind: manager.Pip, desc: "standard"},
			{kind: manager.Poetry, desc: "pyproject-based workflows"},
			{kind: manager.Pipenv, desc: "Pipfile-based workflows"},
		},
	}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msgKey, keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msgKey, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msgKey, keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case key.Matches(msgKey, keys.Select):
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  dlt-install") + "  no dependency manager detected\n\n")
	b.WriteString("  Which would you like to use?\n\n")

	for i, c := range m.choices {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = selectedStyle.Render(" ▶")
			style = selectedStyle
		}
		b.WriteString(fmt.Sprintf("%s %-8s %s\n",
			cursor,
			style.Render(string(c.kind)),
			dimStyle.Render(c.desc),
		))
	}

	b.WriteString("\n" + helpStyle.Render("  ↑↓ move · enter select · esc quit"))
	return b.String()
}
