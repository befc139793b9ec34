package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ladders-duel/internal/core"
)

// nameLimit caps a player name so it fits the sidebar.
const nameLimit = 13

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	promptBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(1, 3)
	promptHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	seatStyles      = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
)

// NamePrompt asks for both player names before a match.
type NamePrompt struct {
	inputs   []textinput.Model
	focus    int
	width    int
	height   int
	done     bool
	canceled bool
	quitting bool
}

// NewNamePrompt creates a prompt with one field per seat, prefilled with defaults.
func NewNamePrompt(defaults []string, width, height int) NamePrompt {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fmt.Sprintf("Player %d", i+1)
		ti.CharLimit = nameLimit
		ti.Width = nameLimit + 1
		ti.TextStyle = seatStyles[i]
		if i < len(defaults) {
			ti.SetValue(strings.TrimSpace(defaults[i]))
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	return NamePrompt{
		inputs: inputs,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blink.
func (m NamePrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles typing and moving between the fields.
func (m NamePrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.canceled = true
			return m, tea.Quit
		case "tab", "down":
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.setFocus(m.focus - 1)
			return m, cmd
		case "enter":
			if m.focus < len(m.inputs)-1 {
				cmd := m.setFocus(m.focus + 1)
				return m, cmd
			}
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves the cursor to field i, wrapping around.
func (m *NamePrompt) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

// View renders the prompt centered on screen.
func (m NamePrompt) View() string {
	if m.quitting || m.canceled || m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptTitleStyle.Render("Who's playing?"))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		label := seatStyles[i].Render(fmt.Sprintf("Player %d", i+1))
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, label, in.View()))
	}
	b.WriteString("\n")
	b.WriteString(promptHelpStyle.Render("Enter: next/start  Tab: switch  Esc: back"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, promptBoxStyle.Render(b.String()))
}

// Names returns the entered names. Blank fields get the default seat name.
func (m NamePrompt) Names() []string {
	names := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		names[i] = strings.TrimSpace(in.Value())
		if names[i] == "" {
			names[i] = in.Placeholder
		}
	}
	return names
}

// Done returns true once both names were confirmed.
func (m NamePrompt) Done() bool {
	return m.done
}

// Canceled returns true if the user backed out of the prompt.
func (m NamePrompt) Canceled() bool {
	return m.canceled
}

// IsQuitting returns true if the user asked to quit.
func (m NamePrompt) IsQuitting() bool {
	return m.quitting
}

// RunNamePrompt asks for the player names. ok is false if the user backed out.
func RunNamePrompt(defaults []string, cfg core.RuntimeConfig) (names []string, ok bool, err error) {
	p := tea.NewProgram(NewNamePrompt(defaults, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, isPrompt := finalModel.(NamePrompt)
	if !isPrompt || !m.Done() {
		return nil, false, nil
	}
	return m.Names(), true, nil
}
