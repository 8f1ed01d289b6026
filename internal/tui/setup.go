// Package tui provides the Bubble Tea first-run setup form for e6dl.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/e6dl/e6dl/internal/config"
)

// Styles for the setup form
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#95E1A3"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// State represents the current form state.
type State int

const (
	StateEditing State = iota
	StateDone
	StateAborted
)

// Form rows, top to bottom.
const (
	rowDirectory = iota
	rowNaming
	rowUsername
	rowAPIKey
	rowCount
)

// Model is the Bubble Tea model for the first-run setup form.
//
// The form collects a download directory, the file naming convention and
// an optional credential pair. It never touches the disk itself; the
// caller reads the result through Config and Login once the program has
// finished.
type Model struct {
	state  State
	focus  int
	naming string

	directory textinput.Model
	username  textinput.Model
	apiKey    textinput.Model
}

// NewModel creates a new setup form model.
func NewModel() Model {
	dir := textinput.New()
	dir.Placeholder = config.DefaultConfig().DownloadDirectory
	dir.SetValue(config.DefaultConfig().DownloadDirectory)
	dir.CharLimit = 250
	dir.Width = 40
	dir.Focus()

	user := textinput.New()
	user.Placeholder = "leave blank to skip"
	user.CharLimit = 100
	user.Width = 40

	key := textinput.New()
	key.Placeholder = "leave blank to skip"
	key.EchoMode = textinput.EchoPassword
	key.CharLimit = 100
	key.Width = 40

	return Model{
		state:     StateEditing,
		naming:    config.NamingMD5,
		directory: dir,
		username:  user,
		apiKey:    key,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.state = StateAborted
			return m, tea.Quit

		case "enter":
			if m.focus == rowAPIKey {
				m.state = StateDone
				return m, tea.Quit
			}
			m.moveFocus(1)
			return m, nil

		case "tab", "down":
			m.moveFocus(1)
			return m, nil

		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil

		case "left", "right":
			if m.focus == rowNaming {
				m.toggleNaming()
				return m, nil
			}

		case " ":
			if m.focus == rowNaming {
				m.toggleNaming()
				return m, nil
			}
		}
	}

	// Everything else goes to the focused text input.
	var cmd tea.Cmd
	switch m.focus {
	case rowDirectory:
		m.directory, cmd = m.directory.Update(msg)
	case rowUsername:
		m.username, cmd = m.username.Update(msg)
	case rowAPIKey:
		m.apiKey, cmd = m.apiKey.Update(msg)
	}
	return m, cmd
}

func (m *Model) moveFocus(delta int) {
	m.focus = (m.focus + delta + rowCount) % rowCount

	for row, input := range map[int]*textinput.Model{
		rowDirectory: &m.directory,
		rowUsername:  &m.username,
		rowAPIKey:    &m.apiKey,
	} {
		if row == m.focus {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (m *Model) toggleNaming() {
	if m.naming == config.NamingMD5 {
		m.naming = config.NamingID
	} else {
		m.naming = config.NamingMD5
	}
}

// View renders the form.
func (m Model) View() string {
	if m.state != StateEditing {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("e6dl setup"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("No config.json was found, so let's create one."))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Download directory"))
	b.WriteString("\n")
	b.WriteString("  " + m.directory.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("File naming convention"))
	b.WriteString("\n")
	b.WriteString("  " + m.namingView())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Username (optional)"))
	b.WriteString("\n")
	b.WriteString("  " + m.username.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("API key (optional, treated like a password)"))
	b.WriteString("\n")
	b.WriteString("  " + m.apiKey.View())
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render("tab/enter: next field • space: toggle convention • esc: abort"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) namingView() string {
	render := func(name string) string {
		mark := "( )"
		style := dimStyle
		if m.naming == name {
			mark = "(•)"
			style = selectedStyle
		}
		return style.Render(fmt.Sprintf("%s %s", mark, name))
	}
	return render(config.NamingMD5) + "  " + render(config.NamingID)
}

// Aborted reports whether the user backed out of the form.
func (m Model) Aborted() bool {
	return m.state != StateDone
}

// Config returns the Config assembled from the form. A blank directory
// falls back to the default.
func (m Model) Config() config.Config {
	cfg := config.DefaultConfig()
	if dir := strings.TrimSpace(m.directory.Value()); dir != "" {
		cfg.DownloadDirectory = dir
	}
	cfg.NamingConvention = m.naming
	return cfg
}

// Login returns the Login assembled from the form and whether any
// credential was entered at all.
func (m Model) Login() (config.Login, bool) {
	login := config.DefaultLogin()
	login.Username = strings.TrimSpace(m.username.Value())
	login.APIKey = strings.TrimSpace(m.apiKey.Value())
	return login, login.Username != "" || login.APIKey != ""
}
