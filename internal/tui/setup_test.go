package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/e6dl/e6dl/internal/config"
)

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestModel_Defaults(t *testing.T) {
	m := NewModel()

	if got := m.Config(); !reflect.DeepEqual(got, config.DefaultConfig()) {
		t.Errorf("Config() = %+v, want defaults %+v", got, config.DefaultConfig())
	}
	if _, ok := m.Login(); ok {
		t.Error("Login() should report no credentials for an untouched form")
	}
}

func TestModel_ToggleNamingConvention(t *testing.T) {
	m := NewModel()

	// tab to the naming row, then toggle with space
	next, _ := m.Update(keyMsg(tea.KeyTab))
	m = next.(Model)
	next, _ = m.Update(keyMsg(tea.KeySpace))
	m = next.(Model)

	if got := m.Config().NamingConvention; got != config.NamingID {
		t.Errorf("NamingConvention after toggle = %q, want %q", got, config.NamingID)
	}

	next, _ = m.Update(keyMsg(tea.KeySpace))
	m = next.(Model)
	if got := m.Config().NamingConvention; got != config.NamingMD5 {
		t.Errorf("NamingConvention after second toggle = %q, want %q", got, config.NamingMD5)
	}
}

func TestModel_CollectsCredentials(t *testing.T) {
	m := NewModel()

	// tab past directory and naming to the username field
	for i := 0; i < 2; i++ {
		next, _ := m.Update(keyMsg(tea.KeyTab))
		m = next.(Model)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("puppy")})
	m = next.(Model)

	login, ok := m.Login()
	if !ok {
		t.Fatal("Login() should report entered credentials")
	}
	if login.Username != "puppy" {
		t.Errorf("Username = %q, want %q", login.Username, "puppy")
	}
	if !login.DownloadFavorites || !login.IgnoreBlacklistOnFavorites {
		t.Errorf("toggles should keep their defaults: %+v", login)
	}
}

func TestModel_AbortOnEsc(t *testing.T) {
	m := NewModel()

	next, _ := m.Update(keyMsg(tea.KeyEsc))
	m = next.(Model)

	if !m.Aborted() {
		t.Error("Aborted() = false after esc")
	}
}
