package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pawsandgo/pawsgo/domain"
)

// LoginModel is the login / register screen. It starts in login mode with a
// single email field and switches to a full registration form on "r".
type LoginModel struct {
	registering bool
	inputs      []textinput.Model
	focus       int
	role        string
	error       string
}

// NewLoginModel creates the login screen in login mode.
func NewLoginModel() *LoginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	email.Focus()

	return &LoginModel{
		inputs: []textinput.Model{email},
		role:   domain.RoleOwner,
	}
}

func (m *LoginModel) startRegister() {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 64
	name.Focus()
	phone := textinput.New()
	phone.Placeholder = "phone"
	phone.CharLimit = 20
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64

	m.registering = true
	m.inputs = []textinput.Model{name, phone, email}
	m.focus = 0
	m.error = ""
}

func (m *LoginModel) toggleRole() {
	if m.role == domain.RoleOwner {
		m.role = domain.RoleWalker
	} else {
		m.role = domain.RoleOwner
	}
}

func (m *LoginModel) nextField() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) prevField() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// values returns the trimmed content of every input.
func (m *LoginModel) values() []string {
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = strings.TrimSpace(input.Value())
	}
	return values
}

// View renders the screen.
func (m *LoginModel) View(width int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("🐕 PawsAndGo"))
	b.WriteString("\n\n")

	if m.registering {
		labels := []string{"Name", "Phone", "Email"}
		for i, input := range m.inputs {
			b.WriteString(LabelStyle.Render(labels[i]) + "\n")
			b.WriteString(input.View() + "\n")
		}
		b.WriteString(LabelStyle.Render("Role") + "\n")
		roleLine := m.role
		if m.role == domain.RoleOwner {
			roleLine = "owner (ctrl+t to switch)"
		} else {
			roleLine = "walker (ctrl+t to switch)"
		}
		b.WriteString(roleLine + "\n\n")
		b.WriteString(MutedStyle.Render("ctrl+s save · esc back to login"))
	} else {
		b.WriteString(LabelStyle.Render("Email") + "\n")
		b.WriteString(m.inputs[0].View() + "\n\n")
		b.WriteString(MutedStyle.Render("enter login · r register · q quit"))
	}

	if m.error != "" {
		b.WriteString("\n\n" + ErrorStyle.Render(m.error))
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(b.String())
}
