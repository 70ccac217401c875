package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pawsandgo/pawsgo"
	"github.com/pawsandgo/pawsgo/domain"
)

// Screen identifies the active view.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenPets
	ScreenPetForm
	ScreenBook
	ScreenLive
	ScreenHistory
	ScreenRoutes
)

// Messages flowing back into the root model.
type (
	errorMsg    struct{ err error }
	liveChatMsg struct{ msg domain.ChatMessage }
	liveDoneMsg struct{}
)

// Model is the root Bubble Tea model.
type Model struct {
	app     *pawsgo.App
	screen  Screen
	profile domain.UserProfile

	width  int
	height int
	error  string
	info   string

	// Screen models
	login   *LoginModel
	pets    *PetsModel
	petForm *PetFormModel
	book    *BookModel
	live    *LiveModel
	history *HistoryModel
	routes  *RoutesModel

	keys     KeyMap
	formKeys FormKeyMap
}

// New creates the root model, resuming a persisted session when one exists.
func New(app *pawsgo.App) Model {
	m := Model{
		app:      app,
		screen:   ScreenLogin,
		login:    NewLoginModel(),
		keys:     DefaultKeyMap(),
		formKeys: DefaultFormKeyMap(),
	}

	if _, ok := app.CurrentSession(); ok {
		m.profile = app.Repo.GetUserProfile()
		m.enterHome()
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// enterHome switches to the landing screen for the current role.
func (m *Model) enterHome() {
	if m.profile.Role == domain.RoleWalker {
		m.routes = NewRoutesModel(
			m.app.Repo.GetRoutesForWalker(m.profile.ID),
			m.app.Repo.GetWalkerRating(m.profile.ID),
		)
		m.screen = ScreenRoutes
	} else {
		m.pets = NewPetsModel(m.app.PetsByOwner(m.profile.ID))
		m.screen = ScreenPets
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case errorMsg:
		m.error = msg.err.Error()
		return m, nil

	case liveChatMsg:
		if m.live != nil {
			m.live.messages = append(m.live.messages, msg.msg)
			return m, m.live.waitForMessage()
		}
		return m, nil

	case liveDoneMsg:
		if m.live != nil {
			m.live.finished = true
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.stopLive()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) stopLive() {
	if m.live != nil {
		m.live.Stop()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.error = ""
	switch m.screen {
	case ScreenLogin:
		return m.handleLogin(msg)
	case ScreenPets:
		return m.handlePets(msg)
	case ScreenPetForm:
		return m.handlePetForm(msg)
	case ScreenBook:
		return m.handleBook(msg)
	case ScreenLive:
		return m.handleLive(msg)
	case ScreenHistory:
		return m.handleHistory(msg)
	case ScreenRoutes:
		return m.handleRoutes(msg)
	}
	return m, nil
}

func (m Model) handleLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.registering {
		switch {
		case key.Matches(msg, m.formKeys.Cancel):
			m.login = NewLoginModel()
			return m, nil
		case msg.String() == "ctrl+t":
			m.login.toggleRole()
			return m, nil
		case key.Matches(msg, m.formKeys.Save):
			values := m.login.values()
			if values[0] == "" || values[2] == "" {
				m.login.error = "name and email are required"
				return m, nil
			}
			profile, err := m.app.Register(values[0], values[1], values[2], m.login.role)
			if err != nil {
				m.login.error = err.Error()
				return m, nil
			}
			m.profile = profile
			m.info = "Welcome, " + profile.Name
			m.enterHome()
			return m, nil
		case key.Matches(msg, m.formKeys.NextField) && msg.String() == "tab":
			m.login.nextField()
			return m, nil
		case key.Matches(msg, m.formKeys.PrevField):
			m.login.prevField()
			return m, nil
		}
		return m, m.login.updateInputs(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		m.login.startRegister()
		return m, nil
	case "enter":
		email := m.login.values()[0]
		if email == "" {
			m.login.error = "enter your email"
			return m, nil
		}
		profile, ok, err := m.app.Login(email)
		if err != nil {
			m.login.error = err.Error()
			return m, nil
		}
		if !ok {
			m.login.error = "no account for that email, press r to register"
			return m, nil
		}
		m.profile = profile
		m.info = "Welcome back, " + profile.Name
		m.enterHome()
		return m, nil
	}
	return m, m.login.updateInputs(msg)
}

func (m Model) handlePets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Logout):
		return m.logout()
	case key.Matches(msg, m.keys.Up):
		m.pets.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.pets.MoveDown()
	case key.Matches(msg, m.keys.Add):
		m.petForm = NewPetFormModel()
		m.screen = ScreenPetForm
	case msg.String() == "h":
		m.history = NewHistoryModel(m.app.WalkHistory())
		m.screen = ScreenHistory
	case key.Matches(msg, m.keys.Select):
		if pet, ok := m.pets.Selected(); ok {
			m.book = NewBookModel(pet, m.app.Walkers())
			m.screen = ScreenBook
		}
	}
	return m, nil
}

func (m Model) handlePetForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.petForm = nil
		m.screen = ScreenPets
		return m, nil
	case msg.String() == "ctrl+t":
		m.petForm.cycleSize()
		return m, nil
	case key.Matches(msg, m.formKeys.Save):
		newPet, err := m.petForm.pet(m.profile.ID)
		if err != nil {
			m.petForm.error = err.Error()
			return m, nil
		}
		if _, err := m.app.RegisterPet(newPet); err != nil {
			m.petForm.error = err.Error()
			return m, nil
		}
		m.pets = NewPetsModel(m.app.PetsByOwner(m.profile.ID))
		m.petForm = nil
		m.screen = ScreenPets
		m.info = "Pet saved"
		return m, nil
	case key.Matches(msg, m.formKeys.NextField) && msg.String() == "tab":
		m.petForm.nextField()
		return m, nil
	case key.Matches(msg, m.formKeys.PrevField):
		m.petForm.prevField()
		return m, nil
	}
	return m, m.petForm.updateInputs(msg)
}

func (m Model) handleBook(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.book.Back() {
			m.book = nil
			m.screen = ScreenPets
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.book.MoveUp()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.book.MoveDown()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if !m.book.Select() {
			return m, nil
		}
		booking := m.book.Booking(m.profile.ID)
		booking.ScheduledDate = time.Now().Format("2006-01-02")
		walk, err := m.app.BookWalk(booking)
		if err != nil {
			m.error = err.Error()
			m.book = nil
			m.screen = ScreenPets
			return m, nil
		}
		m.book = nil
		m.live = NewLiveModel(m.app, walk)
		m.screen = ScreenLive
		return m, m.live.waitForMessage()
	}
	return m, nil
}

func (m Model) handleLive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.live.finished {
		switch msg.String() {
		case "1", "2", "3", "4", "5":
			rating := float64(msg.String()[0] - '0')
			walk := m.live.walk
			if err := m.app.FinishAndRate(walk.ID, walk.WalkerID, rating, 0); err != nil {
				m.error = err.Error()
				return m, nil
			}
			m.live = nil
			m.pets = NewPetsModel(m.app.PetsByOwner(m.profile.ID))
			m.screen = ScreenPets
			m.info = "Thanks for rating!"
			return m, nil
		case "esc":
			m.live = nil
			m.pets = NewPetsModel(m.app.PetsByOwner(m.profile.ID))
			m.screen = ScreenPets
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.stopLive()
		if _, err := m.live.CancelWalk(); err != nil {
			m.error = err.Error()
		}
		m.live = nil
		m.pets = NewPetsModel(m.app.PetsByOwner(m.profile.ID))
		m.screen = ScreenPets
		m.info = "Walk cancelled"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.live.input.Value())
		if text == "" {
			return m, nil
		}
		m.live.input.Reset()
		return m, m.live.send(text)
	}

	var cmd tea.Cmd
	m.live.input, cmd = m.live.input.Update(msg)
	return m, cmd
}

func (m Model) handleHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.history = nil
		m.screen = ScreenPets
	case key.Matches(msg, m.keys.Up):
		m.history.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.history.MoveDown()
	case key.Matches(msg, m.keys.Export):
		path := filepath.Join(m.app.ConfigDir, "walk_history.xlsx")
		if err := m.app.ExportWalkHistory(path); err != nil {
			m.error = err.Error()
			return m, nil
		}
		m.info = "Exported to " + path
	}
	return m, nil
}

func (m Model) handleRoutes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Logout):
		return m.logout()
	case key.Matches(msg, m.keys.Up):
		m.routes.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.routes.MoveDown()
	case key.Matches(msg, m.keys.Toggle):
		routeID := m.routes.SelectedRoute()
		if err := m.app.Repo.ToggleRouteForWalker(m.profile.ID, routeID); err != nil {
			m.error = err.Error()
			return m, nil
		}
		m.routes.SetActive(m.app.Repo.GetRoutesForWalker(m.profile.ID))
	}
	return m, nil
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.app.Logout(); err != nil {
		m.error = err.Error()
		return m, nil
	}
	m.profile = domain.UserProfile{}
	m.login = NewLoginModel()
	m.screen = ScreenLogin
	m.info = ""
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var content string
	switch m.screen {
	case ScreenLogin:
		content = m.login.View(m.width)
	case ScreenPets:
		content = m.pets.View(m.width)
	case ScreenPetForm:
		content = m.petForm.View(m.width)
	case ScreenBook:
		content = m.book.View(m.app, m.width)
	case ScreenLive:
		content = m.live.View(m.width, m.height)
	case ScreenHistory:
		content = m.history.View(m.width)
	case ScreenRoutes:
		content = m.routes.View(m.width)
	}

	header := m.renderHeader()
	body := lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Height(m.height - 3).
		Render(content)

	footer := ""
	if m.error != "" {
		footer = ErrorStyle.Padding(0, 1).Render("Error: " + m.error)
	} else if m.info != "" {
		footer = SuccessStyle.Padding(0, 1).Render(m.info)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	left := TitleStyle.Render("🐕 pawsgo")
	if m.profile.ID != "" {
		left += MutedStyle.Render(fmt.Sprintf("  %s (%s)", m.profile.Name, m.profile.Role))
	}
	return HeaderStyle.Width(m.width).Render(left)
}
