package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawsandgo/pawsgo"
	"github.com/pawsandgo/pawsgo/domain"
)

// LiveModel is the live-walk chat screen. The simulation runs in its own
// goroutine and feeds messages back through a channel so the Bubble Tea loop
// stays in control of rendering.
type LiveModel struct {
	walk     domain.Walk
	live     *pawsgo.LiveWalk
	cancel   context.CancelFunc
	messages []domain.ChatMessage
	msgCh    chan domain.ChatMessage
	doneCh   chan struct{}
	input    textinput.Model
	finished bool
}

// NewLiveModel starts the walk simulation at one second per tick.
func NewLiveModel(app *pawsgo.App, walk domain.Walk) *LiveModel {
	input := textinput.New()
	input.Placeholder = "message the walker"
	input.CharLimit = 200
	input.Focus()

	m := &LiveModel{
		walk:     walk,
		messages: walk.ChatHistory,
		msgCh:    make(chan domain.ChatMessage, 16),
		doneCh:   make(chan struct{}),
		input:    input,
	}

	live := app.NewLiveWalk(walk, time.Second)
	live.OnMessage = func(msg domain.ChatMessage) {
		m.msgCh <- msg
	}
	m.live = live

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	go func() {
		defer close(m.doneCh)
		_ = live.Run(ctx)
	}()

	return m
}

// waitForMessage blocks on the simulation feed until the next chat message or
// the end of the walk.
func (m *LiveModel) waitForMessage() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.msgCh:
			return liveChatMsg{msg: msg}
		case <-m.doneCh:
			// Drain anything the goroutine pushed before finishing.
			select {
			case msg := <-m.msgCh:
				return liveChatMsg{msg: msg}
			default:
				return liveDoneMsg{}
			}
		}
	}
}

// send posts an owner message into the simulation off the render path.
func (m *LiveModel) send(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := m.live.OwnerMessage(ctx, text); err != nil {
			return errorMsg{err: err}
		}
		return nil
	}
}

// Stop cancels the simulation goroutine.
func (m *LiveModel) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

// CancelWalk marks the walk cancelled through the simulation's write lock,
// safe to call while the script goroutine is still winding down.
func (m *LiveModel) CancelWalk() (bool, error) {
	return m.live.CancelWalk()
}

// View renders the chat transcript and the input line.
func (m *LiveModel) View(width, height int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("🐕 Walking "+m.walk.PetName) + "\n\n")

	transcript := m.messages
	visible := height - 8
	if visible > 0 && len(transcript) > visible {
		transcript = transcript[len(transcript)-visible:]
	}
	for _, msg := range transcript {
		line := fmt.Sprintf("%s: %s", msg.SenderName, msg.Message)
		switch msg.SenderID {
		case domain.SenderOwner:
			b.WriteString(ChatOwnerStyle.Render(line))
		case domain.SenderWalker:
			b.WriteString(ChatWalkerStyle.Render(line))
		default:
			b.WriteString(ChatSystemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.finished {
		b.WriteString(SuccessStyle.Render("Walk finished!") + "\n")
		b.WriteString(MutedStyle.Render("1-5 rate the walker · esc back"))
	} else {
		b.WriteString(m.input.View() + "\n")
		b.WriteString(MutedStyle.Render("enter send · esc leave walk"))
	}
	return b.String()
}
