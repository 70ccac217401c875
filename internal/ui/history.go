package ui

import (
	"fmt"
	"strings"

	"github.com/pawsandgo/pawsgo/domain"
)

// HistoryModel lists the finished walks and offers the xlsx export.
type HistoryModel struct {
	walks  []domain.Walk
	cursor int
}

// NewHistoryModel creates the history list over the given walks.
func NewHistoryModel(walks []domain.Walk) *HistoryModel {
	return &HistoryModel{walks: walks}
}

func (m *HistoryModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *HistoryModel) MoveDown() {
	if m.cursor < len(m.walks)-1 {
		m.cursor++
	}
}

// View renders the list.
func (m *HistoryModel) View(width int) string {
	if len(m.walks) == 0 {
		return MutedStyle.Render("No finished walks yet.")
	}

	var b strings.Builder
	for i, walk := range m.walks {
		status := walk.Status
		if walk.Status == domain.WalkCompleted {
			status = SuccessStyle.Render(status)
		} else {
			status = ErrorStyle.Render(status)
		}
		line := fmt.Sprintf("%s · %d min · $%.0f · %s", walk.PetName, walk.Duration, walk.TotalPrice, status)
		if walk.Rating > 0 {
			line += fmt.Sprintf(" · ★%.1f", walk.Rating)
		}
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + MutedStyle.Render("x export to xlsx · esc back"))
	return b.String()
}
