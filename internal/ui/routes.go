package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pawsandgo/pawsgo"
	"github.com/pawsandgo/pawsgo/domain"
)

// RoutesModel is the walker's route preference screen: the full catalog with
// the walker's opted-in routes checked.
type RoutesModel struct {
	catalog []domain.WalkRoute
	active  []string
	stats   domain.WalkerStats
	cursor  int
}

// NewRoutesModel creates the route toggle list for the given active set.
func NewRoutesModel(active []string, stats domain.WalkerStats) *RoutesModel {
	return &RoutesModel{
		catalog: pawsgo.Routes(),
		active:  active,
		stats:   stats,
	}
}

func (m *RoutesModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *RoutesModel) MoveDown() {
	if m.cursor < len(m.catalog)-1 {
		m.cursor++
	}
}

// SelectedRoute returns the route id under the cursor.
func (m *RoutesModel) SelectedRoute() string {
	return m.catalog[m.cursor].ID
}

// SetActive replaces the checked set.
func (m *RoutesModel) SetActive(active []string) {
	m.active = active
}

// View renders the toggle list.
func (m *RoutesModel) View(width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("My routes") + "\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("★%.1f average over %d ratings", m.stats.AverageRating, m.stats.VoteCount)) + "\n\n")

	for i, route := range m.catalog {
		check := "[ ]"
		if slices.Contains(m.active, route.ID) {
			check = SuccessStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s · %.1f km · %s", check, route.Name, route.DistanceKm, route.Difficulty)
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + MutedStyle.Render("space toggle · L logout · q quit"))
	return b.String()
}
