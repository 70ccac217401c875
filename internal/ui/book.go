package ui

import (
	"fmt"
	"strings"

	"github.com/pawsandgo/pawsgo"
	"github.com/pawsandgo/pawsgo/domain"
)

// bookStep tracks the position in the booking flow.
type bookStep int

const (
	stepWalker bookStep = iota
	stepRoute
	stepDuration
)

// durations offered in the booking flow, in minutes.
var durations = []int{30, 45, 60, 90}

// BookModel drives the walker → route → duration booking flow for one pet.
type BookModel struct {
	pet     domain.Pet
	walkers []domain.Walker
	routes  []domain.WalkRoute

	step   bookStep
	cursor int

	walker   domain.Walker
	route    domain.WalkRoute
	duration int
}

// NewBookModel starts the booking flow for the given pet.
func NewBookModel(pet domain.Pet, walkers []domain.Walker) *BookModel {
	return &BookModel{pet: pet, walkers: walkers}
}

func (m *BookModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *BookModel) MoveDown() {
	if m.cursor < m.optionCount()-1 {
		m.cursor++
	}
}

func (m *BookModel) optionCount() int {
	switch m.step {
	case stepWalker:
		return len(m.walkers)
	case stepRoute:
		return len(m.routes)
	default:
		return len(durations)
	}
}

// Select advances the flow with the option under the cursor. It reports
// whether the flow is complete.
func (m *BookModel) Select() bool {
	switch m.step {
	case stepWalker:
		if len(m.walkers) == 0 {
			return false
		}
		m.walker = m.walkers[m.cursor]
		m.routes = pawsgo.RoutesByIDs(m.walker.AvailableRoutes)
		m.step = stepRoute
		m.cursor = 0
		return false
	case stepRoute:
		if len(m.routes) == 0 {
			return false
		}
		m.route = m.routes[m.cursor]
		m.step = stepDuration
		m.cursor = 0
		return false
	default:
		m.duration = durations[m.cursor]
		return true
	}
}

// Back steps the flow back one screen. It reports whether the flow was
// already at the first step.
func (m *BookModel) Back() bool {
	switch m.step {
	case stepWalker:
		return true
	case stepRoute:
		m.step = stepWalker
	default:
		m.step = stepRoute
	}
	m.cursor = 0
	return false
}

// Booking returns the completed booking payload.
func (m *BookModel) Booking(ownerID string) pawsgo.Booking {
	return pawsgo.Booking{
		OwnerID:  ownerID,
		WalkerID: m.walker.ID,
		PetID:    m.pet.ID,
		RouteID:  m.route.ID,
		Duration: m.duration,
	}
}

// View renders the current step.
func (m *BookModel) View(app *pawsgo.App, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Book a walk for "+m.pet.Name) + "\n\n")

	switch m.step {
	case stepWalker:
		b.WriteString(LabelStyle.Render("Choose a walker") + "\n")
		for i, walker := range m.walkers {
			line := fmt.Sprintf("%s · ★%.1f (%d) · max %d dogs", walker.Name, walker.Rating, walker.TotalRatings, walker.MaxDogs)
			b.WriteString(m.renderOption(i, line))
		}
	case stepRoute:
		b.WriteString(LabelStyle.Render("Choose a route with "+m.walker.Name) + "\n")
		if len(m.routes) == 0 {
			b.WriteString(MutedStyle.Render("This walker has no routes available.") + "\n")
		}
		for i, route := range m.routes {
			line := fmt.Sprintf("%s · %.1f km · %02d:00-%02d:00", route.Name, route.DistanceKm, route.StartHour, route.EndHour)
			b.WriteString(m.renderOption(i, line))
		}
	default:
		b.WriteString(LabelStyle.Render("Choose a duration") + "\n")
		for i, minutes := range durations {
			line := fmt.Sprintf("%d min · $%.0f %s", minutes, app.WalkPrice(minutes), app.Currency())
			b.WriteString(m.renderOption(i, line))
		}
	}

	b.WriteString("\n" + MutedStyle.Render("enter select · esc back"))
	return b.String()
}

func (m *BookModel) renderOption(i int, line string) string {
	if i == m.cursor {
		return SelectedStyle.Render("> "+line) + "\n"
	}
	return "  " + line + "\n"
}
