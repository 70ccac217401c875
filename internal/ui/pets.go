package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawsandgo/pawsgo"
	"github.com/pawsandgo/pawsgo/domain"
)

// PetsModel is the owner's pet list.
type PetsModel struct {
	pets   []domain.Pet
	cursor int
}

// NewPetsModel creates the pet list over the given pets.
func NewPetsModel(pets []domain.Pet) *PetsModel {
	return &PetsModel{pets: pets}
}

func (m *PetsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *PetsModel) MoveDown() {
	if m.cursor < len(m.pets)-1 {
		m.cursor++
	}
}

// Selected returns the pet under the cursor.
func (m *PetsModel) Selected() (domain.Pet, bool) {
	if len(m.pets) == 0 {
		return domain.Pet{}, false
	}
	return m.pets[m.cursor], true
}

// View renders the list.
func (m *PetsModel) View(width int) string {
	if len(m.pets) == 0 {
		return MutedStyle.Render("No pets yet. Press a to add one.")
	}

	var b strings.Builder
	for i, pet := range m.pets {
		line := fmt.Sprintf("%s · %s · %s", pet.Name, pet.Breed, pet.Size)
		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + MutedStyle.Render("a add · enter book walk · L logout · q quit"))
	return b.String()
}

// petSizes is the cycle order of the size field in the pet form.
var petSizes = []string{domain.SizeSmall, domain.SizeMedium, domain.SizeLarge}

// PetFormModel is the pet registration form.
type PetFormModel struct {
	inputs  []textinput.Model
	focus   int
	sizeIdx int
	error   string
}

// NewPetFormModel creates an empty pet form.
func NewPetFormModel() *PetFormModel {
	labels := []struct {
		placeholder string
		limit       int
	}{
		{"name", 40},
		{"breed", 40},
		{"age (years)", 3},
		{"weight (kg)", 6},
		{"special needs", 120},
	}

	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = label.placeholder
		input.CharLimit = label.limit
		inputs[i] = input
	}
	inputs[0].Focus()

	return &PetFormModel{inputs: inputs, sizeIdx: 1}
}

func (m *PetFormModel) nextField() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *PetFormModel) prevField() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *PetFormModel) cycleSize() {
	m.sizeIdx = (m.sizeIdx + 1) % len(petSizes)
}

func (m *PetFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

// pet builds the registration payload, validating numeric fields.
func (m *PetFormModel) pet(ownerID string) (pawsgo.NewPet, error) {
	name := strings.TrimSpace(m.inputs[0].Value())
	if name == "" {
		return pawsgo.NewPet{}, fmt.Errorf("name is required")
	}

	age := 0
	if raw := strings.TrimSpace(m.inputs[2].Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return pawsgo.NewPet{}, fmt.Errorf("age must be a number")
		}
		age = parsed
	}
	weight := 0.0
	if raw := strings.TrimSpace(m.inputs[3].Value()); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return pawsgo.NewPet{}, fmt.Errorf("weight must be a number")
		}
		weight = parsed
	}

	return pawsgo.NewPet{
		OwnerID:      ownerID,
		Name:         name,
		Breed:        strings.TrimSpace(m.inputs[1].Value()),
		Age:          age,
		Weight:       weight,
		Size:         petSizes[m.sizeIdx],
		SpecialNeeds: strings.TrimSpace(m.inputs[4].Value()),
	}, nil
}

// View renders the form.
func (m *PetFormModel) View(width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("New pet") + "\n\n")

	labels := []string{"Name", "Breed", "Age", "Weight", "Special needs"}
	for i, input := range m.inputs {
		b.WriteString(LabelStyle.Render(labels[i]) + "\n")
		b.WriteString(input.View() + "\n")
		if i == 3 {
			b.WriteString(LabelStyle.Render("Size") + "\n")
			b.WriteString(petSizes[m.sizeIdx] + MutedStyle.Render(" (ctrl+t to cycle)") + "\n")
		}
	}

	b.WriteString("\n" + MutedStyle.Render("ctrl+s save · esc cancel"))
	if m.error != "" {
		b.WriteString("\n" + ErrorStyle.Render(m.error))
	}
	return b.String()
}
