package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"bagisadmin/internal/domain"
)

// confirmState is an armed delete waiting for the operator's yes/no.
type confirmState struct {
	id   string
	name string
}

type shelterListModel struct {
	table    table.Model
	shelters []domain.Shelter
	loading  bool
	confirm  *confirmState
	styles   Styles
	msgs     *Messages
}

func newShelterListModel(styles Styles, msgs *Messages) shelterListModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Ad", Width: 28},
			{Title: "Şehir", Width: 16},
			{Title: "Telefon", Width: 16},
			{Title: "E-posta", Width: 24},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return shelterListModel{table: t, loading: true, styles: styles, msgs: msgs}
}

func (m *shelterListModel) setShelters(shelters []domain.Shelter) {
	m.shelters = shelters
	m.loading = false
	rows := make([]table.Row, 0, len(shelters))
	for _, s := range shelters {
		rows = append(rows, table.Row{s.Name, s.City, s.ContactPhone, s.ContactEmail})
	}
	m.table.SetRows(rows)
}

func (m *shelterListModel) selected() (domain.Shelter, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.shelters) {
		return domain.Shelter{}, false
	}
	return m.shelters[idx], true
}

func (m *shelterListModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *shelterListModel) view() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.msgs.Get("shelters.title")))
	sb.WriteString("\n")
	switch {
	case m.loading:
		sb.WriteString(m.msgs.Get("common.loading") + "\n")
	case len(m.shelters) == 0:
		sb.WriteString(m.msgs.Get("shelters.empty") + "\n")
	default:
		sb.WriteString(m.table.View() + "\n")
	}
	if m.confirm != nil {
		sb.WriteString(m.styles.Error.Render(fmt.Sprintf("%q %s", m.confirm.name, m.msgs.Get("common.confirm"))) + "\n")
	}
	return sb.String()
}

type animalListModel struct {
	table   table.Model
	animals []domain.Animal
	loading bool
	confirm *confirmState
	styles  Styles
	msgs    *Messages
}

func newAnimalListModel(styles Styles, msgs *Messages) animalListModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Ad", Width: 18},
			{Title: "Tür", Width: 8},
			{Title: "Barınak", Width: 24},
			{Title: "Bağış", Width: 8},
			{Title: "Toplam", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return animalListModel{table: t, loading: true, styles: styles, msgs: msgs}
}

func (m *animalListModel) setAnimals(animals []domain.Animal) {
	m.animals = animals
	m.loading = false
	rows := make([]table.Row, 0, len(animals))
	for _, a := range animals {
		count := "-"
		if a.DonationCount > 0 {
			count = fmt.Sprintf("%d", a.DonationCount)
		}
		total := "-"
		if a.TotalDonationAmount > 0 {
			total = fmt.Sprintf("%.2f TL", a.TotalDonationAmount)
		}
		rows = append(rows, table.Row{a.Name, a.Type, a.ShelterName, count, total})
	}
	m.table.SetRows(rows)
}

func (m *animalListModel) selected() (domain.Animal, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.animals) {
		return domain.Animal{}, false
	}
	return m.animals[idx], true
}

func (m *animalListModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *animalListModel) view() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.msgs.Get("animals.title")))
	sb.WriteString("\n")
	switch {
	case m.loading:
		sb.WriteString(m.msgs.Get("common.loading") + "\n")
	case len(m.animals) == 0:
		sb.WriteString(m.msgs.Get("animals.empty") + "\n")
	default:
		sb.WriteString(m.table.View() + "\n")
	}
	if m.confirm != nil {
		sb.WriteString(m.styles.Error.Render(fmt.Sprintf("%q %s", m.confirm.name, m.msgs.Get("common.confirm"))) + "\n")
	}
	return sb.String()
}
