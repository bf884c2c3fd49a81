package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"bagisadmin/internal/domain"
)

// shelterFormModel backs both the add and edit shelter screens.
type shelterFormModel struct {
	form      form
	editingID string
	saving    bool
	errMsg    string
	okMsg     string
	styles    Styles
	msgs      *Messages
}

func newShelterForm(styles Styles, msgs *Messages, existing *domain.Shelter) shelterFormModel {
	s := domain.Shelter{City: turkishProvinces[0]}
	editingID := ""
	if existing != nil {
		s = *existing
		editingID = existing.ID
	}
	f := newForm(styles,
		newInputField("name", "Barınak Adı*", s.Name, ""),
		newSelectField("city", "Şehir*", turkishProvinces, s.City),
		newInputField("address", "Adres*", s.Address, ""),
		newInputField("contactPhone", "Telefon", s.ContactPhone, "05xx xxx xx xx"),
		newInputField("contactEmail", "E-posta", s.ContactEmail, "barinak@example.com"),
		newInputField("description", "Açıklama", s.Description, ""),
		newInputField("imageUrl", "Resim URL", s.ImageURL, "https://"),
	)
	return shelterFormModel{form: f, editingID: editingID, styles: styles, msgs: msgs}
}

func (m *shelterFormModel) toShelter() *domain.Shelter {
	return &domain.Shelter{
		Name:         strings.TrimSpace(m.form.value("name")),
		City:         m.form.value("city"),
		Address:      strings.TrimSpace(m.form.value("address")),
		ContactPhone: strings.TrimSpace(m.form.value("contactPhone")),
		ContactEmail: strings.TrimSpace(m.form.value("contactEmail")),
		Description:  strings.TrimSpace(m.form.value("description")),
		ImageURL:     strings.TrimSpace(m.form.value("imageUrl")),
	}
}

func (m *shelterFormModel) update(msg tea.Msg) tea.Cmd {
	return m.form.Update(msg)
}

func (m *shelterFormModel) view() string {
	title := "Yeni Barınak Ekle"
	if m.editingID != "" {
		title = "Barınak Düzenle"
	}
	return formView(m.styles, m.msgs, title, m.form.View(), m.errMsg, m.okMsg, m.saving)
}

// animalFormModel backs both the add and edit animal screens. The shelter
// select is populated from the shelter list loaded when the form opens; the
// selected entry is what the shelter-name write-through resolves against.
type animalFormModel struct {
	form      form
	editingID string
	// wantShelterID pre-selects the select entry once shelters arrive.
	wantShelterID string
	shelters      []domain.Shelter
	loading   bool
	saving    bool
	errMsg    string
	okMsg     string
	styles    Styles
	msgs      *Messages
}

func newAnimalForm(styles Styles, msgs *Messages, existing *domain.Animal) animalFormModel {
	a := domain.Animal{Type: domain.AnimalTypes[0], Gender: domain.AnimalGenders[0]}
	editingID := ""
	if existing != nil {
		a = *existing
		editingID = existing.ID
	}
	f := newForm(styles,
		newSelectField("shelter", "Barınak*", nil, ""),
		newInputField("name", "Hayvan Adı*", a.Name, ""),
		newSelectField("type", "Tür*", domain.AnimalTypes, a.Type),
		newInputField("breed", "Cins", a.Breed, ""),
		newInputField("age", "Yaş", a.Age, "Örn: 2 Yaşında"),
		newSelectField("gender", "Cinsiyet*", domain.AnimalGenders, a.Gender),
		newInputField("description", "Açıklama", a.Description, ""),
		newInputField("imageUrl", "Ana Resim URL", a.ImageURL, "https://"),
		newInputField("photos", "Galeri URL'leri", strings.Join(a.Photos, ", "), "virgülle ayırın"),
		newInputField("needs", "Temel İhtiyaçlar", strings.Join(a.Needs, ", "), "Özel mama, Günlük ilaç"),
	)
	return animalFormModel{form: f, editingID: editingID, wantShelterID: a.ShelterID, loading: true, styles: styles, msgs: msgs}
}

func (m *animalFormModel) setShelters(shelters []domain.Shelter, selectedID string) {
	m.shelters = shelters
	m.loading = false
	if len(shelters) == 0 {
		m.errMsg = m.msgs.Get("shelters.empty")
		return
	}
	names := make([]string, len(shelters))
	selected := shelters[0].Name
	for i, s := range shelters {
		names[i] = s.Name
		if s.ID == selectedID {
			selected = s.Name
		}
	}
	m.form.setOptions("shelter", names, selected)
}

// selectedShelterID maps the select entry back to its shelter id.
func (m *animalFormModel) selectedShelterID() string {
	name := m.form.value("shelter")
	for _, s := range m.shelters {
		if s.Name == name {
			return s.ID
		}
	}
	return ""
}

func (m *animalFormModel) toAnimal() *domain.Animal {
	return &domain.Animal{
		Name:        strings.TrimSpace(m.form.value("name")),
		Type:        m.form.value("type"),
		Breed:       strings.TrimSpace(m.form.value("breed")),
		Age:         strings.TrimSpace(m.form.value("age")),
		Gender:      m.form.value("gender"),
		Description: strings.TrimSpace(m.form.value("description")),
		ImageURL:    strings.TrimSpace(m.form.value("imageUrl")),
		Photos:      domain.SplitPhotoURLs(m.form.value("photos")),
		Needs:       domain.SplitList(m.form.value("needs")),
		ShelterID:   m.selectedShelterID(),
	}
}

func (m *animalFormModel) update(msg tea.Msg) tea.Cmd {
	return m.form.Update(msg)
}

func (m *animalFormModel) view() string {
	title := "Yeni Hayvan Ekle"
	if m.editingID != "" {
		title = "Hayvan Düzenle"
	}
	if m.loading {
		return m.styles.Title.Render(title) + "\n" + m.msgs.Get("common.loading") + "\n"
	}
	return formView(m.styles, m.msgs, title, m.form.View(), m.errMsg, m.okMsg, m.saving)
}

// priceFormModel edits the unit price of every known donation item.
type priceFormModel struct {
	form    form
	items   []domain.ItemPrice
	loading bool
	saving  bool
	errMsg  string
	okMsg   string
	styles  Styles
	msgs    *Messages
}

func newPriceForm(styles Styles, msgs *Messages) priceFormModel {
	return priceFormModel{loading: true, styles: styles, msgs: msgs}
}

func (m *priceFormModel) setPrices(prices []domain.ItemPrice) {
	m.items = prices
	m.loading = false
	fields := make([]field, 0, len(prices))
	for _, p := range prices {
		fields = append(fields, newInputField(p.ID, p.Name, strconv.FormatFloat(p.UnitPrice, 'f', -1, 64), "0.00"))
	}
	m.form = newForm(m.styles, fields...)
}

// toPrices parses the inputs back into price entries. Non-numeric input is a
// validation error naming the item; sign checks belong to the catalog.
func (m *priceFormModel) toPrices() ([]domain.ItemPrice, error) {
	out := make([]domain.ItemPrice, 0, len(m.items))
	for _, item := range m.items {
		raw := strings.TrimSpace(m.form.value(item.ID))
		if raw == "" {
			raw = "0"
		}
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s için geçerli bir fiyat girin", domain.ErrValidation, item.Name)
		}
		out = append(out, domain.ItemPrice{ID: item.ID, Name: item.Name, UnitPrice: price})
	}
	return out, nil
}

func (m *priceFormModel) update(msg tea.Msg) tea.Cmd {
	if m.loading {
		return nil
	}
	return m.form.Update(msg)
}

func (m *priceFormModel) view() string {
	title := m.msgs.Get("prices.title")
	if m.loading {
		return m.styles.Title.Render(title) + "\n" + m.msgs.Get("common.loading") + "\n"
	}
	return formView(m.styles, m.msgs, title, m.form.View(), m.errMsg, m.okMsg, m.saving)
}

func formView(styles Styles, msgs *Messages, title, body, errMsg, okMsg string, saving bool) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")
	if errMsg != "" {
		sb.WriteString(styles.Error.Render(errMsg) + "\n")
	}
	if okMsg != "" {
		sb.WriteString(styles.Success.Render(okMsg) + "\n")
	}
	sb.WriteString(body)
	if saving {
		sb.WriteString(msgs.Get("common.loading") + "\n")
	}
	return sb.String()
}
