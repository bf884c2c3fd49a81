package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bagisadmin/internal/auth"
	"bagisadmin/internal/catalog"
	"bagisadmin/internal/denorm"
	"bagisadmin/internal/domain"
	"bagisadmin/internal/donations"
	"bagisadmin/internal/infra"
	"bagisadmin/internal/view"
)

// SessionMsg delivers a session state change into the update loop. The main
// package forwards gate notifications through tea.Program.Send so that all
// state mutation stays on the single update queue.
type SessionMsg struct {
	State auth.State
}

type sheltersLoadedMsg struct {
	shelters []domain.Shelter
	err      error
}

type animalsLoadedMsg struct {
	animals []domain.Animal
	err     error
}

type shelterSavedMsg struct {
	name string
	err  error
}

type animalSavedMsg struct {
	name        string
	shelterName string
	err         error
}

type shelterDeletedMsg struct{ err error }

type animalDeletedMsg struct{ err error }

type pricesLoadedMsg struct {
	prices []domain.ItemPrice
	err    error
}

type pricesSavedMsg struct{ err error }

// donationsLoadedMsg completions are not fenced: when overlays are opened in
// quick succession the last completion to arrive wins, stale or not.
type donationsLoadedMsg struct {
	animalID string
	result   donations.Result
}

type signInDoneMsg struct{ err error }

type signOutDoneMsg struct{ err error }

// Deps carries everything the console surface needs.
type Deps struct {
	Gate      *auth.Gate
	Shelters  domain.ShelterRepository
	Animals   domain.AnimalRepository
	Catalog   *catalog.Catalog
	Donations *donations.Reader
	Logger    infra.Logger
	Locale    string
}

// App is the bubbletea root model. The view.Router decides which screen is
// active; App owns the screen models and translates completions into their
// state.
type App struct {
	router *view.Router
	deps   Deps
	msgs   *Messages
	styles Styles

	login       loginModel
	shelterList shelterListModel
	animalList  animalListModel
	shelterForm shelterFormModel
	animalForm  animalFormModel
	priceForm   priceFormModel
	overlay     *overlayModel

	session auth.State
	status  string
	isError bool
	width   int
}

// NewApp builds the console surface in its initial (login) state.
func NewApp(deps Deps) *App {
	styles := DefaultStyles()
	msgs := NewMessages(deps.Locale)
	return &App{
		router:      view.NewRouter(),
		deps:        deps,
		msgs:        msgs,
		styles:      styles,
		login:       newLoginModel(styles, msgs),
		shelterList: newShelterListModel(styles, msgs),
		animalList:  newAnimalListModel(styles, msgs),
		session:     auth.State{Kind: auth.StateAuthenticating},
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil
	case SessionMsg:
		return a.applySession(msg.State)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Any keypress dismisses the status line.
		a.status = ""
		return a.handleKey(msg)
	case signInDoneMsg:
		if msg.err != nil {
			a.deps.Logger.Warn().Err(msg.err).Msg("sign-in failed")
			a.login.fail(a.msgs.ForError(msg.err))
		}
		return a, nil
	case signOutDoneMsg:
		if msg.err != nil {
			a.setError(a.msgs.Get("error.signout"))
		}
		return a, nil
	case sheltersLoadedMsg:
		return a.sheltersLoaded(msg)
	case animalsLoadedMsg:
		if msg.err != nil {
			a.setError(a.msgs.ForError(msg.err))
			a.animalList.loading = false
			return a, nil
		}
		a.animalList.setAnimals(msg.animals)
		return a, nil
	case shelterSavedMsg:
		return a.shelterSaved(msg)
	case animalSavedMsg:
		return a.animalSaved(msg)
	case shelterDeletedMsg:
		if msg.err != nil {
			a.setError(a.msgs.ForError(msg.err))
			return a, nil
		}
		a.setInfo(a.msgs.Get("common.deleted"))
		return a, a.loadSheltersCmd()
	case animalDeletedMsg:
		if msg.err != nil {
			a.setError(a.msgs.ForError(msg.err))
			return a, nil
		}
		a.setInfo(a.msgs.Get("common.deleted"))
		return a, a.loadAnimalsCmd()
	case pricesLoadedMsg:
		if msg.err != nil {
			a.setError(a.msgs.ForError(msg.err))
			a.priceForm.loading = false
			a.priceForm.errMsg = a.msgs.ForError(msg.err)
			return a, nil
		}
		if _, ok := a.router.View().(view.ManagePrices); ok {
			a.priceForm.setPrices(msg.prices)
		}
		return a, nil
	case pricesSavedMsg:
		a.priceForm.saving = false
		if msg.err != nil {
			a.priceForm.errMsg = a.msgs.ForError(msg.err)
			return a, nil
		}
		a.priceForm.okMsg = a.msgs.Get("prices.saved")
		return a, nil
	case donationsLoadedMsg:
		if a.overlay != nil {
			a.overlay.setResult(msg.result)
		}
		return a, nil
	}

	// Cursor blink and other component ticks go to the focused screen.
	return a, a.routeToScreen(msg)
}

func (a *App) applySession(state auth.State) (tea.Model, tea.Cmd) {
	prev := a.router.View()
	a.session = state
	a.router.ApplySession(state)

	if state.Kind == auth.StateUnauthenticated {
		a.overlay = nil
		a.login.reset()
		return a, nil
	}
	if state.Kind == auth.StateError {
		a.setError(a.msgs.Get("error.signout"))
		return a, nil
	}

	// Landing transition: Login -> ListShelters on the first session.
	if _, wasLogin := prev.(view.Login); wasLogin {
		if _, nowList := a.router.View().(view.ListShelters); nowList {
			a.shelterList = newShelterListModel(a.styles, a.msgs)
			return a, a.loadSheltersCmd()
		}
	}
	return a, nil
}

func (a *App) sheltersLoaded(msg sheltersLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.setError(a.msgs.ForError(msg.err))
		a.shelterList.loading = false
		if a.animalForm.loading {
			a.animalForm.loading = false
			a.animalForm.errMsg = a.msgs.ForError(msg.err)
		}
		return a, nil
	}
	switch a.router.View().(type) {
	case view.ListShelters:
		a.shelterList.setShelters(msg.shelters)
	case view.AddAnimal, view.EditAnimal:
		a.animalForm.setShelters(msg.shelters, a.animalForm.wantShelterID)
	}
	return a, nil
}

func (a *App) shelterSaved(msg shelterSavedMsg) (tea.Model, tea.Cmd) {
	a.shelterForm.saving = false
	if msg.err != nil {
		a.shelterForm.errMsg = a.msgs.ForError(msg.err)
		return a, nil
	}
	if a.shelterForm.editingID != "" {
		a.router.ShelterFormClosed()
		a.setInfo(a.msgs.Get("common.saved"))
		a.shelterList = newShelterListModel(a.styles, a.msgs)
		return a, a.loadSheltersCmd()
	}
	// Adding keeps the form open for the next record.
	name := msg.name
	a.shelterForm = newShelterForm(a.styles, a.msgs, nil)
	a.shelterForm.okMsg = fmt.Sprintf(a.msgs.Get("shelters.added"), name)
	return a, nil
}

func (a *App) animalSaved(msg animalSavedMsg) (tea.Model, tea.Cmd) {
	a.animalForm.saving = false
	if msg.err != nil {
		a.animalForm.errMsg = a.msgs.ForError(msg.err)
		return a, nil
	}
	if a.animalForm.editingID != "" {
		a.router.AnimalFormClosed()
		a.setInfo(a.msgs.Get("common.saved"))
		a.animalList = newAnimalListModel(a.styles, a.msgs)
		return a, a.loadAnimalsCmd()
	}
	shelters := a.animalForm.shelters
	a.animalForm = newAnimalForm(a.styles, a.msgs, nil)
	a.animalForm.setShelters(shelters, "")
	a.animalForm.okMsg = fmt.Sprintf(a.msgs.Get("animals.added"), msg.name, msg.shelterName)
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.overlay != nil {
		if s := msg.String(); s == "esc" || s == "enter" || s == "b" || s == "q" {
			a.router.CloseDonationsOverlay()
			a.overlay = nil
		}
		return a, nil
	}

	switch a.router.View().(type) {
	case view.Login:
		return a.handleLoginKey(msg)
	case view.ListShelters:
		return a.handleShelterListKey(msg)
	case view.ListAnimals:
		return a.handleAnimalListKey(msg)
	case view.AddShelter, view.EditShelter:
		return a.handleShelterFormKey(msg)
	case view.AddAnimal, view.EditAnimal:
		return a.handleAnimalFormKey(msg)
	case view.ManagePrices:
		return a.handlePriceFormKey(msg)
	}
	return a, nil
}

func (a *App) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.session.Kind == auth.StateAuthenticating {
		return a, nil
	}
	cmd, submitted := a.login.update(msg)
	if submitted {
		email := a.login.email.Value()
		password := a.login.password.Value()
		return a, a.signInCmd(email, password)
	}
	return a, cmd
}

func (a *App) handleShelterListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.shelterList.confirm != nil {
		return a.handleShelterConfirm(msg)
	}
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "x":
		return a, a.signOutCmd()
	case "r":
		a.shelterList.loading = true
		return a, a.loadSheltersCmd()
	case "a":
		a.router.Go(view.ListAnimals{})
		a.animalList = newAnimalListModel(a.styles, a.msgs)
		return a, a.loadAnimalsCmd()
	case "p":
		a.router.Go(view.ManagePrices{})
		a.priceForm = newPriceForm(a.styles, a.msgs)
		return a, a.loadPricesCmd()
	case "n":
		a.router.Go(view.AddShelter{})
		a.shelterForm = newShelterForm(a.styles, a.msgs, nil)
		return a, nil
	case "enter", "e":
		if shelter, ok := a.shelterList.selected(); ok {
			a.router.EditShelter(shelter.ID)
			a.shelterForm = newShelterForm(a.styles, a.msgs, &shelter)
		}
		return a, nil
	case "d":
		if shelter, ok := a.shelterList.selected(); ok {
			a.shelterList.confirm = &confirmState{id: shelter.ID, name: shelter.Name}
		}
		return a, nil
	}
	return a, a.shelterList.update(msg)
}

func (a *App) handleShelterConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirm := a.shelterList.confirm
	a.shelterList.confirm = nil
	switch msg.String() {
	case "e", "y":
		return a, a.deleteShelterCmd(confirm.id)
	}
	return a, nil
}

func (a *App) handleAnimalListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.animalList.confirm != nil {
		return a.handleAnimalConfirm(msg)
	}
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "x":
		return a, a.signOutCmd()
	case "r":
		a.animalList.loading = true
		return a, a.loadAnimalsCmd()
	case "s":
		a.router.Go(view.ListShelters{})
		a.shelterList = newShelterListModel(a.styles, a.msgs)
		return a, a.loadSheltersCmd()
	case "p":
		a.router.Go(view.ManagePrices{})
		a.priceForm = newPriceForm(a.styles, a.msgs)
		return a, a.loadPricesCmd()
	case "n":
		a.router.Go(view.AddAnimal{})
		a.animalForm = newAnimalForm(a.styles, a.msgs, nil)
		return a, a.loadSheltersCmd()
	case "enter", "e":
		if animal, ok := a.animalList.selected(); ok {
			a.router.EditAnimal(animal.ID)
			a.animalForm = newAnimalForm(a.styles, a.msgs, &animal)
			return a, a.loadSheltersCmd()
		}
		return a, nil
	case "d":
		if animal, ok := a.animalList.selected(); ok {
			a.animalList.confirm = &confirmState{id: animal.ID, name: animal.Name}
		}
		return a, nil
	case "b":
		if animal, ok := a.animalList.selected(); ok {
			a.router.OpenDonationsOverlay(animal.ID, animal.Name)
			overlay := newOverlayModel(a.styles, a.msgs, view.OverlayTarget{AnimalID: animal.ID, AnimalName: animal.Name})
			a.overlay = &overlay
			return a, a.loadDonationsCmd(animal.ID)
		}
		return a, nil
	}
	return a, a.animalList.update(msg)
}

func (a *App) handleAnimalConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirm := a.animalList.confirm
	a.animalList.confirm = nil
	switch msg.String() {
	case "e", "y":
		return a, a.deleteAnimalCmd(confirm.id)
	}
	return a, nil
}

func (a *App) handleShelterFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.router.ShelterFormClosed()
		a.shelterList = newShelterListModel(a.styles, a.msgs)
		return a, a.loadSheltersCmd()
	case "ctrl+s":
		if a.shelterForm.saving {
			return a, nil
		}
		shelter := a.shelterForm.toShelter()
		if err := shelter.Validate(); err != nil {
			a.shelterForm.errMsg = a.msgs.Get("shelters.require")
			return a, nil
		}
		a.shelterForm.saving = true
		a.shelterForm.errMsg = ""
		a.shelterForm.okMsg = ""
		return a, a.saveShelterCmd(a.shelterForm.editingID, shelter)
	}
	return a, a.shelterForm.update(msg)
}

func (a *App) handleAnimalFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.router.AnimalFormClosed()
		a.animalList = newAnimalListModel(a.styles, a.msgs)
		return a, a.loadAnimalsCmd()
	case "ctrl+s":
		if a.animalForm.saving || a.animalForm.loading {
			return a, nil
		}
		animal := a.animalForm.toAnimal()
		if err := animal.Validate(); err != nil {
			a.animalForm.errMsg = a.msgs.Get("animals.require")
			return a, nil
		}
		// Write-through of the shelter name, resolved against the shelter
		// list loaded when the form opened.
		if err := denorm.ApplyShelterName(animal, a.animalForm.shelters); err != nil {
			a.animalForm.errMsg = a.msgs.Get("animals.shelter")
			return a, nil
		}
		a.animalForm.saving = true
		a.animalForm.errMsg = ""
		a.animalForm.okMsg = ""
		return a, a.saveAnimalCmd(a.animalForm.editingID, animal)
	}
	return a, a.animalForm.update(msg)
}

func (a *App) handlePriceFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Back to the default view, by policy.
		a.router.PriceFormClosed()
		a.shelterList = newShelterListModel(a.styles, a.msgs)
		return a, a.loadSheltersCmd()
	case "ctrl+s":
		if a.priceForm.saving || a.priceForm.loading {
			return a, nil
		}
		prices, err := a.priceForm.toPrices()
		if err != nil {
			a.priceForm.errMsg = a.msgs.ForError(err)
			return a, nil
		}
		a.priceForm.saving = true
		a.priceForm.errMsg = ""
		a.priceForm.okMsg = ""
		return a, a.savePricesCmd(prices)
	}
	return a, a.priceForm.update(msg)
}

// routeToScreen forwards non-key messages (blink ticks) to the active screen.
func (a *App) routeToScreen(msg tea.Msg) tea.Cmd {
	switch a.router.View().(type) {
	case view.Login:
		cmd, _ := a.login.update(msg)
		return cmd
	case view.AddShelter, view.EditShelter:
		return a.shelterForm.update(msg)
	case view.AddAnimal, view.EditAnimal:
		return a.animalForm.update(msg)
	case view.ManagePrices:
		return a.priceForm.update(msg)
	}
	return nil
}

func (a *App) View() string {
	header := a.styles.Header.Render(a.msgs.Get("login.title"))

	var body string
	switch a.router.View().(type) {
	case view.Login:
		body = a.login.view(a.session.Kind == auth.StateAuthenticating)
	case view.ListShelters:
		body = a.shelterList.view()
	case view.ListAnimals:
		body = a.animalList.view()
	case view.AddShelter, view.EditShelter:
		body = a.shelterForm.view()
	case view.AddAnimal, view.EditAnimal:
		body = a.animalForm.view()
	case view.ManagePrices:
		body = a.priceForm.view()
	}
	if a.overlay != nil {
		body = a.overlay.view()
	}

	status := ""
	if a.status != "" {
		if a.isError {
			status = a.styles.Error.Render(a.status)
		} else {
			status = a.styles.Success.Render(a.status)
		}
	}

	footer := ""
	switch a.router.View().(type) {
	case view.ListShelters, view.ListAnimals:
		footer = a.styles.Footer.Render(a.msgs.Get("keys.lists"))
	case view.AddShelter, view.EditShelter, view.AddAnimal, view.EditAnimal, view.ManagePrices:
		footer = a.styles.Footer.Render(a.msgs.Get("keys.form"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, status, body, footer)
}

func (a *App) setError(msg string) {
	a.status = msg
	a.isError = true
}

func (a *App) setInfo(msg string) {
	a.status = msg
	a.isError = false
}

// Commands. Store and auth calls carry no deadline: a hang only blocks the
// issuing screen's loading indicator.

func (a *App) signInCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		err := a.deps.Gate.SignIn(context.Background(), email, password)
		return signInDoneMsg{err: err}
	}
}

func (a *App) signOutCmd() tea.Cmd {
	return func() tea.Msg {
		err := a.deps.Gate.SignOut(context.Background())
		return signOutDoneMsg{err: err}
	}
}

func (a *App) loadSheltersCmd() tea.Cmd {
	return func() tea.Msg {
		shelters, err := a.deps.Shelters.ListAll(context.Background())
		return sheltersLoadedMsg{shelters: shelters, err: err}
	}
}

func (a *App) loadAnimalsCmd() tea.Cmd {
	return func() tea.Msg {
		animals, err := a.deps.Animals.ListAll(context.Background())
		return animalsLoadedMsg{animals: animals, err: err}
	}
}

func (a *App) saveShelterCmd(id string, shelter *domain.Shelter) tea.Cmd {
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = a.deps.Shelters.Create(context.Background(), shelter)
		} else {
			err = a.deps.Shelters.Update(context.Background(), id, shelter)
		}
		return shelterSavedMsg{name: shelter.Name, err: err}
	}
}

func (a *App) deleteShelterCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return shelterDeletedMsg{err: a.deps.Shelters.Delete(context.Background(), id)}
	}
}

func (a *App) saveAnimalCmd(id string, animal *domain.Animal) tea.Cmd {
	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = a.deps.Animals.Create(context.Background(), animal)
		} else {
			err = a.deps.Animals.Update(context.Background(), id, animal)
		}
		return animalSavedMsg{name: animal.Name, shelterName: animal.ShelterName, err: err}
	}
}

func (a *App) deleteAnimalCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return animalDeletedMsg{err: a.deps.Animals.Delete(context.Background(), id)}
	}
}

func (a *App) loadPricesCmd() tea.Cmd {
	return func() tea.Msg {
		prices, err := a.deps.Catalog.Load(context.Background())
		return pricesLoadedMsg{prices: prices, err: err}
	}
}

func (a *App) savePricesCmd(prices []domain.ItemPrice) tea.Cmd {
	return func() tea.Msg {
		return pricesSavedMsg{err: a.deps.Catalog.Save(context.Background(), prices)}
	}
}

func (a *App) loadDonationsCmd(animalID string) tea.Cmd {
	return func() tea.Msg {
		return donationsLoadedMsg{animalID: animalID, result: a.deps.Donations.ListForAnimal(context.Background(), animalID)}
	}
}
