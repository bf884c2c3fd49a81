package ui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bagisadmin/internal/adapter/docrepo"
	"bagisadmin/internal/auth"
	"bagisadmin/internal/catalog"
	"bagisadmin/internal/docstore"
	"bagisadmin/internal/domain"
	"bagisadmin/internal/donations"
	"bagisadmin/internal/infra"
	"bagisadmin/internal/view"
)

func newTestApp(t *testing.T) (*App, *docstore.MemoryStore) {
	t.Helper()
	store := docstore.NewMemoryStore()
	gate := auth.NewGate(auth.NewDevProvider())
	t.Cleanup(gate.Close)
	logger, closeLog, err := infra.NewLogger("test", "")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	t.Cleanup(closeLog)
	app := NewApp(Deps{
		Gate:      gate,
		Shelters:  docrepo.NewShelters(store),
		Animals:   docrepo.NewAnimals(store),
		Catalog:   catalog.New(docrepo.NewItemPrices(store)),
		Donations: donations.NewReader(docrepo.NewDonations(store)),
		Logger:    logger,
		Locale:    "tr",
	})
	return app, store
}

// step feeds msg into the app and runs any resulting command to completion,
// feeding its completion message back in. Commands here are single-shot.
func step(t *testing.T, app *App, msg tea.Msg) {
	t.Helper()
	for msg != nil {
		_, cmd := app.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
		if _, quit := msg.(tea.QuitMsg); quit {
			return
		}
	}
}

func key(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func signedIn() SessionMsg {
	return SessionMsg{State: auth.State{
		Kind:    auth.StateAuthenticated,
		Session: &auth.Session{UID: "op-1", Email: "admin@example.com"},
	}}
}

func TestStartsOnLoginView(t *testing.T) {
	app, _ := newTestApp(t)
	if _, ok := app.router.View().(view.Login); !ok {
		t.Fatalf("initial view = %T, want Login", app.router.View())
	}
	if !strings.Contains(app.View(), "Oturum denetleniyor") {
		t.Fatalf("expected session check notice while authenticating:\n%s", app.View())
	}
}

func TestSessionLandsOnShelterList(t *testing.T) {
	app, _ := newTestApp(t)
	step(t, app, signedIn())
	if _, ok := app.router.View().(view.ListShelters); !ok {
		t.Fatalf("view after sign-in = %T, want ListShelters", app.router.View())
	}
	if app.shelterList.loading {
		t.Fatal("shelter list still loading after completion was applied")
	}
	if !strings.Contains(app.View(), "Hiç barınak bulunamadı") {
		t.Fatalf("expected empty state, got:\n%s", app.View())
	}
}

func TestNavigationIgnoredBeforeSignIn(t *testing.T) {
	app, _ := newTestApp(t)
	step(t, app, key("a"))
	if _, ok := app.router.View().(view.Login); !ok {
		t.Fatalf("navigation before sign-in moved view to %T", app.router.View())
	}
}

func TestSessionLossForcesLogin(t *testing.T) {
	app, _ := newTestApp(t)
	step(t, app, signedIn())
	step(t, app, key("a"))
	if _, ok := app.router.View().(view.ListAnimals); !ok {
		t.Fatalf("view = %T, want ListAnimals", app.router.View())
	}
	step(t, app, SessionMsg{State: auth.State{Kind: auth.StateUnauthenticated}})
	if _, ok := app.router.View().(view.Login); !ok {
		t.Fatalf("view after session loss = %T, want Login", app.router.View())
	}
}

func TestShelterFormRejectsMissingRequiredFields(t *testing.T) {
	app, _ := newTestApp(t)
	step(t, app, signedIn())
	step(t, app, key("n"))
	if _, ok := app.router.View().(view.AddShelter); !ok {
		t.Fatalf("view = %T, want AddShelter", app.router.View())
	}
	step(t, app, key("ctrl+s"))
	if app.shelterForm.errMsg == "" {
		t.Fatal("expected a validation message for the empty form")
	}
	if _, ok := app.router.View().(view.AddShelter); !ok {
		t.Fatal("failed save should keep the form open")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	app, store := newTestApp(t)
	shelters := docrepo.NewShelters(store)
	if _, err := shelters.Create(context.Background(), &domain.Shelter{Name: "Umut Evi", City: "Ankara", Address: "Çankaya"}); err != nil {
		t.Fatalf("seed shelter: %v", err)
	}

	step(t, app, signedIn())
	step(t, app, key("d"))
	if app.shelterList.confirm == nil {
		t.Fatal("delete should arm a confirmation first")
	}

	// Declining keeps the record.
	step(t, app, key("h"))
	if got, err := shelters.ListAll(context.Background()); err != nil || len(got) != 1 {
		t.Fatalf("after decline: shelters = %d, err = %v", len(got), err)
	}

	step(t, app, key("d"))
	step(t, app, key("e"))
	if got, err := shelters.ListAll(context.Background()); err != nil || len(got) != 0 {
		t.Fatalf("after confirm: shelters = %d, err = %v", len(got), err)
	}
}

func TestDonationsOverlay(t *testing.T) {
	app, store := newTestApp(t)
	ctx := context.Background()
	shelterID, err := docrepo.NewShelters(store).Create(ctx, &domain.Shelter{Name: "Umut Evi", City: "Ankara", Address: "Çankaya"})
	if err != nil {
		t.Fatalf("seed shelter: %v", err)
	}
	animalID, err := docrepo.NewAnimals(store).Create(ctx, &domain.Animal{
		Name: "Boncuk", Type: "Kedi", Gender: "Dişi", ShelterID: shelterID, ShelterName: "Umut Evi",
	})
	if err != nil {
		t.Fatalf("seed animal: %v", err)
	}
	if _, err := store.Create(ctx, docstore.CollectionDonations, map[string]any{
		"animalId":     animalID,
		"userName":     "Ayşe Yılmaz",
		"donationType": "Nakit",
		"amount":       150.0,
		"currency":     "TL",
		"donationDate": time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("seed donation: %v", err)
	}

	step(t, app, signedIn())
	step(t, app, key("a"))
	step(t, app, key("b"))

	if _, open := app.router.Overlay(); !open {
		t.Fatal("overlay should be open")
	}
	got := app.View()
	if !strings.Contains(got, "Ayşe Yılmaz") || !strings.Contains(got, "150.00 TL") {
		t.Fatalf("overlay missing donation details:\n%s", got)
	}
	if !strings.Contains(got, "Boncuk") {
		t.Fatalf("overlay title should name the animal:\n%s", got)
	}

	step(t, app, key("esc"))
	if _, open := app.router.Overlay(); open {
		t.Fatal("esc should close the overlay")
	}
	if _, ok := app.router.View().(view.ListAnimals); !ok {
		t.Fatalf("closing the overlay should stay on the list, got %T", app.router.View())
	}
}

// downPrices is a price repository whose store is unreachable.
type downPrices struct{}

func (downPrices) Upsert(context.Context, domain.ItemPrice) error {
	return domain.ErrStoreUnavailable
}

func (downPrices) ListAll(context.Context) ([]domain.ItemPrice, error) {
	return nil, fmt.Errorf("%w: connection refused", domain.ErrStoreUnavailable)
}

func TestPriceScreenSurvivesFailedLoad(t *testing.T) {
	app, _ := newTestApp(t)
	app.deps.Catalog = catalog.New(downPrices{})
	step(t, app, signedIn())
	step(t, app, key("p"))
	if app.priceForm.errMsg == "" {
		t.Fatal("failed load should leave an error on the price screen")
	}

	// Typing on the failed screen has no fields to land on; the keys must
	// be dropped, not panic.
	step(t, app, key("z"))
	step(t, app, key("tab"))
	if _, ok := app.router.View().(view.ManagePrices); !ok {
		t.Fatalf("view = %T, want ManagePrices", app.router.View())
	}

	step(t, app, key("esc"))
	if _, ok := app.router.View().(view.ListShelters); !ok {
		t.Fatalf("esc should return to the shelter list, got %T", app.router.View())
	}
}

func TestFormMessagesFollowLocale(t *testing.T) {
	app, _ := newTestApp(t)
	app.msgs = NewMessages("en")
	step(t, app, signedIn())
	step(t, app, key("n"))
	step(t, app, key("ctrl+s"))
	if !strings.Contains(app.shelterForm.errMsg, "Please fill in") {
		t.Fatalf("errMsg = %q, want the English prompt", app.shelterForm.errMsg)
	}

	if got := fmt.Sprintf(NewMessages("tr").Get("shelters.added"), "Umut Evi"); got != "Umut Evi başarıyla eklendi!" {
		t.Fatalf("Turkish success message = %q", got)
	}
	if got := fmt.Sprintf(NewMessages("en").Get("animals.added"), "Boncuk", "Umut Evi"); got != "Boncuk added to the Umut Evi shelter!" {
		t.Fatalf("English success message = %q", got)
	}
}

func TestPriceScreenLoadsDefaults(t *testing.T) {
	app, _ := newTestApp(t)
	step(t, app, signedIn())
	step(t, app, key("p"))
	if _, ok := app.router.View().(view.ManagePrices); !ok {
		t.Fatalf("view = %T, want ManagePrices", app.router.View())
	}
	got := app.View()
	for _, want := range []string{"Mama", "Oyuncak", "İlaç Desteği"} {
		if !strings.Contains(got, want) {
			t.Fatalf("price screen missing %q:\n%s", want, got)
		}
	}
}
