package docrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"bagisadmin/internal/docstore"
	"bagisadmin/internal/domain"
)

// recordingStore captures writes so tests can inspect the exact field sets.
type recordingStore struct {
	docstore.Store
	created map[string]any
	updated map[string]any
}

func (s *recordingStore) Create(_ context.Context, _ string, fields map[string]any) (string, error) {
	s.created = fields
	return "generated-id", nil
}

func (s *recordingStore) Update(_ context.Context, _ string, _ string, fields map[string]any) error {
	s.updated = fields
	return nil
}

func TestAnimalsCreateWritesDefaultsButNoAggregates(t *testing.T) {
	store := &recordingStore{}
	repo := NewAnimals(store)
	repo.now = func() time.Time { return time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC) }

	id, err := repo.Create(context.Background(), &domain.Animal{
		Name:        "Boncuk",
		Type:        "Kedi",
		ShelterID:   "s1",
		ShelterName: "Pati Evi",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != "generated-id" {
		t.Fatalf("id = %q", id)
	}

	if store.created["virtualAdoptersCount"] != 0 {
		t.Fatalf("virtualAdoptersCount missing from create: %#v", store.created)
	}
	if store.created["dateAdded"] == nil {
		t.Fatalf("dateAdded missing from create: %#v", store.created)
	}
	for _, key := range []string{"donationCount", "totalDonationAmount", "lastUpdated"} {
		if _, ok := store.created[key]; ok {
			t.Fatalf("%s must not be written on create: %#v", key, store.created)
		}
	}
	if store.created["shelterName"] != "Pati Evi" {
		t.Fatalf("shelterName = %#v", store.created["shelterName"])
	}
}

func TestAnimalsUpdateWritesLastUpdatedOnly(t *testing.T) {
	store := &recordingStore{}
	repo := NewAnimals(store)

	err := repo.Update(context.Background(), "a1", &domain.Animal{Name: "Boncuk", Type: "Kedi", ShelterID: "s1"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if store.updated["lastUpdated"] == nil {
		t.Fatalf("lastUpdated missing from update: %#v", store.updated)
	}
	for _, key := range []string{"dateAdded", "virtualAdoptersCount", "donationCount", "totalDonationAmount"} {
		if _, ok := store.updated[key]; ok {
			t.Fatalf("%s must not be rewritten on update: %#v", key, store.updated)
		}
	}
}

func TestAnimalsValidationFailsBeforeAnyStoreWrite(t *testing.T) {
	store := &recordingStore{}
	repo := NewAnimals(store)

	_, err := repo.Create(context.Background(), &domain.Animal{Name: "", Type: "Kedi", ShelterID: "s1"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if store.created != nil {
		t.Fatalf("store must not be touched on validation failure")
	}
}

func TestAnimalsRoundTripThroughMemoryStore(t *testing.T) {
	repo := NewAnimals(docstore.NewMemoryStore())
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.Animal{
		Name:      "Karabaş",
		Type:      "Köpek",
		Gender:    "Erkek",
		ShelterID: "s1",
		Photos:    []string{"https://example.com/1.jpg"},
		Needs:     []string{"Mama", "Oyuncak"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	animals, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(animals) != 1 || animals[0].ID != id {
		t.Fatalf("unexpected list result: %#v", animals)
	}
	got := animals[0]
	if got.Name != "Karabaş" || got.Type != "Köpek" || len(got.Needs) != 2 {
		t.Fatalf("round trip mismatch: %#v", got)
	}
	if got.DonationCount != 0 || got.TotalDonationAmount != 0 {
		t.Fatalf("absent aggregates should read as zero: %#v", got)
	}
}
