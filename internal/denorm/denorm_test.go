package denorm

import (
	"context"
	"errors"
	"testing"

	"bagisadmin/internal/adapter/docrepo"
	"bagisadmin/internal/docstore"
	"bagisadmin/internal/domain"
)

func TestApplyShelterNameCopiesName(t *testing.T) {
	shelters := []domain.Shelter{
		{ID: "s1", Name: "Pati Evi"},
		{ID: "s2", Name: "Umut Yuvası"},
	}
	animal := &domain.Animal{Name: "Boncuk", Type: "Kedi", ShelterID: "s2"}

	if err := ApplyShelterName(animal, shelters); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if animal.ShelterName != "Umut Yuvası" {
		t.Fatalf("shelterName = %q, want Umut Yuvası", animal.ShelterName)
	}
}

func TestApplyShelterNameUnresolvedReferenceFails(t *testing.T) {
	animal := &domain.Animal{Name: "Boncuk", Type: "Kedi", ShelterID: "gone"}
	err := ApplyShelterName(animal, []domain.Shelter{{ID: "s1", Name: "Pati Evi"}})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// The copied name is frozen at write time: renaming the shelter afterwards
// must not change what was stored for the animal.
func TestShelterNameIsNotPropagatedAfterRename(t *testing.T) {
	store := docstore.NewMemoryStore()
	shelterRepo := docrepo.NewShelters(store)
	animalRepo := docrepo.NewAnimals(store)
	ctx := context.Background()

	shelterID, err := shelterRepo.Create(ctx, &domain.Shelter{Name: "Pati Evi", City: "Ankara", Address: "Çankaya"})
	if err != nil {
		t.Fatalf("create shelter: %v", err)
	}
	shelters, err := shelterRepo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list shelters: %v", err)
	}

	animal := &domain.Animal{Name: "Boncuk", Type: "Kedi", ShelterID: shelterID}
	if err := ApplyShelterName(animal, shelters); err != nil {
		t.Fatalf("apply: %v", err)
	}
	animalID, err := animalRepo.Create(ctx, animal)
	if err != nil {
		t.Fatalf("create animal: %v", err)
	}

	if err := shelterRepo.Update(ctx, shelterID, &domain.Shelter{Name: "Pati Evi Yeni", City: "Ankara", Address: "Çankaya"}); err != nil {
		t.Fatalf("rename shelter: %v", err)
	}

	animals, err := animalRepo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list animals: %v", err)
	}
	if len(animals) != 1 || animals[0].ID != animalID {
		t.Fatalf("unexpected animals: %#v", animals)
	}
	if animals[0].ShelterName != "Pati Evi" {
		t.Fatalf("shelterName = %q, the cached copy must keep its write-time value", animals[0].ShelterName)
	}
}
