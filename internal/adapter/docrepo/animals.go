package docrepo

import (
	"context"
	"time"

	"bagisadmin/internal/docstore"
	"bagisadmin/internal/domain"
)

// Animals implements domain.AnimalRepository over the document store.
type Animals struct {
	store docstore.Store
	now   func() time.Time
}

// NewAnimals creates an animal repository.
func NewAnimals(store docstore.Store) *Animals {
	return &Animals{store: store, now: time.Now}
}

func (r *Animals) Create(ctx context.Context, animal *domain.Animal) (string, error) {
	if err := animal.Validate(); err != nil {
		return "", err
	}
	fields := animalFields(animal)
	fields["dateAdded"] = r.now().UTC()
	fields["virtualAdoptersCount"] = 0
	return r.store.Create(ctx, docstore.CollectionAnimals, fields)
}

// Update rewrites the editable fields. The cached aggregates
// (donationCount, totalDonationAmount) are never part of the write set.
func (r *Animals) Update(ctx context.Context, id string, animal *domain.Animal) error {
	if err := animal.Validate(); err != nil {
		return err
	}
	fields := animalFields(animal)
	fields["lastUpdated"] = r.now().UTC()
	return r.store.Update(ctx, docstore.CollectionAnimals, id, fields)
}

func (r *Animals) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.CollectionAnimals, id)
}

func (r *Animals) ListAll(ctx context.Context) ([]domain.Animal, error) {
	docs, err := r.store.ListAll(ctx, docstore.CollectionAnimals)
	if err != nil {
		return nil, err
	}
	animals := make([]domain.Animal, 0, len(docs))
	for _, doc := range docs {
		animals = append(animals, animalFromDoc(doc))
	}
	return animals, nil
}

func animalFields(a *domain.Animal) map[string]any {
	return map[string]any{
		"name":        a.Name,
		"type":        a.Type,
		"breed":       a.Breed,
		"age":         a.Age,
		"gender":      a.Gender,
		"description": a.Description,
		"imageUrl":    a.ImageURL,
		"photos":      a.Photos,
		"needs":       a.Needs,
		"shelterId":   a.ShelterID,
		"shelterName": a.ShelterName,
	}
}

func animalFromDoc(doc docstore.Document) domain.Animal {
	return domain.Animal{
		ID:                   doc.ID,
		Name:                 stringField(doc.Fields, "name"),
		Type:                 stringField(doc.Fields, "type"),
		Breed:                stringField(doc.Fields, "breed"),
		Age:                  stringField(doc.Fields, "age"),
		Gender:               stringField(doc.Fields, "gender"),
		Description:          stringField(doc.Fields, "description"),
		ImageURL:             stringField(doc.Fields, "imageUrl"),
		Photos:               stringSliceField(doc.Fields, "photos"),
		Needs:                stringSliceField(doc.Fields, "needs"),
		ShelterID:            stringField(doc.Fields, "shelterId"),
		ShelterName:          stringField(doc.Fields, "shelterName"),
		DateAdded:            timeField(doc.Fields, "dateAdded"),
		LastUpdated:          timeField(doc.Fields, "lastUpdated"),
		VirtualAdoptersCount: intField(doc.Fields, "virtualAdoptersCount"),
		DonationCount:        intField(doc.Fields, "donationCount"),
		TotalDonationAmount:  floatField(doc.Fields, "totalDonationAmount"),
	}
}
