package docrepo

import (
	"context"
	"time"

	"bagisadmin/internal/docstore"
	"bagisadmin/internal/domain"
)

// Shelters implements domain.ShelterRepository over the document store.
type Shelters struct {
	store docstore.Store
	now   func() time.Time
}

// NewShelters creates a shelter repository.
func NewShelters(store docstore.Store) *Shelters {
	return &Shelters{store: store, now: time.Now}
}

func (r *Shelters) Create(ctx context.Context, shelter *domain.Shelter) (string, error) {
	if err := shelter.Validate(); err != nil {
		return "", err
	}
	fields := shelterFields(shelter)
	fields["createdAt"] = r.now().UTC()
	return r.store.Create(ctx, docstore.CollectionShelters, fields)
}

func (r *Shelters) Update(ctx context.Context, id string, shelter *domain.Shelter) error {
	if err := shelter.Validate(); err != nil {
		return err
	}
	fields := shelterFields(shelter)
	fields["updatedAt"] = r.now().UTC()
	return r.store.Update(ctx, docstore.CollectionShelters, id, fields)
}

func (r *Shelters) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.CollectionShelters, id)
}

func (r *Shelters) ListAll(ctx context.Context) ([]domain.Shelter, error) {
	docs, err := r.store.ListAll(ctx, docstore.CollectionShelters)
	if err != nil {
		return nil, err
	}
	shelters := make([]domain.Shelter, 0, len(docs))
	for _, doc := range docs {
		shelters = append(shelters, shelterFromDoc(doc))
	}
	return shelters, nil
}

func shelterFields(s *domain.Shelter) map[string]any {
	return map[string]any{
		"name":         s.Name,
		"city":         s.City,
		"address":      s.Address,
		"contactPhone": s.ContactPhone,
		"contactEmail": s.ContactEmail,
		"description":  s.Description,
		"imageUrl":     s.ImageURL,
	}
}

func shelterFromDoc(doc docstore.Document) domain.Shelter {
	return domain.Shelter{
		ID:           doc.ID,
		Name:         stringField(doc.Fields, "name"),
		City:         stringField(doc.Fields, "city"),
		Address:      stringField(doc.Fields, "address"),
		ContactPhone: stringField(doc.Fields, "contactPhone"),
		ContactEmail: stringField(doc.Fields, "contactEmail"),
		Description:  stringField(doc.Fields, "description"),
		ImageURL:     stringField(doc.Fields, "imageUrl"),
		CreatedAt:    timeField(doc.Fields, "createdAt"),
		UpdatedAt:    timeField(doc.Fields, "updatedAt"),
	}
}
