package docrepo

import (
	"context"

	"bagisadmin/internal/docstore"
	"bagisadmin/internal/domain"
)

// Donations implements domain.DonationRepository over the document store.
// The console has read-only access to the donations collection.
type Donations struct {
	store docstore.Store
}

// NewDonations creates a donation repository.
func NewDonations(store docstore.Store) *Donations {
	return &Donations{store: store}
}

// ListForAnimal returns the donations recorded against an animal, newest
// first. The result is fetched fresh on every call.
func (r *Donations) ListForAnimal(ctx context.Context, animalID string) ([]domain.Donation, error) {
	docs, err := r.store.Query(ctx, docstore.CollectionDonations,
		docstore.Filter{Field: "animalId", Equals: animalID},
		docstore.Sort{Field: "donationDate", Descending: true, Time: true})
	if err != nil {
		return nil, err
	}
	donations := make([]domain.Donation, 0, len(docs))
	for _, doc := range docs {
		donations = append(donations, donationFromDoc(doc))
	}
	return donations, nil
}

func donationFromDoc(doc docstore.Document) domain.Donation {
	return domain.Donation{
		ID:           doc.ID,
		AnimalID:     stringField(doc.Fields, "animalId"),
		UserID:       stringField(doc.Fields, "userId"),
		UserName:     stringField(doc.Fields, "userName"),
		DonationType: stringField(doc.Fields, "donationType"),
		Amount:       floatField(doc.Fields, "amount"),
		Currency:     stringField(doc.Fields, "currency"),
		Description:  stringField(doc.Fields, "description"),
		DonationDate: timeField(doc.Fields, "donationDate"),
	}
}
