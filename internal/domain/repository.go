package domain

import "context"

// ShelterRepository persists shelter records.
type ShelterRepository interface {
	Create(ctx context.Context, shelter *Shelter) (string, error)
	Update(ctx context.Context, id string, shelter *Shelter) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Shelter, error)
}

// AnimalRepository persists animal records.
type AnimalRepository interface {
	Create(ctx context.Context, animal *Animal) (string, error)
	Update(ctx context.Context, id string, animal *Animal) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]Animal, error)
}

// DonationRepository reads donation records. The console never writes them.
type DonationRepository interface {
	ListForAnimal(ctx context.Context, animalID string) ([]Donation, error)
}

// ItemPriceRepository persists donation item unit prices.
type ItemPriceRepository interface {
	Upsert(ctx context.Context, price ItemPrice) error
	ListAll(ctx context.Context) ([]ItemPrice, error)
}
