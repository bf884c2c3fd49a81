package docrepo

import (
	"context"

	"bagisadmin/internal/docstore"
	"bagisadmin/internal/domain"
)

// ItemPrices implements domain.ItemPriceRepository over the document store.
type ItemPrices struct {
	store docstore.Store
}

// NewItemPrices creates an item price repository.
func NewItemPrices(store docstore.Store) *ItemPrices {
	return &ItemPrices{store: store}
}

// Upsert writes a single price entry under its item key, creating the
// document when it does not exist yet.
func (r *ItemPrices) Upsert(ctx context.Context, price domain.ItemPrice) error {
	return r.store.Set(ctx, docstore.CollectionItemPrices, price.ID, map[string]any{
		"name":      price.Name,
		"unitPrice": price.UnitPrice,
	})
}

func (r *ItemPrices) ListAll(ctx context.Context) ([]domain.ItemPrice, error) {
	docs, err := r.store.ListAll(ctx, docstore.CollectionItemPrices)
	if err != nil {
		return nil, err
	}
	prices := make([]domain.ItemPrice, 0, len(docs))
	for _, doc := range docs {
		name := stringField(doc.Fields, "name")
		if name == "" {
			name = doc.ID
		}
		prices = append(prices, domain.ItemPrice{
			ID:        doc.ID,
			Name:      name,
			UnitPrice: floatField(doc.Fields, "unitPrice"),
		})
	}
	return prices, nil
}
