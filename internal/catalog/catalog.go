// Package catalog manages the unit prices of chargeable donation items.
package catalog

import (
	"context"
	"fmt"

	"bagisadmin/internal/domain"
)

// defaultItems is the universe of chargeable items. It is fixed in code, not
// discovered from the store; the order is the display order.
var defaultItems = []domain.ItemPrice{
	{ID: "Mama", Name: "Mama", UnitPrice: 50},
	{ID: "Oyuncak", Name: "Oyuncak", UnitPrice: 30},
	{ID: "İlaç", Name: "İlaç Desteği", UnitPrice: 75},
}

// Catalog reads and writes item prices through the price repository.
type Catalog struct {
	prices domain.ItemPriceRepository
}

// New creates a price catalog.
func New(prices domain.ItemPriceRepository) *Catalog {
	return &Catalog{prices: prices}
}

// Defaults returns the known items with their hard-coded default prices.
func Defaults() []domain.ItemPrice {
	out := make([]domain.ItemPrice, len(defaultItems))
	copy(out, defaultItems)
	return out
}

// Load returns every known item in its fixed order, taking the stored price
// and name where a record exists and falling back to the default otherwise.
func (c *Catalog) Load(ctx context.Context) ([]domain.ItemPrice, error) {
	stored, err := c.prices.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.ItemPrice, len(stored))
	for _, p := range stored {
		byID[p.ID] = p
	}

	merged := Defaults()
	for i := range merged {
		if p, ok := byID[merged[i].ID]; ok {
			merged[i].UnitPrice = p.UnitPrice
			if p.Name != "" {
				merged[i].Name = p.Name
			}
		}
	}
	return merged, nil
}

// Save validates every entry up front and then upserts them one by one. A
// validation failure applies nothing; a store failure mid-loop leaves the
// entries written so far in place, as the store offers no transaction to
// span them.
func (c *Catalog) Save(ctx context.Context, prices []domain.ItemPrice) error {
	for _, p := range prices {
		if p.UnitPrice < 0 {
			return fmt.Errorf("%w: %s unit price must not be negative", domain.ErrValidation, p.Name)
		}
	}
	for _, p := range prices {
		if err := c.prices.Upsert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
