package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"bagisadmin/internal/adapter/docrepo"
	"bagisadmin/internal/docstore"
	"bagisadmin/internal/domain"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	c := New(docrepo.NewItemPrices(docstore.NewMemoryStore()))

	prices, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Defaults()
	if len(prices) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(prices))
	}
	for i := range want {
		if prices[i] != want[i] {
			t.Fatalf("item %d = %#v, want default %#v", i, prices[i], want[i])
		}
	}
}

func TestLoadMergesStoredPricesInKnownOrder(t *testing.T) {
	repo := docrepo.NewItemPrices(docstore.NewMemoryStore())
	c := New(repo)
	ctx := context.Background()

	if err := repo.Upsert(ctx, domain.ItemPrice{ID: "Oyuncak", Name: "Oyuncak", UnitPrice: 42.5}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	prices, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prices[0].ID != "Mama" || prices[1].ID != "Oyuncak" || prices[2].ID != "İlaç" {
		t.Fatalf("known-key order not preserved: %#v", prices)
	}
	if prices[1].UnitPrice != 42.5 {
		t.Fatalf("stored price not merged: %#v", prices[1])
	}
	if prices[0].UnitPrice != 50 || prices[2].UnitPrice != 75 {
		t.Fatalf("defaults not kept for unstored items: %#v", prices)
	}
}

func TestSaveRejectsNegativePriceWithoutSideEffects(t *testing.T) {
	repo := docrepo.NewItemPrices(docstore.NewMemoryStore())
	c := New(repo)
	ctx := context.Background()

	before, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	invalid := Defaults()
	invalid[0].UnitPrice = 120
	invalid[1].UnitPrice = -1

	err = c.Save(ctx, invalid)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	after, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("load after failed save: %v", err)
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("failed save must apply nothing: before %#v, after %#v", before[i], after[i])
		}
	}
}

// failingPrices fails the upsert of one item id to expose the non-atomic
// write loop.
type failingPrices struct {
	inner  domain.ItemPriceRepository
	failID string
}

func (f *failingPrices) Upsert(ctx context.Context, p domain.ItemPrice) error {
	if p.ID == f.failID {
		return fmt.Errorf("upsert %s: %w", p.ID, domain.ErrStoreUnavailable)
	}
	return f.inner.Upsert(ctx, p)
}

func (f *failingPrices) ListAll(ctx context.Context) ([]domain.ItemPrice, error) {
	return f.inner.ListAll(ctx)
}

func TestSaveMidLoopFailureLeavesEarlierWrites(t *testing.T) {
	inner := docrepo.NewItemPrices(docstore.NewMemoryStore())
	c := New(&failingPrices{inner: inner, failID: "Oyuncak"})
	ctx := context.Background()

	updated := Defaults()
	for i := range updated {
		updated[i].UnitPrice += 10
	}

	err := c.Save(ctx, updated)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}

	after, err := New(inner).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if after[0].UnitPrice != 60 {
		t.Fatalf("write before the failure should persist: %#v", after[0])
	}
	if after[1].UnitPrice != 30 || after[2].UnitPrice != 75 {
		t.Fatalf("writes at and after the failure must not apply: %#v", after)
	}
}

func TestSaveValidationErrorNamesTheItem(t *testing.T) {
	c := New(docrepo.NewItemPrices(docstore.NewMemoryStore()))
	invalid := []domain.ItemPrice{{ID: "İlaç", Name: "İlaç Desteği", UnitPrice: -5}}

	err := c.Save(context.Background(), invalid)
	if err == nil || !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "İlaç Desteği") {
		t.Fatalf("error should name the offending item: %q", got)
	}
}
