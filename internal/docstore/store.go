// Package docstore provides generic access to named collections of schemaless
// documents, mirroring the collection/document model of the platform backend.
package docstore

import "context"

// Collection names shared with the public platform. They are part of the wire
// contract and must not change while existing data is live.
const (
	CollectionShelters   = "shelters"
	CollectionAnimals    = "animals"
	CollectionDonations  = "donations"
	CollectionItemPrices = "donationItemPrices"
)

// Document is a stored record: a store-assigned id plus free-form fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// Filter restricts a query to documents whose field equals the given value.
type Filter struct {
	Field  string
	Equals any
}

// Sort orders query results by a single field. Time marks the field as an
// RFC 3339 timestamp so backends that store it as text can still compare
// chronologically: mixed fractional-second precision and non-UTC offsets
// break raw text ordering.
type Sort struct {
	Field      string
	Descending bool
	Time       bool
}

// Store is the document-store contract consumed by the typed repositories.
//
// No call spans a transaction: a sequence of writes (for example upserting
// every price in the catalog) can fail part-way through and leave the earlier
// writes applied. Delete removes a single document and never touches
// references held by other collections.
type Store interface {
	// Create stores the fields under a store-generated id and returns it.
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	// Update merges the supplied fields into an existing document. It fails
	// with domain.ErrNotFound when the id does not exist.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// Set merges the supplied fields into the document with the given id,
	// creating it when absent.
	Set(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete removes the document. Deleting an absent id is not an error.
	Delete(ctx context.Context, collection, id string) error
	// ListAll returns every document in the collection, unordered.
	ListAll(ctx context.Context, collection string) ([]Document, error)
	// Query returns the documents matching the filter in the given order.
	Query(ctx context.Context, collection string, filter Filter, sort Sort) ([]Document, error)
}
