package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"bagisadmin/internal/domain"
)

// PGStore implements Store on PostgreSQL. Documents live in a single table
// with one JSONB payload per record, which keeps the collection/document
// model of the platform backend intact:
//
//	CREATE TABLE IF NOT EXISTS documents (
//	    collection text NOT NULL,
//	    id         text NOT NULL,
//	    data       jsonb NOT NULL,
//	    PRIMARY KEY (collection, id)
//	);
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a Store backed by the given pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// EnsureSchema creates the documents table when it does not exist yet.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS documents (
    collection text NOT NULL,
    id         text NOT NULL,
    data       jsonb NOT NULL,
    PRIMARY KEY (collection, id)
);`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *PGStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}
	id := uuid.NewString()
	_, err = s.pool.Exec(ctx, `
INSERT INTO documents (collection, id, data)
VALUES ($1, $2, $3);
`, collection, id, payload)
	if err != nil {
		return "", fmt.Errorf("create %s document: %w: %v", collection, domain.ErrStoreUnavailable, err)
	}
	return id, nil
}

func (s *PGStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}
	tag, err := s.pool.Exec(ctx, `
UPDATE documents SET data = data || $3
WHERE collection = $1 AND id = $2;
`, collection, id, payload)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w: %v", collection, id, domain.ErrStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	return nil
}

func (s *PGStore) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}
	_, err = s.pool.Exec(ctx, `
INSERT INTO documents (collection, id, data)
VALUES ($1, $2, $3)
ON CONFLICT (collection, id) DO UPDATE SET data = documents.data || EXCLUDED.data;
`, collection, id, payload)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w: %v", collection, id, domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *PGStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.pool.Exec(ctx, `
DELETE FROM documents WHERE collection = $1 AND id = $2;
`, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w: %v", collection, id, domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *PGStore) ListAll(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, data FROM documents WHERE collection = $1;
`, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w: %v", collection, domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()
	return scanDocuments(collection, rows)
}

func (s *PGStore) Query(ctx context.Context, collection string, filter Filter, sort Sort) ([]Document, error) {
	// Field keys come from code, never from operator input; only the sort
	// expression is interpolated.
	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
SELECT id, data FROM documents
WHERE collection = $1 AND data->>$2 = $3
ORDER BY %s;
`, orderExpr(sort)), collection, filter.Field, fmt.Sprint(filter.Equals), sort.Field)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w: %v", collection, domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()
	return scanDocuments(collection, rows)
}

// orderExpr builds the ORDER BY expression for a sort. Timestamp fields are
// cast so that JSONB text with mixed fractional-second precision or non-UTC
// offsets still orders chronologically.
func orderExpr(sort Sort) string {
	expr := "data->>$4"
	if sort.Time {
		expr = "(data->>$4)::timestamptz"
	}
	if sort.Descending {
		return expr + " DESC"
	}
	return expr + " ASC"
}

type pgRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanDocuments(collection string, rows pgRows) ([]Document, error) {
	var docs []Document
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan %s document: %w: %v", collection, domain.ErrStoreUnavailable, err)
		}
		fields := make(map[string]any)
		if err := json.Unmarshal(payload, &fields); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		docs = append(docs, Document{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s documents: %w: %v", collection, domain.ErrStoreUnavailable, err)
	}
	return docs, nil
}
