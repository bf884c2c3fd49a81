package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"bagisadmin/internal/domain"
)

// MemoryStore is an in-process Store. It backs tests and lets the console run
// without a database (DATABASE_URL unset).
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]any
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]map[string]any)}
}

func (s *MemoryStore) Create(_ context.Context, collection string, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.coll(collection)[id] = cloneFields(fields)
	return id, nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.coll(collection)[id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (s *MemoryStore) Set(_ context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	coll := s.coll(collection)
	doc, ok := coll[id]
	if !ok {
		doc = make(map[string]any, len(fields))
		coll[id] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.coll(collection), id)
	return nil
}

func (s *MemoryStore) ListAll(_ context.Context, collection string) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	coll := s.coll(collection)
	docs := make([]Document, 0, len(coll))
	for id, fields := range coll {
		docs = append(docs, Document{ID: id, Fields: cloneFields(fields)})
	}
	return docs, nil
}

func (s *MemoryStore) Query(_ context.Context, collection string, filter Filter, sortBy Sort) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var docs []Document
	for id, fields := range s.coll(collection) {
		if filter.Field != "" && fields[filter.Field] != filter.Equals {
			continue
		}
		docs = append(docs, Document{ID: id, Fields: cloneFields(fields)})
	}
	if sortBy.Field != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			less := fieldLess(docs[i].Fields[sortBy.Field], docs[j].Fields[sortBy.Field])
			if sortBy.Descending {
				return !less && !fieldEqual(docs[i].Fields[sortBy.Field], docs[j].Fields[sortBy.Field])
			}
			return less
		})
	}
	return docs, nil
}

func (s *MemoryStore) coll(name string) map[string]map[string]any {
	coll, ok := s.collections[name]
	if !ok {
		coll = make(map[string]map[string]any)
		s.collections[name] = coll
	}
	return coll
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func fieldLess(a, b any) bool {
	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	}
	return false
}

func fieldEqual(a, b any) bool {
	if av, ok := a.(time.Time); ok {
		if bv, ok := b.(time.Time); ok {
			return av.Equal(bv)
		}
	}
	return a == b
}
