// Package memstore is an in-memory implementation of store.Store, used in
// tests and when no database path is configured.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/granthika/telkg/pkg/telkg/entity"
	"github.com/granthika/telkg/pkg/telkg/internalerr"
	"github.com/granthika/telkg/pkg/telkg/relation"
	"github.com/granthika/telkg/pkg/telkg/store"
)

// Store is an in-memory store.Store.
type Store struct {
	mu     sync.RWMutex
	order  []string
	graphs map[string]store.Graph
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{graphs: make(map[string]store.Graph)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveGraph stores a copy of g, replacing any graph with the same document ID.
func (s *Store) SaveGraph(ctx context.Context, g store.Graph) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.graphs[g.DocID]; !ok {
		s.order = append(s.order, g.DocID)
	}
	s.graphs[g.DocID] = copyGraph(g)
	return nil
}

// GetGraph returns the graph stored under docID.
func (s *Store) GetGraph(ctx context.Context, docID string) (store.Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.graphs[docID]
	if !ok {
		return store.Graph{}, internalerr.ErrNotFound
	}
	return copyGraph(g), nil
}

// ListGraphs returns the most recently saved graphs, newest first.
func (s *Store) ListGraphs(ctx context.Context, limit int) ([]store.Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	out := make([]store.Graph, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, copyGraph(s.graphs[s.order[i]]))
	}
	return out, nil
}

// FindEntities returns stored entity mentions of the given type, highest
// confidence first. An empty type matches everything.
func (s *Store) FindEntities(ctx context.Context, entityType string, limit int) ([]store.EntityRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.EntityRow
	for _, id := range s.order {
		for _, e := range s.graphs[id].Entities {
			if entityType != "" && e.Type != entityType {
				continue
			}
			out = append(out, store.EntityRow{DocID: id, Entity: e})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Entity.Confidence > out[j].Entity.Confidence
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// FindRelations returns stored relations of the given type, highest
// confidence first. An empty type matches everything.
func (s *Store) FindRelations(ctx context.Context, relationType string, limit int) ([]store.RelationRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.RelationRow
	for _, id := range s.order {
		for _, r := range s.graphs[id].Relations {
			if relationType != "" && r.Type != relationType {
				continue
			}
			out = append(out, store.RelationRow{DocID: id, Relation: r})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Relation.Confidence > out[j].Relation.Confidence
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Stats counts stored documents, entities, and relations.
func (s *Store) Stats(ctx context.Context) (store.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := store.Stats{Documents: int64(len(s.graphs))}
	for _, g := range s.graphs {
		st.Entities += int64(len(g.Entities))
		st.Relations += int64(len(g.Relations))
	}
	return st, nil
}

func copyGraph(g store.Graph) store.Graph {
	out := g
	out.Entities = append([]entity.Record(nil), g.Entities...)
	out.Relations = append([]relation.Record(nil), g.Relations...)
	return out
}
