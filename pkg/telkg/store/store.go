// Package store defines the persistence interface for extracted knowledge
// graphs, with SQLite and in-memory implementations in subpackages.
package store

import (
	"context"
	"time"

	"github.com/granthika/telkg/pkg/telkg/entity"
	"github.com/granthika/telkg/pkg/telkg/relation"
)

// Store persists and queries per-document knowledge graphs.
type Store interface {
	Close() error

	SaveGraph(ctx context.Context, g Graph) error
	GetGraph(ctx context.Context, docID string) (Graph, error)
	ListGraphs(ctx context.Context, limit int) ([]Graph, error)

	// Cross-document queries over the stored graphs.
	FindEntities(ctx context.Context, entityType string, limit int) ([]EntityRow, error)
	FindRelations(ctx context.Context, relationType string, limit int) ([]RelationRow, error)

	Stats(ctx context.Context) (Stats, error)
}

// Graph is the knowledge graph extracted from one document.
type Graph struct {
	DocID     string            `json:"doc_id"`
	Entities  []entity.Record   `json:"entities"`
	Relations []relation.Record `json:"relations"`
	Metadata  Metadata          `json:"metadata"`
}

// Metadata describes how a graph was produced.
type Metadata struct {
	ProcessingTime time.Duration `json:"processing_time"`
	EntityCount    int           `json:"entity_count"`
	RelationCount  int           `json:"relation_count"`
	TextLength     int           `json:"text_length"`
	CreatedAt      time.Time     `json:"created_at"`
}

// EntityRow is an entity mention joined with its source document.
type EntityRow struct {
	DocID  string        `json:"doc_id"`
	Entity entity.Record `json:"entity"`
}

// RelationRow is a relation joined with its source document.
type RelationRow struct {
	DocID    string          `json:"doc_id"`
	Relation relation.Record `json:"relation"`
}

// Stats summarizes a store's contents.
type Stats struct {
	Documents int64 `json:"documents"`
	Entities  int64 `json:"entities"`
	Relations int64 `json:"relations"`
}
