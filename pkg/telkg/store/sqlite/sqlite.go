// Package sqlite implements store.Store on a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/granthika/telkg/pkg/telkg/entity"
	"github.com/granthika/telkg/pkg/telkg/internalerr"
	"github.com/granthika/telkg/pkg/telkg/relation"
	"github.com/granthika/telkg/pkg/telkg/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite-backed graph store with WAL mode
// enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error { return s.db.Close() }

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS graphs (
	doc_id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	processing_ns INTEGER NOT NULL,
	text_length INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS entities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	doc_id TEXT NOT NULL REFERENCES graphs(doc_id) ON DELETE CASCADE,
	text TEXT NOT NULL,
	position INTEGER NOT NULL,
	entity_type TEXT NOT NULL,
	confidence REAL NOT NULL,
	payload TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS relations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	doc_id TEXT NOT NULL REFERENCES graphs(doc_id) ON DELETE CASCADE,
	source TEXT NOT NULL,
	target TEXT NOT NULL,
	relation_type TEXT NOT NULL,
	confidence REAL NOT NULL,
	payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entities_doc ON entities(doc_id);
CREATE INDEX IF NOT EXISTS idx_entities_type ON entities(entity_type);
CREATE INDEX IF NOT EXISTS idx_relations_doc ON relations(doc_id);
CREATE INDEX IF NOT EXISTS idx_relations_type ON relations(relation_type);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveGraph stores a graph in a single transaction, replacing any previous
// graph saved under the same document ID.
func (s *sqliteStore) SaveGraph(ctx context.Context, g store.Graph) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM graphs WHERE doc_id = ?`, g.DocID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO graphs (doc_id, created_at, processing_ns, text_length)
		 VALUES (?, ?, ?, ?)`,
		g.DocID,
		g.Metadata.CreatedAt.UTC().Format(time.RFC3339Nano),
		int64(g.Metadata.ProcessingTime),
		g.Metadata.TextLength,
	); err != nil {
		return err
	}

	for _, e := range g.Entities {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal entity: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entities (doc_id, text, position, entity_type, confidence, payload)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			g.DocID, e.Text, e.Position, e.Type, e.Confidence, string(payload),
		); err != nil {
			return err
		}
	}
	for _, r := range g.Relations {
		payload, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal relation: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO relations (doc_id, source, target, relation_type, confidence, payload)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			g.DocID, r.Source, r.Target, r.Type, r.Confidence, string(payload),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetGraph loads one graph by document ID.
func (s *sqliteStore) GetGraph(ctx context.Context, docID string) (store.Graph, error) {
	var createdAt string
	var processingNS int64
	g := store.Graph{DocID: docID}

	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, processing_ns, text_length FROM graphs WHERE doc_id = ?`,
		docID,
	).Scan(&createdAt, &processingNS, &g.Metadata.TextLength)
	if err == sql.ErrNoRows {
		return store.Graph{}, internalerr.ErrNotFound
	}
	if err != nil {
		return store.Graph{}, err
	}
	g.Metadata.ProcessingTime = time.Duration(processingNS)
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		g.Metadata.CreatedAt = t
	}

	if g.Entities, err = s.docEntities(ctx, docID); err != nil {
		return store.Graph{}, err
	}
	if g.Relations, err = s.docRelations(ctx, docID); err != nil {
		return store.Graph{}, err
	}
	g.Metadata.EntityCount = len(g.Entities)
	g.Metadata.RelationCount = len(g.Relations)
	return g, nil
}

func (s *sqliteStore) docEntities(ctx context.Context, docID string) ([]entity.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM entities WHERE doc_id = ? ORDER BY position, id`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Record
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var e entity.Record
		if err := json.Unmarshal([]byte(payload), &e); err != nil {
			return nil, fmt.Errorf("unmarshal entity: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *sqliteStore) docRelations(ctx context.Context, docID string) ([]relation.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM relations WHERE doc_id = ? ORDER BY id`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []relation.Record
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var r relation.Record
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			return nil, fmt.Errorf("unmarshal relation: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListGraphs returns the most recently saved graphs, newest first.
func (s *sqliteStore) ListGraphs(ctx context.Context, limit int) ([]store.Graph, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT doc_id FROM graphs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	graphs := make([]store.Graph, 0, len(ids))
	for _, id := range ids {
		g, err := s.GetGraph(ctx, id)
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}
	return graphs, nil
}

// FindEntities returns stored entity mentions of the given type across all
// documents, highest confidence first. An empty type matches everything.
func (s *sqliteStore) FindEntities(ctx context.Context, entityType string, limit int) ([]store.EntityRow, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT doc_id, payload FROM entities`
	args := []any{}
	if entityType != "" {
		query += ` WHERE entity_type = ?`
		args = append(args, entityType)
	}
	query += ` ORDER BY confidence DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.EntityRow
	for rows.Next() {
		var row store.EntityRow
		var payload string
		if err := rows.Scan(&row.DocID, &payload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &row.Entity); err != nil {
			return nil, fmt.Errorf("unmarshal entity: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// FindRelations returns stored relations of the given type across all
// documents, highest confidence first. An empty type matches everything.
func (s *sqliteStore) FindRelations(ctx context.Context, relationType string, limit int) ([]store.RelationRow, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT doc_id, payload FROM relations`
	args := []any{}
	if relationType != "" {
		query += ` WHERE relation_type = ?`
		args = append(args, relationType)
	}
	query += ` ORDER BY confidence DESC, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.RelationRow
	for rows.Next() {
		var row store.RelationRow
		var payload string
		if err := rows.Scan(&row.DocID, &payload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &row.Relation); err != nil {
			return nil, fmt.Errorf("unmarshal relation: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Stats counts stored documents, entities, and relations.
func (s *sqliteStore) Stats(ctx context.Context) (store.Stats, error) {
	var st store.Stats
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM graphs`).Scan(&st.Documents); err != nil {
		return store.Stats{}, err
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entities`).Scan(&st.Entities); err != nil {
		return store.Stats{}, err
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM relations`).Scan(&st.Relations); err != nil {
		return store.Stats{}, err
	}
	return st, nil
}
