package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/granthika/telkg/pkg/telkg/entity"
	"github.com/granthika/telkg/pkg/telkg/internalerr"
	"github.com/granthika/telkg/pkg/telkg/relation"
	"github.com/granthika/telkg/pkg/telkg/store"
)

func sampleGraph(docID string) store.Graph {
	return store.Graph{
		DocID: docID,
		Entities: []entity.Record{
			{Text: "రాముడు", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
			{Text: "హైదరాబాద్", Position: 1, Type: "place_city", Confidence: 0.95},
		},
		Relations: []relation.Record{
			{Source: "రాముడు", Target: "హైదరాబాద్", Type: "located_at", Confidence: 0.75},
		},
		Metadata: store.Metadata{
			EntityCount:   2,
			RelationCount: 1,
			TextLength:    12,
			CreatedAt:     time.Now(),
		},
	}
}

func TestSaveAndGetGraph(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	want := sampleGraph("doc_1")
	if err := s.SaveGraph(ctx, want); err != nil {
		t.Fatalf("SaveGraph: %v", err)
	}

	got, err := s.GetGraph(ctx, "doc_1")
	if err != nil {
		t.Fatalf("GetGraph: %v", err)
	}
	if got.DocID != "doc_1" || len(got.Entities) != 2 || len(got.Relations) != 1 {
		t.Errorf("GetGraph = %+v, want round-tripped graph", got)
	}
}

func TestGetGraphNotFound(t *testing.T) {
	s := New()
	defer s.Close()

	_, err := s.GetGraph(context.Background(), "missing")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("GetGraph err = %v, want ErrNotFound", err)
	}
}

func TestSaveGraphReplaces(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	g := sampleGraph("doc_1")
	if err := s.SaveGraph(ctx, g); err != nil {
		t.Fatal(err)
	}
	g.Entities = g.Entities[:1]
	if err := s.SaveGraph(ctx, g); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetGraph(ctx, "doc_1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Entities) != 1 {
		t.Errorf("entities after replace = %d, want 1", len(got.Entities))
	}

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Documents != 1 {
		t.Errorf("Documents = %d, want 1 after in-place replace", st.Documents)
	}
}

func TestSavedGraphIsCopied(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	g := sampleGraph("doc_1")
	if err := s.SaveGraph(ctx, g); err != nil {
		t.Fatal(err)
	}
	g.Entities[0].Text = "mutated"

	got, err := s.GetGraph(ctx, "doc_1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Entities[0].Text != "రాముడు" {
		t.Error("stored graph shares memory with the caller's slice")
	}
}

func TestListGraphsNewestFirst(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.SaveGraph(ctx, sampleGraph(id)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.ListGraphs(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].DocID != "c" || got[1].DocID != "b" {
		t.Errorf("ListGraphs(2) order = %v, want [c b]", docIDs(got))
	}

	all, err := s.ListGraphs(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("ListGraphs(0) = %d graphs, want all 3", len(all))
	}
}

func docIDs(graphs []store.Graph) []string {
	out := make([]string, len(graphs))
	for i, g := range graphs {
		out[i] = g.DocID
	}
	return out
}

func TestFindEntitiesByType(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	if err := s.SaveGraph(ctx, sampleGraph("doc_1")); err != nil {
		t.Fatal(err)
	}
	g2 := sampleGraph("doc_2")
	g2.Entities = append(g2.Entities, entity.Record{
		Text: "సీత", Position: 3, Type: entity.TypePerson, Confidence: 0.80,
	})
	if err := s.SaveGraph(ctx, g2); err != nil {
		t.Fatal(err)
	}

	rows, err := s.FindEntities(ctx, entity.TypePerson, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("FindEntities(person) = %d rows, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Entity.Confidence > rows[i-1].Entity.Confidence {
			t.Errorf("rows not sorted by confidence: %v before %v",
				rows[i-1].Entity.Confidence, rows[i].Entity.Confidence)
		}
	}

	limited, err := s.FindEntities(ctx, "", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("FindEntities with limit 2 = %d rows", len(limited))
	}
}

func TestFindRelations(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	if err := s.SaveGraph(ctx, sampleGraph("doc_1")); err != nil {
		t.Fatal(err)
	}

	rows, err := s.FindRelations(ctx, "located_at", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].DocID != "doc_1" {
		t.Errorf("FindRelations(located_at) = %v", rows)
	}

	none, err := s.FindRelations(ctx, "owns", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("FindRelations(owns) = %v, want empty", none)
	}
}

func TestStats(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Documents != 0 || st.Entities != 0 || st.Relations != 0 {
		t.Errorf("empty store stats = %+v", st)
	}

	if err := s.SaveGraph(ctx, sampleGraph("doc_1")); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveGraph(ctx, sampleGraph("doc_2")); err != nil {
		t.Fatal(err)
	}

	st, err = s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Documents != 2 || st.Entities != 4 || st.Relations != 2 {
		t.Errorf("stats = %+v, want 2 docs, 4 entities, 2 relations", st)
	}
}
