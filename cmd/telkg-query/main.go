// Command telkg-query inspects a SQLite graph store: per-document graphs,
// cross-document entity and relation lookups, and corpus totals.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/granthika/telkg/pkg/telkg/store/sqlite"
)

func main() {
	var (
		dbPath       = flag.String("db", "", "SQLite database path (required)")
		docID        = flag.String("doc", "", "Print the graph of this document ID")
		entityType   = flag.String("entities", "", "List entities of this type (\"all\" for every type)")
		relationType = flag.String("relations", "", "List relations of this type (\"all\" for every type)")
		limit        = flag.Int("limit", 50, "Max rows to return")
		showStats    = flag.Bool("stats", false, "Print store totals")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer st.Close()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	switch {
	case *docID != "":
		g, err := st.GetGraph(ctx, *docID)
		if err != nil {
			log.Fatal("Lookup failed:", err)
		}
		enc.Encode(g)
	case *entityType != "":
		t := *entityType
		if t == "all" {
			t = ""
		}
		rows, err := st.FindEntities(ctx, t, *limit)
		if err != nil {
			log.Fatal("Query failed:", err)
		}
		enc.Encode(rows)
	case *relationType != "":
		t := *relationType
		if t == "all" {
			t = ""
		}
		rows, err := st.FindRelations(ctx, t, *limit)
		if err != nil {
			log.Fatal("Query failed:", err)
		}
		enc.Encode(rows)
	case *showStats:
		stats, err := st.Stats(ctx)
		if err != nil {
			log.Fatal("Stats failed:", err)
		}
		enc.Encode(stats)
	default:
		log.Fatal("one of --doc, --entities, --relations, --stats required")
	}
}
