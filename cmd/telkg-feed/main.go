// Command telkg-feed indexes a Telugu news dump (JSONL of articles) into a
// SQLite graph store, one knowledge graph per article keyed by its URL.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/granthika/telkg/internal/feed"
	"github.com/granthika/telkg/pkg/telkg"
	"github.com/granthika/telkg/pkg/telkg/config"
	"github.com/granthika/telkg/pkg/telkg/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		dbPath     = flag.String("db", "", "SQLite database path (required)")
		dataPath   = flag.String("data", "", "News dump JSONL file (required)")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *dataPath == "" {
		log.Fatal("--data required")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("Failed to load config:", err)
		}
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}

	engine, err := telkg.New(telkg.Options{Config: cfg, Store: st})
	if err != nil {
		log.Fatal("Failed to create engine:", err)
	}
	defer engine.Close()

	items, skipped, err := feed.LoadJSONL(*dataPath)
	if err != nil {
		log.Fatal("Failed to load dump:", err)
	}
	log.Printf("Loaded %d articles from %s (%d skipped)", len(items), *dataPath, skipped)

	indexed := 0
	for i, item := range items {
		if _, err := engine.ProcessDoc(ctx, item.DocID(), item.Text()); err != nil {
			log.Printf("Failed to index article %d (%s): %v", i, item.Title, err)
			continue
		}
		indexed++
		if indexed%10 == 0 {
			log.Printf("Indexed %d/%d articles", indexed, len(items))
		}
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		log.Fatal("Failed to read store stats:", err)
	}
	log.Printf("Indexing complete: %d articles, store now holds %d documents, %d entities, %d relations",
		indexed, stats.Documents, stats.Entities, stats.Relations)
}
