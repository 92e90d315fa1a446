// Command telkg extracts the knowledge graph of a single Telugu document
// and prints it as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/granthika/telkg/pkg/telkg"
	"github.com/granthika/telkg/pkg/telkg/config"
	"github.com/granthika/telkg/pkg/telkg/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional)")
		text       = flag.String("text", "", "Text to process")
		filePath   = flag.String("file", "", "File to read text from")
		dbPath     = flag.String("db", "", "SQLite database to also save the graph to (optional)")
		pretty     = flag.Bool("pretty", false, "Indent JSON output")
	)
	flag.Parse()

	if *text == "" && *filePath == "" {
		log.Fatal("--text or --file required")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("Failed to load config:", err)
		}
	}

	input := *text
	if *filePath != "" {
		data, err := os.ReadFile(*filePath)
		if err != nil {
			log.Fatal("Failed to read input file:", err)
		}
		input = string(data)
	}

	ctx := context.Background()

	opts := telkg.Options{Config: cfg}
	if *dbPath != "" {
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatal("Failed to open store:", err)
		}
		opts.Store = st
	}

	engine, err := telkg.New(opts)
	if err != nil {
		log.Fatal("Failed to create engine:", err)
	}
	defer engine.Close()

	graph, err := engine.Process(ctx, input)
	if err != nil {
		log.Fatal("Processing failed:", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(graph); err != nil {
		log.Fatal("Failed to encode graph:", err)
	}
}
