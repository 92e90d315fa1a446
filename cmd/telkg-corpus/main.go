// Command telkg-corpus streams a large corpus file (plain text, JSONL, or
// HTML) through the extraction engine with a worker pool, writing graphs
// incrementally and checkpointing progress so interrupted runs resume.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/granthika/telkg/internal/driver"
	"github.com/granthika/telkg/pkg/telkg"
	"github.com/granthika/telkg/pkg/telkg/config"
	"github.com/granthika/telkg/pkg/telkg/metrics"
	"github.com/granthika/telkg/pkg/telkg/store/sqlite"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML config file (optional)")
		inputPath   = flag.String("input", "", "Corpus file to process (required)")
		outputDir   = flag.String("out", "kg_output", "Output directory")
		format      = flag.String("format", "jsonl", "Output format: json or jsonl")
		dbPath      = flag.String("db", "", "SQLite database to also save graphs to (optional)")
		metricsPort = flag.Int("metrics-port", 0, "Serve Prometheus metrics on this port (0 = off)")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("--input required")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("Failed to load config:", err)
		}
	}

	// SIGINT/SIGTERM cancel the run; the checkpoint preserves progress.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mset := metrics.New()
	if *metricsPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", mset.Handler())
		go func() {
			addr := fmt.Sprintf(":%d", *metricsPort)
			log.Printf("Serving metrics on %s/metrics", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	opts := telkg.Options{Config: cfg, Metrics: mset}
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

	d, err := driver.New(driver.Options{
		Engine:    engine,
		OutputDir: *outputDir,
		Workers:   cfg.Workers,
		Metrics:   mset,
	})
	if err != nil {
		log.Fatal("Failed to create driver:", err)
	}

	stats, err := d.ProcessFile(ctx, *inputPath, *format)
	if err != nil {
		log.Fatalf("Processing stopped after %d chunks: %v", stats.Processed, err)
	}
	log.Printf("Done: %d processed, %d failed, %d entities, %d relations",
		stats.Processed, stats.Failed, stats.Entities, stats.Relations)
}
