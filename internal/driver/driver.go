// Package driver streams large corpus files through the extraction engine:
// chunked reading, a bounded worker pool, incremental output, and crash-safe
// checkpointing so interrupted runs resume where they stopped.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/granthika/telkg/pkg/telkg"
	"github.com/granthika/telkg/pkg/telkg/metrics"
	"github.com/granthika/telkg/pkg/telkg/store"
)

const (
	checkpointFile  = "processing_checkpoint.json"
	checkpointEvery = 100

	// Chunks shorter than this carry no extractable content.
	minChunkBytes = 5
)

// Driver runs corpus files through an engine.
type Driver struct {
	engine    *telkg.Engine
	outputDir string
	workers   int
	metrics   *metrics.Set
	logger    *slog.Logger
}

// Options configures a Driver.
type Options struct {
	Engine    *telkg.Engine
	OutputDir string
	Workers   int
	Metrics   *metrics.Set
	Logger    *slog.Logger
}

// New creates a Driver and its output directory.
func New(opts Options) (*Driver, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("driver: engine is required")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, err
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		engine:    opts.Engine,
		outputDir: opts.OutputDir,
		workers:   opts.Workers,
		metrics:   opts.Metrics,
		logger:    logger.With("component", "driver"),
	}, nil
}

type indexed struct {
	idx  int
	id   string
	text string
}

type outcome struct {
	idx   int
	id    string
	graph store.Graph
	err   error
}

// ProcessFile runs one corpus file end to end, resuming from the checkpoint
// in the output directory if one exists. The reader stalls once the in-flight
// queue reaches four chunks per worker.
func (d *Driver) ProcessFile(ctx context.Context, inputPath, format string) (Stats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cpPath := filepath.Join(d.outputDir, checkpointFile)
	cp := loadCheckpoint(cpPath)
	startFrom := cp.LastProcessed + 1
	stats := cp.Stats
	if startFrom > 0 {
		d.logger.Info("resuming from checkpoint", "index", startFrom)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outPath := filepath.Join(d.outputDir, base+"_kg."+format)
	writer, err := NewStreamWriter(outPath, format, format == "jsonl" && startFrom > 0)
	if err != nil {
		return stats, err
	}
	defer writer.Close()

	queueCap := d.workers * 4
	docs := make(chan indexed, queueCap)
	results := make(chan outcome, queueCap)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(docs)
		idx := -1
		return forEachChunk(inputPath, func(id, text string) error {
			idx++
			if idx < startFrom || len(text) < minChunkBytes {
				return nil
			}
			select {
			case docs <- indexed{idx: idx, id: id, text: text}:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})

	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for doc := range docs {
				graph, err := d.engine.ProcessDoc(gctx, doc.id, doc.text)
				select {
				case results <- outcome{idx: doc.idx, id: doc.id, graph: graph, err: err}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	maxIdx := cp.LastProcessed
	var writeErr error
	for res := range results {
		if res.err != nil {
			stats.Failed++
			if d.metrics != nil {
				d.metrics.ProcessingErrors.Inc()
			}
			d.logger.Error("chunk failed", "doc_id", res.id, "error", res.err)
			continue
		}
		if err := writer.Write(res.graph); err != nil {
			writeErr = fmt.Errorf("write output: %w", err)
			cancel()
			break
		}

		stats.Processed++
		stats.Entities += len(res.graph.Entities)
		stats.Relations += len(res.graph.Relations)
		if res.idx > maxIdx {
			maxIdx = res.idx
		}

		if stats.Processed%checkpointEvery == 0 {
			if err := saveCheckpoint(cpPath, Checkpoint{LastProcessed: maxIdx, Stats: stats}); err != nil {
				d.logger.Warn("checkpoint save failed", "error", err)
			}
			d.logger.Info("progress",
				"processed", stats.Processed,
				"entities", stats.Entities,
				"relations", stats.Relations)
		}
	}

	groupErr := g.Wait()

	if err := saveCheckpoint(cpPath, Checkpoint{LastProcessed: maxIdx, Stats: stats}); err != nil {
		d.logger.Warn("checkpoint save failed", "error", err)
	}
	if writeErr != nil {
		return stats, writeErr
	}
	if groupErr != nil {
		return stats, groupErr
	}
	if err := writer.Close(); err != nil {
		return stats, err
	}

	d.logger.Info("corpus complete",
		"processed", stats.Processed,
		"failed", stats.Failed,
		"entities", stats.Entities,
		"relations", stats.Relations,
		"output", outPath)
	return stats, nil
}
