// Package telkg is the Telugu knowledge-graph extraction engine facade. It
// wires the lexicon, the morphology analyzers, the sandhi engine, and the
// relation matcher into a single document pipeline.
package telkg

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/granthika/telkg/pkg/telkg/config"
	"github.com/granthika/telkg/pkg/telkg/entity"
	"github.com/granthika/telkg/pkg/telkg/internalerr"
	"github.com/granthika/telkg/pkg/telkg/lexicon"
	"github.com/granthika/telkg/pkg/telkg/metrics"
	"github.com/granthika/telkg/pkg/telkg/relation"
	"github.com/granthika/telkg/pkg/telkg/sandhi"
	"github.com/granthika/telkg/pkg/telkg/store"
)

// Engine is the document-processing facade.
type Engine struct {
	cfg       config.Config
	lexicon   *lexicon.Store
	extractor entity.Extractor
	relations *relation.Matcher
	sandhi    *sandhi.Engine
	store     store.Store
	metrics   *metrics.Set
	logger    *slog.Logger
}

// Options configures an Engine. Zero-value fields get defaults: a built-in
// lexicon, the rule-based classifier, no persistence, no metrics.
type Options struct {
	Config    config.Config
	Lexicon   *lexicon.Store
	Extractor entity.Extractor
	Store     store.Store
	Metrics   *metrics.Set
	Logger    *slog.Logger
}

// New creates an Engine with the given dependencies.
func New(opts Options) (*Engine, error) {
	cfg := opts.Config
	if cfg == (config.Config{}) {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.NewFromFiles(cfg.VerbRootsPath, cfg.StemsPath, logger)
	}

	extractor := opts.Extractor
	if extractor == nil {
		extractor = entity.NewClassifier(lex, cfg, logger)
	}

	mode, err := sandhi.ParseMode(cfg.SandhiMode)
	if err != nil {
		return nil, err
	}
	eng, err := sandhi.New(mode)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:       cfg,
		lexicon:   lex,
		extractor: extractor,
		relations: relation.NewMatcher(cfg, logger),
		sandhi:    eng,
		store:     opts.Store,
		metrics:   opts.Metrics,
		logger:    logger.With("component", "engine"),
	}, nil
}

// Close releases the engine's resources.
func (e *Engine) Close() error {
	if e.store != nil {
		return e.store.Close()
	}
	return nil
}

// Lexicon returns the engine's lexicon for setup-time additions.
func (e *Engine) Lexicon() *lexicon.Store { return e.lexicon }

// Sandhi returns the engine's sandhi engine.
func (e *Engine) Sandhi() *sandhi.Engine { return e.sandhi }

// Process extracts the knowledge graph of one document under a fresh ULID
// document ID. The graph is saved to the configured store when one is
// present.
func (e *Engine) Process(ctx context.Context, text string) (store.Graph, error) {
	return e.ProcessDoc(ctx, ulid.Make().String(), text)
}

// ProcessDoc is Process with a caller-chosen document ID.
func (e *Engine) ProcessDoc(ctx context.Context, docID, text string) (store.Graph, error) {
	if strings.TrimSpace(text) == "" {
		return store.Graph{}, internalerr.ErrEmptyInput
	}
	if len(text) > e.cfg.MaxDocumentSizeMB<<20 {
		return store.Graph{}, fmt.Errorf("%w: %d bytes exceeds %d MB",
			internalerr.ErrDocumentTooLarge, len(text), e.cfg.MaxDocumentSizeMB)
	}
	if err := ctx.Err(); err != nil {
		return store.Graph{}, err
	}

	start := time.Now()
	entities := e.extractor.ExtractEntities(text)
	relations := e.relations.Extract(entities, text)
	elapsed := time.Since(start)

	g := store.Graph{
		DocID:     docID,
		Entities:  entities,
		Relations: relations,
		Metadata: store.Metadata{
			ProcessingTime: elapsed,
			EntityCount:    len(entities),
			RelationCount:  len(relations),
			TextLength:     len([]rune(text)),
			CreatedAt:      time.Now().UTC(),
		},
	}

	if e.metrics != nil {
		e.metrics.ObserveDocument(len(entities), len(relations), elapsed)
		e.metrics.SandhiCacheHitRate.Set(e.sandhi.CacheStats().HitRate)
	}

	if e.store != nil {
		if err := e.store.SaveGraph(ctx, g); err != nil {
			return store.Graph{}, fmt.Errorf("save graph: %w", err)
		}
	}

	e.logger.Debug("document processed",
		"doc_id", g.DocID,
		"entities", len(entities),
		"relations", len(relations),
		"elapsed", elapsed)
	return g, nil
}

// JoinWords returns the sandhi junction candidates for a word pair.
func (e *Engine) JoinWords(first, second string) []string {
	return e.sandhi.Join(first, second)
}

// ClearCaches drops the classifier and sandhi caches.
func (e *Engine) ClearCaches() {
	if c, ok := e.extractor.(*entity.Classifier); ok {
		c.ClearCache()
	}
	e.sandhi.ClearCache()
}
