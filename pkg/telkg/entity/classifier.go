package entity

import (
	"log/slog"
	"sync"

	"github.com/granthika/telkg/pkg/telkg/compound"
	"github.com/granthika/telkg/pkg/telkg/config"
	"github.com/granthika/telkg/pkg/telkg/lexicon"
	"github.com/granthika/telkg/pkg/telkg/morph"
	"github.com/granthika/telkg/pkg/telkg/script"
)

// Confidence constants of the gazetteer cascade. Overrides win over
// morphology; their scores are fixed, not configured.
const (
	overrideConfidence = 0.95
	orgConfidence      = 0.90
	temporalConfidence = 0.85
	abstractConfidence = 0.80
	artifactConfidence = 0.85
	natureConfidence   = 0.85

	baseConfidence    = 0.50
	unknownPenalty    = 0.70
	exceptionStemConf = 0.95

	personBonus   = 0.20
	placeBonus    = 0.15
	categoryBonus = 0.10
)

type cacheKey struct {
	text     string
	position int
}

// Classifier extracts entity mentions and assigns types through a rule
// cascade: gazetteer overrides first, then morphology-driven inference.
// It is safe for concurrent use.
type Classifier struct {
	lex      *lexicon.Store
	suffixes *morph.SuffixAnalyzer
	verbs    *morph.VerbAnalyzer
	splitter *compound.Segmenter
	cfg      config.Config
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[cacheKey]Record
}

// NewClassifier builds a classifier and its analyzers on top of the given
// lexicon.
func NewClassifier(lex *lexicon.Store, cfg config.Config, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		lex:      lex,
		suffixes: morph.NewSuffixAnalyzer(lex),
		verbs:    morph.NewVerbAnalyzer(lex),
		splitter: compound.NewSegmenter(lex.Vocabulary(), lex),
		cfg:      cfg,
		logger:   logger.With("component", "entity"),
		cache:    make(map[cacheKey]Record),
	}
}

// ExtractEntities tokenizes text and classifies each analyzable token.
// Records below the configured minimum confidence are dropped.
func (c *Classifier) ExtractEntities(text string) []Record {
	tokens := script.Tokenize(text)

	var out []Record
	for pos, tok := range tokens {
		if !analyzable(c.lex, tok) {
			continue
		}
		rec, ok := c.classify(tok, pos)
		if !ok {
			continue
		}
		if rec.Confidence < c.cfg.MinConfidence {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// analyzable filters out tokens the classifier has nothing to say about:
// too short, non-Telugu, punctuation, or standalone particles.
func analyzable(lex *lexicon.Store, tok string) bool {
	if script.Length(tok) < 2 {
		return false
	}
	if !script.HasTelugu(tok) || script.HasPunct(tok) {
		return false
	}
	return !lex.IsParticle(tok)
}

func (c *Classifier) classify(tok string, pos int) (Record, bool) {
	key := cacheKey{tok, pos}
	c.mu.Lock()
	if rec, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return rec, true
	}
	c.mu.Unlock()

	if c.lex.IsCommonWord(tok) {
		return Record{}, false
	}

	rec, ok := c.tryOverrides(tok, pos)
	if !ok {
		rec = c.analyze(tok, pos)
	}

	c.mu.Lock()
	if len(c.cache) < c.cfg.MaxCacheSize {
		c.cache[key] = rec
	}
	c.mu.Unlock()
	return rec, true
}

// tryOverrides is the fast gazetteer path: a confident list hit skips
// morphological analysis entirely.
func (c *Classifier) tryOverrides(tok string, pos int) (Record, bool) {
	n := script.Length(tok)

	switch {
	case (c.lex.IsPersonOverride(tok) || c.lex.IsPersonWord(tok)) &&
		n > 2 && !c.verbs.LooksLikeVerb(tok):
		return Record{
			Text: tok, Position: pos,
			Type: TypePerson, Confidence: overrideConfidence,
			IsProperName: true,
		}, true
	case n > 2:
		if subtype, ok := c.lex.PlaceType(tok); ok {
			return Record{
				Text: tok, Position: pos,
				Type: subtype, Confidence: overrideConfidence,
				IsProperName: true,
			}, true
		}
	}

	switch {
	case c.lex.IsOrgWord(tok) && n > 3:
		return Record{Text: tok, Position: pos, Type: TypeOrganization, Confidence: orgConfidence}, true
	case c.lex.IsTemporalWord(tok) && n > 2:
		return Record{Text: tok, Position: pos, Type: TypeTemporal, Confidence: temporalConfidence}, true
	case c.lex.IsAbstractWord(tok) && n > 2:
		return Record{Text: tok, Position: pos, Type: TypeAbstract, Confidence: abstractConfidence}, true
	case c.lex.IsArtifactWord(tok) && n > 2:
		return Record{Text: tok, Position: pos, Type: TypeArtifact, Confidence: artifactConfidence}, true
	case c.lex.IsNatureWord(tok) && n > 2:
		return Record{Text: tok, Position: pos, Type: TypeNature, Confidence: natureConfidence}, true
	}
	return Record{}, false
}

// analyze is the slow path: suffix stripping, compound segmentation, verb
// morphology, then type inference and confidence scoring.
func (c *Classifier) analyze(tok string, pos int) Record {
	rec := Record{Text: tok, Position: pos}

	if stem, suffix, ok := c.lex.Exception(tok); ok {
		rec.Morphology = Morphology{
			Stem:           stem,
			Suffix:         suffix,
			Confidence:     exceptionStemConf,
			IsInflected:    true,
			KnownException: true,
		}
	} else if sa, ok := c.suffixes.Analyze(tok); ok {
		rec.Morphology = Morphology{
			Stem:        sa.Stem,
			Suffix:      sa.Suffix,
			Category:    sa.Category,
			Confidence:  sa.Confidence,
			Meta:        sa.Meta,
			IsInflected: true,
		}
	}

	if c.cfg.EnableCompoundSplitting {
		rec.CompoundSplits = c.splitter.Split(tok)
	}
	if c.cfg.EnableVerbMorphology {
		va := c.verbs.Analyze(tok)
		rec.Verb = VerbInfo{
			IsVerb:     va.IsVerb,
			Tense:      va.Tense,
			Root:       va.Root,
			Confidence: va.Confidence,
		}
	}

	rec.Type = c.inferType(&rec)
	rec.Confidence = c.score(&rec)
	return rec
}

// inferType runs the inference cascade in fixed order: verb evidence,
// gazetteer membership of the surface form, then suffix category.
func (c *Classifier) inferType(rec *Record) string {
	tok := rec.Text
	n := script.Length(tok)

	if rec.Verb.IsVerb && rec.Verb.Confidence > 0.7 {
		return TypeVerb
	}
	if (c.lex.IsPersonOverride(tok) || c.lex.IsPersonWord(tok)) && !c.verbs.LooksLikeVerb(tok) {
		rec.IsProperName = true
		return TypePerson
	}
	if subtype, ok := c.lex.PlaceType(tok); ok {
		rec.IsProperName = true
		return subtype
	}
	switch {
	case c.lex.IsOrgWord(tok) && n > 3:
		return TypeOrganization
	case c.lex.IsTemporalWord(tok):
		return TypeTemporal
	case c.lex.IsAbstractWord(tok):
		return TypeAbstract
	case c.lex.IsArtifactWord(tok):
		return TypeArtifact
	case c.lex.IsNatureWord(tok):
		return TypeNature
	}

	switch rec.Morphology.Category {
	case "place":
		return TypePlace
	case "verbal":
		return TypeVerbDerived
	case "temporal":
		return TypeTemporal
	default:
		return TypeNoun
	}
}

// score combines morphology confidence with gazetteer bonuses. Each bonus
// has its own cap; unknown types are penalized.
func (c *Classifier) score(rec *Record) float64 {
	tok := rec.Text
	n := script.Length(tok)

	conf := baseConfidence
	if rec.Morphology.Confidence > conf {
		conf = rec.Morphology.Confidence
	}
	if rec.Verb.IsVerb && rec.Verb.Confidence > conf {
		conf = rec.Verb.Confidence
	}

	capAt := func(v, limit float64) float64 {
		if v > limit {
			return limit
		}
		return v
	}
	switch {
	case (c.lex.IsPersonOverride(tok) || c.lex.IsPersonWord(tok)) && n > 2:
		conf = capAt(conf+personBonus, 0.95)
	case n > 2 && isPlaceOverride(c.lex, tok):
		conf = capAt(conf+placeBonus, 0.95)
	case c.lex.IsOrgWord(tok) && n > 3:
		conf = capAt(conf+categoryBonus, 0.90)
	case c.lex.IsTemporalWord(tok) && n > 2:
		conf = capAt(conf+categoryBonus, 0.85)
	case c.lex.IsArtifactWord(tok) && n > 2:
		conf = capAt(conf+categoryBonus, 0.85)
	}

	if rec.Type == TypeUnknown {
		conf *= unknownPenalty
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

func isPlaceOverride(lex *lexicon.Store, tok string) bool {
	_, ok := lex.PlaceType(tok)
	return ok
}

// CacheSize returns the number of cached classifications.
func (c *Classifier) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// ClearCache drops all cached classifications.
func (c *Classifier) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[cacheKey]Record)
}
