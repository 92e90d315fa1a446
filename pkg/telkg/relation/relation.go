// Package relation turns classified entity mentions into graph edges.
// Pattern matching over consecutive mentions is the primary strategy; a
// conservative co-occurrence pass adds weak proximity edges as a fallback.
package relation

import (
	"log/slog"
	"strings"

	"github.com/granthika/telkg/pkg/telkg/config"
	"github.com/granthika/telkg/pkg/telkg/entity"
	"github.com/granthika/telkg/pkg/telkg/script"
)

// contextWindow is the token radius captured around a relation's source.
const contextWindow = 3

// cooccurrenceConfidence is the fixed score of proximity-only edges.
const cooccurrenceConfidence = 0.3

// Record is one extracted relation.
type Record struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	SourceType string  `json:"source_type,omitempty"`
	TargetType string  `json:"target_type,omitempty"`
	Type       string  `json:"relation_type"`
	Confidence float64 `json:"confidence"`
	Pattern    string  `json:"pattern"`
	Syntax     string  `json:"syntax,omitempty"`
	Context    string  `json:"context,omitempty"`
	Evidence   string  `json:"evidence"`
	Distance   int     `json:"distance,omitempty"`
}

// Matcher extracts relations from entity mention sequences.
type Matcher struct {
	cfg      config.Config
	patterns []Pattern
	logger   *slog.Logger
}

// NewMatcher creates a matcher with the built-in Telugu pattern set.
func NewMatcher(cfg config.Config, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{
		cfg:      cfg,
		patterns: builtinPatterns(),
		logger:   logger.With("component", "relation"),
	}
}

// AddPattern appends a custom pattern, matched after the built-ins.
func (m *Matcher) AddPattern(p Pattern) { m.patterns = append(m.patterns, p) }

// Extract returns the deduplicated relations found among the given entity
// mentions. Mentions below the relation threshold, of unknown type, or a
// single rune long are ignored.
func (m *Matcher) Extract(entities []entity.Record, text string) []Record {
	filtered := make([]entity.Record, 0, len(entities))
	for _, e := range entities {
		if e.Confidence <= m.cfg.RelationThreshold {
			continue
		}
		if e.Type == entity.TypeUnknown || script.Length(e.Text) <= 1 {
			continue
		}
		filtered = append(filtered, e)
	}
	if len(filtered) < 2 {
		return nil
	}

	tokens := script.Tokenize(text)

	var relations []Record
	relations = append(relations, m.matchPatterns(filtered, tokens)...)
	relations = append(relations, m.cooccurrence(filtered)...)
	return dedupe(relations)
}

// matchPatterns slides each pattern over consecutive mention windows.
func (m *Matcher) matchPatterns(entities []entity.Record, tokens []string) []Record {
	var out []Record
	for _, p := range m.patterns {
		if len(entities) < len(p.Elements) {
			continue
		}
		for i := 0; i+len(p.Elements) <= len(entities); i++ {
			window := entities[i : i+len(p.Elements)]
			if !matches(window, p) {
				continue
			}
			rec, ok := bindRoles(window, p, tokens)
			if !ok {
				continue
			}
			if rec.Confidence >= m.cfg.MinConfidence {
				out = append(out, rec)
			}
		}
	}
	return out
}

// matches checks one mention window against one pattern: type equality,
// literal text, confidence of required literals, and span distance.
func matches(window []entity.Record, p Pattern) bool {
	for k, el := range p.Elements {
		e := window[k]
		if el.Type != "" && e.Type != el.Type {
			return false
		}
		if el.Text != "" {
			if e.Text != el.Text {
				return false
			}
			if el.Required && e.Confidence < 0.8 {
				return false
			}
		}
	}
	if p.MaxDistance > 0 && len(window) > 1 {
		lo, hi := window[0].Position, window[0].Position
		for _, e := range window[1:] {
			if e.Position < lo {
				lo = e.Position
			}
			if e.Position > hi {
				hi = e.Position
			}
		}
		if hi-lo > p.MaxDistance {
			return false
		}
	}
	return true
}

// bindRoles picks the source and target mentions by role and builds the
// relation record. Patterns whose window binds no source or no target
// produce nothing.
func bindRoles(window []entity.Record, p Pattern, tokens []string) (Record, bool) {
	var source, target *entity.Record
	for k := range window {
		role := p.Elements[k].Role
		switch {
		case sourceRoles[role]:
			source = &window[k]
		case targetRoles[role]:
			target = &window[k]
		}
	}
	if source == nil || target == nil {
		return Record{}, false
	}

	syntax := p.Syntax
	if syntax == "" {
		syntax = "unknown"
	}
	return Record{
		Source:     source.Text,
		Target:     target.Text,
		SourceType: source.Type,
		TargetType: target.Type,
		Type:       p.Relation,
		Confidence: p.Confidence,
		Pattern:    p.Name,
		Syntax:     syntax,
		Context:    contextAround(tokens, source.Position),
		Evidence:   "pattern_matching",
	}, true
}

// cooccurrence links close, type-compatible mention pairs with a weak edge.
func (m *Matcher) cooccurrence(entities []entity.Record) []Record {
	var out []Record
	for i := range entities {
		for j := i + 1; j < len(entities); j++ {
			dist := entities[j].Position - entities[i].Position
			if dist < 0 {
				dist = -dist
			}
			if dist > m.cfg.MaxRelationDistance {
				continue
			}
			if !typesCompatible(entities[i].Type, entities[j].Type) {
				continue
			}
			out = append(out, Record{
				Source:     entities[i].Text,
				Target:     entities[j].Text,
				SourceType: entities[i].Type,
				TargetType: entities[j].Type,
				Type:       "possibly_related_to",
				Confidence: cooccurrenceConfidence,
				Pattern:    "conservative_cooccurrence",
				Evidence:   "proximity",
				Distance:   dist,
			})
		}
	}
	return out
}

func contextAround(tokens []string, position int) string {
	start := position - contextWindow
	if start < 0 {
		start = 0
	}
	end := position + contextWindow + 1
	if end > len(tokens) {
		end = len(tokens)
	}
	if start >= end {
		return ""
	}
	return strings.Join(tokens[start:end], " ")
}

// dedupe keeps the highest-confidence relation per (source, target, type),
// preserving first-seen order.
func dedupe(relations []Record) []Record {
	type key struct{ source, target, rtype string }
	index := make(map[key]int, len(relations))
	var out []Record
	for _, rel := range relations {
		k := key{rel.Source, rel.Target, rel.Type}
		if at, seen := index[k]; seen {
			if rel.Confidence > out[at].Confidence {
				out[at] = rel
			}
			continue
		}
		index[k] = len(out)
		out = append(out, rel)
	}
	return out
}
