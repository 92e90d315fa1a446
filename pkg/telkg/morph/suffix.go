// Package morph provides suffix-table and verb morphology analysis for
// Telugu word forms: longest-match suffix classification, tense/aspect
// detection, and verb-root extraction.
package morph

import (
	"sort"
	"strings"

	"github.com/granthika/telkg/pkg/telkg/lexicon"
	"github.com/granthika/telkg/pkg/telkg/script"
)

// SuffixEntry is one row of the working suffix table.
type SuffixEntry struct {
	Suffix     string
	Category   string
	Confidence float64
	Meta       map[string]string
}

// SuffixAnalysis is the result of a successful suffix match.
type SuffixAnalysis struct {
	Stem       string
	Suffix     string
	Category   string
	Confidence float64
	Meta       map[string]string
}

// SuffixAnalyzer classifies word forms by their longest matching grammatical
// suffix.
type SuffixAnalyzer struct {
	entries []SuffixEntry
	lex     *lexicon.Store
}

// NewSuffixAnalyzer flattens the suffix table into a working list sorted by
// descending suffix length. The stable sort preserves registration order on
// equal lengths, which fixes the tie-break.
func NewSuffixAnalyzer(lex *lexicon.Store) *SuffixAnalyzer {
	var entries []SuffixEntry
	for _, cat := range suffixTable {
		for _, def := range cat.suffixes {
			entries = append(entries, SuffixEntry{
				Suffix:     def.suffix,
				Category:   cat.category,
				Confidence: suffixConfidence(cat.category, def.meta),
				Meta:       def.meta,
			})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return script.Length(entries[i].Suffix) > script.Length(entries[j].Suffix)
	})
	return &SuffixAnalyzer{entries: entries, lex: lex}
}

// Analyze returns the longest-suffix match for token, or false when no
// suffix yields a valid stem. A candidate stem must be at least 2 runes and
// must not itself be a particle.
func (a *SuffixAnalyzer) Analyze(token string) (SuffixAnalysis, bool) {
	// Entries are sorted longest-first, so the first accepted candidate has
	// maximal suffix length.
	for _, e := range a.entries {
		if !strings.HasSuffix(token, e.Suffix) {
			continue
		}
		stem := strings.TrimSuffix(token, e.Suffix)
		if script.Length(stem) < 2 || a.lex.IsStemParticle(stem) {
			continue
		}
		return SuffixAnalysis{
			Stem:       stem,
			Suffix:     e.Suffix,
			Category:   e.Category,
			Confidence: e.Confidence,
			Meta:       e.Meta,
		}, true
	}
	return SuffixAnalysis{}, false
}

// Entries exposes the working suffix table, longest suffix first.
func (a *SuffixAnalyzer) Entries() []SuffixEntry {
	return a.entries
}
