package morph

import (
	"strings"

	"github.com/granthika/telkg/pkg/telkg/lexicon"
	"github.com/granthika/telkg/pkg/telkg/script"
)

// VerbAnalysis describes what the verb analyzer could determine about a
// token.
type VerbAnalysis struct {
	IsVerb     bool
	Tense      string
	Root       string
	Confidence float64
}

// VerbAnalyzer detects tense/aspect and extracts verb roots from conjugated
// forms, consulting the lexicon's verb-root set.
type VerbAnalyzer struct {
	lex *lexicon.Store
}

// NewVerbAnalyzer creates a verb analyzer backed by the given lexicon.
func NewVerbAnalyzer(lex *lexicon.Store) *VerbAnalyzer {
	return &VerbAnalyzer{lex: lex}
}

// DetectTenseAspect returns the tense whose marker matches the word ending
// with maximal marker length. On an exact length tie the earlier table entry
// wins.
func (v *VerbAnalyzer) DetectTenseAspect(word string) (string, bool) {
	bestTense := ""
	bestLen := 0
	for _, tm := range tenseMarkers {
		for _, marker := range tm.markers {
			if strings.HasSuffix(word, marker) && script.Length(marker) > bestLen {
				bestTense = tm.tense
				bestLen = script.Length(marker)
			}
		}
	}
	return bestTense, bestTense != ""
}

// ExtractRoot finds the verb root of a conjugated word. Known roots match
// through their documented variants: the root itself, the root with a final
// ఉ-sign elided, and the root with its final rune dropped when longer than 2
// runes. The longest matching variant wins. When no known root matches, the
// longest tense marker is stripped and the remainder returned if it is at
// least 2 runes.
func (v *VerbAnalyzer) ExtractRoot(word string) (string, bool) {
	bestRoot := ""
	bestLen := 0
	for root := range v.lex.VerbRoots() {
		for _, variant := range rootVariants(root) {
			if strings.HasPrefix(word, variant) && script.Length(variant) > bestLen {
				bestRoot = root
				bestLen = script.Length(variant)
				break
			}
		}
	}
	if bestRoot != "" {
		return bestRoot, true
	}

	longest := ""
	for _, tm := range tenseMarkers {
		for _, marker := range tm.markers {
			if strings.HasSuffix(word, marker) && script.Length(marker) > script.Length(longest) {
				longest = marker
			}
		}
	}
	if longest != "" {
		stem := strings.TrimSuffix(word, longest)
		if script.Length(stem) >= 2 {
			return stem, true
		}
	}
	return "", false
}

// rootVariants lists the surface variants a root may take before a tense
// marker.
func rootVariants(root string) []string {
	variants := []string{root}
	runes := []rune(root)
	if strings.HasSuffix(root, "ు") {
		variants = append(variants, strings.TrimSuffix(root, "ు"))
	}
	if len(runes) > 2 {
		trimmed := string(runes[:len(runes)-1])
		if trimmed != root && !contains(variants, trimmed) {
			variants = append(variants, trimmed)
		}
	}
	return variants
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Analyze combines tense detection and root extraction into a scored verb
// analysis. A recovered root scores 0.9, a bare tense match 0.7, and a
// merely verb-like shape 0.6.
func (v *VerbAnalyzer) Analyze(token string) VerbAnalysis {
	tense, hasTense := v.DetectTenseAspect(token)
	root, hasRoot := v.ExtractRoot(token)
	if hasRoot && script.Length(root) < 2 {
		root = ""
		hasRoot = false
	}

	confidence := 0.0
	switch {
	case hasRoot:
		confidence = 0.9
	case hasTense:
		confidence = 0.7
	case v.LooksLikeVerb(token):
		confidence = 0.6
	}

	return VerbAnalysis{
		IsVerb:     hasTense || hasRoot || confidence > 0.5,
		Tense:      tense,
		Root:       root,
		Confidence: confidence,
	}
}

// LooksLikeVerb applies the verb-likeness heuristic: exact verb endings,
// infix verb patterns, or a ఉ-sign final on a token longer than 3 runes that
// is not a known person name. Listed proper names are never verb-like, and
// person-override names additionally need an exact ending plus length > 5.
func (v *VerbAnalyzer) LooksLikeVerb(text string) bool {
	for _, name := range properNameExceptions {
		if text == name {
			return false
		}
	}

	hasEnding := false
	for _, ending := range verbLikeEndings {
		if strings.HasSuffix(text, ending) {
			hasEnding = true
			break
		}
	}

	if v.lex.IsPersonOverride(text) {
		return hasEnding && script.Length(text) > 5
	}
	if hasEnding {
		return true
	}

	for _, infix := range verbLikeInfixes {
		if strings.Contains(text, infix) {
			return true
		}
	}

	return strings.HasSuffix(text, "ు") && script.Length(text) > 3
}
