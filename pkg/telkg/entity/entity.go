// Package entity extracts and classifies Telugu entity mentions from text.
// Classification is a rule cascade over the lexicon's gazetteers and the
// morphology analyzers; no statistical model is involved.
package entity

import "strings"

// Entity type labels. Place names carry a subtype such as "place_city" or
// "place_temple"; use IsPlaceType to test for the family.
const (
	TypePerson       = "person"
	TypePlace        = "place"
	TypeOrganization = "organization"
	TypeTemporal     = "temporal"
	TypeAbstract     = "abstract"
	TypeArtifact     = "artifact"
	TypeNature       = "nature"
	TypeNoun         = "noun"
	TypeVerb         = "verb"
	TypeVerbDerived  = "verb_derived"
	TypeUnknown      = "unknown"
)

// IsPlaceType reports whether t is the place type or one of its subtypes.
func IsPlaceType(t string) bool {
	return t == TypePlace || strings.HasPrefix(t, "place_")
}

// Morphology carries the suffix analysis attached to an entity record.
type Morphology struct {
	Stem           string            `json:"stem,omitempty"`
	Suffix         string            `json:"suffix,omitempty"`
	Category       string            `json:"suffix_category,omitempty"`
	Confidence     float64           `json:"suffix_confidence,omitempty"`
	Meta           map[string]string `json:"suffix_meta,omitempty"`
	IsInflected    bool              `json:"is_inflected,omitempty"`
	KnownException bool              `json:"known_exception,omitempty"`
}

// VerbInfo carries the verb analysis attached to an entity record.
type VerbInfo struct {
	IsVerb     bool    `json:"is_verb,omitempty"`
	Tense      string  `json:"tense,omitempty"`
	Root       string  `json:"root,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Record is one classified entity mention.
type Record struct {
	Text         string     `json:"text"`
	Position     int        `json:"position"`
	Type         string     `json:"entity_type"`
	Confidence   float64    `json:"confidence"`
	IsProperName bool       `json:"is_proper_name,omitempty"`
	Morphology   Morphology `json:"morphology"`
	Verb         VerbInfo   `json:"verb,omitempty"`

	// CompoundSplits holds the candidate segmentations of the surface form;
	// a single entry containing only the token means no split was found.
	CompoundSplits [][]string `json:"compound_splits,omitempty"`
}

// Extractor is the entity-extraction surface consumed by the relation
// matcher and the pipeline facade.
type Extractor interface {
	ExtractEntities(text string) []Record
}
