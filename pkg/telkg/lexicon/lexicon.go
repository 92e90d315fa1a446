// Package lexicon holds the shared lexical tables consulted by every
// analyzer in the pipeline: verb roots, known inflected-form stems, gazetteer
// word sets, and the override/exclusion tables for classification.
//
// A Store is populated once at pipeline-build time and read concurrently
// during analysis. The Add methods mutate in place and are meant for the
// setup phase; mutation during concurrent analysis is unsupported.
package lexicon

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store is the lexicon shared across pipeline components.
type Store struct {
	verbRoots  map[string]struct{}
	knownStems map[string]string

	personOverride map[string]struct{}
	placeOverride  map[string]string // surface → place subtype
	exceptions     map[string][2]string

	personWords   map[string]struct{}
	placeWords    map[string]struct{}
	orgWords      map[string]struct{}
	temporalWords map[string]struct{}
	abstractWords map[string]struct{}
	artifactWords map[string]struct{}
	natureWords   map[string]struct{}

	commonWords   map[string]struct{}
	particles     map[string]struct{}
	stemParticles map[string]struct{}
}

// New creates a Store seeded with the built-in tables.
func New() *Store {
	s := &Store{
		verbRoots:      make(map[string]struct{}, len(builtinVerbRoots)),
		knownStems:     make(map[string]string, len(builtinKnownStems)),
		personOverride: make(map[string]struct{}, len(builtinPersonOverride)),
		placeOverride:  make(map[string]string, len(builtinPlaceOverride)),
		exceptions:     make(map[string][2]string, len(builtinExceptions)),
		personWords:    make(map[string]struct{}),
		placeWords:     make(map[string]struct{}),
		orgWords:       make(map[string]struct{}),
		temporalWords:  make(map[string]struct{}),
		abstractWords:  make(map[string]struct{}),
		artifactWords:  make(map[string]struct{}),
		natureWords:    make(map[string]struct{}),
		commonWords:    make(map[string]struct{}, len(builtinCommonWords)),
		particles:      make(map[string]struct{}, len(builtinParticles)),
		stemParticles:  make(map[string]struct{}, len(builtinStemParticles)),
	}

	for _, r := range builtinVerbRoots {
		s.verbRoots[r] = struct{}{}
	}
	for surface, stem := range builtinKnownStems {
		s.knownStems[surface] = stem
	}
	for _, p := range builtinPersonOverride {
		s.personOverride[p] = struct{}{}
	}
	for place, subtype := range builtinPlaceOverride {
		s.placeOverride[place] = subtype
	}
	for surface, split := range builtinExceptions {
		s.exceptions[surface] = split
	}
	for _, w := range builtinCommonWords {
		s.commonWords[w] = struct{}{}
	}
	for _, w := range builtinParticles {
		s.particles[w] = struct{}{}
	}
	for _, w := range builtinStemParticles {
		s.stemParticles[w] = struct{}{}
	}

	return s
}

// NewFromFiles creates a Store, replacing the built-in verb roots and known
// stems with the contents of the given files when they load cleanly. A
// missing or malformed file is logged and the built-in table kept; loading
// never fails.
func NewFromFiles(verbRootsPath, stemsPath string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := New()

	if verbRootsPath != "" {
		if err := s.LoadVerbRoots(verbRootsPath); err != nil {
			logger.Warn("loading verb roots failed, keeping built-in table",
				"path", verbRootsPath, "error", err)
		}
	}
	if stemsPath != "" {
		if err := s.LoadStems(stemsPath); err != nil {
			logger.Warn("loading known stems failed, keeping built-in table",
				"path", stemsPath, "error", err)
		}
	}
	return s
}

// LoadVerbRoots replaces the verb-root set with the newline-delimited list
// in the given file. Blank lines and lines starting with # are skipped.
func (s *Store) LoadVerbRoots(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	roots := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		roots[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	s.verbRoots = roots
	return nil
}

// LoadStems replaces the known-stem map with the surface-form → stem mapping
// in the given YAML file.
func (s *Store) LoadStems(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	stems := make(map[string]string)
	if err := yaml.Unmarshal(data, &stems); err != nil {
		return err
	}

	s.knownStems = stems
	return nil
}

// VerbRoots returns the verb-root set. Callers must not mutate it.
func (s *Store) VerbRoots() map[string]struct{} { return s.verbRoots }

// KnownStems returns the surface-form → stem map. Callers must not mutate it.
func (s *Store) KnownStems() map[string]string { return s.knownStems }

// AddVerbRoot adds a verb root, visible to subsequent lookups immediately.
func (s *Store) AddVerbRoot(root string) { s.verbRoots[root] = struct{}{} }

// AddKnownStem adds a surface-form → stem mapping.
func (s *Store) AddKnownStem(surface, stem string) { s.knownStems[surface] = stem }

// IsVerbRoot reports whether w is a known verb root.
func (s *Store) IsVerbRoot(w string) bool {
	_, ok := s.verbRoots[w]
	return ok
}

// Stem returns the known stem for an inflected surface form.
func (s *Store) Stem(surface string) (string, bool) {
	stem, ok := s.knownStems[surface]
	return stem, ok
}

// IsPersonOverride reports whether w is a known proper name.
func (s *Store) IsPersonOverride(w string) bool {
	_, ok := s.personOverride[w]
	return ok
}

// PlaceType returns the place subtype for a known place name.
func (s *Store) PlaceType(w string) (string, bool) {
	t, ok := s.placeOverride[w]
	return t, ok
}

// Exception returns the stem and suffix for surface forms whose segmentation
// is listed explicitly.
func (s *Store) Exception(surface string) (stem, suffix string, ok bool) {
	split, ok := s.exceptions[surface]
	if !ok {
		return "", "", false
	}
	return split[0], split[1], true
}

// Gazetteer membership checks, one per word-list category.

func (s *Store) IsPersonWord(w string) bool   { _, ok := s.personWords[w]; return ok }
func (s *Store) IsPlaceWord(w string) bool    { _, ok := s.placeWords[w]; return ok }
func (s *Store) IsOrgWord(w string) bool      { _, ok := s.orgWords[w]; return ok }
func (s *Store) IsTemporalWord(w string) bool { _, ok := s.temporalWords[w]; return ok }
func (s *Store) IsAbstractWord(w string) bool { _, ok := s.abstractWords[w]; return ok }
func (s *Store) IsArtifactWord(w string) bool { _, ok := s.artifactWords[w]; return ok }
func (s *Store) IsNatureWord(w string) bool   { _, ok := s.natureWords[w]; return ok }

// Gazetteer add operations.

func (s *Store) AddPerson(w string)       { s.personWords[w] = struct{}{} }
func (s *Store) AddPlaceWord(w string)    { s.placeWords[w] = struct{}{} }
func (s *Store) AddOrganization(w string) { s.orgWords[w] = struct{}{} }
func (s *Store) AddTemporal(w string)     { s.temporalWords[w] = struct{}{} }
func (s *Store) AddAbstract(w string)     { s.abstractWords[w] = struct{}{} }
func (s *Store) AddArtifact(w string)     { s.artifactWords[w] = struct{}{} }
func (s *Store) AddNature(w string)       { s.natureWords[w] = struct{}{} }

// AddPersonOverride registers a proper name that always classifies as person.
func (s *Store) AddPersonOverride(name string) { s.personOverride[name] = struct{}{} }

// AddPlaceOverride registers a place name with its subtype.
func (s *Store) AddPlaceOverride(name, subtype string) { s.placeOverride[name] = subtype }

// IsCommonWord reports whether w is in the common-word exclusion set.
func (s *Store) IsCommonWord(w string) bool {
	_, ok := s.commonWords[w]
	return ok
}

// IsParticle reports whether w is a standalone particle or conjunction.
func (s *Store) IsParticle(w string) bool {
	_, ok := s.particles[w]
	return ok
}

// IsStemParticle reports whether w is disallowed as a stripped stem or
// compound component.
func (s *Store) IsStemParticle(w string) bool {
	_, ok := s.stemParticles[w]
	return ok
}

// Vocabulary returns the word set the compound segmenter is built from:
// known-stem surface forms, verb roots, and the gazetteer override names.
func (s *Store) Vocabulary() []string {
	seen := make(map[string]struct{})
	var words []string
	add := func(w string) {
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}

	for surface := range s.knownStems {
		add(surface)
	}
	for root := range s.verbRoots {
		add(root)
	}
	for name := range s.personOverride {
		add(name)
	}
	for name := range s.placeOverride {
		add(name)
	}
	return words
}
