package compound

import (
	"strings"
	"testing"

	"github.com/granthika/telkg/pkg/telkg/lexicon"
)

func TestSplitShortTokenUnchanged(t *testing.T) {
	s := NewSegmenter([]string{"రామ", "బాణం"}, lexicon.New())

	got := s.Split("రామ")
	if len(got) != 1 || len(got[0]) != 1 || got[0][0] != "రామ" {
		t.Errorf("Split(రామ) = %v, want [[రామ]]", got)
	}
}

func TestSplitFindsKnownComponents(t *testing.T) {
	lex := lexicon.New()
	s := NewSegmenter([]string{"రామ", "బాణము"}, lex)

	got := s.Split("రామబాణము")
	want := []string{"రామ", "బాణము"}

	found := false
	for _, split := range got {
		if len(split) == 2 && split[0] == want[0] && split[1] == want[1] {
			found = true
		}
	}
	if !found {
		t.Errorf("Split(రామబాణము) = %v, want a [రామ బాణము] split", got)
	}
}

func TestSplitConcatenationInvariant(t *testing.T) {
	lex := lexicon.New()
	s := NewSegmenter([]string{"రామ", "బాణము", "రామబా"}, lex)

	token := "రామబాణము"
	for _, split := range s.Split(token) {
		if joined := strings.Join(split, ""); joined != token {
			t.Errorf("split %v concatenates to %q, want %q", split, joined, token)
		}
	}
}

func TestSplitFallsBackWhenNoDecomposition(t *testing.T) {
	s := NewSegmenter([]string{"రామ"}, lexicon.New())

	token := "అఆఇఈఉఊఎఏఐ"
	got := s.Split(token)
	if len(got) != 1 || len(got[0]) != 1 || got[0][0] != token {
		t.Errorf("Split(%q) = %v, want identity fallback", token, got)
	}
}

func TestSplitRejectsParticleComponents(t *testing.T) {
	lex := lexicon.New()
	// లో is a stem particle; a decomposition ending in it must not be
	// offered even though the trie contains it.
	s := NewSegmenter([]string{"పుస్తకము", "లో"}, lex)

	got := s.Split("పుస్తకములో")
	for _, split := range got {
		for _, part := range split {
			if part == "లో" {
				t.Errorf("particle component leaked into split %v", split)
			}
		}
	}
}

func TestSplitRequiresMultipleParts(t *testing.T) {
	// The whole token itself is in the vocabulary; a single-word
	// "decomposition" is not a compound split.
	s := NewSegmenter([]string{"రామబాణము"}, lexicon.New())

	got := s.Split("రామబాణము")
	if len(got) != 1 || len(got[0]) != 1 || got[0][0] != "రామబాణము" {
		t.Errorf("Split = %v, want identity fallback for single-word match", got)
	}
}
