// Package compound splits long Telugu tokens into sequences of known
// vocabulary words using a trie over the lexicon plus a dynamic-programming
// table of valid split points.
package compound

import (
	"github.com/granthika/telkg/pkg/telkg/lexicon"
	"github.com/granthika/telkg/pkg/telkg/script"
)

// Tokens at or below this rune count are never decomposed.
const minCompoundLength = 6

type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Segmenter enumerates the valid decompositions of a token into known
// sub-words. It is built once from the lexicon vocabulary and is read-only
// afterwards.
type Segmenter struct {
	// The trie stores each vocabulary word reversed, so scanning a token
	// backward from a split end-point walks a single trie path.
	root *trieNode
	lex  *lexicon.Store
}

// NewSegmenter builds a segmenter over the given vocabulary.
func NewSegmenter(vocabulary []string, lex *lexicon.Store) *Segmenter {
	s := &Segmenter{root: newTrieNode(), lex: lex}
	for _, word := range vocabulary {
		s.insert(word)
	}
	return s
}

func (s *Segmenter) insert(word string) {
	runes := []rune(word)
	node := s.root
	for i := len(runes) - 1; i >= 0; i-- {
		child, ok := node.children[runes[i]]
		if !ok {
			child = newTrieNode()
			node.children[runes[i]] = child
		}
		node = child
	}
	node.terminal = true
}

// Split returns every decomposition of token into vocabulary words whose
// components all pass validation, or [[token]] when none exists. Only tokens
// longer than 6 runes are attempted.
func (s *Segmenter) Split(token string) [][]string {
	if script.Length(token) <= minCompoundLength {
		return [][]string{{token}}
	}

	splits := s.enumerate(token)

	var valid [][]string
	for _, split := range splits {
		if len(split) < 2 {
			continue
		}
		ok := true
		for _, part := range split {
			if !s.validComponent(part) {
				ok = false
				break
			}
		}
		if ok {
			valid = append(valid, split)
		}
	}
	if len(valid) == 0 {
		return [][]string{{token}}
	}
	return valid
}

// enumerate fills the DP table: table[i] holds every way to decompose the
// first i runes into vocabulary words. For each end index the token is
// scanned backward along the reversed-word trie; a terminal node at start
// index j marks token[j:i] as a vocabulary word.
func (s *Segmenter) enumerate(token string) [][]string {
	runes := []rune(token)
	n := len(runes)

	table := make([][][]string, n+1)
	table[0] = [][]string{{}}

	for i := 1; i <= n; i++ {
		node := s.root
		for j := i - 1; j >= 0; j-- {
			child, ok := node.children[runes[j]]
			if !ok {
				break
			}
			node = child
			if node.terminal && len(table[j]) > 0 {
				word := string(runes[j:i])
				for _, prev := range table[j] {
					next := make([]string, len(prev), len(prev)+1)
					copy(next, prev)
					table[i] = append(table[i], append(next, word))
				}
			}
		}
	}

	return table[n]
}

// validComponent accepts parts of at least 2 runes that contain Telugu
// script and are not bare particles.
func (s *Segmenter) validComponent(part string) bool {
	if script.Length(part) < 2 {
		return false
	}
	if !script.HasTelugu(part) {
		return false
	}
	return !s.lex.IsStemParticle(part)
}
