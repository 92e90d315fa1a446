// Package script provides Telugu script classification helpers and the
// script-aware tokenizer used by the analysis pipeline. Tokens are produced
// by segmenting on script boundaries, digit runs, punctuation, and
// whitespace; Telugu runs stay intact so downstream morphology sees whole
// orthographic words.
package script

import (
	"strings"
	"unicode"
)

// Telugu Unicode block bounds.
const (
	blockStart = 0x0C00
	blockEnd   = 0x0C7F
)

// Vowel sign (matra) range within the Telugu block.
const (
	matraStart = 0x0C3E
	matraEnd   = 0x0C56
)

// Independent vowel letters.
const vowelLetters = "అఆఇఈఉఊఋఌఎఏఐఒఓఔ"

// Consonant letters.
const consonantLetters = "కఖగఘఙచఛజఝఞటఠడఢణతథదధనపఫబభమయరలవశషసహళ"

// Vowel signs that written words commonly end with. A word ending in one of
// these is phonetically vowel-final even though the rune is a combining sign.
const vowelMatras = "ాిీుూృౄెేైొోౌ"

// IsTelugu reports whether r falls in the Telugu Unicode block.
func IsTelugu(r rune) bool {
	return r >= blockStart && r <= blockEnd
}

// HasTelugu reports whether s contains at least one Telugu rune.
func HasTelugu(s string) bool {
	for _, r := range s {
		if IsTelugu(r) {
			return true
		}
	}
	return false
}

// IsVowelLetter reports whether r is an independent Telugu vowel letter.
func IsVowelLetter(r rune) bool {
	return strings.ContainsRune(vowelLetters, r)
}

// IsConsonant reports whether r is a Telugu consonant letter.
func IsConsonant(r rune) bool {
	return strings.ContainsRune(consonantLetters, r)
}

// IsMatra reports whether r is a Telugu vowel sign.
func IsMatra(r rune) bool {
	return (r >= matraStart && r <= matraEnd) || strings.ContainsRune(vowelMatras, r)
}

// StartsWithVowel reports whether s begins with an independent vowel letter.
func StartsWithVowel(s string) bool {
	for _, r := range s {
		return IsVowelLetter(r)
	}
	return false
}

// EndsWithVowel reports whether the written form of s is vowel-final: the
// last rune is an independent vowel letter or a vowel sign. A bare consonant
// final also carries the inherent 'a' but is not treated as vowel-final here;
// junction rules that care about the inherent vowel test for it themselves.
func EndsWithVowel(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	last := runes[len(runes)-1]
	return IsVowelLetter(last) || IsMatra(last)
}

// Length returns the rune count of s. All minimum-length guards in the
// pipeline are rune counts, not byte counts.
func Length(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// HasPunct reports whether s contains punctuation or symbol runes.
func HasPunct(s string) bool {
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}

// runeClass partitions runes for tokenization.
type runeClass int

const (
	classSpace runeClass = iota
	classTelugu
	classDigit
	classPunct
	classOther
)

func classify(r rune) runeClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case IsTelugu(r):
		return classTelugu
	case unicode.IsDigit(r):
		return classDigit
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return classPunct
	default:
		return classOther
	}
}

// Tokenize splits text into script-aware tokens. Runs of Telugu characters,
// runs of digits, and runs of other letters each form one token; every
// punctuation rune is its own token; whitespace only separates.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	currentClass := classSpace

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		c := classify(r)
		switch c {
		case classSpace:
			flush()
		case classPunct:
			// Punctuation never merges into a run.
			flush()
			tokens = append(tokens, string(r))
		default:
			if c != currentClass {
				flush()
			}
			current.WriteRune(r)
		}
		currentClass = c
	}
	flush()

	return tokens
}
