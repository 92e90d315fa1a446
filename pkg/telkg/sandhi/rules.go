package sandhi

import (
	"strings"

	"github.com/granthika/telkg/pkg/telkg/script"
)

// Consonant softening table for గసడదవాదేశ సంధి.
var softenings = map[rune]rune{
	'క': 'గ',
	'చ': 'స',
	'ట': 'డ',
	'త': 'ద',
	'ప': 'వ',
}

// Case suffixes that trigger the liaison rule.
var liaisonSuffixes = []string{"ను", "కి", "కు", "లో", "తో", "చే", "వల్ల", "కోసం"}

// registerBuiltinRules installs the ten classical junction rules. Priorities
// fix dispatch order; the names are the traditional Telugu grammar terms.
func (e *Engine) registerBuiltinRules() {
	e.AddRule("amredita", 5, amreditaRule)       // ఆమ్రేడిత: reduplication
	e.AddRule("utva", 10, utvaRule)              // ఉత్వ: ఉ-final elision
	e.AddRule("trika", 15, trikaRule)            // త్రిక: ఇ/ఈ-final glide
	e.AddRule("itva", 20, itvaRule)              // ఇత్వ: ఇ-final elision
	e.AddRule("vibhakti", 25, vibhaktiRule)      // విభక్తి: case-suffix liaison
	e.AddRule("atva", 30, atvaRule)              // అత్వ: inherent-అ elision
	e.AddRule("savarna", 35, savarnaRule)        // సవర్ణదీర్ఘ: like-vowel merge
	e.AddRule("yadagama", 40, yadagamaRule)      // యడాగమ: glide insertion
	e.AddRule("anunasika", 45, anunasikaRule)    // అనునాసిక: nasal liaison
	e.AddRule("gasadadava", 50, gasadadavaRule)  // గసడదవాదేశ: consonant softening
}

// amreditaRule doubles an identical pair with a మ liaison.
func amreditaRule(first, second string) []string {
	if first == second {
		return []string{first + "మ" + second}
	}
	return nil
}

// utvaRule elides a final ఉ-sign before a vowel-initial word.
func utvaRule(first, second string) []string {
	if !strings.HasSuffix(first, "ు") || !script.StartsWithVowel(second) {
		return nil
	}
	return []string{strings.TrimSuffix(first, "ు") + second}
}

// itvaRule elides a final ఇ-sign before a vowel-initial word.
func itvaRule(first, second string) []string {
	if !strings.HasSuffix(first, "ి") || !script.StartsWithVowel(second) {
		return nil
	}
	return []string{strings.TrimSuffix(first, "ి") + second}
}

// atvaRule would elide the inherent అ of a bare consonant final. Detecting
// the inherent vowel needs syllable analysis the engine does not do, so the
// rule never proposes a form.
func atvaRule(first, second string) []string {
	return nil
}

// yadagamaRule inserts a glide between a vowel-final and a vowel-initial
// word. Both glide consonants are proposed; which one a speaker uses varies
// by dialect, and downstream consumers take the whole candidate set anyway.
func yadagamaRule(first, second string) []string {
	if !script.EndsWithVowel(first) || !script.StartsWithVowel(second) {
		return nil
	}
	return []string{
		first + "య" + second,
		first + "వ" + second,
	}
}

// gasadadavaRule softens a final voiceless stop before a vowel-initial word.
func gasadadavaRule(first, second string) []string {
	runes := []rune(first)
	if len(runes) == 0 || !script.StartsWithVowel(second) {
		return nil
	}
	soft, ok := softenings[runes[len(runes)-1]]
	if !ok {
		return nil
	}
	return []string{string(runes[:len(runes)-1]) + string(soft) + second}
}

// trikaRule inserts a య glide after an ఇ/ఈ-final word.
func trikaRule(first, second string) []string {
	runes := []rune(first)
	if len(runes) == 0 || !script.StartsWithVowel(second) {
		return nil
	}
	last := runes[len(runes)-1]
	if last != 'ఇ' && last != 'ఈ' {
		return nil
	}
	return []string{string(runes[:len(runes)-1]) + "య" + second}
}

// vibhaktiRule joins a case-suffixed word to a vowel-initial word with a వ
// liaison.
func vibhaktiRule(first, second string) []string {
	if !script.StartsWithVowel(second) {
		return nil
	}
	for _, suffix := range liaisonSuffixes {
		if strings.HasSuffix(first, suffix) {
			runes := []rune(first)
			return []string{string(runes[:len(runes)-1]) + "వ" + second}
		}
	}
	return nil
}

// savarnaRule merges identical vowels across the boundary.
func savarnaRule(first, second string) []string {
	fr := []rune(first)
	sr := []rune(second)
	if len(fr) == 0 || len(sr) == 0 {
		return nil
	}
	last, head := fr[len(fr)-1], sr[0]
	if !script.IsVowelLetter(last) || last != head {
		return nil
	}
	return []string{string(fr[:len(fr)-1]) + second}
}

// anunasikaRule resolves a final anusvara to న before a consonant-initial
// word.
func anunasikaRule(first, second string) []string {
	if !strings.HasSuffix(first, "ం") {
		return nil
	}
	sr := []rune(second)
	if len(sr) == 0 || !script.IsConsonant(sr[0]) {
		return nil
	}
	return []string{strings.TrimSuffix(first, "ం") + "న" + second}
}
