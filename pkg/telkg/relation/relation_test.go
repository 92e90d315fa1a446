package relation

import (
	"strings"
	"testing"

	"github.com/granthika/telkg/pkg/telkg/config"
	"github.com/granthika/telkg/pkg/telkg/entity"
)

func newTestMatcher() *Matcher {
	return NewMatcher(config.Default(), nil)
}

func findRelation(records []Record, source, target, rtype string) (Record, bool) {
	for _, r := range records {
		if r.Source == source && r.Target == target && r.Type == rtype {
			return r, true
		}
	}
	return Record{}, false
}

func TestSOVPattern(t *testing.T) {
	m := newTestMatcher()

	entities := []entity.Record{
		{Text: "రాముడు", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
		{Text: "పుస్తకం", Position: 1, Type: entity.TypeNoun, Confidence: 0.92},
		{Text: "చదివాడు", Position: 2, Type: entity.TypeVerb, Confidence: 0.90},
	}
	got := m.Extract(entities, "రాముడు పుస్తకం చదివాడు")

	rel, ok := findRelation(got, "రాముడు", "పుస్తకం", "performs_action_on")
	if !ok {
		t.Fatalf("SOV relation missing from %v", got)
	}
	if rel.Confidence != 0.90 {
		t.Errorf("confidence = %v, want 0.90", rel.Confidence)
	}
	if rel.Pattern != "telugu_sov_pattern" {
		t.Errorf("pattern = %q, want telugu_sov_pattern", rel.Pattern)
	}
	if rel.Syntax != "SOV" {
		t.Errorf("syntax = %q, want SOV", rel.Syntax)
	}
	if rel.Evidence != "pattern_matching" {
		t.Errorf("evidence = %q, want pattern_matching", rel.Evidence)
	}
}

func TestSubjectVerbBindsNoTarget(t *testing.T) {
	m := newTestMatcher()

	// subject_verb has no target-bearing role, so it can never emit; the
	// pair still surfaces through the co-occurrence fallback.
	entities := []entity.Record{
		{Text: "సీత", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
		{Text: "వచ్చింది", Position: 1, Type: entity.TypeVerb, Confidence: 0.90},
	}
	got := m.Extract(entities, "సీత వచ్చింది")

	if _, ok := findRelation(got, "సీత", "వచ్చింది", "performs"); ok {
		t.Errorf("performs emitted without a bound target: %v", got)
	}
	if _, ok := findRelation(got, "సీత", "వచ్చింది", "possibly_related_to"); !ok {
		t.Errorf("co-occurrence fallback missing from %v", got)
	}
}

func TestPersonLocationDistanceBound(t *testing.T) {
	m := newTestMatcher()

	near := []entity.Record{
		{Text: "రాముడు", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
		{Text: "అయోధ్య", Position: 2, Type: entity.TypePlace, Confidence: 0.90},
	}
	got := m.Extract(near, "రాముడు ఇంట అయోధ్య")
	if _, ok := findRelation(got, "రాముడు", "అయోధ్య", "located_at"); !ok {
		t.Errorf("located_at missing for nearby pair: %v", got)
	}

	far := []entity.Record{
		{Text: "రాముడు", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
		{Text: "అయోధ్య", Position: 9, Type: entity.TypePlace, Confidence: 0.90},
	}
	got = m.Extract(far, "")
	if _, ok := findRelation(got, "రాముడు", "అయోధ్య", "located_at"); ok {
		t.Errorf("located_at emitted beyond max distance: %v", got)
	}
}

func TestEntityFilter(t *testing.T) {
	m := newTestMatcher()

	entities := []entity.Record{
		{Text: "రాముడు", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
		{Text: "ఏదో", Position: 1, Type: entity.TypeUnknown, Confidence: 0.9},
		{Text: "చదివాడు", Position: 2, Type: entity.TypeVerb, Confidence: 0.5},
	}
	// The unknown entity and the low-confidence verb are both filtered,
	// leaving a single usable entity.
	if got := m.Extract(entities, "రాముడు ఏదో చదివాడు"); got != nil {
		t.Errorf("Extract = %v, want nil after filtering", got)
	}
}

func TestCooccurrenceFallback(t *testing.T) {
	m := newTestMatcher()

	entities := []entity.Record{
		{Text: "రాముడు", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
		{Text: "సంస్థ", Position: 3, Type: entity.TypeOrganization, Confidence: 0.90},
	}
	got := m.Extract(entities, "రాముడు అక్కడ పని సంస్థ")

	rel, ok := findRelation(got, "రాముడు", "సంస్థ", "possibly_related_to")
	if !ok {
		t.Fatalf("co-occurrence relation missing from %v", got)
	}
	if rel.Confidence != 0.3 {
		t.Errorf("confidence = %v, want 0.3", rel.Confidence)
	}
	if rel.Distance != 3 {
		t.Errorf("distance = %d, want 3", rel.Distance)
	}
	if rel.Evidence != "proximity" {
		t.Errorf("evidence = %q, want proximity", rel.Evidence)
	}
}

func TestCooccurrenceIncompatibleTypesSkipped(t *testing.T) {
	m := newTestMatcher()

	entities := []entity.Record{
		{Text: "నిన్న", Position: 0, Type: entity.TypeTemporal, Confidence: 0.85},
		{Text: "సంస్థ", Position: 1, Type: entity.TypeOrganization, Confidence: 0.90},
	}
	got := m.Extract(entities, "నిన్న సంస్థ")
	if _, ok := findRelation(got, "నిన్న", "సంస్థ", "possibly_related_to"); ok {
		t.Errorf("incompatible pair linked: %v", got)
	}
}

func TestDeduplicationKeepsHighestConfidence(t *testing.T) {
	m := newTestMatcher()

	// person+verb+noun matches SVO (0.85); the same window also feeds
	// the co-occurrence fallback, which must not shadow or duplicate a
	// pattern hit for the same key.
	entities := []entity.Record{
		{Text: "రాముడు", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
		{Text: "చదివాడు", Position: 1, Type: entity.TypeVerb, Confidence: 0.90},
		{Text: "పాఠం", Position: 2, Type: entity.TypeNoun, Confidence: 0.92},
	}
	got := m.Extract(entities, "రాముడు చదివాడు పాఠం")

	count := 0
	for _, r := range got {
		if r.Source == "రాముడు" && r.Target == "పాఠం" && r.Type == "performs_action_on" {
			count++
			if r.Confidence != 0.85 {
				t.Errorf("confidence = %v, want SVO 0.85", r.Confidence)
			}
		}
	}
	if count != 1 {
		t.Errorf("performs_action_on(రాముడు, పాఠం) appears %d times, want 1", count)
	}
}

func TestContextWindow(t *testing.T) {
	m := newTestMatcher()

	entities := []entity.Record{
		{Text: "రాముడు", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
		{Text: "పుస్తకం", Position: 1, Type: entity.TypeNoun, Confidence: 0.85},
		{Text: "చదివాడు", Position: 2, Type: entity.TypeVerb, Confidence: 0.90},
	}
	got := m.Extract(entities, "రాముడు పుస్తకం చదివాడు")

	rel, ok := findRelation(got, "రాముడు", "పుస్తకం", "performs_action_on")
	if !ok {
		t.Fatal("performs_action_on relation missing")
	}
	if rel.Context == "" {
		t.Error("relation context should capture surrounding tokens")
	}
	if !strings.Contains(rel.Context, "చదివాడు") {
		t.Errorf("context %q should include tokens near the match", rel.Context)
	}
}

func TestFewerThanTwoEntities(t *testing.T) {
	m := newTestMatcher()

	entities := []entity.Record{
		{Text: "రాముడు", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
	}
	if got := m.Extract(entities, "రాముడు"); got != nil {
		t.Errorf("Extract with one entity = %v, want nil", got)
	}
}

func TestCustomPattern(t *testing.T) {
	m := newTestMatcher()
	m.AddPattern(Pattern{
		Name: "person_artifact",
		Elements: []Element{
			{Type: "person", Role: "owner"},
			{Type: "artifact", Role: "possession"},
		},
		Relation:   "owns",
		Confidence: 0.72,
	})

	entities := []entity.Record{
		{Text: "రాముడు", Position: 0, Type: entity.TypePerson, Confidence: 0.95},
		{Text: "విల్లు", Position: 1, Type: entity.TypeArtifact, Confidence: 0.85},
	}
	got := m.Extract(entities, "రాముడు విల్లు")
	if _, ok := findRelation(got, "రాముడు", "విల్లు", "owns"); !ok {
		t.Errorf("custom pattern relation missing from %v", got)
	}
}
