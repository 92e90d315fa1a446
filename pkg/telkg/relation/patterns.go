package relation

// Element is one slot of a relation pattern. Type constrains the entity
// type; Text requires a literal surface form; Required demands the literal
// be a high-confidence mention.
type Element struct {
	Type     string
	Text     string
	Role     string
	Required bool
}

// Pattern is a linguistic relation template matched against consecutive
// entity mentions.
type Pattern struct {
	Name        string
	Elements    []Element
	Relation    string
	Confidence  float64
	Syntax      string
	MaxDistance int
}

// builtinPatterns lists the Telugu relation templates in match order.
// SOV comes first; Telugu is verb-final, so subject-object-verb windows are
// the strongest signal.
func builtinPatterns() []Pattern {
	return []Pattern{
		{
			Name: "telugu_sov_pattern",
			Elements: []Element{
				{Type: "person", Role: "subject"},
				{Type: "noun", Role: "object"},
				{Type: "verb", Role: "action"},
			},
			Relation:   "performs_action_on",
			Confidence: 0.90,
			Syntax:     "SOV",
		},
		{
			Name: "instrumental_relation",
			Elements: []Element{
				{Type: "noun", Role: "instrument"},
				{Text: "తో", Required: true},
				{Type: "verb", Role: "action"},
			},
			Relation:   "used_instrument",
			Confidence: 0.80,
			Syntax:     "INSTRUMENTAL",
		},
		{
			Name: "ablative_relation",
			Elements: []Element{
				{Type: "place", Role: "source"},
				{Text: "నుండి", Required: true},
				{Type: "verb", Role: "action"},
			},
			Relation:   "originated_from",
			Confidence: 0.85,
			Syntax:     "ABLATIVE",
		},
		{
			Name: "subject_verb_object",
			Elements: []Element{
				{Type: "person", Role: "subject"},
				{Type: "verb", Role: "action"},
				{Type: "noun", Role: "object"},
			},
			Relation:   "performs_action_on",
			Confidence: 0.85,
			Syntax:     "SVO",
		},
		{
			Name: "subject_verb",
			Elements: []Element{
				{Type: "person", Role: "subject"},
				{Type: "verb", Role: "action"},
			},
			Relation:   "performs",
			Confidence: 0.80,
			Syntax:     "SV",
		},
		{
			Name: "possession_genitive",
			Elements: []Element{
				{Type: "person", Role: "owner"},
				{Text: "యొక్క", Required: true},
				{Type: "noun", Role: "possession"},
			},
			Relation:   "owns",
			Confidence: 0.90,
			Syntax:     "GENITIVE",
		},
		{
			Name: "person_location",
			Elements: []Element{
				{Type: "person", Role: "entity"},
				{Type: "place", Role: "location"},
			},
			Relation:    "located_at",
			Confidence:  0.75,
			MaxDistance: 3,
		},
		{
			Name: "entity_in_location",
			Elements: []Element{
				{Type: "noun", Role: "entity"},
				{Text: "లో", Required: true},
				{Type: "place", Role: "location"},
			},
			Relation:   "located_in",
			Confidence: 0.85,
			Syntax:     "POSTPOSITION",
		},
		{
			Name: "event_time",
			Elements: []Element{
				{Type: "verb", Role: "event"},
				{Type: "temporal", Role: "time"},
			},
			Relation:   "occurs_at",
			Confidence: 0.70,
		},
		{
			Name: "action_purpose",
			Elements: []Element{
				{Type: "verb", Role: "action"},
				{Text: "కోసం", Required: true},
				{Type: "noun", Role: "purpose"},
			},
			Relation:   "for_purpose_of",
			Confidence: 0.88,
		},
	}
}

// Role sets that decide which matched entity becomes the relation's source
// and which its target.
var (
	sourceRoles = map[string]bool{"subject": true, "owner": true, "entity": true, "part": true}
	targetRoles = map[string]bool{
		"object": true, "possession": true, "location": true,
		"time": true, "purpose": true, "whole": true,
	}
)

// compatiblePairs lists the entity-type pairs the co-occurrence fallback is
// willing to link. Checked in both orders.
var compatiblePairs = map[[2]string]bool{
	{"person", "verb"}:         true,
	{"person", "place"}:        true,
	{"person", "organization"}: true,
	{"verb", "noun"}:           true,
	{"verb", "place"}:          true,
	{"verb", "temporal"}:       true,
	{"place", "organization"}:  true,
	{"person", "artifact"}:     true,
}

func typesCompatible(t1, t2 string) bool {
	return compatiblePairs[[2]string{t1, t2}] || compatiblePairs[[2]string{t2, t1}]
}
