package morph

// suffixTable lists the grammatical suffixes by category. The working list
// used for matching is flattened from this table and sorted by descending
// suffix length so the longest match always wins.
var suffixTable = []struct {
	category string
	suffixes []suffixDef
}{
	{"nominative", []suffixDef{
		{"డు", meta{"gender": "masculine", "number": "singular"}},
		{"ము", meta{"gender": "neuter", "number": "singular"}},
		{"వు", meta{"gender": "neuter", "number": "singular"}},
		{"లు", meta{"number": "plural"}},
		{"వారు", meta{"honorific": "true", "number": "plural"}},
		{"గారు", meta{"honorific": "true"}},
		{"మండి", meta{"collective": "true"}},
	}},
	{"accusative", []suffixDef{
		{"ని", meta{"case": "accusative"}},
		{"ను", meta{"case": "accusative"}},
		{"నున్", meta{"case": "accusative"}},
		{"నిన్", meta{"case": "accusative"}},
		{"లన్", meta{"number": "plural"}},
		{"గురించి", meta{"meaning": "regarding"}},
		{"కూర్చి", meta{"meaning": "about/concerning"}},
		{"పైన", meta{"meaning": "about"}},
		{"మీద", meta{"meaning": "on/about"}},
	}},
	{"instrumental", []suffixDef{
		{"తో", meta{"meaning": "with/by"}},
		{"చేత", meta{"meaning": "by/through"}},
		{"చేతన", meta{"meaning": "by means of"}},
		{"ద్వారా", meta{"meaning": "through"}},
		{"బట్టి", meta{"meaning": "according to"}},
		{"వల్ల", meta{"meaning": "because of"}},
	}},
	{"dative", []suffixDef{
		{"కు", meta{"meaning": "to/for"}},
		{"కి", meta{"meaning": "to/for"}},
		{"కై", meta{"meaning": "for"}},
		{"కొరకు", meta{"meaning": "for"}},
		{"కోసం", meta{"meaning": "for/sake of"}},
		{"కొఱకున్", meta{"archaic": "true"}},
		{"కోఱకు", meta{"archaic": "true"}},
	}},
	{"ablative", []suffixDef{
		{"నుంచి", meta{"meaning": "from"}},
		{"నుండి", meta{"meaning": "from"}},
		{"వలన", meta{"meaning": "due to/from"}},
		{"వల్ల", meta{"meaning": "because of"}},
		{"కంటే", meta{"meaning": "than"}},
		{"కంటె", meta{"meaning": "than"}},
		{"పట్టి", meta{"meaning": "regarding/from"}},
	}},
	{"genitive", []suffixDef{
		{"యొక్క", meta{"meaning": "of"}},
		{"యొక్కది", meta{"meaning": "belonging to"}},
		{"ది", meta{"possessive_suffix": "true"}},
	}},
	{"locative", []suffixDef{
		{"లో", meta{"meaning": "in"}},
		{"లోపల", meta{"meaning": "inside"}},
		{"లోన్", meta{"archaic": "true"}},
		{"పై", meta{"meaning": "on/above"}},
		{"క్రింద", meta{"meaning": "below"}},
		{"వద్ద", meta{"meaning": "at/near"}},
		{"దగ్గర", meta{"meaning": "near"}},
	}},
	{"vocative", []suffixDef{
		{"ఓ", meta{"meaning": "address"}},
		{"ఓయీ", meta{"meaning": "address"}},
		{"ఓరీ", meta{"meaning": "address"}},
		{"అయ్యా", meta{"meaning": "sir"}},
		{"అమ్మా", meta{"meaning": "mother"}},
		{"బాబూ", meta{"meaning": "dear"}},
	}},
	{"verbal", []suffixDef{
		{"తున్నాడు", meta{"tense": "present_continuous", "person": "3"}},
		{"తున్నాను", meta{"tense": "present_continuous", "person": "1"}},
		{"తున్నావు", meta{"tense": "present_continuous", "person": "2"}},
		{"తున్నారు", meta{"tense": "present_continuous", "person": "3"}},
		{"తున్నాయి", meta{"tense": "present_continuous", "number": "plural"}},
		{"తే", meta{"function": "conditional"}},
		{"తూ", meta{"function": "while"}},
		{"క", meta{"function": "negative_participle"}},
		{"డం", meta{"function": "nominalize"}},
		{"డం వల్ల", meta{"function": "causal_clause"}},
		{"ఇ", meta{"tense": "past"}},
		{"తా", meta{"tense": "future/habitual"}},
		{"వటానికి", meta{"function": "purpose_infinitive"}},
		{"వడానికి", meta{"function": "purpose_infinitive"}},
		{"కూడదని", meta{"function": "prohibitive"}},
		{"లేక", meta{"function": "conjunctive_negative"}},
		{"మంటే", meta{"function": "quotative"}},
		{"సేది", meta{"tense": "future_potential"}},
	}},
	{"nominal", []suffixDef{
		{"తనం", meta{"function": "abstract", "meaning": "-ness"}},
		{"తనము", meta{"function": "abstract"}},
		{"రికం", meta{"function": "abstract"}},
		{"పు", meta{"function": "adjectival"}},
		{"గా", meta{"function": "adverbial"}},
		{"గానూ", meta{"function": "emphatic_adverbial"}},
		{"గా ఉండి", meta{"function": "state_marker"}},
		{"గానీ", meta{"function": "disjunctive"}},
		{"గానే", meta{"function": "immediate"}},
		{"గానేనూ", meta{"function": "emphatic_immediate"}},
	}},
	{"place", []suffixDef{
		{"పురం", meta{"type": "city"}},
		{"పట్నం", meta{"type": "city"}},
		{"వూరు", meta{"type": "village"}},
		{"పల్లె", meta{"type": "village"}},
		{"గూడెం", meta{"type": "hamlet"}},
		{"వాడ", meta{"type": "settlement"}},
		{"పాళెం", meta{"type": "settlement"}},
		{"చెర్ల", meta{"type": "village"}},
		{"పాడు", meta{"type": "settlement"}},
		{"పూడి", meta{"type": "settlement"}},
	}},
	{"temporal", []suffixDef{
		{"తర్వాత", meta{"meaning": "after"}},
		{"ముందు", meta{"meaning": "before"}},
		{"తరువాత", meta{"meaning": "after"}},
		{"లోపు", meta{"meaning": "within"}},
		{"వరకు", meta{"meaning": "until"}},
		{"నాటికి", meta{"meaning": "by (time)"}},
	}},
	{"quantitative", []suffixDef{
		{"ంత", meta{"meaning": "as much as"}},
		{"ంతటి", meta{"meaning": "of that size"}},
		{"లాంటిది", meta{"meaning": "similar to"}},
		{"లాంటి", meta{"meaning": "like/similar"}},
		{"కొంత", meta{"meaning": "some"}},
		{"ఎంత", meta{"meaning": "how much"}},
		{"చాలా", meta{"meaning": "much/many"}},
	}},
	{"archaic", []suffixDef{
		{"మంబు", meta{"function": "nominal"}},
		{"ఇఁడి", meta{"meaning": "without"}},
		{"మాలు", meta{"meaning": "without"}},
		{"అమి", meta{"function": "negative_nom"}},
		{"ఇండి", meta{"meaning": "one_without"}},
	}},
}

type meta = map[string]string

type suffixDef struct {
	suffix string
	meta   meta
}

// suffixConfidence assigns the base confidence for a suffix by category.
// Archaic forms are downgraded regardless of category.
func suffixConfidence(category string, m meta) float64 {
	if m["archaic"] == "true" {
		return 0.75
	}
	switch category {
	case "verbal", "nominal":
		return 0.92
	case "place":
		return 0.98
	case "vocative":
		return 0.90
	default:
		return 0.95
	}
}

// tenseMarkers lists the verb ending markers per tense/aspect. Order matters:
// on an exact marker-length tie the earlier tense wins.
var tenseMarkers = []struct {
	tense   string
	markers []string
}{
	{"past", []string{
		"ాడు", "ారు", "ాను", "ింది", "చాడు", "శాడు", "యాడు", "కాడు",
		"గాడు", "టాడు", "డాడు", "దాడు", "బాడు", "మాడు", "నాడు",
	}},
	{"present_continuous", []string{
		"తున్నాడు", "తున్నారు", "తున్నాను", "స్తున్నాడు", "స్తున్నారు",
		"స్తున్నాను", "కుంటున్నాడు", "కుంటున్నారు", "గుతున్నాడు",
	}},
	{"future", []string{
		"తాడు", "తారు", "తాను", "స్తాడు", "స్తారు", "స్తాను",
		"కుంటాడు", "కుంటారు", "గుతాడు",
	}},
	{"perfective", []string{
		"ించాడు", "ించారు", "పాడు", "య్యాడు", "క్కాడు", "గ్గాడు",
	}},
	{"habitual", []string{
		"తుంటాడు", "తుంటారు", "స్తుంటాడు", "కుంటుంటాడు",
	}},
}

// Exact endings that mark a token as verb-like.
var verbLikeEndings = []string{
	"్తున్నాడు", "్తున్నారు", "్తున్నాను", "్తున్నావు",
	"్తాడు", "్తారు", "్తాను", "్తావు",
	"్చాడు", "్చారు", "్చాను", "్చావు",
	"ించాడు", "ించారు", "ించాను",
	"పడతాడు", "పడతారు", "పడతాను",
	"వుతున్న", "వుతాడు", "వుతారు",
	"అవుతున్న", "అవుతాడు", "అవుతారు",
	"కుంటున్న", "కుంటాడు", "కుంటారు",
	"గుతున్న", "గుతాడు", "గుతారు",
}

// Infix patterns that mark a token as verb-like anywhere in the word.
var verbLikeInfixes = []string{
	"తున్న", "్తున్న", "ుతున్న",
	"్తాడు", "్తారు", "్తుంది",
	"్చాడు", "్చారు", "్చింది",
	"కుంట", "గుత", "పడత",
}

// Proper names that are never verb-like regardless of their endings.
var properNameExceptions = []string{
	"రాముడు", "కృష్ణుడు", "బాలయ్య", "సీత", "లక్ష్మి", "హనుమంతుడు",
}
