package lexicon

// Built-in lexical data. External files loaded through NewFromFiles replace
// the verb-root and stem tables; the override and exclusion tables below are
// always present and extendable at runtime.

var builtinVerbRoots = []string{
	"ఉండు", "రా", "పో", "తిను", "తాగు", "చెప్పు", "చూడు", "విను", "ఎఱుగు",
	"నడచు", "ఓడు", "గెల్చు", "వ్రాయు", "చదువు", "నిల్చు", "కూర్చు", "పడు",
	"లేచు", "ఇచ్చు", "తీసు", "పెట్టు", "తెరచు", "మూయు", "కొను", "వేయు",
	"తెలుసు", "అర్థము", "ఆగు", "మారు", "మాట్లాడు", "ఆడు", "పాడు", "అడుగు",
	"చేయు", "కలుగు", "తోచు", "కనిపెట్టు", "తెచ్చు", "పుచ్చు", "వద్దు", "అయి",
}

var builtinKnownStems = map[string]string{
	"తిన్నాడు":   "తిను",
	"తాగాడు":     "తాగు",
	"చూశాడు":     "చూడు",
	"చెప్పాడు":   "చెప్పు",
	"వ్రాశాడు":   "వ్రాయు",
	"చదివాడు":    "చదువు",
	"నడిచాడు":    "నడచు",
	"పడ్డాడు":    "పడు",
	"లేచాడు":     "లేచు",
	"ఇచ్చాడు":    "ఇచ్చు",
	"తీసాడు":     "తీసు",
	"పెట్టాడు":   "పెట్టు",
	"మాట్లాడాడు": "మాట్లాడు",
	"ఆడాడు":      "ఆడు",
	"పాడాడు":     "పాడు",
	"చేశాడు":     "చేయు",
	"అయ్యాడు":    "అయి",
}

var builtinPlaceOverride = map[string]string{
	"హైదరాబాద్":  "place_city",
	"విజయవాడ":    "place_city",
	"విశాఖపట్నం": "place_city",
	"తిరుపతి":    "place_temple",
	"వారంగల్":    "place_city",
	"గుంటూరు":    "place_city",
	"నెల్లూరు":   "place_city",
	"కడప":        "place_city",
	"అనంతపురం":   "place_city",
	"కర్నూలు":    "place_city",
}

var builtinPersonOverride = []string{
	"రాముడు", "సీత", "కృష్ణుడు", "శివుడు", "విష్ణువు",
	"లక్ష్మి", "పార్వతి", "బాలయ్య", "వెంకటేశ్వరుడు", "హనుమంతుడు",
}

// Surface forms whose segmentation is irregular enough that suffix stripping
// gets them wrong.
var builtinExceptions = map[string][2]string{
	"పుస్తకానికి": {"పుస్తకం", "కి"},
	"పుస్తకంలో":   {"పుస్తకం", "లో"},
	"ఇంట్లో":      {"ఇల్లు", "లో"},
	"ఇంటికి":      {"ఇల్లు", "కి"},
	"పిల్లలు":     {"పిల్ల", "లు"},
}

// Frequent everyday nouns that should not surface as entities.
var builtinCommonWords = []string{
	"పని", "విద్య", "ఉద్యోగం", "వ్యాపారం", "కుటుంబం", "సమయం",
	"ప్రేమ", "స్నేహం", "ఆరోగ్యం", "ధనం", "భాష", "సంస్కృతి",
	"చదువు", "రాయడం", "మాట్లాడడం", "వినడం", "చూడడం", "అనుభవం",
	"ఆహారం", "నీరు", "గాలి", "భూమి", "ఆకాశం", "సూర్యుడు",
	"తల్లి", "తండ్రి", "అక్క", "చెల్లి", "సోదరుడు", "సోదరి",
	"మనిషి", "ప్రాణి", "జంతువు", "పక్షి", "మృగం", "పుష్పం",
}

// Case particles, conjunctions, and postpositions that never stand alone as
// entities.
var builtinParticles = []string{
	"లో", "కు", "కి", "నుండి", "నుంచి", "తో", "గురించి",
	"కోసం", "వల్ల", "చేత", "ద్వారా", "వద్ద", "గా", "అయితే",
	"మరియు", "కానీ", "అందువల్ల", "అయినప్పటికీ", "ఎందుకంటే",
	"కాబట్టి", "ముందు", "తర్వాత", "పైన", "కింద", "లోపల", "బయట",
	"వెంట", "గుర్తు", "చేతన", "వలన", "బట్టి", "కంటే", "కంటె",
}

// Particles that may not appear as a stripped stem or compound component.
var builtinStemParticles = []string{
	"లో", "కు", "కి", "తో", "గా", "వల్ల",
}
