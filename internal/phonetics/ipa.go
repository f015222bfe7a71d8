package phonetics

// ipaChart is the default symbol-to-features map used to seed example
// languages and the CLI. The tag vocabulary is deliberately coarse: just
// enough articulatory detail to distinguish the chart's symbols from each
// other, which is all symbol resolution needs.
var ipaChart = []struct {
	symbol   string
	features []string
}{
	{"a", []string{"vowel", "front", "open", "unrounded"}},
	{"i", []string{"vowel", "front", "close", "unrounded"}},
	{"y", []string{"vowel", "front", "close", "rounded"}},
	{"ə", []string{"vowel", "central", "mid", "unrounded"}},
	{"e", []string{"vowel", "front", "close", "mid", "unrounded"}},
	{"ɑ", []string{"vowel", "retracted", "unrounded"}},
	{"ɒ", []string{"vowel", "retracted", "rounded"}},
	{"ɔ", []string{"vowel", "retracted", "mid", "rounded"}},
	{"o", []string{"vowel", "raised", "mid", "rounded"}},
	{"u", []string{"vowel", "raised", "rounded"}},
	{"p", []string{"consonant", "voiceless", "bilabial", "stop"}},
	{"b", []string{"consonant", "voiced", "bilabial", "stop"}},
	{"t", []string{"consonant", "voiceless", "dental", "alveolar", "stop"}},
	{"d", []string{"consonant", "voiced", "dental", "alveolar", "stop"}},
	{"k", []string{"consonant", "voiceless", "velar", "stop"}},
	{"g", []string{"consonant", "voiced", "velar", "stop"}},
	{"q", []string{"consonant", "voiceless", "uvular", "stop"}},
	{"ɢ", []string{"consonant", "voiced", "uvular", "stop"}},
	{"ʔ", []string{"consonant", "voiceless", "glottal", "stop"}},
	{"ϕ", []string{"consonant", "voiceless", "bilabial", "fricative"}},
	{"β", []string{"consonant", "voiced", "bilabial", "fricative"}},
	{"f", []string{"consonant", "voiceless", "labiodental", "fricative"}},
	{"v", []string{"consonant", "voiced", "labiodental", "fricative"}},
	{"θ", []string{"consonant", "voiceless", "dental", "alveolar", "fricative"}},
	{"ð", []string{"consonant", "voiced", "dental", "alveolar", "fricative"}},
	{"ʃ", []string{"consonant", "voiceless", "postalveolar", "fricative"}},
	{"ʒ", []string{"consonant", "voiced", "postalveolar", "fricative"}},
	{"x", []string{"consonant", "voiceless", "velar", "fricative"}},
	{"ɣ", []string{"consonant", "voiced", "velar", "fricative"}},
	{"χ", []string{"consonant", "voiceless", "uvular", "fricative"}},
	{"ʁ", []string{"consonant", "voiced", "uvular", "fricative"}},
	{"h", []string{"consonant", "voiceless", "glottal", "fricative"}},
	{"ɦ", []string{"consonant", "voiced", "glottal", "fricative"}},
	{"s", []string{"consonant", "voiceless", "alveolar", "sibilant"}},
	{"z", []string{"consonant", "voiced", "alveolar", "sibilant"}},
	{"ts", []string{"consonant", "voiceless", "alveolar", "affricate"}},
	{"dz", []string{"consonant", "voiced", "alveolar", "affricate"}},
	{"tʃ", []string{"consonant", "voiceless", "postalveolar", "affricate"}},
	{"dʒ", []string{"consonant", "voiced", "postalveolar", "affricate"}},
	{"r", []string{"consonant", "voiced", "alveolar", "trill"}},
	{"ɾ", []string{"consonant", "voiced", "alveolar", "tap"}},
	{"ɬ", []string{"consonant", "voiceless", "alveolar", "lateral", "fricative"}},
	{"ɮ", []string{"consonant", "voiced", "alveolar", "lateral", "fricative"}},
	{"j", []string{"consonant", "voiced", "palatal", "approximant"}},
	{"w", []string{"consonant", "voiced", "velar", "approximant"}},
}

// DefaultIPA returns a registry seeded with the standard chart.
func DefaultIPA() *Registry {
	r := New()
	for _, entry := range ipaChart {
		// chart entries are statically valid; Add only fails on empty features
		_ = r.Add(entry.symbol, entry.features...)
	}
	return r
}
