package extractor

import "sort"

// Profile holds the normalization rules that differ between translation
// editions. The HTML structure is the same across editions; what varies is
// which inline annotations exist and how supplied words are marked.
type Profile struct {
	// Name is the registry key.
	Name string
	// Label is the translation tag written into output records.
	Label string
	// NoiseSpanClasses lists span classes (footnote popups and the like)
	// that are cut out whole before verse boundaries are located.
	NoiseSpanClasses []string
	// StripBrackets drops the [ ] marking supplied words, keeping the
	// words themselves.
	StripBrackets bool
	// FootnoteGlyphs are reference glyphs that appear inline without a
	// wrapping span and are removed from verse text.
	FootnoteGlyphs string
}

var profiles = map[string]Profile{
	"web": {
		Name:             "web",
		Label:            "WEB",
		NoiseSpanClasses: []string{"popup"},
		FootnoteGlyphs:   "†‡§¶",
	},
	"darby": {
		Name:             "darby",
		Label:            "Darby",
		NoiseSpanClasses: []string{"popup"},
		StripBrackets:    true,
	},
	"ylt": {
		Name:             "ylt",
		Label:            "YLT",
		NoiseSpanClasses: []string{"popup"},
		StripBrackets:    true,
	},
}

// ProfileByName looks up a built-in translation profile.
func ProfileByName(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// ProfileNames returns the registered profile names, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
