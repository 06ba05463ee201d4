// Package extractor slices Bible verses out of chapter HTML fragments.
//
// The source files have a fixed, known structure, so this is a tolerant
// pattern matcher over a restricted tag vocabulary, not an HTML parser.
// Malformed markup never produces an error; at worst a verse is dropped.
package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"bible-extractor/model"
)

var (
	// A verse marker carries the verse number twice: as the span id and as
	// leading display text followed by a non-breaking space.
	markerRe = regexp.MustCompile(`id="V(\d+)">(\d+)&#160;</span>`)

	tagRe         = regexp.MustCompile(`<[^>]+>`)
	spaceRe       = regexp.MustCompile(`\s+`)
	spacePunctRe  = regexp.MustCompile(` ([.,;:!?])`)
	verseSpanOpen = `<span class="verse"`
)

// entityPairs is the fixed set of entities seen in the corpus. Order matters:
// &lt;/&gt; are decoded before &amp; so that "&amp;lt;" survives one pass as
// "&lt;" rather than collapsing twice.
var entityPairs = []struct{ from, to string }{
	{"&#160;", " "},
	{"&nbsp;", " "},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&amp;", "&"},
	{"&quot;", `"`},
	{"&apos;", "'"},
}

// Extract returns the verses of one chapter fragment in document order.
// Verse numbers are not required to be ascending or unique; whatever order
// the markers appear in is the order returned. Verses whose text is empty
// after normalization are dropped.
func Extract(fragment string, p Profile) []model.Verse {
	fragment = stripNoiseSpans(fragment, p)

	marks := markerRe.FindAllStringSubmatchIndex(fragment, -1)
	verses := make([]model.Verse, 0, len(marks))
	for i, m := range marks {
		num, err := strconv.Atoi(fragment[m[2]:m[3]])
		if err != nil {
			continue
		}
		body := fragment[m[1]:bodyEnd(fragment, m[1], marks, i)]
		text := Normalize(body, p)
		if text == "" {
			continue
		}
		verses = append(verses, model.Verse{Number: num, Text: text})
	}
	return verses
}

// stripNoiseSpans removes footnote popups and similar annotation spans whole,
// before verse boundaries are located, so their contents can never leak into
// verse text. Matching runs to the first closing </span>; the corpus does not
// nest spans inside annotations.
func stripNoiseSpans(fragment string, p Profile) string {
	for _, class := range p.NoiseSpanClasses {
		re := regexp.MustCompile(`(?s)<span class="` + regexp.QuoteMeta(class) + `">.*?</span>`)
		fragment = re.ReplaceAllString(fragment, "")
	}
	return fragment
}

// bodyEnd finds where the text of the verse starting at start stops: at the
// opening of the next verse span, at the next marker, at the </div> closing
// the chapter block, or at the end of the fragment, whichever comes first.
// Chapters have no sentinel marker after the last verse.
func bodyEnd(fragment string, start int, marks [][]int, i int) int {
	end := len(fragment)
	if i+1 < len(marks) {
		end = marks[i+1][0]
	}
	seg := fragment[start:end]
	if j := strings.Index(seg, verseSpanOpen); j >= 0 {
		end = start + j
		seg = seg[:j]
	}
	if j := strings.Index(seg, "</div>"); j >= 0 {
		end = start + j
	}
	return end
}

// Normalize reduces a raw verse body to plain text: tags become a single
// space (adjacent tags must not fuse two words), entities are decoded,
// edition-specific bracket and glyph cleanup is applied, and whitespace is
// collapsed. Normalizing already-clean text is a no-op.
func Normalize(s string, p Profile) string {
	s = tagRe.ReplaceAllString(s, " ")
	for _, e := range entityPairs {
		s = strings.ReplaceAll(s, e.from, e.to)
	}
	if p.StripBrackets {
		s = strings.ReplaceAll(s, "[", "")
		s = strings.ReplaceAll(s, "]", "")
	}
	if p.FootnoteGlyphs != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(p.FootnoteGlyphs, r) {
				return -1
			}
			return r
		}, s)
	}
	s = spaceRe.ReplaceAllString(s, " ")
	// A tag hugging punctuation ("<i>beginning</i>.") leaves a stray space
	// behind once the tag is gone.
	s = spacePunctRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
