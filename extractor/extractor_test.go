package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bible-extractor/model"
)

func mustProfile(t *testing.T, name string) Profile {
	t.Helper()
	p, ok := ProfileByName(name)
	require.True(t, ok, "profile %v must be registered", name)
	return p
}

func TestExtract_TwoVerses(t *testing.T) {
	fragment := `<div class="main"><span class="verse" id="V1">1&#160;</span>In the <i>beginning</i>.<span class="verse" id="V2">2&#160;</span>And the earth...</div>`

	verses := Extract(fragment, mustProfile(t, "web"))

	require.Len(t, verses, 2)
	assert.Equal(t, model.Verse{Number: 1, Text: "In the beginning."}, verses[0])
	assert.Equal(t, model.Verse{Number: 2, Text: "And the earth..."}, verses[1])
}

func TestExtract_EndOfFragmentTerminatesLastVerse(t *testing.T) {
	// No closing </div> after the final verse.
	fragment := `id="V1">1&#160;</span>In the <i>beginning</i>.<span class="verse" id="V2">2&#160;</span>And the earth...`

	verses := Extract(fragment, mustProfile(t, "web"))

	require.Len(t, verses, 2)
	assert.Equal(t, "In the beginning.", verses[0].Text)
	assert.Equal(t, "And the earth...", verses[1].Text)
}

func TestExtract_NoMarkers(t *testing.T) {
	verses := Extract(`<div class="main"><p>Copyright notice, no verses.</p></div>`, mustProfile(t, "web"))
	assert.Empty(t, verses)
}

func TestExtract_DocumentOrderPreserved(t *testing.T) {
	// Markers out of numeric order propagate as-is; filename order is the
	// real sort key downstream.
	fragment := `<span class="verse" id="V2">2&#160;</span>second text here<span class="verse" id="V1">1&#160;</span>first text here`

	verses := Extract(fragment, mustProfile(t, "web"))

	require.Len(t, verses, 2)
	assert.Equal(t, 2, verses[0].Number)
	assert.Equal(t, "second text here", verses[0].Text)
	assert.Equal(t, 1, verses[1].Number)
	assert.Equal(t, "first text here", verses[1].Text)
}

func TestExtract_NoiseSpanNeverLeaks(t *testing.T) {
	fragment := `<div><span class="verse" id="V1">1&#160;</span>Alpha <span class="popup">Or, a different reading</span>beta.</div>`

	verses := Extract(fragment, mustProfile(t, "web"))

	require.Len(t, verses, 1)
	assert.Equal(t, "Alpha beta.", verses[0].Text)
	assert.NotContains(t, verses[0].Text, "different reading")
}

func TestExtract_VerseWithOnlyFootnoteDropped(t *testing.T) {
	fragment := `<div><span class="verse" id="V3">3&#160;</span> <span class="popup">marginal note</span> <span class="verse" id="V4">4&#160;</span>Real text here.</div>`

	verses := Extract(fragment, mustProfile(t, "web"))

	require.Len(t, verses, 1)
	assert.Equal(t, 4, verses[0].Number)
	assert.Equal(t, "Real text here.", verses[0].Text)
}

func TestExtract_EntitiesAndGlyphs(t *testing.T) {
	fragment := `<span class="verse" id="V7">7&#160;</span>He said, &quot;Come &amp; see&quot;&#160;† now.`

	verses := Extract(fragment, mustProfile(t, "web"))

	require.Len(t, verses, 1)
	assert.Equal(t, `He said, "Come & see" now.`, verses[0].Text)
}

func TestExtract_TextStopsAtClosingDiv(t *testing.T) {
	fragment := `<span class="verse" id="V1">1&#160;</span>Verse body text.</div><p>footer junk after the chapter</p>`

	verses := Extract(fragment, mustProfile(t, "web"))

	require.Len(t, verses, 1)
	assert.Equal(t, "Verse body text.", verses[0].Text)
}

func TestExtract_BracketHandlingPerProfile(t *testing.T) {
	fragment := `<span class="verse" id="V1">1&#160;</span>This [is] the word.`

	darby := Extract(fragment, mustProfile(t, "darby"))
	require.Len(t, darby, 1)
	assert.Equal(t, "This is the word.", darby[0].Text)

	web := Extract(fragment, mustProfile(t, "web"))
	require.Len(t, web, 1)
	assert.Equal(t, "This [is] the word.", web[0].Text)
}

func TestExtract_NoMarkupLeftBehind(t *testing.T) {
	fragment := `<div class="main"><div class="chapter"><span class="verse" id="V1">1&#160;</span>The <b>bold</b> and the <a href="x.htm">linked</a>,<br/>split over
lines.</div></div>`

	verses := Extract(fragment, mustProfile(t, "web"))

	require.NotEmpty(t, verses)
	for _, v := range verses {
		assert.NotEmpty(t, v.Text)
		assert.NotContains(t, v.Text, "<")
		assert.NotContains(t, v.Text, ">")
		assert.False(t, strings.Contains(v.Text, "\n"), "newlines must be collapsed")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, name := range ProfileNames() {
		p := mustProfile(t, name)
		raw := `He said, &quot;Come &amp; see&quot; <i>now</i>&#160;[truly] †.`
		once := Normalize(raw, p)
		twice := Normalize(once, p)
		assert.Equal(t, once, twice, "profile %v", name)
	}
}

func TestNormalize_AdjacentTagsDoNotFuseWords(t *testing.T) {
	got := Normalize(`first<br/><br/>second`, mustProfile(t, "web"))
	assert.Equal(t, "first second", got)
}
