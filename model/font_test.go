/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vellumpdf/pdftext/core"
)

func simpleFontDict(subtype, baseFont string) *core.PdfObjectDictionary {
	d := core.MakeDict()
	d.Set("Type", core.MakeName("Font"))
	d.Set("Subtype", core.MakeName(subtype))
	d.Set("BaseFont", core.MakeName(baseFont))
	return d
}

func TestBuildFontMissingSubtypeErrors(t *testing.T) {
	doc := NewMemDocument("1.7", nil, nil, nil)
	_, err := BuildFont(doc, core.MakeDict())
	require.ErrorIs(t, err, ErrRequiredAttributeMissing)
}

func TestBuildFontDispatchesBySubtype(t *testing.T) {
	doc := NewMemDocument("1.7", nil, nil, nil)

	simple, err := BuildFont(doc, simpleFontDict("Type1", "Helvetica"))
	require.NoError(t, err)
	require.IsType(t, &simpleFont{}, simple)

	type3Dict := simpleFontDict("Type3", "")
	t3, err := BuildFont(doc, type3Dict)
	require.NoError(t, err)
	require.IsType(t, &type3Font{}, t3)
}

// SimpleFont: /Widths present takes priority over any standard-14 fallback.
func TestSimpleFontWidthsFromArray(t *testing.T) {
	d := simpleFontDict("Type1", "Helvetica")
	d.Set("FirstChar", core.MakeInteger(65))
	d.Set("Widths", core.MakeArrayFromFloats([]float64{700, 701, 702}))

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)

	require.Equal(t, float64(700), font.Width(65))
	require.Equal(t, float64(701), font.Width(66))
	require.Equal(t, float64(0), font.Width(68)) // no /FontDescriptor, no Widths entry.
}

// SimpleFont: a standard-14 BaseFont with no /Widths falls back to the
// standard font's own metrics.
func TestSimpleFontWidthsFromStandard14(t *testing.T) {
	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, simpleFontDict("Type1", "Helvetica"))
	require.NoError(t, err)

	require.Equal(t, float64(667), font.Width(CharCode('A')))
	require.Equal(t, float64(556), font.Width(CharCode('a')))
}

// SimpleFont: a non-standard font with no /Widths and no /FontDescriptor
// reports a zero width.
func TestSimpleFontWidthsMissingIsZero(t *testing.T) {
	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, simpleFontDict("TrueType", "SomeEmbeddedFont"))
	require.NoError(t, err)
	require.Equal(t, float64(0), font.Width(CharCode('A')))
}

// Scenario 5: Differences encoding. CharCode 65 decodes to "Ω"; CharCode 66
// (mapped to /notdef, a name with no Unicode value) decodes to the empty string.
func TestSimpleFontDifferencesEncoding(t *testing.T) {
	encDict := core.MakeDict()
	encDict.Set("BaseEncoding", core.MakeName("WinAnsiEncoding"))
	encDict.Set("Differences", core.MakeArray(
		core.MakeInteger(65), core.MakeName("Omega"),
		core.MakeInteger(66), core.MakeName("notdef"),
	))

	d := simpleFontDict("Type1", "SomeEmbeddedFont")
	d.Set("Encoding", encDict)

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)

	require.Equal(t, "Ω", font.Decode(65))
	require.Equal(t, "", font.Decode(66))
}

// SimpleFont: an explicit /Encoding name applies even when a standard-14
// BaseFont could otherwise supply one.
func TestSimpleFontExplicitEncodingName(t *testing.T) {
	d := simpleFontDict("Type1", "Helvetica")
	d.Set("Encoding", core.MakeName("MacRomanEncoding"))

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)
	require.Equal(t, "A", font.Decode(CharCode('A')))
}

// Type3Font: a missing /Widths entry logs and returns zero rather than
// falling back to any standard-font metrics.
func TestType3FontNoStandardFallback(t *testing.T) {
	d := simpleFontDict("Type3", "")
	d.Set("FirstChar", core.MakeInteger(65))
	d.Set("Widths", core.MakeArrayFromFloats([]float64{500}))

	encDict := core.MakeDict()
	encDict.Set("BaseEncoding", core.MakeName("StandardEncoding"))
	d.Set("Encoding", encDict)

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)

	require.Equal(t, float64(500), font.Width(65))
	require.Equal(t, float64(0), font.Width(66))
}

// ToUnicode takes priority over the active encoding for Decode.
func TestSimpleFontToUnicodeOverridesEncoding(t *testing.T) {
	toUnicode := []byte(`
		1 begincodespacerange
		<00> <FF>
		endcodespacerange
		1 beginbfchar
		<41> <0041 0042>
		endbfchar
	`)
	stream := core.MakeStream(toUnicode, nil)

	d := simpleFontDict("Type1", "Helvetica")
	d.Set("ToUnicode", stream)

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)
	require.Equal(t, "AB", font.Decode(CharCode('A')))
}
