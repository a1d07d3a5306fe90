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

func cidFontDict(t *testing.T, encoding core.PdfObject, descendant *core.PdfObjectDictionary) *core.PdfObjectDictionary {
	t.Helper()
	d := core.MakeDict()
	d.Set("Type", core.MakeName("Font"))
	d.Set("Subtype", core.MakeName("Type0"))
	d.Set("BaseFont", core.MakeName("TestCIDFont"))
	d.Set("Encoding", encoding)
	d.Set("DescendantFonts", core.MakeArray(descendant))
	return d
}

func descendantCIDFontDict(w core.PdfObject, dw core.PdfObject) *core.PdfObjectDictionary {
	d := core.MakeDict()
	d.Set("Type", core.MakeName("Font"))
	d.Set("Subtype", core.MakeName("CIDFontType2"))
	d.Set("BaseFont", core.MakeName("TestCIDFont"))
	if w != nil {
		d.Set("W", w)
	}
	if dw != nil {
		d.Set("DW", dw)
	}
	return d
}

func TestCIDFontMissingDescendantFontsErrors(t *testing.T) {
	d := core.MakeDict()
	d.Set("Type", core.MakeName("Font"))
	d.Set("Subtype", core.MakeName("Type0"))
	d.Set("BaseFont", core.MakeName("TestCIDFont"))
	d.Set("Encoding", core.MakeName("Identity-H"))

	doc := NewMemDocument("1.7", nil, nil, nil)
	_, err := BuildFont(doc, d)
	require.ErrorIs(t, err, ErrRequiredAttributeMissing)
}

// A CIDFont with the fixed 2-byte Identity-H codespace consumes exactly 2
// bytes per NextChar call.
func TestCIDFontIdentityHNextChar(t *testing.T) {
	descendant := descendantCIDFontDict(nil, nil)
	d := cidFontDict(t, core.MakeName("Identity-H"), descendant)

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)

	data := []byte{0x00, 0x41, 0x00, 0x41}
	code1, n1, ok1 := font.NextChar(data)
	require.True(t, ok1)
	require.Equal(t, 2, n1)
	require.Equal(t, CharCode(0x0041), code1)

	code2, n2, ok2 := font.NextChar(data[n1:])
	require.True(t, ok2)
	require.Equal(t, 2, n2)
	require.Equal(t, code1, code2)
}

// Scenario 4 continued: decoding through a ToUnicode CMap on the Type0 font
// dict (keyed by raw CharCode, not CID).
func TestCIDFontToUnicodeDecode(t *testing.T) {
	toUnicode := []byte(`
		1 begincodespacerange
		<0000> <FFFF>
		endcodespacerange
		1 beginbfchar
		<0041> <03A9>
		endbfchar
	`)
	descendant := descendantCIDFontDict(nil, nil)
	d := cidFontDict(t, core.MakeName("Identity-H"), descendant)
	d.Set("ToUnicode", core.MakeStream(toUnicode, nil))

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)

	require.Equal(t, "Ω", font.Decode(0x0041))
	require.Equal(t, "Ω", font.Decode(0x0041))
}

// /W two-alternative state machine: (cid, [w0, w1, ...]) form.
func TestCIDFontWidthsArrayForm(t *testing.T) {
	w := core.MakeArray(
		core.MakeInteger(10),
		core.MakeArrayFromFloats([]float64{100, 200, 300}),
	)
	descendant := descendantCIDFontDict(w, core.MakeInteger(1000))
	d := cidFontDict(t, core.MakeName("Identity-H"), descendant)

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)

	require.Equal(t, float64(100), font.Width(10))
	require.Equal(t, float64(200), font.Width(11))
	require.Equal(t, float64(300), font.Width(12))
	require.Equal(t, float64(1000), font.Width(13)) // no entry, falls back to /DW.
}

// /W two-alternative state machine: (c_first, c_last, w) range form.
func TestCIDFontWidthsRangeForm(t *testing.T) {
	w := core.MakeArray(
		core.MakeInteger(20), core.MakeInteger(25), core.MakeFloat(450),
	)
	descendant := descendantCIDFontDict(w, nil)
	d := cidFontDict(t, core.MakeName("Identity-H"), descendant)

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)

	for cid := CharCode(20); cid <= 25; cid++ {
		require.Equal(t, float64(450), font.Width(cid))
	}
	require.Equal(t, float64(1000), font.Width(26)) // default /DW is 1000 when unset.
}

// A malformed /W tail (a dangling c_first with no c_last/w pair) is
// silently truncated rather than erroring.
func TestCIDFontWidthsMalformedTailTruncated(t *testing.T) {
	w := core.MakeArray(
		core.MakeInteger(30), core.MakeInteger(31), core.MakeFloat(500),
		core.MakeInteger(40), // dangling: no c_last/w follows.
	)
	descendant := descendantCIDFontDict(w, nil)
	d := cidFontDict(t, core.MakeName("Identity-H"), descendant)

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)

	require.Equal(t, float64(500), font.Width(30))
	require.Equal(t, float64(1000), font.Width(40))
}

// An embedded CMap stream (rather than a predefined Identity name) is also
// parsed into the encoding codespace.
func TestCIDFontEmbeddedCMapStream(t *testing.T) {
	program := []byte(`
		1 begincodespacerange
		<0000> <FFFF>
		endcodespacerange
		1 begincidrange
		<0000> <FFFF> 0
		endcidrange
	`)
	descendant := descendantCIDFontDict(nil, nil)
	d := cidFontDict(t, core.MakeStream(program, nil), descendant)

	doc := NewMemDocument("1.7", nil, nil, nil)
	font, err := BuildFont(doc, d)
	require.NoError(t, err)

	_, n, ok := font.NextChar([]byte{0x12, 0x34})
	require.True(t, ok)
	require.Equal(t, 2, n)
}
