/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vellumpdf/pdftext/core"
	"github.com/vellumpdf/pdftext/model"
)

// helveticaPage builds a one-page document with a single standard-14 font
// named F1 and the given content stream, backed by an in-memory Document.
func helveticaPage(t *testing.T, content string) *model.Page {
	t.Helper()
	fontDict := core.MakeDict()
	fontDict.Set("Type", core.MakeName("Font"))
	fontDict.Set("Subtype", core.MakeName("Type1"))
	fontDict.Set("BaseFont", core.MakeName("Helvetica"))

	fonts := core.MakeDict()
	fonts.Set("F1", fontDict)

	resources := core.MakeDict()
	resources.Set("Font", fonts)

	pageDict := core.MakeDict()
	pageDict.Set("MediaBox", core.MakeArrayFromFloats([]float64{0, 0, 612, 792}))
	pageDict.Set("Resources", resources)

	doc := model.NewMemDocument("1.7",
		map[model.ObjectID]core.PdfObject{1: pageDict},
		map[int]model.ObjectID{1: 1},
		map[model.ObjectID][]byte{1: []byte(content)})

	page, err := model.NewPage(doc, 1, 1)
	require.NoError(t, err)
	return page
}

// A single run of text on one line, with an explicit inter-word gap, comes
// back with exactly one space inserted. A fresh TextDevice's
// last_end/last_y default far from the first glyph's actual position, so
// the very first output on a page also carries the device's usual
// leading blank-line heuristic.
func TestExtractTextInsertsSpaceBetweenWords(t *testing.T) {
	page := helveticaPage(t, `BT /F1 12 Tf 100 700 Td (A) Tj 20 0 Td (B) Tj ET`)

	text, err := New(page).ExtractText()
	require.NoError(t, err)
	require.Equal(t, "\n\nA B", text)
}

// A large vertical jump back to the left margin trips both of the plain-
// text device's newline rules: the y-shift rule and the x-before-last-end
// rule are independent checks, so a new line starting back at the margin
// gets a blank line between paragraphs.
func TestExtractTextInsertsNewlineOnLargeYShift(t *testing.T) {
	page := helveticaPage(t, `BT /F1 12 Tf 100 700 Td (A) Tj ET BT /F1 12 Tf 100 600 Td (B) Tj ET`)

	text, err := New(page).ExtractText()
	require.NoError(t, err)
	require.Equal(t, "\n\nA\n\nB", text)
}

// Consecutive glyphs placed immediately adjacent to each other (as Tj
// normally emits within one string) are not separated by extra spaces.
func TestExtractTextNoSpaceWithinOneString(t *testing.T) {
	page := helveticaPage(t, `BT /F1 12 Tf 100 700 Td (AB) Tj ET`)

	text, err := New(page).ExtractText()
	require.NoError(t, err)
	require.Equal(t, "\n\nAB", text)
}

func TestExtractHTMLEmitsPageDiv(t *testing.T) {
	page := helveticaPage(t, `BT /F1 12 Tf 100 700 Td (Hi) Tj ET`)

	html, err := New(page).ExtractHTML()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(html, "<!-- page 1 -->"))
	require.Contains(t, html, "<div id='page1'")
	require.Contains(t, html, "Hi")
	require.True(t, strings.HasSuffix(html, "</div>"))
}

func TestExtractSVGEmitsDocument(t *testing.T) {
	page := helveticaPage(t, `1 0 0 1 0 0 cm 0 0 100 100 re f`)

	svg, err := New(page).ExtractSVG()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(svg, "<?xml"))
	require.Contains(t, svg, "<svg")
	require.Contains(t, svg, "<path d='M0 0 L100 0 L100 100 L0 100 Z' />")
	require.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestInsertNBSPKeepsSingleInteriorSpace(t *testing.T) {
	require.Equal(t, "A B", insertNBSP("A B"))
	require.Equal(t, "A&nbsp;&nbsp;B", insertNBSP("A  B"))
	require.Equal(t, "&nbsp;A", insertNBSP(" A"))
	require.Equal(t, "A&nbsp;", insertNBSP("A "))
}
