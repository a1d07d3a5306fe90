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

func mediaBoxArray(llx, lly, urx, ury float64) *core.PdfObjectArray {
	return core.MakeArrayFromFloats([]float64{llx, lly, urx, ury})
}

func TestPageMediaBoxOwnAndArtBox(t *testing.T) {
	pageDict := core.MakeDict()
	pageDict.Set("MediaBox", mediaBoxArray(0, 0, 612, 792))
	pageDict.Set("ArtBox", mediaBoxArray(10, 10, 600, 780))

	doc := NewMemDocument("1.7", map[ObjectID]core.PdfObject{1: pageDict},
		map[int]ObjectID{1: 1}, nil)

	page, err := NewPage(doc, 1, 1)
	require.NoError(t, err)
	require.Equal(t, &Rectangle{Llx: 0, Lly: 0, Urx: 612, Ury: 792}, page.MediaBox)
	require.NotNil(t, page.ArtBox)
	require.Equal(t, &Rectangle{Llx: 10, Lly: 10, Urx: 600, Ury: 780}, page.ArtBox)
}

// A page with no /MediaBox of its own inherits its parent's.
func TestPageMediaBoxInherited(t *testing.T) {
	parent := core.MakeDict()
	parent.Set("MediaBox", mediaBoxArray(0, 0, 595, 842))

	pageDict := core.MakeDict()
	pageDict.Set("Parent", &core.PdfObjectReference{ObjectNumber: 1})

	doc := NewMemDocument("1.7", map[ObjectID]core.PdfObject{1: parent, 2: pageDict},
		map[int]ObjectID{1: 2}, nil)

	page, err := NewPage(doc, 1, 2)
	require.NoError(t, err)
	require.Equal(t, &Rectangle{Llx: 0, Lly: 0, Urx: 595, Ury: 842}, page.MediaBox)
	require.Nil(t, page.ArtBox)
}

// A page with no /MediaBox anywhere in its /Parent chain is a required
// attribute missing error.
func TestPageMediaBoxMissingIsError(t *testing.T) {
	pageDict := core.MakeDict()
	doc := NewMemDocument("1.7", map[ObjectID]core.PdfObject{1: pageDict},
		map[int]ObjectID{1: 1}, nil)

	_, err := NewPage(doc, 1, 1)
	require.ErrorIs(t, err, ErrRequiredAttributeMissing)
}

// /Resources is inherited the same way /MediaBox is.
func TestPageResourcesInherited(t *testing.T) {
	fontDict := core.MakeDict()
	resources := core.MakeDict()
	resources.Set("Font", fontDict)

	parent := core.MakeDict()
	parent.Set("MediaBox", mediaBoxArray(0, 0, 612, 792))
	parent.Set("Resources", resources)

	pageDict := core.MakeDict()
	pageDict.Set("Parent", &core.PdfObjectReference{ObjectNumber: 1})

	doc := NewMemDocument("1.7", map[ObjectID]core.PdfObject{1: parent, 2: pageDict},
		map[int]ObjectID{1: 2}, nil)

	page, err := NewPage(doc, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, page.Resources)
	require.Same(t, fontDict, page.Resources.Font)
}

// A page with no /Resources anywhere resolves to an empty (non-nil)
// Resources, so lookups simply report "not found" rather than panicking.
func TestPageResourcesAbsent(t *testing.T) {
	pageDict := core.MakeDict()
	pageDict.Set("MediaBox", mediaBoxArray(0, 0, 612, 792))

	doc := NewMemDocument("1.7", map[ObjectID]core.PdfObject{1: pageDict},
		map[int]ObjectID{1: 1}, nil)

	page, err := NewPage(doc, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, page.Resources)
	_, ok := page.Resources.GetFontDict("F1")
	require.False(t, ok)
}

func TestPageContentDelegatesToDocument(t *testing.T) {
	pageDict := core.MakeDict()
	pageDict.Set("MediaBox", mediaBoxArray(0, 0, 612, 792))

	doc := NewMemDocument("1.7", map[ObjectID]core.PdfObject{1: pageDict},
		map[int]ObjectID{1: 1}, map[ObjectID][]byte{1: []byte("BT ET")})

	page, err := NewPage(doc, 1, 1)
	require.NoError(t, err)
	content, err := page.Content()
	require.NoError(t, err)
	require.Equal(t, []byte("BT ET"), content)
}
