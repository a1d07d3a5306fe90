/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/vellumpdf/pdftext/core"
)

// Rectangle is an axis-aligned rectangle (llx,lly,urx,ury), the shape of
// a /MediaBox or /ArtBox entry.
type Rectangle struct {
	Llx, Lly, Urx, Ury float64
}

// NewRectangleFromArray builds a Rectangle from a 4-element PDF number
// array.
func NewRectangleFromArray(arr *core.PdfObjectArray) (*Rectangle, error) {
	if arr.Len() != 4 {
		return nil, core.ErrRangeError
	}
	vals, err := core.GetNumbersAsFloat(arr.Elements())
	if err != nil {
		return nil, err
	}
	return &Rectangle{Llx: vals[0], Lly: vals[1], Urx: vals[2], Ury: vals[3]}, nil
}

// Page is the page driver: it walks /Parent chains to resolve inherited
// /Resources and /MediaBox, resolves the non-inherited /ArtBox, and
// exposes the page's decoded content stream.
type Page struct {
	doc    Document
	id     ObjectID
	Number int

	Dict      *core.PdfObjectDictionary
	MediaBox  *Rectangle
	ArtBox    *Rectangle // non-inherited, optional
	Resources *Resources
}

// NewPage builds the Page at object id `id`, numbered `number` (1-based, as
// returned by Document.GetPages), walking /Parent for inheritance.
func NewPage(doc Document, number int, id ObjectID) (*Page, error) {
	obj, err := doc.GetObject(id)
	if err != nil {
		return nil, err
	}
	dict, ok := core.GetDict(obj)
	if !ok {
		return nil, core.ErrTypeError
	}

	mediaBox, err := resolveInheritedRectangle(doc, dict, "MediaBox")
	if err != nil {
		return nil, err
	}
	if mediaBox == nil {
		return nil, ErrRequiredAttributeMissing
	}

	var artBox *Rectangle
	if arr, ok := core.GetArray(dict.Get("ArtBox")); ok {
		artBox, err = NewRectangleFromArray(arr)
		if err != nil {
			return nil, err
		}
	}

	resDict, err := resolveInheritedResources(doc, dict)
	if err != nil {
		return nil, err
	}

	return &Page{
		doc:       doc,
		id:        id,
		Number:    number,
		Dict:      dict,
		MediaBox:  mediaBox,
		ArtBox:    artBox,
		Resources: NewResourcesFromDict(doc, resDict),
	}, nil
}

// Content returns the page's decoded, concatenated content-stream bytes;
// concatenation of multiple /Contents streams is the Document's
// responsibility.
func (p *Page) Content() ([]byte, error) {
	return p.doc.GetPageContent(p.id)
}

// Document returns the Document this page was built from, so that callers
// holding only a *Page (e.g. extractor.Extractor) can still resolve
// indirect references through it.
func (p *Page) Document() Document {
	return p.doc
}

// resolveInheritedRectangle walks /Parent looking for `key` ("MediaBox" or
// similar inheritable box entries). Returns nil, nil if no ancestor
// defines it.
func resolveInheritedRectangle(doc Document, dict *core.PdfObjectDictionary, key core.PdfObjectName) (*Rectangle, error) {
	node := dict
	for node != nil {
		if obj := node.Get(key); obj != nil {
			arr, ok := core.GetArray(Resolve(doc, obj))
			if !ok {
				return nil, core.ErrTypeError
			}
			return NewRectangleFromArray(arr)
		}
		parent := Resolve(doc, node.Get("Parent"))
		if parent == nil {
			return nil, nil
		}
		parentDict, ok := core.GetDict(parent)
		if !ok {
			return nil, nil
		}
		node = parentDict
	}
	return nil, nil
}

// resolveInheritedResources walks /Parent looking for /Resources.
func resolveInheritedResources(doc Document, dict *core.PdfObjectDictionary) (*core.PdfObjectDictionary, error) {
	node := dict
	for node != nil {
		if obj := node.Get("Resources"); obj != nil && !core.IsNullObject(obj) {
			resDict, ok := core.GetDict(Resolve(doc, obj))
			if !ok {
				return nil, core.ErrTypeError
			}
			return resDict, nil
		}
		parent := Resolve(doc, node.Get("Parent"))
		if parent == nil {
			return core.MakeDict(), nil
		}
		parentDict, ok := core.GetDict(parent)
		if !ok {
			return core.MakeDict(), nil
		}
		node = parentDict
	}
	return core.MakeDict(), nil
}

// Pages returns every page of `doc` in page-number order, built via NewPage.
func Pages(doc Document) ([]*Page, error) {
	ids, err := doc.GetPages()
	if err != nil {
		return nil, err
	}
	pages := make([]*Page, 0, len(ids))
	for number, id := range ids {
		page, err := NewPage(doc, number, id)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	sortPagesByNumber(pages)
	return pages, nil
}

func sortPagesByNumber(pages []*Page) {
	for i := 1; i < len(pages); i++ {
		for j := i; j > 0 && pages[j].Number < pages[j-1].Number; j-- {
			pages[j], pages[j-1] = pages[j-1], pages[j]
		}
	}
}
