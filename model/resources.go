/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/vellumpdf/pdftext/common"
	"github.com/vellumpdf/pdftext/core"
)

// XObjectType distinguishes the XObject subtypes the interpreter cares
// about. Image content is out of scope; XObjectTypeImage is still
// classified so Do can skip it instead of misreading it as a form.
type XObjectType int

// XObject types.
const (
	XObjectTypeUndefined XObjectType = iota
	XObjectTypeImage
	XObjectTypeForm
)

// Resources is a page (or form XObject) resource dictionary: Font/XObject/
// ExtGState/ColorSpace resolution by name, resolved through a Document so
// references are dereferenced explicitly at lookup time.
type Resources struct {
	doc Document

	Font       *core.PdfObjectDictionary
	ColorSpace *core.PdfObjectDictionary
	ExtGState  *core.PdfObjectDictionary
	XObject    *core.PdfObjectDictionary
}

// NewResourcesFromDict builds a Resources from a /Resources dictionary.
// Any of the sub-dictionaries may be absent; lookups against an absent
// sub-dictionary simply report "not found".
func NewResourcesFromDict(doc Document, dict *core.PdfObjectDictionary) *Resources {
	r := &Resources{doc: doc}
	if d, ok := core.GetDict(Resolve(doc, dict.Get("Font"))); ok {
		r.Font = d
	}
	if d, ok := core.GetDict(Resolve(doc, dict.Get("ColorSpace"))); ok {
		r.ColorSpace = d
	}
	if d, ok := core.GetDict(Resolve(doc, dict.Get("ExtGState"))); ok {
		r.ExtGState = d
	}
	if d, ok := core.GetDict(Resolve(doc, dict.Get("XObject"))); ok {
		r.XObject = d
	}
	return r
}

// GetFontDict returns the font dictionary named `name` in /Font, or false if
// absent.
func (r *Resources) GetFontDict(name core.PdfObjectName) (*core.PdfObjectDictionary, bool) {
	if r.Font == nil {
		return nil, false
	}
	d, ok := core.GetDict(Resolve(r.doc, r.Font.Get(name)))
	return d, ok
}

// GetExtGState returns the /ExtGState dictionary named `name`.
func (r *Resources) GetExtGState(name core.PdfObjectName) (*core.PdfObjectDictionary, bool) {
	if r.ExtGState == nil {
		return nil, false
	}
	d, ok := core.GetDict(Resolve(r.doc, r.ExtGState.Get(name)))
	return d, ok
}

// GetColorspaceByName resolves the colorspace named `name` in /ColorSpace
// through NewColorspaceFromObject (classification only).
func (r *Resources) GetColorspaceByName(name core.PdfObjectName) (Colorspace, bool) {
	if r.ColorSpace == nil {
		return nil, false
	}
	obj := Resolve(r.doc, r.ColorSpace.Get(name))
	if obj == nil {
		return nil, false
	}
	cs, err := NewColorspaceFromObject(r.doc, obj)
	if err != nil {
		common.Log.Debug("WARN: could not resolve colorspace %q: %v", name, err)
		return nil, false
	}
	return cs, true
}

// GetXObject returns the XObject stream named `name` in /XObject along with
// its classified type, for the Do operator to dispatch on.
func (r *Resources) GetXObject(name core.PdfObjectName) (*core.PdfObjectStream, XObjectType) {
	if r.XObject == nil {
		return nil, XObjectTypeUndefined
	}
	obj := Resolve(r.doc, r.XObject.Get(name))
	stream, ok := core.GetStream(obj)
	if !ok {
		return nil, XObjectTypeUndefined
	}
	subtype, ok := core.GetNameVal(stream.Get("Subtype"))
	if !ok {
		return stream, XObjectTypeUndefined
	}
	switch subtype {
	case "Image":
		return stream, XObjectTypeImage
	case "Form":
		return stream, XObjectTypeForm
	default:
		return stream, XObjectTypeUndefined
	}
}
