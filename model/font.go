/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"

	"github.com/vellumpdf/pdftext/common"
	"github.com/vellumpdf/pdftext/core"
	"github.com/vellumpdf/pdftext/internal/cmap"
)

// CharCode is a decoded code point from a content-stream string. It is
// font-local, not a Unicode code point.
type CharCode = cmap.CharCode

// Font is the polymorphic font entity: SimpleFont, Type3Font or CIDFont.
// A Font is immutable after construction and safe to share across pages
// and concurrent interpreters.
type Font interface {
	// BaseFont returns the font's /BaseFont name.
	BaseFont() string
	// Subtype returns the font dictionary's /Subtype name.
	Subtype() string
	// FontDescriptor returns the font's descriptor, or nil if it has none.
	FontDescriptor() *PdfFontDescriptor
	// NextChar reads one CharCode from the front of data, returning the
	// number of bytes consumed (1 for SimpleFont/Type3Font, 1-4 for
	// CIDFont per its codespace). ok is false once data is exhausted.
	NextChar(data []byte) (code CharCode, consumed int, ok bool)
	// Width returns the glyph width for code in 1/1000 text-space units
	// (raw PDF units; the interpreter divides by 1000 to get text space).
	Width(code CharCode) float64
	// Decode returns the Unicode string for code.
	Decode(code CharCode) string
}

// fontCommon holds the fields shared by every Font variant.
type fontCommon struct {
	basefont string
	subtype  string
	name     string

	fontDescriptor *PdfFontDescriptor
	toUnicodeCmap  *cmap.CMap
}

func (b *fontCommon) BaseFont() string                  { return b.basefont }
func (b *fontCommon) Subtype() string                   { return b.subtype }
func (b *fontCommon) FontDescriptor() *PdfFontDescriptor { return b.fontDescriptor }

// decodeViaToUnicode looks code up in the font's ToUnicode CMap, if any.
func (b *fontCommon) decodeViaToUnicode(code CharCode) (string, bool) {
	if b.toUnicodeCmap == nil {
		return "", false
	}
	return b.toUnicodeCmap.CharcodeToUnicode(code)
}

func (b *fontCommon) String() string {
	return fmt.Sprintf("FONT{%#q %#q}", b.subtype, b.basefont)
}

// BuildFont dispatches on font_dict's /Subtype to construct a Font. doc is
// used to resolve references reached along the way (/FontDescriptor,
// /DescendantFonts, /ToUnicode, ...).
func BuildFont(doc Document, fontObj core.PdfObject) (Font, error) {
	fontObj = Resolve(doc, fontObj)
	d, base, err := newFontBaseFieldsFromPdfObject(doc, fontObj)
	if err != nil {
		return nil, err
	}

	switch base.subtype {
	case "Type0":
		return newCIDFontFromPdfObject(doc, d, base)
	case "Type3":
		return newType3FontFromPdfObject(doc, d, base)
	default:
		return newSimpleFontFromPdfObject(doc, d, base)
	}
}

// newFontBaseFieldsFromPdfObject extracts the fields common to every font
// dictionary, regardless of its /Subtype.
func newFontBaseFieldsFromPdfObject(doc Document, fontObj core.PdfObject) (*core.PdfObjectDictionary, *fontCommon, error) {
	base := &fontCommon{}

	d, ok := core.GetDict(fontObj)
	if !ok {
		common.Log.Debug("ERROR: font not given by a dictionary (%T)", fontObj)
		return nil, nil, ErrFontNotSupported
	}

	subtype, ok := core.GetNameVal(d.Get("Subtype"))
	if !ok {
		common.Log.Debug("ERROR: font Subtype (required) missing")
		return nil, nil, ErrRequiredAttributeMissing
	}
	base.subtype = subtype

	if name, ok := core.GetNameVal(d.Get("Name")); ok {
		base.name = name
	}

	if basefont, ok := core.GetNameVal(d.Get("BaseFont")); ok {
		base.basefont = basefont
	} else {
		common.Log.Debug("WARN: font BaseFont missing. subtype=%s", subtype)
	}

	if obj := Resolve(doc, d.Get("FontDescriptor")); obj != nil {
		descriptor, err := newPdfFontDescriptorFromPdfObject(doc, obj)
		if err != nil {
			common.Log.Debug("WARN: bad font descriptor. err=%v", err)
		} else {
			base.fontDescriptor = descriptor
		}
	}

	if obj := Resolve(doc, d.Get("ToUnicode")); obj != nil {
		cm, err := toUnicodeToCmap(doc, obj, base.isCIDFont())
		if err != nil {
			common.Log.Debug("WARN: could not load ToUnicode CMap. err=%v", err)
		} else {
			base.toUnicodeCmap = cm
		}
	}

	return d, base, nil
}

// isCIDFont returns true if base names a CID (Type0 or descendant) subtype.
func (b *fontCommon) isCIDFont() bool {
	switch b.subtype {
	case "Type0", "CIDFontType0", "CIDFontType2":
		return true
	}
	return false
}

// toUnicodeToCmap parses a /ToUnicode stream into a CMap.
func toUnicodeToCmap(doc Document, toUnicode core.PdfObject, isCID bool) (*cmap.CMap, error) {
	stream, ok := core.GetStream(toUnicode)
	if !ok {
		return nil, core.ErrTypeError
	}
	return cmap.LoadCmapFromData(stream.Stream, !isCID)
}

// 9.8.2 Font Descriptor Flags (page 283)
const (
	fontFlagFixedPitch  = 0x00001
	fontFlagSerif       = 0x00002
	fontFlagSymbolic    = 0x00004
	fontFlagNonsymbolic = 0x00020
	fontFlagItalic      = 0x00040
)

// PdfFontDescriptor carries the metrics and embedded-font-file information
// of a font: MissingWidth and the embedded-encoding resolution it enables.
type PdfFontDescriptor struct {
	FontName     string
	Flags        int
	MissingWidth float64

	fontFile *fontFile // embedded Type1 (FontFile) encoding, if any.
}

// newPdfFontDescriptorFromPdfObject loads a font descriptor from a resolved
// /FontDescriptor dictionary.
func newPdfFontDescriptorFromPdfObject(doc Document, obj core.PdfObject) (*PdfFontDescriptor, error) {
	d, ok := core.GetDict(obj)
	if !ok {
		common.Log.Debug("ERROR: FontDescriptor not given by a dictionary (%T)", obj)
		return nil, core.ErrTypeError
	}

	descriptor := &PdfFontDescriptor{}
	if name, ok := core.GetNameVal(d.Get("FontName")); ok {
		descriptor.FontName = name
	}
	if flags, ok := core.GetIntVal(d.Get("Flags")); ok {
		descriptor.Flags = flags
	}
	if mw, err := core.GetNumberAsFloat(d.Get("MissingWidth")); err == nil {
		descriptor.MissingWidth = mw
	}

	if ff := Resolve(doc, d.Get("FontFile")); ff != nil {
		fontFile, err := newFontFileFromPdfObject(doc, ff)
		if err != nil {
			common.Log.Debug("WARN: could not load embedded FontFile. err=%v", err)
		} else {
			descriptor.fontFile = fontFile
		}
	}
	if ff3 := Resolve(doc, d.Get("FontFile3")); ff3 != nil {
		if s, ok := core.GetStream(ff3); ok {
			if subtype, _ := core.GetNameVal(s.Get("Subtype")); subtype == "Type1C" {
				common.Log.Debug("Type1C embedded fonts are not currently supported (%v)", ErrType1CFontNotSupported)
			}
		}
	}

	return descriptor, nil
}

func (desc *PdfFontDescriptor) String() string {
	return fmt.Sprintf("FONT_DESCRIPTOR{%#q flags=0x%x}", desc.FontName, desc.Flags)
}

// isSymbolic reports the FontDescriptor's Symbolic flag, used as the
// builtin-encoding fallback for Symbol/ZapfDingbats-named fonts.
func (desc *PdfFontDescriptor) isSymbolic() bool {
	return desc != nil && desc.Flags&fontFlagSymbolic != 0
}
