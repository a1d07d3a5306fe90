/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"strings"

	"github.com/vellumpdf/pdftext/common"
	"github.com/vellumpdf/pdftext/core"
	"github.com/vellumpdf/pdftext/internal/textencoding"
	"github.com/vellumpdf/pdftext/model/internal/fonts"
)

// simpleFont is the SimpleFont variant of Font: a single-byte encoding maps
// character codes to glyphs, with per-glyph widths coming from /Widths or,
// for one of the 14 standard fonts with no /Widths, from the standard
// font's built-in metrics.
type simpleFont struct {
	fontCommon

	charWidths map[CharCode]float64
	encoder    textencoding.SimpleEncoder

	// std14 holds the built-in metrics and encoder of a standard-14 base
	// font, used as a fallback when the font dict supplies neither.
	std14 *fonts.StdFont
}

var _ Font = (*simpleFont)(nil)

func (f *simpleFont) NextChar(data []byte) (CharCode, int, bool) {
	if len(data) == 0 {
		return 0, 0, false
	}
	return CharCode(data[0]), 1, true
}

func (f *simpleFont) Width(code CharCode) float64 {
	if w, ok := f.charWidths[code]; ok {
		return w
	}
	if f.std14 != nil && len(f.charWidths) == 0 {
		if r, ok := f.runeForCode(code); ok {
			if m, ok := f.std14.GetRuneMetrics(r); ok {
				return m.Wx
			}
		}
	}
	if f.fontDescriptor != nil {
		return f.fontDescriptor.MissingWidth
	}
	return 0
}

func (f *simpleFont) Decode(code CharCode) string {
	if s, ok := f.decodeViaToUnicode(code); ok {
		return s
	}
	r, ok := f.runeForCode(code)
	if !ok || r == 0 {
		return ""
	}
	return string(r)
}

func (f *simpleFont) runeForCode(code CharCode) (rune, bool) {
	if f.encoder != nil {
		return f.encoder.CharcodeToRune(textencoding.CharCode(code))
	}
	if f.std14 != nil {
		return f.std14.Encoder().CharcodeToRune(textencoding.CharCode(code))
	}
	return 0, false
}

// builtinEncodingNames maps the symbolic standard fonts to their own
// non-Latin builtin encoding, applied by BaseFont name when no embedded
// font-file encoding is available to consult instead.
var builtinEncodingNames = map[string]string{
	"Symbol":       "SymbolEncoding",
	"ZapfDingbats": "ZapfDingbatsEncoding",
}

// newSimpleFontFromPdfObject builds a SimpleFont from a font dictionary of
// any /Subtype other than Type0 or Type3.
func newSimpleFontFromPdfObject(doc Document, d *core.PdfObjectDictionary, base *fontCommon) (Font, error) {
	font := &simpleFont{fontCommon: *base}

	if std, ok := fonts.NewStdFontByName(fonts.StdFontName(base.basefont)); ok {
		font.std14 = &std
	}

	if err := font.loadWidths(d); err != nil {
		return nil, err
	}
	if err := font.loadEncoding(doc, d); err != nil {
		common.Log.Debug("WARN: could not resolve encoding for font %s: %v", base.basefont, err)
	}
	return font, nil
}

// loadWidths fills charWidths from /FirstChar, /LastChar and /Widths. A
// standard-14 font with no /Widths is left with an empty map; Width falls
// back to the std14 metrics table.
func (f *simpleFont) loadWidths(d *core.PdfObjectDictionary) error {
	f.charWidths = make(map[CharCode]float64)

	widthsObj := d.Get("Widths")
	if widthsObj == nil {
		return nil
	}
	arr, ok := core.GetArray(widthsObj)
	if !ok {
		return core.ErrTypeError
	}
	widths, err := core.GetNumbersAsFloat(arr.Elements())
	if err != nil {
		return err
	}

	firstChar := 0
	if v, ok := core.GetIntVal(d.Get("FirstChar")); ok {
		firstChar = v
	}
	for i, w := range widths {
		f.charWidths[CharCode(firstChar+i)] = w
	}
	return nil
}

// loadEncoding resolves the font's active 256-entry encoding, in order:
// explicit /Encoding name, explicit /Encoding dict (BaseEncoding +
// Differences), embedded Type1 FontFile encoding, default WinAnsi for
// TrueType, else none.
func (f *simpleFont) loadEncoding(doc Document, d *core.PdfObjectDictionary) error {
	baseName, differences, explicit, err := f.resolveEncodingEntry(doc, d)
	if err != nil {
		return err
	}

	var base textencoding.SimpleEncoder
	if baseName != "" {
		base, err = textencoding.NewSimpleTextEncoder(baseName, nil)
		if err != nil {
			return err
		}
	} else if !explicit {
		if ff := f.fontDescriptor; ff != nil && ff.fontFile != nil && ff.fontFile.encoder != nil && f.subtype == "Type1" {
			base = ff.fontFile.encoder
		} else if f.subtype == "TrueType" {
			base, err = textencoding.NewSimpleTextEncoder("WinAnsiEncoding", nil)
			if err != nil {
				return err
			}
		}
	}

	if base == nil {
		return nil
	}
	if len(differences) > 0 {
		base = textencoding.ApplyDifferences(base, differences)
	}
	f.encoder = base
	return nil
}

// resolveEncodingEntry inspects the font dict's /Encoding entry (absent,
// name, or dict) and returns the base encoding name to use (empty if none
// named explicitly) along with any /Differences. explicit reports whether
// /Encoding was present at all, so the caller knows not to fall through to
// the embedded-font-file/TrueType defaults.
func (f *simpleFont) resolveEncodingEntry(doc Document, d *core.PdfObjectDictionary) (baseName string, differences map[textencoding.CharCode]textencoding.GlyphName, explicit bool, err error) {
	encObj := Resolve(doc, d.Get("Encoding"))
	if encObj == nil {
		if name, ok := builtinEncodingNames[f.basefont]; ok {
			return name, nil, false, nil
		}
		if f.fontDescriptor.isSymbolic() {
			for base, name := range builtinEncodingNames {
				if strings.Contains(f.basefont, base) {
					return name, nil, false, nil
				}
			}
		}
		return "", nil, false, nil
	}

	switch enc := encObj.(type) {
	case *core.PdfObjectName:
		return string(*enc), nil, true, nil
	case *core.PdfObjectDictionary:
		if baseEnc, ok := core.GetNameVal(enc.Get("BaseEncoding")); ok {
			baseName = baseEnc
		}
		if diffObj := Resolve(doc, enc.Get("Differences")); diffObj != nil {
			diffArr, ok := core.GetArray(diffObj)
			if !ok {
				return "", nil, true, core.ErrTypeError
			}
			differences, err = textencoding.FromFontDifferences(diffArr)
			if err != nil {
				return "", nil, true, err
			}
		}
		if baseName == "" {
			baseName = "StandardEncoding"
		}
		return baseName, differences, true, nil
	default:
		return "", nil, true, core.ErrTypeError
	}
}

// type3Font is the Type3Font variant of Font: like SimpleFont, but glyphs
// are content-stream procedures (not rendered by this module) and there
// is no standard-14 width fallback — a missing width is a logged zero.
type type3Font struct {
	fontCommon
	charWidths map[CharCode]float64
	encoder    textencoding.SimpleEncoder
}

var _ Font = (*type3Font)(nil)

func (f *type3Font) NextChar(data []byte) (CharCode, int, bool) {
	if len(data) == 0 {
		return 0, 0, false
	}
	return CharCode(data[0]), 1, true
}

func (f *type3Font) Width(code CharCode) float64 {
	if w, ok := f.charWidths[code]; ok {
		return w
	}
	common.Log.Debug("ERROR: Type3 font %s has no width for code %d", f.basefont, code)
	return 0
}

func (f *type3Font) Decode(code CharCode) string {
	if s, ok := f.decodeViaToUnicode(code); ok {
		return s
	}
	if f.encoder == nil {
		return ""
	}
	r, ok := f.encoder.CharcodeToRune(textencoding.CharCode(code))
	if !ok || r == 0 {
		return ""
	}
	return string(r)
}

// newType3FontFromPdfObject builds a Type3Font from its font dictionary.
// /FirstChar, /LastChar, /Widths and /Encoding are all required: a Type3
// font program has no intrinsic metrics or encoding.
func newType3FontFromPdfObject(doc Document, d *core.PdfObjectDictionary, base *fontCommon) (Font, error) {
	font := &type3Font{fontCommon: *base, charWidths: make(map[CharCode]float64)}

	widthsObj := d.Get("Widths")
	if widthsObj == nil {
		common.Log.Debug("ERROR: Type3 font %s missing required /Widths", base.basefont)
		return font, nil
	}
	arr, ok := core.GetArray(widthsObj)
	if !ok {
		return nil, core.ErrTypeError
	}
	widths, err := core.GetNumbersAsFloat(arr.Elements())
	if err != nil {
		return nil, err
	}
	firstChar := 0
	if v, ok := core.GetIntVal(d.Get("FirstChar")); ok {
		firstChar = v
	}
	for i, w := range widths {
		font.charWidths[CharCode(firstChar+i)] = w
	}

	encObj := Resolve(doc, d.Get("Encoding"))
	encDict, ok := core.GetDict(encObj)
	if !ok {
		common.Log.Debug("WARN: Type3 font %s missing required /Encoding dictionary", base.basefont)
		return font, nil
	}
	baseName, _ := core.GetNameVal(encDict.Get("BaseEncoding"))
	if baseName == "" {
		baseName = "StandardEncoding"
	}
	enc, err := textencoding.NewSimpleTextEncoder(baseName, nil)
	if err != nil {
		return font, nil
	}
	if diffObj := Resolve(doc, encDict.Get("Differences")); diffObj != nil {
		if diffArr, ok := core.GetArray(diffObj); ok {
			if differences, err := textencoding.FromFontDifferences(diffArr); err == nil {
				enc = textencoding.ApplyDifferences(enc, differences)
			}
		}
	}
	font.encoder = enc
	return font, nil
}
