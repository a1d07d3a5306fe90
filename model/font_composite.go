/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/vellumpdf/pdftext/common"
	"github.com/vellumpdf/pdftext/core"
	"github.com/vellumpdf/pdftext/internal/cmap"
)

// identityCMapProgram is the Adobe CMap program text for the predefined
// Identity-H/Identity-V encodings: a single 2-byte codespace covering every
// code, mapped to CID by identity. It is fed through the real CMap parser
// rather than hand-built, so it is exercised by the same code path as an
// embedded CMap stream.
const identityCMapProgram = `
begincodespacerange
<0000> <FFFF>
endcodespacerange
begincidrange
<0000> <FFFF> 0
endcidrange
`

// cidFont is the CIDFont variant of Font: a Type0 font whose encoding is
// a CMap ByteMapping (codespace + CID ranges) rather than a 256-entry
// table, consuming 1-4 bytes per CharCode.
type cidFont struct {
	fontCommon

	encoding     *cmap.CMap // code -> CID, and the codespace NextChar consumes against.
	widths       map[CharCode]float64 // keyed by CID.
	defaultWidth float64
}

var _ Font = (*cidFont)(nil)

// NextChar consumes 1-4 bytes per the encoding CMap's codespace ranges.
// A font with no usable encoding falls back to a fixed 2-byte read,
// matching the Identity-H/V shape most CIDFonts use in practice.
func (f *cidFont) NextChar(data []byte) (CharCode, int, bool) {
	if f.encoding != nil {
		return f.encoding.NextCode(data)
	}
	if len(data) < 2 {
		return 0, 0, false
	}
	return CharCode(data[0])<<8 | CharCode(data[1]), 2, true
}

// cidForCode translates a raw CharCode to its CID via the encoding CMap.
// Codes with no CID mapping pass through unchanged, matching an identity
// encoding with no explicit range covering them.
func (f *cidFont) cidForCode(code CharCode) CharCode {
	if f.encoding == nil {
		return code
	}
	if cid, ok := f.encoding.CharcodeToCID(code); ok {
		return cid
	}
	return code
}

// Width looks up the glyph width for code's CID in the /W table, falling
// back to /DW.
func (f *cidFont) Width(code CharCode) float64 {
	cid := f.cidForCode(code)
	if w, ok := f.widths[cid]; ok {
		return w
	}
	return f.defaultWidth
}

// Decode returns the ToUnicode mapping for code. CIDFont ToUnicode CMaps are
// keyed by the raw CharCode, not the CID.
func (f *cidFont) Decode(code CharCode) string {
	if s, ok := f.decodeViaToUnicode(code); ok {
		return s
	}
	return ""
}

// newCIDFontFromPdfObject builds a CIDFont from a Type0 font dictionary:
// /DescendantFonts supplies widths, /Encoding supplies the codespace and
// CID mapping.
func newCIDFontFromPdfObject(doc Document, d *core.PdfObjectDictionary, base *fontCommon) (Font, error) {
	descArr, ok := core.GetArray(d.Get("DescendantFonts"))
	if !ok || descArr.Len() < 1 {
		common.Log.Debug("ERROR: Type0 font %s missing required /DescendantFonts", base.basefont)
		return nil, ErrRequiredAttributeMissing
	}
	descObj := Resolve(doc, descArr.Get(0))
	descDict, ok := core.GetDict(descObj)
	if !ok {
		common.Log.Debug("ERROR: Type0 font %s DescendantFonts[0] not a dictionary", base.basefont)
		return nil, core.ErrTypeError
	}

	font := &cidFont{fontCommon: *base, defaultWidth: 1000}

	if dw, err := core.GetNumberAsFloat(descDict.Get("DW")); err == nil {
		font.defaultWidth = dw
	}
	widths, err := parseCIDFontWidths(Resolve(doc, descDict.Get("W")))
	if err != nil {
		return nil, err
	}
	font.widths = widths

	enc, err := loadCIDEncoding(doc, d.Get("Encoding"))
	if err != nil {
		common.Log.Debug("WARN: could not resolve encoding for font %s: %v", base.basefont, err)
	} else {
		font.encoding = enc
	}

	return font, nil
}

// loadCIDEncoding resolves a Type0 font's /Encoding entry: the predefined
// Identity-H/Identity-V names, or an embedded CMap stream. Any other
// predefined CMap name is not a currently supported encoding.
func loadCIDEncoding(doc Document, encObj core.PdfObject) (*cmap.CMap, error) {
	encObj = Resolve(doc, encObj)
	switch enc := encObj.(type) {
	case *core.PdfObjectName:
		name := string(*enc)
		if name == "Identity-H" || name == "Identity-V" {
			return cmap.LoadCmapFromDataCID([]byte(identityCMapProgram))
		}
		common.Log.Debug("Unsupported predefined CMap encoding %q", name)
		return nil, core.ErrRangeError
	default:
		stream, ok := core.GetStream(encObj)
		if !ok {
			return nil, core.ErrTypeError
		}
		return cmap.LoadCmapFromDataCID(stream.Stream)
	}
}

// parseCIDFontWidths implements the /W array's two-alternative state
// machine: at index i, if the element at i+1 is an array, interpret
// (cid, [w0, w1, ...]); otherwise (c_first, c_last, w). A malformed tail
// (missing operand at the end of the array) is silently truncated.
func parseCIDFontWidths(w core.PdfObject) (map[CharCode]float64, error) {
	widths := map[CharCode]float64{}
	if w == nil {
		return widths, nil
	}
	arr, ok := core.GetArray(w)
	if !ok {
		return nil, core.ErrTypeError
	}

	elts := arr.Elements()
	i := 0
	for i < len(elts) {
		cid, ok := core.GetIntVal(elts[i])
		if !ok || i+1 >= len(elts) {
			break
		}
		i++

		if next, ok := core.GetArray(elts[i]); ok {
			ws, err := next.ToFloat64Array()
			if err != nil {
				return nil, err
			}
			for j, wv := range ws {
				widths[CharCode(cid+j)] = wv
			}
			i++
			continue
		}

		last, ok := core.GetIntVal(elts[i])
		if !ok || i+1 >= len(elts) {
			break
		}
		wv, err := core.GetNumberAsFloat(elts[i+1])
		if err != nil {
			break
		}
		for c := cid; c <= last; c++ {
			widths[CharCode(c)] = wv
		}
		i += 2
	}

	return widths, nil
}
