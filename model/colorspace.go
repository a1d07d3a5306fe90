/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"

	"github.com/vellumpdf/pdftext/common"
	"github.com/vellumpdf/pdftext/core"
)

// Colorspace is a classified, unevaluated PDF colorspace. Colorspaces are
// identified so that the content-stream interpreter can special-case
// Pattern (SC/SCN store an empty color tuple) and report a component
// count for SC/SCN validation; they are never converted to RGB or
// otherwise evaluated.
type Colorspace interface {
	// Name returns the colorspace family name, e.g. "DeviceRGB", "ICCBased".
	Name() string
	// Components returns the number of color components, or -1 if it
	// depends on data this package does not evaluate (e.g. an unresolved
	// DeviceN without a /Names array, or Pattern, which has none).
	Components() int
}

// DeviceGrayColorspace, DeviceRGBColorspace, DeviceCMYKColorspace and
// PatternColorspace are the device/special colorspaces identified by a
// bare name.
type DeviceGrayColorspace struct{}
type DeviceRGBColorspace struct{}
type DeviceCMYKColorspace struct{}
type PatternColorspace struct{}

func (DeviceGrayColorspace) Name() string { return "DeviceGray" }
func (DeviceGrayColorspace) Components() int { return 1 }

func (DeviceRGBColorspace) Name() string { return "DeviceRGB" }
func (DeviceRGBColorspace) Components() int { return 3 }

func (DeviceCMYKColorspace) Name() string { return "DeviceCMYK" }
func (DeviceCMYKColorspace) Components() int { return 4 }

func (PatternColorspace) Name() string { return "Pattern" }
func (PatternColorspace) Components() int { return -1 }

// DeviceNColorspace is `[/DeviceN names alternate tintTransform]`.
type DeviceNColorspace struct {
	Names []string
}

func (cs *DeviceNColorspace) Name() string      { return "DeviceN" }
func (cs *DeviceNColorspace) Components() int   { return len(cs.Names) }

// ICCBasedColorspace is `[/ICCBased stream]`: the raw ICC profile bytes
// are kept but never parsed, since evaluating a colorspace beyond
// classification is out of scope.
type ICCBasedColorspace struct {
	N       int // number of components, from the stream's /N entry
	Profile []byte
}

func (cs *ICCBasedColorspace) Name() string    { return "ICCBased" }
func (cs *ICCBasedColorspace) Components() int { return cs.N }

// CalGrayColorspace is `[/CalGray dict]`.
type CalGrayColorspace struct {
	WhitePoint [3]float64
	BlackPoint [3]float64
	Gamma      float64
}

func (cs *CalGrayColorspace) Name() string    { return "CalGray" }
func (cs *CalGrayColorspace) Components() int { return 1 }

// CalRGBColorspace is `[/CalRGB dict]`.
type CalRGBColorspace struct {
	WhitePoint [3]float64
	BlackPoint [3]float64
	Gamma      [3]float64
	Matrix     [9]float64
}

func (cs *CalRGBColorspace) Name() string    { return "CalRGB" }
func (cs *CalRGBColorspace) Components() int { return 3 }

// LabColorspace is `[/Lab dict]`.
type LabColorspace struct {
	WhitePoint [3]float64
	BlackPoint [3]float64
	Range      [4]float64
}

func (cs *LabColorspace) Name() string    { return "Lab" }
func (cs *LabColorspace) Components() int { return 3 }

// SeparationColorspace is `[/Separation name alternate tintTransform]`. The
// tint-transform Function is stored (model.Function, §6) but not evaluated.
type SeparationColorspace struct {
	ColorantName string
	Alternate    Colorspace
	TintTransform Function
}

func (cs *SeparationColorspace) Name() string    { return "Separation" }
func (cs *SeparationColorspace) Components() int { return 1 }

// NewColorspaceFromObject classifies `obj` (a resolved /ColorSpace or /CS
// entry) into a Colorspace. Unknown tokens return an error rather than
// panicking; the caller falls back to DeviceGray.
func NewColorspaceFromObject(doc Document, obj core.PdfObject) (Colorspace, error) {
	obj = Resolve(doc, obj)

	if name, ok := core.GetNameVal(obj); ok {
		switch name {
		case "DeviceGray", "CalGray", "G":
			return DeviceGrayColorspace{}, nil
		case "DeviceRGB", "RGB":
			return DeviceRGBColorspace{}, nil
		case "DeviceCMYK", "CMYK":
			return DeviceCMYKColorspace{}, nil
		case "Pattern":
			return PatternColorspace{}, nil
		default:
			return nil, fmt.Errorf("%w: unknown colorspace name %q", core.ErrNotSupported, name)
		}
	}

	arr, ok := core.GetArray(obj)
	if !ok || arr.Len() == 0 {
		return nil, core.ErrTypeError
	}
	family, ok := core.GetNameVal(arr.Get(0))
	if !ok {
		return nil, core.ErrTypeError
	}

	switch family {
	case "ICCBased":
		return newICCBasedColorspace(doc, arr)
	case "CalGray":
		return newCalGrayColorspace(doc, arr)
	case "CalRGB":
		return newCalRGBColorspace(doc, arr)
	case "Lab":
		return newLabColorspace(doc, arr)
	case "Separation":
		return newSeparationColorspace(doc, arr)
	case "DeviceN":
		return newDeviceNColorspace(doc, arr)
	case "Indexed":
		// Indexed wraps a base colorspace plus a lookup table; the base
		// family is what matters for component-count classification here.
		if arr.Len() < 2 {
			return nil, core.ErrRangeError
		}
		return NewColorspaceFromObject(doc, arr.Get(1))
	case "DeviceGray", "DeviceRGB", "DeviceCMYK", "Pattern":
		return NewColorspaceFromObject(doc, arr.Get(0))
	default:
		return nil, fmt.Errorf("%w: unknown colorspace family %q", core.ErrNotSupported, family)
	}
}

func newICCBasedColorspace(doc Document, arr *core.PdfObjectArray) (Colorspace, error) {
	if arr.Len() < 2 {
		return nil, core.ErrRangeError
	}
	stream, ok := core.GetStream(Resolve(doc, arr.Get(1)))
	if !ok {
		return nil, core.ErrTypeError
	}
	n, _ := core.GetIntVal(stream.Get("N"))
	return &ICCBasedColorspace{N: n, Profile: stream.Stream}, nil
}

func newCalGrayColorspace(doc Document, arr *core.PdfObjectArray) (Colorspace, error) {
	dict, err := separationOrCalDict(doc, arr)
	if err != nil {
		return nil, err
	}
	wp, err := requiredPoint3(dict, "WhitePoint")
	if err != nil {
		return nil, err
	}
	cs := &CalGrayColorspace{WhitePoint: wp, Gamma: 1}
	if g, ok := core.GetFloatVal(dict.Get("Gamma")); ok {
		cs.Gamma = g
	}
	if bp, ok := point3(dict, "BlackPoint"); ok {
		cs.BlackPoint = bp
	}
	return cs, nil
}

func newCalRGBColorspace(doc Document, arr *core.PdfObjectArray) (Colorspace, error) {
	dict, err := separationOrCalDict(doc, arr)
	if err != nil {
		return nil, err
	}
	wp, err := requiredPoint3(dict, "WhitePoint")
	if err != nil {
		return nil, err
	}
	cs := &CalRGBColorspace{WhitePoint: wp, Gamma: [3]float64{1, 1, 1}}
	if bp, ok := point3(dict, "BlackPoint"); ok {
		cs.BlackPoint = bp
	}
	if g, ok := point3(dict, "Gamma"); ok {
		cs.Gamma = g
	}
	if m, ok := core.GetArray(dict.Get("Matrix")); ok {
		vals, err := core.GetNumbersAsFloat(m.Elements())
		if err == nil && len(vals) == 9 {
			copy(cs.Matrix[:], vals)
		}
	}
	return cs, nil
}

func newLabColorspace(doc Document, arr *core.PdfObjectArray) (Colorspace, error) {
	dict, err := separationOrCalDict(doc, arr)
	if err != nil {
		return nil, err
	}
	wp, err := requiredPoint3(dict, "WhitePoint")
	if err != nil {
		return nil, err
	}
	cs := &LabColorspace{WhitePoint: wp, Range: [4]float64{-100, 100, -100, 100}}
	if bp, ok := point3(dict, "BlackPoint"); ok {
		cs.BlackPoint = bp
	}
	if r, ok := core.GetArray(dict.Get("Range")); ok {
		vals, err := core.GetNumbersAsFloat(r.Elements())
		if err == nil && len(vals) == 4 {
			copy(cs.Range[:], vals)
		}
	}
	return cs, nil
}

func newSeparationColorspace(doc Document, arr *core.PdfObjectArray) (Colorspace, error) {
	if arr.Len() < 4 {
		return nil, core.ErrRangeError
	}
	name, ok := core.GetNameVal(Resolve(doc, arr.Get(1)))
	if !ok {
		return nil, core.ErrTypeError
	}
	alt, err := NewColorspaceFromObject(doc, arr.Get(2))
	if err != nil {
		common.Log.Debug("WARN: Separation alternate colorspace not resolved: %v", err)
	}
	fn, err := NewFunctionFromObject(doc, Resolve(doc, arr.Get(3)))
	if err != nil {
		common.Log.Debug("WARN: Separation tint-transform function not resolved: %v", err)
	}
	return &SeparationColorspace{ColorantName: name, Alternate: alt, TintTransform: fn}, nil
}

func newDeviceNColorspace(doc Document, arr *core.PdfObjectArray) (Colorspace, error) {
	if arr.Len() < 2 {
		return nil, core.ErrRangeError
	}
	namesArr, ok := core.GetArray(Resolve(doc, arr.Get(1)))
	if !ok {
		return nil, core.ErrTypeError
	}
	names := make([]string, 0, namesArr.Len())
	for _, obj := range namesArr.Elements() {
		n, _ := core.GetNameVal(obj)
		names = append(names, n)
	}
	return &DeviceNColorspace{Names: names}, nil
}

// separationOrCalDict extracts the parameter dictionary that is the second
// array element of a CIE-based colorspace array.
func separationOrCalDict(doc Document, arr *core.PdfObjectArray) (*core.PdfObjectDictionary, error) {
	if arr.Len() < 2 {
		return nil, core.ErrRangeError
	}
	dict, ok := core.GetDict(Resolve(doc, arr.Get(1)))
	if !ok {
		return nil, core.ErrTypeError
	}
	return dict, nil
}

func requiredPoint3(dict *core.PdfObjectDictionary, key core.PdfObjectName) ([3]float64, error) {
	p, ok := point3(dict, key)
	if !ok {
		return p, fmt.Errorf("%w: missing %s", ErrRequiredAttributeMissing, key)
	}
	return p, nil
}

func point3(dict *core.PdfObjectDictionary, key core.PdfObjectName) ([3]float64, bool) {
	var p [3]float64
	arr, ok := core.GetArray(dict.Get(key))
	if !ok {
		return p, false
	}
	vals, err := core.GetNumbersAsFloat(arr.Elements())
	if err != nil || len(vals) != 3 {
		return p, false
	}
	copy(p[:], vals)
	return p, true
}
