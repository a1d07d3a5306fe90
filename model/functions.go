/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/vellumpdf/pdftext/common"
	"github.com/vellumpdf/pdftext/core"
)

// Function is a PDF function object stored as a tagged variant with its raw
// parameters: represented but not executed. FunctionType returns the PDF
// /FunctionType value (0, 2, 3 or 4).
type Function interface {
	FunctionType() int
	Domain() []float64
}

// FunctionType0 is a sampled function: an m-dimensional table of n-component
// samples held in a stream.
type FunctionType0 struct {
	domain        []float64
	Range         []float64
	Size          []int
	BitsPerSample int
	Encode        []float64
	Decode        []float64
	Samples       []byte
}

func (f *FunctionType0) FunctionType() int   { return 0 }
func (f *FunctionType0) Domain() []float64 { return f.domain }

// FunctionType2 is an exponential interpolation function.
type FunctionType2 struct {
	domain []float64
	C0     []float64
	C1     []float64
	N      float64
}

func (f *FunctionType2) FunctionType() int   { return 2 }
func (f *FunctionType2) Domain() []float64 { return f.domain }

// FunctionType3 is a stitching function over an ordered list of
// subfunctions.
type FunctionType3 struct {
	domain    []float64
	Functions []Function
	Bounds    []float64
	Encode    []float64
}

func (f *FunctionType3) FunctionType() int   { return 3 }
func (f *FunctionType3) Domain() []float64 { return f.domain }

// FunctionType4 is a PostScript calculator function. The program is stored
// unparsed; evaluating it is out of scope.
type FunctionType4 struct {
	domain  []float64
	Range   []float64
	Program []byte
}

func (f *FunctionType4) FunctionType() int   { return 4 }
func (f *FunctionType4) Domain() []float64 { return f.domain }

// NewFunctionFromObject builds a Function from a resolved function
// dictionary or stream, dispatching on /FunctionType. Type 0 and 4
// functions are carried as streams; Type 2 and 3 as dictionaries.
func NewFunctionFromObject(doc Document, obj core.PdfObject) (Function, error) {
	obj = Resolve(doc, obj)

	var dict *core.PdfObjectDictionary
	var stream *core.PdfObjectStream
	if s, ok := core.GetStream(obj); ok {
		stream = s
		dict = s.PdfObjectDictionary
	} else if d, ok := core.GetDict(obj); ok {
		dict = d
	} else {
		return nil, core.ErrTypeError
	}

	ftype, ok := core.GetIntVal(dict.Get("FunctionType"))
	if !ok {
		return nil, ErrRequiredAttributeMissing
	}

	domain, err := floatArray(dict.Get("Domain"))
	if err != nil {
		return nil, err
	}

	switch ftype {
	case 0:
		if stream == nil {
			return nil, core.ErrTypeError
		}
		return newFunctionType0(doc, dict, stream, domain)
	case 2:
		return newFunctionType2(dict, domain)
	case 3:
		return newFunctionType3(doc, dict, domain)
	case 4:
		if stream == nil {
			return nil, core.ErrTypeError
		}
		return &FunctionType4{domain: domain, Range: mustFloatArray(dict.Get("Range")), Program: stream.Stream}, nil
	default:
		common.Log.Debug("WARN: unhandled function type %d", ftype)
		return nil, ErrFunctionTypeUnknown
	}
}

func newFunctionType0(doc Document, dict *core.PdfObjectDictionary, stream *core.PdfObjectStream, domain []float64) (Function, error) {
	rng, err := floatArray(dict.Get("Range"))
	if err != nil {
		return nil, err
	}
	sizeArr, ok := core.GetArray(dict.Get("Size"))
	if !ok {
		return nil, ErrRequiredAttributeMissing
	}
	size := make([]int, 0, sizeArr.Len())
	for _, obj := range sizeArr.Elements() {
		v, ok := core.GetIntVal(obj)
		if !ok {
			return nil, core.ErrTypeError
		}
		size = append(size, v)
	}
	bps, ok := core.GetIntVal(dict.Get("BitsPerSample"))
	if !ok {
		return nil, ErrRequiredAttributeMissing
	}
	return &FunctionType0{
		domain:        domain,
		Range:         rng,
		Size:          size,
		BitsPerSample: bps,
		Encode:        mustFloatArray(dict.Get("Encode")),
		Decode:        mustFloatArray(dict.Get("Decode")),
		Samples:       stream.Stream,
	}, nil
}

func newFunctionType2(dict *core.PdfObjectDictionary, domain []float64) (Function, error) {
	n, _ := core.GetFloatVal(dict.Get("N"))
	c0 := mustFloatArray(dict.Get("C0"))
	if c0 == nil {
		c0 = []float64{0}
	}
	c1 := mustFloatArray(dict.Get("C1"))
	if c1 == nil {
		c1 = []float64{1}
	}
	return &FunctionType2{domain: domain, C0: c0, C1: c1, N: n}, nil
}

func newFunctionType3(doc Document, dict *core.PdfObjectDictionary, domain []float64) (Function, error) {
	fnArr, ok := core.GetArray(dict.Get("Functions"))
	if !ok {
		return nil, ErrRequiredAttributeMissing
	}
	fns := make([]Function, 0, fnArr.Len())
	for _, obj := range fnArr.Elements() {
		fn, err := NewFunctionFromObject(doc, obj)
		if err != nil {
			common.Log.Debug("WARN: stitching subfunction not resolved: %v", err)
			continue
		}
		fns = append(fns, fn)
	}
	bounds, err := floatArray(dict.Get("Bounds"))
	if err != nil {
		return nil, err
	}
	return &FunctionType3{
		domain:    domain,
		Functions: fns,
		Bounds:    bounds,
		Encode:    mustFloatArray(dict.Get("Encode")),
	}, nil
}

func floatArray(obj core.PdfObject) ([]float64, error) {
	arr, ok := core.GetArray(obj)
	if !ok {
		return nil, ErrRequiredAttributeMissing
	}
	return core.GetNumbersAsFloat(arr.Elements())
}

// mustFloatArray returns nil instead of an error for optional array
// entries.
func mustFloatArray(obj core.PdfObject) []float64 {
	arr, ok := core.GetArray(obj)
	if !ok {
		return nil
	}
	vals, err := core.GetNumbersAsFloat(arr.Elements())
	if err != nil {
		return nil
	}
	return vals
}
