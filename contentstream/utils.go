/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"github.com/vellumpdf/pdftext/core"
)

func makeParamsFromFloats(vals []float64) []core.PdfObject {
	var params []core.PdfObject
	for _, val := range vals {
		params = append(params, core.MakeFloat(val))
	}
	return params
}

func makeParamsFromNames(vals []core.PdfObjectName) []core.PdfObject {
	var params []core.PdfObject
	for _, val := range vals {
		params = append(params, core.MakeName(string(val)))
	}
	return params
}

func makeParamsFromStrings(vals []core.PdfObjectString) []core.PdfObject {
	var params []core.PdfObject
	for _, val := range vals {
		params = append(params, core.MakeString(val.Str()))
	}
	return params
}

func makeParamsFromInts(vals []int64) []core.PdfObject {
	var params []core.PdfObject
	for _, val := range vals {
		params = append(params, core.MakeInteger(val))
	}
	return params
}
