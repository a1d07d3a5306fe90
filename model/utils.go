/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/vellumpdf/pdftext/common"
	"github.com/vellumpdf/pdftext/core"
)

// debugObject is a handy function for debugging in development.
func debugObject(obj core.PdfObject) {
	common.Log.Debug("obj: %T %s", obj, obj.String())

	if stream, is := obj.(*core.PdfObjectStream); is {
		common.Log.Debug("Stream dict: %s", stream.PdfObjectDictionary.String())
	}
}
