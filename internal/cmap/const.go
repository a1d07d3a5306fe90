/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cmap

import (
	"errors"
)

// CMap parser errors.
var (
	ErrBadCMap        = errors.New("bad cmap")
	ErrBadCMapComment = errors.New("comment should start with %")
	ErrBadCMapDict    = errors.New("invalid dict")
)

// These are the fixed PostScript operator keywords and dict key names a CMap
// program uses to delimit its begincmap/endcmap body, its four data
// sections (codespacerange, bfchar, bfrange, cidrange), and the
// CIDSystemInfo dict. cmap_parser.go matches token text against these
// verbatim, so the string values are not free to change even though the Go
// identifiers are.
const (
	cidSystemInfo       = "CIDSystemInfo"
	begincmap           = "begincmap"
	endcmap             = "endcmap"
	begincodespacerange = "begincodespacerange"
	endcodespacerange   = "endcodespacerange"
	beginbfchar         = "beginbfchar"
	endbfchar           = "endbfchar"
	beginbfrange        = "beginbfrange"
	endbfrange          = "endbfrange"
	begincidrange       = "begincidrange"
	endcidrange         = "endcidrange"
	usecmap             = "usecmap"

	cmapname    = "CMapName"
	cmaptype    = "CMapType"
	cmapversion = "CMapVersion"
)
