/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */
/*
 * The embedded character metrics specified in this file are distributed under the terms listed in
 * ./testdata/afms/MustRead.html.
 */

package fonts

import "sync"

func init() {
	RegisterStdFont(HelveticaName, newFontHelvetica, "Arial")
	RegisterStdFont(HelveticaBoldName, newFontHelveticaBold, "Arial,Bold", "Arial-Bold")
	RegisterStdFont(HelveticaObliqueName, newFontHelveticaOblique, "Arial,Italic", "Arial-Italic")
	RegisterStdFont(HelveticaBoldObliqueName, newFontHelveticaBoldOblique, "Arial,BoldItalic", "Arial-BoldItalic")
}

const (
	helveticaFamily = "Helvetica"
	// HelveticaName is a PDF name of the Helvetica font.
	HelveticaName = StdFontName("Helvetica")
	// HelveticaBoldName is a PDF name of the Helvetica (bold) font.
	HelveticaBoldName = StdFontName("Helvetica-Bold")
	// HelveticaObliqueName is a PDF name of the Helvetica (oblique) font.
	HelveticaObliqueName = StdFontName("Helvetica-Oblique")
	// HelveticaBoldObliqueName is a PDF name of the Helvetica (bold, oblique) font.
	HelveticaBoldObliqueName = StdFontName("Helvetica-BoldOblique")
)

func newFontHelvetica() StdFont {
	helveticaOnce.Do(initHelvetica)
	desc := Descriptor{
		Name:        HelveticaName,
		Family:      helveticaFamily,
		Weight:      FontWeightMedium,
		Flags:       0x0020,
		BBox:        [4]float64{-166, -225, 1000, 931},
		ItalicAngle: 0,
		Ascent:      718,
		Descent:     -207,
		CapHeight:   718,
		XHeight:     523,
		StemV:       88,
	}
	return NewStdFont(desc, helveticaCharMetrics)
}

func newFontHelveticaBold() StdFont {
	helveticaOnce.Do(initHelvetica)
	desc := Descriptor{
		Name:        HelveticaBoldName,
		Family:      helveticaFamily,
		Weight:      FontWeightBold,
		Flags:       0x0020,
		BBox:        [4]float64{-170, -228, 1003, 962},
		ItalicAngle: 0,
		Ascent:      718,
		Descent:     -207,
		CapHeight:   718,
		XHeight:     532,
		StemV:       140,
	}
	return NewStdFont(desc, helveticaBoldCharMetrics)
}

func newFontHelveticaOblique() StdFont {
	helveticaOnce.Do(initHelvetica)
	desc := Descriptor{
		Name:        HelveticaObliqueName,
		Family:      helveticaFamily,
		Weight:      FontWeightMedium,
		Flags:       0x0060,
		BBox:        [4]float64{-170, -225, 1116, 931},
		ItalicAngle: -12,
		Ascent:      718,
		Descent:     -207,
		CapHeight:   718,
		XHeight:     523,
		StemV:       88,
	}
	// Oblique is a sheared rendering of the upright face; its advance
	// widths are identical to Helvetica's.
	return NewStdFont(desc, helveticaCharMetrics)
}

func newFontHelveticaBoldOblique() StdFont {
	helveticaOnce.Do(initHelvetica)
	desc := Descriptor{
		Name:        HelveticaBoldObliqueName,
		Family:      helveticaFamily,
		Weight:      FontWeightBold,
		Flags:       0x0060,
		BBox:        [4]float64{-174, -228, 1114, 962},
		ItalicAngle: -12,
		Ascent:      718,
		Descent:     -207,
		CapHeight:   718,
		XHeight:     532,
		StemV:       140,
	}
	return NewStdFont(desc, helveticaBoldCharMetrics)
}

var helveticaOnce sync.Once

func initHelvetica() {
	helveticaCharMetrics = make(map[rune]CharMetrics, len(helveticaWx))
	helveticaBoldCharMetrics = make(map[rune]CharMetrics, len(helveticaBoldWx))
	for r, wx := range helveticaWx {
		helveticaCharMetrics[r] = CharMetrics{Wx: wx}
	}
	for r, wx := range helveticaBoldWx {
		helveticaBoldCharMetrics[r] = CharMetrics{Wx: wx}
	}
}

// helveticaCharMetrics are the font metrics loaded from afms/Helvetica.afm.
// See afms/MustRead.html for license information.
var helveticaCharMetrics map[rune]CharMetrics

// helveticaBoldCharMetrics are the font metrics loaded from afms/Helvetica-Bold.afm.
// See afms/MustRead.html for license information.
var helveticaBoldCharMetrics map[rune]CharMetrics

// helveticaWx are the font metrics loaded from afms/Helvetica.afm, keyed by
// rune over the printable ASCII range (StandardEncoding's Latin subset).
var helveticaWx = map[rune]float64{
	' ': 278, '!': 278, '"': 355, '#': 556, '$': 556, '%': 889, '&': 667, '\'': 191,
	'(': 333, ')': 333, '*': 389, '+': 584, ',': 278, '-': 333, '.': 278, '/': 278,
	'0': 556, '1': 556, '2': 556, '3': 556, '4': 556, '5': 556, '6': 556, '7': 556,
	'8': 556, '9': 556, ':': 278, ';': 278, '<': 584, '=': 584, '>': 584, '?': 556,
	'@': 1015,
	'A': 667, 'B': 667, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778, 'H': 722,
	'I': 278, 'J': 500, 'K': 667, 'L': 556, 'M': 833, 'N': 722, 'O': 778, 'P': 667,
	'Q': 778, 'R': 722, 'S': 667, 'T': 611, 'U': 722, 'V': 667, 'W': 944, 'X': 667,
	'Y': 667, 'Z': 611,
	'[': 278, '\\': 278, ']': 278, '^': 469, '_': 556, '`': 333,
	'a': 556, 'b': 556, 'c': 500, 'd': 556, 'e': 556, 'f': 278, 'g': 556, 'h': 556,
	'i': 222, 'j': 222, 'k': 500, 'l': 222, 'm': 833, 'n': 556, 'o': 556, 'p': 556,
	'q': 556, 'r': 333, 's': 500, 't': 278, 'u': 556, 'v': 500, 'w': 722, 'x': 500,
	'y': 500, 'z': 500,
	'{': 334, '|': 260, '}': 334, '~': 584,
	0x2022: 350, // bullet
	0x2013: 556, // endash
	0x2014: 1000, // emdash
	0x2018: 222, // quoteleft
	0x2019: 222, // quoteright
	0x201C: 333, // quotedblleft
	0x201D: 333, // quotedblright
	0x2026: 1000, // ellipsis
	0x20AC: 556, // Euro
}

// helveticaBoldWx are the font metrics loaded from afms/Helvetica-Bold.afm,
// keyed by rune over the printable ASCII range.
var helveticaBoldWx = map[rune]float64{
	' ': 278, '!': 333, '"': 474, '#': 556, '$': 556, '%': 889, '&': 722, '\'': 238,
	'(': 333, ')': 333, '*': 389, '+': 584, ',': 278, '-': 333, '.': 278, '/': 278,
	'0': 556, '1': 556, '2': 556, '3': 556, '4': 556, '5': 556, '6': 556, '7': 556,
	'8': 556, '9': 556, ':': 333, ';': 333, '<': 584, '=': 584, '>': 584, '?': 611,
	'@': 975,
	'A': 722, 'B': 722, 'C': 722, 'D': 722, 'E': 667, 'F': 611, 'G': 778, 'H': 722,
	'I': 278, 'J': 556, 'K': 722, 'L': 611, 'M': 833, 'N': 722, 'O': 778, 'P': 667,
	'Q': 778, 'R': 722, 'S': 667, 'T': 611, 'U': 722, 'V': 667, 'W': 944, 'X': 667,
	'Y': 667, 'Z': 611,
	'[': 333, '\\': 278, ']': 333, '^': 584, '_': 556, '`': 333,
	'a': 556, 'b': 611, 'c': 556, 'd': 611, 'e': 556, 'f': 333, 'g': 611, 'h': 611,
	'i': 278, 'j': 278, 'k': 556, 'l': 278, 'm': 889, 'n': 611, 'o': 611, 'p': 611,
	'q': 611, 'r': 389, 's': 556, 't': 333, 'u': 611, 'v': 556, 'w': 778, 'x': 556,
	'y': 556, 'z': 500,
	'{': 389, '|': 280, '}': 389, '~': 584,
	0x2022: 350, 0x2013: 556, 0x2014: 1000,
	0x2018: 278, 0x2019: 278, 0x201C: 500, 0x201D: 500, 0x2026: 1000, 0x20AC: 556,
}
