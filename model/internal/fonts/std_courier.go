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
	RegisterStdFont(CourierName, newFontCourier, "CourierNew", "CourierNewPSMT")
	RegisterStdFont(CourierBoldName, newFontCourierBold, "CourierNew,Bold", "CourierNewPS-BoldMT")
	RegisterStdFont(CourierObliqueName, newFontCourierOblique, "CourierNew,Italic", "CourierNewPS-ItalicMT")
	RegisterStdFont(CourierBoldObliqueName, newFontCourierBoldOblique, "CourierNew,BoldItalic", "CourierNewPS-BoldItalicMT")
}

const (
	courierFamily = "Courier"
	// courierGlyphWidth is every glyph's advance width: Courier is fixed-pitch.
	courierGlyphWidth = 600

	// CourierName is a PDF name of the Courier font.
	CourierName = StdFontName("Courier")
	// CourierBoldName is a PDF name of the Courier (bold) font.
	CourierBoldName = StdFontName("Courier-Bold")
	// CourierObliqueName is a PDF name of the Courier (oblique) font.
	CourierObliqueName = StdFontName("Courier-Oblique")
	// CourierBoldObliqueName is a PDF name of the Courier (bold, oblique) font.
	CourierBoldObliqueName = StdFontName("Courier-BoldOblique")
)

func newFontCourier() StdFont {
	courierOnce.Do(initCourier)
	desc := Descriptor{
		Name:        CourierName,
		Family:      courierFamily,
		Weight:      FontWeightMedium,
		Flags:       0x0021,
		BBox:        [4]float64{-23, -250, 715, 805},
		ItalicAngle: 0,
		Ascent:      629,
		Descent:     -157,
		CapHeight:   562,
		XHeight:     426,
		StemV:       51,
	}
	return NewStdFont(desc, courierCharMetrics)
}

func newFontCourierBold() StdFont {
	courierOnce.Do(initCourier)
	desc := Descriptor{
		Name:        CourierBoldName,
		Family:      courierFamily,
		Weight:      FontWeightBold,
		Flags:       0x0021,
		BBox:        [4]float64{-113, -250, 749, 801},
		ItalicAngle: 0,
		Ascent:      629,
		Descent:     -157,
		CapHeight:   562,
		XHeight:     439,
		StemV:       106,
	}
	return NewStdFont(desc, courierCharMetrics)
}

func newFontCourierOblique() StdFont {
	courierOnce.Do(initCourier)
	desc := Descriptor{
		Name:        CourierObliqueName,
		Family:      courierFamily,
		Weight:      FontWeightMedium,
		Flags:       0x0061,
		BBox:        [4]float64{-27, -250, 849, 805},
		ItalicAngle: -12,
		Ascent:      629,
		Descent:     -157,
		CapHeight:   562,
		XHeight:     426,
		StemV:       51,
	}
	return NewStdFont(desc, courierCharMetrics)
}

func newFontCourierBoldOblique() StdFont {
	courierOnce.Do(initCourier)
	desc := Descriptor{
		Name:        CourierBoldObliqueName,
		Family:      courierFamily,
		Weight:      FontWeightBold,
		Flags:       0x0061,
		BBox:        [4]float64{-57, -250, 869, 801},
		ItalicAngle: -12,
		Ascent:      629,
		Descent:     -157,
		CapHeight:   562,
		XHeight:     439,
		StemV:       106,
	}
	return NewStdFont(desc, courierCharMetrics)
}

var courierOnce sync.Once

// courierCharMetrics holds the constant 600-unit advance width: Courier is
// fixed-pitch in all four styles, so one map serves every variant.
var courierCharMetrics map[rune]CharMetrics

func initCourier() {
	courierCharMetrics = make(map[rune]CharMetrics, 224)
	for r := rune(0x20); r <= 0x7E; r++ {
		courierCharMetrics[r] = CharMetrics{Wx: courierGlyphWidth}
	}
	for _, r := range []rune{0x2022, 0x2013, 0x2014, 0x2018, 0x2019, 0x201C, 0x201D, 0x2026, 0x20AC} {
		courierCharMetrics[r] = CharMetrics{Wx: courierGlyphWidth}
	}
}
