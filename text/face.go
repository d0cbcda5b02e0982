package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face represents a font face at a specific size.
// This is a lightweight value created from a FontSource; the source must
// outlive every face created from it.
type Face struct {
	source *FontSource
	size   float64
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.font.Metrics(&buf, floatToFixed(f.size), font.HintingFull)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	// Hinted rounding can leave Height a pixel short of ascent+descent;
	// the gap never goes negative.
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   gap,
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// Advance returns the total advance width of the text in pixels,
// summing per-glyph advances without shaping. For kerning-aware widths
// use Shaper.Advance.
func (f *Face) Advance(text string) float64 {
	var buf sfnt.Buffer
	total := 0.0

	for _, r := range text {
		gid, err := f.source.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.source.font.GlyphAdvance(&buf, gid, floatToFixed(f.size), font.HintingFull)
		if err != nil {
			continue
		}
		total += fixedToFloat(adv)
	}

	return total
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	gid, err := f.source.font.GlyphIndex(&buf, r)
	return err == nil && gid != 0
}

// floatToFixed converts a float64 value to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
