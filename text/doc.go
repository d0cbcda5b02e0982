// Package text provides font loading, measurement, and line breaking for
// the vg backends.
//
// The package delegates the hard parts to external libraries: font files
// are parsed with golang.org/x/image/font/opentype, shaping (kerning,
// ligatures, complex scripts) is performed by go-text/typesetting's
// HarfBuzz port, and paragraph base direction is resolved with
// golang.org/x/text/unicode/bidi. What remains here is the glue that
// turns a string plus a face into measured line spans a backend can build
// its line metrics from.
//
// Typical use:
//
//	source, err := text.NewFontSource(ttf)
//	if err != nil { ... }
//	face := source.Face(14)
//	measure := text.FaceMeasure(face, text.NewShaper())
//	spans := text.BreakLines("hello, world", 120, measure)
package text
