package vg

// FontFamily identifies a font family by name. Generic families use the
// CSS keywords so canvas and SVG backends can pass them straight through.
type FontFamily struct {
	Name string
}

// Generic font families.
var (
	SansSerif = FontFamily{Name: "sans-serif"}
	Serif     = FontFamily{Name: "serif"}
	Monospace = FontFamily{Name: "monospace"}
)

// FontWeight is a numeric font weight on the usual 100-900 scale.
type FontWeight int

const (
	// WeightNormal is the regular weight.
	WeightNormal FontWeight = 400
	// WeightBold is the bold weight.
	WeightBold FontWeight = 700
)

// FontStyle selects between regular and italic rendering.
type FontStyle int

const (
	// StyleRegular is upright text.
	StyleRegular FontStyle = iota
	// StyleItalic is italic text.
	StyleItalic
)

// TextAlignment specifies horizontal alignment of lines within the
// layout width.
type TextAlignment int

const (
	// AlignStart aligns to the leading edge of the base direction.
	AlignStart TextAlignment = iota
	// AlignEnd aligns to the trailing edge of the base direction.
	AlignEnd
	// AlignCenter centers each line.
	AlignCenter
	// AlignJustified distributes lines across the full width.
	AlignJustified
)

// TextAttribute is a single styling attribute applied to a layout, either
// as the default for the whole text or scoped to a byte range.
// This is a sealed interface - only the attribute types in this package
// implement it.
type TextAttribute interface {
	attributeMarker()
}

// FamilyAttribute sets the font family.
type FamilyAttribute struct{ Family FontFamily }

// SizeAttribute sets the font size in points.
type SizeAttribute struct{ Size float64 }

// WeightAttribute sets the font weight.
type WeightAttribute struct{ Weight FontWeight }

// StyleAttribute sets the font style.
type StyleAttribute struct{ Style FontStyle }

// ColorAttribute sets the text color.
type ColorAttribute struct{ Color RGBA }

// UnderlineAttribute toggles underline.
type UnderlineAttribute struct{ Underline bool }

func (FamilyAttribute) attributeMarker()    {}
func (SizeAttribute) attributeMarker()      {}
func (WeightAttribute) attributeMarker()    {}
func (StyleAttribute) attributeMarker()     {}
func (ColorAttribute) attributeMarker()     {}
func (UnderlineAttribute) attributeMarker() {}

// LineMetric describes one laid-out line of a text layout.
// Offsets are byte indices into the layout's text.
type LineMetric struct {
	// StartOffset is the byte index of the first character of the line.
	StartOffset int

	// EndOffset is the byte index one past the last character of the
	// line, including any trailing whitespace and line terminator.
	EndOffset int

	// TrailingWhitespace is the number of bytes of trailing whitespace,
	// including the line terminator if present.
	TrailingWhitespace int

	// Baseline is the distance from the top of the line to its baseline.
	Baseline float64

	// Height is the total height of the line.
	Height float64

	// YOffset is the distance from the top of the layout to the top of
	// the line.
	YOffset float64
}

// Range returns the start and end byte offsets of the line's text,
// excluding trailing whitespace.
func (m LineMetric) Range() (start, end int) {
	return m.StartOffset, m.EndOffset - m.TrailingWhitespace
}

// HitTestPoint is the result of hit-testing a point against a layout.
type HitTestPoint struct {
	// Idx is the byte offset of the closest character boundary.
	Idx int
	// IsInside reports whether the point was inside the text bounds.
	IsInside bool
}

// HitTestPosition is the result of hit-testing a text position.
type HitTestPosition struct {
	// Point is the position of the character boundary in layout space.
	Point Point
	// Line is the index of the line containing the position.
	Line int
}

// Text builds text layouts for a backend. One Text value is shared by
// all layouts of a render context.
type Text interface {
	// FontFamily resolves a family by name. ok is false if the backend
	// has no knowledge of the family.
	FontFamily(name string) (family FontFamily, ok bool)

	// LoadFont parses raw font data (TTF/OTF) and registers it,
	// returning the family it can subsequently be referenced by.
	LoadFont(data []byte) (FontFamily, error)

	// NewTextLayout starts building a layout for the given text.
	NewTextLayout(text string) TextLayoutBuilder
}

// TextLayoutBuilder accumulates layout parameters and produces an
// immutable TextLayout. Builder methods return the receiver for
// chaining.
type TextLayoutBuilder interface {
	// MaxWidth sets the width available for line breaking. Without it
	// the text is laid out as a single line per paragraph.
	MaxWidth(width float64) TextLayoutBuilder

	// Alignment sets the horizontal alignment of lines.
	Alignment(alignment TextAlignment) TextLayoutBuilder

	// DefaultAttribute sets an attribute for the entire text.
	DefaultAttribute(attr TextAttribute) TextLayoutBuilder

	// RangeAttribute sets an attribute for the byte range [start, end).
	RangeAttribute(start, end int, attr TextAttribute) TextLayoutBuilder

	// Build shapes the text and returns the finished layout.
	Build() (TextLayout, error)
}

// TextLayout is an immutable, shaped line layout ready for measurement
// and drawing. Any change requires building a new layout.
type TextLayout interface {
	// Size returns the overall dimensions of the laid-out text.
	Size() Size

	// Text returns the layout's source text.
	Text() string

	// LineText returns the text of the given line, without trailing
	// whitespace or the terminator. ok is false if the line does not
	// exist.
	LineText(line int) (text string, ok bool)

	// LineMetric returns the metric for the given line.
	LineMetric(line int) (metric LineMetric, ok bool)

	// LineCount returns the number of lines in the layout.
	LineCount() int

	// HitTestPoint returns the character boundary closest to a point.
	HitTestPoint(p Point) HitTestPoint

	// HitTestTextPosition returns the layout position of a byte offset.
	HitTestTextPosition(idx int) HitTestPosition
}
