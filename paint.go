package vg

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the canvas/SVG keyword for the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the canvas/SVG keyword for the line join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the canvas/SVG keyword for the fill rule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// ImageFormat describes the pixel layout of a raw image buffer passed to
// RenderContext.MakeImage.
type ImageFormat int

const (
	// RGBASeparate is 8-bit RGBA with straight (non-premultiplied) alpha.
	RGBASeparate ImageFormat = iota
	// RGBAPremul is 8-bit RGBA with premultiplied alpha.
	RGBAPremul
	// FormatRGB is 8-bit RGB with no alpha channel.
	FormatRGB
	// Grayscale is a single 8-bit channel replicated into RGB on upload.
	Grayscale
)

// BytesPerPixel returns the size of one pixel in the format.
func (f ImageFormat) BytesPerPixel() int {
	switch f {
	case FormatRGB:
		return 3
	case Grayscale:
		return 1
	default:
		return 4
	}
}

// InterpolationMode specifies how images are sampled when scaled.
type InterpolationMode int

const (
	// InterpBilinear uses bilinear filtering (the canvas default).
	InterpBilinear InterpolationMode = iota
	// InterpNearestNeighbor uses point sampling.
	InterpNearestNeighbor
)
