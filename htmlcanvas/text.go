package htmlcanvas

import (
	"strings"
	"unicode/utf8"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/text"
)

// Text builds canvas text layouts. Families registered through
// LoadFont are measured with the text package's shaping pipeline; any
// other family falls back to the surface's measureText, with vertical
// metrics approximated from the font size.
type Text struct {
	surface Surface
	shaper  *text.Shaper
	sources map[string]*text.FontSource
}

var _ vg.Text = (*Text)(nil)

func newText(surface Surface) *Text {
	return &Text{
		surface: surface,
		sources: make(map[string]*text.FontSource),
	}
}

// FontFamily resolves a family by name: the generic CSS families and
// every family registered with LoadFont.
func (t *Text) FontFamily(name string) (vg.FontFamily, bool) {
	switch name {
	case "sans-serif", "serif", "monospace", "system-ui", "cursive", "fantasy":
		return vg.FontFamily{Name: name}, true
	}
	if source, ok := t.source(name); ok {
		return vg.FontFamily{Name: source.Name()}, true
	}
	return vg.FontFamily{}, false
}

// LoadFont parses raw TTF/OTF data and registers its family.
func (t *Text) LoadFont(data []byte) (vg.FontFamily, error) {
	source, err := text.NewFontSource(data)
	if err != nil {
		return vg.FontFamily{}, err
	}
	t.sources[strings.ToLower(source.Name())] = source
	return vg.FontFamily{Name: source.Name()}, nil
}

// NewTextLayout starts building a layout for s.
func (t *Text) NewTextLayout(s string) vg.TextLayoutBuilder {
	return &TextLayoutBuilder{
		owner: t,
		text:  s,
		style: defaultLayoutStyle(),
	}
}

func (t *Text) source(family string) (*text.FontSource, bool) {
	source, ok := t.sources[strings.ToLower(family)]
	return source, ok
}

// TextLayoutBuilder accumulates parameters for one layout.
type TextLayoutBuilder struct {
	owner     *Text
	text      string
	maxWidth  float64
	alignment vg.TextAlignment
	style     layoutStyle
}

var _ vg.TextLayoutBuilder = (*TextLayoutBuilder)(nil)

// MaxWidth sets the width available for line breaking.
func (b *TextLayoutBuilder) MaxWidth(width float64) vg.TextLayoutBuilder {
	b.maxWidth = width
	return b
}

// Alignment sets the horizontal alignment of lines.
func (b *TextLayoutBuilder) Alignment(alignment vg.TextAlignment) vg.TextLayoutBuilder {
	b.alignment = alignment
	return b
}

// DefaultAttribute sets an attribute for the entire text.
func (b *TextLayoutBuilder) DefaultAttribute(attr vg.TextAttribute) vg.TextLayoutBuilder {
	b.style.apply(attr)
	return b
}

// RangeAttribute sets an attribute for a byte range. Multi-style runs
// are not painted; the attribute is folded into the layout's single
// resolved style, last write wins.
func (b *TextLayoutBuilder) RangeAttribute(start, end int, attr vg.TextAttribute) vg.TextLayoutBuilder {
	if start < end {
		b.style.apply(attr)
	}
	return b
}

// Build breaks the text into measured lines and returns the layout.
func (b *TextLayoutBuilder) Build() (vg.TextLayout, error) {
	font := fontString(b.style)

	var measure text.MeasureFunc
	var lineHeight, baseline float64
	if source, ok := b.owner.source(b.style.family.Name); ok {
		face := source.Face(b.style.size)
		measure = text.FaceMeasure(face, b.owner.shaper)
		m := face.Metrics()
		lineHeight = m.LineHeight()
		baseline = m.Ascent
	} else {
		// Unregistered families live only in the browser; measureText
		// reports widths, vertical metrics are approximated from the
		// font size.
		surface := b.owner.surface
		measure = func(s string) float64 {
			surface.SetFont(font)
			return surface.MeasureText(s)
		}
		lineHeight = b.style.size * 1.2
		baseline = b.style.size * 0.8
	}

	spans := text.BreakLines(b.text, b.maxWidth, measure)

	metrics := make([]vg.LineMetric, len(spans))
	widths := make([]float64, len(spans))
	var maxWidth, y float64
	for i, span := range spans {
		metrics[i] = vg.LineMetric{
			StartOffset:        span.Start,
			EndOffset:          span.End,
			TrailingWhitespace: span.TrailingWhitespace,
			Baseline:           baseline,
			Height:             lineHeight,
			YOffset:            y,
		}
		widths[i] = span.Width
		if span.Width > maxWidth {
			maxWidth = span.Width
		}
		y += lineHeight
	}

	frame := maxWidth
	if b.maxWidth > 0 {
		frame = b.maxWidth
	}

	return &TextLayout{
		text:       b.text,
		fontString: font,
		color:      b.style.color.Packed(),
		size:       vg.Size{Width: maxWidth, Height: y},
		metrics:    metrics,
		widths:     widths,
		xOffsets:   alignOffsets(b.text, b.alignment, frame, widths),
		measure:    measure,
	}, nil
}

// alignOffsets computes the per-line x displacement for the alignment.
// Start and end resolve against the paragraph base direction, so RTL
// text with AlignStart hugs the right edge of the frame.
func alignOffsets(s string, alignment vg.TextAlignment, frame float64, widths []float64) []float64 {
	trailing := false
	switch alignment {
	case vg.AlignStart, vg.AlignJustified:
		trailing = text.BaseDirection(s) == text.DirectionRTL
	case vg.AlignEnd:
		trailing = text.BaseDirection(s) == text.DirectionLTR
	}

	offsets := make([]float64, len(widths))
	for i, w := range widths {
		switch {
		case alignment == vg.AlignCenter:
			offsets[i] = (frame - w) / 2
		case trailing:
			offsets[i] = frame - w
		}
	}
	return offsets
}

// TextLayout is an immutable laid-out text ready for drawing.
type TextLayout struct {
	text       string
	fontString string
	color      uint32
	size       vg.Size
	metrics    []vg.LineMetric
	widths     []float64
	xOffsets   []float64
	measure    text.MeasureFunc
}

var _ vg.TextLayout = (*TextLayout)(nil)

// Size returns the overall dimensions of the laid-out text.
func (l *TextLayout) Size() vg.Size { return l.size }

// Text returns the layout's source text.
func (l *TextLayout) Text() string { return l.text }

// LineText returns the text of a line without trailing whitespace.
func (l *TextLayout) LineText(line int) (string, bool) {
	if line < 0 || line >= len(l.metrics) {
		return "", false
	}
	m := l.metrics[line]
	start, end := m.Range()
	return l.text[start:end], true
}

// LineMetric returns the metric for a line.
func (l *TextLayout) LineMetric(line int) (vg.LineMetric, bool) {
	if line < 0 || line >= len(l.metrics) {
		return vg.LineMetric{}, false
	}
	return l.metrics[line], true
}

// LineCount returns the number of lines.
func (l *TextLayout) LineCount() int { return len(l.metrics) }

// HitTestPoint returns the character boundary closest to p.
func (l *TextLayout) HitTestPoint(p vg.Point) vg.HitTestPoint {
	if len(l.metrics) == 0 {
		return vg.HitTestPoint{}
	}

	line := len(l.metrics) - 1
	insideY := false
	if p.Y < 0 {
		line = 0
	} else {
		for i, m := range l.metrics {
			if p.Y < m.YOffset+m.Height {
				line = i
				insideY = true
				break
			}
		}
	}

	m := l.metrics[line]
	start, end := m.Range()
	relX := p.X - l.xOffsets[line]
	idx, insideX := l.nearestBoundary(start, end, relX)
	return vg.HitTestPoint{Idx: idx, IsInside: insideY && insideX}
}

// nearestBoundary finds the rune boundary in [start, end] whose prefix
// width is closest to x. insideX reports whether x fell within the
// line's horizontal extent.
func (l *TextLayout) nearestBoundary(start, end int, x float64) (idx int, insideX bool) {
	if x <= 0 {
		return start, x == 0
	}
	best := start
	bestDist := x
	for i := start; i < end; {
		_, size := utf8.DecodeRuneInString(l.text[i:])
		i += size
		w := l.measure(l.text[start:i])
		dist := x - w
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			bestDist = dist
			best = i
		}
		if w >= x {
			return best, true
		}
	}
	return best, false
}

// HitTestTextPosition returns the layout position of a byte offset.
func (l *TextLayout) HitTestTextPosition(idx int) vg.HitTestPosition {
	if idx < 0 {
		idx = 0
	}
	if idx > len(l.text) {
		idx = len(l.text)
	}

	line := 0
	for i, m := range l.metrics {
		if idx >= m.StartOffset {
			line = i
		}
	}

	m := l.metrics[line]
	start, end := m.Range()
	upto := idx
	if upto > end {
		upto = end
	}
	x := l.xOffsets[line] + l.measure(l.text[start:upto])
	return vg.HitTestPosition{
		Point: vg.Pt(x, m.YOffset+m.Baseline),
		Line:  line,
	}
}
