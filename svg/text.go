package svg

import "github.com/gogpu/vg"

// Text is the svg backend's text factory. Text markup is not
// implemented; every operation reports vg.ErrTextNotImplemented
// through its regular error path so callers can detect the gap
// instead of crashing.
type Text struct{}

var _ vg.Text = (*Text)(nil)

// FontFamily reports no family as known.
func (*Text) FontFamily(string) (vg.FontFamily, bool) {
	return vg.FontFamily{}, false
}

// LoadFont fails; there is nothing to load fonts into.
func (*Text) LoadFont([]byte) (vg.FontFamily, error) {
	return vg.FontFamily{}, vg.ErrTextNotImplemented
}

// NewTextLayout returns a builder whose Build fails.
func (*Text) NewTextLayout(string) vg.TextLayoutBuilder {
	return &TextLayoutBuilder{}
}

// TextLayoutBuilder accepts parameters and fails on Build.
type TextLayoutBuilder struct{}

var _ vg.TextLayoutBuilder = (*TextLayoutBuilder)(nil)

// MaxWidth implements vg.TextLayoutBuilder.
func (b *TextLayoutBuilder) MaxWidth(float64) vg.TextLayoutBuilder { return b }

// Alignment implements vg.TextLayoutBuilder.
func (b *TextLayoutBuilder) Alignment(vg.TextAlignment) vg.TextLayoutBuilder { return b }

// DefaultAttribute implements vg.TextLayoutBuilder.
func (b *TextLayoutBuilder) DefaultAttribute(vg.TextAttribute) vg.TextLayoutBuilder { return b }

// RangeAttribute implements vg.TextLayoutBuilder.
func (b *TextLayoutBuilder) RangeAttribute(int, int, vg.TextAttribute) vg.TextLayoutBuilder {
	return b
}

// Build always fails with vg.ErrTextNotImplemented.
func (b *TextLayoutBuilder) Build() (vg.TextLayout, error) {
	return nil, vg.ErrTextNotImplemented
}
