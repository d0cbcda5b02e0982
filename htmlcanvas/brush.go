package htmlcanvas

import (
	"fmt"

	"github.com/gogpu/vg"
)

const backendName = "htmlcanvas"

// SolidBrush paints a single color. It stores the color packed so the
// CSS string is derived once per draw, not per construction.
type SolidBrush struct {
	rgba uint32
}

// Backend implements vg.Brush.
func (*SolidBrush) Backend() string { return backendName }

// Color returns the brush color.
func (b *SolidBrush) Color() vg.RGBA { return vg.FromPacked(b.rgba) }

func (b *SolidBrush) paint() Paint { return SolidPaint(cssColor(b.rgba)) }

// GradientBrush paints a native canvas gradient.
type GradientBrush struct {
	handle GradientHandle
}

// Backend implements vg.Brush.
func (*GradientBrush) Backend() string { return backendName }

func (b *GradientBrush) paint() Paint { return GradientPaint(b.handle) }

// cssColor formats a packed RGBA8 value as a CSS color: "#rrggbb" when
// fully opaque, "rgba(r,g,b,a)" otherwise.
func cssColor(rgba uint32) string {
	r := rgba >> 24 & 0xff
	g := rgba >> 16 & 0xff
	b := rgba >> 8 & 0xff
	a := rgba & 0xff
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", r, g, b, float64(a)/255)
}
