package htmlcanvas

import (
	"fmt"
	"strings"

	"github.com/gogpu/vg"
)

// layoutStyle is the single resolved style of a layout. The canvas
// fillText call paints one font and color per line, so attributes are
// folded into one style rather than per-range runs.
type layoutStyle struct {
	family    vg.FontFamily
	size      float64
	weight    vg.FontWeight
	fontStyle vg.FontStyle
	color     vg.RGBA
	underline bool
}

// defaultFontSize matches the platform-independent default used when a
// layout sets no size attribute.
const defaultFontSize = 12.0

func defaultLayoutStyle() layoutStyle {
	return layoutStyle{
		family: vg.SansSerif,
		size:   defaultFontSize,
		weight: vg.WeightNormal,
		color:  vg.Black,
	}
}

func (s *layoutStyle) apply(attr vg.TextAttribute) {
	switch a := attr.(type) {
	case vg.FamilyAttribute:
		s.family = a.Family
	case vg.SizeAttribute:
		s.size = a.Size
	case vg.WeightAttribute:
		s.weight = a.Weight
	case vg.StyleAttribute:
		s.fontStyle = a.Style
	case vg.ColorAttribute:
		s.color = a.Color
	case vg.UnderlineAttribute:
		s.underline = a.Underline
	}
}

// fontString renders the style as a CSS font shorthand, for example
// "italic 700 16px serif".
func fontString(s layoutStyle) string {
	var sb strings.Builder
	if s.fontStyle == vg.StyleItalic {
		sb.WriteString("italic ")
	}
	if s.weight != vg.WeightNormal {
		fmt.Fprintf(&sb, "%d ", int(s.weight))
	}
	fmt.Fprintf(&sb, "%gpx %s", s.size, cssFamily(s.family.Name))
	return sb.String()
}

// cssFamily quotes family names that are not generic CSS keywords.
func cssFamily(name string) string {
	switch name {
	case "sans-serif", "serif", "monospace", "system-ui", "cursive", "fantasy":
		return name
	}
	return fmt.Sprintf("%q", name)
}
