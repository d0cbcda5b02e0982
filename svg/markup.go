package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/vg"
)

// element is one node of the generated document. Attributes keep their
// insertion order so output is deterministic.
type element struct {
	name     string
	attrs    []attribute
	children []*element
}

type attribute struct {
	key   string
	value string
}

func newElement(name string) *element {
	return &element{name: name}
}

func (el *element) attr(key, value string) *element {
	el.attrs = append(el.attrs, attribute{key: key, value: value})
	return el
}

func (el *element) floatAttr(key string, v float64) *element {
	return el.attr(key, ftoa(v))
}

func (el *element) add(child *element) *element {
	el.children = append(el.children, child)
	return el
}

func (el *element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: el.name}}
	for _, a := range el.attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.key},
			Value: a.value,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range el.children {
		if err := child.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func writeDocument(w io.Writer, root *element) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := root.encode(enc); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// ftoa formats a coordinate with the shortest representation that
// round-trips.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// pathData renders shape segments as an SVG path d attribute.
func pathData(shape vg.Shape, tolerance float64) string {
	var sb strings.Builder
	for i, el := range shape.PathElements(tolerance) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := el.(type) {
		case vg.MoveTo:
			fmt.Fprintf(&sb, "M%s %s", ftoa(e.Point.X), ftoa(e.Point.Y))
		case vg.LineTo:
			fmt.Fprintf(&sb, "L%s %s", ftoa(e.Point.X), ftoa(e.Point.Y))
		case vg.QuadTo:
			fmt.Fprintf(&sb, "Q%s %s %s %s",
				ftoa(e.Control.X), ftoa(e.Control.Y),
				ftoa(e.Point.X), ftoa(e.Point.Y))
		case vg.CubicTo:
			fmt.Fprintf(&sb, "C%s %s %s %s %s %s",
				ftoa(e.Control1.X), ftoa(e.Control1.Y),
				ftoa(e.Control2.X), ftoa(e.Control2.Y),
				ftoa(e.Point.X), ftoa(e.Point.Y))
		case vg.Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// matrixAttr renders a transform as matrix(a,b,c,d,e,f).
func matrixAttr(m vg.Matrix) string {
	c := m.Coeffs()
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = ftoa(v)
	}
	return "matrix(" + strings.Join(parts, ",") + ")"
}

// hexColor formats the RGB channels of a packed RGBA8 value.
func hexColor(rgba uint32) string {
	return fmt.Sprintf("#%06x", rgba>>8)
}

// opacity returns the alpha channel of a packed value in [0, 1].
func opacity(rgba uint32) float64 {
	return float64(rgba&0xff) / 255
}
