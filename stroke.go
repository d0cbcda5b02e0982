package vg

// Stroke defines the style for stroking paths.
// It encapsulates all stroke-related properties in a single struct.
// The zero value is not useful; start from DefaultStroke.
type Stroke struct {
	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	// Default: 10.0, matching the canvas platform default.
	MiterLimit float64

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash *Dash
}

// DefaultStroke returns a Stroke with the canvas platform defaults:
// a solid 1-pixel line with butt caps and miter joins (limit 10).
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10.0,
		Dash:       nil,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
// The miter limit controls when miter joins are converted to bevel joins.
// A value of 1.0 effectively disables miter joins.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern.
// Pass nil to remove dashing and return to solid lines.
func (s Stroke) WithDash(dash *Dash) Stroke {
	if dash == nil {
		s.Dash = nil
	} else {
		s.Dash = dash.Clone()
	}
	return s
}

// WithDashPattern returns a copy of the Stroke with a dash pattern
// created from the given lengths.
//
// Example:
//
//	stroke.WithDashPattern(5, 3) // 5 units dash, 3 units gap
func (s Stroke) WithDashPattern(lengths ...float64) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// WithDashOffset returns a copy of the Stroke with the dash offset set.
// If there is no dash pattern, this has no effect.
func (s Stroke) WithDashOffset(offset float64) Stroke {
	if s.Dash != nil {
		s.Dash = s.Dash.WithOffset(offset)
	}
	return s
}

// IsDashed returns true if this stroke has a dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash != nil && s.Dash.IsDashed()
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	result := s
	if s.Dash != nil {
		result.Dash = s.Dash.Clone()
	}
	return result
}

// Equal reports whether two strokes describe the same style, including
// their dash patterns. Backends use it to suppress redundant native
// state changes.
func (s Stroke) Equal(other Stroke) bool {
	if s.Width != other.Width || s.Cap != other.Cap ||
		s.Join != other.Join || s.MiterLimit != other.MiterLimit {
		return false
	}
	return s.Dash.Equal(other.Dash)
}

// RoundStroke returns a stroke with round caps and joins.
func RoundStroke() Stroke {
	return DefaultStroke().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

// DashedStroke returns a dashed stroke with the given pattern.
func DashedStroke(lengths ...float64) Stroke {
	return DefaultStroke().WithDashPattern(lengths...)
}
