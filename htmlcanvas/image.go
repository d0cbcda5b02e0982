package htmlcanvas

import "github.com/gogpu/vg"

// Image is an uploaded off-screen drawable. It is immutable and only
// valid with the context that created it.
type Image struct {
	drawable Drawable
	width    int
	height   int
}

// Size implements vg.Image.
func (img *Image) Size() vg.Size {
	return vg.Size{Width: float64(img.width), Height: float64(img.height)}
}
