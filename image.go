package vg

import "fmt"

// ToRGBASeparate converts a raw pixel buffer into straight-alpha RGBA8,
// the layout native image uploads expect. The result may alias buf when
// the buffer is already in RGBASeparate layout; callers that mutate the
// result must copy it first.
func ToRGBASeparate(width, height int, buf []byte, format ImageFormat) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("vg: invalid image dimensions %dx%d", width, height)
	}
	need := width * height * format.BytesPerPixel()
	if len(buf) < need {
		return nil, fmt.Errorf("vg: image buffer too short: have %d bytes, need %d", len(buf), need)
	}

	switch format {
	case RGBASeparate:
		return buf[:need], nil

	case RGBAPremul:
		out := make([]byte, width*height*4)
		for i := 0; i < need; i += 4 {
			a := buf[i+3]
			out[i+0] = UnpremulByte(buf[i+0], a)
			out[i+1] = UnpremulByte(buf[i+1], a)
			out[i+2] = UnpremulByte(buf[i+2], a)
			out[i+3] = a
		}
		return out, nil

	case FormatRGB:
		out := make([]byte, width*height*4)
		for i, j := 0, 0; i < need; i, j = i+3, j+4 {
			out[j+0] = buf[i+0]
			out[j+1] = buf[i+1]
			out[j+2] = buf[i+2]
			out[j+3] = 0xff
		}
		return out, nil

	case Grayscale:
		out := make([]byte, width*height*4)
		for i, j := 0, 0; i < need; i, j = i+1, j+4 {
			v := buf[i]
			out[j+0] = v
			out[j+1] = v
			out[j+2] = v
			out[j+3] = 0xff
		}
		return out, nil
	}
	return nil, fmt.Errorf("vg: unknown image format %d", format)
}
