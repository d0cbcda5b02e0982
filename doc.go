// Package vg defines the contract between a 2D vector-graphics abstraction
// and its rendering backends.
//
// # Overview
//
// vg is the target-independent half of a small rendering stack: callers
// describe drawing operations (fill or stroke a shape, apply a transform,
// draw text, draw an image, save and restore state) against the
// RenderContext interface, and a backend translates them into the native
// operations of a concrete surface. Two backends live in this module:
//
//   - htmlcanvas renders onto a browser canvas surface.
//   - svg emits scalable-vector-graphics markup.
//
// The package itself carries only value types (points, rectangles, affine
// matrices, colors, stroke styles, paths, gradient descriptors) and the
// interfaces backends satisfy. There is no rasterizer here: path
// flattening, gradient evaluation, and font shaping are delegated to the
// host surface or to external libraries.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/vg"
//	    "github.com/gogpu/vg/htmlcanvas"
//	)
//
//	rc := htmlcanvas.NewRenderContext(surface)
//	brush := rc.SolidBrush(vg.RGB(1, 0, 0))
//	rc.Fill(vg.NewRect(10, 10, 90, 60), brush)
//	if err := rc.Finish(); err != nil {
//	    // a draw call failed on the native surface
//	}
//
// # Error Model
//
// Operations that construct resources (Gradient, MakeImage) return errors
// directly. Drawing operations are infallible by contract; a native
// failure during one of them is recorded in the context and surfaced by
// the next Status or Finish call. See RenderContext for details.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package vg

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
