// Package htmlcanvas renders vg drawing commands onto a browser 2D
// canvas. The RenderContext translates every command into calls on a
// Surface, the thin interface over the native canvas API; on
// js/wasm builds NewCanvasSurface wraps a real CanvasRenderingContext2D,
// while tests substitute an in-memory recording surface.
//
// The context keeps a stack of stroke-state snapshots mirroring the
// native save/restore stack and diffs every stroke against the top
// entry, so repeated draws with the same style touch the canvas state
// machine only once.
//
// Drawing operations are infallible by contract; native failures are
// recorded into a single-slot deferred error that the next Status or
// Finish call takes and clears.
package htmlcanvas
