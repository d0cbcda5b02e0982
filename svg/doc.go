// Package svg renders vg drawing commands into an SVG document.
//
// The context is retained rather than immediate: draw calls append
// elements to an in-memory tree, gradients, clip paths and filters
// collect under defs, and Write serializes the finished document.
// Transforms and clips live on the context's own state stack since
// there is no native state machine underneath.
//
// The text subsystem is not implemented; every text operation reports
// vg.ErrTextNotImplemented instead of producing markup.
package svg
