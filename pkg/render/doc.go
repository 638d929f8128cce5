// Package render contains the visualization side of graph evaluation.
//
// A Visualizer takes a finalized graph and produces a Canvas, an
// explicit handle for the displayed graph. The handle of the former
// visualization is passed to the next call, so that a visualizer
// can dispose or reuse it. There is no global display state.
package render
