// Package plot renders inline function plots from tutoring directives.
//
// A directive is the payload of a [PLOT: ...] marker in tutor output,
// of the form "expression[, min[, max]]". The pipeline is:
//
//   - parse the directive and normalize the expression syntax
//   - compile the expression once, then sample it at 140 evenly spaced
//     x-values across the domain, dropping non-finite results
//   - compute a clamped vertical window and map the samples onto a
//     fixed-size canvas
//   - assemble a polyline with axis guides and a label, either as SVG
//     markup or as a Braille-canvas block for the terminal
//
// Every entry point is a pure function of the directive payload and an
// accent color hint. Failures stay local: a bad directive yields either
// an inline error surface or nothing at all, never a panic.
package plot
