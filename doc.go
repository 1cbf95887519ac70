// Package isocontour (module github.com/yanrabe/isocontour) extracts the
// zero-level isocontours of a 2D scalar field and stitches them into a
// single closed polyline.
//
// What:
//
//   - edgeindex  — bijections between (cell, side) and a flat edge index
//   - geom       — linear interpolation, Euclidean norm, splice cost
//   - contour    — marching-squares extraction into a graph.Graph
//   - cycle      — cycle discovery and the cycle catalog
//   - stitch     — the iterative splice engine that fuses cycles into one
//   - polyline   — read-only traversal emitting ordered point pairs
//   - graph      — the shared mutable graph state and its invariants
//   - fieldio    — .npy scalar field loading
//   - graphio    — compressed multi-array graph archive I/O
//   - svgexport  — SVG path export
//   - config     — YAML-configurable run parameters
//   - cmd/isocontour — the command-line driver
//
// Why:
//
//   - Pen-plotter tool-paths and single-stroke drawings need one
//     connected polyline, not a scattering of disjoint contour loops.
//   - Separating the flat-array graph (A1) from the algorithms that
//     mutate it keeps extraction, discovery, and stitching independently
//     testable against the same invariants (P1–P3, checked by
//     graph.CheckInvariants).
//
// See SPEC_FULL.md and DESIGN.md for the full module map and grounding.
package isocontour
