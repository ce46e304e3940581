// Package ggchart provides the coordinate transform and hit-testing core
// of an interactive chart.
//
// # Overview
//
// A chart keeps two coordinate systems: data value space, where entries
// live, and pixel space, where the host view draws and receives touches.
// ggchart owns the mapping between the two and the pan/zoom state that
// modifies it.
//
// # Architecture
//
// The library is organized into:
//   - ggchart: geometry primitives (Matrix, Point, Rect, Path, polar helpers)
//   - axis: value range resolution and tick computation
//   - viewport: content rect, touch matrix and pan/zoom clamping
//   - transform: value to pixel matrices per axis dependency
//   - data: entries, data sets and the Series capability
//   - highlight: touch to entry resolution for every chart kind
//   - jobs: deferred and animated viewport changes
//   - layout, format: label measurement and formatting for offsets
//   - chart: controllers wiring everything together
//
// # Coordinate Conventions
//
// Pixel y grows downward. The touch matrix operates in a space whose
// origin is the bottom-left corner of the content rect with y negated, so
// a translation of zero always shows the lowest values of both axes.
//
// # Logging
//
// ggchart is silent by default. Call [SetLogger] to route diagnostics to
// a [log/slog] logger.
package ggchart
