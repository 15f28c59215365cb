// Package render draws carved mazes.
//
// Renderers only use the read-only query surface of a maze (side length,
// cell count, wall openness and path membership), so anything implementing
// [Maze] can be drawn.
//
// # Formats
//
//   - [FormatASCII]: box-drawing text, path cells marked with "*"
//   - [FormatSVG]: wall lines with a red dot in every path cell
//   - [FormatPNG]: the same picture rasterized
//   - [FormatDOT]: the spanning tree as a Graphviz graph
//   - [FormatTree]: the DOT graph laid out by Graphviz as SVG
//
// Geometry follows a fixed cell size of [CellWidth] pixels with a [Margin]
// on every side, so a maze of side N needs a canvas of N*CellWidth+2*Margin.
package render
