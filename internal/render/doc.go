// Package render draws section animations onto a [Surface].
//
// Three surfaces are provided:
//
//   - [Image]: a raster canvas on a fogleman/gg context, with Go Regular
//     glyphs through golang/freetype
//   - [Braille]: a terminal canvas of 2x4 braille dots per cell
//   - [Recorder]: an op log used by tests
//
// Colours come from a [Paint] (solid or gradient) and the active [Theme].
package render
