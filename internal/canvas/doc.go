// Package canvas provides the 2D drawing surface that effects render onto.
//
// Effects draw in world coordinates through the [Surface] interface. The
// package ships the implementations used by the rest of the program:
//
//   - [Raster]: anti-aliased software rasterizer backed by an *image.RGBA
//   - [HalfBlock]: converts a raster image into truecolour half-block text
//   - [Braille]: converts a raster image into monochrome braille text
//   - [Recorder]: collects frames and writes an animated GIF
//
// # Stroke Width
//
// Closed shapes ([Surface.Circle], [Surface.Rect], [Surface.Polygon]) are
// filled when width is 0 and outlined otherwise.
package canvas
