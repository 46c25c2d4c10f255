// Package imaging provides the image operations used to slice a picture into tiles.
//
// This package implements decoding of the source image, the grid arithmetic that
// partitions its pixel extent, cropping of individual tiles, JPEG encoding of the
// results and a small colour statistic used for diagnostics. All operations work
// with standard Go image.Image types and use a coordinate system where (0,0) is at
// the top-left corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based and relative to the image's
// bounds origin:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x, y) is inclusive (top-left), (x+w, y+h) is exclusive
//
// # Grid Layout
//
// A GridSpec of R rows and C columns divides a WxH image into tiles of
// W/C by H/R pixels using truncating integer division. Remainder pixels on the
// right and bottom edges belong to no tile.
//
// Tiles are enumerated column by column:
//
//	(0,0) (0,1) ... (0,R-1) (1,0) (1,1) ... (C-1,R-1)
//
// where each pair is (column, row).
//
// # Thread Safety
//
// Every function in this package is stateless. Cropped tiles never share pixel
// memory with their source, so they can be handed to other goroutines freely.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Zero rows or columns (ErrEmptyGrid)
//   - Grids finer than the image (ErrTileTooSmall)
//   - Crop regions outside the image bounds
//   - File I/O or decode failures (ErrDecode)
//   - Encoding errors during tile output
package imaging
