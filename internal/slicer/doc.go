// Package slicer runs a slice job: it loads one image, cuts it into a grid of
// tiles and writes every tile to disk as a JPEG file.
//
// # Output Layout
//
// Tiles of an input "photos/cat.png" sliced with the default options land in
//
//	sub_images/cat/subimage_<col>_<row>.jpg
//
// with 1-based column and row numbers. The directory is created when missing.
// Files from an earlier run with the same name are overwritten; files from an
// earlier run with a larger grid are left untouched.
//
// # Processing Order
//
// Tiles are cropped and written one at a time, column by column. The first
// failure stops the job and is returned; tiles already written stay on disk.
//
// # Errors
//
// Slice returns errors wrapping:
//   - imaging.ErrEmptyGrid and imaging.ErrTileTooSmall for unusable grids,
//     detected before anything is written
//   - imaging.ErrDecode when the input cannot be read or decoded
//   - *PathError when no output directory name can be derived from the input
//   - the underlying os error when the directory or a tile cannot be written
package slicer
