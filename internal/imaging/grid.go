package imaging

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"strconv"
)

// ErrEmptyGrid is returned when a grid has zero rows or zero columns.
var ErrEmptyGrid = errors.New("grid must have at least one row and one column")

// ErrTileTooSmall is returned when the grid is finer than the image, so that a
// tile would be zero pixels wide or high.
var ErrTileTooSmall = errors.New("grid is finer than the image")

// GridSpec is the caller-supplied partition count of an image.
type GridSpec struct {
	Rows    uint32 `json:"rows"`
	Columns uint32 `json:"columns"`
}

// ParseGridSpec parses the textual row and column counts of a grid.
//
// Both values must be unsigned 32-bit decimal integers. Zero is accepted here
// and rejected later by Validate, so that parse errors and empty grids stay
// distinguishable.
func ParseGridSpec(rows, columns string) (GridSpec, error) {
	r, err := strconv.ParseUint(rows, 10, 32)
	if err != nil {
		return GridSpec{}, fmt.Errorf("invalid rows %q: %w", rows, err)
	}
	c, err := strconv.ParseUint(columns, 10, 32)
	if err != nil {
		return GridSpec{}, fmt.Errorf("invalid columns %q: %w", columns, err)
	}
	return GridSpec{Rows: uint32(r), Columns: uint32(c)}, nil
}

// Validate reports ErrEmptyGrid if either dimension is zero.
func (g GridSpec) Validate() error {
	if g.Rows == 0 || g.Columns == 0 {
		return fmt.Errorf("%w: got %d rows, %d columns", ErrEmptyGrid, g.Rows, g.Columns)
	}
	return nil
}

// Count returns the number of tiles in the grid.
func (g GridSpec) Count() int {
	return int(g.Rows) * int(g.Columns)
}

func (g GridSpec) String() string {
	return fmt.Sprintf("%dx%d", g.Rows, g.Columns)
}

// TileSize is the pixel size shared by every tile of a grid.
type TileSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s TileSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ComputeTileSize divides an image of width x height pixels by the grid.
//
// The division truncates: width/columns and height/rows. Pixels left over on
// the right and bottom edges are not covered by any tile.
//
// # Errors
//
//   - ErrEmptyGrid if the grid has zero rows or columns
//   - ErrTileTooSmall if the resulting tile would be empty
func ComputeTileSize(width, height int, grid GridSpec) (TileSize, error) {
	if err := grid.Validate(); err != nil {
		return TileSize{}, err
	}

	size := TileSize{
		Width:  width / int(grid.Columns),
		Height: height / int(grid.Rows),
	}
	if size.Width == 0 || size.Height == 0 {
		return TileSize{}, fmt.Errorf("%w: %dx%d image into %d columns, %d rows",
			ErrTileTooSmall, width, height, grid.Columns, grid.Rows)
	}
	return size, nil
}

// EnumerateTiles yields the (column, row) index of every tile in the grid.
//
// Columns form the outer loop and rows the inner one, so every row of column 0
// is produced before any row of column 1. The sequence may be ranged over any
// number of times.
func EnumerateTiles(grid GridSpec) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for col := 0; col < int(grid.Columns); col++ {
			for row := 0; row < int(grid.Rows); row++ {
				if !yield(col, row) {
					return
				}
			}
		}
	}
}

// Tile describes one cell of the grid in source-image pixel coordinates.
type Tile struct {
	Col    int `json:"col"`
	Row    int `json:"row"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TileAt places the tile at (col, row) for tiles of the given size.
func TileAt(col, row int, size TileSize) Tile {
	return Tile{
		Col:    col,
		Row:    row,
		X:      col * size.Width,
		Y:      row * size.Height,
		Width:  size.Width,
		Height: size.Height,
	}
}

// Rect returns the tile's region, relative to the image origin.
func (t Tile) Rect() image.Rectangle {
	return image.Rect(t.X, t.Y, t.X+t.Width, t.Y+t.Height)
}
