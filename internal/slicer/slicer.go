package slicer

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/ironsheep/image-slicer/internal/imaging"
)

// Options tunes a slice job. The zero value is ready to use.
type Options struct {
	// Root is the parent of the per-image output directory.
	// Defaults to DefaultRoot.
	Root string

	// Quality is the JPEG quality of the tiles (1-100).
	// Defaults to imaging.DefaultJPEGQuality.
	Quality int

	// Logger receives per-tile debug output. Nil disables logging.
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Root == "" {
		o.Root = DefaultRoot
	}
	if o.Quality == 0 {
		o.Quality = imaging.DefaultJPEGQuality
	}
	return o
}

func (o Options) logf(format string, v ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, v...)
	}
}

// Result describes a completed slice job.
type Result struct {
	InputPath string           `json:"input_path"`
	OutputDir string           `json:"output_dir"`
	Grid      imaging.GridSpec `json:"grid"`
	TileSize  imaging.TileSize `json:"tile_size"`
	Files     []string         `json:"files"`
}

// Summary is the one-line report printed after a successful job.
func (r *Result) Summary() string {
	return fmt.Sprintf("Sliced %s into %d sub-images of size %dx%d",
		r.InputPath, r.Grid.Count(), r.TileSize.Width, r.TileSize.Height)
}

// Slice cuts the image at inputPath into grid.Rows x grid.Columns tiles and
// writes them below opts.Root.
//
// The grid is validated before the input is opened, and the tile size is
// checked before the output directory is created, so an unusable grid never
// leaves anything on disk. ctx is checked between tiles.
//
// On error the returned Result is nil. Tiles written before the failure are
// not removed.
func Slice(ctx context.Context, inputPath string, grid imaging.GridSpec, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if err := grid.Validate(); err != nil {
		return nil, err
	}

	if opts.Logger != nil {
		if info, err := imaging.Stat(inputPath); err == nil {
			opts.logf("input %s: %s, %dx%d, %d bytes",
				inputPath, info.Format, info.Width, info.Height, info.FileSizeBytes)
		}
	}

	img, err := imaging.Load(inputPath)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	size, err := imaging.ComputeTileSize(bounds.Dx(), bounds.Dy(), grid)
	if err != nil {
		return nil, err
	}

	outDir, err := OutputDir(opts.Root, inputPath)
	if err != nil {
		return nil, err
	}
	if err := ensureDir(outDir); err != nil {
		return nil, err
	}

	opts.logf("slicing %s (%dx%d) into %s grid, tile %s -> %s",
		inputPath, bounds.Dx(), bounds.Dy(), grid, size, outDir)

	result := &Result{
		InputPath: inputPath,
		OutputDir: outDir,
		Grid:      grid,
		TileSize:  size,
		Files:     make([]string, 0, grid.Count()),
	}

	for col, row := range imaging.EnumerateTiles(grid) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tile := imaging.TileAt(col, row, size)
		sub, err := imaging.CropTile(img, tile)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(outDir, TileFileName(col, row))
		if err := imaging.SaveJPEG(sub, path, opts.Quality); err != nil {
			return nil, err
		}

		if opts.Logger != nil {
			opts.logf("wrote %s %v mean=%s", path, tile.Rect(), imaging.MeanColorHex(sub))
		}
		result.Files = append(result.Files, path)
	}

	return result, nil
}
