package slicer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultRoot is the directory under which per-image tile directories are created.
const DefaultRoot = "sub_images"

// PathError reports an input path from which no output directory can be derived.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid input path %q: %s", e.Path, e.Reason)
}

// Stem returns the base name of path without its final extension.
//
// A name made only of an extension, like ".png", is returned whole. The second
// result is false when path has no usable base name: an empty path, a file
// system root, "." or "..".
func Stem(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", false
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base, true
	}
	return stem, true
}

// OutputDir returns the directory that receives the tiles of inputPath.
func OutputDir(root, inputPath string) (string, error) {
	stem, ok := Stem(inputPath)
	if !ok {
		return "", &PathError{Path: inputPath, Reason: "no file name to derive the output directory from"}
	}
	if root == "" {
		root = DefaultRoot
	}
	return filepath.Join(root, stem), nil
}

// TileFileName names the tile at 0-based (col, row).
func TileFileName(col, row int) string {
	return fmt.Sprintf("subimage_%d_%d.jpg", col+1, row+1)
}

// ensureDir creates dir and any missing parents.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
