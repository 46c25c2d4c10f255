package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a uniformly coloured PNG into a per-test temp
// directory and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp(t.TempDir(), "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func TestLoad(t *testing.T) {
	imgPath := createTestImage(t, 100, 80, color.RGBA{255, 0, 0, 255})

	img, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}
}

func TestLoad_JPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := jpeg.Encode(f, createInMemoryImage(40, 30, color.RGBA{0, 0, 255, 255}), nil); err != nil {
		f.Close()
		t.Fatalf("failed to encode image: %v", err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("unexpected dimensions: got %v", img.Bounds().Size())
	}
}

func TestLoad_NonExistent(t *testing.T) {
	_, err := Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Fatal("Load should fail for non-existent file")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error should wrap ErrDecode, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid-image.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should fail for invalid image data")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error should wrap ErrDecode, got %v", err)
	}
}

func TestStat(t *testing.T) {
	imgPath := createTestImage(t, 200, 150, color.RGBA{255, 128, 64, 255})

	info, err := Stat(imgPath)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Error("FileSizeBytes should be positive")
	}
}

func TestStat_NonExistent(t *testing.T) {
	_, err := Stat("/nonexistent/image.png")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Stat should fail with ErrDecode, got %v", err)
	}
}
