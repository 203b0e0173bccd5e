package imageprep

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestImage writes a small synthetic scan: dark "text" strokes on a
// lighter background with a mild gradient.
func writeTestImage(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(180 + 40*x/w)
			if y%7 == 3 && x%5 != 0 {
				v = 30
			}
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "scan.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return path
}

func TestPrepare(t *testing.T) {
	src := writeTestImage(t, 64, 48)

	tmpPath, cleanup, err := Prepare(src)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	defer cleanup()

	f, err := os.Open(tmpPath) // #nosec G304 -- temp path from Prepare
	if err != nil {
		t.Fatalf("opening prepared image: %v", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decoding prepared image: %v", err)
	}
	if format != "png" {
		t.Errorf("prepared format = %q, want png", format)
	}

	// Small input must be upscaled to the OCR minimum width.
	if got := img.Bounds().Dx(); got != minWidth {
		t.Errorf("prepared width = %d, want %d", got, minWidth)
	}

	// Thresholding leaves only black and white.
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("prepared image type = %T, want *image.Gray", img)
	}
	for _, v := range gray.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("found non-binary pixel value %d", v)
		}
	}
}

func TestPrepareCleanupRemovesTempFile(t *testing.T) {
	src := writeTestImage(t, 32, 32)

	tmpPath, cleanup, err := Prepare(src)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	cleanup()

	if _, err := os.Stat(tmpPath); !os.IsNotExist(err) {
		t.Errorf("temp file still exists after cleanup: %v", err)
	}
}

func TestPrepareRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.jpg")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Prepare(path)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Prepare() error = %v, want ErrDecode", err)
	}
}

func TestPrepareMissingFile(t *testing.T) {
	_, _, err := Prepare(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("Prepare() on missing file succeeded, want error")
	}
}

func TestStretchContrastFullRange(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.Pix[0] = 100
	gray.Pix[1] = 150

	out := stretchContrast(gray)
	if out.Pix[0] != 0 || out.Pix[1] != 255 {
		t.Errorf("stretched pixels = %v, want [0 255]", out.Pix)
	}
}

func TestStretchContrastFlatImageUnchanged(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 1))
	for i := range gray.Pix {
		gray.Pix[i] = 42
	}
	out := stretchContrast(gray)
	for _, v := range out.Pix {
		if v != 42 {
			t.Fatalf("flat image changed: pixel %d", v)
		}
	}
}
