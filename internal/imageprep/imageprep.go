// Package imageprep enhances scanned images before OCR. The chain mirrors
// a conventional scan cleanup: grayscale, upscale of small captures,
// contrast stretch, and adaptive mean thresholding. The result is written
// as a temporary PNG owned by the caller.
package imageprep

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	// Input decoders for the formats the converter accepts.
	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
)

// ErrDecode reports an unreadable or corrupt input image.
var ErrDecode = errors.New("cannot decode image")

// Tuning constants for the enhancement chain.
const (
	// minWidth is the narrowest image passed to OCR as-is; narrower
	// captures are upscaled to this width.
	minWidth = 1024
	// thresholdWindow is the side of the square neighborhood used by the
	// adaptive threshold, in pixels.
	thresholdWindow = 15
	// thresholdBias is subtracted from the neighborhood mean so that flat
	// regions resolve to white instead of noise.
	thresholdBias = 8
)

// MIMEType is the content type of every prepared image.
const MIMEType = "image/png"

// Prepare reads the image at path, applies the enhancement chain, and
// writes the result to a temporary PNG. It returns the temp file path and
// a cleanup func that removes it; cleanup is safe to call on every exit
// path, including after failures.
func Prepare(path string) (string, func(), error) {
	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	gray := toGray(src)
	if gray.Bounds().Dx() < minWidth {
		gray = upscale(gray, minWidth)
	}
	gray = stretchContrast(gray)
	gray = adaptiveThreshold(gray, thresholdWindow, thresholdBias)

	tmp, err := os.CreateTemp("", "img2docx-*.png")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp image: %w", err)
	}
	cleanup := func() { _ = os.Remove(tmp.Name()) }

	if err := png.Encode(tmp, gray); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("encoding temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp image: %w", err)
	}

	return tmp.Name(), cleanup, nil
}

// toGray converts any image to 8-bit grayscale.
func toGray(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// upscale resizes gray to the given width, preserving aspect ratio.
func upscale(gray *image.Gray, width int) *image.Gray {
	b := gray.Bounds()
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), gray, b, draw.Src, nil)
	return dst
}

// stretchContrast maps the observed intensity range onto the full 0-255
// span. A flat image (single intensity) is returned unchanged.
func stretchContrast(gray *image.Gray) *image.Gray {
	lo, hi := uint8(255), uint8(0)
	for _, v := range gray.Pix {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo >= hi {
		return gray
	}

	span := int(hi) - int(lo)
	out := image.NewGray(gray.Bounds())
	for i, v := range gray.Pix {
		out.Pix[i] = uint8((int(v) - int(lo)) * 255 / span)
	}
	return out
}

// adaptiveThreshold binarizes gray against the mean of a window-sized
// neighborhood, computed with a summed-area table. Pixels darker than the
// local mean minus bias become black, everything else white. Local means
// cope with uneven lighting where a global threshold would not.
func adaptiveThreshold(gray *image.Gray, window, bias int) *image.Gray {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return gray
	}

	// Summed-area table with a one-row/column zero border.
	sums := make([]int64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			sums[(y+1)*(w+1)+x+1] = sums[y*(w+1)+x+1] + rowSum
		}
	}

	half := window / 2
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := max(0, x-half), max(0, y-half)
			x1, y1 := min(w, x+half+1), min(h, y+half+1)
			area := int64((x1 - x0) * (y1 - y0))
			sum := sums[y1*(w+1)+x1] - sums[y0*(w+1)+x1] - sums[y1*(w+1)+x0] + sums[y0*(w+1)+x0]
			mean := sum / area

			v := int64(gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			if v < mean-int64(bias) {
				out.SetGray(x, y, color.Gray{Y: 0})
			} else {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}
