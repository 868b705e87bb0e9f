// Package export turns the interpreter's canvas into image files:
// still PNG/JPEG rasters and animated GIFs sampled while a program
// runs. It is the only package that knows how canvas colors map to
// RGB values.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/cfrs-studio/internal/lang"
)

// rgba maps each canvas color to its fixed RGBA value.
var rgba = map[lang.Color]color.RGBA{
	lang.White:   {255, 255, 255, 255},
	lang.Black:   {0, 0, 0, 255},
	lang.Blue:    {0, 0, 255, 255},
	lang.Green:   {0, 255, 0, 255},
	lang.Cyan:    {0, 255, 255, 255},
	lang.Red:     {255, 0, 0, 255},
	lang.Magenta: {255, 0, 255, 255},
	lang.Yellow:  {255, 255, 0, 255},
}

// Palette holds the eight canvas colors in cycle order, indexed by
// lang.Color. GIF frames use it directly.
var Palette = color.Palette{
	rgba[lang.White],
	rgba[lang.Black],
	rgba[lang.Blue],
	rgba[lang.Green],
	rgba[lang.Cyan],
	rgba[lang.Red],
	rgba[lang.Magenta],
	rgba[lang.Yellow],
}

// RGBA returns the fixed RGBA value for a canvas color.
func RGBA(c lang.Color) color.RGBA {
	return rgba[c]
}

// Image renders the canvas as an RGBA raster, one pixel per cell.
func Image(buf *lang.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.W, buf.H))
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			c, _ := buf.Get(x, y)
			img.SetRGBA(x, y, rgba[c])
		}
	}
	return img
}

// Paletted renders the canvas as a paletted raster for GIF encoding.
// Cell values double as palette indices.
func Paletted(buf *lang.Buffer) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, buf.W, buf.H), Palette)
	for y := 0; y < buf.H; y++ {
		for x := 0; x < buf.W; x++ {
			c, _ := buf.Get(x, y)
			img.SetColorIndex(x, y, uint8(c))
		}
	}
	return img
}

// Scale enlarges an image by an integer factor using nearest-neighbour
// sampling, keeping cell edges crisp. A factor of 1 returns the input.
func Scale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// Animated reports whether the output path selects animation export.
func Animated(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".gif"
}

// Save writes the canvas as a still image, choosing the format from
// the file extension. Supported: .png, .jpg, .jpeg.
func Save(buf *lang.Buffer, path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(buf, f, filepath.Ext(path), scale); err != nil {
		return err
	}

	return f.Close()
}

// Encode writes the canvas to w in the format named by ext.
func Encode(buf *lang.Buffer, w io.Writer, ext string, scale int) error {
	img := Scale(Image(buf), scale)

	switch strings.ToLower(ext) {
	case ".png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("export: png encode: %w", err)
		}
	case ".jpg", ".jpeg":
		// JPEG has no alpha channel; the fixed palette is fully opaque
		// so nothing is lost.
		if err := jpeg.Encode(w, img, nil); err != nil {
			return fmt.Errorf("export: jpeg encode: %w", err)
		}
	default:
		return fmt.Errorf("export: unsupported image format %q", ext)
	}

	return nil
}
