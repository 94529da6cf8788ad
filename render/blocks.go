package render

import (
	"bufio"
	"image"
	"image/color"
	"io"

	"github.com/anipeek/anipeek/util"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/nfnt/resize"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"

	// alphaThreshold is the 16-bit alpha below which a pixel counts as transparent.
	alphaThreshold = 0x8000

	// cellPixels approximates the pixel width of one terminal cell for
	// protocols that take pixel sizes.
	cellPixels = 8

	fallbackWidth  = 80
	fallbackHeight = 24
)

// cells returns the size in terminal cells the image occupies. Every cell
// holds two vertically stacked pixels, so a cell is one pixel wide and two
// pixels tall.
func cells(bounds image.Rectangle, cfg Config) (cols, rows int) {
	maxCols, maxRows := cfg.Width, cfg.Height
	if maxCols <= 0 || maxRows <= 0 {
		tw, th := cfg.TermWidth, cfg.TermHeight
		if tw <= 0 || th <= 0 {
			if w, h, err := util.TerminalSize(); err == nil {
				tw, th = w, h
			} else {
				tw, th = fallbackWidth, fallbackHeight
			}
		}

		if maxCols <= 0 {
			maxCols = min(tw-cfg.X, bounds.Dx())
		}
		if maxRows <= 0 {
			// Leave room for the text fields printed below the image.
			maxRows = max(th-6, 4)
		}
	}

	cols = max(maxCols, 1)
	rows = (bounds.Dy()*cols/bounds.Dx() + 1) / 2
	if rows > maxRows {
		rows = maxRows
		cols = max(bounds.Dx()*rows*2/bounds.Dy(), 1)
	}
	return cols, max(rows, 1)
}

func fit(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

// writeBlocks renders two pixel rows per line using upper/lower half blocks.
func writeBlocks(w io.Writer, img image.Image, cfg Config) error {
	cols, rows := cells(img.Bounds(), cfg)
	scaled := fit(img, cols, rows*2)
	bounds := scaled.Bounds()

	out := termenv.NewOutput(w, termenv.WithProfile(cfg.Profile))
	buf := bufio.NewWriter(w)

	for row := 0; row < rows; row++ {
		if err := moveTo(buf, cfg, row); err != nil {
			return err
		}

		y := bounds.Min.Y + row*2
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := scaled.At(x, y)
			var bottom color.Color = color.Transparent
			if y+1 < bounds.Max.Y {
				bottom = scaled.At(x, y+1)
			}

			if _, err := io.WriteString(buf, cell(out, top, bottom, cfg.Transparent)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(buf, termenv.CSI+termenv.ResetSeq+"m\n"); err != nil {
			return err
		}
	}

	return buf.Flush()
}

// cell renders one character cell holding the top and bottom pixel.
func cell(out *termenv.Output, top, bottom color.Color, transparent bool) string {
	topHex, topVisible := hex(top, transparent)
	bottomHex, bottomVisible := hex(bottom, transparent)

	switch {
	case topVisible && bottomVisible:
		return out.String(upperHalf).Foreground(out.Color(topHex)).Background(out.Color(bottomHex)).String()
	case topVisible:
		return out.String(upperHalf).Foreground(out.Color(topHex)).String()
	case bottomVisible:
		return out.String(lowerHalf).Foreground(out.Color(bottomHex)).String()
	default:
		return " "
	}
}

// hex converts c to a hex colour. With transparency enabled, mostly
// transparent pixels are reported invisible; without it they are flattened
// onto black.
func hex(c color.Color, transparent bool) (string, bool) {
	_, _, _, a := c.RGBA()
	if transparent && a < alphaThreshold {
		return "", false
	}

	converted, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}.Hex(), true
	}
	return converted.Hex(), true
}
