// Package render draws images in the terminal, using the kitty or iTerm2
// graphics protocols when the terminal supports them and ANSI half-blocks
// otherwise.
package render

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/BourgeoisBear/rasterm"
	"github.com/anipeek/anipeek/log"
	"github.com/muesli/termenv"
)

// Protocol names accepted by Config.Protocol and render.protocol.
const (
	Auto   = "auto"
	Kitty  = "kitty"
	Iterm  = "iterm"
	Blocks = "blocks"
)

// Protocols lists every accepted protocol name.
func Protocols() []string {
	return []string{Auto, Kitty, Iterm, Blocks}
}

// Config controls placement and appearance.
type Config struct {
	// Transparent leaves transparent pixels in the terminal's own background.
	Transparent bool
	// Absolute places the image at (X, Y) on screen; otherwise it starts at
	// the cursor and X is an offset from it.
	Absolute bool
	X, Y     int
	// Width and Height bound the image in cells. Zero fits the terminal.
	Width, Height int
	Protocol      string
	// Profile is the colour depth used by the block renderer.
	Profile termenv.Profile
	// TermWidth and TermHeight override the detected terminal size.
	TermWidth, TermHeight int
}

// Render writes img to w. A zero-sized image writes nothing.
func Render(w io.Writer, img image.Image, cfg Config) error {
	if img == nil || img.Bounds().Empty() {
		return nil
	}

	protocol := Resolve(cfg.Protocol)
	log.WithField("protocol", protocol).Debug("Rendering cover")

	switch protocol {
	case Kitty:
		return writeKitty(w, img, cfg)
	case Iterm:
		return writeIterm(w, img, cfg)
	case Blocks:
		return writeBlocks(w, img, cfg)
	default:
		return fmt.Errorf("unknown render protocol %q", protocol)
	}
}

// Resolve turns "auto" (or empty) into the protocol the terminal supports.
func Resolve(protocol string) string {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	if protocol != "" && protocol != Auto {
		return protocol
	}

	switch {
	case rasterm.IsKittyCapable():
		return Kitty
	case rasterm.IsItermCapable():
		return Iterm
	default:
		return Blocks
	}
}

func moveTo(w io.Writer, cfg Config, row int) error {
	var err error
	switch {
	case cfg.Absolute:
		_, err = fmt.Fprintf(w, "\x1b[%d;%dH", cfg.Y+row+1, cfg.X+1)
	case cfg.X > 0:
		_, err = fmt.Fprintf(w, "\x1b[%dC", cfg.X)
	}
	return err
}

func writeKitty(w io.Writer, img image.Image, cfg Config) error {
	cols, rows := cells(img.Bounds(), cfg)
	if err := moveTo(w, cfg, 0); err != nil {
		return err
	}

	opts := rasterm.KittyImgOpts{
		DstCols: uint32(cols),
		DstRows: uint32(rows),
	}
	if err := rasterm.KittyWriteImage(w, img, opts); err != nil {
		return fmt.Errorf("kitty: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

func writeIterm(w io.Writer, img image.Image, cfg Config) error {
	if err := moveTo(w, cfg, 0); err != nil {
		return err
	}

	if err := rasterm.ItermWriteImage(w, fit(img, itermWidth(img.Bounds(), cfg), 0)); err != nil {
		return fmt.Errorf("iterm: %w", err)
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// itermWidth is the pixel width sent to iTerm2: the cell budget, never more
// than the image's own width.
func itermWidth(bounds image.Rectangle, cfg Config) int {
	cols, _ := cells(bounds, cfg)
	return min(cols*cellPixels, bounds.Dx())
}
