// Package present prints AniList entries: the cover first, then the text fields.
package present

import (
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/anipeek/anipeek/anilist"
	"github.com/anipeek/anipeek/color"
	"github.com/anipeek/anipeek/cover"
	"github.com/anipeek/anipeek/icon"
	"github.com/anipeek/anipeek/log"
	"github.com/anipeek/anipeek/render"
	"github.com/anipeek/anipeek/style"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
)

const (
	labelWidth = 8
	missing    = "-"
)

// RenderFunc draws an image. render.Render satisfies it once bound to a config.
type RenderFunc func(w io.Writer, img image.Image) error

// Options configures a Presenter.
type Options struct {
	// DrawCover enables cover rendering.
	DrawCover bool
	// Render overrides the renderer, mostly for tests.
	Render RenderFunc
	// Graphics is used when Render is nil. Transparency and cursor-relative
	// placement are always forced on.
	Graphics render.Config
	// Width is the column count text is wrapped at. Zero disables wrapping.
	Width int
}

// Presenter writes entries and notices to an output stream.
type Presenter struct {
	out     io.Writer
	options Options
}

// New returns a Presenter writing to out.
func New(out io.Writer, options Options) *Presenter {
	if options.Render == nil {
		cfg := options.Graphics
		cfg.Transparent = true
		cfg.Absolute = false
		options.Render = func(w io.Writer, img image.Image) error {
			return render.Render(w, img, cfg)
		}
	}

	return &Presenter{out: out, options: options}
}

// Present draws the cover (unless it is the placeholder) and prints the
// entry's fields. A drawing failure is reported as a warning; the fields
// are printed regardless.
func (p *Presenter) Present(media *anilist.Media, rendered cover.Rendered) {
	if p.options.DrawCover && !rendered.Placeholder {
		if err := p.options.Render(p.out, rendered.Image); err != nil {
			log.Warn(err)
			p.Warn(fmt.Sprintf("couldn't draw the cover: %s", err))
		}
	}

	id := missing
	if value, ok := media.Identifier().Get(); ok {
		id = strconv.Itoa(value)
	}

	p.field("ID", id)
	p.field("Title", style.Bold(media.DisplayTitle()))
	p.field("Format", media.FormatLabel().OrElse(missing))
	p.field("Genres", genres(media.Genres))
}

func genres(list []string) string {
	list = lo.Compact(list)
	if len(list) == 0 {
		return missing
	}
	return strings.Join(list, ", ")
}

func (p *Presenter) field(label, value string) {
	if width := p.options.Width - labelWidth; p.options.Width > 0 && width > 10 {
		value = wordwrap.String(value, width)
		value = strings.ReplaceAll(value, "\n", "\n"+strings.Repeat(" ", labelWidth))
	}

	_, _ = fmt.Fprintf(p.out, "%s%s\n", style.Label(label, labelWidth), value)
}

func (p *Presenter) notice(i icon.Icon, paint func(string) string, msg string) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", paint(icon.Get(i)), msg)
}

// NotFound reports that AniList has no entry for id.
func (p *Presenter) NotFound(id int) {
	p.notice(icon.NotFound, style.Fg(color.Yellow), fmt.Sprintf("No entry found for id %d", id))
}

// InvalidInput reports input that is neither a command nor an identifier.
func (p *Presenter) InvalidInput(input string) {
	p.notice(icon.Warn, style.Fg(color.Yellow), fmt.Sprintf("Invalid input %q: enter a numeric id or \"exit\"", input))
}

// CantConnect reports a transport failure.
func (p *Presenter) CantConnect(err error) {
	p.notice(icon.Fail, style.Fg(color.Red), "Can't connect to AniList")
	_, _ = fmt.Fprintln(p.out, style.Faint(err.Error()))
}

// Malformed reports a response that could not be decoded.
func (p *Presenter) Malformed(err error) {
	p.notice(icon.Fail, style.Fg(color.Red), "AniList sent a response that couldn't be read")
	_, _ = fmt.Fprintln(p.out, style.Faint(err.Error()))
}

// Warn prints a non-fatal warning.
func (p *Presenter) Warn(msg string) {
	p.notice(icon.Warn, style.Fg(color.Yellow), msg)
}

// Divider prints the rule separating two lookups.
func (p *Presenter) Divider() {
	_, _ = fmt.Fprintln(p.out, style.Divider(p.options.Width))
}
