// Package lookup runs the sequential fetch, decode, cover and print pipeline for one identifier.
package lookup

import (
	"context"

	"github.com/anipeek/anipeek/anilist"
	"github.com/anipeek/anipeek/cover"
	"github.com/anipeek/anipeek/log"
	"github.com/anipeek/anipeek/present"
	"github.com/samber/mo"
)

// Fetcher retrieves and decodes the entry for an identifier.
type Fetcher interface {
	Fetch(ctx context.Context, id int) (*anilist.Envelope, error)
}

// CoverLoader turns an optional cover URL into something renderable. It never fails.
type CoverLoader interface {
	Load(ctx context.Context, url mo.Option[string]) cover.Rendered
}

// Options configures a Pipeline.
type Options struct {
	// JSON prints machine-readable output instead of the cover and fields.
	JSON bool
	// DrawCover fetches the cover image. When off no image request is made.
	DrawCover bool
	// Remember is called with every entry found. Its error is only logged.
	Remember func(*anilist.Media) error
}

// Pipeline wires the stages together.
type Pipeline struct {
	entries   Fetcher
	covers    CoverLoader
	presenter *present.Presenter
	options   Options
}

// New returns a Pipeline.
func New(entries Fetcher, covers CoverLoader, presenter *present.Presenter, options Options) *Pipeline {
	return &Pipeline{
		entries:   entries,
		covers:    covers,
		presenter: presenter,
		options:   options,
	}
}

// Run looks up id and prints the result.
//
// Transport and decode failures are returned untouched so the caller decides
// whether they are fatal. A missing entry is not an error: a single notice is
// printed and no cover is requested.
func (p *Pipeline) Run(ctx context.Context, id int) error {
	envelope, err := p.entries.Fetch(ctx, id)
	if err != nil {
		return err
	}

	media, found := envelope.Media().Get()
	if !found {
		log.Infof("No entry for id %d", id)
		if p.options.JSON {
			return p.presenter.PresentJSON(id, envelope)
		}
		p.presenter.NotFound(id)
		return nil
	}

	if p.options.Remember != nil {
		if err := p.options.Remember(media); err != nil {
			log.Warnf("remember lookup %d: %s", id, err)
		}
	}

	if p.options.JSON {
		return p.presenter.PresentJSON(id, envelope)
	}

	rendered := cover.Rendered{Image: cover.Placeholder(), Placeholder: true}
	if p.options.DrawCover {
		rendered = p.covers.Load(ctx, media.CoverURL())
	}

	p.presenter.Present(media, rendered)
	return nil
}
