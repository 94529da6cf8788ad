// Package cover downloads and decodes cover images. Failures never propagate:
// the caller always gets something it can render.
package cover

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"

	// Registered decoders for the formats AniList's CDN serves.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/anipeek/anipeek/log"
	"github.com/anipeek/anipeek/network"
	"github.com/samber/mo"
)

// maxImageBytes bounds a single download.
const maxImageBytes = 16 << 20

// Rendered is a cover paired with whether it is the placeholder.
type Rendered struct {
	Image       image.Image
	Placeholder bool
}

// Placeholder returns the zero-sized bitmap used when no cover is available.
func Placeholder() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 0, 0))
}

// Doer is the subset of *http.Client used by Fetcher.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads cover images.
type Fetcher struct {
	http Doer
}

// NewFetcher returns a fetcher using doer, or network.Client when doer is nil.
func NewFetcher(doer Doer) *Fetcher {
	if doer == nil {
		doer = network.Client
	}
	return &Fetcher{http: doer}
}

// Fetch downloads url and decodes it.
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	log.Debugf("Decoded %s cover %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// Load fetches the cover behind url. An absent url and any fetch or decode
// failure all produce the placeholder.
func (f *Fetcher) Load(ctx context.Context, url mo.Option[string]) Rendered {
	u, ok := url.Get()
	if !ok {
		log.Debug("Entry has no cover image")
		return Rendered{Image: Placeholder(), Placeholder: true}
	}

	img, err := f.Fetch(ctx, u)
	if err != nil {
		log.WithField("url", u).Warn(err)
		return Rendered{Image: Placeholder(), Placeholder: true}
	}

	return Rendered{Image: img}
}
