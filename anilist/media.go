package anilist

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// UnknownTitle is shown when an entry carries none of the three title variants.
const UnknownTitle = "Unknown title"

// SiteURL is the AniList website entry pages live under.
const SiteURL = "https://anilist.co"

var mangaFormats = []string{"MANGA", "NOVEL", "ONE_SHOT"}

// Title holds the localized titles of an entry. Any of them may be null upstream.
type Title struct {
	Romaji  *string `json:"romaji"`
	English *string `json:"english"`
	Native  *string `json:"native"`
}

// CoverImage holds the cover URLs requested by Query.
type CoverImage struct {
	Medium *string `json:"medium"`
}

// Media is a single AniList entry. Every field is optional because the schema
// allows partial responses.
type Media struct {
	ID         *int        `json:"id"`
	Title      *Title      `json:"title"`
	Format     *string     `json:"format"`
	Genres     []string    `json:"genres"`
	CoverImage *CoverImage `json:"coverImage"`
}

// GraphQLError is one element of the "errors" array of a GraphQL response.
type GraphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Envelope is the outer shape of the response: {"data": {"Media": ...}}.
type Envelope struct {
	Data struct {
		Media *Media `json:"Media"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// Media returns the entry, or None when AniList has no entry for the identifier.
func (e *Envelope) Media() mo.Option[*Media] {
	if e == nil || e.Data.Media == nil {
		return mo.None[*Media]()
	}
	return mo.Some(e.Data.Media)
}

func optional(s *string) mo.Option[string] {
	if s == nil || *s == "" {
		return mo.None[string]()
	}
	return mo.Some(*s)
}

// Resolve prefers the English title, then romaji, then native.
func (t *Title) Resolve() mo.Option[string] {
	if t == nil {
		return mo.None[string]()
	}

	for _, candidate := range []*string{t.English, t.Romaji, t.Native} {
		if title, ok := optional(candidate).Get(); ok {
			return mo.Some(title)
		}
	}

	return mo.None[string]()
}

// Identifier returns the entry id.
func (m *Media) Identifier() mo.Option[int] {
	if m.ID == nil {
		return mo.None[int]()
	}
	return mo.Some(*m.ID)
}

// DisplayTitle resolves the title, falling back to UnknownTitle.
func (m *Media) DisplayTitle() string {
	return m.Title.Resolve().OrElse(UnknownTitle)
}

// FormatLabel returns the format (TV, MOVIE, MANGA, ...).
func (m *Media) FormatLabel() mo.Option[string] {
	return optional(m.Format)
}

// CoverURL returns the medium cover URL.
func (m *Media) CoverURL() mo.Option[string] {
	if m.CoverImage == nil {
		return mo.None[string]()
	}
	return optional(m.CoverImage.Medium)
}

// PageURL returns the entry's page on anilist.co. Manga formats live under
// /manga, everything else under /anime. requested is used when the entry
// carries no id.
func (m *Media) PageURL(requested int) string {
	id := m.Identifier().OrElse(requested)

	kind := "anime"
	if lo.Contains(mangaFormats, m.FormatLabel().OrEmpty()) {
		kind = "manga"
	}

	return fmt.Sprintf("%s/%s/%d", SiteURL, kind, id)
}
