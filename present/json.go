package present

import (
	"encoding/json"

	"github.com/anipeek/anipeek/anilist"
)

// Output is the machine-readable form of a lookup.
type Output struct {
	// ID is the requested identifier.
	ID int `json:"id" jsonschema:"description=Requested AniList media id."`
	// Found is false when AniList has no entry for ID.
	Found bool `json:"found" jsonschema:"description=Whether AniList has an entry for the id."`
	// Title is the resolved display title.
	Title string `json:"title,omitempty" jsonschema:"description=English title, else romaji, else native."`
	// Titles holds every title variant AniList returned.
	Titles *anilist.Title `json:"titles,omitempty" jsonschema:"description=All localized titles."`
	// Format is the media format (TV, MOVIE, MANGA, ...).
	Format string `json:"format,omitempty" jsonschema:"description=Media format such as TV or MANGA."`
	// Genres lists the genres in AniList order.
	Genres []string `json:"genres,omitempty" jsonschema:"description=Genres of the entry."`
	// Cover is the medium cover image URL.
	Cover string `json:"cover,omitempty" jsonschema:"description=Medium resolution cover URL."`
}

// NewOutput builds the machine-readable form of envelope for id.
func NewOutput(id int, envelope *anilist.Envelope) Output {
	media, ok := envelope.Media().Get()
	if !ok {
		return Output{ID: id}
	}

	return Output{
		ID:     media.Identifier().OrElse(id),
		Found:  true,
		Title:  media.DisplayTitle(),
		Titles: media.Title,
		Format: media.FormatLabel().OrEmpty(),
		Genres: media.Genres,
		Cover:  media.CoverURL().OrEmpty(),
	}
}

// PresentJSON writes the lookup as one JSON document.
func (p *Presenter) PresentJSON(id int, envelope *anilist.Envelope) error {
	return json.NewEncoder(p.out).Encode(NewOutput(id, envelope))
}
