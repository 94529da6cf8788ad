package present

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/anipeek/anipeek/anilist"
	"github.com/anipeek/anipeek/cover"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func sample() *anilist.Media {
	return &anilist.Media{
		ID:     lo.ToPtr(21),
		Title:  &anilist.Title{Romaji: lo.ToPtr("ONE PIECE"), Native: lo.ToPtr("ワンピース")},
		Format: lo.ToPtr("TV"),
		Genres: []string{"Action", "Adventure", "Comedy"},
	}
}

func realCover() cover.Rendered {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	return cover.Rendered{Image: img}
}

func TestPresent(t *testing.T) {
	Convey("Given a presenter with a recording renderer", t, func() {
		var out bytes.Buffer
		var drawn int
		renderErr := error(nil)

		p := New(&out, Options{
			DrawCover: true,
			Render: func(w io.Writer, img image.Image) error {
				drawn++
				if renderErr != nil {
					return renderErr
				}
				_, err := io.WriteString(w, "[cover]\n")
				return err
			},
		})

		Convey("A real cover is drawn before the fields", func() {
			p.Present(sample(), realCover())

			text := out.String()
			So(drawn, ShouldEqual, 1)
			So(strings.Index(text, "[cover]"), ShouldBeLessThan, strings.Index(text, "ONE PIECE"))
			So(text, ShouldContainSubstring, "21")
			So(text, ShouldContainSubstring, "TV")
			So(text, ShouldContainSubstring, "Action, Adventure, Comedy")
		})

		Convey("The placeholder is not drawn but every field is printed", func() {
			p.Present(sample(), cover.Rendered{Image: cover.Placeholder(), Placeholder: true})

			text := out.String()
			So(drawn, ShouldEqual, 0)
			for _, label := range []string{"ID", "Title", "Format", "Genres"} {
				So(text, ShouldContainSubstring, label)
			}
			So(text, ShouldContainSubstring, "ONE PIECE")
		})

		Convey("A render failure is a warning, not an abort", func() {
			renderErr = errors.New("terminal said no")
			p.Present(sample(), realCover())

			text := out.String()
			So(text, ShouldContainSubstring, "couldn't draw the cover")
			So(text, ShouldContainSubstring, "ONE PIECE")
			So(text, ShouldContainSubstring, "Action")
		})

		Convey("Missing fields print a dash and the placeholder title", func() {
			p.Present(&anilist.Media{}, cover.Rendered{Image: cover.Placeholder(), Placeholder: true})

			text := out.String()
			So(text, ShouldContainSubstring, anilist.UnknownTitle)
			So(strings.Count(text, missing), ShouldBeGreaterThanOrEqualTo, 3)
		})

		Convey("NotFound prints a single notice", func() {
			p.NotFound(404)
			So(strings.Count(out.String(), "\n"), ShouldEqual, 1)
			So(out.String(), ShouldContainSubstring, "No entry found for id 404")
		})
	})

	Convey("Given cover drawing is disabled", t, func() {
		var out bytes.Buffer
		p := New(&out, Options{
			DrawCover: false,
			Render: func(io.Writer, image.Image) error {
				panic("renderer must not be called")
			},
		})

		So(func() { p.Present(sample(), realCover()) }, ShouldNotPanic)
		So(out.String(), ShouldContainSubstring, "ONE PIECE")
	})

	Convey("Given a narrow presenter", t, func() {
		var out bytes.Buffer
		p := New(&out, Options{Width: 30})
		media := sample()
		media.Genres = []string{"Action", "Adventure", "Comedy", "Drama", "Fantasy", "Romance"}

		p.Present(media, cover.Rendered{Image: cover.Placeholder(), Placeholder: true})

		Convey("Long genre lists are wrapped", func() {
			So(strings.Count(out.String(), "\n"), ShouldBeGreaterThan, 4)
			So(out.String(), ShouldContainSubstring, "Romance")
		})
	})
}

func TestPresentJSON(t *testing.T) {
	Convey("PresentJSON", t, func() {
		var out bytes.Buffer
		p := New(&out, Options{})

		Convey("writes the resolved entry", func() {
			envelope := &anilist.Envelope{}
			envelope.Data.Media = sample()
			So(p.PresentJSON(21, envelope), ShouldBeNil)

			var decoded Output
			So(json.Unmarshal(out.Bytes(), &decoded), ShouldBeNil)
			So(decoded.Found, ShouldBeTrue)
			So(decoded.Title, ShouldEqual, "ONE PIECE")
			So(decoded.Genres, ShouldHaveLength, 3)
			So(decoded.Cover, ShouldBeEmpty)
		})

		Convey("marks a missing entry", func() {
			So(p.PresentJSON(7, &anilist.Envelope{}), ShouldBeNil)

			var decoded Output
			So(json.Unmarshal(out.Bytes(), &decoded), ShouldBeNil)
			So(decoded.Found, ShouldBeFalse)
			So(decoded.ID, ShouldEqual, 7)
		})
	})
}
