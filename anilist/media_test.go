package anilist

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDisplayTitle(t *testing.T) {
	Convey("Given the three title variants", t, func() {
		title := func(english, romaji, native *string) *Media {
			return &Media{Title: &Title{English: english, Romaji: romaji, Native: native}}
		}

		Convey("English wins when present", func() {
			m := title(lo.ToPtr("Eng"), lo.ToPtr("Romaji"), lo.ToPtr("Native"))
			So(m.DisplayTitle(), ShouldEqual, "Eng")
		})

		Convey("Romaji is used without English", func() {
			m := title(nil, lo.ToPtr("Romaji"), lo.ToPtr("Native"))
			So(m.DisplayTitle(), ShouldEqual, "Romaji")
		})

		Convey("Native is the last real title", func() {
			m := title(nil, nil, lo.ToPtr("Native"))
			So(m.DisplayTitle(), ShouldEqual, "Native")
		})

		Convey("Empty strings count as absent", func() {
			m := title(lo.ToPtr(""), lo.ToPtr(""), lo.ToPtr("Native"))
			So(m.DisplayTitle(), ShouldEqual, "Native")
		})

		Convey("All absent falls back to the placeholder", func() {
			So(title(nil, nil, nil).DisplayTitle(), ShouldEqual, UnknownTitle)
			So((&Media{}).DisplayTitle(), ShouldEqual, UnknownTitle)
		})
	})
}

func TestMediaAccessors(t *testing.T) {
	Convey("Given a partially filled entry", t, func() {
		m := &Media{ID: lo.ToPtr(21), Format: lo.ToPtr("TV")}

		Convey("Present fields are Some", func() {
			So(m.Identifier().MustGet(), ShouldEqual, 21)
			So(m.FormatLabel().MustGet(), ShouldEqual, "TV")
		})

		Convey("Missing cover is None", func() {
			So(m.CoverURL().IsAbsent(), ShouldBeTrue)
			m.CoverImage = &CoverImage{}
			So(m.CoverURL().IsAbsent(), ShouldBeTrue)
			m.CoverImage.Medium = lo.ToPtr("https://img/x.jpg")
			So(m.CoverURL().MustGet(), ShouldEqual, "https://img/x.jpg")
		})
	})

	Convey("A nil envelope has no media", t, func() {
		var e *Envelope
		So(e.Media().IsAbsent(), ShouldBeTrue)
	})
}

func TestPageURL(t *testing.T) {
	Convey("Given an entry", t, func() {
		Convey("Anime formats link to /anime", func() {
			m := &Media{ID: lo.ToPtr(1), Format: lo.ToPtr("TV")}
			So(m.PageURL(99), ShouldEqual, "https://anilist.co/anime/1")
		})

		Convey("Manga formats link to /manga", func() {
			m := &Media{ID: lo.ToPtr(30013), Format: lo.ToPtr("ONE_SHOT")}
			So(m.PageURL(99), ShouldEqual, "https://anilist.co/manga/30013")
		})

		Convey("A missing format defaults to /anime", func() {
			m := &Media{ID: lo.ToPtr(5)}
			So(m.PageURL(99), ShouldEqual, "https://anilist.co/anime/5")
		})

		Convey("Without an id the requested one is used", func() {
			m := &Media{Format: lo.ToPtr("TV"), Title: &Title{Romaji: lo.ToPtr("X")}}
			So(m.PageURL(21), ShouldEqual, "https://anilist.co/anime/21")
		})
	})
}
