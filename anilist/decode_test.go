package anilist

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const fullBody = `{"data":{"Media":{"id":21,"title":{"romaji":"ONE PIECE","english":"ONE PIECE","native":"ワンピース"},"format":"TV","genres":["Action","Adventure"],"coverImage":{"medium":"https://s4.anilist.co/file/x.jpg"}}}}`

func TestDecode(t *testing.T) {
	Convey("Decode", t, func() {
		Convey("A full envelope decodes every field", func() {
			envelope, err := Decode(fullBody)
			So(err, ShouldBeNil)

			media, ok := envelope.Media().Get()
			So(ok, ShouldBeTrue)
			So(*media.ID, ShouldEqual, 21)
			So(*media.Title.Native, ShouldEqual, "ワンピース")
			So(media.Genres, ShouldResemble, []string{"Action", "Adventure"})
			So(media.CoverURL().MustGet(), ShouldEqual, "https://s4.anilist.co/file/x.jpg")
		})

		Convey("A null Media is a successful not-found", func() {
			body := `{"errors":[{"message":"Not Found.","status":404}],"data":{"Media":null}}`
			envelope, err := Decode(body)
			So(err, ShouldBeNil)
			So(envelope.Media().IsAbsent(), ShouldBeTrue)
			So(envelope.Errors, ShouldHaveLength, 1)
			So(envelope.Errors[0].Status, ShouldEqual, 404)
		})

		Convey("Missing nested members are tolerated", func() {
			envelope, err := Decode(`{"data":{"Media":{"id":5}}}`)
			So(err, ShouldBeNil)
			media := envelope.Media().MustGet()
			So(media.Title, ShouldBeNil)
			So(media.Genres, ShouldBeEmpty)
			So(media.DisplayTitle(), ShouldEqual, UnknownTitle)

			envelope, err = Decode(`{"data":{}}`)
			So(err, ShouldBeNil)
			So(envelope.Media().IsAbsent(), ShouldBeTrue)
		})

		Convey("Malformed documents are DecodeErrors", func() {
			for _, body := range []string{
				``,
				`not json`,
				`{"data":`,
				`[1,2,3]`,
				`"just a string"`,
				`{}`,
				`{"data":null}`,
				`{"data":"nope"}`,
				`{"data":{"Media":[1]}}`,
				`{"data":{"Media":{"id":"twenty-one"}}}`,
				`{"data":{"Media":{"genres":"Action"}}}`,
			} {
				_, err := Decode(body)
				So(err, ShouldNotBeNil)

				var decodeErr *DecodeError
				So(errors.As(err, &decodeErr), ShouldBeTrue)
				So(IsDecode(err), ShouldBeTrue)
				So(IsTransport(err), ShouldBeFalse)
			}
		})

		Convey("A null data member surfaces the GraphQL error messages", func() {
			_, err := Decode(`{"errors":[{"message":"Too Many Requests.","status":429}],"data":null}`)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Too Many Requests.")
		})

		Convey("Long bodies are excerpted", func() {
			_, err := Decode(strings.Repeat("x", 500))
			var decodeErr *DecodeError
			So(errors.As(err, &decodeErr), ShouldBeTrue)
			So(len([]rune(decodeErr.Excerpt)), ShouldEqual, excerptLength+1)
		})
	})
}
