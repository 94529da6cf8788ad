package anilist

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseID(t *testing.T) {
	Convey("ParseID", t, func() {
		Convey("accepts ids within AniList's Int", func() {
			for input, want := range map[string]int{"21": 21, " 0 ": 0, "2147483647": MaxID} {
				id, err := ParseID(input)
				So(err, ShouldBeNil)
				So(id, ShouldEqual, want)
			}
		})

		Convey("rejects everything else", func() {
			for _, input := range []string{"", "abc", "-1", "+1", "1.5", "2147483648", "99999999999"} {
				_, err := ParseID(input)
				So(err, ShouldNotBeNil)
			}
		})
	})

	Convey("ValidID uses the same bounds", t, func() {
		So(ValidID(0), ShouldBeTrue)
		So(ValidID(MaxID), ShouldBeTrue)
		So(ValidID(-1), ShouldBeFalse)
		So(ValidID(99999999999), ShouldBeFalse)
	})
}
