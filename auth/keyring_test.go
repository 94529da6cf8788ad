package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestToken(t *testing.T) {
	Convey("Given the mock keyring", t, func() {
		So(DeleteToken(), ShouldBeNil)

		Convey("No token is stored initially", func() {
			So(Token(), ShouldBeEmpty)
		})

		Convey("A token round-trips trimmed", func() {
			So(SetToken("  abc.def  "), ShouldBeNil)
			So(Token(), ShouldEqual, "abc.def")

			So(DeleteToken(), ShouldBeNil)
			So(Token(), ShouldBeEmpty)
		})

		Convey("An empty token is rejected", func() {
			So(SetToken("   "), ShouldNotBeNil)
		})
	})
}
