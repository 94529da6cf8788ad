package version

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anipeek/anipeek/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		for _, c := range []struct {
			a, b string
			want int
		}{
			{"1.2.3", "1.2.3", 0},
			{"v1.3.0", "1.2.9", 1},
			{"0.3.0", "1.0.0", -1},
			{"1.0.0-rc.1", "1.0.0", 0},
			{" v0.10.0 ", "0.9.12", 1},
		} {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		for _, bad := range []string{"one", "1.2", "1.2.x", "1.-2.3"} {
			_, err := Compare(bad, "1.0.0")
			So(err, ShouldNotBeNil)
		}
	})
}

func TestLatest(t *testing.T) {
	Convey("Latest reads the release tag and caches it", t, func() {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"tag_name":"v9.8.7"}`))
		}))
		defer srv.Close()

		previous := ReleasesURL
		ReleasesURL = srv.URL
		defer func() { ReleasesURL = previous }()

		v, err := Latest()
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "9.8.7")

		v, err = Latest()
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "9.8.7")
		So(hits, ShouldEqual, 1)
	})
}

func TestNotify(t *testing.T) {
	Convey("notify", t, func() {
		var buf bytes.Buffer

		Convey("announces a newer release", func() {
			notify(&buf, "0.3.0", "0.4.0")
			So(buf.String(), ShouldContainSubstring, "0.4.0")
			So(buf.String(), ShouldContainSubstring, "releases/tag/v0.4.0")
		})

		Convey("stays silent otherwise", func() {
			notify(&buf, "0.3.0", "0.3.0")
			notify(&buf, "0.3.0", "0.2.9")
			notify(&buf, "0.3.0", "garbage")
			So(buf.Len(), ShouldEqual, 0)
		})
	})
}
