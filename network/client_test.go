package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anipeek/anipeek/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a client built by New", t, func() {
		var seen string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		client := New(5 * time.Second)
		So(client.Timeout, ShouldEqual, 5*time.Second)

		Convey("It sets the application User-Agent", func() {
			resp, err := client.Get(srv.URL)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(seen, ShouldEqual, constant.UserAgent)
		})

		Convey("It keeps an explicit User-Agent", func() {
			req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
			req.Header.Set("User-Agent", "custom")
			resp, err := client.Do(req)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(seen, ShouldEqual, "custom")
		})
	})
}
