package where

import (
	"path/filepath"
	"testing"

	"github.com/anipeek/anipeek/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/anipeek")
			So(Config(), ShouldEqual, "/custom/anipeek")
			So(ConfigFile(), ShouldEqual, filepath.Join("/custom/anipeek", "anipeek.toml"))
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			So(filepath.Base(path), ShouldEqual, "logs")
		})

		Convey("History() lives in the cache directory", func() {
			So(filepath.Dir(History()), ShouldEqual, Cache())
		})
	})
}
