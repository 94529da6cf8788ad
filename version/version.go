package version

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/anipeek/anipeek/filesystem"
	"github.com/anipeek/anipeek/network"
	"github.com/anipeek/anipeek/util"
	"github.com/anipeek/anipeek/where"
	"github.com/metafates/gache"
)

// ReleasesURL is the GitHub API endpoint describing the latest release.
var ReleasesURL = "https://api.github.com/repos/anipeek/anipeek/releases/latest"

var versionCacher *gache.Cache[string]

func cacher() *gache.Cache[string] {
	if versionCacher == nil {
		versionCacher = gache.New[string](&gache.Options{
			Path:       filepath.Join(where.Cache(), "version.json"),
			Lifetime:   time.Hour * 24 * 2,
			FileSystem: &filesystem.GacheFs{},
		})
	}
	return versionCacher
}

// Latest returns the latest released version, cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := cacher().Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	resp, err := network.Client.Get(ReleasesURL)
	if err != nil {
		return
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("unexpected status " + resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = cacher().Set(version)
	return
}
