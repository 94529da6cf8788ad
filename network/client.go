// Package network provides the HTTP client shared by the AniList transport and the cover fetcher.
package network

import (
	"net/http"
	"time"

	"github.com/anipeek/anipeek/constant"
)

// Client is the shared client used when no explicit one is configured.
// Reusing it keeps the connection to AniList and the image CDN alive between lookups.
var Client = New(time.Minute)

// New builds a client with the tuned transport and the given overall timeout.
// A zero timeout leaves requests bounded only by the transport's own deadlines.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: newTransport()},
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 90 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}

// userAgentTransport stamps the application User-Agent on requests that lack one.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", constant.UserAgent)
	return t.base.RoundTrip(clone)
}
