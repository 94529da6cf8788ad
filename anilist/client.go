package anilist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/anipeek/anipeek/constant"
	"github.com/anipeek/anipeek/log"
	"github.com/anipeek/anipeek/network"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

// Doer is the subset of *http.Client used by Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues lookups against the AniList GraphQL endpoint.
type Client struct {
	http     Doer
	endpoint string
	token    mo.Option[string]
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) { c.http = doer }
}

// WithEndpoint points the client at another GraphQL endpoint. Empty keeps the default.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithToken sends the token as a bearer credential. Empty means anonymous.
func WithToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.token = mo.Some(token)
		}
	}
}

// NewClient returns a client for the public endpoint using network.Client.
func NewClient(options ...Option) *Client {
	c := &Client{
		http:     network.Client,
		endpoint: constant.AnilistEndpoint,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Endpoint returns the GraphQL endpoint in use.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchRaw posts the lookup for id and returns the response body as text.
//
// The HTTP status is not checked: AniList answers an unknown id with 404 and a
// regular envelope whose Media is null. Only failures to complete the
// exchange are reported, as *TransportError.
func (c *Client) FetchRaw(ctx context.Context, id int) (string, error) {
	fail := func(err error) (string, error) {
		log.WithField("id", id).Error(err)
		return "", &TransportError{Endpoint: c.endpoint, Err: err}
	}

	body, err := NewRequestBody(id)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fail(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token, ok := c.token.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.WithFields(logrus.Fields{"id": id, "endpoint": c.endpoint}).Info("Sending request to AniList")
	resp, err := c.http.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(fmt.Errorf("read body: %w", err))
	}

	if !utf8.Valid(raw) {
		return fail(ErrInvalidUTF8)
	}

	log.WithField("status", resp.StatusCode).Debugf("Got %d bytes from AniList", len(raw))
	return string(raw), nil
}

// Fetch posts the lookup for id and decodes the response.
func (c *Client) Fetch(ctx context.Context, id int) (*Envelope, error) {
	text, err := c.FetchRaw(ctx, id)
	if err != nil {
		return nil, err
	}

	envelope, err := Decode(text)
	if err != nil {
		log.WithField("id", id).Error(err)
		return nil, err
	}

	return envelope, nil
}
