package anilist

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anipeek/anipeek/log"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

const excerptLength = 120

// Decode parses a response body into an Envelope.
//
// Members may be missing or null below "data"; a null "Media" decodes
// successfully and means the entry does not exist. A body that is not JSON,
// is not an object, has no usable "data" member, or has members of the wrong
// type yields a *DecodeError.
func Decode(text string) (*Envelope, error) {
	fail := func(err error) (*Envelope, error) {
		return nil, &DecodeError{Excerpt: excerpt(text), Err: err}
	}

	if !gjson.Valid(text) {
		return fail(errors.New("invalid JSON"))
	}

	root := gjson.Parse(text)
	if !root.IsObject() {
		return fail(fmt.Errorf("expected an object, got %s", root.Type))
	}

	messages := errorMessages(root)
	if len(messages) > 0 {
		log.WithField("errors", messages).Warn("AniList returned GraphQL errors")
	}

	data := root.Get("data")
	if !data.Exists() || data.Type == gjson.Null {
		if len(messages) > 0 {
			return fail(fmt.Errorf("no data: %s", strings.Join(messages, "; ")))
		}
		return fail(errors.New(`missing "data"`))
	}
	if !data.IsObject() {
		return fail(fmt.Errorf(`"data" is %s, expected an object`, data.Type))
	}

	if media := data.Get("Media"); media.Exists() && media.Type != gjson.Null && !media.IsObject() {
		return fail(fmt.Errorf(`"Media" is %s, expected an object`, media.Type))
	}

	var envelope Envelope
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return fail(err)
	}

	return &envelope, nil
}

func errorMessages(root gjson.Result) []string {
	messages := root.Get("errors.#.message").Array()
	return lo.FilterMap(messages, func(m gjson.Result, _ int) (string, bool) {
		return m.String(), m.String() != ""
	})
}

func excerpt(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= excerptLength {
		return text
	}
	return string(runes[:excerptLength]) + "…"
}
