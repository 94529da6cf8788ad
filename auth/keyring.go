// Package auth stores the optional AniList access token in the system keyring.
package auth

import (
	"errors"
	"strings"

	"github.com/anipeek/anipeek/constant"
	"github.com/zalando/go-keyring"
)

const user = "anilist-token"

// SetToken persists token. Surrounding whitespace is dropped.
func SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(constant.Anipeek, user, token)
}

// Token returns the stored token, or "" when none is stored or the keyring is unavailable.
func Token() string {
	token, err := keyring.Get(constant.Anipeek, user)
	if err != nil {
		return ""
	}
	return token
}

// DeleteToken removes the stored token. Deleting a missing token is not an error.
func DeleteToken() error {
	if err := keyring.Delete(constant.Anipeek, user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}
