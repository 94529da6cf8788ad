// Package anilist queries the AniList GraphQL API for a single media entry by identifier.
package anilist

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxID is the largest id AniList's Int type can carry.
const MaxID = math.MaxInt32

// ValidID reports whether id can be sent as the $id variable.
func ValidID(id int) bool {
	return id >= 0 && id <= MaxID
}

// ParseID parses a decimal media id, rejecting signs and values past MaxID.
func ParseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n > MaxID {
		return 0, fmt.Errorf("invalid id %q: want a whole number between 0 and %d", s, MaxID)
	}
	return int(n), nil
}

// Query is the fixed GraphQL document sent for every lookup.
const Query = `
query ($id: Int) {
	Media (id: $id) {
		id
		title {
			romaji
			english
			native
		}
		format
		genres
		coverImage {
			medium
		}
	}
}`

// requestBody is the JSON payload of a GraphQL POST.
type requestBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// NewRequestBody renders {"query": Query, "variables": {"id": id}}.
func NewRequestBody(id int) ([]byte, error) {
	return json.Marshal(requestBody{
		Query: Query,
		Variables: map[string]any{
			"id": id,
		},
	})
}
