// Package history remembers the entries looked up recently.
package history

import (
	"strconv"
	"sync"
	"time"

	"github.com/anipeek/anipeek/anilist"
	"github.com/anipeek/anipeek/filesystem"
	"github.com/anipeek/anipeek/key"
	"github.com/anipeek/anipeek/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Entry is one remembered lookup.
type Entry struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Format     string    `json:"format,omitempty"`
	LookedUpAt time.Time `json:"looked_up_at"`
}

var (
	mu     sync.Mutex
	cacher *gache.Cache[[]*Entry]
)

func store() *gache.Cache[[]*Entry] {
	if cacher == nil {
		cacher = gache.New[[]*Entry](&gache.Options{
			Path:       where.History(),
			FileSystem: &filesystem.GacheFs{},
		})
	}
	return cacher
}

// Remember records media as the most recent lookup. Older lookups of the
// same id are dropped and the list is capped at history.limit.
func Remember(media *anilist.Media) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	id, ok := media.Identifier().Get()
	if !ok {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	entries, _, err := store().Get()
	if err != nil {
		entries = nil
	}

	entries = lo.Reject(entries, func(e *Entry, _ int) bool {
		return e.ID == id
	})
	entries = append([]*Entry{{
		ID:         id,
		Title:      media.DisplayTitle(),
		Format:     media.FormatLabel().OrEmpty(),
		LookedUpAt: time.Now(),
	}}, entries...)

	if limit := viper.GetInt(key.HistoryLimit); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return store().Set(entries)
}

// Recent returns remembered lookups, newest first.
func Recent() ([]*Entry, error) {
	mu.Lock()
	defer mu.Unlock()

	entries, expired, err := store().Get()
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, nil
	}
	return entries, nil
}

// Filter returns remembered lookups whose title or id fuzzily matches query.
func Filter(query string) ([]*Entry, error) {
	entries, err := Recent()
	if err != nil || query == "" {
		return entries, err
	}

	return lo.Filter(entries, func(e *Entry, _ int) bool {
		return fuzzy.MatchFold(query, e.Title) || fuzzy.Match(query, strconv.Itoa(e.ID))
	}), nil
}

// Clear forgets every lookup.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	return store().Set(nil)
}
