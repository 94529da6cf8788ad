// Package icon renders UI symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/anipeek/anipeek/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns all supported icon variants.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Info
	Progress
	NotFound
	Prompt
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

// Get returns the symbol for the configured variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "💀", nerd: "", plain: "✖", squares: "🟥"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", squares: "🟨"},
	Info:     {emoji: "ℹ️", nerd: "", plain: "i", squares: "🟦"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", squares: "🟪"},
	NotFound: {emoji: "🔍", nerd: "", plain: "?", squares: "⬜"},
	Prompt:   {emoji: "👉", nerd: "", plain: ">", squares: "▶"},
}

// Get returns the rendered symbol for i.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
