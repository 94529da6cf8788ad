package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/anipeek/anipeek/color"
	"github.com/anipeek/anipeek/constant"
	"github.com/anipeek/anipeek/key"
	"github.com/anipeek/anipeek/style"
	"github.com/spf13/viper"
)

// Field is one configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty describes the field for "config info".
func (f *Field) Pretty() string {
	const width = 9

	lines := []string{
		style.Faint(f.Description),
		style.Label("Key:", width) + style.Fg(color.Purple)(f.Key),
		style.Label("Env:", width) + f.Env(),
		style.Label("Value:", width) + highlight(viper.Get(f.Key)),
		style.Label("Default:", width) + highlight(f.Value),
		style.Label("Type:", width) + f.typeName(),
	}

	return strings.Join(lines, "\n")
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

// Env is the environment variable overriding the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Anipeek + "_" + EnvKeyReplacer.Replace(f.Key))
}

// MarshalJSON includes both the current and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Env:         f.Env(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every known field by key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: desc}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.AnilistEndpoint, constant.AnilistEndpoint, "AniList GraphQL endpoint")
	register(key.NetworkTimeout, 60, "Timeout in seconds for a single request.\n0 disables the timeout")

	register(key.RenderEnable, true, "Draw the cover image before the text fields")
	register(key.RenderProtocol, "auto", "Graphics protocol used for covers.\nAvailable options are: auto, kitty, iterm, blocks")
	register(key.RenderWidth, 0, "Width of the cover in terminal cells.\n0 fits the image to the terminal")

	register(key.HistorySave, true, "Remember looked up entries (see \"anipeek recent\")")
	register(key.HistoryLimit, 50, "Maximum number of remembered lookups")

	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsRotate, false, "Write logs to a single size-rotated file instead of one file per day")

	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}
