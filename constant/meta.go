// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Anipeek is the canonical application identifier used for filesystem paths and CLI branding.
	Anipeek = "anipeek"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every request to AniList and to the image CDN.
	UserAgent = "anipeek/" + Version + " (+https://github.com/anipeek/anipeek)"

	// AnilistEndpoint is the public AniList GraphQL endpoint.
	AnilistEndpoint = "https://graphql.anilist.co"
)

// Build metadata, overridden with -ldflags "-X" at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
