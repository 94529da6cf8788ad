// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 14

// AniList API - these keys govern how the GraphQL endpoint is reached.
const (
	AnilistEndpoint = "anilist.endpoint"
	NetworkTimeout  = "network.timeout"
)

// Cover Rendering - these keys configure how cover images are drawn in the terminal.
const (
	RenderEnable   = "render.enable"
	RenderProtocol = "render.protocol"
	RenderWidth    = "render.width"
)

// Lookup History - these keys manage the persisted list of recent lookups.
const (
	HistorySave  = "history.save"
	HistoryLimit = "history.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite  = "logs.write"
	LogsLevel  = "logs.level"
	LogsJson   = "logs.json"
	LogsRotate = "logs.rotate"
)

// CLI Execution Environment - these flags and settings govern general command behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
