// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Site - the scraped host.
const (
	SiteBaseURL = "site.base_url"
)

// Fetching - how pages are retrieved.
const (
	FetchProxy            = "fetch.proxy"
	FetchTimeout          = "fetch.timeout"
	FetchUserAgent        = "fetch.user_agent"
	FetchImpersonateTLS   = "fetch.impersonate_tls"
	FetchCloudflareBypass = "fetch.cloudflare_bypass"
)

// Output - how results are handed to the terminal.
const (
	OutputFormat  = "output.format"
	OutputPretty  = "output.pretty"
	OutputByTitle = "output.by_title"
)

// Pagination link generation.
const (
	PaginationWindow = "pagination.window"
)

// Search interaction.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchRememberQueries      = "search.remember_queries"
)

// HTTP relay server.
const (
	ServerHost = "server.host"
	ServerPort = "server.port"
	ServerMode = "server.mode"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	IconsVariant    = "icons.variant"
)
